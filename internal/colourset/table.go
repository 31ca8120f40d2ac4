package colourset

// The colour table maps (hue, shade) to the five role colours. The numeric
// literals below are the product: they were tuned by eye, not derived from a
// formula, and encode the rule that a light background needs a dark
// foreground and vice versa (shade 1 pairs a dark background with a light
// foreground, shade 4 the reverse).

// sv is a saturation/value pair applied at the colourset's hue.
type sv struct {
	s, v float64
}

// shadeSpec holds one (S,V) pair per role for a chromatic shade.
type shadeSpec struct {
	fg, fgi, bg, ts, bs sv
}

// Chromatic tables, indexed by shade-1.
var chromaticShades = [4]shadeSpec{
	{ // shade 1: darkest
		fg:  sv{0.10, 0.99},
		fgi: sv{0.30, 0.80},
		bg:  sv{0.90, 0.60},
		ts:  sv{0.70, 0.75},
		bs:  sv{0.90, 0.40},
	},
	{ // shade 2
		fg:  sv{0, 0.99},
		fgi: sv{0.30, 0.90},
		bg:  sv{0.80, 0.80},
		ts:  sv{0.50, 0.95},
		bs:  sv{0.80, 0.65},
	},
	{ // shade 3
		fg:  sv{0.99, 0.05},
		fgi: sv{0.90, 0.60},
		bg:  sv{0.85, 0.95},
		ts:  sv{0.50, 0.99},
		bs:  sv{0.70, 0.80},
	},
	{ // shade 4: lightest
		fg:  sv{0.90, 0.20},
		fgi: sv{0.40, 0.55},
		bg:  sv{0.30, 0.90},
		ts:  sv{0.20, 0.95},
		bs:  sv{0.40, 0.75},
	},
}

// Shade 3 looks washed out on blue and purple hues, so 220 < hue < 280 gets
// its own table.
var bluePurpleShade3 = shadeSpec{
	fg:  sv{0.99, 0.05},
	fgi: sv{0.90, 0.60},
	bg:  sv{0.50, 0.85},
	ts:  sv{0.50, 0.95},
	bs:  sv{0.70, 0.75},
}

// Achromatic V per role, indexed by shade-1. S is 0 for every role.
var greyShades = [4]shadeSpec{
	{fg: sv{0, 0.99}, fgi: sv{0, 0.70}, bg: sv{0, 0.40}, ts: sv{0, 0.50}, bs: sv{0, 0.30}},
	{fg: sv{0, 0.95}, fgi: sv{0, 0.80}, bg: sv{0, 0.60}, ts: sv{0, 0.70}, bs: sv{0, 0.50}},
	{fg: sv{0, 0.05}, fgi: sv{0, 0.60}, bg: sv{0, 0.75}, ts: sv{0, 0.85}, bs: sv{0, 0.65}},
	{fg: sv{0, 0.20}, fgi: sv{0, 0.55}, bg: sv{0, 0.88}, ts: sv{0, 0.96}, bs: sv{0, 0.78}},
}

// lookup builds the role colours for (hue, shade). Deterministic and total
// on hue in [0, 360], shade in {1,2,3,4}.
func lookup(hue, shade int) map[Role]HSV {
	var spec shadeSpec
	h := float64(hue)
	switch {
	case hue == HueGrey:
		spec = greyShades[shade-1]
		h = 0
	case shade == 3 && hue > 220 && hue < 280:
		spec = bluePurpleShade3
	default:
		spec = chromaticShades[shade-1]
	}
	return map[Role]HSV{
		RoleForeground:         {H: h, S: spec.fg.s, V: spec.fg.v},
		RoleForegroundInactive: {H: h, S: spec.fgi.s, V: spec.fgi.v},
		RoleBackground:         {H: h, S: spec.bg.s, V: spec.bg.v},
		RoleTopShadow:          {H: h, S: spec.ts.s, V: spec.ts.v},
		RoleBottomShadow:       {H: h, S: spec.bs.s, V: spec.bs.v},
	}
}
