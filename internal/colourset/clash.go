package colourset

// The clash heuristic is a subjective rule of thumb for whether two
// coloursets look bad next to each other. It is not a perceptual distance
// model: the hue bands and shade conditions below were tuned by looking at
// rendered decorations. The rule ORDER is part of the contract: the cascade
// short-circuits on the first matching rule, so broad early rules (grey
// handling, analogous hues) take precedence over the band rules.

// half is one side of a pairwise clash rule.
type half struct {
	hue   int
	shade int
}

// clashRule matches one ordered pair of sides. Rules are applied in both
// orientations, which keeps the cascade symmetric by construction.
type clashRule struct {
	name  string
	clash bool // result when the rule matches
	match func(a, b half) bool
}

// rules is the cascade. First match wins.
var rules = []clashRule{
	{"grey vs yellow", true, func(a, b half) bool {
		return a.hue == HueGrey && b.hue >= 50 && b.hue <= 80
	}},
	{"grey vs orange", true, func(a, b half) bool {
		return a.hue == HueGrey && b.hue > 10 && b.hue < 50 && b.shade > 1
	}},
	// Outside the two bands above, grey goes with everything.
	{"grey is neutral", false, func(a, b half) bool {
		return a.hue == HueGrey || b.hue == HueGrey
	}},
	{"analogous hues", false, func(a, b half) bool {
		return abs(a.hue-b.hue) <= 30
	}},

	// Band-pair rules. Each names the two offenders; bounds are informal
	// colour-wheel regions, not CSS colour names.
	{"rose vs yellow-green", true, func(a, b half) bool {
		return a.hue >= 330 && a.hue < 360 && b.hue >= 60 && b.hue <= 150
	}},
	{"orange vs green", true, func(a, b half) bool {
		return a.hue > 10 && a.hue <= 50 && a.shade > 1 && b.hue >= 90 && b.hue < 160
	}},
	{"dark orange vs deep green", true, func(a, b half) bool {
		return a.hue > 10 && a.hue <= 50 && a.shade == 1 && b.hue > 110 && b.hue < 160
	}},
	{"purple vs pinky-red", true, func(a, b half) bool {
		return a.hue > 260 && a.hue < 300 && b.hue >= 0 && b.hue <= 10
	}},
	{"violet vs pink or red", true, func(a, b half) bool {
		return a.hue > 280 && a.hue < 320 && (b.hue >= 330 && b.hue < 360 || b.hue >= 0 && b.hue <= 20)
	}},
	{"purple vs tomato or rose", true, func(a, b half) bool {
		return a.hue > 250 && a.hue <= 290 && b.hue > 340 && b.hue < 360
	}},
	{"purple-pink vs orange-to-green", true, func(a, b half) bool {
		return a.hue > 270 && a.hue < 330 && b.hue > 30 && b.hue < 150
	}},
	{"orange-yellow vs green-cyan", true, func(a, b half) bool {
		return a.hue > 30 && a.hue < 80 && b.hue > 150 && b.hue < 200
	}},
	{"khaki vs green-cyan", true, func(a, b half) bool {
		return a.hue >= 50 && a.hue <= 70 && a.shade == 1 && b.hue > 110 && b.hue < 200
	}},
	{"turquoise vs orchid", true, func(a, b half) bool {
		return a.hue > 160 && a.hue < 220 && b.hue > 280 && b.hue < 320
	}},
	{"blue-purple vs orange", true, func(a, b half) bool {
		return a.hue > 220 && a.hue < 280 && b.hue > 10 && b.hue < 50
	}},
	{"violet-pink vs yellow-green", true, func(a, b half) bool {
		return a.hue > 290 && a.hue < 330 && b.hue > 50 && b.hue < 110
	}},

	// Shade 3 outside the blue band is glary; it fights with the dull
	// shade 2 and the pale shade 4 of any other hue.
	{"glary vs dull or pale", true, func(a, b half) bool {
		return a.shade == 3 && !(a.hue > 200 && a.hue < 280) &&
			(b.shade == 2 || b.shade == 4) && a.hue != b.hue
	}},
	{"pink vs green-yellow", true, func(a, b half) bool {
		return a.hue >= 0 && a.hue < 30 && a.shade == 4 &&
			b.hue > 60 && b.hue <= 120 && b.shade != 4
	}},
	{"pale orange vs green", true, func(a, b half) bool {
		return a.hue >= 30 && a.hue < 50 && a.shade == 4 &&
			b.hue > 90 && b.hue <= 130 && b.shade != 4
	}},
	{"glary red vs khaki", true, func(a, b half) bool {
		return a.hue >= 0 && a.hue < 30 && a.shade == 3 &&
			b.hue > 50 && b.hue < 70 && b.shade != 3
	}},
}

// Clashes reports whether two coloursets look bad together. Only the
// originating (hue, shade) pairs are consulted, never the colour values.
// Symmetric: Clashes(a, b) == Clashes(b, a).
func Clashes(a, b *Colourset) bool {
	x := half{hue: a.hue, shade: a.shade}
	y := half{hue: b.hue, shade: b.shade}
	for _, r := range rules {
		if r.match(x, y) || r.match(y, x) {
			return r.clash
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
