package colourset

import (
	"fmt"
	"math/rand"
)

// Role identifies one of the five colours making up a colourset.
type Role string

const (
	RoleBackground         Role = "background"
	RoleTopShadow          Role = "top-shadow"
	RoleBottomShadow       Role = "bottom-shadow"
	RoleForeground         Role = "foreground"
	RoleForegroundInactive Role = "foreground-inactive"
)

// Roles lists every role in stable output order.
var Roles = []Role{
	RoleBackground,
	RoleTopShadow,
	RoleBottomShadow,
	RoleForeground,
	RoleForegroundInactive,
}

// ParseRole converts a string to a Role. Returns an error for anything
// outside the closed role set.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown colour role: %q", s)
}

// Sentinel inputs understood by the Factory and the generators.
const (
	// HueGrey marks an achromatic colourset. It is not the same hue as 0
	// for generation or clash purposes, even though both are red on a
	// colour wheel.
	HueGrey = 360

	// HueUnset asks the set generator to pick a hue for the slot.
	HueUnset = -1

	// ShadeRandom (or any value outside 1..4) asks the Factory to draw a
	// shade uniformly from 1..4.
	ShadeRandom = 0
)

// Colourset is an immutable set of five related colours sharing one hue,
// differentiated by role. Two coloursets built from equal (hue, shade) are
// colour-identical.
type Colourset struct {
	hue     int
	shade   int
	colours map[Role]HSV
}

// Hue returns the originating hue in degrees [0, 360]. 360 means grey.
func (cs *Colourset) Hue() int { return cs.hue }

// Shade returns the lightness class, 1 (darkest) to 4 (lightest).
func (cs *Colourset) Shade() int { return cs.shade }

// Colour returns the HSV triple for a role. Requesting a role outside the
// closed role set is an error, never a silent default.
func (cs *Colourset) Colour(role Role) (HSV, error) {
	c, ok := cs.colours[role]
	if !ok {
		return HSV{}, fmt.Errorf("unknown colour role: %q", role)
	}
	return c, nil
}

// Hex returns the role's colour as a lowercase "#rrggbb" string.
func (cs *Colourset) Hex(role Role) (string, error) {
	c, err := cs.Colour(role)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// RGBSlash returns the role's colour as an X-style "rgb:RR/GG/BB" string.
func (cs *Colourset) RGBSlash(role Role) (string, error) {
	c, err := cs.Colour(role)
	if err != nil {
		return "", err
	}
	return c.RGBSlash(), nil
}

// Equal reports whether both coloursets were built from the same (hue,
// shade). The colour table is deterministic, so equal inputs mean identical
// colours.
func (cs *Colourset) Equal(other *Colourset) bool {
	return cs.hue == other.hue && cs.shade == other.shade
}

// String returns a short identity like "hue 120 shade 3" or "grey shade 2".
func (cs *Colourset) String() string {
	if cs.hue == HueGrey {
		return fmt.Sprintf("grey shade %d", cs.shade)
	}
	return fmt.Sprintf("hue %d shade %d", cs.hue, cs.shade)
}

// Factory builds coloursets. The random source is an explicit dependency so
// callers can seed it for reproducible output; shade normalization and the
// generators both consume it.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a Factory drawing randomness from rng.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// New builds the colourset for (hue, shade). A shade outside {1,2,3,4} is
// replaced by a uniform random shade, once, at construction. A negative hue
// is coerced to 0. Hues above 360 are a caller precondition violation: the
// table is only defined on [0, 360].
func (f *Factory) New(hue, shade int) *Colourset {
	if hue < 0 {
		hue = 0
	}
	if shade < 1 || shade > 4 {
		shade = f.rng.Intn(4) + 1
	}
	return &Colourset{
		hue:     hue,
		shade:   shade,
		colours: lookup(hue, shade),
	}
}
