package colourset

import "encoding/json"

// colourJSON is the wire form of one role colour.
type colourJSON struct {
	Hex string `json:"hex"`
	RGB rgb    `json:"rgb"`
	HSV HSV    `json:"hsv"`
}

type rgb struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// coloursetJSON is the wire form of a colourset.
type coloursetJSON struct {
	Hue     int                 `json:"hue"`
	Shade   int                 `json:"shade"`
	Grey    bool                `json:"grey"`
	Colours map[Role]colourJSON `json:"colours"`
}

// MarshalJSON encodes the colourset with hex, RGB and HSV forms per role.
func (cs *Colourset) MarshalJSON() ([]byte, error) {
	out := coloursetJSON{
		Hue:     cs.hue,
		Shade:   cs.shade,
		Grey:    cs.hue == HueGrey,
		Colours: make(map[Role]colourJSON, len(cs.colours)),
	}
	for role, c := range cs.colours {
		r, g, b := c.RGB255()
		out.Colours[role] = colourJSON{
			Hex: c.Hex(),
			RGB: rgb{R: r, G: g, B: b},
			HSV: c,
		}
	}
	return json.Marshal(out)
}
