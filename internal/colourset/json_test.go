package colourset

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	cs := testFactory().New(60, 1)

	data, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded struct {
		Hue     int  `json:"hue"`
		Shade   int  `json:"shade"`
		Grey    bool `json:"grey"`
		Colours map[string]struct {
			Hex string `json:"hex"`
			RGB struct {
				R uint8 `json:"r"`
				G uint8 `json:"g"`
				B uint8 `json:"b"`
			} `json:"rgb"`
		} `json:"colours"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if decoded.Hue != 60 || decoded.Shade != 1 || decoded.Grey {
		t.Errorf("identity = %d/%d grey=%v", decoded.Hue, decoded.Shade, decoded.Grey)
	}
	bg, ok := decoded.Colours["background"]
	if !ok {
		t.Fatalf("colours missing background: %s", data)
	}
	if bg.Hex != "#99990f" {
		t.Errorf("background hex = %q, want %q", bg.Hex, "#99990f")
	}
	if bg.RGB.R != 153 || bg.RGB.G != 153 || bg.RGB.B != 15 {
		t.Errorf("background rgb = %+v", bg.RGB)
	}
	if len(decoded.Colours) != len(Roles) {
		t.Errorf("colours has %d entries, want %d", len(decoded.Colours), len(Roles))
	}
}

func TestMarshalJSONGrey(t *testing.T) {
	data, err := json.Marshal(testFactory().New(HueGrey, 2))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var decoded struct {
		Grey bool `json:"grey"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.Grey {
		t.Error("grey = false, want true")
	}
}
