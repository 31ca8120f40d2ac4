package cli

import (
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huegen/internal/colourset"
	"github.com/jmylchreest/huegen/internal/config"
)

// resetGenerateFlags puts the shared generation flags back to their
// registered defaults after a test mutates them.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		genHue = -1
		genShade = -1
		genCount = 0
		genGrey = false
		genPins = nil
		genMaxAttempts = 0
		flagSeed = 0
	})
}

func TestParsePins(t *testing.T) {
	tests := []struct {
		name       string
		pins       []string
		count      int
		wantHues   []int
		wantShades []int
		wantErr    bool
	}{
		{
			name:  "none",
			pins:  nil,
			count: 4,
		},
		{
			name:       "hue only",
			pins:       []string{"1=120"},
			count:      3,
			wantHues:   []int{120, colourset.HueUnset},
			wantShades: []int{colourset.ShadeRandom, colourset.ShadeRandom},
		},
		{
			name:       "hue and shade",
			pins:       []string{"2=350/4"},
			count:      3,
			wantHues:   []int{colourset.HueUnset, 350},
			wantShades: []int{colourset.ShadeRandom, 4},
		},
		{
			name:       "multiple",
			pins:       []string{"1=0/1", "2=90"},
			count:      3,
			wantHues:   []int{0, 90},
			wantShades: []int{1, colourset.ShadeRandom},
		},
		{"slot zero is the base", []string{"0=120"}, 3, nil, nil, true},
		{"slot past the end", []string{"3=120"}, 3, nil, nil, true},
		{"hue out of range", []string{"1=400"}, 3, nil, nil, true},
		{"shade out of range", []string{"1=120/5"}, 3, nil, nil, true},
		{"malformed", []string{"1:120"}, 3, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hues, shades, err := parsePins(tt.pins, tt.count)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parsePins error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePins error: %v", err)
			}
			if len(hues) != len(tt.wantHues) || len(shades) != len(tt.wantShades) {
				t.Fatalf("lengths = %d/%d, want %d/%d", len(hues), len(shades), len(tt.wantHues), len(tt.wantShades))
			}
			for i := range tt.wantHues {
				if hues[i] != tt.wantHues[i] {
					t.Errorf("hues[%d] = %d, want %d", i, hues[i], tt.wantHues[i])
				}
				if shades[i] != tt.wantShades[i] {
					t.Errorf("shades[%d] = %d, want %d", i, shades[i], tt.wantShades[i])
				}
			}
		})
	}
}

func TestMakeSetsProducesCompatibleSets(t *testing.T) {
	resetGenerateFlags(t)
	genHue = 240
	genShade = 2
	genCount = 4
	flagSeed = 11

	sets, err := makeSets(hclog.NewNullLogger(), config.Default())
	if err != nil {
		t.Fatalf("makeSets error: %v", err)
	}
	if len(sets) != 4 {
		t.Fatalf("len(sets) = %d, want 4", len(sets))
	}
	if sets[0].Hue() != 240 || sets[0].Shade() != 2 {
		t.Errorf("base = %s, want hue 240 shade 2", sets[0])
	}
	for i, a := range sets {
		for _, b := range sets[:i] {
			if a.Equal(b) || colourset.Clashes(a, b) {
				t.Errorf("sets %s and %s are not mutually compatible", a, b)
			}
		}
	}
}

func TestMakeSetsGreyFlag(t *testing.T) {
	resetGenerateFlags(t)
	genGrey = true
	genShade = 3
	genCount = 1
	flagSeed = 11

	sets, err := makeSets(hclog.NewNullLogger(), config.Default())
	if err != nil {
		t.Fatalf("makeSets error: %v", err)
	}
	if sets[0].Hue() != colourset.HueGrey {
		t.Errorf("base hue = %d, want %d", sets[0].Hue(), colourset.HueGrey)
	}
}

func TestMakeSetsRejectsBadHue(t *testing.T) {
	resetGenerateFlags(t)
	genHue = 400
	genCount = 1
	flagSeed = 11

	if _, err := makeSets(hclog.NewNullLogger(), config.Default()); err == nil {
		t.Error("makeSets error = nil, want error for hue 400")
	}
}

func TestMakeSetsUsesConfigDefaults(t *testing.T) {
	resetGenerateFlags(t)
	flagSeed = 11

	cfg := config.Default()
	cfg.Generate.Hue = 120
	cfg.Generate.Shade = 1
	cfg.Generate.Count = 2

	sets, err := makeSets(hclog.NewNullLogger(), cfg)
	if err != nil {
		t.Fatalf("makeSets error: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("len(sets) = %d, want 2", len(sets))
	}
	if sets[0].Hue() != 120 || sets[0].Shade() != 1 {
		t.Errorf("base = %s, want hue 120 shade 1", sets[0])
	}
}
