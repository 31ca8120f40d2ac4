package render

import (
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/huegen/internal/colourset"
)

func testSets(t *testing.T) []*colourset.Colourset {
	t.Helper()
	f := colourset.NewFactory(rand.New(rand.NewSource(1)))
	return []*colourset.Colourset{
		f.New(60, 1),
		f.New(240, 2),
	}
}

func TestPreviewContainsColourForms(t *testing.T) {
	out := Preview(testSets(t), 100)

	for _, want := range []string{"#99990f", "rgb:99/99/0F", "background", "foreground-inactive", "hue 60 shade 1", "(base)"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestPreviewNarrowDropsSlashForm(t *testing.T) {
	out := Preview(testSets(t), 20)
	if strings.Contains(out, "rgb:") {
		t.Error("narrow preview still contains rgb:RR/GG/BB forms")
	}
}

func TestSwatchSheetDimensionsAndPixels(t *testing.T) {
	sets := testSets(t)
	img, err := SwatchSheet(sets)
	if err != nil {
		t.Fatalf("SwatchSheet error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != cellWidth*len(colourset.Roles) || bounds.Dy() != cellHeight*len(sets) {
		t.Fatalf("bounds = %v", bounds)
	}

	// The first cell is row 0 (hue 60 shade 1), column 0 (background):
	// HSV(60, 0.90, 0.60) = rgb(153, 153, 15). Sample off-centre to stay
	// clear of the label.
	r, g, b, _ := img.At(cellWidth/2, cellHeight/4).RGBA()
	if r>>8 != 153 || g>>8 != 153 || b>>8 != 15 {
		t.Errorf("background cell pixel = (%d, %d, %d), want (153, 153, 15)", r>>8, g>>8, b>>8)
	}
}

func TestSwatchSheetEmpty(t *testing.T) {
	if _, err := SwatchSheet(nil); err == nil {
		t.Error("SwatchSheet(nil) error = nil, want error")
	}
}

func TestWriteSwatchSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "swatch.png")
	if err := WriteSwatchSheet(testSets(t), path); err != nil {
		t.Fatalf("WriteSwatchSheet error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if img.Bounds().Dx() != cellWidth*len(colourset.Roles) {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}
}
