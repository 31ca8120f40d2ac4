package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Generate.Count != 4 {
		t.Errorf("default count = %d, want 4", cfg.Generate.Count)
	}
	if cfg.Generate.Hue != 240 {
		t.Errorf("default hue = %d, want 240", cfg.Generate.Hue)
	}
}

func TestLoadParsesTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huegen.toml")
	content := `
[generate]
hue = 120
shade = 2
count = 3
seed = 42

[[template]]
name = "fvwm"
source = "templates/colourset.tmpl"
destination = "out/colourset"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Generate.Hue != 120 || cfg.Generate.Shade != 2 || cfg.Generate.Count != 3 {
		t.Errorf("generate = %+v", cfg.Generate)
	}
	if cfg.Generate.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Generate.Seed)
	}
	if len(cfg.Templates) != 1 || cfg.Templates[0].Name != "fvwm" {
		t.Errorf("templates = %+v", cfg.Templates)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"hue out of range", "[generate]\nhue = 400\ncount = 2\n"},
		{"zero count", "[generate]\nhue = 100\ncount = 0\n"},
		{"template without source", "[generate]\nhue = 1\ncount = 1\n[[template]]\nname = \"x\"\ndestination = \"y\"\n"},
		{"not toml", "{\"hue\": 100}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "huegen.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load error = nil, want error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "huegen.toml")
	cfg := Default()
	cfg.Generate.Hue = 300
	cfg.Templates = append(cfg.Templates, Template{
		Name:        "css",
		Source:      "theme.css.tmpl",
		Destination: "theme.css",
	})

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Generate.Hue != 300 {
		t.Errorf("hue = %d, want 300", loaded.Generate.Hue)
	}
	if len(loaded.Templates) != 1 || loaded.Templates[0].Name != "css" {
		t.Errorf("templates = %+v", loaded.Templates)
	}
}
