// Package template substitutes generated colourset colours into user
// templates. Templates address colours by colourset index and role name;
// both are validated, and a bad index or role fails the render rather than
// producing an empty value.
package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jmylchreest/huegen/internal/colourset"
)

// Engine renders templates against a generated sequence of coloursets.
type Engine struct {
	coloursets []*colourset.Colourset
}

// New creates an Engine over the given coloursets. Index 0 is the base set.
func New(coloursets []*colourset.Colourset) *Engine {
	return &Engine{coloursets: coloursets}
}

// funcs exposes the colour accessors to templates.
func (e *Engine) funcs() template.FuncMap {
	return template.FuncMap{
		"hex":      e.hex,
		"hexUpper": e.hexUpper,
		"rgb":      e.rgb,
		"hue":      e.hue,
		"shade":    e.shade,
		"count":    func() int { return len(e.coloursets) },
	}
}

// Render parses and executes one template string.
func (e *Engine) Render(name, src string) (string, error) {
	tmpl, err := template.New(name).Funcs(e.funcs()).Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderFile renders the template at srcPath and writes the result to
// dstPath, creating parent directories as needed.
func (e *Engine) RenderFile(name, srcPath, dstPath string) error {
	src, err := os.ReadFile(srcPath) // #nosec G304 - template path supplied by the user
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	out, err := e.Render(name, string(src))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(dstPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := os.WriteFile(dstPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolve maps (index, role name) to a colourset and role, erroring on an
// out-of-range index or a role outside the closed role set.
func (e *Engine) resolve(index int, role string) (*colourset.Colourset, colourset.Role, error) {
	if index < 0 || index >= len(e.coloursets) {
		return nil, "", fmt.Errorf("colourset index out of range: %d (have %d)", index, len(e.coloursets))
	}
	r, err := colourset.ParseRole(role)
	if err != nil {
		return nil, "", err
	}
	return e.coloursets[index], r, nil
}

func (e *Engine) hex(index int, role string) (string, error) {
	cs, r, err := e.resolve(index, role)
	if err != nil {
		return "", err
	}
	return cs.Hex(r)
}

func (e *Engine) hexUpper(index int, role string) (string, error) {
	cs, r, err := e.resolve(index, role)
	if err != nil {
		return "", err
	}
	c, err := cs.Colour(r)
	if err != nil {
		return "", err
	}
	return c.HexUpper(), nil
}

func (e *Engine) rgb(index int, role string) (string, error) {
	cs, r, err := e.resolve(index, role)
	if err != nil {
		return "", err
	}
	return cs.RGBSlash(r)
}

func (e *Engine) hue(index int) (int, error) {
	if index < 0 || index >= len(e.coloursets) {
		return 0, fmt.Errorf("colourset index out of range: %d (have %d)", index, len(e.coloursets))
	}
	return e.coloursets[index].Hue(), nil
}

func (e *Engine) shade(index int) (int, error) {
	if index < 0 || index >= len(e.coloursets) {
		return 0, fmt.Errorf("colourset index out of range: %d (have %d)", index, len(e.coloursets))
	}
	return e.coloursets[index].Shade(), nil
}
