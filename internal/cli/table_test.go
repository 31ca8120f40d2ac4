package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"SET", "ROLE", "HEX"})
	table.AddRow([]string{"0", "background", "#99990f"})
	table.AddRow([]string{"1", "foreground", "#fcfce2"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "SET") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.Contains(lines[2], "background") || !strings.Contains(lines[2], "#99990f") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTableColumnsAlign(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{"short", "x"})
	table.AddRow([]string{"a-much-longer-cell", "y"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	xCol := strings.Index(lines[2], "x")
	yCol := strings.Index(lines[3], "y")
	if xCol != yCol {
		t.Errorf("second column misaligned: %d vs %d\n%s", xCol, yCol, table.Render())
	}
}

func TestTableShortRowIsPadded(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})

	out := table.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("row dropped:\n%s", out)
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render() = %q, want empty", out)
	}
}
