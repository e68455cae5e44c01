package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"METHOD", "CATEGORY", "RESULT"}, &TableOptions{NoColor: true})

	table.AddRow("textDocument/hover", "request", "Hover | null")
	table.AddRow("exit", "notification", "")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}

	want := []string{
		"METHOD              CATEGORY      RESULT",
		"──────────────────  ────────────  ────────────",
		"textDocument/hover  request       Hover | null",
		"exit                notification  ",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, lines[i], want[i])
		}
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d; want 2", table.Len())
	}
}

func TestTableNormalizesRowWidth(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"A", "B"}, nil)
	table.AddRow("only")
	table.AddRow("x", "y", "dropped")
	table.Render()

	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("extra cell rendered: %q", buf.String())
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{}, &TableOptions{NoColor: true})

	table.Render()

	if buf.String() != "" {
		t.Errorf("Expected empty output for table with no headers, got: %q", buf.String())
	}
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	kvTable := NewKeyValueTable(&buf, true)

	kvTable.AddRow("Method", "textDocument/hover")
	kvTable.AddRow("Category", "request")
	kvTable.Render()

	want := "Method:   textDocument/hover\nCategory: request\n"
	if buf.String() != want {
		t.Errorf("KeyValueTable output = %q; want %q", buf.String(), want)
	}
}

func TestKeyValueTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewKeyValueTable(&buf, true).Render()

	if buf.String() != "" {
		t.Errorf("Expected empty output for empty KeyValueTable, got: %q", buf.String())
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Hover", true)

	if buf.String() != "Hover\n─────\n" {
		t.Errorf("Header output = %q", buf.String())
	}
}

func TestDividerDefaultWidth(t *testing.T) {
	var buf bytes.Buffer
	Divider(&buf, 0, true)

	if got := strings.Count(buf.String(), "─"); got != 80 {
		t.Errorf("Divider width = %d; want 80", got)
	}
}
