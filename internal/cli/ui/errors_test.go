package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatError(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		opts     ErrorOptions
		contains []string
	}{
		{
			name: "basic error",
			opts: ErrorOptions{
				Level:   ErrorLevelError,
				Context: "method not found",
				Problem: "Method 'textDocument/hovr' is not registered.",
			},
			contains: []string{
				"❌",
				"METHOD NOT FOUND",
				"Method 'textDocument/hovr' is not registered.",
			},
		},
		{
			name: "error with suggestions",
			opts: ErrorOptions{
				Level:       ErrorLevelError,
				Problem:     "Unknown schema",
				Suggestions: []string{"Hover", "HoverParams"},
			},
			contains: []string{
				"Did you mean: Hover, HoverParams?",
			},
		},
		{
			name: "error with help commands",
			opts: ErrorOptions{
				Level:        ErrorLevelError,
				Problem:      "Contract violated",
				HelpCommands: []string{"See all methods: lspcontract methods"},
			},
			contains: []string{
				"→ See all methods: lspcontract methods",
			},
		},
		{
			name:     "warning message",
			opts:     ErrorOptions{Level: ErrorLevelWarning, Problem: "Guard is off"},
			contains: []string{"⚠️", "Guard is off"},
		},
		{
			name:     "info message",
			opts:     ErrorOptions{Level: ErrorLevelInfo, Problem: "Probe listening"},
			contains: []string{"ℹ️", "Probe listening"},
		},
		{
			name: "error with consequence",
			opts: ErrorOptions{
				Level:       ErrorLevelError,
				Context:     "CONTRACT VIOLATION",
				Problem:     "textDocument/hover result does not conform.",
				Consequence: "value at /contents does not match MarkupContent",
			},
			contains: []string{
				"textDocument/hover result does not conform.",
				"value at /contents does not match MarkupContent",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatError(tt.opts)

			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("FormatError() output missing expected string:\nExpected to contain: %q\nGot: %q", expected, result)
				}
			}
		})
	}
}

func TestMethodNotFoundError(t *testing.T) {
	result := MethodNotFoundError("textDocument/hovr", []string{"textDocument/hover"}, true)

	expected := []string{
		"METHOD NOT FOUND",
		"Method 'textDocument/hovr' is not registered.",
		"Did you mean: textDocument/hover?",
		"See all methods: lspcontract methods",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("MethodNotFoundError() missing expected string: %q", exp)
		}
	}
}

func TestNameNotFoundError(t *testing.T) {
	result := NameNotFoundError("Hovr", []string{"Hover"}, true)

	expected := []string{
		"NOT FOUND",
		"'Hovr' is neither a registered method nor a schema.",
		"Did you mean: Hover?",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("NameNotFoundError() missing expected string: %q", exp)
		}
	}
}

func TestContractViolationError(t *testing.T) {
	result := ContractViolationError("textDocument/hover", "params", "value at /position does not match Position: got missing", true)

	expected := []string{
		"CONTRACT VIOLATION",
		"textDocument/hover params does not conform.",
		"value at /position does not match Position: got missing",
		"lspcontract describe textDocument/hover",
	}

	for _, exp := range expected {
		if !strings.Contains(result, exp) {
			t.Errorf("ContractViolationError() missing expected string: %q", exp)
		}
	}
}

func TestConfigError(t *testing.T) {
	result := ConfigError("guard.inbound must be off, pass, warn or reject", true)

	for _, exp := range []string{"CONFIGURATION ERROR", "guard.inbound", "cat lspcontract.yaml"} {
		if !strings.Contains(result, exp) {
			t.Errorf("ConfigError() missing expected string: %q", exp)
		}
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, ErrorOptions{
		Level:   ErrorLevelError,
		Context: "TEST ERROR",
		Problem: "This is a test",
		NoColor: true,
	})

	if !strings.Contains(buf.String(), "TEST ERROR") {
		t.Errorf("WriteError() did not write to buffer correctly")
	}
}

func TestFormatSuccess(t *testing.T) {
	result := FormatSuccess("Payload conforms", true)

	if result != "✓ Payload conforms" {
		t.Errorf("FormatSuccess() = %q", result)
	}
}

func TestWriteSuccess(t *testing.T) {
	var buf bytes.Buffer
	WriteSuccess(&buf, "Test success", true)

	if buf.String() != "✓ Test success\n" {
		t.Errorf("WriteSuccess() wrote %q", buf.String())
	}
}

func TestWarning(t *testing.T) {
	result := Warning("Inbound checking is off", true)

	for _, exp := range []string{"⚠️", "Inbound checking is off"} {
		if !strings.Contains(result, exp) {
			t.Errorf("Warning() missing expected string: %q", exp)
		}
	}
}
