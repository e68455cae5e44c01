package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
	ErrorLevelInfo
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Consequence  string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	❌ METHOD NOT FOUND: textDocument/hovr
//	   Method 'textDocument/hovr' is not registered.
//
//	   Did you mean: textDocument/hover?
//
//	   → See all methods: lspcontract methods
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	headerColor, bodyColor, symbol := levelStyle(opts.Level)
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
		if opts.Problem != "" {
			bodyColor.Fprintf(&b, "   %s\n", opts.Problem)
		}
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if opts.Consequence != "" {
		b.WriteString("\n")
		bodyColor.Fprintf(&b, "   %s\n", opts.Consequence)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

func levelStyle(level ErrorLevel) (header, body *color.Color, symbol string) {
	switch level {
	case ErrorLevelWarning:
		return color.New(color.FgYellow, color.Bold), color.New(color.FgYellow), "⚠️"
	case ErrorLevelInfo:
		return color.New(color.FgCyan, color.Bold), color.New(color.FgCyan), "ℹ️"
	default:
		return color.New(color.FgRed, color.Bold), color.New(color.FgRed), "❌"
	}
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// MethodNotFoundError reports a method missing from the registry
func MethodNotFoundError(method string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "METHOD NOT FOUND",
		Problem:     fmt.Sprintf("Method '%s' is not registered.", method),
		Suggestions: suggestions,
		HelpCommands: []string{
			"See all methods: lspcontract methods",
			"Get help: lspcontract describe --help",
		},
		NoColor: noColor,
	})
}

// NameNotFoundError reports a name that is neither a method nor a schema
func NameNotFoundError(name string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "NOT FOUND",
		Problem:     fmt.Sprintf("'%s' is neither a registered method nor a schema.", name),
		Suggestions: suggestions,
		HelpCommands: []string{
			"See all methods: lspcontract methods",
			"Get help: lspcontract describe --help",
		},
		NoColor: noColor,
	})
}

// ContractViolationError reports a payload that does not conform to its
// declared type
func ContractViolationError(method, part, message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "CONTRACT VIOLATION",
		Problem:     fmt.Sprintf("%s %s does not conform.", method, part),
		Consequence: message,
		HelpCommands: []string{
			fmt.Sprintf("See the declared types: lspcontract describe %s", method),
		},
		NoColor: noColor,
	})
}

// ConfigError creates a standardized configuration error
func ConfigError(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelError,
		Context: "CONFIGURATION ERROR",
		Problem: message,
		HelpCommands: []string{
			"View config: cat lspcontract.yaml",
			"Get help: lspcontract --help",
		},
		NoColor: noColor,
	})
}

// Warning creates a standardized warning message
func Warning(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelWarning,
		Problem: message,
		NoColor: noColor,
	})
}
