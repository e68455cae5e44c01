package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/conduit-lang/lspcontract/internal/schema"
)

// MismatchError describes where a value stopped conforming to its type
type MismatchError struct {
	// Path is a JSON pointer to the offending value; empty for the root
	Path string

	// Expected is the type the value had to satisfy
	Expected string

	// Actual describes the value found, or "missing" for an absent field
	Actual string
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	at := e.Path
	if at == "" {
		at = "/"
	}
	return fmt.Sprintf("value at %s does not match %s: got %s", at, e.Expected, e.Actual)
}

func mismatch(path string, t schema.Type, value any) *MismatchError {
	return &MismatchError{Path: path, Expected: t.String(), Actual: describe(value)}
}

// IsMismatch reports whether err is an ordinary payload mismatch
func IsMismatch(err error) bool {
	var merr *MismatchError
	return errors.As(err, &merr)
}

func isUnresolvable(err error) bool {
	return errors.Is(err, schema.ErrUnresolvable)
}

func wrapUnresolvable(path string, err error) error {
	if path == "" {
		return err
	}
	return fmt.Errorf("at %s: %w", path, err)
}

// describe names the JSON kind of a decoded value
func describe(value any) string {
	if isNil(value) {
		return "null"
	}
	switch v := value.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return fmt.Sprintf("%s %s", kindOf(v), v.String())
	}
	switch kindOf(value) {
	case schema.KindInteger:
		return fmt.Sprintf("integer %v", value)
	case schema.KindFloat:
		return fmt.Sprintf("decimal %v", value)
	}
	if _, ok := sequenceOf(value); ok {
		return "array"
	}
	if _, ok := mappingOf(value); ok {
		return "object"
	}
	return fmt.Sprintf("unsupported %s", reflect.TypeOf(value))
}
