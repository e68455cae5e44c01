package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/conduit-lang/lspcontract/internal/schema"
)

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns the validator for the LSP catalog
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New(schema.LSP())
	})
	return defaultValidator
}

// Validate reports whether value conforms to t in the LSP catalog
func Validate(value any, t schema.Type) bool {
	return Default().Validate(value, t)
}

// Check is Validate with the reason for a failure
func Check(value any, t schema.Type) error {
	return Default().Check(value, t)
}

// Decode parses JSON into the generic form the validator expects. Numbers
// are kept as json.Number so integers and decimals stay distinguishable.
// Empty input decodes to nil, standing for an absent payload.
func Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode payload: unexpected data after JSON value")
	}
	return value, nil
}
