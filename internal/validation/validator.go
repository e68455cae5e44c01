// Package validation checks decoded JSON values against schema type expressions.
// Checking is a pure function of the value and the type: nothing is cached,
// mutated or normalized, and a Validator may be shared by any number of
// goroutines.
package validation

import (
	"encoding/json"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/conduit-lang/lspcontract/internal/schema"
)

// Validator checks values against type expressions resolved in one catalog.
//
// Values are expected in the form a json.Decoder with UseNumber produces, as
// returned by Decode. Plain json.Unmarshal into any turns every number into a
// float64, which never satisfies an integer field.
type Validator struct {
	catalog *schema.Catalog
}

// New creates a validator for the given catalog. Decode payloads with
// Decode (or UseNumber) before checking them.
func New(catalog *schema.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Catalog returns the catalog composite types are resolved against
func (v *Validator) Catalog() *schema.Catalog {
	return v.catalog
}

// Validate reports whether value conforms to t. A malformed t never conforms;
// use Check to tell that apart from an ordinary mismatch.
func (v *Validator) Validate(value any, t schema.Type) bool {
	return v.Check(value, t) == nil
}

// Check returns nil if value conforms to t, a *MismatchError if it does not,
// or an error matching schema.ErrUnresolvable if t itself is malformed.
func (v *Validator) Check(value any, t schema.Type) error {
	return v.check(value, t, "")
}

// CheckNull returns nil if value is null and a *MismatchError otherwise. It
// stands in for Check where a message declares no payload at all.
func CheckNull(value any) error {
	if isNil(value) {
		return nil
	}
	return &MismatchError{Expected: "null", Actual: describe(value)}
}

func (v *Validator) check(value any, t schema.Type, path string) error {
	shape, err := v.catalog.Resolve(t)
	if err != nil {
		return wrapUnresolvable(path, err)
	}

	switch shape.Kind {
	case schema.ShapeAny:
		return nil

	case schema.ShapeOptional:
		if isNil(value) {
			return nil
		}
		return v.check(value, shape.Inner, path)

	case schema.ShapePrimitive:
		if !matchesPrimitive(value, shape.Primitive) {
			return mismatch(path, t, value)
		}
		return nil

	case schema.ShapeUnion:
		var unresolved error
		for _, alt := range shape.Alternatives {
			err := v.check(value, alt, path)
			if err == nil {
				return nil
			}
			if unresolved == nil && isUnresolvable(err) {
				unresolved = err
			}
		}
		if unresolved != nil {
			return unresolved
		}
		return mismatch(path, t, value)

	case schema.ShapeSequence:
		items, ok := sequenceOf(value)
		if !ok {
			return mismatch(path, t, value)
		}
		for i, item := range items {
			if err := v.check(item, shape.Inner, path+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
		}
		return nil

	case schema.ShapeMapping:
		entries, ok := mappingOf(value)
		if !ok {
			return mismatch(path, t, value)
		}
		for _, key := range sortedKeys(entries) {
			if err := v.check(entries[key], shape.Inner, path+"/"+escapePointer(key)); err != nil {
				return err
			}
		}
		return nil

	case schema.ShapeComposite:
		record, ok := mappingOf(value)
		if !ok {
			return mismatch(path, t, value)
		}
		// Keys the schema does not declare are ignored.
		for _, f := range shape.Schema.Fields() {
			fieldPath := path + "/" + escapePointer(f.WireName)
			item, present := record[f.WireName]
			if !present {
				if f.Required {
					return &MismatchError{Path: fieldPath, Expected: f.Type.String(), Actual: "missing"}
				}
				continue
			}
			if err := v.check(item, f.Type, fieldPath); err != nil {
				return err
			}
		}
		return nil
	}

	return wrapUnresolvable(path, &schema.UnresolvableError{Type: t.String(), Reason: "unknown shape " + shape.Kind.String()})
}

// matchesPrimitive compares the intrinsic kind of value with kind. Integral
// values satisfy decimal; nothing else crosses kinds.
func matchesPrimitive(value any, kind schema.Kind) bool {
	actual := kindOf(value)
	if actual == kind {
		return true
	}
	return kind == schema.KindFloat && actual == schema.KindInteger
}

// kindOf returns the primitive kind of value, or KindInvalid for anything
// that is not a primitive.
func kindOf(value any) schema.Kind {
	switch v := value.(type) {
	case bool:
		return schema.KindBool
	case string:
		return schema.KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return schema.KindInteger
	case float32, float64:
		return schema.KindFloat
	case json.Number:
		return numberKind(v)
	}
	return schema.KindInvalid
}

var numberLiteral = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// numberKind classifies a json.Number by its literal: anything with a
// fraction or exponent is a decimal, everything else an integer of any
// magnitude. Only text outside the JSON number grammar is invalid.
func numberKind(n json.Number) schema.Kind {
	s := string(n)
	if !numberLiteral.MatchString(s) {
		return schema.KindInvalid
	}
	if strings.ContainsAny(s, ".eE") {
		return schema.KindFloat
	}
	return schema.KindInteger
}

// isNil reports whether value is null. Nil slices, maps and pointers count as
// null because they encode as null.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sequenceOf returns the elements of a slice or array value
func sequenceOf(value any) ([]any, bool) {
	if isNil(value) {
		return nil, false
	}
	if v, ok := value.([]any); ok {
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// mappingOf returns the entries of a map value with string keys
func mappingOf(value any) (map[string]any, bool) {
	if isNil(value) {
		return nil, false
	}
	if v, ok := value.(map[string]any); ok {
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	entries := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries[iter.Key().String()] = iter.Value().Interface()
	}
	return entries, true
}

// sortedKeys orders map keys so the reported mismatch does not depend on
// map iteration order
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapePointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
