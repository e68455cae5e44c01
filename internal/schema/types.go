// Package schema provides the type expressions and composite record definitions
// that describe the shape of Language Server Protocol payloads.
// Type expressions form a closed set of variants; composite records are held in
// a frozen Catalog and referenced by name.
package schema

import (
	"fmt"
	"strings"
)

// Kind identifies a primitive JSON value kind
type Kind int

const (
	// KindInvalid is the zero value and never resolves
	KindInvalid Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
)

// String returns the LSP name of the primitive kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "decimal"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// ParseKind converts an LSP primitive name to a Kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "boolean", "bool":
		return KindBool, nil
	case "integer", "uinteger", "int":
		return KindInteger, nil
	case "decimal", "float", "number":
		return KindFloat, nil
	case "string":
		return KindString, nil
	default:
		return KindInvalid, fmt.Errorf("unknown primitive kind: %s", s)
	}
}

// Type is a type expression. The set of implementations is closed to this
// package: PrimitiveType, OptionalType, UnionType, SequenceType, MappingType,
// CompositeType and AnyType.
type Type interface {
	// String returns the expression in LSP specification notation
	String() string

	typeExpr()
}

// PrimitiveType is a boolean, integer, decimal or string
type PrimitiveType struct {
	Kind Kind
}

// OptionalType accepts null in addition to whatever Inner accepts
type OptionalType struct {
	Inner Type
}

// UnionType accepts a value satisfying any alternative, tried in order.
// Build one with Union.
type UnionType struct {
	alternatives []Type
}

// Alternatives returns a copy of the alternatives in declared order
func (u UnionType) Alternatives() []Type {
	return append([]Type(nil), u.alternatives...)
}

// SequenceType is a homogeneous ordered list
type SequenceType struct {
	Element Type
}

// MappingType is an object with free string keys and homogeneous values
type MappingType struct {
	Value Type
}

// CompositeType references a named Schema in a Catalog
type CompositeType struct {
	Name string
}

// AnyType accepts every value
type AnyType struct{}

func (PrimitiveType) typeExpr() {}
func (OptionalType) typeExpr()  {}
func (UnionType) typeExpr()     {}
func (SequenceType) typeExpr()  {}
func (MappingType) typeExpr()   {}
func (CompositeType) typeExpr() {}
func (AnyType) typeExpr()       {}

// Primitive types shared by every catalog
var (
	Bool    Type = PrimitiveType{Kind: KindBool}
	Integer Type = PrimitiveType{Kind: KindInteger}
	Float   Type = PrimitiveType{Kind: KindFloat}
	String  Type = PrimitiveType{Kind: KindString}
)

// Primitive creates a primitive type of the given kind
func Primitive(kind Kind) Type {
	return PrimitiveType{Kind: kind}
}

// Optional creates a nullable version of inner
func Optional(inner Type) Type {
	return OptionalType{Inner: inner}
}

// Union creates a union of the given alternatives, preserving their order
func Union(alternatives ...Type) Type {
	alts := make([]Type, len(alternatives))
	copy(alts, alternatives)
	return UnionType{alternatives: alts}
}

// Sequence creates a list type
func Sequence(element Type) Type {
	return SequenceType{Element: element}
}

// Mapping creates a string-keyed map type
func Mapping(value Type) Type {
	return MappingType{Value: value}
}

// Composite creates a reference to the schema with the given name
func Composite(name string) Type {
	return CompositeType{Name: name}
}

// Any returns the unconstrained type
func Any() Type {
	return AnyType{}
}

func (p PrimitiveType) String() string {
	return p.Kind.String()
}

func (o OptionalType) String() string {
	return operand(o.Inner, false) + " | null"
}

func (u UnionType) String() string {
	if len(u.alternatives) == 0 {
		return "never"
	}
	parts := make([]string, len(u.alternatives))
	for i, alt := range u.alternatives {
		parts[i] = operand(alt, false)
	}
	return strings.Join(parts, " | ")
}

func (s SequenceType) String() string {
	return operand(s.Element, true) + "[]"
}

func (m MappingType) String() string {
	return "{ [key: string]: " + typeString(m.Value) + " }"
}

func (c CompositeType) String() string {
	if c.Name == "" {
		return "<unnamed>"
	}
	return c.Name
}

func (AnyType) String() string {
	return "LSPAny"
}

// typeString renders t, tolerating nil
func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// operand renders t for use inside a larger expression; unions need
// parentheses when they are the element of an array.
func operand(t Type, inArray bool) string {
	switch v := t.(type) {
	case nil:
		return "<nil>"
	case UnionType, OptionalType:
		if inArray {
			return "(" + v.String() + ")"
		}
	}
	return t.String()
}
