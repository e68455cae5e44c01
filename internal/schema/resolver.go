package schema

import (
	"errors"
	"fmt"
)

// ShapeKind classifies a resolved type expression
type ShapeKind int

const (
	ShapePrimitive ShapeKind = iota + 1
	ShapeOptional
	ShapeUnion
	ShapeSequence
	ShapeMapping
	ShapeComposite
	ShapeAny
)

// String returns the lowercase name of the shape kind
func (k ShapeKind) String() string {
	switch k {
	case ShapePrimitive:
		return "primitive"
	case ShapeOptional:
		return "optional"
	case ShapeUnion:
		return "union"
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	case ShapeComposite:
		return "composite"
	case ShapeAny:
		return "any"
	default:
		return "unknown"
	}
}

// Shape is the classification of one type expression together with its
// direct constituents. Only the members relevant to Kind are set.
type Shape struct {
	Kind ShapeKind

	// Primitive is set for ShapePrimitive
	Primitive Kind

	// Inner is the wrapped type of an optional, the element of a sequence or
	// the value type of a mapping
	Inner Type

	// Alternatives is set for ShapeUnion, in declared order. It is a copy.
	Alternatives []Type

	// Schema is set for ShapeComposite
	Schema *Schema
}

// ErrUnresolvable is matched by every error reporting a malformed type expression
var ErrUnresolvable = errors.New("unresolvable type expression")

// UnresolvableError reports a type expression that has no valid shape.
// It signals a defect in a schema or method table, never a bad payload.
type UnresolvableError struct {
	Type   string
	Reason string
}

// Error implements the error interface
func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("unresolvable type %s: %s", e.Type, e.Reason)
}

// Is reports whether target is ErrUnresolvable
func (e *UnresolvableError) Is(target error) bool {
	return target == ErrUnresolvable
}

func unresolvable(t Type, reason string) error {
	return &UnresolvableError{Type: typeString(t), Reason: reason}
}

// Resolve classifies t and exposes its direct constituents. It does not look
// inside the constituents; see ResolveDeep.
func (c *Catalog) Resolve(t Type) (Shape, error) {
	switch v := t.(type) {
	case nil:
		return Shape{}, unresolvable(t, "missing type")

	case PrimitiveType:
		switch v.Kind {
		case KindBool, KindInteger, KindFloat, KindString:
			return Shape{Kind: ShapePrimitive, Primitive: v.Kind}, nil
		}
		return Shape{}, unresolvable(t, fmt.Sprintf("unknown primitive kind %d", int(v.Kind)))

	case OptionalType:
		if v.Inner == nil {
			return Shape{}, unresolvable(t, "optional without inner type")
		}
		return Shape{Kind: ShapeOptional, Inner: v.Inner}, nil

	case UnionType:
		if len(v.alternatives) == 0 {
			return Shape{}, unresolvable(t, "union without alternatives")
		}
		return Shape{Kind: ShapeUnion, Alternatives: v.Alternatives()}, nil

	case SequenceType:
		if v.Element == nil {
			return Shape{}, unresolvable(t, "sequence without element type")
		}
		return Shape{Kind: ShapeSequence, Inner: v.Element}, nil

	case MappingType:
		if v.Value == nil {
			return Shape{}, unresolvable(t, "mapping without value type")
		}
		return Shape{Kind: ShapeMapping, Inner: v.Value}, nil

	case CompositeType:
		if v.Name == "" {
			return Shape{}, unresolvable(t, "composite without schema name")
		}
		s, ok := c.Lookup(v.Name)
		if !ok {
			return Shape{}, unresolvable(t, fmt.Sprintf("schema %s is not defined", v.Name))
		}
		return Shape{Kind: ShapeComposite, Schema: s}, nil

	case AnyType:
		return Shape{Kind: ShapeAny}, nil
	}

	return Shape{}, unresolvable(t, fmt.Sprintf("unsupported expression %T", t))
}

// ResolveDeep resolves t and every expression nested in it, following each
// composite reference once. It returns the first failure found.
func (c *Catalog) ResolveDeep(t Type) error {
	return c.resolveDeep(t, make(map[string]bool))
}

func (c *Catalog) resolveDeep(t Type, seen map[string]bool) error {
	shape, err := c.Resolve(t)
	if err != nil {
		return err
	}

	switch shape.Kind {
	case ShapeOptional, ShapeSequence, ShapeMapping:
		return c.resolveDeep(shape.Inner, seen)

	case ShapeUnion:
		for _, alt := range shape.Alternatives {
			if err := c.resolveDeep(alt, seen); err != nil {
				return err
			}
		}

	case ShapeComposite:
		name := shape.Schema.Name()
		if seen[name] {
			return nil
		}
		seen[name] = true
		for _, f := range shape.Schema.fields {
			if err := c.resolveDeep(f.Type, seen); err != nil {
				return fmt.Errorf("%s.%s: %w", name, f.WireName, err)
			}
		}
	}

	return nil
}
