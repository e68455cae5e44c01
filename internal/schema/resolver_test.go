package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalogBuilder().
		Define("Point", Field("x", Integer), Field("y", Integer)).
		Define("Tree", Field("value", String), OptionalField("children", Sequence(Composite("Tree")), nil)).
		Build()
	require.NoError(t, err)
	return c
}

func TestResolve_Variants(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name string
		typ  Type
		kind ShapeKind
	}{
		{"bool", Bool, ShapePrimitive},
		{"integer", Integer, ShapePrimitive},
		{"float", Float, ShapePrimitive},
		{"string", String, ShapePrimitive},
		{"optional", Optional(String), ShapeOptional},
		{"union", Union(String, Integer), ShapeUnion},
		{"sequence", Sequence(Integer), ShapeSequence},
		{"mapping", Mapping(Bool), ShapeMapping},
		{"composite", Composite("Point"), ShapeComposite},
		{"any", Any(), ShapeAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := c.Resolve(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, shape.Kind)
		})
	}
}

func TestResolve_Constituents(t *testing.T) {
	c := testCatalog(t)

	shape, err := c.Resolve(Optional(Sequence(Integer)))
	require.NoError(t, err)
	assert.Equal(t, Sequence(Integer), shape.Inner)

	shape, err = c.Resolve(Union(String, Integer, Bool))
	require.NoError(t, err)
	assert.Equal(t, []Type{String, Integer, Bool}, shape.Alternatives)

	// the union itself is unaffected by writes through the shape
	union := Union(String, Integer)
	shape, err = c.Resolve(union)
	require.NoError(t, err)
	shape.Alternatives[0] = Bool
	alts := union.(UnionType).Alternatives()
	alts[1] = Bool
	assert.Equal(t, []Type{String, Integer}, union.(UnionType).Alternatives())
	assert.Equal(t, "string | integer", union.String())

	shape, err = c.Resolve(Mapping(Float))
	require.NoError(t, err)
	assert.Equal(t, Float, shape.Inner)

	shape, err = c.Resolve(Composite("Point"))
	require.NoError(t, err)
	require.NotNil(t, shape.Schema)
	assert.Equal(t, "Point", shape.Schema.Name())

	shape, err = c.Resolve(Integer)
	require.NoError(t, err)
	assert.Equal(t, KindInteger, shape.Primitive)
}

func TestResolve_Unresolvable(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name string
		typ  Type
	}{
		{"nil", nil},
		{"invalid primitive", PrimitiveType{}},
		{"out of range primitive", PrimitiveType{Kind: Kind(42)}},
		{"empty optional", OptionalType{}},
		{"empty union", UnionType{}},
		{"empty sequence", SequenceType{}},
		{"empty mapping", MappingType{}},
		{"unnamed composite", CompositeType{}},
		{"unknown composite", Composite("Nope")},
		{"pointer variant", &PrimitiveType{Kind: KindString}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Resolve(tt.typ)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnresolvable))

			var uerr *UnresolvableError
			assert.True(t, errors.As(err, &uerr))
		})
	}
}

func TestResolveDeep(t *testing.T) {
	c := testCatalog(t)

	assert.NoError(t, c.ResolveDeep(Composite("Tree")))
	assert.NoError(t, c.ResolveDeep(Optional(Sequence(Union(Composite("Point"), Mapping(Any()))))))

	err := c.ResolveDeep(Sequence(Union(String, Composite("Missing"))))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvable)
	assert.Contains(t, err.Error(), "Missing")

	err = c.ResolveDeep(Mapping(OptionalType{}))
	assert.ErrorIs(t, err, ErrUnresolvable)
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Integer, "integer"},
		{Float, "decimal"},
		{Optional(String), "string | null"},
		{Sequence(Composite("Location")), "Location[]"},
		{Sequence(Union(Composite("Command"), Composite("CodeAction"))), "(Command | CodeAction)[]"},
		{Optional(Union(Composite("Location"), Sequence(Composite("Location")))), "Location | Location[] | null"},
		{Mapping(Sequence(Composite("TextEdit"))), "{ [key: string]: TextEdit[] }"},
		{Any(), "LSPAny"},
		{UnionType{}, "never"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("uinteger")
	require.NoError(t, err)
	assert.Equal(t, KindInteger, kind)

	kind, err = ParseKind("decimal")
	require.NoError(t, err)
	assert.Equal(t, KindFloat, kind)

	_, err = ParseKind("object")
	assert.Error(t, err)
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "union", ShapeUnion.String())
	assert.Equal(t, "any", ShapeAny.String())
	assert.Equal(t, "unknown", ShapeKind(0).String())
}
