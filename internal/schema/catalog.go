package schema

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// FieldSpec describes one property of a composite record
type FieldSpec struct {
	// WireName is the property name as it appears in the JSON payload
	WireName string

	// Required fields must be present in the payload
	Required bool

	Type Type

	// Default is the value a missing non-required field stands for.
	// HasDefault distinguishes a nil default from no default at all.
	Default    any
	HasDefault bool
}

// Field creates a required field
func Field(wireName string, t Type) FieldSpec {
	return FieldSpec{WireName: wireName, Required: true, Type: t}
}

// OptionalField creates a field that may be omitted, standing for def when absent
func OptionalField(wireName string, t Type, def any) FieldSpec {
	return FieldSpec{WireName: wireName, Type: t, Default: def, HasDefault: true}
}

// Schema is a named composite record. Schemas are only created through a
// CatalogBuilder and cannot be modified once built.
type Schema struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// Name returns the schema name
func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the fields in declaration order
func (s *Schema) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the field with the given wire name
func (s *Schema) Field(wireName string) (FieldSpec, bool) {
	i, ok := s.index[wireName]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fields
func (s *Schema) Len() int {
	return len(s.fields)
}

// Catalog is a frozen set of schemas that CompositeType names resolve against.
// It is safe for concurrent use.
type Catalog struct {
	schemas map[string]*Schema
	names   []string
}

// Lookup returns the schema with the given name
func (c *Catalog) Lookup(name string) (*Schema, bool) {
	s, ok := c.schemas[name]
	return s, ok
}

// Names returns all schema names, sorted
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of schemas
func (c *Catalog) Len() int {
	return len(c.schemas)
}

// CatalogBuilder collects schema definitions and produces a Catalog.
// Definition errors are accumulated and reported by Build.
type CatalogBuilder struct {
	schemas map[string]*Schema
	order   []string
	errs    []error
}

// NewCatalogBuilder creates an empty builder
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		schemas: make(map[string]*Schema),
	}
}

// Define adds a schema with the given fields
func (b *CatalogBuilder) Define(name string, fields ...FieldSpec) *CatalogBuilder {
	return b.Extend(name, nil, fields...)
}

// Extend adds a schema whose fields are those of each base, in order,
// followed by fields. Bases must already be defined.
func (b *CatalogBuilder) Extend(name string, bases []string, fields ...FieldSpec) *CatalogBuilder {
	if name == "" {
		b.errs = append(b.errs, fmt.Errorf("schema name must not be empty"))
		return b
	}
	if _, exists := b.schemas[name]; exists {
		b.errs = append(b.errs, fmt.Errorf("schema %s is already defined", name))
		return b
	}

	var all []FieldSpec
	for _, base := range bases {
		parent, ok := b.schemas[base]
		if !ok {
			b.errs = append(b.errs, fmt.Errorf("schema %s extends undefined schema %s", name, base))
			return b
		}
		all = append(all, parent.fields...)
	}
	all = append(all, fields...)

	s := &Schema{
		name:   name,
		fields: all,
		index:  make(map[string]int, len(all)),
	}
	for i, f := range all {
		if err := checkField(name, f); err != nil {
			b.errs = append(b.errs, err)
			return b
		}
		if _, dup := s.index[f.WireName]; dup {
			b.errs = append(b.errs, fmt.Errorf("schema %s declares field %s more than once", name, f.WireName))
			return b
		}
		s.index[f.WireName] = i
	}

	b.schemas[name] = s
	b.order = append(b.order, name)
	return b
}

func checkField(schemaName string, f FieldSpec) error {
	if f.WireName == "" {
		return fmt.Errorf("schema %s has a field without a wire name", schemaName)
	}
	if !f.Required && !f.HasDefault {
		return fmt.Errorf("schema %s: optional field %s has no default", schemaName, f.WireName)
	}
	return nil
}

// Build freezes the collected schemas. It fails if any definition was invalid
// or if a field type does not resolve, for example a reference to a schema
// that was never defined.
func (b *CatalogBuilder) Build() (*Catalog, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", multierr.Combine(b.errs...))
	}

	c := &Catalog{
		schemas: make(map[string]*Schema, len(b.schemas)),
		names:   make([]string, 0, len(b.order)),
	}
	for _, name := range b.order {
		c.schemas[name] = b.schemas[name]
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	var err error
	for _, name := range b.order {
		for _, f := range c.schemas[name].fields {
			if rerr := c.ResolveDeep(f.Type); rerr != nil {
				err = multierr.Append(err, fmt.Errorf("schema %s field %s: %w", name, f.WireName, rerr))
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return c, nil
}
