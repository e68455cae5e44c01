// Package methods maps every LSP method name to the types of its
// registration options, its params and its result.
package methods

import (
	"errors"
	"fmt"
	"sort"

	"github.com/conduit-lang/lspcontract/internal/schema"
)

// ErrMethodNotRegistered is matched by every MethodNotRegisteredError
var ErrMethodNotRegistered = errors.New("method not registered")

// MethodNotRegisteredError is returned for a method name the registry does
// not know
type MethodNotRegisteredError struct {
	Method string
}

func (e *MethodNotRegisteredError) Error() string {
	return fmt.Sprintf("method %q is not registered", e.Method)
}

// Is makes errors.Is(err, ErrMethodNotRegistered) hold
func (e *MethodNotRegisteredError) Is(target error) bool {
	return target == ErrMethodNotRegistered
}

// Registry is a frozen method table. It has no mutation API and is safe for
// concurrent use.
type Registry struct {
	catalog     *schema.Catalog
	descriptors map[string]Descriptor
	names       []string
}

// NewRegistry freezes descriptors into a registry whose composite types are
// resolved against catalog
func NewRegistry(catalog *schema.Catalog, descriptors []Descriptor) (*Registry, error) {
	if catalog == nil {
		return nil, errors.New("registry needs a catalog")
	}

	r := &Registry{
		catalog:     catalog,
		descriptors: make(map[string]Descriptor, len(descriptors)),
		names:       make([]string, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Method == "" {
			return nil, errors.New("method name must not be empty")
		}
		if _, exists := r.descriptors[d.Method]; exists {
			return nil, fmt.Errorf("method %s is registered more than once", d.Method)
		}
		if d.Category.String() == "unknown" {
			return nil, fmt.Errorf("method %s has no category", d.Method)
		}
		r.descriptors[d.Method] = d
		r.names = append(r.names, d.Method)
	}
	sort.Strings(r.names)

	return r, nil
}

// Catalog returns the catalog the registry's types refer to
func (r *Registry) Catalog() *schema.Catalog {
	return r.catalog
}

// Lookup returns the descriptor for method
func (r *Registry) Lookup(method string) (Descriptor, error) {
	d, ok := r.descriptors[method]
	if !ok {
		return Descriptor{}, &MethodNotRegisteredError{Method: method}
	}
	return d, nil
}

// RegistrationOptionsFor returns the type of the options used to register
// method. A nil type with a nil error means the method takes no options.
func (r *Registry) RegistrationOptionsFor(method string) (schema.Type, error) {
	d, err := r.Lookup(method)
	if err != nil {
		return nil, err
	}
	return d.RegistrationOptions, nil
}

// ParamsTypeFor returns the type of the params method is sent with
func (r *Registry) ParamsTypeFor(method string) (schema.Type, error) {
	d, err := r.Lookup(method)
	if err != nil {
		return nil, err
	}
	return d.Params, nil
}

// ResultTypeFor returns the type of the result method is answered with
func (r *Registry) ResultTypeFor(method string) (schema.Type, error) {
	d, err := r.Lookup(method)
	if err != nil {
		return nil, err
	}
	return d.Result, nil
}

// Has reports whether method is registered
func (r *Registry) Has(method string) bool {
	_, ok := r.descriptors[method]
	return ok
}

// Methods returns the registered method names in sorted order
func (r *Registry) Methods() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Descriptors returns every descriptor ordered by method name
func (r *Registry) Descriptors() []Descriptor {
	result := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.descriptors[name])
	}
	return result
}

// Len returns the number of registered methods
func (r *Registry) Len() int {
	return len(r.names)
}

// RegistrationOptionsFor looks method up in the LSP registry
func RegistrationOptionsFor(method string) (schema.Type, error) {
	return LSP().RegistrationOptionsFor(method)
}

// ParamsTypeFor looks method up in the LSP registry
func ParamsTypeFor(method string) (schema.Type, error) {
	return LSP().ParamsTypeFor(method)
}

// ResultTypeFor looks method up in the LSP registry
func ResultTypeFor(method string) (schema.Type, error) {
	return LSP().ResultTypeFor(method)
}
