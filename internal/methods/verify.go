package methods

import (
	"fmt"

	"go.uber.org/multierr"
)

// Verify resolves every type of every descriptor and every field of every
// schema in the registry's catalog. All failures are reported together; each
// of them matches schema.ErrUnresolvable.
func Verify(r *Registry) error {
	var err error

	for _, d := range r.Descriptors() {
		for _, part := range parts {
			t, _ := d.Part(part)
			if t == nil {
				continue
			}
			if rerr := r.catalog.ResolveDeep(t); rerr != nil {
				err = multierr.Append(err, fmt.Errorf("method %s %s: %w", d.Method, part, rerr))
			}
		}
	}

	for _, name := range r.catalog.Names() {
		s, _ := r.catalog.Lookup(name)
		for _, f := range s.Fields() {
			if rerr := r.catalog.ResolveDeep(f.Type); rerr != nil {
				err = multierr.Append(err, fmt.Errorf("schema %s field %s: %w", name, f.WireName, rerr))
			}
		}
	}

	if err != nil {
		return fmt.Errorf("method table does not verify: %w", err)
	}
	return nil
}
