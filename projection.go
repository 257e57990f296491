package classconf

import (
	"fmt"
	"reflect"
)

// Projection exposes a flattened record's entries by name. It snapshots the
// mapping when built: mutating the record afterwards does not change an
// existing projection, so a projection is safe to read from multiple
// goroutines.
type Projection struct {
	record string
	values Map
}

// Project flattens the record once and wraps the result for lookup by name.
func Project(rec Record) (*Projection, error) {
	values, err := Flatten(rec)
	if err != nil {
		return nil, err
	}

	t := reflect.TypeOf(rec)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return &Projection{record: t.Name(), values: values}, nil
}

// Get returns the value stored under the given uppercase name. Unknown names,
// including those an Extra field would have produced dynamically, yield an
// error wrapping ErrSettingNotFound that names both the missing setting and
// the record type.
func (p *Projection) Get(name string) (any, error) {
	value, ok := p.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no setting %q", ErrSettingNotFound, p.record, name)
	}
	return value, nil
}

// Has reports whether the projection contains the given name.
func (p *Projection) Has(name string) bool {
	return p.values.Has(name)
}

// Names returns every projected setting name in sorted order.
func (p *Projection) Names() []string {
	return p.values.Names()
}

// Values returns a shallow copy of the underlying mapping.
func (p *Projection) Values() Map {
	out := make(Map, len(p.values))
	for name, value := range p.values {
		out[name] = value
	}
	return out
}

// Record returns the name of the record type the projection was built from.
func (p *Projection) Record() string {
	return p.record
}
