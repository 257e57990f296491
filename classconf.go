package classconf

import (
	"fmt"
	"sort"
)

// Record marks a struct as a declarative settings record. Satisfy it by
// embedding Base; Flatten walks the struct's own fields.
type Record interface {
	declarativeRecord()
}

// Base is embedded by settings structs to mark them as declarative records.
type Base struct{}

func (Base) declarativeRecord() {}

// Collection marks a struct as a declarative group of named sub-settings.
// Satisfy it by embedding Group or ExtraGroup. Membership is structural: the
// declaring type's exported, non-func fields are the collection's members, so
// every value of a given collection type resolves the same way.
type Collection interface {
	collectionVariant() collectionVariant
}

type collectionVariant int

const (
	variantPlain collectionVariant = iota
	variantExtra
)

// Group is embedded by collection structs whose member names are emitted as
// declared (or as their setting/yaml tag names).
type Group struct{}

func (Group) collectionVariant() collectionVariant { return variantPlain }

// ExtraGroup is embedded by collection structs holding ad hoc user settings.
// Member names are uppercased on resolve so they can be merged straight into
// a parent mapping.
type ExtraGroup struct{}

func (ExtraGroup) collectionVariant() collectionVariant { return variantExtra }

// Map is a flattened settings mapping keyed by uppercase setting names.
type Map map[string]any

// Has reports whether the mapping contains the given name.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Get returns the value stored under name, or an error wrapping
// ErrSettingNotFound when the name is absent.
func (m Map) Get(name string) (any, error) {
	value, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSettingNotFound, name)
	}
	return value, nil
}

// Names returns the mapping's keys in sorted order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
