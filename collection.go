package classconf

import (
	"fmt"
	"reflect"
)

// Resolve converts a declarative collection into a mapping of its members.
//
// Membership is structural: every exported, non-func field of the declaring
// struct type is a member. Unexported fields and func-typed fields are
// excluded. Member values that are themselves records are flattened and
// nested; all other values are included as-is, empty or not. Member names are
// uppercased only for extra-style collections (see ExtraGroup).
func Resolve(col Collection) (Map, error) {
	upper := col.collectionVariant() == variantExtra

	v := reflect.ValueOf(col)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: %T", ErrNilRecord, col)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, col)
	}

	t := v.Type()
	out := make(Map, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		if sf.Type.Kind() == reflect.Func {
			continue
		}

		tag := parseTag(sf)
		if tag.skip {
			continue
		}

		fv := v.Field(i)
		name := memberName(sf, tag, upper)

		if rec, ok := fv.Interface().(Record); ok {
			if fv.Kind() == reflect.Pointer && fv.IsNil() {
				continue
			}
			nested, err := Flatten(rec)
			if err != nil {
				return nil, fmt.Errorf("member %s: %w", sf.Name, err)
			}
			out[name] = nested
			continue
		}

		out[name] = fv.Interface()
	}

	return out, nil
}
