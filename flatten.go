package classconf

import (
	"fmt"
	"reflect"
)

// Flatten converts a declarative record into its flattened mapping.
//
// Fields are visited in declaration order. Empty values (nil, empty string,
// empty slice or map, false, numeric zero) are omitted entirely. Nested
// records are flattened recursively and nested under their uppercased field
// name; collections are resolved the same way. The reserved Extra field is
// applied after every regular field regardless of where it is declared, so
// its entries win key collisions (last write wins).
//
// Flatten is a pure function of the record's current field values: it holds
// no cache, and calling it again on an unmodified record yields an identical
// mapping.
func Flatten(rec Record) (Map, error) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: %T", ErrNilRecord, rec)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, rec)
	}
	return flattenStruct(v)
}

func flattenStruct(v reflect.Value) (Map, error) {
	t := v.Type()
	out := make(Map, t.NumField())

	var merge []reflect.Value

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := parseTag(sf)
		if tag.skip {
			continue
		}

		fv := v.Field(i)
		if isEmpty(fv) {
			continue
		}

		if sf.Name == mergeFieldName || tag.extra {
			merge = append(merge, fv)
			continue
		}

		value, err := resolveFieldValue(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		out[settingName(sf, tag)] = value
	}

	for _, fv := range merge {
		entries, err := resolveMergeValue(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", mergeFieldName, err)
		}
		for name, value := range entries {
			out[name] = value
		}
	}

	return out, nil
}

// resolveFieldValue nests records and collections; everything else is emitted
// as-is.
func resolveFieldValue(fv reflect.Value) (any, error) {
	switch x := fv.Interface().(type) {
	case Record:
		return Flatten(x)
	case Collection:
		return Resolve(x)
	default:
		return x, nil
	}
}

// resolveMergeValue resolves the reserved merge field into the entries to be
// spliced into the parent mapping. Records and collections resolve
// recursively; a string-keyed map is accepted directly, its keys run through
// the uppercase transform.
func resolveMergeValue(fv reflect.Value) (Map, error) {
	switch x := fv.Interface().(type) {
	case Record:
		return Flatten(x)
	case Collection:
		return Resolve(x)
	}

	mv := fv
	for mv.Kind() == reflect.Pointer || mv.Kind() == reflect.Interface {
		mv = mv.Elem()
	}
	if mv.Kind() == reflect.Map && mv.Type().Key().Kind() == reflect.String {
		out := make(Map, mv.Len())
		iter := mv.MapRange()
		for iter.Next() {
			out[upperSnake(iter.Key().String())] = iter.Value().Interface()
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: merge value must be a record, collection, or string-keyed map, got %s", ErrNotStruct, fv.Type())
}

// isEmpty reports whether a field value counts as empty and must be skipped:
// nil pointers and interfaces, zero-length strings, slices and maps, and zero
// scalars.
func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.String, reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil() || isEmpty(v.Elem())
	default:
		return v.IsZero()
	}
}
