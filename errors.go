package classconf

import "errors"

var (
	// ErrNotStruct is returned when a record or collection value is not a
	// struct or a pointer to one.
	ErrNotStruct = errors.New("declarative type must be a struct or a pointer to a struct")
	// ErrNilRecord is returned when a record is a nil pointer.
	ErrNilRecord = errors.New("declarative record is nil")
	// ErrSettingNotFound is returned when a name is absent from a flattened
	// mapping or projection.
	ErrSettingNotFound = errors.New("setting not found")
)
