// Package classconf turns typed, struct-based settings declarations into the
// flat uppercase-keyed mappings expected by web-framework settings loaders.
//
// A settings group is an ordinary struct that embeds Base. Flatten walks its
// fields in declaration order, skips empty values, uppercases the field names
// (ALLOWED_HOSTS style), recurses into nested records and collections, and
// splices the reserved Extra field into the parent mapping. Project wraps the
// result for lookup by name with a clear not-found error.
//
// The caller binds the resulting mapping itself; classconf never injects
// values into another scope.
package classconf
