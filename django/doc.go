// Package django declares the Django settings convention as a typed
// classconf record: every framework setting is a struct field carrying its
// stock default, and flattening a Settings value yields the uppercase-keyed
// mapping a Django-style settings loader consumes.
//
// Default returns a fully resolved Settings; LoadProfile overlays a YAML
// profile on top of the defaults. Mutable defaults (the language table, the
// middleware list, template configuration and so on) are filled in by
// FillDefaults, which only touches fields still at their zero value.
package django
