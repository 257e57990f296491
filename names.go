package classconf

import (
	"reflect"
	"strings"
	"unicode"
)

// mergeFieldName is the reserved record field whose resolved contents are
// spliced into the parent mapping instead of being nested under a key.
const mergeFieldName = "Extra"

// fieldTag holds the parsed `setting` tag of a struct field.
type fieldTag struct {
	name  string
	skip  bool
	extra bool
}

// parseTag reads the field's `setting` tag, falling back to the yaml tag for
// the name. An empty name keeps the name derived from the Go field.
func parseTag(f reflect.StructField) fieldTag {
	var tag fieldTag

	raw := f.Tag.Get("setting")
	if raw == "" {
		tag.name = yamlTagName(f)
		return tag
	}

	name, opts, _ := strings.Cut(raw, ",")
	switch name {
	case "-":
		tag.skip = true
	case "":
		tag.name = yamlTagName(f)
	default:
		tag.name = name
	}

	for _, opt := range strings.Split(opts, ",") {
		if opt == "extra" {
			tag.extra = true
		}
	}
	return tag
}

func yamlTagName(f reflect.StructField) string {
	tag := f.Tag.Get("yaml")
	if tag == "" || tag == "-" {
		return ""
	}
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// settingName derives the uppercase key for a record field: the tag name when
// present, the Go field name otherwise, both run through the UPPER_SNAKE
// transform.
func settingName(f reflect.StructField, tag fieldTag) string {
	if tag.name != "" {
		return upperSnake(tag.name)
	}
	return upperSnake(f.Name)
}

// memberName derives a collection member's key. Plain groups keep the
// declared name (or tag name) untouched; extra-style groups uppercase it.
func memberName(f reflect.StructField, tag fieldTag, upper bool) string {
	name := tag.name
	if name == "" {
		name = f.Name
	}
	if upper {
		return upperSnake(name)
	}
	return name
}

// upperSnake converts CamelCase or snake_case to UPPER_SNAKE. Acronym runs
// stay together: UseTZ becomes USE_TZ, CSRFCookieName becomes
// CSRF_COOKIE_NAME.
func upperSnake(name string) string {
	runes := []rune(name)

	var b strings.Builder
	b.Grow(len(runes) + len(runes)/4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
