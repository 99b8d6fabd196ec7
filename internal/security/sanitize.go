package security

import (
	"reflect"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every tag and attribute, leaving plain text.
var stripPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from user-supplied text and trims surrounding
// whitespace. Empty input passes through unchanged. Validation checks shape
// and length; this checks content safety. Both run on every free-text field
// before persistence.
func Sanitize(input string) string {
	if input == "" {
		return input
	}
	return strings.TrimSpace(stripPolicy.Sanitize(input))
}

// SanitizeStruct applies Sanitize to every exported string field of a flat
// request struct, leaving non-string fields untouched. v must be a pointer
// to a struct; anything else is ignored.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if field.Kind() == reflect.String && field.CanSet() {
			field.SetString(Sanitize(field.String()))
		}
	}
}
