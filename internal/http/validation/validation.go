package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// FromBindError converts a bind/validation error into a field->message map.
// dst: pointer to the struct that was bound (used to read form tags).
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param(), fe.StructField())
		}
		return out
	}

	// Other bind errors (type mismatch etc)
	out["_"] = "Submitted form data is invalid."
	return out
}

// Joined returns the field messages concatenated in a stable order,
// required-field messages first. The login form shows a single line.
func (fe FieldErrors) Joined(order ...string) string {
	var b strings.Builder
	for _, key := range order {
		if msg, ok := fe[key]; ok {
			b.WriteString(msg)
		}
	}
	for key, msg := range fe {
		if !contains(order, key) {
			b.WriteString(msg)
		}
	}
	return b.String()
}

func contains(keys []string, k string) bool {
	for _, v := range keys {
		if v == k {
			return true
		}
	}
	return false
}

func fieldKey(dst any, structField string) string {
	// resolve the form tag (form:"username")
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("form")
	if tag == "" {
		return strings.ToLower(structField)
	}
	// drop options after comma, e.g. form:"email,omitempty"
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param, field string) string {
	switch tag {
	case "required":
		return field + " is required. "
	case "min":
		return "Must be at least " + param + " characters. "
	case "max":
		return "Must be at most " + param + " characters. "
	case "gt":
		return "Must be greater than " + param + ". "
	default:
		return "Invalid value. "
	}
}
