// Package validation checks input schemas declared with `validate` struct
// tags and reports failures keyed by JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Errors maps a JSON field path (e.g. "label", "images[0].url") to a message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		instance = v
	})
	return instance
}

// Struct validates v. It returns nil, an Errors value, or an error when v is
// not a struct.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		out[field] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("Must contain at least %s character(s)", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "startswith":
		return fmt.Sprintf("Must start with %q", fe.Param())
	case "url", "http_url":
		return "Must be a valid URL"
	case "email":
		return "Must be a valid email"
	case "uuid", "uuid4":
		return "Must be a valid id"
	default:
		return "Invalid value"
	}
}
