// Package validation decodes request payloads into typed inputs and reports every
// violated field constraint at once.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BodyField names the payload as a whole when an error cannot be tied to one field.
const BodyField = "body"

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when a payload fails validation. It lists every violation.
type Error struct {
	Fields []FieldError
}

func NewError(fields ...FieldError) *Error {
	return &Error{Fields: fields}
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has at least one violation.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *Error) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

// Decode reads a JSON object from r into dst and validates it. dst must be a pointer
// to one of the input structs of this package. The returned error is a *Error for
// anything the caller sent wrong.
func Decode(r io.Reader, dst any) error {
	verr := &Error{}

	dec := json.NewDecoder(r)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			verr.add(BodyField, "request body is required")
			return verr
		case errors.As(err, &typeErr):
			// the decoder keeps filling the remaining fields, so validation below still
			// reports everything else.
			field := typeErr.Field
			if field == "" {
				verr.add(BodyField, "must be a JSON object")
				return verr
			}
			verr.add(field, "must be "+describeKind(typeErr.Type))
		default:
			verr.add(BodyField, "malformed JSON")
			return verr
		}
	}

	if n, ok := dst.(interface{ Normalize() }); ok {
		n.Normalize()
	}

	if err := Struct(dst); err != nil {
		var fieldErrs *Error
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, f := range fieldErrs.Fields {
			if !verr.Has(f.Field) {
				verr.Fields = append(verr.Fields, f)
			}
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Struct runs the tag constraints of v.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validate: %w", err)
	}
	verr := &Error{}
	for _, fe := range ves {
		verr.add(fe.Field(), message(fe))
	}
	return verr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "gt":
		if fe.Param() == "0" {
			return "must be a positive integer"
		}
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "date":
		return "must be a date (YYYY-MM-DD)"
	}
	return "is invalid"
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	}
	return "a " + t.Kind().String()
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
