// Package validation wraps go-playground/validator for the client's forms.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(fieldLabel)
	})
	return validate
}

// fieldLabel names a field by its "label" tag, falling back to the
// lowercased Go name.
func fieldLabel(f reflect.StructField) string {
	if label := f.Tag.Get("label"); label != "" {
		return label
	}
	return strings.ToLower(f.Name)
}

// FieldError names one rejected form field.
type FieldError struct {
	Field string
	Tag   string
}

func (fe FieldError) String() string {
	switch fe.Tag {
	case "required":
		return fe.Field + " is required"
	case "eqfield":
		return fe.Field + " does not match"
	default:
		return fe.Field + " is invalid"
	}
}

// Struct returns the rejected fields of form, or nil when it is valid.
func Struct(form any) ([]FieldError, error) {
	err := instance().Struct(form)
	if err == nil {
		return nil, nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, errors.Wrap(err, "validate form")
	}
	res := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		res = append(res, FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return res, nil
}

// Describe joins field errors into one line.
func Describe(fields []FieldError) string {
	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msgs = append(msgs, fe.String())
	}
	return strings.Join(msgs, "; ")
}
