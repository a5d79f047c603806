// Package inputval validates form and JSON input using struct tags.
//
// Rules use go-playground/validator tags plus a `label` tag for the
// human-readable field name in error messages:
//
//	type createEventInput struct {
//		Name string `validate:"required,max=200" label:"Nama acara"`
//		Date string `validate:"required,datetime=2006-01-02" label:"Tanggal"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//		renderWithError(result.First())
//	}
package inputval

import (
	"fmt"
	"net/mail"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their label tag so messages read naturally.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Result holds validation error messages in field order.
type Result struct {
	Errors []string
}

// HasErrors reports whether validation failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" when validation passed.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate checks a struct against its validate tags and returns one message
// per failed field.
func Validate(input any) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Errors: []string{"Invalid input."}}
	}

	var out Result
	for _, fe := range verrs {
		out.Errors = append(out.Errors, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL.", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format.", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

// IsValidEmail reports whether s parses as a bare RFC 5322 address.
// Display-name forms ("Name <a@b>") are rejected; we store addresses only.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, _, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(s, "..") {
		return false
	}
	return true
}
