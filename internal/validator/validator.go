// Package validator wraps go-playground/validator with the rules used by
// request payloads.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllowedEmailDomains are the only domains accepted by the prompt-copy gate.
var AllowedEmailDomains = []string{"gmail.com", "icloud.com"}

var basicEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError maps json field names to the failed rule.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := e.Fields()
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", f, e.Errors[f]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields returns the failed field names, sorted.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Validator validates structs using `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports json tag names and knows the custom rules.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}
	mustRegister("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister("basic_email", func(fl validator.FieldLevel) bool {
		return IsBasicEmail(fl.Field().String())
	})
	mustRegister("allowed_domain", func(fl validator.FieldLevel) bool {
		return IsAllowedDomain(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate returns a *ValidationError when any rule fails.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		errs[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Errors: errs}
}

// IsBasicEmail reports whether s looks like local@domain.tld.
func IsBasicEmail(s string) bool {
	return basicEmail.MatchString(s)
}

// IsAllowedDomain reports whether the domain of email is allow-listed, ignoring case.
func IsAllowedDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, d := range AllowedEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}
