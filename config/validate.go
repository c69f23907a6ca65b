package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/philipp01105/logtree/core"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field names in errors are
// the config keys, not the Go names.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
			return name
		})
		// The tag is static, registration cannot fail.
		_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			_, err := core.ParseLevel(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// Validate checks the whole tree, nested outputs included
func (t *Tree) Validate() error {
	err := getValidator().Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, translateError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func translateError(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, strings.ToLower(strings.Replace(fe.Param(), " ", " is ", 1)))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, fe.Param(), fe.Value())
	case "loglevel":
		return fmt.Sprintf("%s: unknown log level %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// fieldPath drops the root type name and embedded struct names from a
// validator namespace: "Tree.outputs[1].Tree.level" becomes
// "outputs[1].level".
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for i, p := range parts {
		if i == 0 || p == "Tree" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}
