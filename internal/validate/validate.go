// Package validate runs struct-tag validation for service inputs and reports
// failures as *domain.ValidationError keyed by the json field names.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank rejects strings that are empty after trimming whitespace.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// Struct runs the struct-tag rules and merges their failures with extra,
// returning a *domain.ValidationError when anything failed.
func Struct(s any, extra ...domain.FieldError) error {
	var errs []domain.FieldError

	if err := v.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, domain.FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
		}
	}

	errs = append(errs, extra...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fieldPath drops the struct name from the namespace: "CreateCardInput.front" -> "front".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "notblank":
		return "must not be blank"
	case "max":
		if fe.Kind() == reflect.String {
			return "max " + fe.Param() + " characters"
		}
		return "max " + fe.Param()
	case "min":
		return "min " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	default:
		return "invalid (" + fe.Tag() + ")"
	}
}
