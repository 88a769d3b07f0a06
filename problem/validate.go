package problem

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/dptrace/tsp"
)

var validate = newValidator()

// newValidator reports field names as they appear in documents.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"mapstructure", "yaml"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return fld.Name
	})
	err := v.RegisterValidation("city_limit", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 1 && n <= tsp.HardMaxCities
	})
	if err != nil {
		panic(err)
	}

	return v
}

// validateStruct checks the validate tags of s and wraps failures in ErrInvalidSpec.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(msgs, "; "))
}

// formatFieldError renders a single field failure.
func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), strings.SplitN(e.Namespace(), ".", 2)[0]+".")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "city_limit":
		return fmt.Sprintf("%s must be between 1 and %d", field, tsp.HardMaxCities)
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}
