package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	coolererrors "github.com/alexisbeaulieu97/cooler/pkg/errors"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("palette_color", func(fl validator.FieldLevel) bool {
			_, err := palette.Hex(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// convertValidationError normalizes validator errors into cooler validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "palette_color" {
			msg = fmt.Sprintf("%s: %q is not a hex color", field, ve.Value())
		}
		return coolererrors.NewValidationError(field, msg, err)
	}

	return coolererrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name and lowercases the rest, so
// "Document.light.primary" becomes "light.primary".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
