package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/render"
	"github.com/nyxui/nyx/theme"
)

// ErrInvalidConfig matches every *ValidationError.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ValidationError reports the first invalid field, named by its YAML path.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidConfig) hold for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func newValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("hexcolor_opt", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			_, err := nyx.ParseHex(s)
			return err == nil
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			name := strings.ToLower(strings.TrimSpace(fl.Field().String()))
			if name == "custom" {
				return true
			}
			_, err := theme.Parse(name, theme.Colors{})
			return err == nil
		})

		_ = v.RegisterValidation("size_name", func(fl validator.FieldLevel) bool {
			_, err := render.ParseSize(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation.
func Validate(f *File) error {
	if f == nil {
		return newValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(err)
	}

	if strings.EqualFold(strings.TrimSpace(f.Blob.Theme), "custom") {
		if f.Blob.Custom.From == "" {
			return newValidationError("blob.custom.from", "required for a custom theme", nil)
		}
		if f.Blob.Custom.To == "" {
			return newValidationError("blob.custom.to", "required for a custom theme", nil)
		}
	}

	if (f.Paint.Width > 0) != (f.Paint.Height > 0) {
		return newValidationError("paint.height", "width and height must be set together", nil)
	}
	if (f.Paint.DisplayWidth > 0) != (f.Paint.DisplayHeight > 0) {
		return newValidationError("paint.display_height", "display_width and display_height must be set together", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("failed validation for tag '%s=%s'", ve.Tag(), ve.Param())
		}
		return newValidationError(field, msg, err)
	}
	return newValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root type from the namespace, e.g.
// "File.blob.complexity" becomes "blob.complexity".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
