package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for configuration and
// scenario files
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("yaml_file", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(filepath.Ext(fl.Field().String())) {
			case ".yaml", ".yml":
				return true
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// Validator returns the shared validator for use outside the config package
func Validator() *validator.Validate {
	return validatorInstance()
}

// ValidationError reports the first field that failed validation
type ValidationError struct {
	Field string
	Tag   string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s failed validation for tag '%s'", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks cfg against its field rules
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Err: fmt.Errorf("configuration is nil")}
	}
	return ConvertValidationError(validatorInstance().Struct(cfg))
}

// ConvertValidationError turns validator output into a *ValidationError
// naming the first failing field by its snake_case key path
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		return &ValidationError{Field: keyPath(ve), Tag: ve.Tag(), Err: err}
	}
	return &ValidationError{Field: "config", Err: err}
}

// keyPath maps a struct namespace like Config.Animation.ReducedMotion to
// animation.reduced_motion
func keyPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 && !(runes[i-1] >= 'A' && runes[i-1] <= 'Z') {
			b.WriteByte('_')
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
