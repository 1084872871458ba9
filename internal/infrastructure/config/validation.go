package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// attributeNamePattern accepts HTML attribute names such as data-theme.
	attributeNamePattern = regexp.MustCompile(`^[A-Za-z_][-A-Za-z0-9_.:]*$`)
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their TOML key.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("css_token", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s != "" && !strings.ContainsAny(s, " \t\r\n\f")
		})

		_ = v.RegisterValidation("attribute_name", func(fl validator.FieldLevel) bool {
			return attributeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validateConfig checks every field and reports all problems at once.
func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}

	err := validatorInstance().Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	validationErrors := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, describeFieldError(fe))
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
}

// describeFieldError turns a validator failure into a message naming the TOML key.
func describeFieldError(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got: %v)", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "required":
		return fmt.Sprintf("%s cannot be empty", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got: %v)", field, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s (got: %v)", field, fe.Param(), fe.Value())
	case "css_token":
		return fmt.Sprintf("%s must be a non-empty name without whitespace (got: %q)", field, fe.Value())
	case "attribute_name":
		return fmt.Sprintf("%s must be \"class\" or a valid attribute name such as data-theme (got: %q)", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}

// fieldPath converts "Config.theme.themes[dark]" into "theme.themes[dark]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
