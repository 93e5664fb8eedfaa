package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	cssLengthRegexp = regexp.MustCompile(`^(?:auto|0|none|inherit|initial|unset|fit-content|min-content|max-content|-?\d*\.?\d+(?:px|em|rem|%|vh|vw|vmin|vmax|ch|ex|pt|pc|cm|mm|in|fr)|(?:calc|var|min|max|clamp)\(.+\))$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			return IsCSSLength(fl.Field().String())
		})

		_ = v.RegisterValidation("css_selector", func(fl validator.FieldLevel) bool {
			return IsSelector(fl.Field().String())
		})

		_ = v.RegisterValidation("template_name", func(fl validator.FieldLevel) bool {
			_, ok := style.Lookup(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// IsCSSLength reports whether v is a length the sizing flags accept.
func IsCSSLength(v string) bool {
	return cssLengthRegexp.MatchString(strings.TrimSpace(v))
}

// IsSelector reports whether v can open a rule without breaking out of it.
func IsSelector(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	return !strings.ContainsAny(v, "{};@")
}

// ValidateConfig performs schema and cross-field validation on a sheet.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return stylekiterrors.NewValidationError("", "sheet is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Elements))
	for i, el := range cfg.Elements {
		key := strings.TrimSpace(el.Selector)
		if first, ok := seen[key]; ok {
			return stylekiterrors.NewValidationError(
				fieldForElement(i, "selector"),
				fmt.Sprintf("duplicate selector %q (first used by elements[%d])", key, first),
				nil,
			)
		}
		seen[key] = i
	}

	return nil
}

// ValidateElement validates one element on its own.
func ValidateElement(el Element) error {
	if err := validatorInstance().Struct(el); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlFieldPath(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if value, ok := fe.Value().(string); ok && value != "" {
			msg = fmt.Sprintf("%s (value %q)", msg, value)
		}
		return stylekiterrors.NewValidationError(field, msg, err)
	}

	return stylekiterrors.NewValidationError("", err.Error(), err)
}

// yamlFieldPath drops the root struct name from the namespace, which is
// already built from YAML keys.
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForElement(index int, field string) string {
	return fmt.Sprintf("elements[%d].%s", index, field)
}
