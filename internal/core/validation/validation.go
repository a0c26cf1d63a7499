package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"cargo-portal/internal/core/notice"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	// positive accepts numeric strings greater than zero, e.g. "12.5".
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	return v
}

// Struct validates s by its `validate` tags.
func Struct(s interface{}) error {
	return translate(validate.Struct(s), "")
}

// Var validates a single value against rule and reports failures under field.
func Var(field string, value interface{}, rule string) error {
	return translate(validate.Var(value, rule), field)
}

// Merge combines validation errors into one, keeping the first message per field.
func Merge(errs ...error) error {
	merged := &notice.ValidationError{Fields: map[string]string{}}
	for _, err := range errs {
		var vErr *notice.ValidationError
		if errors.As(err, &vErr) {
			for k, msg := range vErr.Fields {
				if _, seen := merged.Fields[k]; !seen {
					merged.Fields[k] = msg
				}
			}
		} else if err != nil {
			return err
		}
	}
	if len(merged.Fields) == 0 {
		return nil
	}
	return merged
}

func translate(err error, field string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &notice.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		name := fe.Field()
		if field != "" {
			name = field
		}
		out.Fields[name] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "phone":
		return "must be a valid phone number"
	case "positive":
		return "must be a number greater than 0"
	case "eq":
		return "must be accepted"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gt", "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lt", "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}
