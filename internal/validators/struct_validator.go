package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidator runs the `validate` struct tags of the models and turns
// the failures into one readable message.
type structValidator struct {
	validate *validator.Validate
}

func newStructValidator() *structValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})

	return &structValidator{validate: v}
}

// check validates s. With structFields set, only those struct fields are
// checked. Failures are wrapped into sentinel.
func (v *structValidator) check(ctx context.Context, sentinel error, s any, structFields ...string) error {
	var err error
	if len(structFields) == 0 {
		err = v.validate.StructCtx(ctx, s)
	} else {
		err = v.validate.StructPartialCtx(ctx, s, structFields...)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, describe(fe))
	}

	return fmt.Errorf("%w: %s", sentinel, strings.Join(messages, "; "))
}

// describe renders a single field failure, e.g. "name is required".
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, found := strings.Cut(field, "."); found {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// structFieldNames maps field constants to Go struct field names.
func structFieldNames(mapping map[string]string, fields []string) ([]string, error) {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		name, ok := mapping[f]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		names = append(names, name)
	}
	return names, nil
}
