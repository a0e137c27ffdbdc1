package validators

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

// Field name constants used to restrict user validation.
const (
	FieldUserName = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

var userFields = map[string]string{
	FieldUserName: "Name",
	FieldEmail:    "Email",
	FieldPassword: "Password",
}

// UserValidator implements the Validator interface for [models.User] and
// [models.Credentials].
//
// A User is checked against its struct tags (registration rules).
// Credentials are only checked for presence of the requested fields, which
// is what login needs: a wrong password must yield "invalid credentials",
// not a format error.
type UserValidator struct {
	structs *structValidator
}

func NewUserValidator() Validator {
	return &UserValidator{structs: newStructValidator()}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	names, err := structFieldNames(userFields, fields)
	if err != nil {
		return err
	}

	return v.structs.check(ctx, ErrInvalidUser, user, names...)
}

// validateCredentials defaults to email and password.
func (v *UserValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			if credentials.Name == "" {
				return ErrMissingCredentials
			}
		case FieldEmail:
			if credentials.Email == "" {
				return ErrMissingCredentials
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrMissingCredentials
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
