package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRecipe      = errors.New("invalid recipe")
	ErrInvalidUser        = errors.New("invalid user")
	ErrMissingCredentials = errors.New("please provide an email and password")
)
