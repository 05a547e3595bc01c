package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrRequiredField is returned when a mandatory form field is empty.
	ErrRequiredField = errors.New("required field is empty")
	// ErrInvalidEmail is returned when the e-mail field is not an address.
	ErrInvalidEmail = errors.New("invalid email")
)
