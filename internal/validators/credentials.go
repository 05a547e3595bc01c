package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [CredentialsValidator.Validate].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// credentialFields maps public field names to the struct field names
// go-playground/validator reports.
var credentialFields = map[string]string{
	FieldUsername: "Username",
	FieldEmail:    "Email",
	FieldPassword: "Password",
}

// CredentialsValidator checks login and registration forms using the
// `validate` tags on [models.Credentials].
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate accepts models.Credentials or *models.Credentials. fields restricts
// the check to the named subset; when omitted, username and password are
// validated (the login form). Username and email are trimmed before checking.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var creds models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		creds = value
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		creds = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	structFields := make([]string, 0, len(fields))
	for _, f := range fields {
		name, ok := credentialFields[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		structFields = append(structFields, name)
	}

	creds.Username = strings.TrimSpace(creds.Username)
	creds.Email = strings.TrimSpace(creds.Email)

	err := v.validate.StructPartialCtx(ctx, creds, structFields...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	field := strings.ToLower(first.Field())
	if first.Tag() == "email" {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, field)
	}
	return fmt.Errorf("%w: %s", ErrRequiredField, field)
}
