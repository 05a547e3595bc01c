package tui

import (
	"github.com/MKhiriev/go-currency-converter/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in the [RootModel].
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of the [RootModel]. When Payload is
// set it is delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow when Err is nil.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult is produced by the registration form.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is delivered to the login page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

// conversionDoneMsg carries the view model state after a recompute, either
// started by a keystroke or by the refresh job.
type conversionDoneMsg struct {
	result models.ConversionResult
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
