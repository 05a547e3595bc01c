package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-currency-converter/models"
)

// SessionManager owns the authentication state of the client and the
// login/sign-up form mode. It persists the identity through a key-value store
// so that a restart keeps the user logged in.
//
// State machine: Unauthenticated -> (Login | Restore) -> Authenticated ->
// (Logout) -> Unauthenticated. SigningUp is a sub-mode of Unauthenticated.
type SessionManager interface {
	// Restore reads the stored token and username. When both are present and
	// non-empty the session becomes authenticated; otherwise [ErrNoSession]
	// is returned and the state is unchanged. The token is not verified.
	Restore(ctx context.Context) (models.Session, error)

	// Login validates the fields locally, then authenticates against the
	// backend. On success the token and username are persisted and the
	// session becomes authenticated. Failures are returned as [*AuthError]
	// and leave the state unchanged. There is no retry.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Signup registers a new account. The form must be in
	// [models.ModeSigningUp]. On success the user is NOT logged in: the mode
	// returns to [models.ModeLogin] and a success notice is recorded.
	Signup(ctx context.Context, username, email, password string) error

	// Logout removes the stored identity and clears the session. The
	// in-memory state is cleared even when the store fails.
	Logout(ctx context.Context) error

	// SetMode switches the authentication form. It never changes the
	// authentication state. Switching to a different mode clears the notice.
	SetMode(mode models.AuthMode)

	Mode() models.AuthMode
	// Notice returns the one-line message to show on the login form, if any.
	Notice() string
	Session() models.Session
	IsAuthenticated() bool
}

// ConversionViewModel holds the user's amount and currency pair and derives
// the displayed rate and converted amount from rate lookups.
//
// Every setter invalidates the current result and returns a generation
// number. Results of a Recompute started under an older generation are
// discarded, so a slow response can never overwrite a newer one.
type ConversionViewModel interface {
	// Reset replaces the whole request and forgets the previous result.
	Reset(req models.ConversionRequest) uint64
	SetAmount(amount string) uint64
	SetFrom(c models.Currency) uint64
	SetTo(c models.Currency) uint64
	// Swap exchanges the source and target currencies.
	Swap() uint64

	// Recompute performs the rate lookup for the current request and returns
	// the resulting state. When a newer change arrived during the lookup the
	// returned result is the current one and the lookup outcome is dropped.
	Recompute(ctx context.Context) models.ConversionResult

	Request() models.ConversionRequest
	Result() models.ConversionResult
	// Generation returns the number of the latest change.
	Generation() uint64
	// FormatRate renders the current rate as "1 USD = 0.9200 EUR", or "" when
	// no numeric rate is known.
	FormatRate() string
}

// RateRefreshJob periodically re-runs Recompute so that a long-lived
// converter screen keeps a live rate.
type RateRefreshJob interface {
	// Start launches the ticker. A non-positive interval leaves the job idle.
	// notify, if non-nil, receives every result. A running job is stopped
	// first.
	Start(ctx context.Context, interval time.Duration, notify func(models.ConversionResult))
	// Stop cancels the job and waits for it to exit. Safe without Start.
	Stop()
}
