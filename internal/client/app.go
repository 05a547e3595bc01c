package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/service"
	"github.com/MKhiriev/go-currency-converter/internal/tui"
	"github.com/MKhiriev/go-currency-converter/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	defaults models.ConversionRequest
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, defaults models.ConversionRequest, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: services are nil")
	}
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}
	return &App{
		services: services,
		ui:       ui,
		defaults: defaults,
		logger:   log.Component("client"),
	}, nil
}

// Run loops restore -> login flow -> converter until the user quits.
// A logout clears the stored session and resets the converter to defaults;
// the stored session is only restored on the first pass.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	restore := true
	for {
		session, err := a.authenticate(ctx, restore)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.Session.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout did not clear stored session")
		}
		a.services.Converter.Reset(a.defaults)
		restore = false
	}
}

func (a *App) authenticate(ctx context.Context, restore bool) (models.Session, error) {
	if !restore {
		return a.ui.LoginFlow(ctx)
	}

	session, err := a.services.Session.Restore(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, service.ErrNoSession) {
		a.logger.Warn().Err(err).Msg("restore session")
	}
	return a.ui.LoginFlow(ctx)
}
