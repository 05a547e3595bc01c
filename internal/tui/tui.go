// Package tui implements the terminal user interface: the login flow
// (menu, login and sign-up pages behind a [RootModel] router) and the
// converter screen.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-currency-converter/internal/config"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/service"
	"github.com/MKhiriev/go-currency-converter/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services        *service.ClientServices
	buildInfo       models.AppBuildInfo
	refreshInterval time.Duration
	logger          *logger.Logger
}

func New(services *service.ClientServices, workers config.ClientWorkers, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{
		services:        services,
		buildInfo:       buildInfo,
		refreshInterval: workers.RateRefreshInterval,
		logger:          log.Component("tui"),
	}, nil
}

// LoginFlow runs the menu/login/sign-up pages until the user logs in.
// It returns [ErrUserQuit] when the user leaves with ctrl+c.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	session := t.services.Session
	session.SetMode(models.ModeLogin)

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, session),
		pageRegister: NewRegisterModel(ctx, session),
	}

	root := NewRootModel(pages, pageMenu, session, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Debug().Str("username", result.result.Username).Msg("login flow finished")
	return result.result, nil
}

// MainLoop runs the converter screen for session. The rate refresh job runs
// for as long as the screen is open and feeds its results into the program.
// logout reports whether the user asked to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services.Converter, session)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.RefreshJob.Start(ctx, t.refreshInterval, func(result models.ConversionResult) {
		p.Send(conversionDoneMsg{result: result})
	})
	defer t.services.RefreshJob.Stop()

	finalModel, runErr := p.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.logout, nil
}
