package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/mock"
	"github.com/MKhiriev/go-currency-converter/internal/service"
	"github.com/MKhiriev/go-currency-converter/internal/store"
	"github.com/MKhiriev/go-currency-converter/internal/tui"
	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	app   *App
	ui    *mock.MockUI
	auth  *mock.MockAuthAdapter
	kv    store.KeyValueStore
	svc   *service.ClientServices
	start models.ConversionRequest
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	kv := store.NewMemoryKeyValueStore()
	auth := mock.NewMockAuthAdapter(ctrl)
	rates := mock.NewMockRateAdapter(ctrl)
	defaults := models.DefaultConversionRequest()

	svc := service.NewClientServices(&store.ClientStorages{Session: kv}, auth, rates, defaults, logger.Nop())
	ui := mock.NewMockUI(ctrl)

	app, err := NewApp(svc, ui, defaults, logger.Nop())
	require.NoError(t, err)

	return testEnv{app: app, ui: ui, auth: auth, kv: kv, svc: svc, start: defaults}
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, mock.NewMockUI(gomock.NewController(t)), models.DefaultConversionRequest(), logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, models.DefaultConversionRequest(), logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_RestoredSessionSkipsLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.kv.Set(ctx, service.TokenKey, "tok"))
	require.NoError(t, env.kv.Set(ctx, service.UsernameKey, "alice"))

	want := models.Session{IsAuthenticated: true, Username: "alice", Token: "tok"}
	env.ui.EXPECT().MainLoop(gomock.Any(), want).Return(false, nil)

	require.NoError(t, env.app.Run(ctx))
}

func TestApp_Run_LoginFlowWhenNoSession(t *testing.T) {
	env := newTestEnv(t)
	session := models.Session{IsAuthenticated: true, Username: "bob", Token: "t"}

	gomock.InOrder(
		env.ui.EXPECT().LoginFlow(gomock.Any()).Return(session, nil),
		env.ui.EXPECT().MainLoop(gomock.Any(), session).Return(false, nil),
	)

	require.NoError(t, env.app.Run(context.Background()))
}

func TestApp_Run_LogoutStartsOver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.kv.Set(ctx, service.TokenKey, "tok"))
	require.NoError(t, env.kv.Set(ctx, service.UsernameKey, "alice"))
	_, err := env.svc.Session.Restore(ctx)
	require.NoError(t, err)

	env.svc.Converter.SetAmount("5")
	env.svc.Converter.SetFrom(models.GBP)

	bob := models.Session{IsAuthenticated: true, Username: "bob", Token: "t2"}
	gomock.InOrder(
		env.ui.EXPECT().MainLoop(gomock.Any(), gomock.Any()).Return(true, nil),
		env.ui.EXPECT().LoginFlow(gomock.Any()).DoAndReturn(func(context.Context) (models.Session, error) {
			assert.False(t, env.svc.Session.IsAuthenticated())
			assert.Equal(t, env.start, env.svc.Converter.Request())
			return bob, nil
		}),
		env.ui.EXPECT().MainLoop(gomock.Any(), bob).Return(false, nil),
	)

	require.NoError(t, env.app.Run(ctx))

	_, err = env.kv.Get(ctx, service.TokenKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestApp_Run_UserQuitIsCleanExit(t *testing.T) {
	env := newTestEnv(t)
	env.ui.EXPECT().LoginFlow(gomock.Any()).Return(models.Session{}, tui.ErrUserQuit)

	assert.NoError(t, env.app.Run(context.Background()))
}

func TestApp_Run_UIErrorIsReturned(t *testing.T) {
	env := newTestEnv(t)
	boom := errors.New("terminal gone")
	session := models.Session{IsAuthenticated: true, Username: "bob"}

	env.ui.EXPECT().LoginFlow(gomock.Any()).Return(session, nil)
	env.ui.EXPECT().MainLoop(gomock.Any(), session).Return(false, boom)

	err := env.app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
