package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-currency-converter/internal/adapter"
	"github.com/MKhiriev/go-currency-converter/internal/app"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/store"
	"github.com/MKhiriev/go-currency-converter/internal/validators"
	"github.com/MKhiriev/go-currency-converter/models"
)

// Keys under which the identity is persisted.
const (
	TokenKey    = "token"
	UsernameKey = "username"
)

type sessionManager struct {
	store     store.KeyValueStore
	auth      adapter.AuthAdapter
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.RWMutex
	session models.Session
	mode    models.AuthMode
	notice  string
}

// NewSessionManager returns an unauthenticated [SessionManager] in
// [models.ModeLogin].
func NewSessionManager(kv store.KeyValueStore, auth adapter.AuthAdapter, v validators.Validator, log *logger.Logger) SessionManager {
	return &sessionManager{
		store:     kv,
		auth:      auth,
		validator: v,
		logger:    log.Component("session"),
	}
}

func (s *sessionManager) Restore(ctx context.Context) (models.Session, error) {
	token, err := s.load(ctx, TokenKey)
	if err != nil {
		return models.Session{}, err
	}
	username, err := s.load(ctx, UsernameKey)
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.session = models.Session{IsAuthenticated: true, Username: username, Token: token}
	s.notice = ""
	session := s.session
	s.mu.Unlock()

	s.logger.Info().Str("username", username).Msg("session restored")
	return session, nil
}

// load returns a non-empty stored value, or ErrNoSession.
func (s *sessionManager) load(ctx context.Context, key string) (string, error) {
	v, err := s.store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("restore %s: %w", key, err)
	}
	if strings.TrimSpace(v) == "" {
		return "", ErrNoSession
	}
	return v, nil
}

func (s *sessionManager) Login(ctx context.Context, username, password string) (models.Session, error) {
	creds := models.Credentials{Username: strings.TrimSpace(username), Password: password}

	if err := s.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.Session{}, mapAuthError(err)
	}

	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", creds.Username).Msg("login failed")
		return models.Session{}, mapAuthError(err)
	}

	name := strings.TrimSpace(resp.Username)
	if name == "" {
		name = creds.Username
	}

	if err = s.store.Set(ctx, TokenKey, resp.Token); err != nil {
		return models.Session{}, fmt.Errorf("persist token: %w", err)
	}
	if err = s.store.Set(ctx, UsernameKey, name); err != nil {
		// a token without its username would never restore
		if rmErr := s.store.Remove(ctx, TokenKey); rmErr != nil {
			s.logger.Warn().Err(rmErr).Msg("failed to roll back persisted token")
		}
		return models.Session{}, fmt.Errorf("persist username: %w", err)
	}

	s.mu.Lock()
	s.session = models.Session{IsAuthenticated: true, Username: name, Token: resp.Token}
	s.mode = models.ModeLogin
	s.notice = ""
	session := s.session
	s.mu.Unlock()

	s.logger.Info().Str("username", name).Msg("logged in")
	return session, nil
}

func (s *sessionManager) Signup(ctx context.Context, username, email, password string) error {
	if s.Mode() != models.ModeSigningUp {
		return ErrWrongMode
	}

	creds := models.Credentials{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	err := s.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldEmail, validators.FieldPassword)
	if err != nil {
		return mapAuthError(err)
	}

	if err = s.auth.Register(ctx, creds); err != nil {
		s.logger.Warn().Err(err).Str("username", creds.Username).Msg("registration failed")
		return mapAuthError(err)
	}

	s.mu.Lock()
	s.mode = models.ModeLogin
	s.notice = app.MsgRegistrationSucceeded
	s.mu.Unlock()

	s.logger.Info().Str("username", creds.Username).Msg("registered")
	return nil
}

func (s *sessionManager) Logout(ctx context.Context) error {
	s.mu.Lock()
	username := s.session.Username
	s.session = models.Session{}
	s.mode = models.ModeLogin
	s.notice = ""
	s.mu.Unlock()

	errToken := s.store.Remove(ctx, TokenKey)
	errUsername := s.store.Remove(ctx, UsernameKey)
	if err := errors.Join(errToken, errUsername); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("logged out")
	return nil
}

func (s *sessionManager) SetMode(mode models.AuthMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == mode {
		return
	}
	s.mode = mode
	s.notice = ""
}

func (s *sessionManager) Mode() models.AuthMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *sessionManager) Notice() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notice
}

func (s *sessionManager) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionManager) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated
}
