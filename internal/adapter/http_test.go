// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-currency-converter/internal/config"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/utils"
	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthAdapter(t *testing.T, serverURL string) AuthAdapter {
	t.Helper()
	a, err := NewHTTPAuthAdapter(config.ClientAdapter{AuthAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func newTestRateAdapter(t *testing.T, serverURL string) RateAdapter {
	t.Helper()
	a, err := NewHTTPRateAdapter(config.ClientAdapter{RatesAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewAdapters_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAuthAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPRateAdapter(config.ClientAdapter{RatesAddress: "http://"}, logger.Nop())
	assert.Error(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"username": "alice", "password": "secret"}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","username":"Alice"}`))
	}))
	defer srv.Close()

	got, err := newTestAuthAdapter(t, srv.URL).Login(context.Background(),
		models.Credentials{Username: "alice", Email: "ignored@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, models.LoginResponse{Token: "tok-1", Username: "Alice"}, got)
}

func TestLogin_Unauthorized_WithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := newTestAuthAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "a", Password: "b"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusUnauthorized, respErr.StatusCode)
	assert.Equal(t, "Invalid credentials", respErr.Message)
}

func TestLogin_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestAuthAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "a", Password: "b"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLogin_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAuthAdapter(t, url).Login(context.Background(), models.Credentials{Username: "a", Password: "b"})

	require.Error(t, err)
	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var body models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.Credentials{Username: "bob", Email: "bob@example.com", Password: "pw"}, body)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestAuthAdapter(t, srv.URL).Register(context.Background(),
		models.Credentials{Username: "bob", Email: "bob@example.com", Password: "pw"})
	assert.NoError(t, err)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"User already exists"}`))
	}))
	defer srv.Close()

	err := newTestAuthAdapter(t, srv.URL).Register(context.Background(), models.Credentials{Username: "bob"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "User already exists")
}

// ── Latest ───────────────────────────────────────────────────────────────────

func TestLatest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v4/latest/USD", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		_, _ = w.Write([]byte(`{"base":"USD","date":"2026-10-16","rates":{"USD":1,"EUR":0.92}}`))
	}))
	defer srv.Close()

	table, err := newTestRateAdapter(t, srv.URL+"/v4/").Latest(context.Background(), models.USD)

	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, "2026-10-16", table.Date)
	rate, ok := table.Rate(models.EUR)
	assert.True(t, ok)
	assert.InDelta(t, 0.92, rate, 1e-9)
}

func TestLatest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"result":"error"}`, wantErr: ErrNotFound},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "teapot", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: ErrMalformedResponse},
		{name: "no rates", status: http.StatusOK, body: `{"base":"USD"}`, wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestRateAdapter(t, srv.URL).Latest(context.Background(), models.EUR)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLatest_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRateAdapter(t, srv.URL).Latest(ctx, models.USD)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatest_ConcurrentCallsShareRequest(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	}))
	defer srv.Close()

	a := newTestRateAdapter(t, srv.URL)

	var wg sync.WaitGroup
	results := make([]models.RateTable, 2)
	errs := make([]error, 2)
	call := func(i int) {
		defer wg.Done()
		results[i], errs[i] = a.Latest(context.Background(), models.USD)
	}

	wg.Add(1)
	go call(0)
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)

	wg.Add(1)
	go call(1)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for i := range results {
		require.NoError(t, errs[i])
		rate, ok := results[i].Rate(models.EUR)
		assert.True(t, ok)
		assert.InDelta(t, 0.92, rate, 1e-9)
	}
}

// TestLatest_CanceledCallerDoesNotFailJoinedCaller cancels the caller that
// started the shared request; the caller that joined it must still succeed.
func TestLatest_CanceledCallerDoesNotFailJoinedCaller(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.92}}`))
	}))
	defer srv.Close()

	a := newTestRateAdapter(t, srv.URL)

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := a.Latest(firstCtx, models.USD)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)

	type result struct {
		table models.RateTable
		err   error
	}
	second := make(chan result, 1)
	go func() {
		table, err := a.Latest(context.Background(), models.USD)
		second <- result{table: table, err: err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("canceled caller kept waiting for the shared request")
	}

	close(release)
	got := <-second
	require.NoError(t, got.err)
	rate, ok := got.table.Rate(models.EUR)
	assert.True(t, ok)
	assert.InDelta(t, 0.92, rate, 1e-9)
	assert.Equal(t, int32(1), hits.Load())
}
