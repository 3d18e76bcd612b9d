/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statio-project/statio/pkg/snapshot"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Version = "test"
	return NewServer(cfg)
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestHandleReadyReflectsReadiness(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.SetReady(true)
	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDefaultListsRoutes(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GET /v1/snapshot")
	assert.Contains(t, rec.Body.String(), "GET /metrics")
}

func TestHandleSnapshotReturnsJSON(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap snapshot.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.NotEmpty(t, snap.Meta.ID)
	assert.Equal(t, "test", snap.Meta.Version)
	assert.NotEmpty(t, snap.GPUs)
}

func TestHandleSnapshotRejectsPost(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshot", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeMethodNotAllowed, resp.Code)
	assert.False(t, resp.Retryable)
}

func TestHandleReportReturnsText(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "[CPU]")
	assert.Contains(t, rec.Body.String(), "[GPU]")
}

func TestRequestIDMiddleware(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))
	generated := rec.Header().Get("X-Request-Id")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err, "generated request ID must be a UUID")

	req := httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	replaced := rec.Header().Get("X-Request-Id")
	_, err = uuid.Parse(replaced)
	assert.NoError(t, err, "malformed request ID must be replaced")
	assert.NotEqual(t, "not-a-uuid", replaced)

	valid := uuid.New().String()
	req = httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil)
	req.Header.Set("X-Request-Id", valid)
	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	assert.Equal(t, valid, rec.Header().Get("X-Request-Id"))
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	s := NewServer(cfg)

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeRateLimitExceeded, resp.Code)
	assert.True(t, resp.Retryable)
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := testServer(t)
	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeInternalError, resp.Code)
}

func TestHandleMetrics(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()

	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg := DefaultConfig()

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "5s", cfg.ShutdownTimeout.String())
}
