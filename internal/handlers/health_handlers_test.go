package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func runHealth(t *testing.T, dbErr, cacheErr error, ready bool) *httptest.ResponseRecorder {
	db, cache := &MockPinger{}, &MockPinger{}
	db.On("Ping", mock.Anything).Return(dbErr)
	cache.On("Ping", mock.Anything).Return(cacheErr).Maybe()

	h := NewHealthHandlers(db, cache, "test")
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if ready {
		assert.NoError(t, h.ReadinessCheck(c))
	} else {
		assert.NoError(t, h.HealthCheck(c))
	}
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := runHealth(t, nil, nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = runHealth(t, nil, errors.New("redis down"), false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)

	rec = runHealth(t, errors.New("db down"), nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}

func TestReadinessCheck(t *testing.T) {
	assert.Equal(t, http.StatusOK, runHealth(t, nil, nil, true).Code)
	assert.Equal(t, http.StatusServiceUnavailable, runHealth(t, errors.New("db down"), nil, true).Code)
}
