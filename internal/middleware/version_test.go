package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newVersionedServer(vm *VersionMiddleware) *echo.Echo {
	e := echo.New()
	e.Use(vm.APIVersionResolver())
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("api_version").(string))
	}
	e.GET("/health", ok)
	e.GET("/v1/ping", ok, vm.VersionHeader("v1"))
	e.GET("/v2/ping", ok)
	return e
}

func TestAPIVersionResolver(t *testing.T) {
	e := newVersionedServer(NewVersionMiddleware())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Body.String())
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "v1", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/ping", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported API version")
}

func TestDeprecatedVersionHeaders(t *testing.T) {
	vm := NewVersionMiddleware()
	sunset := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	vm.Deprecate("v1", sunset, "Move to v2")

	e := newVersionedServer(vm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, "true", rec.Header().Get("X-API-Deprecated"))
	assert.Equal(t, sunset.Format(time.RFC3339), rec.Header().Get("X-API-Sunset"))
	assert.Equal(t, []string{"v1"}, vm.SupportedVersions())
}
