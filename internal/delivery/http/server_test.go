package http

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nms/config"
	deliverycontext "nms/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	path   string
	status int
}

type recordingObserver struct {
	observations []observation
}

func (o *recordingObserver) ObserveRequest(method, path string, status int, _ time.Duration) {
	o.observations = append(o.observations, observation{method: method, path: path, status: status})
}

func newTestServerEcho(t *testing.T) (*echo.Echo, *recordingObserver) {
	t.Helper()

	observer := &recordingObserver{}
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewEcho(cfg, logger, observer), observer
}

func TestNewEcho_PanicIsCountedAsServerError(t *testing.T) {
	e, observer := newTestServerEcho(t)
	e.GET("/api/address/get-address/:id", func(echo.Context) error {
		panic("lookup exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/address/get-address/9", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "lookup exploded")
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	require.Len(t, observer.observations, 1)
	assert.Equal(t, observation{
		method: http.MethodGet,
		path:   "/api/address/get-address/:id",
		status: http.StatusInternalServerError,
	}, observer.observations[0])
}

func TestNewEcho_ObservesRejectedRequests(t *testing.T) {
	e, observer := newTestServerEcho(t)
	e.POST("/api/company/add-company", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	body := make([]byte, 4096)
	req := httptest.NewRequest(http.MethodPost, "/api/company/add-company", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Len(t, observer.observations, 1)
	assert.Equal(t, http.StatusRequestEntityTooLarge, observer.observations[0].status)
}
