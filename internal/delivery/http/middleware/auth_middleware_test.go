package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "nms/internal/delivery/context"
	"nms/internal/delivery/http/response"
	"nms/internal/domain/service"
	mockService "nms/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		setup          func(tokens *mockService.MockTokenService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "missing header",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "MISSING_TOKEN",
		},
		{
			name:           "not a bearer token",
			header:         "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:   "non numeric subject",
			header: "Bearer odd",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("odd").Return(&service.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"},
				}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{
					UserID:           7,
					Roles:            []string{"management"},
					RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
				}, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(tokens, newDiscardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/address/get-addresses", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenUserID int64
			err := m.Authenticate(func(c echo.Context) error {
				seenUserID, _ = deliverycontext.GetUserID(c)

				return okHandler(c)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				body := decodeResponse(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, tt.expectedCode, body.Error.Code)
			} else {
				assert.Equal(t, int64(7), seenUserID)
			}
		})
	}
}

func TestAuthMiddleware_RequireAnyRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t), newDiscardLogger())
	guard := m.RequireAnyRole("admin", "management")

	tests := []struct {
		name           string
		roles          []string
		expectedStatus int
	}{
		{name: "admin", roles: []string{"admin"}, expectedStatus: http.StatusNoContent},
		{name: "management among others", roles: []string{"viewer", "management"}, expectedStatus: http.StatusNoContent},
		{name: "no matching role", roles: []string{"viewer"}, expectedStatus: http.StatusForbidden},
		{name: "no roles", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetIdentity(c, 1, tt.roles)

			require.NoError(t, guard(okHandler)(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
