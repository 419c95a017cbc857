package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"nms/config"
	"nms/internal/delivery/http/middleware"
	"nms/internal/delivery/http/router/handler"
	"nms/internal/delivery/http/validator"
	"nms/internal/domain/service"
	mockService "nms/internal/mocks/service"
	mockUsecase "nms/internal/mocks/usecase"
	"nms/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type okPinger struct{}

func (okPinger) PingContext(_ context.Context) error { return nil }

type routerFixture struct {
	echo      *echo.Echo
	tokens    *mockService.MockTokenService
	addressUC *mockUsecase.MockAddressUsecase
	roleUC    *mockUsecase.MockRoleUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &routerFixture{
		echo:      echo.New(),
		tokens:    mockService.NewMockTokenService(t),
		addressUC: mockUsecase.NewMockAddressUsecase(t),
		roleUC:    mockUsecase.NewMockRoleUsecase(t),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: f.addressUC}),
		CountryHandler: handler.NewCountryHandler(handler.CountryHandlerParams{CountryUC: mockUsecase.NewMockCountryUsecase(t)}),
		CityHandler:    handler.NewCityHandler(handler.CityHandlerParams{CityUC: mockUsecase.NewMockCityUsecase(t)}),
		CompanyHandler: handler.NewCompanyHandler(handler.CompanyHandlerParams{CompanyUC: mockUsecase.NewMockCompanyUsecase(t)}),
		RoleHandler:    handler.NewRoleHandler(handler.RoleHandlerParams{RoleUC: f.roleUC}),
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: mockUsecase.NewMockAccountUsecase(t)}),
		HealthHandler:  handler.NewHealthHandler(handler.HealthHandlerParams{DB: okPinger{}, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(f.tokens, logger),
		MetricsHandler: http.NotFoundHandler(),
		Config:         &config.Config{},
	})
	r.RegisterRoutes(f.echo)

	return f
}

func (f *routerFixture) tokenFor(token string, userID string, roles ...string) {
	f.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{
		Roles:            roles,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}, nil)
}

func (f *routerFixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RoleGating(t *testing.T) {
	t.Run("missing token is 401", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodGet, "/api/address/get-addresses", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		f := newRouterFixture(t)
		f.tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid token"))

		rec := f.do(http.MethodGet, "/api/address/get-addresses", "bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("management reads addresses", func(t *testing.T) {
		f := newRouterFixture(t)
		f.tokenFor("mgmt", "5", "management")
		f.addressUC.EXPECT().ListAddresses(mock.Anything, usecase.AddressFilter{}).Return([]*usecase.AddressDTO{}, nil)

		rec := f.do(http.MethodGet, "/api/address/get-addresses", "mgmt")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("management cannot manage roles", func(t *testing.T) {
		f := newRouterFixture(t)
		f.tokenFor("mgmt", "5", "management")

		rec := f.do(http.MethodGet, "/api/role/get-roles", "mgmt")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown role cannot read addresses", func(t *testing.T) {
		f := newRouterFixture(t)
		f.tokenFor("viewer", "6", "viewer")

		rec := f.do(http.MethodGet, "/api/address/get-addresses", "viewer")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin manages roles", func(t *testing.T) {
		f := newRouterFixture(t)
		f.tokenFor("root", "1", "admin")
		f.roleUC.EXPECT().ListRoles(mock.Anything).Return([]*usecase.RoleDTO{}, nil)

		rec := f.do(http.MethodGet, "/api/role/get-roles", "root")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("login and health are public", func(t *testing.T) {
		f := newRouterFixture(t)

		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/account/login", "").Code)
	})

	t.Run("metrics disabled by default", func(t *testing.T) {
		f := newRouterFixture(t)

		assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/metrics", "").Code)
	})
}
