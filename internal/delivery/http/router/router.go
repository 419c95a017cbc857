// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"nms/config"
	"nms/internal/delivery/http/middleware"
	"nms/internal/delivery/http/router/handler"
	"nms/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	CountryHandler *handler.CountryHandler
	CityHandler    *handler.CityHandler
	CompanyHandler *handler.CompanyHandler
	RoleHandler    *handler.RoleHandler
	AccountHandler *handler.AccountHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	MetricsHandler http.Handler `name:"metricsHandler"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	countryHandler *handler.CountryHandler
	cityHandler    *handler.CityHandler
	companyHandler *handler.CompanyHandler
	roleHandler    *handler.RoleHandler
	accountHandler *handler.AccountHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	metricsHandler http.Handler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		countryHandler: params.CountryHandler,
		cityHandler:    params.CityHandler,
		companyHandler: params.CompanyHandler,
		roleHandler:    params.RoleHandler,
		accountHandler: params.AccountHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		metricsHandler: params.MetricsHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate
	// Reference data is open to administrators and back office management.
	management := r.authMiddleware.RequireAnyRole(entity.RoleAdmin, entity.RoleManagement)
	adminOnly := r.authMiddleware.RequireAnyRole(entity.RoleAdmin)

	addressGroup := api.Group("/address", authenticate, management)
	{
		addressGroup.POST("/add-address", r.addressHandler.AddAddress)
		addressGroup.PUT("/update-address", r.addressHandler.UpdateAddress)
		addressGroup.GET("/get-address/:id", r.addressHandler.GetAddress)
		addressGroup.GET("/get-addresses", r.addressHandler.GetAddresses)
	}

	countryGroup := api.Group("/country", authenticate, management)
	{
		countryGroup.POST("/add-country", r.countryHandler.AddCountry)
		countryGroup.PUT("/update-country", r.countryHandler.UpdateCountry)
		countryGroup.GET("/get-country/:id", r.countryHandler.GetCountry)
		countryGroup.GET("/get-countries", r.countryHandler.GetCountries)
	}

	cityGroup := api.Group("/city", authenticate, management)
	{
		cityGroup.POST("/add-city", r.cityHandler.AddCity)
		cityGroup.PUT("/update-city", r.cityHandler.UpdateCity)
		cityGroup.GET("/get-city/:id", r.cityHandler.GetCity)
		cityGroup.GET("/get-cities", r.cityHandler.GetCities)
	}

	companyGroup := api.Group("/company", authenticate, management)
	{
		companyGroup.POST("/add-company", r.companyHandler.AddCompany)
		companyGroup.PUT("/update-company", r.companyHandler.UpdateCompany)
		companyGroup.GET("/get-company/:id", r.companyHandler.GetCompany)
		companyGroup.GET("/get-companies", r.companyHandler.GetCompanies)
	}

	roleGroup := api.Group("/role", authenticate, adminOnly)
	{
		roleGroup.POST("/add-role", r.roleHandler.AddRole)
		roleGroup.PUT("/update-role", r.roleHandler.UpdateRole)
		roleGroup.GET("/get-role/:id", r.roleHandler.GetRole)
		roleGroup.GET("/get-roles", r.roleHandler.GetRoles)
	}

	accountGroup := api.Group("/account")
	{
		accountGroup.POST("/login", r.accountHandler.Login)
		accountGroup.POST("/register", r.accountHandler.Register, authenticate, adminOnly)
	}
}
