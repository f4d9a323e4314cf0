// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"saathi/internal/delivery/http/middleware"
	"saathi/internal/delivery/http/router/handler"
	"saathi/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	LocalizationHandler *handler.LocalizationHandler
	WeatherHandler      *handler.WeatherHandler
	MarketHandler       *handler.MarketHandler
	AdvisoryHandler     *handler.AdvisoryHandler
	SensorHandler       *handler.SensorHandler
	ContentHandler      *handler.ContentHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.LoggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.SessionHandler.Login)
		authGroup.POST("/signup", r.params.SessionHandler.Signup)
		authGroup.POST("/logout", r.params.SessionHandler.Logout)
	}

	// Session restore runs before login, so it stays public.
	e.GET("/session", r.params.SessionHandler.Current)

	// Language picker and translate lookups are available pre-login too.
	i18nGroup := e.Group("/i18n")
	{
		i18nGroup.GET("/languages", r.params.LocalizationHandler.Languages)
		i18nGroup.PUT("/language", r.params.LocalizationHandler.SetLanguage)
		i18nGroup.GET("/resolve", r.params.LocalizationHandler.Resolve)
	}

	// Farmer routes that require authentication
	farmerGroup := e.Group("")
	farmerGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		farmerGroup.GET("/profile", r.params.SessionHandler.GetProfile)
		farmerGroup.PUT("/profile", r.params.SessionHandler.UpdateProfile)

		farmerGroup.GET("/weather", r.params.WeatherHandler.Forecast)
		farmerGroup.GET("/weather/advisory", r.params.WeatherHandler.Advisory)

		farmerGroup.GET("/market", r.params.MarketHandler.Prices)
		farmerGroup.GET("/market/forecast", r.params.MarketHandler.Forecast)

		farmerGroup.POST("/advisory/crops", r.params.AdvisoryHandler.RecommendCrops)
		farmerGroup.POST("/advisory/pest", r.params.AdvisoryHandler.AnalyzePest)
		farmerGroup.POST("/advisory/chat", r.params.AdvisoryHandler.Chat)

		farmerGroup.GET("/sensor", r.params.SensorHandler.Snapshot)
		farmerGroup.PUT("/sensor/pump", r.params.SensorHandler.TogglePump)

		farmerGroup.GET("/schemes", r.params.ContentHandler.Schemes)
		farmerGroup.GET("/schemes/:id/qr", r.params.ContentHandler.SchemeQR)
		farmerGroup.GET("/allocations", r.params.ContentHandler.Allocations)
		farmerGroup.GET("/alerts", r.params.ContentHandler.Alerts)

		farmerGroup.POST("/devices", r.params.AdminHandler.RegisterDevice)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/farmers", r.params.AdminHandler.Farmers)
		adminGroup.GET("/analytics", r.params.AdminHandler.Analytics)
		adminGroup.GET("/devices", r.params.AdminHandler.Devices)
		adminGroup.POST("/alerts", r.params.AdminHandler.PublishAlert)
	}
}
