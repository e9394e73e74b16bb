// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ayra/config"
	"ayra/internal/delivery/api/middleware"
	"ayra/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	MapMarkerHandler  *handler.MapMarkerHandler
	CoordinateHandler *handler.CoordinateHandler
	AlertHandler      *handler.AlertHandler
	SafetyHandler     *handler.SafetyHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	mapMarkerHandler  *handler.MapMarkerHandler
	coordinateHandler *handler.CoordinateHandler
	alertHandler      *handler.AlertHandler
	safetyHandler     *handler.SafetyHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		mapMarkerHandler:  params.MapMarkerHandler,
		coordinateHandler: params.CoordinateHandler,
		alertHandler:      params.AlertHandler,
		safetyHandler:     params.SafetyHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.RegisterUser)
		usersGroup.GET("/me", r.userHandler.GetProfile, authenticate)
		usersGroup.PUT("/:email", r.userHandler.UpdateUser, authenticate)
		usersGroup.DELETE("/:email", r.userHandler.DeleteUser, authenticate)
	}

	markersGroup := e.Group("/map-marker")
	{
		markersGroup.GET("", r.mapMarkerHandler.ListMarkers)
		markersGroup.GET("/export", r.mapMarkerHandler.ExportMarkers)
		markersGroup.GET("/:id", r.mapMarkerHandler.GetMarker)
		markersGroup.GET("/:id/qr", r.mapMarkerHandler.MarkerQRCode)
		markersGroup.POST("", r.mapMarkerHandler.CreateMarker, authenticate)
		markersGroup.PUT("/:id", r.mapMarkerHandler.UpdateMarker, authenticate)
		markersGroup.DELETE("/:id", r.mapMarkerHandler.DeleteMarker, authenticate)
	}

	e.GET("/coordinates/:id", r.coordinateHandler.GetCoordinate)

	alertsGroup := e.Group("/alerts")
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.GET("/:id", r.alertHandler.GetAlert)
		alertsGroup.POST("", r.alertHandler.CreateAlert, authenticate)
		alertsGroup.DELETE("/:id", r.alertHandler.DeleteAlert, authenticate)

		alertsGroup.GET("/:id/safe-routes", r.safetyHandler.ListSafeRoutes)
		alertsGroup.POST("/:id/safe-routes", r.safetyHandler.AddSafeRoute, authenticate)
		alertsGroup.GET("/:id/safe-locations", r.safetyHandler.ListSafeLocations)
		alertsGroup.POST("/:id/safe-locations", r.safetyHandler.AddSafeLocation, authenticate)
		alertsGroup.GET("/:id/safe-tips", r.safetyHandler.ListSafeTips)
		alertsGroup.POST("/:id/safe-tips", r.safetyHandler.AddSafeTip, authenticate)
	}
}

// RegisterDocsRoutes serves the OpenAPI UI when enabled in config.
func (r *router) RegisterDocsRoutes(e *echo.Echo) {
	if r.config.Swagger == nil || !r.config.Swagger.Enabled {
		return
	}

	e.GET("/swagger/*", echo.WrapHandler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	)))
}
