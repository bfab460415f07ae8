// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"compass/internal/delivery/http/middleware"
	"compass/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential-based routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.profileHandler.Register)
		authGroup.POST("/login", r.profileHandler.Login)
		authGroup.POST("/fetch-profile", r.profileHandler.FetchProfile)
	}

	// Profile routes
	profileGroup := e.Group("/profile")
	{
		profileGroup.PUT("/:email/:section", r.profileHandler.UpdateSection)
	}

	// Token-protected routes
	meGroup := e.Group("/profile/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.Me)
	}
}
