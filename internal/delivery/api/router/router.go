// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ReviewHandler       *handler.ReviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Registry            *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	reviewHandler       *handler.ReviewHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	registry            *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		reviewHandler:       params.ReviewHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		registry:            params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler(r.registry))

	limited := r.rateLimitMiddleware.Limit
	authenticated := r.authMiddleware.Authenticate

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup, limited)
		authGroup.POST("/login", r.authHandler.Login, limited)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh", r.authHandler.Refresh, limited)
		authGroup.POST("/google", r.authHandler.GoogleSignIn, limited)
		authGroup.GET("/google/url", r.authHandler.GoogleAuthURL, limited)
		authGroup.POST("/google/callback", r.authHandler.GoogleCallback, limited)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, authenticated)
	}

	userGroup := e.Group("/user")
	userGroup.Use(authenticated)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.PUT("/change-password", r.userHandler.ChangePassword)
		userGroup.DELETE("/delete", r.userHandler.DeleteAccount)
		userGroup.GET("/dashboard/stats", r.reviewHandler.DashboardStats)
	}

	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(authenticated)
	{
		reviewGroup.POST("/scrape", r.reviewHandler.ScrapeReviews)
		reviewGroup.GET("", r.reviewHandler.ListReviews)
	}
}
