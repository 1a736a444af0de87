// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"path/filepath"

	"notely/config"
	"notely/internal/delivery/http/middleware"
	"notely/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AccountHandler *handler.AccountHandler
	NoteHandler    *handler.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	accountHandler *handler.AccountHandler
	noteHandler    *handler.NoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		accountHandler: params.AccountHandler,
		noteHandler:    params.NoteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes (unauthenticated)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// User routes that require authentication
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.accountHandler.GetProfile)
	}

	// Note routes that require authentication
	noteGroup := api.Group("/notes")
	noteGroup.Use(r.authMiddleware.Authenticate)
	{
		noteGroup.GET("", r.noteHandler.List)
		noteGroup.POST("", r.noteHandler.Create)
		noteGroup.GET("/:id", r.noteHandler.Get)
		noteGroup.PUT("/:id", r.noteHandler.Update)
		noteGroup.DELETE("/:id", r.noteHandler.Delete)
	}

	// Optional static frontend, mirroring the deployment that ships the
	// bundled web client next to the binary.
	if dir := r.cfg.HTTP.StaticDir; dir != "" {
		e.Static("/static", dir)
		e.File("/", filepath.Join(dir, "landing.html"))
	}
}
