// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tally/internal/delivery/http/middleware"
	"tally/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ExpenseHandler  *handler.ExpenseHandler
	SummaryHandler  *handler.SummaryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	expenseHandler  *handler.ExpenseHandler
	summaryHandler  *handler.SummaryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		expenseHandler:  params.ExpenseHandler,
		summaryHandler:  params.SummaryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a valid bearer token.
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
	}

	categoryGroup := api.Group("/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	{
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.GetByID)
		categoryGroup.PUT("/:id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete)
	}

	expenseGroup := api.Group("/expenses")
	expenseGroup.Use(r.authMiddleware.Authenticate)
	{
		expenseGroup.POST("", r.expenseHandler.Create)
		expenseGroup.GET("", r.expenseHandler.List)
		expenseGroup.GET("/:id", r.expenseHandler.GetByID)
		expenseGroup.PUT("/:id", r.expenseHandler.Update)
		expenseGroup.DELETE("/:id", r.expenseHandler.Delete)
	}

	summaryGroup := api.Group("/summaries")
	summaryGroup.Use(r.authMiddleware.Authenticate)
	{
		summaryGroup.GET("/monthly", r.summaryHandler.Monthly)
		summaryGroup.GET("/categories", r.summaryHandler.ByCategory)
	}
}
