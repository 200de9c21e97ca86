// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"afritrade/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration and authentication routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/client", r.userHandler.RegisterClient)
		authGroup.POST("/register/supplier", r.userHandler.RegisterSupplier)
		authGroup.POST("/register/transporter", r.userHandler.RegisterTransporter)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Account lookup
	e.GET("/users/:user_id", r.userHandler.GetUser)

	// Product listing routes
	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:product_id", r.productHandler.Get)
		productGroup.PUT("/:product_id", r.productHandler.Update)
		productGroup.DELETE("/:product_id", r.productHandler.Delete)
	}

	// Order ledger routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:order_id", r.orderHandler.Get)
		orderGroup.PUT("/:order_id/status", r.orderHandler.UpdateStatus)
	}
}
