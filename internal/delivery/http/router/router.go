// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"phonebook/internal/delivery/http/middleware"
	"phonebook/internal/delivery/http/router/handler"
	"phonebook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EntryHandler   *handler.EntryHandler
	SearchHandler  *handler.SearchHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	entryHandler   *handler.EntryHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		entryHandler:   params.EntryHandler,
		searchHandler:  params.SearchHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	phonebook := e.Group("/phonebook")
	phonebook.Use(r.authMiddleware.Authenticate)
	{
		phonebook.GET("/entries", r.searchHandler.ListEntries)
		phonebook.GET("/me/entries", r.searchHandler.ListMyEntries)
		phonebook.GET("/entries/:id", r.searchHandler.GetEntry)
		phonebook.GET("/entries/:id/qrcode", r.searchHandler.GetContactCard)

		phonebook.POST("/entries", r.entryHandler.CreateEntry)
		phonebook.PATCH("/entries/:id", r.entryHandler.UpdateEntry)
		phonebook.DELETE("/entries/:id", r.entryHandler.DeleteEntry)
		phonebook.POST("/entries/:id/groups", r.entryHandler.AddToGroup)
		phonebook.DELETE("/entries/:id/groups/:name", r.entryHandler.RemoveFromGroup)
		phonebook.POST("/entries/:id/numbers", r.entryHandler.AddNumber)
		phonebook.DELETE("/numbers/:id", r.entryHandler.RemoveNumber)
		phonebook.POST("/entries/:id/ratings", r.entryHandler.AddRating)
	}
}
