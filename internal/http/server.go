// Package http provides the HTTP server, routing, and middleware for the API.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderHTTP "github.com/danilo/sellora-commerce/internal/order/http"
	productHTTP "github.com/danilo/sellora-commerce/internal/product/http"
	userHTTP "github.com/danilo/sellora-commerce/internal/user/http"
)

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// RouterConfig holds the handlers and middleware settings used to build the router.
type RouterConfig struct {
	CORSEnabled             bool
	CORSAllowOrigins        string
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	// MetricsMiddleware is optional; nil disables HTTP metrics collection.
	MetricsMiddleware gin.HandlerFunc

	UserHandler      *userHTTP.UserHandler
	ProductHandler   *productHTTP.ProductHandler
	OrderHandler     *orderHTTP.OrderHandler
	OrderItemHandler *orderHTTP.OrderItemHandler
}

// NewServer creates a new HTTP server. The database handle is used by the
// readiness endpoint; it may be nil in tests.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware and all resource routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api")

	if cfg.UserHandler != nil {
		users := api.Group("/users")
		users.GET("", cfg.UserHandler.ListHandler)
		users.POST("", cfg.UserHandler.CreateHandler)
		users.GET("/:id", cfg.UserHandler.GetHandler)
		users.PUT("/:id", cfg.UserHandler.UpdateHandler)
		users.DELETE("/:id", cfg.UserHandler.DeleteHandler)
		users.GET("/username/:username", cfg.UserHandler.GetByUsernameHandler)
		users.GET("/email/:email", cfg.UserHandler.GetByEmailHandler)
		users.GET("/document/:document", cfg.UserHandler.GetByDocumentHandler)
	}

	if cfg.ProductHandler != nil {
		products := api.Group("/products")
		products.GET("", cfg.ProductHandler.ListHandler)
		products.POST("", cfg.ProductHandler.CreateHandler)
		products.GET("/:id", cfg.ProductHandler.GetHandler)
		products.PUT("/:id", cfg.ProductHandler.UpdateHandler)
		products.DELETE("/:id", cfg.ProductHandler.DeleteHandler)
	}

	if cfg.OrderHandler != nil {
		orders := api.Group("/orders")
		orders.GET("", cfg.OrderHandler.ListHandler)
		orders.POST("", cfg.OrderHandler.CreateHandler)
		orders.GET("/:id", cfg.OrderHandler.GetHandler)
		orders.PUT("/:id", cfg.OrderHandler.UpdateHandler)
		orders.DELETE("/:id", cfg.OrderHandler.DeleteHandler)
	}

	if cfg.OrderItemHandler != nil {
		items := api.Group("/order-items")
		items.GET("", cfg.OrderItemHandler.ListHandler)
		items.POST("", cfg.OrderItemHandler.CreateHandler)
		items.GET("/:id", cfg.OrderItemHandler.GetHandler)
		items.PUT("/:id", cfg.OrderItemHandler.UpdateHandler)
		items.DELETE("/:id", cfg.OrderItemHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
// SetupRouter must have been called first.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must have been called first.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		components["database"] = "error"
		ready = false
	} else {
		components["database"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
