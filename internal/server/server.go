package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/config"
	"github.com/tokokita/tokokita-admin-service/internal/handlers"
)

// Server wires the HTTP surface: health probes, metrics, the login pair
// and the authenticated admin API.
type Server struct {
	config     *config.Config
	router     *gin.Engine
	handlers   *handlers.Handlers
	logger     *logrus.Entry
	httpServer *http.Server
}

// New creates a server with all routes registered.
func New(h *handlers.Handlers, cfg *config.Config, logger *logrus.Entry) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
		logger:   logger,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/ready", s.handlers.Ready)
	s.router.GET("/live", s.handlers.Live)
	s.router.GET("/version", s.handlers.Version)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/api/login", s.handlers.Login)
	s.router.POST("/api/logout", s.handlers.Logout)

	api := s.router.Group("/api")
	api.Use(s.handlers.RequireSession())
	{
		api.GET("/me", s.handlers.Me)
		api.GET("/dashboard", s.handlers.Dashboard)

		api.GET("/users", s.handlers.ListUsers)
		api.POST("/users", s.handlers.CreateUser)
		api.PUT("/users/:id", s.handlers.UpdateUser)
		api.DELETE("/users/:id", s.handlers.DeleteUser)

		api.GET("/customers", s.handlers.ListCustomers)
		api.POST("/customers", s.handlers.CreateCustomer)
		api.PUT("/customers/:id", s.handlers.UpdateCustomer)
		api.DELETE("/customers/:id", s.handlers.DeleteCustomer)

		api.GET("/products", s.handlers.ListProducts)
		api.POST("/products", s.handlers.CreateProduct)
		api.PUT("/products/:id", s.handlers.UpdateProduct)
		api.DELETE("/products/:id", s.handlers.DeleteProduct)

		api.GET("/categories", s.handlers.ListCategories)
		api.POST("/categories", s.handlers.CreateCategory)
		api.PUT("/categories/:id", s.handlers.UpdateCategory)
		api.DELETE("/categories/:id", s.handlers.DeleteCategory)

		api.GET("/stock", s.handlers.ListStock)
		api.POST("/stock", s.handlers.CreateStock)
		api.POST("/stock/restock", s.handlers.Restock)
		api.PUT("/stock/:id", s.handlers.UpdateStock)
		api.DELETE("/stock/:id", s.handlers.DeleteStock)

		api.GET("/orders", s.handlers.ListOrders)
		api.GET("/orders/:id/items", s.handlers.OrderItems)
		api.DELETE("/orders/:id", s.handlers.DeleteOrder)

		api.POST("/order-drafts", s.handlers.OpenDraft)
		api.GET("/order-drafts/:id", s.handlers.GetDraft)
		api.PUT("/order-drafts/:id/customer", s.handlers.SetDraftCustomer)
		api.PUT("/order-drafts/:id/date", s.handlers.SetDraftDate)
		api.POST("/order-drafts/:id/order", s.handlers.CreateDraftOrder)
		api.POST("/order-drafts/:id/rows", s.handlers.AddDraftRow)
		api.PUT("/order-drafts/:id/rows/:index", s.handlers.UpdateDraftRow)
		api.DELETE("/order-drafts/:id/rows/:index", s.handlers.RemoveDraftRow)
		api.POST("/order-drafts/:id/save", s.handlers.SaveDraft)
	}
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(logger *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("Request handled")
	}
}
