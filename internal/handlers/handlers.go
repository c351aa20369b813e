package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/config"
	"github.com/tokokita/tokokita-admin-service/internal/repository"
	"github.com/tokokita/tokokita-admin-service/internal/service"
)

// Handlers holds all HTTP handlers for the admin service.
type Handlers struct {
	sessions  repository.SessionStore
	api       clients.API
	users     *service.UserService
	customers *service.CustomerService
	catalog   *service.CatalogService
	stock     *service.StockService
	orders    *service.OrderService
	composer  *service.OrderComposer
	dashboard *service.DashboardService
	config    *config.Config
	logger    *logrus.Entry
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	sessions repository.SessionStore,
	api clients.API,
	users *service.UserService,
	customers *service.CustomerService,
	catalog *service.CatalogService,
	stock *service.StockService,
	orders *service.OrderService,
	composer *service.OrderComposer,
	dashboard *service.DashboardService,
	cfg *config.Config,
	logger *logrus.Entry,
) *Handlers {
	return &Handlers{
		sessions:  sessions,
		api:       api,
		users:     users,
		customers: customers,
		catalog:   catalog,
		stock:     stock,
		orders:    orders,
		composer:  composer,
		dashboard: dashboard,
		config:    cfg,
		logger:    logger,
	}
}

// handleError maps service and client errors onto HTTP statuses. The
// duplicate-phone conflict carries a level hint so the UI can show it as
// information rather than a failure.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, clients.ErrMissingToken),
		errors.Is(err, repository.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
		return
	case errors.Is(err, service.ErrPhoneTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "phone number already registered",
			"level": "info",
		})
		return
	case errors.Is(err, repository.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order draft not found"})
		return
	case errors.Is(err, service.ErrNoCustomer),
		errors.Is(err, service.ErrNoItems),
		errors.Is(err, service.ErrOrderNotCreated),
		errors.Is(err, service.ErrOrderAlreadyCreated),
		errors.Is(err, service.ErrDraftFinished),
		errors.Is(err, service.ErrRowOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var stockErr *service.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    stockErr.Error(),
			"products": stockErr.Products,
		})
		return
	}

	var validationErr *clients.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"errors": validationErr.FieldErrors,
		})
		return
	}

	var requestErr *clients.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Status == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "back-office request failed"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
