// Package clients wraps the external back-office REST API: one method per
// resource/action, bearer credentials passed explicitly per call.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/config"
	"github.com/tokokita/tokokita-admin-service/internal/metrics"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// API is the surface of the back-office REST API consumed by this service.
type API interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Logout(ctx context.Context, sess *models.Session) error

	ListUsers(ctx context.Context, sess *models.Session) ([]models.UserProfile, error)
	CreateUser(ctx context.Context, sess *models.Session, req UserRequest) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, sess *models.Session, id string, req UserRequest) (*models.UserProfile, error)
	DeleteUser(ctx context.Context, sess *models.Session, id string) error

	ListCustomers(ctx context.Context, sess *models.Session) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, sess *models.Session, req CustomerRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, sess *models.Session, id string, req CustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, sess *models.Session, id string) error

	ListProducts(ctx context.Context, sess *models.Session) ([]models.Product, error)
	CreateProduct(ctx context.Context, sess *models.Session, req ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, sess *models.Session, id string, req ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, sess *models.Session, id string) error

	ListCategories(ctx context.Context, sess *models.Session) ([]models.Category, error)
	CreateCategory(ctx context.Context, sess *models.Session, req CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, sess *models.Session, id string, req CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, sess *models.Session, id string) error

	ListOrders(ctx context.Context, sess *models.Session) ([]models.Order, error)
	CreateOrder(ctx context.Context, sess *models.Session, req OrderRequest) (*models.Order, error)
	DeleteOrder(ctx context.Context, sess *models.Session, id string) error
	UpdateOrderTotal(ctx context.Context, sess *models.Session, orderID string, total float64) error
	GetOrderItems(ctx context.Context, sess *models.Session, orderID string) ([]models.OrderItem, error)
	SaveOrderItems(ctx context.Context, sess *models.Session, orderID string, items []models.OrderItemInput) error

	ListStock(ctx context.Context, sess *models.Session) ([]models.Stock, error)
	CreateStock(ctx context.Context, sess *models.Session, req StockRequest) (*models.Stock, error)
	UpdateStock(ctx context.Context, sess *models.Session, id string, req StockRequest) (*models.Stock, error)
	DeleteStock(ctx context.Context, sess *models.Session, id string) error
	RestockAll(ctx context.Context, sess *models.Session) error

	DashboardCounts(ctx context.Context, sess *models.Session) (*models.DashboardCounts, error)
}

// Ensure Backoffice implements API.
var _ API = (*Backoffice)(nil)

// Backoffice is the HTTP implementation of API. Each mutating call is a
// single request: no retries, no idempotency keys. The configured timeout
// defaults to zero, so a stalled upstream request blocks its caller.
type Backoffice struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewBackoffice creates an HTTP-based back-office client.
func NewBackoffice(cfg config.ServiceConfig, logger *logrus.Entry) *Backoffice {
	return &Backoffice{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// call issues one request. op is the metrics/log endpoint name. When
// structured is set, a non-2xx response body is probed for the API's
// {errors: {field: [messages]}} shape and surfaced as a *ValidationError;
// otherwise (and as a fallback) the raw body rides along in a
// *RequestError. Nil sess skips the Authorization header (login only).
func (c *Backoffice) call(ctx context.Context, sess *models.Session, op, method, path string, body, out any, structured bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(op, "error").Inc()
		c.logger.WithFields(logrus.Fields{
			"endpoint": op,
			"error":    err.Error(),
		}).Error("Back-office request failed")
		return err
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.WithFields(logrus.Fields{
			"endpoint":    op,
			"status_code": resp.StatusCode,
		}).Error("Back-office returned error status")

		if structured {
			var payload struct {
				Errors map[string][]string `json:"errors"`
			}
			if json.Unmarshal(raw, &payload) == nil && len(payload.Errors) > 0 {
				return &ValidationError{Status: resp.StatusCode, FieldErrors: payload.Errors}
			}
		}
		return &RequestError{Endpoint: op, Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// requireToken enforces the authenticated-endpoint precondition before any
// network traffic happens.
func requireToken(sess *models.Session) error {
	if sess == nil || sess.Token == "" {
		return ErrMissingToken
	}
	return nil
}
