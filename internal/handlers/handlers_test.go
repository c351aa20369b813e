package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/config"
	"github.com/tokokita/tokokita-admin-service/internal/events"
	"github.com/tokokita/tokokita-admin-service/internal/models"
	"github.com/tokokita/tokokita-admin-service/internal/repository"
	"github.com/tokokita/tokokita-admin-service/internal/service"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func newTestHandlers(mock *clients.MockBackoffice) (*Handlers, repository.SessionStore) {
	logger := testLogger()
	sessions := repository.NewMemorySessionStore()
	drafts := repository.NewMemoryDraftStore()
	publisher := events.NewMockPublisher()

	return NewHandlers(
		sessions,
		mock,
		service.NewUserService(mock, logger),
		service.NewCustomerService(mock, logger),
		service.NewCatalogService(mock, logger),
		service.NewStockService(mock, publisher, logger),
		service.NewOrderService(mock, logger),
		service.NewOrderComposer(mock, drafts, publisher, logger),
		service.NewDashboardService(mock, logger),
		&config.Config{},
		logger,
	), sessions
}

func testRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", h.Health)
	router.POST("/api/login", h.Login)
	router.POST("/api/logout", h.Logout)

	api := router.Group("/api")
	api.Use(h.RequireSession())
	{
		api.GET("/me", h.Me)
		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.GET("/customers", h.ListCustomers)
		api.POST("/customers", h.CreateCustomer)
		api.DELETE("/customers/:id", h.DeleteCustomer)
		api.GET("/dashboard", h.Dashboard)
		api.POST("/order-drafts", h.OpenDraft)
		api.POST("/order-drafts/:id/order", h.CreateDraftOrder)
		api.PUT("/order-drafts/:id/rows/:index", h.UpdateDraftRow)
		api.POST("/order-drafts/:id/save", h.SaveDraft)
	}
	return router
}

func signIn(t *testing.T, sessions repository.SessionStore) *http.Cookie {
	t.Helper()
	id, err := sessions.Create(context.Background(), &models.Session{
		Token: "tok_test",
		User:  models.UserProfile{ID: "usr_1", Username: "admin"},
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return &http.Cookie{Name: sessionCookie, Value: id}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, _ := newTestHandlers(clients.NewMockBackoffice())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Health(c)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", resp["status"])
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	h, _ := newTestHandlers(clients.NewMockBackoffice())
	router := testRouter(h)

	body := bytes.NewBufferString(`{"username":"admin","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("Expected a session cookie")
	}
	if !cookie.HttpOnly {
		t.Error("Expected the session cookie to be http-only")
	}
	if bytes.Contains(w.Body.Bytes(), []byte("tok_test")) {
		t.Error("Bearer token must not appear in the login response")
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	h, _ := newTestHandlers(clients.NewMockBackoffice())
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestAuthenticatedRoutesRejectMissingCookie(t *testing.T) {
	h, _ := newTestHandlers(clients.NewMockBackoffice())
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestListCustomers(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.Customers = []models.Customer{{ID: "cus_1", Name: "Budi"}}
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.AddCookie(signIn(t, sessions))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Customers []models.Customer `json:"customers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Customers) != 1 || resp.Customers[0].Name != "Budi" {
		t.Errorf("Unexpected customers: %+v", resp.Customers)
	}
}

func TestCreateCustomerPhoneConflictIs409(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.FailWith("customer.create", &clients.ValidationError{
		Status: 422,
		FieldErrors: map[string][]string{
			"phone": {"The phone has already been taken."},
		},
	})
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)

	body := bytes.NewBufferString(`{"name":"Budi","phone":"0811"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/customers", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(signIn(t, sessions))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("Expected status 409, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["level"] != "info" {
		t.Errorf("Expected level 'info', got %v", resp["level"])
	}
}

func TestCreateCustomerOtherValidationIs422(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.FailWith("customer.create", &clients.ValidationError{
		Status: 422,
		FieldErrors: map[string][]string{
			"email": {"The email must be a valid email address."},
		},
	})
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)

	body := bytes.NewBufferString(`{"name":"Budi","email":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/customers", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(signIn(t, sessions))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Code)
	}
}

func TestDraftWorkflowOverHTTP(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.Customers = []models.Customer{{ID: "cus_1", Name: "Budi"}}
	mock.Products = []models.Product{
		{ID: "prd_1", Name: "Kopi", Price: 20000, QuantityProduct: 10},
	}
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)
	cookie := signIn(t, sessions)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = bytes.NewBufferString(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/order-drafts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Open: expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var draft models.OrderDraft
	if err := json.Unmarshal(w.Body.Bytes(), &draft); err != nil {
		t.Fatalf("Failed to parse draft: %v", err)
	}
	if draft.CustomerID != "cus_1" {
		t.Errorf("Expected default customer cus_1, got %q", draft.CustomerID)
	}

	// Saving before the header exists is rejected.
	w = do(http.MethodPost, "/api/order-drafts/"+draft.ID+"/save", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Premature save: expected status 400, got %d", w.Code)
	}

	w = do(http.MethodPost, "/api/order-drafts/"+draft.ID+"/order", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Create order: expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(http.MethodPut, "/api/order-drafts/"+draft.ID+"/rows/0", `{"quantity":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Set quantity: expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(http.MethodPost, "/api/order-drafts/"+draft.ID+"/save", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Save: expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var saved struct {
		Order models.Order `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("Failed to parse save response: %v", err)
	}
	if saved.Order.TotalAmount != 60000 {
		t.Errorf("Expected total 60000, got %v", saved.Order.TotalAmount)
	}

	// The finished draft is gone.
	w = do(http.MethodPost, "/api/order-drafts/"+draft.ID+"/save", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Finished draft: expected status 404, got %d", w.Code)
	}
}

func TestDraftSaveInsufficientStock(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.Customers = []models.Customer{{ID: "cus_1", Name: "Budi"}}
	mock.Products = []models.Product{
		{ID: "prd_1", Name: "Kopi", Price: 20000, QuantityProduct: 2},
	}
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)
	cookie := signIn(t, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/order-drafts", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	var draft models.OrderDraft
	if err := json.Unmarshal(w.Body.Bytes(), &draft); err != nil {
		t.Fatalf("Failed to parse draft: %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/order-drafts/"+draft.ID+"/order", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/order-drafts/"+draft.ID+"/rows/0", bytes.NewBufferString(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/order-drafts/"+draft.ID+"/save", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	var resp struct {
		Products []string `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0] != "Kopi" {
		t.Errorf("Expected offending product Kopi, got %v", resp.Products)
	}
}

func TestDeleteCustomerRemovesRowFromList(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.Customers = []models.Customer{
		{ID: "cus_1", Name: "Budi"},
		{ID: "cus_2", Name: "Siti"},
	}
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)
	cookie := signIn(t, sessions)

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/cus_1", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Customers []models.Customer `json:"customers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Customers) != 1 || resp.Customers[0].ID != "cus_2" {
		t.Errorf("Expected only cus_2 to remain, got %+v", resp.Customers)
	}
}

func TestDeleteCustomerFailureLeavesRow(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.Customers = []models.Customer{{ID: "cus_1", Name: "Budi"}}
	mock.FailWith("customer.delete", &clients.RequestError{
		Endpoint: "customer.delete", Status: 500, Body: "boom",
	})
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)
	cookie := signIn(t, sessions)

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/cus_1", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}

	// The collection still holds the row for the caller to keep showing.
	req = httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Customers []models.Customer `json:"customers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Customers) != 1 {
		t.Errorf("Expected the customer to survive the failed delete, got %+v", resp.Customers)
	}
}

func TestUserCRUDOverHTTP(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.Users = []models.UserProfile{{ID: "usr_admin", Username: "admin", Name: "Admin"}}
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)
	cookie := signIn(t, sessions)

	body := bytes.NewBufferString(`{"name":"Kasir","username":"kasir1","email":"kasir@toko.id","password":"rahasia"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Create: expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Users []models.UserProfile `json:"users"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("Expected the refreshed collection with 2 users, got %+v", resp.Users)
	}
	created := resp.Users[1]
	if created.Username != "kasir1" {
		t.Errorf("Expected username kasir1, got %q", created.Username)
	}

	body = bytes.NewBufferString(`{"name":"Kasir Satu","username":"kasir1","email":"kasir@toko.id"}`)
	req = httptest.NewRequest(http.MethodPut, "/api/users/"+created.ID, body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Update: expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/users/"+created.ID, nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Delete: expected status 200, got %d", w.Code)
	}
	if len(mock.Users) != 1 {
		t.Errorf("Expected 1 user to remain, got %+v", mock.Users)
	}
}

func TestDashboard(t *testing.T) {
	mock := clients.NewMockBackoffice()
	mock.Counts = models.DashboardCounts{Customers: 3, Products: 5, Orders: 2, TotalRevenue: 250000}
	h, sessions := newTestHandlers(mock)
	router := testRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.AddCookie(signIn(t, sessions))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp service.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.RevenueDisplay != "Rp 250.000" {
		t.Errorf("Expected revenue display 'Rp 250.000', got %q", resp.RevenueDisplay)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h, sessions := newTestHandlers(clients.NewMockBackoffice())
	router := testRouter(h)
	cookie := signIn(t, sessions)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if _, err := sessions.Get(context.Background(), cookie.Value); err != repository.ErrSessionNotFound {
		t.Errorf("Expected the session to be deleted, got %v", err)
	}
}
