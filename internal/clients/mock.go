package clients

import (
	"context"
	"fmt"
	"sync"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// Ensure MockBackoffice implements API.
var _ API = (*MockBackoffice)(nil)

// MockBackoffice is an in-memory API implementation for tests. Seed the
// collections directly; use FailWith to force an endpoint to error.
type MockBackoffice struct {
	mu sync.Mutex

	Users      []models.UserProfile
	Customers  []models.Customer
	Products   []models.Product
	Categories []models.Category
	Stocks     []models.Stock
	Orders     []models.Order
	SavedItems map[string][]models.OrderItemInput
	Totals     map[string]float64
	Counts     models.DashboardCounts

	errs   map[string]error
	nextID int
}

// NewMockBackoffice creates an empty mock back-office.
func NewMockBackoffice() *MockBackoffice {
	return &MockBackoffice{
		SavedItems: make(map[string][]models.OrderItemInput),
		Totals:     make(map[string]float64),
		errs:       make(map[string]error),
	}
}

// FailWith makes the named endpoint (e.g. "customer.create") return err.
func (m *MockBackoffice) FailWith(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[op] = err
}

func (m *MockBackoffice) fail(op string) error {
	return m.errs[op]
}

func (m *MockBackoffice) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s_%d", prefix, m.nextID)
}

func (m *MockBackoffice) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("auth.login"); err != nil {
		return nil, err
	}
	return &models.LoginResult{
		Token: "tok_test",
		User:  models.UserProfile{ID: "usr_1", Username: username, Name: username},
	}, nil
}

func (m *MockBackoffice) Logout(ctx context.Context, sess *models.Session) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail("auth.logout")
}

func (m *MockBackoffice) ListUsers(ctx context.Context, sess *models.Session) ([]models.UserProfile, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("user.list"); err != nil {
		return nil, err
	}
	return append([]models.UserProfile(nil), m.Users...), nil
}

func (m *MockBackoffice) CreateUser(ctx context.Context, sess *models.Session, req UserRequest) (*models.UserProfile, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("user.create"); err != nil {
		return nil, err
	}
	user := models.UserProfile{
		ID:       m.id("usr"),
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
	}
	m.Users = append(m.Users, user)
	return &user, nil
}

func (m *MockBackoffice) UpdateUser(ctx context.Context, sess *models.Session, id string, req UserRequest) (*models.UserProfile, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("user.update"); err != nil {
		return nil, err
	}
	for i := range m.Users {
		if m.Users[i].ID == id {
			m.Users[i].Username = req.Username
			m.Users[i].Name = req.Name
			m.Users[i].Email = req.Email
			return &m.Users[i], nil
		}
	}
	return nil, &RequestError{Endpoint: "user.update", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) DeleteUser(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("user.delete"); err != nil {
		return err
	}
	for i := range m.Users {
		if m.Users[i].ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}
	return &RequestError{Endpoint: "user.delete", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) ListCustomers(ctx context.Context, sess *models.Session) ([]models.Customer, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("customer.list"); err != nil {
		return nil, err
	}
	return append([]models.Customer(nil), m.Customers...), nil
}

func (m *MockBackoffice) CreateCustomer(ctx context.Context, sess *models.Session, req CustomerRequest) (*models.Customer, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("customer.create"); err != nil {
		return nil, err
	}
	customer := models.Customer{
		ID:      m.id("cus"),
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	}
	m.Customers = append(m.Customers, customer)
	return &customer, nil
}

func (m *MockBackoffice) UpdateCustomer(ctx context.Context, sess *models.Session, id string, req CustomerRequest) (*models.Customer, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("customer.update"); err != nil {
		return nil, err
	}
	for i := range m.Customers {
		if m.Customers[i].ID == id {
			m.Customers[i].Name = req.Name
			m.Customers[i].Email = req.Email
			m.Customers[i].Address = req.Address
			m.Customers[i].Phone = req.Phone
			return &m.Customers[i], nil
		}
	}
	return nil, &RequestError{Endpoint: "customer.update", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) DeleteCustomer(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("customer.delete"); err != nil {
		return err
	}
	for i := range m.Customers {
		if m.Customers[i].ID == id {
			m.Customers = append(m.Customers[:i], m.Customers[i+1:]...)
			return nil
		}
	}
	return &RequestError{Endpoint: "customer.delete", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) ListProducts(ctx context.Context, sess *models.Session) ([]models.Product, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("product.list"); err != nil {
		return nil, err
	}
	return append([]models.Product(nil), m.Products...), nil
}

func (m *MockBackoffice) CreateProduct(ctx context.Context, sess *models.Session, req ProductRequest) (*models.Product, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("product.create"); err != nil {
		return nil, err
	}
	product := models.Product{
		ID:              m.id("prd"),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		QuantityProduct: req.QuantityProduct,
		CategoriesID:    req.CategoriesID,
	}
	m.Products = append(m.Products, product)
	return &product, nil
}

func (m *MockBackoffice) UpdateProduct(ctx context.Context, sess *models.Session, id string, req ProductRequest) (*models.Product, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("product.update"); err != nil {
		return nil, err
	}
	for i := range m.Products {
		if m.Products[i].ID == id {
			m.Products[i].Name = req.Name
			m.Products[i].Description = req.Description
			m.Products[i].Price = req.Price
			m.Products[i].QuantityProduct = req.QuantityProduct
			m.Products[i].CategoriesID = req.CategoriesID
			return &m.Products[i], nil
		}
	}
	return nil, &RequestError{Endpoint: "product.update", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) DeleteProduct(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("product.delete"); err != nil {
		return err
	}
	for i := range m.Products {
		if m.Products[i].ID == id {
			m.Products = append(m.Products[:i], m.Products[i+1:]...)
			return nil
		}
	}
	return &RequestError{Endpoint: "product.delete", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) ListCategories(ctx context.Context, sess *models.Session) ([]models.Category, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("category.list"); err != nil {
		return nil, err
	}
	return append([]models.Category(nil), m.Categories...), nil
}

func (m *MockBackoffice) CreateCategory(ctx context.Context, sess *models.Session, req CategoryRequest) (*models.Category, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("category.create"); err != nil {
		return nil, err
	}
	category := models.Category{ID: m.id("cat"), Name: req.Name, Description: req.Description}
	m.Categories = append(m.Categories, category)
	return &category, nil
}

func (m *MockBackoffice) UpdateCategory(ctx context.Context, sess *models.Session, id string, req CategoryRequest) (*models.Category, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("category.update"); err != nil {
		return nil, err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			m.Categories[i].Name = req.Name
			m.Categories[i].Description = req.Description
			return &m.Categories[i], nil
		}
	}
	return nil, &RequestError{Endpoint: "category.update", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) DeleteCategory(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("category.delete"); err != nil {
		return err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return &RequestError{Endpoint: "category.delete", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) ListOrders(ctx context.Context, sess *models.Session) ([]models.Order, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("order.list"); err != nil {
		return nil, err
	}
	return append([]models.Order(nil), m.Orders...), nil
}

func (m *MockBackoffice) CreateOrder(ctx context.Context, sess *models.Session, req OrderRequest) (*models.Order, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("order.create"); err != nil {
		return nil, err
	}
	order := models.Order{
		ID:          m.id("ord"),
		CustomerID:  req.CustomerID,
		OrderDate:   req.OrderDate,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	}
	m.Orders = append(m.Orders, order)
	return &order, nil
}

func (m *MockBackoffice) DeleteOrder(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("order.delete"); err != nil {
		return err
	}
	for i := range m.Orders {
		if m.Orders[i].ID == id {
			m.Orders = append(m.Orders[:i], m.Orders[i+1:]...)
			return nil
		}
	}
	return &RequestError{Endpoint: "order.delete", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) UpdateOrderTotal(ctx context.Context, sess *models.Session, orderID string, total float64) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("order.update_total"); err != nil {
		return err
	}
	m.Totals[orderID] = total
	for i := range m.Orders {
		if m.Orders[i].ID == orderID {
			m.Orders[i].TotalAmount = total
		}
	}
	return nil
}

func (m *MockBackoffice) GetOrderItems(ctx context.Context, sess *models.Session, orderID string) ([]models.OrderItem, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("order.items"); err != nil {
		return nil, err
	}
	items := make([]models.OrderItem, 0, len(m.SavedItems[orderID]))
	for _, input := range m.SavedItems[orderID] {
		item := models.OrderItem{ProductID: input.ProductID, Quantity: input.Quantity}
		for i := range m.Products {
			if m.Products[i].ID == input.ProductID {
				item.Product = &m.Products[i]
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (m *MockBackoffice) SaveOrderItems(ctx context.Context, sess *models.Session, orderID string, items []models.OrderItemInput) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("order.save_items"); err != nil {
		return err
	}
	m.SavedItems[orderID] = append([]models.OrderItemInput(nil), items...)
	return nil
}

func (m *MockBackoffice) ListStock(ctx context.Context, sess *models.Session) ([]models.Stock, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("stock.list"); err != nil {
		return nil, err
	}
	return append([]models.Stock(nil), m.Stocks...), nil
}

func (m *MockBackoffice) CreateStock(ctx context.Context, sess *models.Session, req StockRequest) (*models.Stock, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("stock.create"); err != nil {
		return nil, err
	}
	row := models.Stock{ID: m.id("stk"), ProductID: req.ProductID, Limit: req.Limit}
	for i := range m.Products {
		if m.Products[i].ID == req.ProductID {
			row.Product = &m.Products[i]
		}
	}
	m.Stocks = append(m.Stocks, row)
	return &row, nil
}

func (m *MockBackoffice) UpdateStock(ctx context.Context, sess *models.Session, id string, req StockRequest) (*models.Stock, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("stock.update"); err != nil {
		return nil, err
	}
	for i := range m.Stocks {
		if m.Stocks[i].ID == id {
			m.Stocks[i].ProductID = req.ProductID
			m.Stocks[i].Limit = req.Limit
			return &m.Stocks[i], nil
		}
	}
	return nil, &RequestError{Endpoint: "stock.update", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) DeleteStock(ctx context.Context, sess *models.Session, id string) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("stock.delete"); err != nil {
		return err
	}
	for i := range m.Stocks {
		if m.Stocks[i].ID == id {
			m.Stocks = append(m.Stocks[:i], m.Stocks[i+1:]...)
			return nil
		}
	}
	return &RequestError{Endpoint: "stock.delete", Status: 404, Body: "not found"}
}

func (m *MockBackoffice) RestockAll(ctx context.Context, sess *models.Session) error {
	if err := requireToken(sess); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("stock.restock_all"); err != nil {
		return err
	}
	for i := range m.Stocks {
		if m.Stocks[i].Product != nil && m.Stocks[i].Product.QuantityProduct < m.Stocks[i].Limit {
			m.Stocks[i].Product.QuantityProduct = m.Stocks[i].Limit
		}
	}
	return nil
}

func (m *MockBackoffice) DashboardCounts(ctx context.Context, sess *models.Session) (*models.DashboardCounts, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("dashboard.counts"); err != nil {
		return nil, err
	}
	counts := m.Counts
	return &counts, nil
}
