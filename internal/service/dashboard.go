package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/clients"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// Summary is the landing-page card data.
type Summary struct {
	Customers      int     `json:"customers"`
	Products       int     `json:"products"`
	Orders         int     `json:"orders"`
	Revenue        float64 `json:"revenue"`
	RevenueDisplay string  `json:"revenue_display"`
}

// DashboardService backs the landing page.
type DashboardService struct {
	api    clients.API
	logger *logrus.Entry
}

func NewDashboardService(api clients.API, logger *logrus.Entry) *DashboardService {
	return &DashboardService{api: api, logger: logger}
}

// Summary fetches the aggregate counts. A failed fetch is logged and
// returned; there is no retry.
func (s *DashboardService) Summary(ctx context.Context, sess *models.Session) (*Summary, error) {
	counts, err := s.api.DashboardCounts(ctx, sess)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Failed to fetch dashboard counts")
		return nil, err
	}

	return &Summary{
		Customers:      counts.Customers,
		Products:       counts.Products,
		Orders:         counts.Orders,
		Revenue:        counts.TotalRevenue,
		RevenueDisplay: FormatRupiah(counts.TotalRevenue),
	}, nil
}
