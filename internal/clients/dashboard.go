package clients

import (
	"context"
	"net/http"

	"github.com/tokokita/tokokita-admin-service/internal/models"
)

// DashboardCounts fetches the aggregate summary for the landing page.
func (c *Backoffice) DashboardCounts(ctx context.Context, sess *models.Session) (*models.DashboardCounts, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	var counts models.DashboardCounts
	if err := c.call(ctx, sess, "dashboard.counts", http.MethodGet, "/dashboard-counts", nil, &counts, false); err != nil {
		return nil, err
	}
	return &counts, nil
}
