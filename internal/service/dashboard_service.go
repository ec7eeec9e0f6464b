package service

import (
	"github.com/lumina-next/internal/constants"
	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the admin overview.
type DashboardSummary struct {
	TotalSales    models.Money     `json:"total_sales"`
	TotalOrders   int64            `json:"total_orders"`
	TotalProducts int64            `json:"total_products"`
	StatusCounts  map[string]int64 `json:"status_counts"`
	RecentOrders  []RecentOrder    `json:"recent_orders"`
}

// RecentOrder is one row of the recent-orders table.
type RecentOrder struct {
	OrderNo    string       `json:"order_no"`
	Customer   string       `json:"customer"`
	GrandTotal models.Money `json:"grand_total"`
	Status     string       `json:"status"`
	CreatedAt  string       `json:"created_at"`
}

// DashboardService aggregates store statistics for the admin overview.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// Summary builds the admin overview.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	overview, err := s.dashboardRepo.GetOverview()
	if err != nil {
		return nil, err
	}

	statusRows, err := s.dashboardRepo.GetStatusCounts()
	if err != nil {
		return nil, err
	}
	statusCounts := make(map[string]int64, len(constants.OrderStatuses))
	for _, status := range constants.OrderStatuses {
		statusCounts[status] = 0
	}
	for _, row := range statusRows {
		statusCounts[row.Status] = row.Count
	}

	recent, err := s.dashboardRepo.GetRecentOrders(5)
	if err != nil {
		return nil, err
	}
	recentOrders := make([]RecentOrder, 0, len(recent))
	for _, order := range recent {
		recentOrders = append(recentOrders, RecentOrder{
			OrderNo:    order.OrderNo,
			Customer:   order.CustomerName(),
			GrandTotal: order.GrandTotal,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt.Format("2006-01-02"),
		})
	}

	return &DashboardSummary{
		TotalSales:    models.NewMoneyFromDecimal(decimal.NewFromFloat(overview.SalesTotal)),
		TotalOrders:   overview.OrdersTotal,
		TotalProducts: overview.ActiveProducts,
		StatusCounts:  statusCounts,
		RecentOrders:  recentOrders,
	}, nil
}
