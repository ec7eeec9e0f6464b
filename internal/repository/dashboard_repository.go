package repository

import (
	"github.com/lumina-next/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository aggregates store statistics. Queries only; no
// business rules live here.
type DashboardRepository interface {
	GetOverview() (DashboardOverviewRow, error)
	GetStatusCounts() ([]DashboardStatusCountRow, error)
	GetRecentOrders(limit int) ([]models.Order, error)
}

// DashboardOverviewRow holds raw overview counters.
type DashboardOverviewRow struct {
	OrdersTotal    int64
	SalesTotal     float64
	ActiveProducts int64
}

// DashboardStatusCountRow is one orders-by-status bucket.
type DashboardStatusCountRow struct {
	Status string
	Count  int64
}

// GormDashboardRepository is the GORM implementation.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates the dashboard repository.
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview returns order count, sales sum, and active product count.
func (r *GormDashboardRepository) GetOverview() (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	if err := r.db.Model(&models.Order{}).Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(grand_total), 0)").
		Scan(&result.SalesTotal).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&result.ActiveProducts).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetStatusCounts returns order counts grouped by status.
func (r *GormDashboardRepository) GetStatusCounts() ([]DashboardStatusCountRow, error) {
	var rows []DashboardStatusCountRow
	if err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetRecentOrders returns the newest orders.
func (r *GormDashboardRepository) GetRecentOrders(limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	var orders []models.Order
	if err := r.db.Order("id desc").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
