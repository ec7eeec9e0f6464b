package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lumina-next/internal/constants"
	"github.com/lumina-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate dashboard models failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func createDashboardOrder(t *testing.T, db *gorm.DB, orderNo, status string, total float64) {
	t.Helper()
	amount := models.NewMoneyFromDecimal(decimal.NewFromFloat(total))
	order := &models.Order{
		OrderNo:       orderNo,
		Status:        status,
		FirstName:     "Dash",
		LastName:      "Tester",
		Phone:         "+1 555-0000",
		Address:       "1 Test St",
		City:          "Testville",
		PaymentMethod: constants.PaymentMethodCOD,
		ItemsSubtotal: amount,
		GrandTotal:    amount,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order %s failed: %v", orderNo, err)
	}
}

func TestDashboardRepositoryGetOverview(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	createDashboardOrder(t, db, "ORD-A", constants.OrderStatusDelivered, 100.50)
	createDashboardOrder(t, db, "ORD-B", constants.OrderStatusPending, 49.50)
	if err := db.Create(&models.Product{CategoryID: 1, Slug: "lamp", Name: "Lamp", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), IsActive: true}).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&models.Product{CategoryID: 1, Slug: "hidden", Name: "Hidden", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), IsActive: false}).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	overview, err := repo.GetOverview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.OrdersTotal != 2 {
		t.Fatalf("orders total want 2 got %d", overview.OrdersTotal)
	}
	if overview.SalesTotal != 150.0 {
		t.Fatalf("sales total want 150.0 got %v", overview.SalesTotal)
	}
	if overview.ActiveProducts != 1 {
		t.Fatalf("active products want 1 got %d", overview.ActiveProducts)
	}
}

func TestDashboardRepositoryGetStatusCounts(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	createDashboardOrder(t, db, "ORD-C", constants.OrderStatusPending, 10)
	createDashboardOrder(t, db, "ORD-D", constants.OrderStatusPending, 20)
	createDashboardOrder(t, db, "ORD-E", constants.OrderStatusDelivered, 30)

	rows, err := repo.GetStatusCounts()
	if err != nil {
		t.Fatalf("status counts failed: %v", err)
	}
	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	if counts[constants.OrderStatusPending] != 2 {
		t.Fatalf("pending count want 2 got %d", counts[constants.OrderStatusPending])
	}
	if counts[constants.OrderStatusDelivered] != 1 {
		t.Fatalf("delivered count want 1 got %d", counts[constants.OrderStatusDelivered])
	}
	if _, ok := counts[constants.OrderStatusProcessing]; ok {
		t.Fatalf("processing should have no row when no orders carry it")
	}
}

func TestDashboardRepositoryGetRecentOrders(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	for i := 1; i <= 7; i++ {
		createDashboardOrder(t, db, fmt.Sprintf("ORD-R%d", i), constants.OrderStatusPending, float64(i))
	}

	orders, err := repo.GetRecentOrders(5)
	if err != nil {
		t.Fatalf("recent orders failed: %v", err)
	}
	if len(orders) != 5 {
		t.Fatalf("recent orders want 5 got %d", len(orders))
	}
	if orders[0].OrderNo != "ORD-R7" {
		t.Fatalf("recent orders should be newest first, got %s", orders[0].OrderNo)
	}

	// non-positive limit falls back to 5
	orders, err = repo.GetRecentOrders(0)
	if err != nil {
		t.Fatalf("recent orders failed: %v", err)
	}
	if len(orders) != 5 {
		t.Fatalf("default limit want 5 got %d", len(orders))
	}
}
