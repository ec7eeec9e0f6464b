package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lumina-next/internal/constants"
	"github.com/lumina-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order models failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func createTestOrder(t *testing.T, repo *GormOrderRepository, orderNo, firstName, lastName, status string, total float64) *models.Order {
	t.Helper()
	amount := models.NewMoneyFromDecimal(decimal.NewFromFloat(total))
	order := &models.Order{
		OrderNo:       orderNo,
		Status:        status,
		FirstName:     firstName,
		LastName:      lastName,
		Phone:         "+1 555-0000",
		Address:       "1 Test St",
		City:          "Testville",
		PaymentMethod: constants.PaymentMethodCOD,
		ItemsSubtotal: amount,
		GrandTotal:    amount,
	}
	items := []models.OrderItem{
		{ProductID: 1, Name: "Test Lamp", UnitPrice: amount, Quantity: 1, TotalPrice: amount},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order %s failed: %v", orderNo, err)
	}
	return order
}

func TestOrderRepositoryCreateAndGet(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createTestOrder(t, repo, "ORD-TEST1", "John", "Doe", constants.OrderStatusPending, 99.99)

	order, err := repo.GetByOrderNo("ORD-TEST1")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if order == nil {
		t.Fatalf("order should exist")
	}
	if len(order.Items) != 1 {
		t.Fatalf("items length want 1 got %d", len(order.Items))
	}
	if order.Items[0].OrderID != order.ID {
		t.Fatalf("item order id want %d got %d", order.ID, order.Items[0].OrderID)
	}

	missing, err := repo.GetByOrderNo("ORD-NOPE")
	if err != nil {
		t.Fatalf("get missing order failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing order should be nil")
	}
}

func TestOrderRepositoryExistsByOrderNo(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createTestOrder(t, repo, "ORD-EXISTS", "Jane", "Smith", constants.OrderStatusPending, 10)

	taken, err := repo.ExistsByOrderNo("ORD-EXISTS")
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if !taken {
		t.Fatalf("order number should be taken")
	}
	free, err := repo.ExistsByOrderNo("ORD-FREE")
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if free {
		t.Fatalf("unused order number should be free")
	}
}

func TestOrderRepositoryListAdminSearch(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createTestOrder(t, repo, "ORD-001", "John", "Doe", constants.OrderStatusDelivered, 239.98)
	createTestOrder(t, repo, "ORD-002", "Jane", "Smith", constants.OrderStatusProcessing, 129.99)
	createTestOrder(t, repo, "ORD-003", "Bob", "Wilson", constants.OrderStatusPending, 269.98)

	// case-insensitive match on the customer full name
	orders, total, err := repo.ListAdmin(OrderListFilter{Search: "john doe"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("name search want 1 order got total=%d len=%d", total, len(orders))
	}
	if orders[0].OrderNo != "ORD-001" {
		t.Fatalf("name search want ORD-001 got %s", orders[0].OrderNo)
	}

	// substring match on the order number
	orders, total, err = repo.ListAdmin(OrderListFilter{Search: "ord-00"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("order-no search want 3 got %d", total)
	}
	if orders[0].OrderNo != "ORD-003" {
		t.Fatalf("list should be newest first, got %s", orders[0].OrderNo)
	}
}

func TestOrderRepositoryListAdminStatusAndSearchCombine(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createTestOrder(t, repo, "ORD-010", "John", "Doe", constants.OrderStatusDelivered, 50)
	createTestOrder(t, repo, "ORD-011", "John", "Dorsey", constants.OrderStatusPending, 60)

	orders, total, err := repo.ListAdmin(OrderListFilter{Status: constants.OrderStatusPending, Search: "john"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("combined filter want 1 got total=%d len=%d", total, len(orders))
	}
	if orders[0].OrderNo != "ORD-011" {
		t.Fatalf("combined filter want ORD-011 got %s", orders[0].OrderNo)
	}

	// "all" disables the status filter
	_, total, err = repo.ListAdmin(OrderListFilter{Status: "all"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("all status want 2 got %d", total)
	}
}

func TestOrderRepositoryListAdminPagination(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	for i := 1; i <= 5; i++ {
		createTestOrder(t, repo, fmt.Sprintf("ORD-P%d", i), "Page", "Tester", constants.OrderStatusPending, float64(i))
	}

	orders, total, err := repo.ListAdmin(OrderListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(orders) != 2 {
		t.Fatalf("page length want 2 got %d", len(orders))
	}
	if orders[0].OrderNo != "ORD-P3" {
		t.Fatalf("page 2 should start at ORD-P3 got %s", orders[0].OrderNo)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)
	createTestOrder(t, repo, "ORD-UPD", "Status", "Tester", constants.OrderStatusDelivered, 10)

	affected, err := repo.UpdateStatus("ORD-UPD", constants.OrderStatusPending, map[string]interface{}{
		"updated_at": time.Now(),
	})
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	order, err := repo.GetByOrderNo("ORD-UPD")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want Pending got %s", order.Status)
	}

	affected, err = repo.UpdateStatus("ORD-GONE", constants.OrderStatusPending, nil)
	if err != nil {
		t.Fatalf("update missing order failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("missing order affected want 0 got %d", affected)
	}
}
