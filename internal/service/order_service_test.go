package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lumina-next/internal/constants"
	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order models failed: %v", err)
	}
	return NewOrderService(repository.NewOrderRepository(db)), db
}

func createServiceOrder(t *testing.T, db *gorm.DB, orderNo, firstName, lastName, status string) {
	t.Helper()
	amount := models.NewMoneyFromDecimal(decimal.NewFromFloat(59.99))
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
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order %s failed: %v", orderNo, err)
	}
}

func TestOrderServiceListOrdersFilters(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	createServiceOrder(t, db, "ORD-001", "John", "Doe", constants.OrderStatusDelivered)
	createServiceOrder(t, db, "ORD-002", "Jane", "Smith", constants.OrderStatusProcessing)
	createServiceOrder(t, db, "ORD-003", "Bob", "Wilson", constants.OrderStatusPending)

	orders, total, err := svc.ListOrders(ListOrdersInput{Search: "JANE"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "ORD-002" {
		t.Fatalf("search JANE want ORD-002 got total=%d orders=%v", total, orders)
	}

	orders, total, err = svc.ListOrders(ListOrdersInput{Status: constants.OrderStatusPending})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "ORD-003" {
		t.Fatalf("status filter want ORD-003 got total=%d", total)
	}

	_, total, err = svc.ListOrders(ListOrdersInput{Status: "all", Search: "ord"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("all + ord search want 3 got %d", total)
	}

	// search and status combine with AND
	_, total, err = svc.ListOrders(ListOrdersInput{Status: constants.OrderStatusPending, Search: "jane"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("conflicting filters want 0 got %d", total)
	}
}

func TestOrderServiceGetOrder(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	createServiceOrder(t, db, "ORD-GET", "John", "Doe", constants.OrderStatusPending)

	order, err := svc.GetOrder("ORD-GET")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if order.CustomerName() != "John Doe" {
		t.Fatalf("customer name want John Doe got %s", order.CustomerName())
	}

	_, err = svc.GetOrder("ORD-NOPE")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order want ErrOrderNotFound got %v", err)
	}
	_, err = svc.GetOrder("   ")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("blank order no want ErrOrderNotFound got %v", err)
	}
}

func TestOrderServiceUpdateStatusFreeMovement(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	createServiceOrder(t, db, "ORD-MOVE", "Jane", "Smith", constants.OrderStatusDelivered)

	// Delivered back to Pending is allowed; there is no transition table
	order, err := svc.UpdateOrderStatus("ORD-MOVE", constants.OrderStatusPending)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want Pending got %s", order.Status)
	}

	order, err = svc.UpdateOrderStatus("ORD-MOVE", "processing")
	if err != nil {
		t.Fatalf("case-insensitive update failed: %v", err)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("status should be stored canonically, got %s", order.Status)
	}
}

func TestOrderServiceUpdateStatusRejectsUnknown(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	createServiceOrder(t, db, "ORD-BAD", "Bob", "Wilson", constants.OrderStatusPending)

	_, err := svc.UpdateOrderStatus("ORD-BAD", "Shipped")
	if !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("unknown status want ErrInvalidOrderStatus got %v", err)
	}

	order, err := svc.GetOrder("ORD-BAD")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("rejected update should leave status untouched, got %s", order.Status)
	}
}

func TestOrderServiceUpdateStatusMissingOrder(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	_, err := svc.UpdateOrderStatus("ORD-GONE", constants.OrderStatusPending)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order want ErrOrderNotFound got %v", err)
	}
}
