package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart models failed: %v", err)
	}
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func createCartServiceProduct(t *testing.T, db *gorm.DB, slug string, price float64, inStock bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Slug:        slug,
		Name:        "Lamp " + slug,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		InStock:     inStock,
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartServiceAddItemIncrementsExistingLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "amber-glow", 159.99, true)

	if _, err := svc.AddItem("sess-1", product.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	view, err := svc.AddItem("sess-1", product.ID)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("duplicate add should keep one line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", view.Items[0].Quantity)
	}
	if view.ItemCount != 2 {
		t.Fatalf("item count want 2 got %d", view.ItemCount)
	}
	if view.Total.String() != "319.98" {
		t.Fatalf("total want 319.98 got %s", view.Total.String())
	}
}

func TestCartServiceAddItemRejectsOutOfStock(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "art-deco", 219.99, false)

	_, err := svc.AddItem("sess-1", product.ID)
	if !errors.Is(err, ErrProductOutOfStock) {
		t.Fatalf("want ErrProductOutOfStock got %v", err)
	}

	view, err := svc.GetCart("sess-1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should stay empty, got %d lines", len(view.Items))
	}
}

func TestCartServiceAddItemUnknownProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	_, err := svc.AddItem("sess-1", 42)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
}

func TestCartServiceUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "bamboo", 89.99, true)

	if _, err := svc.AddItem("sess-1", product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.UpdateQuantity("sess-1", product.ID, 0)
	if err != nil {
		t.Fatalf("update to 0 failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("quantity 0 should remove the line, got %d", len(view.Items))
	}

	if _, err := svc.AddItem("sess-1", product.ID); err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	view, err = svc.UpdateQuantity("sess-1", product.ID, -3)
	if err != nil {
		t.Fatalf("update to -3 failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("negative quantity should remove the line, got %d", len(view.Items))
	}
}

func TestCartServiceUpdateQuantitySetsValue(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "smart-touch", 189.99, true)

	if _, err := svc.AddItem("sess-1", product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.UpdateQuantity("sess-1", product.ID, 4)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if view.Items[0].Quantity != 4 {
		t.Fatalf("quantity want 4 got %d", view.Items[0].Quantity)
	}
	if view.Total.String() != "759.96" {
		t.Fatalf("total want 759.96 got %s", view.Total.String())
	}
}

func TestCartServiceUpdateQuantityAbsentProductIsNoOp(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "edison", 129.99, true)

	if _, err := svc.AddItem("sess-1", product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.UpdateQuantity("sess-1", product.ID+100, 3)
	if err != nil {
		t.Fatalf("update absent product failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 1 {
		t.Fatalf("cart should be unchanged, got %+v", view.Items)
	}
}

func TestCartServiceRemoveItemIsIdempotent(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "ceramic", 179.99, true)

	if _, err := svc.AddItem("sess-1", product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.RemoveItem("sess-1", product.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should be empty after remove")
	}

	// removing again is a no-op
	view, err = svc.RemoveItem("sess-1", product.ID)
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart should stay empty")
	}
}

func TestCartServiceClearCart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	productA := createCartServiceProduct(t, db, "pipe", 139.99, true)
	productB := createCartServiceProduct(t, db, "crystal", 249.99, true)

	if _, err := svc.AddItem("sess-1", productA.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddItem("sess-1", productB.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.ClearCart("sess-1")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(view.Items) != 0 || view.ItemCount != 0 {
		t.Fatalf("cart should be empty after clear")
	}
	if view.Total.String() != "0.00" {
		t.Fatalf("total want 0.00 got %s", view.Total.String())
	}

	// clearing an empty cart is a no-op
	if _, err := svc.ClearCart("sess-1"); err != nil {
		t.Fatalf("clearing empty cart failed: %v", err)
	}
}

func TestCartServiceEmptySessionReturnsEmptyCart(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	view, err := svc.GetCart("")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 || view.ItemCount != 0 {
		t.Fatalf("sessionless cart should be empty")
	}
}
