package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lumina-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart models failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartTestProduct(t *testing.T, db *gorm.DB, slug string) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Slug:        slug,
		Name:        "Test Lamp " + slug,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
		InStock:     true,
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartRepositoryUpsertCreatesAndUpdates(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "lamp-a")

	now := time.Now()
	if err := repo.Upsert(&models.CartItem{SessionToken: "sess-1", ProductID: product.ID, Quantity: 1, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.CartItem{SessionToken: "sess-1", ProductID: product.ID, Quantity: 3, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	items, err := repo.ListBySession("sess-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("upsert should keep one line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", items[0].Quantity)
	}
	if items[0].Product == nil || items[0].Product.Slug != "lamp-a" {
		t.Fatalf("list should preload product")
	}
}

func TestCartRepositorySessionsAreIsolated(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "lamp-b")

	now := time.Now()
	if err := repo.Upsert(&models.CartItem{SessionToken: "sess-a", ProductID: product.ID, Quantity: 1, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	items, err := repo.ListBySession("sess-b")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("other session should be empty, got %d lines", len(items))
	}
}

func TestCartRepositoryDeleteAllowsReAdd(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "lamp-c")

	now := time.Now()
	if err := repo.Upsert(&models.CartItem{SessionToken: "sess-1", ProductID: product.ID, Quantity: 2, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.DeleteBySessionAndProduct("sess-1", product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	line, err := repo.GetBySessionAndProduct("sess-1", product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if line != nil {
		t.Fatalf("deleted line should be gone")
	}

	// re-adding the same product must not trip the unique index
	if err := repo.Upsert(&models.CartItem{SessionToken: "sess-1", ProductID: product.ID, Quantity: 1, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("re-add after delete failed: %v", err)
	}
}

func TestCartRepositoryClearBySession(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	productA := createCartTestProduct(t, db, "lamp-d")
	productB := createCartTestProduct(t, db, "lamp-e")

	now := time.Now()
	for _, id := range []uint{productA.ID, productB.ID} {
		if err := repo.Upsert(&models.CartItem{SessionToken: "sess-1", ProductID: id, Quantity: 1, CreatedAt: now, UpdatedAt: now}); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	if err := repo.ClearBySession("sess-1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	items, err := repo.ListBySession("sess-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty after clear, got %d", len(items))
	}

	// clearing an empty cart is a no-op
	if err := repo.ClearBySession("sess-1"); err != nil {
		t.Fatalf("clearing empty cart failed: %v", err)
	}
}
