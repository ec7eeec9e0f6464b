package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lumina-next/internal/cache"
	"github.com/lumina-next/internal/logger"
	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/repository"
)

// CatalogService serves the read-only product catalog. Lists go through the
// redis cache when it is enabled; the catalog only changes when the seeder
// runs, so a short TTL is enough.
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cacheTTL     time.Duration
}

// NewCatalogService creates the catalog service.
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cacheTTLSeconds int) *CatalogService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheTTL:     ttl,
	}
}

// ListProducts returns listed products, optionally narrowed to one category.
func (s *CatalogService) ListProducts(ctx context.Context, categorySlug string) ([]models.Product, error) {
	categorySlug = strings.TrimSpace(categorySlug)
	cacheKey := fmt.Sprintf("catalog:products:%s", categorySlug)

	var cached []models.Product
	hit, err := cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		logger.Warnw("catalog_cache_read_failed", "key", cacheKey, "error", err)
	}
	if hit {
		return cached, nil
	}

	products, _, err := s.productRepo.List(repository.ProductListFilter{
		CategorySlug: categorySlug,
		OnlyActive:   true,
		WithCategory: true,
	})
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, cacheKey, products, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", cacheKey, "error", err)
	}
	return products, nil
}

// GetProduct returns one product by id.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}
