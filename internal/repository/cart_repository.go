package repository

import (
	"errors"

	"github.com/lumina-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	ListBySession(sessionToken string) ([]models.CartItem, error)
	GetBySessionAndProduct(sessionToken string, productID uint) (*models.CartItem, error)
	Upsert(item *models.CartItem) error
	DeleteBySessionAndProduct(sessionToken string, productID uint) error
	ClearBySession(sessionToken string) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListBySession returns the cart lines for a session.
func (r *GormCartRepository) ListBySession(sessionToken string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").
		Where("session_token = ?", sessionToken).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetBySessionAndProduct returns one cart line, nil when absent.
func (r *GormCartRepository) GetBySessionAndProduct(sessionToken string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("session_token = ? AND product_id = ?", sessionToken, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert creates the line or updates its quantity.
func (r *GormCartRepository) Upsert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	var existing models.CartItem
	err := r.db.Where("session_token = ? AND product_id = ?", item.SessionToken, item.ProductID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(item).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"quantity":   item.Quantity,
		"updated_at": item.UpdatedAt,
	}
	return r.db.Model(&existing).Updates(updates).Error
}

// DeleteBySessionAndProduct removes one cart line. Deletes are hard so the
// (session, product) unique index never blocks a later re-add.
func (r *GormCartRepository) DeleteBySessionAndProduct(sessionToken string, productID uint) error {
	return r.db.Unscoped().Where("session_token = ? AND product_id = ?", sessionToken, productID).Delete(&models.CartItem{}).Error
}

// ClearBySession empties the cart.
func (r *GormCartRepository) ClearBySession(sessionToken string) error {
	return r.db.Unscoped().Where("session_token = ?", sessionToken).Delete(&models.CartItem{}).Error
}
