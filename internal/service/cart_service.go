package service

import (
	"strings"
	"time"

	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLine is one cart line in a response.
type CartLine struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice models.Money    `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal models.Money    `json:"line_total"`
	Product   *models.Product `json:"product,omitempty"`
}

// CartView is the full cart state. Total and ItemCount are derived from the
// lines on every read, never stored.
type CartView struct {
	Items     []CartLine   `json:"items"`
	ItemCount int          `json:"item_count"`
	Total     models.Money `json:"total"`
}

// CartService owns per-session cart state.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the cart view for a session.
func (s *CartService) GetCart(sessionToken string) (*CartView, error) {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" {
		return emptyCartView(), nil
	}
	items, err := s.cartRepo.ListBySession(sessionToken)
	if err != nil {
		return nil, err
	}
	return buildCartView(items), nil
}

// AddItem puts one unit of a product into the cart. A line already holding
// the product has its quantity incremented; a second line is never created.
func (s *CartService) AddItem(sessionToken string, productID uint) (*CartView, error) {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" || productID == 0 {
		return nil, ErrCartItemInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	if !product.InStock {
		return nil, ErrProductOutOfStock
	}

	quantity := 1
	existing, err := s.cartRepo.GetBySessionAndProduct(sessionToken, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		quantity = existing.Quantity + 1
	}

	now := time.Now()
	item := &models.CartItem{
		SessionToken: sessionToken,
		ProductID:    productID,
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	return s.GetCart(sessionToken)
}

// UpdateQuantity sets a line's quantity. Anything below 1 removes the line.
// A product absent from the cart is a no-op returning the unchanged cart.
func (s *CartService) UpdateQuantity(sessionToken string, productID uint, quantity int) (*CartView, error) {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" || productID == 0 {
		return nil, ErrCartItemInvalid
	}
	if quantity < 1 {
		return s.RemoveItem(sessionToken, productID)
	}

	existing, err := s.cartRepo.GetBySessionAndProduct(sessionToken, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.GetCart(sessionToken)
	}

	now := time.Now()
	item := &models.CartItem{
		SessionToken: sessionToken,
		ProductID:    productID,
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	return s.GetCart(sessionToken)
}

// RemoveItem deletes a line; removing an absent product is a no-op.
func (s *CartService) RemoveItem(sessionToken string, productID uint) (*CartView, error) {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" || productID == 0 {
		return nil, ErrCartItemInvalid
	}
	if err := s.cartRepo.DeleteBySessionAndProduct(sessionToken, productID); err != nil {
		return nil, err
	}
	return s.GetCart(sessionToken)
}

// ClearCart empties the cart; clearing an empty cart is a no-op.
func (s *CartService) ClearCart(sessionToken string) (*CartView, error) {
	sessionToken = strings.TrimSpace(sessionToken)
	if sessionToken == "" {
		return emptyCartView(), nil
	}
	if err := s.cartRepo.ClearBySession(sessionToken); err != nil {
		return nil, err
	}
	return emptyCartView(), nil
}

func emptyCartView() *CartView {
	return &CartView{
		Items:     []CartLine{},
		ItemCount: 0,
		Total:     models.NewMoneyFromDecimal(decimal.Zero),
	}
}

func buildCartView(items []models.CartItem) *CartView {
	view := emptyCartView()
	total := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			continue
		}
		lineTotal := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, CartLine{
			ProductID: item.ProductID,
			Name:      product.Name,
			UnitPrice: product.PriceAmount,
			Quantity:  item.Quantity,
			LineTotal: models.NewMoneyFromDecimal(lineTotal),
			Product:   product,
		})
		view.ItemCount += item.Quantity
		total = total.Add(lineTotal)
	}
	view.Total = models.NewMoneyFromDecimal(total)
	return view
}
