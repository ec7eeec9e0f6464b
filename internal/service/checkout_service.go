package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/lumina-next/internal/constants"
	"github.com/lumina-next/internal/logger"
	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/queue"
	"github.com/lumina-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderNoMaxAttempts = 5

// ShippingQuote is the shipping portion of a checkout total.
type ShippingQuote struct {
	ShippingCost models.Money `json:"shipping_cost"`
	GrandTotal   models.Money `json:"grand_total"`
}

// CheckoutInput is the checkout submission.
type CheckoutInput struct {
	SessionToken string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	City         string
	PostalCode   string
	ClientIP     string
}

// CheckoutService turns a cart into an order. Order creation and cart
// clearing happen in one transaction.
type CheckoutService struct {
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	queueClient   *queue.Client
	freeThreshold decimal.Decimal
	flatRate      decimal.Decimal
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, queueClient *queue.Client, freeThreshold, flatRate decimal.Decimal) *CheckoutService {
	return &CheckoutService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		queueClient:   queueClient,
		freeThreshold: freeThreshold,
		flatRate:      flatRate,
	}
}

// Quote computes shipping for a cart subtotal: free at or above the
// threshold, flat rate below it.
func (s *CheckoutService) Quote(subtotal decimal.Decimal) ShippingQuote {
	shipping := s.flatRate
	if subtotal.GreaterThanOrEqual(s.freeThreshold) {
		shipping = decimal.Zero
	}
	return ShippingQuote{
		ShippingCost: models.NewMoneyFromDecimal(shipping),
		GrandTotal:   models.NewMoneyFromDecimal(subtotal.Add(shipping)),
	}
}

// requiredFields maps field names to their accessors, in display order.
var requiredCheckoutFields = []struct {
	name  string
	value func(CheckoutInput) string
}{
	{"first_name", func(in CheckoutInput) string { return in.FirstName }},
	{"last_name", func(in CheckoutInput) string { return in.LastName }},
	{"phone", func(in CheckoutInput) string { return in.Phone }},
	{"address", func(in CheckoutInput) string { return in.Address }},
	{"city", func(in CheckoutInput) string { return in.City }},
}

func validateCheckoutInput(input CheckoutInput) *ValidationError {
	var missing []string
	for _, field := range requiredCheckoutFields {
		if strings.TrimSpace(field.value(input)) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

// Submit validates the customer details, snapshots the cart into an order,
// and clears the cart. On validation failure no order is created and the
// cart is untouched.
func (s *CheckoutService) Submit(input CheckoutInput) (*models.Order, error) {
	sessionToken := strings.TrimSpace(input.SessionToken)
	if sessionToken == "" {
		return nil, ErrCartEmpty
	}
	if verr := validateCheckoutInput(input); verr != nil {
		return nil, verr
	}

	cartItems, err := s.cartRepo.ListBySession(sessionToken)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(cartItems))
	now := time.Now()
	for _, cartItem := range cartItems {
		product := cartItem.Product
		if product == nil || product.ID == 0 {
			continue
		}
		lineTotal := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
		items = append(items, models.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			UnitPrice:  product.PriceAmount,
			Quantity:   cartItem.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	quote := s.Quote(subtotal)

	orderNo, err := s.generateOrderNo()
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:       orderNo,
		Status:        constants.OrderStatusPending,
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		Address:       strings.TrimSpace(input.Address),
		City:          strings.TrimSpace(input.City),
		PostalCode:    strings.TrimSpace(input.PostalCode),
		PaymentMethod: constants.PaymentMethodCOD,
		ItemsSubtotal: models.NewMoneyFromDecimal(subtotal),
		ShippingCost:  quote.ShippingCost,
		GrandTotal:    quote.GrandTotal,
		ClientIP:      strings.TrimSpace(input.ClientIP),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		return cartRepo.ClearBySession(sessionToken)
	})
	if err != nil {
		logger.Errorw("checkout_submit_failed", "order_no", orderNo, "error", err)
		return nil, ErrOrderCreateFailed
	}
	order.Items = items

	s.notifyOrderPlaced(order)

	return order, nil
}

func (s *CheckoutService) notifyOrderPlaced(order *models.Order) {
	if s.queueClient != nil && s.queueClient.Enabled() {
		err := s.queueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{
			OrderID: order.ID,
			OrderNo: order.OrderNo,
		})
		if err == nil {
			return
		}
		logger.Warnw("checkout_enqueue_confirmation_failed", "order_no", order.OrderNo, "error", err)
	}
	logger.Infow("order_placed",
		"order_no", order.OrderNo,
		"customer", order.CustomerName(),
		"grand_total", order.GrandTotal.String(),
	)
}

// generateOrderNo derives the order number from the current millisecond
// timestamp in base 36. The unique index on order_no backstops the rare
// same-millisecond collision; generation retries with a fresh timestamp.
func (s *CheckoutService) generateOrderNo() (string, error) {
	for attempt := 0; attempt < orderNoMaxAttempts; attempt++ {
		orderNo := "ORD-" + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
		taken, err := s.orderRepo.ExistsByOrderNo(orderNo)
		if err != nil {
			return "", err
		}
		if !taken {
			return orderNo, nil
		}
		time.Sleep(time.Millisecond)
	}
	return "", ErrOrderCreateFailed
}
