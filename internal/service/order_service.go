package service

import (
	"strings"
	"time"

	"github.com/lumina-next/internal/constants"
	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/repository"
)

// ListOrdersInput narrows the admin order list.
type ListOrdersInput struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

// OrderService serves the order registry: the admin list/detail views, the
// customer's post-purchase lookup, and status management.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListOrders returns the admin order list. Search and status combine with
// AND; an empty or "all" status matches everything.
func (s *OrderService) ListOrders(input ListOrdersInput) ([]models.Order, int64, error) {
	orders, total, err := s.orderRepo.ListAdmin(repository.OrderListFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
		Status:   input.Status,
		Search:   input.Search,
	})
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

// GetOrder returns one order with its lines.
func (s *OrderService) GetOrder(orderNo string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus sets the order status. Any valid status may follow any
// other, Delivered back to Pending included; there is no transition table.
func (s *OrderService) UpdateOrderStatus(orderNo, status string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	canonical, ok := normalizeOrderStatus(status)
	if !ok {
		return nil, ErrInvalidOrderStatus
	}

	affected, err := s.orderRepo.UpdateStatus(orderNo, canonical, map[string]interface{}{
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, ErrOrderUpdateFailed
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}
	return s.GetOrder(orderNo)
}

// normalizeOrderStatus matches a status case-insensitively and returns its
// canonical spelling.
func normalizeOrderStatus(status string) (string, bool) {
	trimmed := strings.TrimSpace(status)
	for _, candidate := range constants.OrderStatuses {
		if strings.EqualFold(trimmed, candidate) {
			return candidate, true
		}
	}
	return "", false
}
