package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lumina-next/internal/http/response"
	"github.com/lumina-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest sets an order's status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminListOrders lists orders newest first. The search query matches order
// numbers and customer names case-insensitively; search and status combine
// with AND.
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))

	orders, total, err := h.OrderService.ListOrders(service.ListOrdersInput{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
		Search:   search,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, pagination)
}

// AdminGetOrder returns one order with its lines.
func (h *Handler) AdminGetOrder(c *gin.Context) {
	order, err := h.OrderService.GetOrder(c.Param("order_no"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load order", err)
		return
	}

	response.Success(c, gin.H{"order": order})
}

// AdminUpdateOrderStatus sets an order's status and returns the refreshed
// order.
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.UpdateOrderStatus(c.Param("order_no"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondError(c, response.CodeBadRequest, "invalid order status", nil)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update order", err)
		}
		return
	}

	requestLog(c).Infow("order_status_updated",
		"order_no", order.OrderNo,
		"status", order.Status,
	)
	response.Success(c, gin.H{"order": order})
}
