package public

import (
	"github.com/lumina-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetOrderByOrderNo is the post-purchase lookup: one order with its lines.
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	order, err := h.OrderService.GetOrder(c.Param("order_no"))
	if err != nil {
		respondWithMappedError(c, err, orderLookupErrorRules, response.CodeInternal, "failed to load order")
		return
	}

	response.Success(c, gin.H{"order": order})
}
