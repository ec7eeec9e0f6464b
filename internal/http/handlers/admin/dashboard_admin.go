package admin

import (
	"github.com/lumina-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the store overview: totals, orders by status, and
// the most recent orders.
func (h *Handler) GetDashboard(c *gin.Context) {
	summary, err := h.DashboardService.Summary()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load dashboard", err)
		return
	}

	response.Success(c, summary)
}
