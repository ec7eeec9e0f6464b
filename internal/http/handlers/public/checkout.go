package public

import (
	"errors"

	"github.com/lumina-next/internal/http/response"
	"github.com/lumina-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest is the checkout submission body. Field presence is
// validated by the service so that every missing field is reported at once.
type CheckoutRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// Checkout turns the session's cart into an order.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	sessionToken := cartSession(c)

	order, err := h.CheckoutService.Submit(service.CheckoutInput{
		SessionToken: sessionToken,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		PostalCode:   req.PostalCode,
		ClientIP:     c.ClientIP(),
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			respondErrorWithData(c, response.CodeBadRequest, verr.Error(), gin.H{
				"missing_fields": verr.MissingFields,
			}, nil)
			return
		}
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "failed to place order")
		return
	}

	requestLog(c).Infow("checkout_completed",
		"order_no", order.OrderNo,
		"grand_total", order.GrandTotal.String(),
	)
	response.Success(c, gin.H{"order": order})
}
