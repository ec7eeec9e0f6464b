package public

import (
	"strconv"

	"github.com/lumina-next/internal/http/response"
	"github.com/lumina-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest adds one unit of a product to the cart.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest sets a cart line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) cartPayload(view *service.CartView, sessionToken string) gin.H {
	quote := h.CheckoutService.Quote(view.Total.Decimal)
	return gin.H{
		"cart":          view,
		"session_token": sessionToken,
		"shipping_cost": quote.ShippingCost,
		"grand_total":   quote.GrandTotal,
	}
}

// GetCart returns the cart for the request's session. A request without a
// session gets an empty cart and no token is minted.
func (h *Handler) GetCart(c *gin.Context) {
	sessionToken := cartSession(c)

	view, err := h.CartService.GetCart(sessionToken)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load cart", err)
		return
	}

	response.Success(c, h.cartPayload(view, sessionToken))
}

// AddCartItem puts one unit of a product into the cart, minting a session
// token when the request carries none.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	sessionToken := ensureCartSession(c)

	view, err := h.CartService.AddItem(sessionToken, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "failed to add to cart")
		return
	}

	response.Success(c, h.cartPayload(view, sessionToken))
}

// UpdateCartItem sets a cart line's quantity. A quantity below 1 removes
// the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	sessionToken := ensureCartSession(c)

	view, err := h.CartService.UpdateQuantity(sessionToken, uint(productID), req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "failed to update cart")
		return
	}

	response.Success(c, h.cartPayload(view, sessionToken))
}

// DeleteCartItem removes a line from the cart. Removing an absent product
// is a no-op.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	sessionToken := ensureCartSession(c)

	view, err := h.CartService.RemoveItem(sessionToken, uint(productID))
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "failed to update cart")
		return
	}

	response.Success(c, h.cartPayload(view, sessionToken))
}

// ClearCart empties the cart. Clearing an empty cart is a no-op.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionToken := ensureCartSession(c)

	view, err := h.CartService.ClearCart(sessionToken)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to clear cart", err)
		return
	}

	response.Success(c, h.cartPayload(view, sessionToken))
}
