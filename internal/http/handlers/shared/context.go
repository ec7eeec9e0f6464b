package shared

import (
	"strings"

	"github.com/lumina-next/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSession returns the cart session token carried by the request, or ""
// when the client has none yet.
func CartSession(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader(constants.CartSessionHeader))
	if token != "" {
		c.Writer.Header().Set(constants.CartSessionHeader, token)
	}
	return token
}

// EnsureCartSession returns the request's cart session token, minting a
// fresh one when the client has none. The token is echoed on the response
// header either way so the client can persist it.
func EnsureCartSession(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader(constants.CartSessionHeader))
	if token == "" {
		token = uuid.NewString()
	}
	c.Writer.Header().Set(constants.CartSessionHeader, token)
	return token
}
