package public

import (
	handlershared "github.com/lumina-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func respondErrorWithData(c *gin.Context, code int, msg string, data interface{}, err error) {
	handlershared.RespondErrorWithData(c, code, msg, data, err)
}

func cartSession(c *gin.Context) string {
	return handlershared.CartSession(c)
}

func ensureCartSession(c *gin.Context) string {
	return handlershared.EnsureCartSession(c)
}
