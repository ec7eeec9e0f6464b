package router

import (
	"fmt"
	"strings"

	"github.com/lumina-next/internal/cache"
	"github.com/lumina-next/internal/config"
	"github.com/lumina-next/internal/constants"
	adminhandlers "github.com/lumina-next/internal/http/handlers/admin"
	publichandlers "github.com/lumina-next/internal/http/handlers/public"
	"github.com/lumina-next/internal/http/response"
	"github.com/lumina-next/internal/logger"
	"github.com/lumina-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP engine.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
		Message:       "too many checkout attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		// Catalog
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.GET("/categories", publicHandler.GetCategories)

		// Cart, keyed by the X-Cart-Session header
		apiV1.GET("/cart", publicHandler.GetCart)
		apiV1.POST("/cart/items", publicHandler.AddCartItem)
		apiV1.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
		apiV1.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
		apiV1.DELETE("/cart", publicHandler.ClearCart)

		// Checkout and post-purchase lookup
		apiV1.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("email")), publicHandler.Checkout)
		apiV1.GET("/orders/:order_no", publicHandler.GetOrderByOrderNo)

		// Admin surface
		if cfg.Admin.Enabled {
			admin := apiV1.Group("/admin")
			{
				admin.GET("/orders", adminHandler.AdminListOrders)
				admin.GET("/orders/:order_no", adminHandler.AdminGetOrder)
				admin.PUT("/orders/:order_no/status", adminHandler.AdminUpdateOrderStatus)
				admin.GET("/dashboard", adminHandler.GetDashboard)
			}
		}
	}

	return r
}
