package provider

import (
	"github.com/lumina-next/internal/cache"
	"github.com/lumina-next/internal/config"
	"github.com/lumina-next/internal/logger"
	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/queue"
	"github.com/lumina-next/internal/repository"
	"github.com/lumina-next/internal/service"

	"github.com/shopspring/decimal"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	CartRepo      repository.CartRepository
	OrderRepo     repository.OrderRepository
	DashboardRepo repository.DashboardRepository

	// Services
	CatalogService   *service.CatalogService
	CartService      *service.CartService
	CheckoutService  *service.CheckoutService
	OrderService     *service.OrderService
	DashboardService *service.DashboardService
}

// NewContainer wires repositories and services.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo, c.Config.Catalog.CacheTTLSeconds)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(
		c.OrderRepo,
		c.CartRepo,
		c.QueueClient,
		decimal.NewFromFloat(c.Config.Shipping.FreeThreshold),
		decimal.NewFromFloat(c.Config.Shipping.FlatRate),
	)
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
