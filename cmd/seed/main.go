package main

import (
	"log"
	"time"

	"github.com/lumina-next/internal/config"
	"github.com/lumina-next/internal/constants"
	"github.com/lumina-next/internal/logger"
	"github.com/lumina-next/internal/models"
	"github.com/lumina-next/internal/repository"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Name: "Classic", Slug: "classic", SortOrder: 70},
		{Name: "Vintage", Slug: "vintage", SortOrder: 60},
		{Name: "Luxury", Slug: "luxury", SortOrder: 50},
		{Name: "Natural", Slug: "natural", SortOrder: 40},
		{Name: "Modern", Slug: "modern", SortOrder: 30},
		{Name: "Artisan", Slug: "artisan", SortOrder: 20},
		{Name: "Industrial", Slug: "industrial", SortOrder: 10},
	}

	categoryRepo := repository.NewCategoryRepository(models.DB)
	productRepo := repository.NewProductRepository(models.DB)
	orderRepo := repository.NewOrderRepository(models.DB)

	for _, cat := range categories {
		existing, err := categoryRepo.GetBySlug(cat.Slug)
		if err != nil {
			stdLog.Printf("Failed to look up category %s: %v", cat.Slug, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("Category already exists: %s", cat.Slug)
			continue
		}
		if err := categoryRepo.Create(&cat); err != nil {
			stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
		} else {
			stdLog.Printf("Created category: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	categoryList, err := categoryRepo.List()
	if err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	products := []models.Product{
		{
			Name:        "Amber Glow Table Lamp",
			Slug:        "amber-glow-table-lamp",
			Description: "Warm pleated shade lamp with rich wooden base. Creates a cozy ambiance perfect for intimate settings.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(159.99)),
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Pleated fabric shade", "Solid wood base", "Warm LED bulb", "Touch dimmer"},
			CategoryID:  categoryIDs["classic"],
			InStock:     true,
			IsActive:    true,
			SortOrder:   80,
		},
		{
			Name:        "Edison Vintage Desk Light",
			Slug:        "edison-vintage-desk-light",
			Description: "Industrial-inspired desk lamp with exposed Edison bulb. Adds character to any workspace.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(129.99)),
			Image:       "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Edison bulb included", "Adjustable arm", "Brass finish", "Wooden base"},
			CategoryID:  categoryIDs["vintage"],
			InStock:     true,
			IsActive:    true,
			SortOrder:   70,
		},
		{
			Name:        "Crystal Elegance Lamp",
			Slug:        "crystal-elegance-lamp",
			Description: "Luxurious crystal table lamp that adds sophistication to bedrooms and living rooms.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(249.99)),
			Image:       "https://images.unsplash.com/photo-1540932239986-30128078f3c5?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Crystal body", "Silk shade", "Chrome accents", "3-way switch"},
			CategoryID:  categoryIDs["luxury"],
			InStock:     true,
			IsActive:    true,
			SortOrder:   60,
		},
		{
			Name:        "Bamboo Natural Light",
			Slug:        "bamboo-natural-light",
			Description: "Eco-friendly bamboo lamp bringing natural warmth to your space. Sustainable and stylish.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(89.99)),
			Image:       "https://images.unsplash.com/photo-1494438639946-1ebd1d20bf85?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Sustainable bamboo", "Linen shade", "Warm glow", "Eco-friendly"},
			CategoryID:  categoryIDs["natural"],
			InStock:     true,
			IsActive:    true,
			SortOrder:   50,
		},
		{
			Name:        "Smart Touch Lamp",
			Slug:        "smart-touch-lamp",
			Description: "Modern smart lamp with touch controls and adjustable color temperature.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(189.99)),
			Image:       "https://images.unsplash.com/photo-1543198126-a8ad8e47fb22?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Touch control", "Color temperature adjustment", "USB charging port", "Memory function"},
			CategoryID:  categoryIDs["modern"],
			InStock:     true,
			IsActive:    true,
			SortOrder:   40,
		},
		{
			Name:        "Art Deco Golden Lamp",
			Slug:        "art-deco-golden-lamp",
			Description: "Stunning Art Deco inspired lamp with geometric patterns and golden finish.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(219.99)),
			Image:       "https://images.unsplash.com/photo-1524484485831-a92ffc0de03f?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Gold finish", "Geometric design", "Glass shade", "Premium quality"},
			CategoryID:  categoryIDs["luxury"],
			InStock:     false,
			IsActive:    true,
			SortOrder:   30,
		},
		{
			Name:        "Ceramic Artisan Lamp",
			Slug:        "ceramic-artisan-lamp",
			Description: "Handcrafted ceramic table lamp with unique glaze patterns. Each piece is one-of-a-kind.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(179.99)),
			Image:       "https://images.unsplash.com/photo-1581783898377-1c85bf937427?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Handcrafted", "Unique glaze", "Cotton shade", "Artisan quality"},
			CategoryID:  categoryIDs["artisan"],
			InStock:     true,
			IsActive:    true,
			SortOrder:   20,
		},
		{
			Name:        "Industrial Pipe Lamp",
			Slug:        "industrial-pipe-lamp",
			Description: "Rugged industrial design using authentic iron pipes. Perfect for loft-style interiors.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(139.99)),
			Image:       "https://images.unsplash.com/photo-1505051508008-923feaf90180?w=600&h=600&fit=crop",
			Features:    models.StringArray{"Iron pipes", "Vintage bulb", "Dimmer included", "Heavy duty base"},
			CategoryID:  categoryIDs["industrial"],
			InStock:     true,
			IsActive:    true,
			SortOrder:   10,
		},
	}

	for _, product := range products {
		existing, err := productRepo.GetBySlug(product.Slug)
		if err != nil {
			stdLog.Printf("Failed to look up product %s: %v", product.Slug, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("Product already exists: %s", product.Slug)
			continue
		}
		if err := productRepo.Create(&product); err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
		} else {
			stdLog.Printf("Created product: %s", product.Slug)
		}
	}

	seedDemoOrders(orderRepo, stdLog)

	stdLog.Printf("Seed finished")
}

type demoOrderLine struct {
	productID uint
	name      string
	unitPrice float64
	quantity  int
}

// seedDemoOrders loads the demo orders shown on a fresh admin dashboard.
// Line names and prices are snapshots from an earlier catalog, so some of
// them differ from the products seeded above.
func seedDemoOrders(orderRepo repository.OrderRepository, stdLog *log.Logger) {
	demoOrders := []struct {
		orderNo    string
		status     string
		firstName  string
		lastName   string
		email      string
		phone      string
		address    string
		city       string
		postalCode string
		date       string
		lines      []demoOrderLine
	}{
		{
			orderNo:    "ORD-001",
			status:     constants.OrderStatusDelivered,
			firstName:  "John",
			lastName:   "Doe",
			email:      "john@example.com",
			phone:      "+1 555-0101",
			address:    "123 Main St",
			city:       "New York",
			postalCode: "10001",
			date:       "2024-01-05",
			lines: []demoOrderLine{
				{productID: 9, name: "Nordic Minimalist Lamp", unitPrice: 89.99, quantity: 1},
				{productID: 5, name: "Smart Touch Lamp", unitPrice: 149.99, quantity: 1},
			},
		},
		{
			orderNo:    "ORD-002",
			status:     constants.OrderStatusProcessing,
			firstName:  "Jane",
			lastName:   "Smith",
			email:      "jane@example.com",
			phone:      "+1 555-0102",
			address:    "456 Oak Ave",
			city:       "Los Angeles",
			postalCode: "90001",
			date:       "2024-01-06",
			lines: []demoOrderLine{
				{productID: 2, name: "Vintage Edison Desk Light", unitPrice: 129.99, quantity: 1},
			},
		},
		{
			orderNo:    "ORD-003",
			status:     constants.OrderStatusPending,
			firstName:  "Bob",
			lastName:   "Wilson",
			email:      "bob@example.com",
			phone:      "+1 555-0103",
			address:    "789 Pine Rd",
			city:       "Chicago",
			postalCode: "60601",
			date:       "2024-01-07",
			lines: []demoOrderLine{
				{productID: 3, name: "Crystal Elegance Lamp", unitPrice: 199.99, quantity: 1},
				{productID: 4, name: "Bamboo Natural Light", unitPrice: 69.99, quantity: 1},
			},
		},
	}

	for _, demo := range demoOrders {
		existing, err := orderRepo.GetByOrderNo(demo.orderNo)
		if err != nil {
			stdLog.Printf("Failed to look up order %s: %v", demo.orderNo, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("Order already exists: %s", demo.orderNo)
			continue
		}

		createdAt, err := time.Parse("2006-01-02", demo.date)
		if err != nil {
			createdAt = time.Now()
		}

		subtotal := decimal.Zero
		items := make([]models.OrderItem, 0, len(demo.lines))
		for _, line := range demo.lines {
			unitPrice := decimal.NewFromFloat(line.unitPrice)
			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.quantity)))
			items = append(items, models.OrderItem{
				ProductID:  line.productID,
				Name:       line.name,
				UnitPrice:  models.NewMoneyFromDecimal(unitPrice),
				Quantity:   line.quantity,
				TotalPrice: models.NewMoneyFromDecimal(lineTotal),
				CreatedAt:  createdAt,
				UpdatedAt:  createdAt,
			})
			subtotal = subtotal.Add(lineTotal)
		}

		order := models.Order{
			OrderNo:       demo.orderNo,
			Status:        demo.status,
			FirstName:     demo.firstName,
			LastName:      demo.lastName,
			Email:         demo.email,
			Phone:         demo.phone,
			Address:       demo.address,
			City:          demo.city,
			PostalCode:    demo.postalCode,
			PaymentMethod: constants.PaymentMethodCOD,
			ItemsSubtotal: models.NewMoneyFromDecimal(subtotal),
			ShippingCost:  models.NewMoneyFromDecimal(decimal.Zero),
			GrandTotal:    models.NewMoneyFromDecimal(subtotal),
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		}
		if err := orderRepo.Create(&order, items); err != nil {
			stdLog.Printf("Failed to create order %s: %v", demo.orderNo, err)
		} else {
			stdLog.Printf("Created order: %s", demo.orderNo)
		}
	}
}
