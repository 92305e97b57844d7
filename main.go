package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/internal/storage"
	"storefront/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "storefront.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables catalog events
	viper.SetDefault("ADMIN_API_KEY", "") // empty leaves the admin surface open
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	app, mqClient, err := newApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	if mqClient != nil {
		defer mqClient.Close()

		// Consume our own catalog events as an audit trail. Downstream
		// systems would attach their own consumers to the same queue.
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Catalog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newApp wires the store, repositories, services, and handlers into a Fiber
// app using the current Viper configuration. The returned RabbitMQ client is
// nil when eventing is disabled; the caller owns closing it.
func newApp() (*fiber.App, *rabbitmq.Client, error) {
	db, err := storage.Connect(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		return nil, nil, err
	}

	// --- Optional RabbitMQ Client ---
	var mqClient *rabbitmq.Client
	var publisher services.CatalogPublisher
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			return nil, nil, err
		}
		publisher = mqClient
	}

	// --- Initialize Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)

	if viper.GetBool("SEED_DEMO_DATA") {
		seedProducts(productRepo)
	}

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, publisher)
	settingsService := services.NewSettingsService(settingsRepo)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(middleware.RequestID())
	adminOnly := middleware.AdminGuard(viper.GetString("ADMIN_API_KEY"))

	// --- API Routes ---
	productHandler.RegisterRoutes(app, adminOnly)
	settingsHandler.RegisterRoutes(app, adminOnly)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, mqClient, nil
}

// seedProducts populates an empty catalog with demo data for local runs.
func seedProducts(repo repositories.ProductRepository) {
	existing, err := repo.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	products := []models.Product{
		{Title: "Instagram Followers", Category: "Social Media", Quantity: 1000, PricePerQuantity: 5000, Description: "Real and active followers delivered within 24 hours", Verified: true},
		{Title: "VPN Access", Category: "Privacy", Quantity: 1, PricePerQuantity: 2500, Description: "One month of premium VPN access", Verified: true},
		{Title: "YouTube Views", Category: "Social Media", Quantity: 5000, PricePerQuantity: 8000, Description: "High retention views from real accounts", Verified: false},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Title, err)
		} else {
			log.Printf("Seeded product: %s (ID: %d)", products[i].Title, products[i].ID)
		}
	}
}
