package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopfront/internal/config"
	"shopfront/internal/handlers"
	"shopfront/internal/logger"
	"shopfront/internal/middleware"
	"shopfront/internal/models"
	"shopfront/internal/repositories"
	"shopfront/internal/services"
	"shopfront/internal/session"
	"shopfront/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg := logger.Init(cfg.LogMode, logger.Options{File: cfg.LogFile})
	defer lg.Sync()

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		lg.Fatal("failed to migrate database", zap.Error(err))
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	seedCatalog(productRepo, lg)

	// --- Session store ---
	var storage fiber.Storage
	if cfg.SessionStore == "redis" {
		redisStorage, err := session.NewRedisStorage(session.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			lg.Fatal("failed to connect to redis session store", zap.Error(err))
		}
		storage = redisStorage
	}
	store := session.NewStore(storage, cfg.SessionExpiration)

	// --- RabbitMQ (optional) ---
	var publisher services.OrderEventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, lg)
		if err != nil {
			lg.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient
	}

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo)
	cartService := services.NewCartService(catalogService, cfg.ShippingFee, lg)
	orderService := services.NewOrderService(orderRepo, catalogService, cartService, publisher, lg)
	authService := services.NewAuthService(userRepo)

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService, store, lg)
	cartHandler := handlers.NewCartHandler(cartService, store, lg)
	orderHandler := handlers.NewOrderHandler(orderService, store, lg)
	authHandler := handlers.NewAuthHandler(authService, store, lg)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	catalogHandler.RegisterRoutes(app)
	cartHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)

	// Checkout requires an authenticated session.
	protected := app.Group("", middleware.LoginRequired(store, userRepo))
	orderHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	if mqClient != nil {
		if err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			lg.Info("received order event", zap.Uint64("tag", msg.DeliveryTag), zap.ByteString("body", msg.Body))
			return nil
		}); err != nil {
			lg.Warn("failed to start order event consumer", zap.Error(err))
		}
	}

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		lg.Info("starting server", zap.String("addr", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			lg.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	lg.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		lg.Error("error during shutdown", zap.Error(err))
	}
	lg.Info("server stopped")
}

// openDatabase opens the configured database with GORM's error translation
// on, so unique-constraint violations surface as gorm.ErrDuplicatedKey.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.DatabaseDriver == "postgres" {
		return gorm.Open(postgres.Open(cfg.DatabaseDSN), gormCfg)
	}
	return gorm.Open(sqlite.Open(cfg.DatabaseDSN), gormCfg)
}

// seedCatalog inserts the fixed product set on first start. Products already
// present are left untouched.
func seedCatalog(repo repositories.ProductRepository, lg *zap.Logger) {
	for _, p := range models.SeedProducts() {
		if _, err := repo.GetByID(p.ID); err == nil {
			continue
		}
		product := p
		if err := repo.Create(&product); err != nil {
			lg.Warn("failed to seed product", zap.String("product_id", p.ID), zap.Error(err))
			continue
		}
		lg.Info("seeded product", zap.String("product_id", p.ID), zap.String("title", p.Title))
	}
}
