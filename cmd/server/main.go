package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/craftshop/pkg/admin"
	"github.com/example/craftshop/pkg/auth"
	"github.com/example/craftshop/pkg/cart"
	"github.com/example/craftshop/pkg/catalog"
	"github.com/example/craftshop/pkg/checkout"
	"github.com/example/craftshop/pkg/config"
	"github.com/example/craftshop/pkg/discovery"
	"github.com/example/craftshop/pkg/models"
	"github.com/example/craftshop/pkg/newsletter"
	"github.com/example/craftshop/pkg/repository"
	"github.com/example/craftshop/pkg/reviews"
	"github.com/example/craftshop/server"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront API",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	// Connect to MySQL
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.ProductMedia{},
		&models.Review{},
		&models.ProductQuestion{},
		&models.ProductAnswer{},
		&models.ContactMessage{},
		&models.UserRole{},
		&models.NewsletterSubscription{},
		&models.Address{},
		&models.RecentlyViewed{},
	); err != nil {
		logger.Fatal("Failed to migrate", zap.Error(err))
	}

	// Redis
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	defer redisRepo.Close()

	// MongoDB audit log
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ctx := context.Background()
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed, catalog overlays uncached", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	// Service discovery; the storefront keeps serving without it.
	reg, err := discovery.NewRegistry(&cfg.Etcd)
	if err != nil {
		logger.Warn("Failed to connect to etcd, continuing without service discovery", zap.Error(err))
		reg = nil
	}
	instance := &discovery.Instance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	if reg != nil {
		if err := reg.Register(ctx, instance); err != nil {
			logger.Warn("Failed to register service", zap.Error(err))
		} else {
			logger.Info("Service registered in etcd", zap.String("name", cfg.Server.Name))
		}
	}

	sessions := cart.NewManager(cfg.Session.TTL)
	defer sessions.Close()

	orderRepo := repository.NewOrderRepository(db)
	deps := server.Deps{
		Sessions:   sessions,
		Catalog:    catalog.NewService(db, redisRepo, logger),
		Checkout:   checkout.NewService(orderRepo, mongoRepo, cfg.Payment, logger),
		Reviews:    reviews.NewService(db, redisRepo, logger),
		Newsletter: newsletter.NewService(db),
		Admin:      admin.NewService(db, redisRepo, mongoRepo, logger),
		AuthClient: auth.NewClient(&cfg.Auth),
		Roles:      auth.NewRoleStore(db),
	}

	srv := server.NewServer(cfg, logger, deps)
	srv.SetupRoutes()

	// Start server in goroutine
	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			srvErr <- err
		}
	}()

	logger.Info("Storefront API started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-srvErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	if reg != nil {
		if err := reg.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister service", zap.Error(err))
		}
		reg.Close()
	}
	if err := mongoRepo.Close(ctx); err != nil {
		logger.Error("Failed to close MongoDB", zap.Error(err))
	}

	logger.Info("Storefront API stopped")
}
