package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codewithdark-git/khanana/pkg/auth"
	"github.com/codewithdark-git/khanana/pkg/config"
	"github.com/codewithdark-git/khanana/pkg/discovery"
	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/notify"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"github.com/codewithdark-git/khanana/server"
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

	logger.Info("Starting storefront service",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	// Connect to MySQL
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.Review{},
		&models.Media{},
		&models.SiteSettings{},
	); err != nil {
		logger.Fatal("Failed to migrate", zap.Error(err))
	}

	ctx := context.Background()
	if err := repository.Seed(ctx, db); err != nil {
		logger.Warn("Failed to seed catalog", zap.Error(err))
	}

	// Redis cache + session store
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	defer redisRepo.Close()
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	// MongoDB notification/audit log
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mongoRepo.Close(shutdownCtx)
	}()

	// Notification dispatcher
	sender := notify.NewResendSender(&cfg.Email)
	if sender == nil {
		logger.Info("Email provider not configured, notifications fall back to the durable log")
	}
	var emailSender notify.EmailSender
	if sender != nil {
		emailSender = sender
	}
	deliverer := notify.NewDeliverer(emailSender, mongoRepo, cfg.Email.Timeout, logger)
	dispatcher, err := notify.NewDispatcher(deliverer, logger)
	if err != nil {
		logger.Fatal("Failed to start notification dispatcher", zap.Error(err))
	}
	defer dispatcher.Stop()

	// Admin auth
	authenticator := auth.NewAuthenticator(&cfg.Admin, auth.NewRedisTokenStore(redisRepo.Client()))

	// HTTP server
	srv := server.NewServer(cfg, logger, server.Stores{
		Products: repository.NewGormProductStore(db),
		Orders:   repository.NewGormOrderStore(db),
		Reviews:  repository.NewGormReviewStore(db),
		Media:    repository.NewGormMediaStore(db),
		Settings: repository.NewGormSettingsStore(db),
	}, redisRepo, mongoRepo, authenticator, dispatcher)
	srv.SetupRoutes()

	// Optional etcd registration
	var sd *discovery.ServiceDiscovery
	instance := &discovery.ServiceInstance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	if discovery.Enabled(&cfg.Etcd) {
		sd, err = discovery.NewServiceDiscovery(&cfg.Etcd)
		if err != nil {
			logger.Fatal("Failed to connect to etcd", zap.Error(err))
		}
		defer sd.Close()

		if err := sd.Register(ctx, instance); err != nil {
			logger.Fatal("Failed to register service", zap.Error(err))
		}
		logger.Info("Service registered in etcd",
			zap.String("name", cfg.Server.Name),
			zap.String("address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)))
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	if sd != nil {
		if err := sd.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister service", zap.Error(err))
		}
	}

	logger.Info("Service stopped")
}
