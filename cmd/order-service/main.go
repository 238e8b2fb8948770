package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fueldash/fuel-order-service/internal/config"
	httpdelivery "github.com/fueldash/fuel-order-service/internal/delivery/http"
	"github.com/fueldash/fuel-order-service/internal/delivery/http/handlers"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/gateway"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/kafka"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/metrics"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/migrate"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/postgres/repository"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/redislock"
	"github.com/fueldash/fuel-order-service/internal/infrastructure/webhook"
	"github.com/fueldash/fuel-order-service/internal/scheduler"
	notificationuc "github.com/fueldash/fuel-order-service/internal/usecase/notification"
	orderuc "github.com/fueldash/fuel-order-service/internal/usecase/order"
	otpuc "github.com/fueldash/fuel-order-service/internal/usecase/otp"
	paymentuc "github.com/fueldash/fuel-order-service/internal/usecase/payment"
	pricinguc "github.com/fueldash/fuel-order-service/internal/usecase/pricing"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	rd "github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Redis backs the per-order OTP lock
	rdb := rd.NewClient(&rd.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	otpLock := redislock.NewKeyedLock(rdb, 10*time.Second)

	// Kafka lifecycle event stream
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
	defer publisher.Close()

	// External collaborators
	adminNotifier := webhook.NewHTTPAdminNotifier(cfg.AdminWebhook.BaseURL, cfg.AdminWebhook.Secret, cfg.AdminWebhook.Timeout)
	driverNotifier := webhook.NewHTTPDriverNotifier(cfg.DriverWebhook.BaseURL, cfg.DriverWebhook.Secret, cfg.DriverWebhook.Timeout)
	paymentGateway := gateway.NewHTTPPaymentGateway(cfg.PaymentGateway.BaseURL, cfg.PaymentGateway.KeyID, cfg.PaymentGateway.KeySecret, cfg.PaymentGateway.Timeout)

	orderMetrics := metrics.NewOrderMetrics()
	sched := scheduler.New()
	defer sched.Stop()

	// Init repos
	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	addressRepo := repository.NewDefaultAddressRepository(db)
	settingRepo := repository.NewDefaultSettingRepository(db)

	// Init usecases
	pricingUsecase := pricinguc.NewDefaultPricingUsecase(settingRepo)
	notificationUsecase := notificationuc.NewDefaultNotificationUsecase(notificationRepo, userRepo)
	orderUsecase := orderuc.NewDefaultOrderUsecase(
		orderRepo,
		userRepo,
		addressRepo,
		pricingUsecase,
		notificationUsecase,
		adminNotifier,
		driverNotifier,
		publisher,
		sched,
		orderMetrics,
	)
	otpUsecase := otpuc.NewDefaultOtpUsecase(orderRepo, driverNotifier, notificationUsecase, otpLock, orderMetrics)
	paymentUsecase := paymentuc.NewDefaultPaymentUsecase(
		paymentRepo,
		orderRepo,
		paymentGateway,
		notificationUsecase,
		adminNotifier,
		publisher,
		sched,
		orderMetrics,
		cfg.PaymentGateway.Currency,
		cfg.Workers.DemoPaymentDelay,
	)

	// Init handlers
	orderHandler := handlers.NewOrderHandler(orderUsecase, otpUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	webhookHandler := handlers.NewWebhookHandler(orderUsecase, otpUsecase, userRepo, orderMetrics)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	settingsHandler := handlers.NewSettingsHandler(pricingUsecase)

	// Stale-pending sweep
	go func() {
		ticker := time.NewTicker(cfg.Workers.StaleSweepEvery)
		defer ticker.Stop()

		for range ticker.C {
			olderThan := time.Now().Add(-cfg.Workers.StalePendingAge)
			if err := orderUsecase.CancelStalePending(context.Background(), olderThan); err != nil {
				log.Printf("stale order sweep error: %v", err)
			}
		}
	}()

	r := gin.Default()
	httpdelivery.Setup(r, cfg, orderHandler, paymentHandler, webhookHandler, notificationHandler, settingsHandler, orderMetrics)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
