package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	emailadapter "github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/adapter/email"
	mongoadapter "github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/adapter/mongo"
	natsadapter "github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/adapter/nats"
	redisadapter "github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/adapter/redis"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/app/config"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/metrics"
	httpserver "github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/port/http"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/service"
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	server      *httpserver.Server
	metricsMgr  *metrics.MetricsManager
	mongoClient *mongo.Client
	redisClient *redis.Client
	natsConn    *nats.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Info("Logger initialized")
	appLogger.Infof("Configuration loaded: Env=%s, HTTP Port: %s", cfg.Env, cfg.HTTPServer.Port)

	appLogger.Info("Initializing MongoDB client...")
	mongoClient, err := mongoadapter.NewClient(ctx, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}
	appLogger.Info("MongoDB client initialized successfully")

	appLogger.Info("Initializing Redis client...")
	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	appLogger.Info("Redis client initialized successfully")

	appLogger.Info("Initializing NATS connection...")
	natsConn, err := natsadapter.NewConnection(cfg.NATS, "OldPhoneDeals Marketplace")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize NATS connection: %w", err)
	}
	msgPublisher, err := natsadapter.NewNATSPublisher(natsConn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize NATS publisher: %w", err)
	}
	appLogger.Info("NATS publisher initialized successfully")

	listingRepo := mongoadapter.NewListingRepository(mongoClient, cfg.MongoDB)
	orderRepo := mongoadapter.NewOrderRepository(mongoClient, cfg.MongoDB)
	userRepo := mongoadapter.NewUserRepository(mongoClient, cfg.MongoDB)
	cartRepo := redisadapter.NewCartRepository(redisClient)
	wishlistRepo := redisadapter.NewWishlistRepository(redisClient)
	appLogger.Info("Repositories initialized")

	var emailSender emailadapter.EmailSender
	if cfg.SMTP.Enabled() {
		emailSender, err = emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
		}
		appLogger.Info("SMTP sender initialized")
	} else {
		appLogger.Info("SMTP not configured, order confirmation emails disabled")
	}

	metricsMgr := metrics.NewMetricsManager("marketplace")

	cartService := service.NewCartService(cartRepo, listingRepo, appLogger, cfg.Cart.TTL)
	checkoutService := service.NewCheckoutService(
		cartRepo, listingRepo, orderRepo, userRepo,
		msgPublisher, emailSender, metricsMgr, appLogger,
	)
	orderService := service.NewOrderService(orderRepo, appLogger)
	receiptService := service.NewReceiptService(orderService, appLogger)
	reviewService := service.NewReviewService(listingRepo, msgPublisher, appLogger)
	wishlistService := service.NewWishlistService(wishlistRepo, listingRepo, appLogger)
	appLogger.Info("Services initialized")

	orderHandler := httpserver.NewOrderHandler(checkoutService, orderService, receiptService, appLogger)
	cartHandler := httpserver.NewCartHandler(cartService, appLogger)
	listingHandler := httpserver.NewListingHandler(listingRepo, reviewService, appLogger)
	wishlistHandler := httpserver.NewWishlistHandler(wishlistService, appLogger)

	router := httpserver.NewRouter(
		orderHandler, cartHandler, listingHandler, wishlistHandler,
		cfg.Auth.JWTSecret, appLogger,
	)
	server := httpserver.NewServer(
		appLogger,
		cfg.HTTPServer.Port,
		cfg.HTTPServer.ReadTimeout,
		cfg.HTTPServer.WriteTimeout,
		router,
	)
	appLogger.Info("HTTP server instance created")

	return &App{
		cfg:         cfg,
		log:         appLogger,
		server:      server,
		metricsMgr:  metricsMgr,
		mongoClient: mongoClient,
		redisClient: redisClient,
		natsConn:    natsConn,
	}, nil
}

func (a *App) Run() {
	a.log.Info("Starting application components...")

	go func() {
		if err := a.server.Start(); err != nil {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()
	a.log.Info("HTTP server started in a goroutine")

	go func() {
		if err := metrics.StartMetricsServer(a.cfg.Metrics.Port, a.log, a.metricsMgr.Registry); err != nil {
			a.log.Errorf("Metrics server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down application...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server graceful shutdown: %v", err)
	}

	a.log.Info("Closing external connections...")

	if a.natsConn != nil {
		a.natsConn.Close()
		a.log.Info("NATS connection closed")
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		} else {
			a.log.Info("MongoDB connection closed successfully")
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed successfully")
		}
	}

	a.log.Info("Application shut down successfully")
}
