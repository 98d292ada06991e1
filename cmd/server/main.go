package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/config"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/database/postgres"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/discovery"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/response"
	"github.com/fekuna/omnipos-warehouse-service/internal/rpc"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"

	alertH "github.com/fekuna/omnipos-warehouse-service/internal/alert/handler"
	alertRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/alert/repository"
	alertUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/alert/usecase"

	dashH "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/handler"
	dashRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/repository"
	dashUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/dashboard/usecase"

	prodH "github.com/fekuna/omnipos-warehouse-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/product/usecase"

	stockH "github.com/fekuna/omnipos-warehouse-service/internal/stock/handler"
	stockListenerPkg "github.com/fekuna/omnipos-warehouse-service/internal/stock/listener"
	stockRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/stock/repository"
	stockUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/stock/usecase"

	transferH "github.com/fekuna/omnipos-warehouse-service/internal/transfer/handler"
	transferRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/transfer/repository"
	transferUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/transfer/usecase"

	whH "github.com/fekuna/omnipos-warehouse-service/internal/warehouse/handler"
	whRepoPkg "github.com/fekuna/omnipos-warehouse-service/internal/warehouse/repository"
	whUCPkg "github.com/fekuna/omnipos-warehouse-service/internal/warehouse/usecase"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Open the collection store
	backend := newBackend(ctx, cfg, appLogger)
	collections := store.New(backend, cache.NewTTL[store.Collection, []byte](cfg.Store.CacheTTL, nil), appLogger)
	defer collections.Close()

	// 4. Initialize the lock
	locker := lock.NewLocalLocker()
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, cfg.Redis.LockTTL, appLogger)
		appLogger.Info("Using Redis lock", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Kafka
	var producer broker.Producer = broker.NopProducer{}
	var consumer *broker.KafkaConsumer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		})
		consumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.AdjustmentsTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer consumer.Close()
		appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("events_topic", cfg.Kafka.EventsTopic))
	}
	defer producer.Close()

	// 6. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepoPkg.NewStoreRepository(collections), locker, appLogger)
	whUC := whUCPkg.NewWarehouseUseCase(whRepoPkg.NewStoreRepository(collections), locker, appLogger)
	stockUC := stockUCPkg.NewStockUseCase(stockRepoPkg.NewStoreRepository(collections), locker, producer, appLogger)
	transferUC := transferUCPkg.NewTransferUseCase(transferRepoPkg.NewStoreRepository(collections), locker, producer, appLogger)
	alertUC := alertUCPkg.NewAlertUseCase(alertRepoPkg.NewStoreRepository(collections), locker, producer, appLogger)
	dashUC := dashUCPkg.NewDashboardUseCase(dashRepoPkg.NewStoreRepository(collections), appLogger)

	// 7. Start Listener
	if consumer != nil {
		stockListener := stockListenerPkg.NewStockListener(consumer, stockUC, appLogger)
		go stockListener.Start(ctx)
	}

	// 8. HTTP Router
	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	prodH.NewProductHandler(prodUC, appLogger).RegisterRoutes(router)
	whH.NewWarehouseHandler(whUC, appLogger).RegisterRoutes(router)
	stockH.NewStockHandler(stockUC, appLogger).RegisterRoutes(router)
	transferH.NewTransferHandler(transferUC, appLogger).RegisterRoutes(router)
	alertH.NewAlertHandler(alertUC, appLogger).RegisterRoutes(router)
	dashH.NewDashboardHandler(dashUC, appLogger).RegisterRoutes(router)

	router.Use(middleware.RequestLogger(appLogger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
	})

	httpServer := &http.Server{
		Addr:              listenAddr(cfg.Server.HTTPPort),
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 9. Start gRPC Server
	grpcAddr := listenAddr(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("addr", grpcAddr), zap.Error(err))
	}

	grpcServer := rpc.NewServer(rpc.NewInventoryHandler(transferUC, alertUC, appLogger), appLogger)

	go func() {
		appLogger.Info("Starting gRPC server", zap.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 10. Register with Consul
	serviceID := cfg.Consul.ServiceID
	if serviceID == "" {
		serviceID = cfg.Server.ServiceName
	}
	var consulClient *discovery.ConsulClient
	if cfg.Consul.Addr != "" {
		consulClient, err = discovery.NewConsulClient(cfg.Consul.Addr)
		if err != nil {
			appLogger.Warn("Could not create Consul client", zap.Error(err))
		} else if err := consulClient.RegisterService(serviceID, cfg.Server.ServiceName, cfg.Server.HTTPPort); err != nil {
			appLogger.Warn("Could not register with Consul", zap.Error(err))
			consulClient = nil
		} else {
			appLogger.Info("Registered with Consul", zap.String("service_id", serviceID))
		}
	}

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	if consulClient != nil {
		if err := consulClient.DeregisterService(serviceID); err != nil {
			appLogger.Warn("Could not deregister from Consul", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()

	appLogger.Info("Server stopped")
}

func newBackend(ctx context.Context, cfg *config.Config, log logger.ZapLogger) store.Backend {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			log.Fatal("Could not connect to database", zap.Error(err))
		}
		backend, err := store.NewPostgresBackend(ctx, db)
		if err != nil {
			log.Fatal("Could not prepare collections table", zap.Error(err))
		}
		log.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		return backend
	case "file", "":
		backend, err := store.NewFileBackend(cfg.Store.DataDir, log)
		if err != nil {
			log.Fatal("Could not open data directory", zap.String("dir", cfg.Store.DataDir), zap.Error(err))
		}
		log.Info("Using file store", zap.String("dir", cfg.Store.DataDir))
		return backend
	default:
		log.Fatal("Unknown store driver", zap.String("driver", cfg.Store.Driver))
		return nil
	}
}

func listenAddr(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
