package main

import (
	"context"
	"log"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/config"
	"github.com/antarkita/dispatch/internal/pkg/database"
	"github.com/antarkita/dispatch/internal/pkg/health"
	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/middleware"
	nsqpkg "github.com/antarkita/dispatch/internal/pkg/nsq"
	"github.com/antarkita/dispatch/internal/pkg/server"
	"github.com/antarkita/dispatch/services/dispatch/gateway"
	"github.com/antarkita/dispatch/services/dispatch/handler"
	"github.com/antarkita/dispatch/services/dispatch/repository"
	"github.com/antarkita/dispatch/services/dispatch/scheduler"
	"github.com/antarkita/dispatch/services/dispatch/usecase"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	appName := "dispatch-service"
	configs := config.InitConfig("config/dispatch.env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Initialize repository, gateway and usecase
	dispatchRepo := repository.NewDispatchRepository(configs, postgresClient.GetDB(), redisClient)
	dispatchGW := gateway.NewDispatchGateway(producer)
	dispatchUC := usecase.NewDispatchUC(configs, dispatchRepo, dispatchGW)

	// Initialize handlers and NSQ consumers
	h := handler.NewHandler(dispatchUC, configs)
	if err := h.InitNSQConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error {
		h.Stop()
		return nil
	})

	// Start the poll trigger when configured
	if configs.Dispatch.Trigger == usecase.TriggerPoll {
		poller := scheduler.NewPoller(dispatchUC, configs)
		if err := poller.Start(); err != nil {
			zapLogger.Fatal("Failed to start dispatch poller", logger.Err(err))
		}
		shutdown.Register(func(ctx context.Context) error {
			poller.Stop()
			return nil
		})
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	h.RegisterRoutes(e)

	zapLogger.Info("Starting dispatch service",
		logger.String("trigger", configs.Dispatch.Trigger),
		logger.Int("port", configs.Server.Port))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_ = shutdown.Shutdown(shutdownCtx)
}
