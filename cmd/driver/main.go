package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/config"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/database"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/health"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/middleware"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	natspkg "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/nats"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/retry"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/server"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes"
	routeGateway "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/gateway"
	routeHTTP "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/handler/http"
	routeNATS "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/handler/nats"
	routeRepository "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/repository"
	routeUsecase "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/usecase"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips"
	tripGateway "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips/gateway"
	tripHTTP "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips/handler/http"
	tripRepository "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips/repository"
	tripUsecase "github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips/usecase"
)

func main() {
	appName := "driver-service"
	configPath := "config/driver.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.Bool("memory_store", configs.Store.UseMemory))

	e := echo.New()
	e.HideBanner = true
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecovery(zapLogger))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return zapLogger.Close() })

	checks := map[string]health.Checker{}
	ctx := context.Background()
	retrier := retry.New(retry.StartupConfig(), zapLogger)

	// Stores
	var (
		tripRepo     trips.TripRepo
		driverRepo   trips.DriverRepo
		routeRepo    routes.RouteRepo
		locationRepo routes.LocationRepo
	)
	if configs.Store.UseMemory {
		store := tripRepository.NewMemoryStore()
		tripRepo, driverRepo = store, store

		routeStore := routeRepository.NewMemoryRouteRepo()
		routeRepo, locationRepo = routeStore, routeStore
	} else {
		postgresClient, err := retry.Connect(ctx, retrier, "postgres", func() (*database.PostgresClient, error) {
			return database.NewPostgresClient(configs.Database)
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
		checks["postgres"] = postgresClient.Ping

		redisClient, err := retry.Connect(ctx, retrier, "redis", func() (*database.RedisClient, error) {
			return database.NewRedisClient(configs.Redis)
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
		checks["redis"] = redisClient.Ping

		tripRepo = tripRepository.NewTripRepo(postgresClient.GetDB())
		driverRepo = tripRepository.NewDriverRepo(postgresClient.GetDB())

		routeStore := routeRepository.NewRouteRepo(redisClient, time.Duration(configs.Routing.ActiveRouteTTLHours)*time.Hour)
		routeRepo, locationRepo = routeStore, routeStore
	}

	// Events are optional: without NATS the engine runs with publishing disabled
	var (
		tripGW     trips.TripGW
		routeGW    routes.RouteGW
		natsClient *natspkg.Client
	)
	if configs.NATS.URL != "" {
		natsClient, err = retry.Connect(ctx, retrier, "nats", func() (*natspkg.Client, error) {
			return natspkg.NewClient(configs.NATS.URL)
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error {
			natsClient.Close()
			return nil
		})
		checks["nats"] = func(context.Context) error {
			if !natsClient.IsConnected() {
				return natspkg.ErrNotConnected
			}
			return nil
		}

		tripGW = tripGateway.NewTripGW(natsClient)
		routeGW = routeGateway.NewRouteGW(natsClient)
	} else {
		zapLogger.Warn("NATS_URL not set, event publishing disabled")
	}

	// Usecases
	tripUC := tripUsecase.NewTripUC(configs, tripRepo, driverRepo, tripGW)
	routeUC := routeUsecase.NewRouteUC(configs, routeRepo, locationRepo, tripRepo, driverRepo, routeGW)

	// NATS consumers
	if natsClient != nil {
		locationHandler := routeNATS.NewLocationHandler(routeUC, natsClient)
		if err := locationHandler.InitNATSConsumers(); err != nil {
			zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error {
			locationHandler.Close()
			return nil
		})
	}

	// HTTP
	health.RegisterHealthEndpoints(e, appName, checks)

	driverGroup := e.Group("/drivers/:driverID")
	tripHTTP.NewTripHandler(tripUC).RegisterRoutes(driverGroup)
	routeHTTP.NewRouteHandler(routeUC).RegisterRoutes(driverGroup)

	logRoutes(zapLogger, e, configs)

	if err := srv.Start(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.String("app", appName), logger.Err(err))
	}
}

func logRoutes(zl *logger.ZapLogger, e *echo.Echo, cfg *models.Config) {
	for _, r := range e.Routes() {
		zl.Debug("Registered route", logger.String("method", r.Method), logger.String("path", r.Path))
	}
	zl.Info("Routes registered",
		logger.Int("count", len(e.Routes())),
		logger.Int("port", cfg.Server.Port))
}
