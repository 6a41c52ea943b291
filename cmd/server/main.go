package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fieldtrip/internal/app"
	"fieldtrip/internal/config"
	"fieldtrip/internal/gateway"
	"fieldtrip/internal/handler"
	internalRedis "fieldtrip/internal/redis"
	"fieldtrip/internal/repository/postgres"
	"fieldtrip/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	if !cfg.Gateway.Simulated {
		log.Fatal("no real payment processor is integrated; set GATEWAY_SIMULATED=true")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	schoolRepo := postgres.NewSchoolRepository(db)
	parentRepo := postgres.NewParentRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	fieldTripRepo := postgres.NewFieldTripRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	// Initialize services.
	processor := gateway.NewSimulator()
	enrollmentService := service.NewEnrollmentService(parentRepo, studentRepo, registrationRepo)
	paymentService := service.NewPaymentService(
		schoolRepo,
		fieldTripRepo,
		transactionRepo,
		enrollmentService,
		processor,
		time.Now,
	)
	fieldTripService := service.NewFieldTripService(fieldTripRepo, schoolRepo, cacheStore)
	schoolService := service.NewSchoolService(schoolRepo, cacheStore)

	// Initialize handlers.
	fieldTripHandler := handler.NewFieldTripHandler(fieldTripService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	schoolHandler := handler.NewSchoolHandler(schoolService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		FieldTripHandler: fieldTripHandler,
		PaymentHandler:   paymentHandler,
		SchoolHandler:    schoolHandler,
		RedisClient:      redisClient,
		NewRelicApp:      nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
