package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fieldtrip/internal/handler"
	"fieldtrip/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	FieldTripHandler *handler.FieldTripHandler
	PaymentHandler   *handler.PaymentHandler
	SchoolHandler    *handler.SchoolHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.Idempotency(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Field trip routes.
		fieldtrips := v1.Group("/fieldtrips")
		{
			fieldtrips.GET("", deps.FieldTripHandler.List)
			fieldtrips.POST("", deps.FieldTripHandler.Create)
			fieldtrips.DELETE("/:id", deps.FieldTripHandler.Delete)
		}

		// School routes.
		schools := v1.Group("/schools")
		{
			schools.POST("", deps.SchoolHandler.Create)
			schools.GET("", deps.SchoolHandler.GetAll)
			schools.DELETE("/:id", deps.SchoolHandler.Delete)
		}

		// Payment routes.
		payments := v1.Group("/payments")
		{
			payments.POST("", deps.PaymentHandler.ProcessPayment)
		}
	}

	return router
}
