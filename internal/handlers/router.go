package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/jordache-jozz8/BA-system/internal/handlers/analytics"
	"github.com/jordache-jozz8/BA-system/internal/handlers/auth"
	"github.com/jordache-jozz8/BA-system/internal/handlers/customers"
	"github.com/jordache-jozz8/BA-system/internal/handlers/health"
	"github.com/jordache-jozz8/BA-system/internal/handlers/reservations"
	"github.com/jordache-jozz8/BA-system/internal/metrics"
	"github.com/jordache-jozz8/BA-system/internal/middleware"
	"github.com/rs/zerolog"
)

// Options carries everything the router wires together.
type Options struct {
	Stores          *db.Stores
	Logger          zerolog.Logger
	Metrics         *metrics.Metrics
	DemoToken       string
	CORSAllowOrigin string
	Started         time.Time
}

// NewRouter builds the gin engine with the full middleware chain and routes.
func NewRouter(o Options) *gin.Engine {
	if o.Started.IsZero() {
		o.Started = time.Now()
	}
	if o.CORSAllowOrigin == "" {
		o.CORSAllowOrigin = "*"
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New(o.Stores, o.Logger)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(o.Logger))
	r.Use(middleware.Metrics(o.Metrics))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(o.CORSAllowOrigin))

	resH := reservations.New(o.Stores.Reservations)
	custH := customers.New(o.Stores.Customers)
	anaH := analytics.New(o.Stores.Reservations, o.Stores.Customers)
	authH := auth.New(o.DemoToken)

	r.GET("/health", health.New(o.Started).Get)
	r.GET("/metrics", gin.WrapH(o.Metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/reservations", resH.List)
		api.POST("/reservations", resH.Create)
		api.PUT("/reservations/:id", resH.Update)
		api.DELETE("/reservations/:id", resH.Delete)

		api.GET("/customers", custH.List)
		api.POST("/customers", custH.Create)
		api.PUT("/customers/:id", custH.Update)

		api.GET("/analytics", anaH.Get)

		api.POST("/auth/login", authH.Login)
		api.POST("/auth/signup", authH.Signup)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
