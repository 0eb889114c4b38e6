package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/account"
	accountHttp "github.com/poolpass/pool-booking-gateway/internal/account/http"
	"github.com/poolpass/pool-booking-gateway/internal/availability"
	availabilityHttp "github.com/poolpass/pool-booking-gateway/internal/availability/http"
	"github.com/poolpass/pool-booking-gateway/internal/booking"
	bookingHttp "github.com/poolpass/pool-booking-gateway/internal/booking/http"
	"github.com/poolpass/pool-booking-gateway/internal/pool"
	poolHttp "github.com/poolpass/pool-booking-gateway/internal/pool/http"
	"github.com/poolpass/pool-booking-gateway/internal/session"
	"github.com/poolpass/pool-booking-gateway/internal/web"
)

// Config holds everything the router needs to assemble middleware and routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	AccountService      account.Service
	PoolService         pool.Service
	AvailabilityService availability.Service
	BookingService      booking.Service

	Sessions session.Manager
	Logger   *zap.Logger
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request logging, recovery, CORS, session cookie
// extraction) and registers the JSON API under /api plus the rendered pages.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if origins := splitOrigins(cfg.ProdOrigins); cfg.IsProduction && len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8080",
			"http://localhost:5173", // Vite dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "HEAD", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Every request carries the browser session token (when present) in its
	// context; API guards and page handlers both read it from there.
	r.Use(cfg.Sessions.Extract())

	// Rendered pages
	r.SetHTMLTemplate(web.Templates())
	webHandler := web.NewHandler(
		cfg.AccountService,
		cfg.PoolService,
		cfg.AvailabilityService,
		cfg.BookingService,
		cfg.Sessions,
		cfg.Logger,
	)
	web.RegisterRoutes(r, webHandler)

	// Initialize HTTP handlers for each module (injecting Service dependencies).
	accountHandler := accountHttp.NewHandler(cfg.AccountService, cfg.Sessions, cfg.Logger)
	poolHandler := poolHttp.NewHandler(cfg.PoolService, cfg.Logger)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService, cfg.Logger)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Logger)

	// Register API routes under /api
	apiGroup := r.Group("/api")
	{
		accountHttp.RegisterRoutes(apiGroup, accountHandler)
		poolHttp.RegisterRoutes(apiGroup, poolHandler)
		availabilityHttp.RegisterRoutes(apiGroup, availabilityHandler, session.Required())
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler, session.Required())
	}

	return r
}

// RequestLogger logs each request with a generated request id, method, path,
// status and latency.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
