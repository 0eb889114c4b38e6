package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/poolpass/pool-booking-gateway/internal/account"
	"github.com/poolpass/pool-booking-gateway/internal/api"
	"github.com/poolpass/pool-booking-gateway/internal/availability"
	"github.com/poolpass/pool-booking-gateway/internal/booking"
	"github.com/poolpass/pool-booking-gateway/internal/pool"
	"github.com/poolpass/pool-booking-gateway/internal/session"
	"github.com/poolpass/pool-booking-gateway/internal/upstream"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	UpstreamBaseURL   string
	UpstreamTimeout   time.Duration
	SessionCookieName string
	SessionTTLDays    int
	Logger            *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Shared upstream HTTP client for the legacy portal
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, cfg.Logger)

	// Browser session cookie settings
	sessions := session.Manager{
		CookieName: cfg.SessionCookieName,
		TTLDays:    cfg.SessionTTLDays,
	}

	// Account module
	accountPortal := account.NewHTMLPortal(client)
	accountService := account.NewService(accountPortal)

	// Pool module
	poolPortal := pool.NewHTMLPortal(client)
	poolService := pool.NewService(poolPortal)

	// Availability module
	availabilityPortal := availability.NewHTMLPortal(client)
	availabilityService := availability.NewService(availabilityPortal)

	// Booking module
	bookingPortal := booking.NewHTMLPortal(client)
	bookingService := booking.NewService(bookingPortal)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		AccountService:      accountService,
		PoolService:         poolService,
		AvailabilityService: availabilityService,
		BookingService:      bookingService,
		Sessions:            sessions,
		Logger:              cfg.Logger,
	})

	return &Container{
		Router: router,
	}
}
