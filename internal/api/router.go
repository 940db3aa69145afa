package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/cjalex1313/trex-gym/internal/api/handler"
	"github.com/cjalex1313/trex-gym/internal/api/middleware"
	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Logger        zerolog.Logger
	Verifier      ports.TokenVerifier
	LoginLimiter  middleware.Limiter
	Auth          *handler.AuthHandler
	Clients       *handler.ClientHandler
	Subscriptions *handler.SubscriptionHandler
	Payments      *handler.PaymentHandler
	Health        *handler.HealthHandler
}

// roleMap declares which routes are restricted, keyed "<METHOD> <pattern>".
// Routes absent from the map admit any authenticated principal, which is how
// GET /me stays open to both roles.
func roleMap() middleware.RoleMap {
	adminOnly := []string{domain.RoleAdmin}
	return middleware.RoleMap{
		"GET /clients":                                 adminOnly,
		"POST /clients":                                adminOnly,
		"GET /clients/:id":                             adminOnly,
		"PUT /clients/:id":                             adminOnly,
		"DELETE /clients/:id":                          adminOnly,
		"GET /clients/:clientId/subscriptions":         adminOnly,
		"POST /clients/:clientId/subscriptions":        adminOnly,
		"GET /clients/:clientId/payments":              adminOnly,
		"GET /subscriptions/:id":                       adminOnly,
		"PUT /subscriptions/:id":                       adminOnly,
		"GET /subscriptions/:subscriptionId/payments":  adminOnly,
		"POST /subscriptions/:subscriptionId/payments": adminOnly,
		"PUT /payments/:id":                            adminOnly,
		"DELETE /payments/:id":                         adminOnly,
		"GET /payments/outstanding":                    adminOnly,
	}
}

// NewRouter builds the Echo instance with all middleware and routes wired.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("trexgym"))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			deps.Logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
		LogRequestID: true,
	}))

	// Operational endpoints, no auth.
	e.GET("/health", deps.Health.Live)
	e.GET("/health/ready", deps.Health.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())

	// Public auth endpoints, throttled per IP.
	auth := e.Group("/auth")
	if deps.LoginLimiter != nil {
		auth.Use(middleware.RateLimit(deps.LoginLimiter, deps.Logger))
	}
	auth.POST("/admin/login", deps.Auth.LoginAdmin)
	auth.POST("/client/login", deps.Auth.LoginClient)
	auth.POST("/refresh", deps.Auth.Refresh)

	// Everything below requires a valid access token.
	guarded := e.Group("", middleware.Auth(deps.Verifier), middleware.RequireRoles(roleMap()))

	guarded.GET("/me", deps.Auth.Me)

	guarded.GET("/clients", deps.Clients.List)
	guarded.POST("/clients", deps.Clients.Create)
	guarded.GET("/clients/:id", deps.Clients.Get)
	guarded.PUT("/clients/:id", deps.Clients.Update)
	guarded.DELETE("/clients/:id", deps.Clients.Delete)

	guarded.GET("/clients/:clientId/subscriptions", deps.Subscriptions.ListByClient)
	guarded.POST("/clients/:clientId/subscriptions", deps.Subscriptions.CreateForClient)
	guarded.GET("/subscriptions/:id", deps.Subscriptions.Get)
	guarded.PUT("/subscriptions/:id", deps.Subscriptions.Update)

	guarded.GET("/clients/:clientId/payments", deps.Payments.ListByClient)
	guarded.GET("/subscriptions/:subscriptionId/payments", deps.Payments.ListBySubscription)
	guarded.POST("/subscriptions/:subscriptionId/payments", deps.Payments.CreateForSubscription)
	guarded.PUT("/payments/:id", deps.Payments.Update)
	guarded.DELETE("/payments/:id", deps.Payments.Delete)
	guarded.GET("/payments/outstanding", deps.Payments.Outstanding)

	return e
}
