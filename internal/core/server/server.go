package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coffee-checkout/internal/core/config"
	"coffee-checkout/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "coffee-checkout/docs/swagger"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// store is checked by /healthz; may be nil.
	store Pinger
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig, store Pinger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "coffee-checkout",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	s := &Server{
		App:   app,
		cfg:   cfg,
		store: store,
	}
	app.Get("/healthz", s.health)

	return s
}

// health handles GET /healthz.
// @Summary Liveness and store check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /healthz [get]
func (s *Server) health(c *fiber.Ctx) error {
	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.store.Ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.Error(err))
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Message: "store unavailable",
				RayID:   RayID(c),
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}
