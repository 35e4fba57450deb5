// Package web implements the HTTP service: the JSON API under /api and the
// embedded single page client.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	fiberlogger "github.com/ventastarango2700-netizen/unofitmx/internal/logger/adapter/fiber"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler/control"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler/income"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler/messages"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler/reset"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler/status"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler/users"
)

const (
	// CheckAlivePath is the liveness endpoint used by load balancers.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus registry.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive reports liveness; returns 503 once shutdown has begun.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "unofitmx",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   newErrorHandler(cfg),
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// role resolution is injected so verified identity can replace the
	// client-asserted role later without touching the handlers
	var roles auth.RoleProvider = auth.RequestRole{}

	// init handlers (they register their own routes and capability checks)
	status.Handler.Init(app, cfg, db, roles)
	users.Handler.Init(app, cfg, db, roles)
	control.Handler.Init(app, cfg, db, roles)
	messages.Handler.Init(app, cfg, db, roles)
	income.Handler.Init(app, cfg, db, roles)
	reset.Handler.Init(app, cfg, db, roles)

	// unmatched API routes
	app.Use(handler.RootPath, func(c *fiber.Ctx) error {
		return handler.NotFound(c)
	})

	// serve the embedded single page client
	app.Use("/",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Index:      "index.html",
			},
		),
	)

	return service
}

// newErrorHandler builds the outermost error boundary: unmatched routes map
// to NOT_FOUND, everything else to SYSTEM_ERROR. Error details leak to the
// client only in dev mode.
func newErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusNotFound {
			return handler.NotFound(c)
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

		resp := handler.ErrorResponse{
			Error: handler.MsgSystemError,
			Code:  handler.CodeSystemError,
		}

		if cfg.DevMode {
			resp.Details = err.Error()
		}

		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}
