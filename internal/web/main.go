// Package web wires the partshop json api and the static site into one fiber app.
package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/config"
	logadapter "github.com/partshop/partshop/internal/logger/adapter/fiber"
	"github.com/partshop/partshop/internal/web/handler"
	"github.com/partshop/partshop/internal/web/handler/branch"
	"github.com/partshop/partshop/internal/web/handler/product"
	"github.com/partshop/partshop/internal/web/handler/settings"
	"github.com/partshop/partshop/internal/web/handler/upload"
	"github.com/partshop/partshop/internal/web/static"
)

// HealthPath answers {"ok":true} while the service accepts traffic.
const HealthPath = "/api/health"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	fs           afero.Fs
}

// Start starts the web service on the given address and blocks until it is shut down.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
// It returns without shutting down once ctx is done.
func (s *Service) WaitShutdown(ctx context.Context) {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(irqSig)

	select {
	case sig := <-irqSig:
		log.Info().Msgf("shutdown request (signal: %v)", sig)
	case <-ctx.Done():
		return
	}

	s.Shutdown()
}

// Shutdown lets the health check fail for Webserver.ShutDownTime seconds, then stops fiber.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	s.alive.Store(false)

	if !s.fastShutDown && s.cfg.Webserver.ShutDownTime > 0 {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this instance from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether the health check passes.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates a new web service serving files below cfg.Assets.Root.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	return NewWithFs(cfg, db, afero.NewBasePathFs(afero.NewOsFs(), cfg.Assets.Root))
}

// NewWithFs creates a new web service serving static files and storing uploads in fs.
func NewWithFs(cfg *config.Config, db *gorm.DB, fs afero.Fs) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			StrictRouting:  true,
			Prefork:        false,
			Immutable:      true,
			JSONEncoder:    json.Marshal,
			JSONDecoder:    json.Unmarshal,
			ErrorHandler:   ErrorHandler,
			// uploads carry base64 images
			BodyLimit: 16 * 1024 * 1024,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		fs:           fs,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Use(logadapter.New(logadapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: HealthPath,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(CORS)

	app.Get(HealthPath, service.health)

	// init handlers, each registers its own routes
	for _, h := range []handler.Service{
		product.New(),
		branch.New(),
		settings.New(),
		upload.New(fs),
	} {
		if err := h.Init(app, cfg, db); err != nil {
			return nil, err
		}
	}

	// unknown api paths never reach the static resolver
	app.Use(func(c *fiber.Ctx) error {
		if handler.IsAPI(c) {
			return handler.NotFound(c)
		}

		return c.Next()
	})

	if err := static.New(fs).Init(app, cfg, db); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *Service) health(c *fiber.Ctx) error {
	if !s.Alive() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(handler.OKBody{OK: false})
	}

	return handler.OK(c, fiber.StatusOK)
}
