// Package daemon starts and stops the partshop services.
package daemon

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/config"
	"github.com/partshop/partshop/internal/db"
	"github.com/partshop/partshop/internal/logger"
	"github.com/partshop/partshop/internal/metrics"
	"github.com/partshop/partshop/internal/web"
	"github.com/partshop/partshop/internal/web/handler/upload"
	"github.com/partshop/partshop/internal/web/static"
)

const (
	dirPerm            = 0o755
	metricsStopTimeout = 5 * time.Second
)

// ErrConfigNil is returned by New without a config.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
	metrics    *http.Server
}

// New initializes logging, the store and the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to init logger")
	}

	fs := afero.NewBasePathFs(afero.NewOsFs(), cfg.Assets.Root)
	if err := prepareDirs(fs); err != nil {
		return nil, err
	}

	store, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	webService, err := web.NewWithFs(cfg, store, fs)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to init web service")
	}

	d := &Daemon{
		cfg:        cfg,
		db:         store,
		webService: webService,
	}

	if cfg.Webserver.MetricsPort > 0 {
		d.metrics = metrics.NewServer(":" + strconv.Itoa(cfg.Webserver.MetricsPort))
	}

	return d, nil
}

// prepareDirs creates the upload directory below the asset root.
func prepareDirs(fs afero.Fs) error {
	if err := fs.MkdirAll(upload.ImagesDir, dirPerm); err != nil {
		return pkgerrors.Wrap(err, "can't create upload directory")
	}

	return nil
}

// Start serves until SIGINT or SIGTERM and then shuts everything down.
// A listen error is returned immediately.
func (d *Daemon) Start() error {
	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)

	if d.metrics != nil {
		go metrics.Serve(d.metrics)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listenErr := make(chan error, 1)

	go func() {
		listenErr <- d.webService.Start(addr)
	}()

	stopped := make(chan struct{})

	go func() {
		d.webService.WaitShutdown(ctx)
		close(stopped)
	}()

	log.Info().Msgf("server is running at %s", d.cfg.Webserver.URL)
	log.Info().Msgf("website (user): %s", d.cfg.Webserver.URL)
	log.Info().Msgf("admin panel: %s%s", d.cfg.Webserver.URL, static.AdminDashboard)

	select {
	case err := <-listenErr:
		// stop waiting for a signal, nothing is left to shut down
		cancel()
		<-stopped
		d.close()

		if err != nil {
			return pkgerrors.Wrap(err, "webserver failed")
		}

		return nil
	case <-stopped:
	}

	d.close()

	return nil
}

func (d *Daemon) close() {
	if d.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsStopTimeout)
		defer cancel()

		if err := d.metrics.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to stop metrics listener")
		}
	}

	if sqlDB, err := d.db.DB(); err == nil {
		if err = sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}
}
