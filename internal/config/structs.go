package config

import (
	"github.com/partshop/partshop/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Webserver Webserver
	Assets    Assets
	Log       logger.Log
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    `validate:"min=1,max=65535"` // listening port for the webserver
	MetricsPort    int    `validate:"min=0,max=65535"` // listening port for /metrics, 0 disables it
	ShutDownTime   int    `validate:"min=0"`           // wait time for shutdown in seconds
	URL            string `validate:"required"`        // base url for the webserver
}

// Assets holds the static file settings.
type Assets struct {
	Root string `validate:"required"` // directory served for non api paths, uploads live below it
}
