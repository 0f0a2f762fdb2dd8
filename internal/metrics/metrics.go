// Package metrics holds the prometheus collectors of partshop and the /metrics listener.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Path is where the metrics listener exposes the registry.
const Path = "/metrics"

const readHeaderTimeout = 5 * time.Second

// Requests counts handled http requests by method and status code.
var Requests = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of handled http requests, differentiated by method and status.",
	},
	[]string{"method", "status"},
)

// ObserveRequest increments Requests for one finished request.
func ObserveRequest(method string, status int) {
	Requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// NewServer returns an http.Server exposing the default registry on addr.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(Path, promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// Serve runs srv until it is shut down.
func Serve(srv *http.Server) {
	log.Info().Str("addr", srv.Addr).Msg("metrics listener started")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("metrics listener stopped")
	}
}
