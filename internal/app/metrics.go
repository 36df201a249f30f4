package app

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// pressesTotal counts successful key presses
	pressesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "syskey_presses_total",
		Help: "The total number of simulated key presses",
	}, []string{"key"})

	// pressErrors counts key presses the desktop refused
	pressErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "syskey_press_errors_total",
		Help: "The total number of key presses that failed",
	}, []string{"key"})

	// intervalSeconds tracks the randomized wait after each press
	intervalSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "syskey_interval_seconds",
		Help:    "The wait between simulated key presses",
		Buckets: prometheus.LinearBuckets(60, 60, 5),
	})

	// activeSeconds is the active time of the current run
	activeSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "syskey_active_seconds",
		Help: "Total time the current run has been keeping the display awake",
	})
)

// MetricsObserver feeds simulate.Simulator events into Prometheus.
type MetricsObserver struct{}

func (MetricsObserver) Pressed(key string, interval, active time.Duration) {
	pressesTotal.WithLabelValues(key).Inc()
	intervalSeconds.Observe(interval.Seconds())
	activeSeconds.Set(active.Seconds())
}

func (MetricsObserver) PressFailed(key string, err error) {
	pressErrors.WithLabelValues(key).Inc()
}

// RegisterMetricsHandler starts a separate HTTP server for metrics on addr.
// The listener is bound before returning so a bad address fails fast; the
// returned server's Addr is the bound address.
func RegisterMetricsHandler(addr string, lg *slog.Logger) (*http.Server, error) {
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:              ln.Addr().String(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		lg.Info("starting metrics server", "addr", srv.Addr, "path", "/metrics")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("metrics server failed", "err", err)
		}
	}()

	return srv, nil
}
