package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mohamedkhairy/movavg/internal/config"
	"github.com/mohamedkhairy/movavg/pkg/indicator"
	"github.com/mohamedkhairy/movavg/pkg/logger"
	"github.com/mohamedkhairy/movavg/pkg/movavg"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting smoother service",
		logger.Int("window_size", cfg.Smoother.WindowSize),
		logger.Duration("sample_period", cfg.Smoother.SamplePeriod),
		logger.Int("metrics_port", cfg.Smoother.MetricsPort),
		logger.Bool("fast_accumulate", cfg.Smoother.FastAccumulate),
	)

	// Build the smoothing calculator
	var opts []movavg.Option
	if cfg.Smoother.FastAccumulate {
		opts = append(opts, movavg.WithIncrementalRecalc())
	}
	sma, err := indicator.NewSMA(cfg.Smoother.WindowSize, opts...)
	if err != nil {
		logger.Fatal("Failed to create SMA calculator",
			logger.ErrorField(err),
		)
	}

	// Expose Prometheus metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Smoother.MetricsPort),
		Handler: mux,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed",
				logger.ErrorField(err),
			)
		}
	}()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Smoother.SamplePeriod)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case sig := <-sigCh:
			logger.Info("Shutting down smoother service",
				logger.String("signal", sig.String()),
			)
			_ = metricsServer.Close()
			return

		case now := <-ticker.C:
			raw := syntheticSample(cfg.Smoother, now.Sub(start))
			smoothed, err := sma.Update(indicator.Sample{
				Timestamp: now,
				Value:     raw,
			})
			if err != nil {
				logger.FeedErrors.WithLabelValues(errorKind(err)).Inc()
				logger.Warn("Sample rejected",
					logger.Float64("raw", raw),
					logger.ErrorField(err),
				)
				continue
			}

			logger.SamplesFed.Inc()
			logger.WindowFill.Set(float64(min(sma.SamplesProcessed(), sma.WindowSize())))
			if !sma.IsReady() {
				continue
			}

			logger.CurrentAverage.Set(smoothed)
			logger.Debug("Sample smoothed",
				logger.Float64("raw", raw),
				logger.Float64("smoothed", smoothed),
			)
		}
	}
}

// syntheticSample produces a noisy sinusoid standing in for a real sensor.
func syntheticSample(cfg config.SmootherConfig, elapsed time.Duration) float64 {
	phase := 2 * math.Pi * elapsed.Seconds() / cfg.SignalPeriod.Seconds()
	noise := cfg.NoiseAmplitude * (2*rand.Float64() - 1)
	return cfg.SignalAmplitude*math.Sin(phase) + noise
}

// errorKind maps engine errors onto metric labels.
func errorKind(err error) string {
	switch {
	case errors.Is(err, movavg.ErrOverflow):
		return "overflow"
	case errors.Is(err, movavg.ErrCast):
		return "cast"
	default:
		return "other"
	}
}
