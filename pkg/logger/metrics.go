package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the smoothing pipeline

var (
	// SamplesFed counts every sample pushed into a smoothing engine
	SamplesFed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smoother_samples_fed_total",
			Help: "Total number of samples fed into the smoothing engine",
		},
	)

	// FeedErrors counts rejected feeds by error kind (overflow, cast)
	FeedErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smoother_feed_errors_total",
			Help: "Total number of rejected sample feeds",
		},
		[]string{"kind"},
	)

	// CurrentAverage exports the most recent smoothed value
	CurrentAverage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "smoother_average",
			Help: "Current simple moving average over the sample window",
		},
	)

	// WindowFill exports how many samples the window currently holds
	WindowFill = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "smoother_window_fill",
			Help: "Number of samples currently held in the window",
		},
	)
)
