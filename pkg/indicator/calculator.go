package indicator

import "time"

// Sample is a single telemetry measurement: one numeric reading from a
// sensor or signal source at a point in time.
type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Calculator is the interface for stateful smoothing calculators.
// Each calculator type implements this interface
type Calculator interface {
	// Name returns the unique name of this calculator (e.g., "sma_20")
	Name() string

	// Update processes a new sample and updates the calculator state
	// Returns the new smoothed value, or 0 if not enough data yet
	Update(sample Sample) (float64, error)

	// Value returns the current calculator value
	// Returns 0 and error if not enough data has been processed
	Value() (float64, error)

	// Reset clears the calculator state (useful for rehydration or testing)
	Reset()

	// IsReady returns true if the calculator has enough data to produce a valid value
	IsReady() bool
}

// WindowedCalculator extends Calculator for calculators that operate over a
// fixed window of samples
type WindowedCalculator interface {
	Calculator

	// WindowSize returns the number of samples required for this calculator
	WindowSize() int

	// SamplesProcessed returns the number of samples processed so far
	SamplesProcessed() int
}
