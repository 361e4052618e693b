package indicator

import (
	"fmt"

	"github.com/mohamedkhairy/movavg/pkg/movavg"
)

// SMA calculates the Simple Moving Average over the last period samples.
// It is a thin Calculator adapter over the movavg engine: the engine keeps
// the window and running sum, this type adds the naming and readiness
// conventions shared by all calculators.
type SMA struct {
	period    int
	name      string
	engine    *movavg.MovAvg[float64, float64]
	processed int
}

// NewSMA creates a new SMA calculator with the specified period.
// Engine options (e.g. movavg.WithIncrementalRecalc) pass through.
func NewSMA(period int, opts ...movavg.Option) (*SMA, error) {
	if period < 1 {
		return nil, fmt.Errorf("SMA period must be at least 1, got %d", period)
	}

	engine, err := movavg.New[float64, float64](period, opts...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	return &SMA{
		period: period,
		name:   fmt.Sprintf("sma_%d", period),
		engine: engine,
	}, nil
}

// Name returns the calculator name
func (s *SMA) Name() string {
	return s.name
}

// Update feeds a new sample and returns the new average, or 0 while the
// window is still filling.
func (s *SMA) Update(sample Sample) (float64, error) {
	avg, err := s.engine.TryFeed(sample.Value)
	if err != nil {
		return 0, fmt.Errorf("feed sample: %w", err)
	}
	s.processed++

	if !s.engine.IsReady() {
		return 0, nil
	}
	return avg, nil
}

// Value returns the current SMA value
func (s *SMA) Value() (float64, error) {
	if !s.engine.IsReady() {
		return 0, fmt.Errorf("SMA not ready: need at least %d samples", s.period)
	}
	return s.engine.TryGet()
}

// Reset clears the SMA state
func (s *SMA) Reset() {
	s.engine.Reset()
	s.processed = 0
}

// IsReady returns true if the SMA has a full window
func (s *SMA) IsReady() bool {
	return s.engine.IsReady()
}

// WindowSize returns the period (number of samples required)
func (s *SMA) WindowSize() int {
	return s.period
}

// SamplesProcessed returns the number of samples processed
func (s *SMA) SamplesProcessed() int {
	return s.processed
}
