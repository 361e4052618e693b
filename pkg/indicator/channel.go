package indicator

import (
	"sync"
	"time"
)

// ChannelState manages calculator state for a single telemetry channel
// (one sensor, one signal). The movavg core itself is single-threaded by
// contract; the mutex here is the external synchronization callers are
// expected to provide when a channel is shared.
type ChannelState struct {
	channel     string
	mu          sync.RWMutex
	calculators map[string]Calculator
	lastUpdate  time.Time
}

// NewChannelState creates a new channel state
func NewChannelState(channel string) *ChannelState {
	return &ChannelState{
		channel:     channel,
		calculators: make(map[string]Calculator),
	}
}

// Channel returns the channel name
func (c *ChannelState) Channel() string {
	return c.channel
}

// AddCalculator adds a calculator to this channel's state
func (c *ChannelState) AddCalculator(calc Calculator) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calculators[calc.Name()] = calc
}

// RemoveCalculator removes a calculator from this channel's state
func (c *ChannelState) RemoveCalculator(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.calculators, name)
}

// Update feeds a new sample to all calculators
func (c *ChannelState) Update(sample Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, calc := range c.calculators {
		_, _ = calc.Update(sample)
	}
	c.lastUpdate = sample.Timestamp
}

// GetValue retrieves the current value of a calculator
func (c *ChannelState) GetValue(calculatorName string) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	calc, exists := c.calculators[calculatorName]
	if !exists {
		return 0, nil // Return 0 if calculator not found (not an error)
	}

	return calc.Value()
}

// GetAllValues returns all current calculator values that are ready
func (c *ChannelState) GetAllValues() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	values := make(map[string]float64)
	for name, calc := range c.calculators {
		if calc.IsReady() {
			if val, err := calc.Value(); err == nil {
				values[name] = val
			}
		}
	}

	return values
}

// GetLastUpdate returns the timestamp of the last fed sample
func (c *ChannelState) GetLastUpdate() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastUpdate
}

// Reset clears all calculator state
func (c *ChannelState) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, calc := range c.calculators {
		calc.Reset()
	}
	c.lastUpdate = time.Time{}
}

// Rehydrate resets the channel and replays historical samples in order.
// This is useful when a consumer restarts and needs to rebuild state.
func (c *ChannelState) Rehydrate(samples []Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, calc := range c.calculators {
		calc.Reset()
	}

	for _, sample := range samples {
		for _, calc := range c.calculators {
			_, _ = calc.Update(sample)
		}
	}

	if len(samples) > 0 {
		c.lastUpdate = samples[len(samples)-1].Timestamp
	}
}
