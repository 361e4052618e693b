package indicator

import (
	"math"
	"testing"
	"time"
)

func sampleAt(i int, value float64) Sample {
	base := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	return Sample{
		Timestamp: base.Add(time.Duration(i) * time.Second),
		Value:     value,
	}
}

func TestSMA_NewSMA(t *testing.T) {
	// Valid period
	sma, err := NewSMA(20)
	if err != nil {
		t.Fatalf("Failed to create SMA: %v", err)
	}
	if sma == nil {
		t.Fatal("SMA is nil")
	}
	if sma.Name() != "sma_20" {
		t.Errorf("Expected name 'sma_20', got '%s'", sma.Name())
	}

	// Invalid period
	_, err = NewSMA(0)
	if err == nil {
		t.Error("Expected error for period < 1")
	}
}

func TestSMA_Update(t *testing.T) {
	sma, _ := NewSMA(5)

	// Add samples one by one
	for i := 0; i < 4; i++ {
		val, err := sma.Update(sampleAt(i, 100.0+float64(i)))
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if sma.IsReady() {
			t.Errorf("SMA should not be ready after %d samples", i+1)
		}
		if val != 0 {
			t.Errorf("Expected 0 for incomplete SMA, got %f", val)
		}
	}

	// 5th sample should make it ready
	val, err := sma.Update(sampleAt(4, 104.0))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !sma.IsReady() {
		t.Error("SMA should be ready after 5 samples")
	}
	expected := (100.0 + 101.0 + 102.0 + 103.0 + 104.0) / 5.0
	if val != expected {
		t.Errorf("Expected SMA %f, got %f", expected, val)
	}
	if sma.SamplesProcessed() != 5 {
		t.Errorf("Expected 5 samples processed, got %d", sma.SamplesProcessed())
	}
}

func TestSMA_RollingWindow(t *testing.T) {
	sma, _ := NewSMA(5)

	// Add 10 samples
	for i := 0; i < 10; i++ {
		_, _ = sma.Update(sampleAt(i, 100.0+float64(i)))
	}

	// SMA should be average of last 5 values: 105..109
	val, _ := sma.Value()
	expected := (105.0 + 106.0 + 107.0 + 108.0 + 109.0) / 5.0
	if val != expected {
		t.Errorf("Expected SMA %f, got %f", expected, val)
	}
}

func TestSMA_Reset(t *testing.T) {
	sma, _ := NewSMA(5)

	for i := 0; i < 10; i++ {
		_, _ = sma.Update(sampleAt(i, 100.0+float64(i)))
	}

	sma.Reset()

	if sma.IsReady() {
		t.Error("SMA should not be ready after reset")
	}
	if sma.SamplesProcessed() != 0 {
		t.Errorf("Expected 0 samples processed after reset, got %d", sma.SamplesProcessed())
	}

	val, err := sma.Value()
	if err == nil {
		t.Errorf("Expected error after reset, got value %f", val)
	}
}

func TestSMA_ConstantSignal(t *testing.T) {
	sma, _ := NewSMA(10)

	value := 100.0
	for i := 0; i < 10; i++ {
		_, _ = sma.Update(sampleAt(i, value))
	}

	val, _ := sma.Value()
	if val != value {
		t.Errorf("Expected SMA %f for constant signal, got %f", value, val)
	}
}

func TestSMA_MatchesTechanReference(t *testing.T) {
	const period = 5
	sma, err := NewSMA(period)
	if err != nil {
		t.Fatalf("Failed to create SMA: %v", err)
	}
	ref := NewTechanSMA(period)

	values := []float64{
		21.5, 22.0, 21.25, 23.75, 24.0, 23.5, 22.875,
		25.125, 26.0, 24.5, 23.0, 27.25,
	}
	for i, v := range values {
		sample := sampleAt(i, v)

		got, err := sma.Update(sample)
		if err != nil {
			t.Fatalf("SMA update failed: %v", err)
		}
		want, err := ref.Update(sample)
		if err != nil {
			t.Fatalf("Reference update failed: %v", err)
		}

		if i+1 < period {
			continue // both still filling
		}
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("Sample %d (%f): movavg SMA %g, techan SMA %g", i, v, got, want)
		}
	}

	if sma.IsReady() != ref.IsReady() {
		t.Errorf("Readiness disagrees: movavg %v, techan %v", sma.IsReady(), ref.IsReady())
	}
}

func TestTechanSMA_Reset(t *testing.T) {
	ref := NewTechanSMA(3)
	for i := 0; i < 5; i++ {
		if _, err := ref.Update(sampleAt(i, float64(i))); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	ref.Reset()
	if ref.IsReady() {
		t.Error("Reference calculator should not be ready after reset")
	}
	if _, err := ref.Value(); err == nil {
		t.Error("Expected error after reset")
	}

	// Must accept samples again after reset.
	if _, err := ref.Update(sampleAt(100, 42.0)); err != nil {
		t.Errorf("Update after reset failed: %v", err)
	}
}
