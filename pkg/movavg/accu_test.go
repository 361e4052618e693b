package movavg

import (
	"errors"
	"testing"
)

func TestPolicyFor_Selection(t *testing.T) {
	if _, ok := policyFor[int64, int64](false).(incrementalAccu[int64, int64]); !ok {
		t.Error("Integer accumulator should use the incremental policy")
	}
	if _, ok := policyFor[float64, float64](false).(recomputeAccu[float64, float64]); !ok {
		t.Error("Float accumulator should default to the recompute policy")
	}
	if _, ok := policyFor[float64, float64](true).(incrementalAccu[float64, float64]); !ok {
		t.Error("WithIncrementalRecalc should force the incremental policy")
	}
	// The flag has no meaning for integer kinds.
	if _, ok := policyFor[int32, int32](true).(incrementalAccu[int32, int32]); !ok {
		t.Error("Integer accumulator should stay incremental")
	}
}

func TestIncrementalAccu_Recalc(t *testing.T) {
	p := incrementalAccu[int16, int16]{}

	// Window held 10+20+30=60; 10 falls out, 40 comes in.
	accu, err := p.recalc(60, 10, 40, nil)
	if err != nil {
		t.Fatalf("recalc failed: %v", err)
	}
	if accu != 90 {
		t.Errorf("Expected 90, got %d", accu)
	}
}

func TestIncrementalAccu_Overflow(t *testing.T) {
	p := incrementalAccu[uint8, uint8]{}

	_, err := p.recalc(200, 0, 200, nil)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow, got %v", err)
	}
}

func TestRecomputeAccu_Recalc(t *testing.T) {
	p := recomputeAccu[float64, float64]{}

	// Scalar arguments are ignored; only the window contents count.
	accu, err := p.recalc(-1, -1, -1, []float64{1.5, 2.5, 3.0})
	if err != nil {
		t.Fatalf("recalc failed: %v", err)
	}
	if accu != 7.0 {
		t.Errorf("Expected 7.0, got %f", accu)
	}
}

func TestSumWindow(t *testing.T) {
	sum, err := sumWindow[int8, int32]([]int8{100, 100, 100})
	if err != nil {
		t.Fatalf("sumWindow failed: %v", err)
	}
	if sum != 300 {
		t.Errorf("Expected 300, got %d", sum)
	}

	sum, err = sumWindow[int8, int32](nil)
	if err != nil || sum != 0 {
		t.Errorf("Expected 0 for empty window, got %d, %v", sum, err)
	}
}

func TestSumWindow_Errors(t *testing.T) {
	// 200 does not fit the int8 accumulator.
	_, err := sumWindow[uint8, int8]([]uint8{200})
	if !errors.Is(err, ErrCast) {
		t.Errorf("Expected ErrCast, got %v", err)
	}

	// Each value fits but the sum does not.
	_, err = sumWindow[uint8, uint8]([]uint8{200, 200})
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("Expected ErrOverflow, got %v", err)
	}
}
