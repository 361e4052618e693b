package movavg

// accuPolicy is the accumulator maintenance strategy for a concrete
// accumulator kind A. Integer kinds update the running sum incrementally
// with checked arithmetic; float kinds recompute the sum from the window
// contents on every feed so rounding error cannot drift across updates.
// The policy is picked once at construction, never per feed.
type accuPolicy[T, A Number] interface {
	// recalc produces the new accumulator for a feed. The window slice is
	// the already-staged contents, valid-count entries long.
	recalc(accu, evicted, input A, window []T) (A, error)

	// init seeds the accumulator from pre-populated window contents.
	init(window []T) (A, error)
}

// incrementalAccu subtracts the evicted value from the running sum and adds
// the new one. The subtraction is exact by invariant: the accumulator is
// the sum of the window contents and the evicted value is one of them.
// Only the final add can overflow.
type incrementalAccu[T, A Number] struct{}

func (incrementalAccu[T, A]) recalc(accu, evicted, input A, _ []T) (A, error) {
	return checkedAdd(accu-evicted, input)
}

func (incrementalAccu[T, A]) init(window []T) (A, error) {
	return sumWindow[T, A](window)
}

// recomputeAccu ignores the scalar arguments and re-sums the window.
type recomputeAccu[T, A Number] struct{}

func (recomputeAccu[T, A]) recalc(_, _, _ A, window []T) (A, error) {
	return sumWindow[T, A](window)
}

func (recomputeAccu[T, A]) init(window []T) (A, error) {
	return sumWindow[T, A](window)
}

// policyFor selects the maintenance strategy for the accumulator kind.
// forceIncremental opts a float accumulator into the faster unchecked
// incremental mode at the cost of unbounded rounding drift.
func policyFor[T, A Number](forceIncremental bool) accuPolicy[T, A] {
	if isFractional[A]() && !forceIncremental {
		return recomputeAccu[T, A]{}
	}
	return incrementalAccu[T, A]{}
}

// sumWindow folds the window contents into the accumulator kind, checking
// every cast and every add.
func sumWindow[T, A Number](window []T) (A, error) {
	var sum A
	for _, v := range window {
		a, err := cast[A](v)
		if err != nil {
			return 0, err
		}
		sum, err = checkedAdd(sum, a)
		if err != nil {
			return 0, err
		}
	}
	return sum, nil
}
