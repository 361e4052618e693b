// Package movavg computes a Simple Moving Average over a bounded sliding
// window of numeric samples, incrementally where the numeric kind allows it.
//
// The engine is generic over the sample kind T and the accumulator kind A.
// A must be wide enough to hold the sum of WindowSize() samples; choosing it
// is the caller's responsibility. Integer accumulators are maintained
// incrementally with checked arithmetic, float accumulators are recomputed
// from the window on every feed to bound rounding drift.
//
//	avg, err := movavg.New[int32, int64](3)
//	avg.Feed(10) // 10
//	avg.Feed(20) // 15
//	avg.Feed(30) // 20
//	avg.Feed(40) // 30, the 10 fell out of the window
//
// A failed feed leaves the engine in exactly its pre-call state.
package movavg

import "fmt"

// MovAvg is a Simple Moving Average engine over samples of kind T with an
// accumulator of kind A. It is not safe for concurrent use; callers that
// share an engine must synchronize around it.
type MovAvg[T, A Number] struct {
	win    *Window[T]
	accu   A
	policy accuPolicy[T, A]
}

// Option configures a MovAvg at construction time.
type Option func(*options)

type options struct {
	incrementalRecalc bool
}

// WithIncrementalRecalc opts a float accumulator into incremental
// subtract-then-add maintenance instead of the default full recompute.
// This trades bounded rounding error for constant-time feeds and is never
// the default. Integer accumulators are always incremental and ignore it.
func WithIncrementalRecalc() Option {
	return func(o *options) {
		o.incrementalRecalc = true
	}
}

// New creates an empty moving average with the given window size.
// It fails with ErrWindowSize if size is less than 1.
func New[T, A Number](size int, opts ...Option) (*MovAvg[T, A], error) {
	win, err := NewWindow[T](size)
	if err != nil {
		return nil, err
	}
	return fromWindow[T, A](win, opts)
}

// NewInit creates a moving average backed by the caller's slice, whose
// length fixes the window size. The first nrValid entries are taken as
// already-fed values, oldest first, and seed the accumulator.
// It fails with ErrTooManyValues if nrValid exceeds len(items), and with
// ErrOverflow or ErrCast if seeding the accumulator fails.
func NewInit[T, A Number](items []T, nrValid int, opts ...Option) (*MovAvg[T, A], error) {
	win, err := NewWindowFrom(items, nrValid)
	if err != nil {
		return nil, err
	}
	return fromWindow[T, A](win, opts)
}

func fromWindow[T, A Number](win *Window[T], opts []Option) (*MovAvg[T, A], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	policy := policyFor[T, A](o.incrementalRecalc)
	accu, err := policy.init(win.Values())
	if err != nil {
		return nil, fmt.Errorf("seed accumulator: %w", err)
	}
	return &MovAvg[T, A]{
		win:    win,
		accu:   accu,
		policy: policy,
	}, nil
}

// TryFeed pushes a new sample into the window, evicting the oldest one if
// the window is full, and returns the new average. On ErrOverflow or
// ErrCast the engine state is unchanged: the staged window write is rolled
// back and count, cursor and accumulator keep their pre-call values.
func (m *MovAvg[T, A]) TryFeed(value T) (T, error) {
	var zero T

	// The value about to fall out of the window. Until the window is full
	// no slot is evicted and the zero of A stands in.
	var evicted A
	if old, full := m.win.Oldest(); full {
		var err error
		evicted, err = cast[A](old)
		if err != nil {
			return zero, fmt.Errorf("evicted value: %w", err)
		}
	}

	input, err := cast[A](value)
	if err != nil {
		return zero, fmt.Errorf("input value: %w", err)
	}

	newNrItems := m.win.Len()
	if !m.win.Full() {
		newNrItems++
	}
	nrItems, err := cast[A](newNrItems)
	if err != nil {
		return zero, fmt.Errorf("item count: %w", err)
	}

	// Stage the window write. Everything fallible from here on must
	// restore the slot before reporting the error.
	prev := m.win.stage(value)

	newAccu, err := m.policy.recalc(m.accu, evicted, input, m.win.staged())
	if err != nil {
		m.win.unstage(prev)
		return zero, err
	}

	avg, err := cast[T](newAccu / nrItems)
	if err != nil {
		m.win.unstage(prev)
		return zero, fmt.Errorf("average: %w", err)
	}

	m.win.commit()
	m.accu = newAccu
	return avg, nil
}

// Feed pushes a new sample and returns the new average, panicking on any
// TryFeed error. Errors here mean the caller picked numeric kinds too
// narrow for the data, which is a programming error.
func (m *MovAvg[T, A]) Feed(value T) T {
	avg, err := m.TryFeed(value)
	if err != nil {
		panic(fmt.Sprintf("movavg: feed: %v", err))
	}
	return avg
}

// TryGet returns the current average without mutating state. It fails with
// ErrEmpty before the first feed and with ErrCast if the result does not
// fit the sample kind.
func (m *MovAvg[T, A]) TryGet() (T, error) {
	var zero T
	if m.win.Len() == 0 {
		return zero, ErrEmpty
	}
	nrItems, err := cast[A](m.win.Len())
	if err != nil {
		return zero, fmt.Errorf("item count: %w", err)
	}
	avg, err := cast[T](m.accu / nrItems)
	if err != nil {
		return zero, fmt.Errorf("average: %w", err)
	}
	return avg, nil
}

// Get returns the current average, panicking on any TryGet error.
func (m *MovAvg[T, A]) Get() T {
	avg, err := m.TryGet()
	if err != nil {
		panic(fmt.Sprintf("movavg: get: %v", err))
	}
	return avg
}

// Reset empties the engine without reallocating the window. Behavior
// afterwards is indistinguishable from a freshly constructed engine of the
// same size and kinds.
func (m *MovAvg[T, A]) Reset() {
	m.win.Reset()
	m.accu = 0
}

// WindowSize returns the fixed window capacity.
func (m *MovAvg[T, A]) WindowSize() int {
	return m.win.Size()
}

// Len returns the number of samples currently in the window.
func (m *MovAvg[T, A]) Len() int {
	return m.win.Len()
}

// IsReady reports whether the window is fully populated, i.e. the average
// now spans exactly WindowSize() samples.
func (m *MovAvg[T, A]) IsReady() bool {
	return m.win.Full()
}
