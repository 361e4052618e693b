package movavg

import "fmt"

// Window is a fixed-capacity circular buffer holding the last Size() fed
// values. The cursor marks the next slot to overwrite, which is also the
// oldest populated slot once the window is full.
type Window[T Number] struct {
	items   []T
	nrItems int
	cursor  int
}

// NewWindow creates an empty window with the given capacity.
func NewWindow[T Number](size int) (*Window[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("window size %d: %w", size, ErrWindowSize)
	}
	return &Window[T]{items: make([]T, size)}, nil
}

// NewWindowFrom creates a window backed by the caller's slice. The slice
// length fixes the capacity and no further allocation happens, so a
// caller-owned fixed-size array can serve as zero-allocation storage.
// The first nrValid entries are treated as already-fed values, oldest first.
func NewWindowFrom[T Number](items []T, nrValid int) (*Window[T], error) {
	if len(items) < 1 {
		return nil, fmt.Errorf("window size %d: %w", len(items), ErrWindowSize)
	}
	if nrValid > len(items) {
		return nil, fmt.Errorf("%d valid items in window of %d: %w",
			nrValid, len(items), ErrTooManyValues)
	}
	return &Window[T]{
		items:   items,
		nrItems: nrValid,
		cursor:  nrValid % len(items),
	}, nil
}

// Size returns the fixed capacity of the window.
func (w *Window[T]) Size() int {
	return len(w.items)
}

// Len returns the number of values currently held, saturating at Size().
func (w *Window[T]) Len() int {
	return w.nrItems
}

// Full reports whether the window holds Size() values.
func (w *Window[T]) Full() bool {
	return w.nrItems == len(w.items)
}

// Oldest returns the value that the next Insert would evict. The second
// return value is false until the window is full; before that no real value
// occupies the cursor slot and the zero of T stands in for it.
func (w *Window[T]) Oldest() (T, bool) {
	if !w.Full() {
		var zero T
		return zero, false
	}
	return w.items[w.cursor], true
}

// Insert writes value at the cursor, evicting the oldest value if the
// window is full, and advances the cursor.
func (w *Window[T]) Insert(value T) {
	w.stage(value)
	w.commit()
}

// Reset logically empties the window without touching the stored values.
// Stale data stays in place but is unreachable through Len and Values.
func (w *Window[T]) Reset() {
	w.nrItems = 0
	w.cursor = 0
}

// Values returns the valid window contents in slot order. The slice aliases
// the internal storage and must not be mutated by the caller.
func (w *Window[T]) Values() []T {
	return w.items[:w.nrItems]
}

// stage writes value at the cursor without committing the insert and
// returns the previous slot content so a failed operation can roll back.
func (w *Window[T]) stage(value T) T {
	prev := w.items[w.cursor]
	w.items[w.cursor] = value
	return prev
}

// unstage restores a slot overwritten by stage.
func (w *Window[T]) unstage(prev T) {
	w.items[w.cursor] = prev
}

// commit finalizes a staged insert: the cursor advances and the item count
// saturates at the capacity.
func (w *Window[T]) commit() {
	if w.nrItems < len(w.items) {
		w.nrItems++
	}
	w.cursor = (w.cursor + 1) % len(w.items)
}

// staged returns the valid window contents as they will look once a staged
// insert at the cursor is committed, growing the valid prefix by one slot
// while the window is still filling.
func (w *Window[T]) staged() []T {
	n := w.nrItems
	if n < len(w.items) {
		n++
	}
	return w.items[:n]
}
