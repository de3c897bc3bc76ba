package app

// Window is a fixed-capacity sequence that drops its oldest element when a
// push would exceed capacity.
type Window[T any] struct {
	items    []T
	capacity int
}

// NewWindow returns an empty window holding at most capacity items.
// A capacity below 1 is treated as 1.
func NewWindow[T any](capacity int) *Window[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Window[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push appends v and returns the evicted element, if any.
func (w *Window[T]) Push(v T) (evicted T, ok bool) {
	if len(w.items) == w.capacity {
		evicted, ok = w.items[0], true
		copy(w.items, w.items[1:])
		w.items = w.items[:len(w.items)-1]
	}
	w.items = append(w.items, v)
	return evicted, ok
}

// Len reports the number of items held.
func (w *Window[T]) Len() int { return len(w.items) }

// Cap reports the capacity.
func (w *Window[T]) Cap() int { return w.capacity }

// Items returns a copy of the contents, oldest first.
func (w *Window[T]) Items() []T {
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}

// Last returns the newest item.
func (w *Window[T]) Last() (v T, ok bool) {
	if len(w.items) == 0 {
		return v, false
	}
	return w.items[len(w.items)-1], true
}
