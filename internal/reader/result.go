// Package reader holds the stateless artifact readers the dashboard polls.
// Every reader reports through a Result so that callers branch once on
// presence instead of inspecting errors.
package reader

// Result is the outcome of reading one artifact class.
type Result[T any] struct {
	Value   T
	Present bool
	Reason  error // why the artifact was absent; nil when Present
}

// Present wraps a successfully read value.
func Present[T any](v T) Result[T] {
	return Result[T]{Value: v, Present: true}
}

// Absent reports that the artifact could not be used.
func Absent[T any](reason error) Result[T] {
	return Result[T]{Reason: reason}
}

// Or returns the value when present, otherwise fallback.
func (r Result[T]) Or(fallback T) T {
	if r.Present {
		return r.Value
	}
	return fallback
}
