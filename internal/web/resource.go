package web

// Status is the lifecycle of a remotely fetched value.
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Resource is the uniform shape every view uses for remote data: either
// still pending, ready with data, or failed with an error. Templates
// branch on it instead of each view carrying its own loading/error flags.
type Resource[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Ready wraps a fetched value.
func Ready[T any](data T) Resource[T] {
	return Resource[T]{Status: StatusReady, Data: data}
}

// Errored wraps a fetch failure.
func Errored[T any](err error) Resource[T] {
	return Resource[T]{Status: StatusError, Err: err}
}

// Pending marks a value still being resolved.
func Pending[T any]() Resource[T] {
	return Resource[T]{Status: StatusPending}
}

// IsReady reports whether data is available.
func (r Resource[T]) IsReady() bool { return r.Status == StatusReady }

// IsError reports whether the fetch failed.
func (r Resource[T]) IsError() bool { return r.Status == StatusError }

// IsPending reports whether the fetch is unresolved.
func (r Resource[T]) IsPending() bool { return r.Status == StatusPending }

// Message returns the display text for a failed fetch.
func (r Resource[T]) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
