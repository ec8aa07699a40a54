package raii

// Handle is the unique owner of a single resource value, for example a file descriptor, a socket or an
// opaque ID. It pairs a NullableWrapper with a release function and guarantees the release function runs at
// most once per owned value, no matter how often ownership is moved.
//
// The zero value owns nothing. Handles must not be copied; use Move or MoveFrom to transfer ownership.
type Handle[T comparable] struct {
	_       noCopy
	value   NullableWrapper[T]
	deleter func(T)
	closer  func(T) error
}

// UniqueHandle is an alias of Handle.
type UniqueHandle[T comparable] = Handle[T]

// Option configures a Handle at construction time.
type Option[T comparable] func(*handleOptions[T])

type handleOptions[T comparable] struct {
	null T
}

// WithNull sets the sentinel value which means "no resource". The default is the zero value of T, so use
// WithNull(-1) for descriptors where 0 is a valid resource.
func WithNull[T comparable](null T) Option[T] {
	return func(o *handleOptions[T]) {
		o.null = null
	}
}

func buildNullable[T comparable](value T, opts []Option[T]) NullableWrapper[T] {
	var o handleOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	return NewNullable(value, o.null)
}

// OwnedResource returns a Handle owning value which calls deleter(value) when ownership ends. A nil deleter
// does nothing. Owning the sentinel value is the same as owning nothing.
func OwnedResource[T comparable](value T, deleter func(T), opts ...Option[T]) Handle[T] {
	return Handle[T]{
		value:   buildNullable(value, opts),
		deleter: deleter,
	}
}

// OwnedCloser is like OwnedResource for release functions which can fail. The error is returned by Close.
func OwnedCloser[T comparable](value T, closer func(T) error, opts ...Option[T]) Handle[T] {
	return Handle[T]{
		value:  buildNullable(value, opts),
		closer: closer,
	}
}

// OwnedValue returns a Handle owning value without any release function. It is useful as the target of
// MoveFrom or to track presence with move semantics.
func OwnedValue[T comparable](value T, opts ...Option[T]) Handle[T] {
	return Handle[T]{value: buildNullable(value, opts)}
}

// HasValue reports whether the handle currently owns a resource.
func (h *Handle[T]) HasValue() bool {
	return h.value.HasValue()
}

// Get returns the owned value. On an empty handle it returns the sentinel.
func (h *Handle[T]) Get() T {
	return *h.value.Value()
}

// Ptr returns a pointer to the owned value. The pointer is only meaningful while the handle has a value.
func (h *Handle[T]) Ptr() *T {
	return h.value.Value()
}

// Close releases the owned resource, if any, and returns the release error. After Close the handle is empty
// and further calls are no-ops.
func (h *Handle[T]) Close() error {
	if !h.value.HasValue() {
		return nil
	}
	v := *h.value.Value()
	h.value.Reset()
	return h.release(v)
}

// Reset releases the owned resource, if any. A release error is logged, see SetLogger.
func (h *Handle[T]) Reset() {
	if err := h.Close(); err != nil {
		reportDropped(err, "handle")
	}
}

// Leak gives up ownership without releasing the resource.
func (h *Handle[T]) Leak() {
	h.value.Reset()
}

// Release gives up ownership without releasing the resource and returns it. The caller becomes responsible
// for its cleanup.
func (h *Handle[T]) Release() T {
	v := *h.value.Value()
	h.value.Reset()
	return v
}

// MoveFrom transfers ownership from src to h. Whatever h owned before is released first (errors are logged).
// src is left empty. Moving a handle into itself does nothing.
func (h *Handle[T]) MoveFrom(src *Handle[T]) {
	if h == src {
		return
	}
	h.Reset()
	h.value = src.value
	h.deleter = src.deleter
	h.closer = src.closer
	src.value.Reset()
}

// Move returns a new Handle owning h's resource and leaves h empty.
func (h *Handle[T]) Move() Handle[T] {
	value := h.value
	h.value.Reset()
	return Handle[T]{
		value:   value,
		deleter: h.deleter,
		closer:  h.closer,
	}
}

func (h *Handle[T]) release(v T) error {
	switch {
	case h.closer != nil:
		if err := h.closer(v); err != nil {
			return releaseError(err, "releasing handle (%v)", v)
		}
	case h.deleter != nil:
		h.deleter(v)
	}
	return nil
}
