package raii

// Presence is the minimal nullable capability: something is either present or not, and can be dropped.
type Presence interface {
	HasValue() bool
	Reset()
}

// Nullable is a Presence that also exposes its payload.
type Nullable[T any] interface {
	Presence
	// Value returns a pointer to the stored payload. Calling it while empty is a contract violation; the
	// pointee is then unspecified.
	Value() *T
}

var (
	_ Nullable[int] = (*NullableWrapper[int])(nil)
	_ Presence      = (*Void)(nil)
)

// NullableWrapper stores a value together with a sentinel ("null") value of the same type. The wrapper is
// empty when it was never set, after Reset, or when the stored value equals the sentinel.
//
// The zero value is empty and uses the zero value of T as its sentinel.
type NullableWrapper[T comparable] struct {
	value T
	null  T
	set   bool
}

// NewNullable wraps value, treating null as "no value". Wrapping the sentinel itself yields an empty wrapper.
func NewNullable[T comparable](value, null T) NullableWrapper[T] {
	return NullableWrapper[T]{
		value: value,
		null:  null,
		set:   value != null,
	}
}

// EmptyNullable returns an empty wrapper using null as its sentinel.
func EmptyNullable[T comparable](null T) NullableWrapper[T] {
	return NullableWrapper[T]{value: null, null: null}
}

// HasValue reports whether the wrapper holds a value different from the sentinel.
func (w *NullableWrapper[T]) HasValue() bool {
	return w.set && w.value != w.null
}

// Value returns a pointer to the stored value. While empty it points at the sentinel.
func (w *NullableWrapper[T]) Value() *T {
	return &w.value
}

// Reset sets the stored value back to the sentinel.
func (w *NullableWrapper[T]) Reset() {
	w.value = w.null
	w.set = false
}

// Sentinel returns the value which marks the wrapper as empty.
func (w *NullableWrapper[T]) Sentinel() T {
	return w.null
}

// Void is the nullable used for action-only owners. It carries no payload: present means "the action has not
// run yet". The zero value is present.
type Void struct {
	done bool
}

// HasValue reports whether the action is still pending.
func (v *Void) HasValue() bool {
	return !v.done
}

// Reset marks the action as no longer pending.
func (v *Void) Reset() {
	v.done = true
}
