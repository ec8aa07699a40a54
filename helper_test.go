package raii

type optional[A any] struct {
	value A
	valid bool
}

type result[A any] struct {
	optional optional[A]
	panicked any
}

// unarySupplierFunc is a function that doesn't take any arguments and returns a value of type R.
type unarySupplierFunc[R any] func() R

func tryUnarySupplier[R any](supply unarySupplierFunc[R]) (res result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res.panicked = r
		}
	}()
	got := supply()
	res.optional = optional[R]{value: got, valid: true}
	return
}

// recorder counts deleter calls and remembers the values they were called with.
type recorder[T any] struct {
	calls []T
}

func (r *recorder[T]) delete(v T) {
	r.calls = append(r.calls, v)
}

func (r *recorder[T]) count() int {
	return len(r.calls)
}
