package raii

import "errors"

// Scope owns a stack of cleanups and runs them in reverse order of registration, like several defer
// statements in one function. A Scope can be returned from constructors which acquire several resources:
//
//	var s raii.Scope
//	defer s.Close() // any failure before Leak releases everything acquired so far.
//	f := raii.Take(&s, openFile())
//	s.Defer(func() { conn.Close() })
//	...
//	s.Leak() // on success, hands every resource to the caller.
//
// The zero value is an empty scope. Scopes must not be copied; use MoveFrom.
type Scope struct {
	_      noCopy
	owners []Owner
}

// Adopt pushes o onto the scope. The scope becomes responsible for closing it.
func (s *Scope) Adopt(o Owner) {
	s.owners = append(s.owners, o)
}

// Defer pushes an action onto the scope.
func (s *Scope) Defer(action func()) {
	d := ScopeExit(action)
	s.Adopt(&d)
}

// DeferErr pushes an action which can fail onto the scope.
func (s *Scope) DeferErr(action func() error) {
	d := ScopeExitErr(action)
	s.Adopt(&d)
}

// Take moves h into a handle owned by s and returns it. h is left empty.
func Take[T comparable](s *Scope, h *Handle[T]) *Handle[T] {
	owned := new(Handle[T])
	owned.MoveFrom(h)
	s.Adopt(owned)
	return owned
}

// Len returns the number of owners on the scope.
func (s *Scope) Len() int {
	return len(s.owners)
}

// HasValue reports whether the scope holds any owner.
func (s *Scope) HasValue() bool {
	return len(s.owners) > 0
}

// Close closes every owner, most recently added first, and returns the joined errors. Owners added while
// closing are closed too. Afterwards the scope is empty and can be reused.
func (s *Scope) Close() error {
	var errs []error
	for len(s.owners) > 0 {
		last := len(s.owners) - 1
		o := s.owners[last]
		s.owners[last] = nil
		s.owners = s.owners[:last]
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.owners = nil
	return errors.Join(errs...)
}

// Reset closes every owner like Close. Errors are logged, see SetLogger.
func (s *Scope) Reset() {
	if err := s.Close(); err != nil {
		reportDropped(err, "scope")
	}
}

// Leak drops every owner without closing any of them.
func (s *Scope) Leak() {
	clear(s.owners)
	s.owners = nil
}

// MoveFrom transfers src's owners to s. Owners already on s are closed first (errors are logged). src is
// left empty. Moving a scope into itself does nothing.
func (s *Scope) MoveFrom(src *Scope) {
	if s == src {
		return
	}
	s.Reset()
	s.owners = src.owners
	src.owners = nil
}
