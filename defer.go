package raii

// Defer runs an action exactly once when ownership ends, unless it was cancelled with Leak. It is the
// action-only counterpart of Handle: there is no payload, only the pending action.
//
// Defer differs from the defer statement in that it is a value: it can be cancelled, run early, or moved to
// another owner that outlives the current function.
//
// The zero value is pending with no action. Defers must not be copied; use Move or MoveFrom.
type Defer struct {
	_      noCopy
	state  Void
	action func()
	failed func() error
}

// ScopeGuard is an alias of Defer.
type ScopeGuard = Defer

// ScopeExit returns a Defer which runs action when it is closed. A nil action does nothing.
func ScopeExit(action func()) Defer {
	return Defer{action: action}
}

// ScopeExitErr is like ScopeExit for actions which can fail. The error is returned by Close.
func ScopeExitErr(action func() error) Defer {
	return Defer{failed: action}
}

// HasValue reports whether the action is still pending.
func (d *Defer) HasValue() bool {
	return d.state.HasValue()
}

// Close runs the action if it is still pending and returns its error.
func (d *Defer) Close() error {
	if !d.state.HasValue() {
		return nil
	}
	d.state.Reset()
	switch {
	case d.failed != nil:
		if err := d.failed(); err != nil {
			return releaseError(err, "running deferred action")
		}
	case d.action != nil:
		d.action()
	}
	return nil
}

// Reset runs the action if it is still pending. An error is logged, see SetLogger.
func (d *Defer) Reset() {
	if err := d.Close(); err != nil {
		reportDropped(err, "defer")
	}
}

// Leak cancels the action.
func (d *Defer) Leak() {
	d.state.Reset()
}

// MoveFrom transfers src's pending action to d. A pending action of d runs first. src is left cancelled.
// Moving a Defer into itself does nothing.
func (d *Defer) MoveFrom(src *Defer) {
	if d == src {
		return
	}
	d.Reset()
	d.state = src.state
	d.action = src.action
	d.failed = src.failed
	src.state.Reset()
}

// Move returns a new Defer owning d's pending action and cancels d.
func (d *Defer) Move() Defer {
	state := d.state
	d.state.Reset()
	return Defer{
		state:  state,
		action: d.action,
		failed: d.failed,
	}
}
