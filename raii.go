// Package raii provides deterministic, exactly-once resource cleanup primitives for Go.
//
// Features:
//   - Scope-exit guards that can be cancelled (Defer / ScopeGuard).
//   - Unique ownership handles for non-pointer resources such as file descriptors, sockets or opaque IDs
//     (Handle / UniqueHandle), with a caller-chosen sentinel marking "no resource".
//   - Move semantics: ownership is transferred with Move/MoveFrom and the source is left empty.
//   - Leak/Release to hand a resource to code outside the ownership discipline.
//   - LIFO cleanup stacks (Scope) for functions acquiring several resources.
//   - Zero-allocation handles and guards, type-safe by design, powered by Go generics.
//
// Usage:
//
//	fd := raii.OwnedResource(openFD(), closeFD, raii.WithNull(-1))
//	defer fd.Close()
//
//	rollback := raii.ScopeExit(func() { tx.Rollback() })
//	defer rollback.Close()
//	// ...
//	if err := tx.Commit(); err == nil {
//		rollback.Leak() // on success, the rollback never runs.
//	}
//
// Go has no destructors: ownership ends when Close (or Reset) is called, normally through a defer statement
// placed right after acquisition. Handles, guards and scopes are not safe for concurrent use.
//
// See the examples directory for more details.
package raii

import (
	stderrors "errors"
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrRelease is wrapped into every error returned by a failing release function.
var ErrRelease = fmt.Errorf("release failed")

// Owner is the capability shared by every owning type in this package: it either still owns something
// (HasValue) or it does not, and ending ownership runs the cleanup at most once.
type Owner interface {
	// HasValue reports whether a resource or action is still pending.
	HasValue() bool
	// Reset runs the cleanup if one is pending. Release errors are reported through the package logger.
	Reset()
	// Leak gives up ownership without running the cleanup.
	Leak()
	// Close runs the cleanup if one is pending and returns its error.
	Close() error
}

var (
	_ Owner = (*Handle[int])(nil)
	_ Owner = (*Defer)(nil)
	_ Owner = (*Scope)(nil)
)

// noCopy may be embedded into structs which must not be copied after first use. go vet's copylocks check
// reports copies of such structs.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used to report release errors that Reset cannot return.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Logger returns the logger installed with SetLogger. It is a no-op logger by default.
func Logger() *zerolog.Logger {
	return logger.Load()
}

// releaseError marks err as a release failure and adds which owner failed to the message.
func releaseError(err error, format string, args ...any) error {
	return stderrors.Join(ErrRelease, errors.WithMessagef(err, format, args...))
}

func reportDropped(err error, kind string) {
	Logger().Error().Err(err).Str("owner", kind).Msg("raii: cleanup error dropped by Reset")
}
