package handle

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// ReleaseFunc destroys a single native handle. It should be bound to whatever parent object
// the native destroy call requires (a Device, an Instance, allocation callbacks, etc.)
type ReleaseFunc[T comparable] func(handle T) error

// ReleaseWith adapts a native destroy function that cannot report failure into a ReleaseFunc
func ReleaseWith[T comparable](destroy func(handle T)) ReleaseFunc[T] {
	return func(handle T) error {
		destroy(handle)
		return nil
	}
}

// Resource is the type-erased view of an Owner. Scope uses it to manage owners of many
// different handle types in a single teardown order.
type Resource interface {
	Kind() Kind
	IsEmpty() bool
	HandleValue() any
	Destroy()
}

type handleForgetter interface {
	forgetHandle()
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527 for details; go vet's copylocks
// check reports copies of any struct holding one.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owner exclusively owns a single native handle and guarantees that its ReleaseFunc is called
// exactly once for every non-null handle it has held. The null handle is the zero value of T.
//
// An Owner must not be copied: use Move or MoveFrom to transfer ownership. An Owner is not safe
// for concurrent mutation; exactly one goroutine may call Reset, Move, MoveFrom, Detach, or Destroy
// on a given Owner at a time.
type Owner[T comparable] struct {
	noCopy noCopy

	logger  *slog.Logger
	kind    Kind
	handle  T
	release ReleaseFunc[T]
}

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

// New wraps a handle that has already been created successfully. New does not validate the
// handle: an Owner should only ever be constructed once the native creation call has reported
// success.
//
// logger - Receives teardown failures. May be nil.
//
// kind - The sort of resource being held, used for diagnostics
//
// handle - The freshly-created native handle
//
// release - The function that destroys handle
func New[T comparable](logger *slog.Logger, kind Kind, handle T, release ReleaseFunc[T]) *Owner[T] {
	return &Owner[T]{
		logger:  defaultLogger(logger),
		kind:    kind,
		handle:  handle,
		release: release,
	}
}

// NewEmpty creates an Owner that holds the null handle. A handle can be attached later with Reset.
func NewEmpty[T comparable](logger *slog.Logger, kind Kind, release ReleaseFunc[T]) *Owner[T] {
	var null T
	return New[T](logger, kind, null, release)
}

// Get returns the current handle, which may be the null handle, without transferring ownership
func (o *Owner[T]) Get() T {
	return o.handle
}

// IsEmpty returns true if this Owner currently holds the null handle
func (o *Owner[T]) IsEmpty() bool {
	var null T
	return o.handle == null
}

func (o *Owner[T]) Kind() Kind {
	return o.kind
}

func (o *Owner[T]) HandleValue() any {
	return o.handle
}

// Reset releases the currently-held handle, if any, and then takes ownership of newHandle.
// Resetting to the handle that is already held is a no-op. Resetting to the null handle
// leaves the Owner empty.
func (o *Owner[T]) Reset(newHandle T) {
	if newHandle == o.handle {
		return
	}

	old := o.handle
	o.releaseHandle(o.release, old)
	o.handle = newHandle
}

// Detach gives up ownership of the current handle without releasing it and returns it. The Owner
// is left empty and the caller becomes responsible for destroying the handle.
func (o *Owner[T]) Detach() T {
	var null T
	handle := o.handle
	o.handle = null
	return handle
}

func (o *Owner[T]) forgetHandle() {
	o.Detach()
}

// Move transfers the handle and release function into a new Owner. This Owner is left empty and no
// release fires for it. The release function is retained here as well, so that the empty Owner may
// be reset to a new handle later.
//
// The returned Owner is not adopted into any Scope this Owner belongs to. The Scope keeps tracking
// the now-empty source, so the caller must Adopt the new Owner or Destroy it directly.
func (o *Owner[T]) Move() *Owner[T] {
	dest := &Owner[T]{
		logger:  o.logger,
		kind:    o.kind,
		release: o.release,
	}
	dest.handle = o.Detach()
	return dest
}

// MoveFrom releases the handle this Owner currently holds, if any, and then takes the handle and
// release function from src. src is left empty and no release fires for the handle it gave up.
// Moving from this Owner into itself is a no-op, and moving from nil is equivalent to Destroy.
func (o *Owner[T]) MoveFrom(src *Owner[T]) {
	if src == o {
		return
	}
	if src == nil {
		o.Destroy()
		return
	}

	oldHandle, oldRelease := o.handle, o.release

	o.kind = src.kind
	o.release = src.release
	o.handle = src.Detach()

	o.releaseHandle(oldRelease, oldHandle)
}

// Destroy releases the held handle, if any, and leaves the Owner empty. Destroying an empty Owner
// does nothing. Failures from the release function, including panics, are logged and never
// propagated.
func (o *Owner[T]) Destroy() {
	var null T
	o.Reset(null)
}

func (o *Owner[T]) releaseHandle(release ReleaseFunc[T], handle T) {
	var null T
	if handle == null {
		return
	}

	o.logger.Debug("Owner::Destroy", slog.String("kind", o.kind.String()))

	err := callRelease(release, handle)
	if err != nil {
		o.logger.LogAttrs(context.Background(), slog.LevelError, "failed to release handle",
			slog.String("kind", o.kind.String()),
			slog.String("handle", fmt.Sprintf("%v", handle)),
			slog.Any("error", err),
		)
	}
}

func callRelease[T comparable](release ReleaseFunc[T], handle T) (err error) {
	if release == nil {
		return errors.New("owner has no release function")
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("release panicked: %v", r)
		}
	}()

	return release(handle)
}
