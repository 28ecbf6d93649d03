// Package engineerrors implements the error taxonomy the scheduling engine
// uses to classify failures uniformly across the generator, coordinator,
// and notifier: NotFound, PreconditionFailed, StoreTransient, StorePermanent,
// InvalidInput, Cancelled, InternalInvariant.
//
// Each kind wraps an underlying cause. Is(err, kind) classifies any kind
// without depending on a concrete type; NotFound, StoreTransient,
// StorePermanent, Cancelled, and InternalInvariant also have a dedicated
// Is* helper.
package engineerrors

import (
	"context"
	"errors"
	"fmt"
)

// Kind identifies one taxonomy bucket from the error handling design.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindPreconditionFailed Kind = "precondition_failed"
	KindStoreTransient     Kind = "store_transient"
	KindStorePermanent     Kind = "store_permanent"
	KindInvalidInput       Kind = "invalid_input"
	KindCancelled          Kind = "cancelled"
	KindInternalInvariant  Kind = "internal_invariant"
)

// Error wraps a cause with a taxonomy Kind and optional context describing
// where the failure occurred (garden id, task id, template name, ...).
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New wraps cause with kind and an optional context string. A nil cause
// returns nil, so callers can write `return engineerrors.New(..., err)`
// without a preceding nil check.
func New(kind Kind, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Context: context, Cause: cause}
}

// NotFound wraps cause as a KindNotFound error.
func NotFound(context string, cause error) error {
	return New(KindNotFound, context, cause)
}

// PreconditionFailed wraps cause as a KindPreconditionFailed error.
func PreconditionFailed(context string, cause error) error {
	return New(KindPreconditionFailed, context, cause)
}

// Transient wraps cause as a KindStoreTransient error: a retry-once,
// then-surface failure per the store read/write policy.
func Transient(context string, cause error) error {
	return New(KindStoreTransient, context, cause)
}

// Permanent wraps cause as a KindStorePermanent error: surfaced without
// retry (schema mismatch, integrity violation).
func Permanent(context string, cause error) error {
	return New(KindStorePermanent, context, cause)
}

// InvalidInput wraps cause as a KindInvalidInput error.
func InvalidInput(context string, cause error) error {
	return New(KindInvalidInput, context, cause)
}

// Cancelled wraps cause (typically context.Canceled or
// context.DeadlineExceeded) as a KindCancelled error.
func Cancelled(context string, cause error) error {
	return New(KindCancelled, context, cause)
}

// InternalInvariant wraps cause as a KindInternalInvariant error. Callers
// that detect this at construction time (e.g. the template catalogue's
// init-time validation) should panic rather than propagate it, matching
// the fail-fast-at-construction policy.
func InternalInvariant(context string, cause error) error {
	return New(KindInternalInvariant, context, cause)
}

// Is reports whether err is an *Error of the given kind, unwrapping through
// any wrapper chain.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsTransient reports whether err (or anything it wraps) is a
// KindStoreTransient error.
func IsTransient(err error) bool {
	return Is(err, KindStoreTransient)
}

// IsPermanent reports whether err (or anything it wraps) is a
// KindStorePermanent error.
func IsPermanent(err error) bool {
	return Is(err, KindStorePermanent)
}

// IsNotFound reports whether err (or anything it wraps) is a
// KindNotFound error.
func IsNotFound(err error) bool {
	return Is(err, KindNotFound)
}

// IsCancelled reports whether err (or anything it wraps) represents
// cancellation: either a KindCancelled wrapper or a bare context error.
func IsCancelled(err error) bool {
	if Is(err, KindCancelled) {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInternalInvariant reports whether err (or anything it wraps) is a
// KindInternalInvariant error.
func IsInternalInvariant(err error) bool {
	return Is(err, KindInternalInvariant)
}
