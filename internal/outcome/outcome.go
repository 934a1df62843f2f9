// Package outcome provides the result type used by every validator in the
// booking core.  An Outcome is either a Success carrying a value or a Failure
// carrying one or more structured records.  Validators return Outcomes instead
// of errors so that callers receive every rule violation in a single response
// rather than the first one encountered.
package outcome

import "context"

// Code identifies the business rule a failure violated.  Codes are stable
// identifiers; upstream layers translate them into user-facing messages.
type Code string

const (
	MissingRequiredData    Code = "MISSING_REQUIRED_DATA"
	InvalidSequence        Code = "INVALID_SEQUENCE"
	ValueNotPositive       Code = "VALUE_NOT_POSITIVE"
	ValueOutOfRange        Code = "VALUE_OUT_OF_RANGE"
	ValueNotInteger        Code = "VALUE_NOT_INTEGER"
	InvalidColumnFormat    Code = "INVALID_COLUMN_FORMAT"
	BookingConflict        Code = "BOOKING_CONFLICT"
	ReservationDataMissing Code = "RESERVATION_DATA_MISSING"
	DateCannotBePast       Code = "DATE_CANNOT_BE_PAST"
	DateNotAfterLimit      Code = "DATE_NOT_AFTER_LIMIT"
	DateNotBeforeLimit     Code = "DATE_NOT_BEFORE_LIMIT"
	DateRangeTooLarge      Code = "DATE_RANGE_TOO_LARGE"
)

// FailureRecord describes a single rule violation.  Details carries the
// offending values keyed by name so callers can render precise messages.
type FailureRecord struct {
	Code    Code
	Details map[string]any
}

// NewFailure builds a FailureRecord from a code and alternating key/value
// detail pairs.  Keys must be strings; a trailing odd argument is ignored.
func NewFailure(code Code, kv ...any) FailureRecord {
	rec := FailureRecord{Code: code}
	if len(kv) >= 2 {
		rec.Details = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				continue
			}
			rec.Details[key] = kv[i+1]
		}
	}
	return rec
}

// Outcome is the two-variant result of a validation.  The zero value is a
// Success carrying T's zero value; use the constructors in practice.  A
// Success never carries records and a Failure always carries at least one.
type Outcome[T any] struct {
	value T
	errs  []FailureRecord
}

// Success wraps a validated value.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Failure wraps one or more failure records.  Calling it with no records
// violates the non-empty invariant and panics: a Failure that cannot say what
// failed is a programming error, not a representable state.
func Failure[T any](records ...FailureRecord) Outcome[T] {
	if len(records) == 0 {
		panic("outcome: Failure requires at least one record")
	}
	return Outcome[T]{errs: records}
}

// IsSuccess reports whether the outcome carries a value.
func (o Outcome[T]) IsSuccess() bool { return len(o.errs) == 0 }

// IsFailure reports whether the outcome carries failure records.
func (o Outcome[T]) IsFailure() bool { return len(o.errs) > 0 }

// Value returns the success value and whether the outcome is a Success.
func (o Outcome[T]) Value() (T, bool) {
	if o.IsFailure() {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MustValue returns the success value and panics on a Failure.  Reserved for
// call sites that have already established success (tests, trusted hydration).
func (o Outcome[T]) MustValue() T {
	if o.IsFailure() {
		panic("outcome: MustValue called on a Failure")
	}
	return o.value
}

// Errors returns a copy of the failure records, empty for a Success.
func (o Outcome[T]) Errors() []FailureRecord {
	if len(o.errs) == 0 {
		return nil
	}
	out := make([]FailureRecord, len(o.errs))
	copy(out, o.errs)
	return out
}

// Tap runs f with the success value and returns the outcome unchanged.  On a
// Failure f is not called.  Intended for logging or metrics hooks that must
// not break a validation chain.
func (o Outcome[T]) Tap(f func(T)) Outcome[T] {
	if o.IsSuccess() {
		f(o.value)
	}
	return o
}

// Map transforms the success value, passing failures through untouched.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if o.IsFailure() {
		return Outcome[U]{errs: o.errs}
	}
	return Success(f(o.value))
}

// FlatMap chains a dependent validation.  The chain short-circuits on the
// first Failure; use Combine when every input must be checked regardless.
func FlatMap[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if o.IsFailure() {
		return Outcome[U]{errs: o.errs}
	}
	return f(o.value)
}

// Fold collapses the outcome to a plain value through one of two functions.
func Fold[T, R any](o Outcome[T], onSuccess func(T) R, onFailure func([]FailureRecord) R) R {
	if o.IsFailure() {
		return onFailure(o.Errors())
	}
	return onSuccess(o.value)
}

// MapCtx transforms the success value through a function that may touch the
// outside world.  An error from f is returned to the caller as-is: only
// business-rule rejections travel as Failures, unexpected errors stay errors.
func MapCtx[T, U any](ctx context.Context, o Outcome[T], f func(context.Context, T) (U, error)) (Outcome[U], error) {
	if o.IsFailure() {
		return Outcome[U]{errs: o.errs}, nil
	}
	v, err := f(ctx, o.value)
	if err != nil {
		return Outcome[U]{}, err
	}
	return Success(v), nil
}

// FlatMapCtx is MapCtx for transforms that themselves return an Outcome.
func FlatMapCtx[T, U any](ctx context.Context, o Outcome[T], f func(context.Context, T) (Outcome[U], error)) (Outcome[U], error) {
	if o.IsFailure() {
		return Outcome[U]{errs: o.errs}, nil
	}
	return f(ctx, o.value)
}

// Combine aggregates a sequence of outcomes.  It succeeds with the unwrapped
// values in input order only when every input succeeds; otherwise it fails
// with the concatenation, in input order, of every failing input's records.
// Unlike FlatMap it never short-circuits, so a caller gets all problems at
// once.
func Combine[T any](outcomes []Outcome[T]) Outcome[[]T] {
	var errs []FailureRecord
	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if o.IsFailure() {
			errs = append(errs, o.errs...)
			continue
		}
		values = append(values, o.value)
	}
	if len(errs) > 0 {
		return Outcome[[]T]{errs: errs}
	}
	return Success(values)
}

// Combine2 aggregates two outcomes of different types, applying f only when
// both succeed.  Failures from both inputs are concatenated in input order.
func Combine2[A, B, R any](a Outcome[A], b Outcome[B], f func(A, B) R) Outcome[R] {
	errs := append(a.Errors(), b.Errors()...)
	if len(errs) > 0 {
		return Outcome[R]{errs: errs}
	}
	return Success(f(a.value, b.value))
}

// Combine3 is Combine2 for three inputs.
func Combine3[A, B, C, R any](a Outcome[A], b Outcome[B], c Outcome[C], f func(A, B, C) R) Outcome[R] {
	errs := append(append(a.Errors(), b.Errors()...), c.Errors()...)
	if len(errs) > 0 {
		return Outcome[R]{errs: errs}
	}
	return Success(f(a.value, b.value, c.value))
}
