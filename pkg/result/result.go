package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/kee-oth/scenario/internal/deep"
)

// Result holds either a success payload of type S or a failure payload of
// type F. The variant is fixed at construction.
type Result[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   S
	failure   F
	isSuccess bool
}

// Success wraps value as the Success variant. Any payload is accepted,
// nil included.
func Success[S, F any](value S) Result[S, F] {
	return Result[S, F]{
		success:   value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps value as the Failure variant.
func Failure[S, F any](value F) Result[S, F] {
	return Result[S, F]{
		failure:   value,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromNullish wraps value as Success unless it is the nil sentinel, in which
// case failureValue becomes the Failure payload.
func FromNullish[S, F any](value S, failureValue F) Result[S, F] {
	if deep.IsNil(value) {
		return Failure[S, F](failureValue)
	}
	return Success[S, F](value)
}

// FromValidator wraps candidate as Success when the predicate accepts it,
// else Failure(failureValue).
func FromValidator[S, F any](predicate func(candidate S) bool, candidate S, failureValue F) Result[S, F] {
	if predicate(candidate) {
		return Success[S, F](candidate)
	}
	return Failure[S, F](failureValue)
}

// FromFallible runs thunk and wraps its result as Success. An error or a
// panic produces Failure(failureValue); the original signal is discarded.
func FromFallible[S, F any](thunk func() (S, error), failureValue F) (r Result[S, F]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Failure[S, F](failureValue)
		}
	}()

	value, err := thunk()
	if err != nil {
		return Failure[S, F](failureValue)
	}
	return Success[S, F](value)
}

// IsSuccess returns true if the Result holds a success payload.
func (r Result[S, F]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true if the Result holds a failure payload.
func (r Result[S, F]) IsFailure() bool {
	return !r.isSuccess
}

// Success returns a deep copy of the success payload and whether the Result
// is that variant. The wrong channel yields (zero, false), never a panic.
func (r Result[S, F]) Success() (S, bool) {
	if !r.isSuccess {
		var zero S
		return zero, false
	}
	return deep.Clone(r.success), true
}

// Failure returns a deep copy of the failure payload and whether the Result
// is that variant.
func (r Result[S, F]) Failure() (F, bool) {
	if r.isSuccess {
		var zero F
		return zero, false
	}
	return deep.Clone(r.failure), true
}

// Value returns a deep copy of whichever payload the Result holds, erased to
// any. Escape hatch only; prefer the narrowed accessors.
func (r Result[S, F]) Value() any {
	if r.isSuccess {
		return deep.Clone(r.success)
	}
	return deep.Clone(r.failure)
}

// ValueOr returns a deep copy of the success payload, or fallback verbatim
// on Failure.
func (r Result[S, F]) ValueOr(fallback S) S {
	if r.isSuccess {
		return deep.Clone(r.success)
	}
	return fallback
}

// ValueOrCompute is ValueOr with a lazy fallback; thunk runs only on Failure.
func (r Result[S, F]) ValueOrCompute(thunk func() S) S {
	if r.isSuccess {
		return deep.Clone(r.success)
	}
	return thunk()
}

// ValueOrSignal returns a deep copy of the success payload. On Failure it
// invokes handler with a copy of the receiver; the handler is expected to
// panic or otherwise never return. If it does return, the zero value comes
// back.
func (r Result[S, F]) ValueOrSignal(handler func(Result[S, F])) S {
	if r.isSuccess {
		return deep.Clone(r.success)
	}

	handler(r.clone())
	var zero S
	return zero
}

// OrSignal is ValueOrSignal keeping the Result: on Failure the handler is
// invoked under the same never-return contract, on Success the receiver
// passes through untouched.
func (r Result[S, F]) OrSignal(handler func(Result[S, F])) Result[S, F] {
	if !r.isSuccess {
		handler(r.clone())
	}
	return r
}

// CreatedAt returns the instance creation time (UTC).
func (r Result[S, F]) CreatedAt() time.Time {
	return r.createdAt
}

// Id returns the instance identity stamped at construction.
func (r Result[S, F]) Id() uuid.UUID {
	return r.id
}

// clone copies the receiver with a deep-copied payload, same id and
// createdAt.
func (r Result[S, F]) clone() Result[S, F] {
	c := r
	if r.isSuccess {
		c.success = deep.Clone(r.success)
	} else {
		c.failure = deep.Clone(r.failure)
	}
	return c
}

// failureFrom re-types a Failure across a success-channel map, keeping the
// payload, id and createdAt of the original.
func failureFrom[S, Out, F any](from Result[S, F]) Result[Out, F] {
	return Result[Out, F]{
		failure:   from.failure,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// successFrom re-types a Success across a failure-channel map.
func successFrom[S, F, Out any](from Result[S, F]) Result[S, Out] {
	return Result[S, Out]{
		success:   from.success,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}
