package result

import "github.com/kee-oth/scenario/internal/deep"

// Map transforms the success payload; Failure passes through with fn never
// invoked. The failure type parameter is preserved.
func Map[S, F, Out any](r Result[S, F], fn func(value S) Out) Result[Out, F] {
	if r.isSuccess {
		return Success[Out, F](fn(deep.Clone(r.success)))
	}
	return failureFrom[S, Out](r)
}

// Map is the same-type form of the package-level Map.
func (r Result[S, F]) Map(fn func(value S) S) Result[S, F] {
	return Map(r, fn)
}

// MapFailure transforms the failure payload; Success passes through with fn
// never invoked. The success type parameter is preserved.
func MapFailure[S, F, Out any](r Result[S, F], fn func(value F) Out) Result[S, Out] {
	if r.isSuccess {
		return successFrom[S, F, Out](r)
	}
	return Failure[S, Out](fn(deep.Clone(r.failure)))
}

// MapFailure is the same-type form of the package-level MapFailure.
func (r Result[S, F]) MapFailure(fn func(value F) F) Result[S, F] {
	return MapFailure(r, fn)
}

// Recover escapes Failure to the success channel unconditionally, feeding fn
// a deep copy of the failure payload. Success passes through, fn never
// invoked. Partial recovery is not offered; compose the check inside fn or
// use Validate afterwards.
func (r Result[S, F]) Recover(fn func(failure F) S) Result[S, F] {
	if r.isSuccess {
		return r
	}
	return Success[S, F](fn(deep.Clone(r.failure)))
}

// Validate keeps a Success only while the predicate holds; a failing
// predicate demotes it to Failure(failureValue). Failure passes through,
// predicate unasked.
func (r Result[S, F]) Validate(predicate func(value S) bool, failureValue F) Result[S, F] {
	if !r.isSuccess {
		return r
	}
	if predicate(deep.Clone(r.success)) {
		return r
	}
	return Failure[S, F](failureValue)
}

// Match collapses the Result to a plain value, routing each variant through
// its handler with a deep copy of the payload.
func Match[S, F, Out any](r Result[S, F], onSuccess func(value S) Out, onFailure func(value F) Out) Out {
	if r.isSuccess {
		return onSuccess(deep.Clone(r.success))
	}
	return onFailure(deep.Clone(r.failure))
}
