package result

import "github.com/kee-oth/scenario/internal/deep"

// RunEffect invokes fn with a copy of the receiver, whatever the variant,
// and returns the receiver for further chaining.
func (r Result[S, F]) RunEffect(fn func(r Result[S, F])) Result[S, F] {
	fn(r.clone())
	return r
}

// RunEffectWhenSuccess invokes fn with a deep copy of the success payload on
// Success only.
func (r Result[S, F]) RunEffectWhenSuccess(fn func(value S)) Result[S, F] {
	if r.isSuccess {
		fn(deep.Clone(r.success))
	}
	return r
}

// RunEffectWhenFailure invokes fn with a deep copy of the failure payload on
// Failure only.
func (r Result[S, F]) RunEffectWhenFailure(fn func(value F)) Result[S, F] {
	if !r.isSuccess {
		fn(deep.Clone(r.failure))
	}
	return r
}

// Inspect invokes fn with a copy of the receiver when condition is true.
func (r Result[S, F]) Inspect(condition bool, fn func(r Result[S, F])) Result[S, F] {
	if condition {
		fn(r.clone())
	}
	return r
}

// InspectFunc is Inspect with a lazily evaluated condition.
func (r Result[S, F]) InspectFunc(condition func() bool, fn func(r Result[S, F])) Result[S, F] {
	if condition() {
		fn(r.clone())
	}
	return r
}
