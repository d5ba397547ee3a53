// Package result provides Result[S, F], an immutable wrapper holding either
// a success payload of type S or a failure payload of type F.
//
// Unlike option, result is not opinionated about nil: Success and Failure
// wrap any payload verbatim, sentinel included. The variant is fixed at
// construction; combinators return new instances and the only cross-variant
// edges are Validate (Success to Failure) and Recover (Failure to Success).
//
// Key operations:
// - Success/Failure/FromNullish/FromValidator/FromFallible: construct
// - IsSuccess/IsFailure: query the variant
// - Map/MapFailure/Recover/Validate/Match: transform or collapse
// - Value/Success/Failure/ValueOr/ValueOrCompute/ValueOrSignal: extract
// - RunEffect*/Inspect*: fluent side effects
// - MapAsync/Await: deferred mapping over a channel
//
// Every read that exposes a payload hands the caller a structural deep copy.
package result
