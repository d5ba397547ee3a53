// Package option provides Option[V], an immutable wrapper holding either a
// single value (Present) or nothing at all (Absent).
//
// Absence is the nil sentinel only: a nil interface value or a typed nil
// pointer. Zero values like 0, "" and false wrap as Present, as do nil or
// empty containers. Every combinator returns a new Option; none mutates the
// receiver, so instances are safe to share between goroutines.
//
// Key operations:
// - Some/None/From/FromFallible: construct an Option
// - IsPresent/IsAbsent: query the variant
// - Map/Recover/Validate/Reduce: transform or collapse
// - Value/ValueOr/ValueOrCompute/ValueOrSignal: extract the value
// - RunEffect*/Inspect*: fluent side effects
// - MapAsync/Await: deferred mapping over a channel
//
// Every read that exposes the wrapped value hands the caller a structural
// deep copy, so callers cannot mutate an Option from the outside.
package option
