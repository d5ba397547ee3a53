package option

import "github.com/kee-oth/scenario/internal/deep"

// Map transforms the wrapped value on Present; Absent routes straight
// through and fn is never invoked. The output is classified again, so fn
// returning nil yields Absent.
func Map[V, U any](o Option[V], fn func(value V) U) Option[U] {
	if o.present {
		return From(fn(deep.Clone(o.value)))
	}
	return absentFrom[V, U](o)
}

// Map is the same-type form of the package-level Map.
func (o Option[V]) Map(fn func(value V) V) Option[V] {
	return Map(o, fn)
}

// Recover switches Absent to Present using the supplier; on Present the
// receiver passes through and fn is never invoked.
func (o Option[V]) Recover(fn func() V) Option[V] {
	if o.present {
		return o
	}
	return From(fn())
}

// Validate keeps a Present value only while the predicate holds; a failing
// predicate demotes it to Absent. Absent passes through, predicate unasked.
func (o Option[V]) Validate(predicate func(value V) bool) Option[V] {
	if !o.present {
		return o
	}
	if predicate(deep.Clone(o.value)) {
		return o
	}
	return None[V]()
}

// Reduce collapses the Option to a plain value regardless of variant. The
// reducer always runs, receiving the context, a deep copy of the value (zero
// on Absent) and the presence flag.
func Reduce[V, C, R any](o Option[V], reducer func(context C, value V, present bool) R, context C) R {
	if !o.present {
		var zero V
		return reducer(context, zero, false)
	}
	return reducer(context, deep.Clone(o.value), true)
}
