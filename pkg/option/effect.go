package option

import "github.com/kee-oth/scenario/internal/deep"

// RunEffect invokes fn with a copy of the receiver, whatever the variant,
// and returns the receiver for further chaining.
func (o Option[V]) RunEffect(fn func(o Option[V])) Option[V] {
	fn(o.clone())
	return o
}

// RunEffectWhenPresent invokes fn with a deep copy of the value on Present
// only.
func (o Option[V]) RunEffectWhenPresent(fn func(value V)) Option[V] {
	if o.present {
		fn(deep.Clone(o.value))
	}
	return o
}

// RunEffectWhenAbsent invokes fn on Absent only.
func (o Option[V]) RunEffectWhenAbsent(fn func()) Option[V] {
	if !o.present {
		fn()
	}
	return o
}

// Inspect invokes fn with a copy of the receiver when condition is true.
func (o Option[V]) Inspect(condition bool, fn func(o Option[V])) Option[V] {
	if condition {
		fn(o.clone())
	}
	return o
}

// InspectFunc is Inspect with a lazily evaluated condition.
func (o Option[V]) InspectFunc(condition func() bool, fn func(o Option[V])) Option[V] {
	if condition() {
		fn(o.clone())
	}
	return o
}
