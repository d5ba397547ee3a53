package option

import (
	"time"

	"github.com/google/uuid"

	"github.com/kee-oth/scenario/internal/deep"
)

// Option holds one value of type V, or nothing.
type Option[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	present   bool
}

// Some wraps value verbatim, sentinel included. Use From when nil should
// classify as Absent.
func Some[V any](value V) Option[V] {
	return Option[V]{
		value:     value,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// None returns the Absent variant. The type parameter must be supplied by
// the call site; there is no value to infer it from.
func None[V any]() Option[V] {
	return Option[V]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From classifies value: Absent when it is the nil sentinel, Present
// otherwise. This is the constructor most call sites should use.
func From[V any](value V) Option[V] {
	if deep.IsNil(value) {
		return None[V]()
	}
	return Some(value)
}

// FromFallible runs thunk and classifies its outcome. An error, a panic or a
// nil result all produce Absent; the original signal is swallowed.
func FromFallible[V any](thunk func() (V, error)) (o Option[V]) {
	defer func() {
		if r := recover(); r != nil {
			o = None[V]()
		}
	}()

	value, err := thunk()
	if err != nil {
		return None[V]()
	}
	return From(value)
}

// IsPresent returns true if the Option holds a value.
func (o Option[V]) IsPresent() bool {
	return o.present
}

// IsAbsent returns true if the Option holds nothing.
func (o Option[V]) IsAbsent() bool {
	return !o.present
}

// Value returns a deep copy of the wrapped value and whether it was present.
// On Absent the zero value is returned with false.
func (o Option[V]) Value() (V, bool) {
	if !o.present {
		var zero V
		return zero, false
	}
	return deep.Clone(o.value), true
}

// ValueOr returns a deep copy of the value if Present, else fallback verbatim.
func (o Option[V]) ValueOr(fallback V) V {
	if o.present {
		return deep.Clone(o.value)
	}
	return fallback
}

// ValueOrCompute is ValueOr with a lazy fallback; thunk runs only on Absent.
func (o Option[V]) ValueOrCompute(thunk func() V) V {
	if o.present {
		return deep.Clone(o.value)
	}
	return thunk()
}

// ValueOrSignal returns a deep copy of the value if Present. On Absent it
// invokes handler with a copy of the receiver; the handler is expected to
// panic or otherwise never return. If it does return, the zero value comes
// back.
func (o Option[V]) ValueOrSignal(handler func(Option[V])) V {
	if o.present {
		return deep.Clone(o.value)
	}

	handler(o.clone())
	var zero V
	return zero
}

// OrSignal is ValueOrSignal keeping the Option: on Absent the handler is
// invoked under the same never-return contract, on Present the receiver
// passes through untouched.
func (o Option[V]) OrSignal(handler func(Option[V])) Option[V] {
	if !o.present {
		handler(o.clone())
	}
	return o
}

// CreatedAt returns the instance creation time (UTC).
func (o Option[V]) CreatedAt() time.Time {
	return o.createdAt
}

// Id returns the instance identity stamped at construction.
func (o Option[V]) Id() uuid.UUID {
	return o.id
}

// clone copies the receiver with a deep-copied value, same id and createdAt.
func (o Option[V]) clone() Option[V] {
	if !o.present {
		return o
	}
	c := o
	c.value = deep.Clone(o.value)
	return c
}

// absentFrom re-types an Absent across a map, keeping the id and createdAt
// of the original.
func absentFrom[V, U any](from Option[V]) Option[U] {
	return Option[U]{
		present:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}
