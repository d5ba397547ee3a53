// Package deep holds the ownership helpers shared by option and result:
// nil detection for absence classification and structural deep copy for
// defensive reads.
package deep

import (
	"reflect"

	"github.com/jinzhu/copier"
)

// IsNil reports whether v is the "no value" sentinel: a nil interface value
// or a typed nil pointer. Nil maps, slices and empty containers are values
// and report false.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Clone returns a structural deep copy of v. Composite values (maps, slices,
// structs, pointers) are copied recursively so that mutating the copy cannot
// reach the original. Values the copier cannot handle come back as-is.
func Clone[T any](v T) T {
	if IsNil(v) {
		return v
	}

	// a pointer payload needs its own allocation; the copier cannot
	// populate a nil-pointer destination, so copy into a fresh pointee
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		dst := reflect.New(rv.Type().Elem())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			return v
		}
		return dst.Interface().(T)
	}

	var dst T
	if err := copier.CopyWithOption(&dst, &v, copier.Option{DeepCopy: true}); err != nil {
		return v
	}
	return dst
}
