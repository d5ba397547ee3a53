package option

import "context"

// MapAsync runs the transformer on its own goroutine and delivers the mapped
// Option on the returned channel. Absent passes through without invoking fn,
// mirroring the synchronous Map. The context only governs delivery: once the
// transformer has started there is no way to abandon it here; callers who
// need that must wire cancellation into fn themselves.
func MapAsync[V, U any](ctx context.Context, o Option[V], fn func(ctx context.Context, value V) U) <-chan Option[U] {
	ch := make(chan Option[U], 1)
	out := make(chan Option[U])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- Map(o, func(value V) U {
				return fn(ctx, value)
			})
		}
	}()

	go func() {
		defer close(out)

		select {
		case mapped, ok := <-ch:
			if ok {
				select {
				case out <- mapped:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
		}
	}()

	return out
}

// Await blocks until the deferred Option settles, returning fallback when the
// channel closes empty or ctx is done first.
func Await[V any](ctx context.Context, ch <-chan Option[V], fallback Option[V]) Option[V] {
	select {
	case o, ok := <-ch:
		if !ok {
			return fallback
		}
		return o
	case <-ctx.Done():
		return fallback
	}
}
