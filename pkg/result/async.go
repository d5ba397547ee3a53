package result

import "context"

// MapAsync runs the transformer on its own goroutine and delivers the mapped
// Result on the returned channel. Failure passes through without invoking
// fn, mirroring the synchronous Map. The context only governs delivery: once
// the transformer has started there is no way to abandon it here; callers who
// need that must wire cancellation into fn themselves.
func MapAsync[S, F, Out any](ctx context.Context, r Result[S, F], fn func(ctx context.Context, value S) Out) <-chan Result[Out, F] {
	ch := make(chan Result[Out, F], 1)
	out := make(chan Result[Out, F])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- Map(r, func(value S) Out {
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

// Await blocks until the deferred Result settles, returning fallback when
// the channel closes empty or ctx is done first.
func Await[S, F any](ctx context.Context, ch <-chan Result[S, F], fallback Result[S, F]) Result[S, F] {
	select {
	case r, ok := <-ch:
		if !ok {
			return fallback
		}
		return r
	case <-ctx.Done():
		return fallback
	}
}
