package xcall

import "context"

// Typed wrappers. The wrapped body always takes a trailing *Logger: a fresh
// Logger when the method is configured WithInject, otherwise nil (a nil
// *Logger discards everything). A nil *Interceptor selects
// DefaultInterceptor().

// Wrap0 wraps a method without parameters.
func Wrap0[R any](i *Interceptor, recv any, name string, fn func(*Logger) (R, error), opts ...Option) func() (R, error) {
	s := i.orDefault().site(recv, name, opts)
	return func() (R, error) {
		return invoke(s, nil, fn)
	}
}

// Wrap1 wraps a one-parameter method; WithArgsAt sees its argument as position 0.
func Wrap1[A, R any](i *Interceptor, recv any, name string, fn func(A, *Logger) (R, error), opts ...Option) func(A) (R, error) {
	s := i.orDefault().site(recv, name, opts)
	return func(a A) (R, error) {
		return invoke(s, []any{a}, func(l *Logger) (R, error) {
			return fn(a, l)
		})
	}
}

// Wrap2 wraps a two-parameter method.
func Wrap2[A, B, R any](i *Interceptor, recv any, name string, fn func(A, B, *Logger) (R, error), opts ...Option) func(A, B) (R, error) {
	s := i.orDefault().site(recv, name, opts)
	return func(a A, b B) (R, error) {
		return invoke(s, []any{a, b}, func(l *Logger) (R, error) {
			return fn(a, b, l)
		})
	}
}

// WrapAsync0 wraps an asynchronous method without parameters. See
// Interceptor.WrapAsync for emission order and ctx handling.
func WrapAsync0[R any](i *Interceptor, recv any, name string, fn func(context.Context, *Logger) *Future[R], opts ...Option) func(context.Context) *Future[R] {
	s := i.orDefault().site(recv, name, opts)
	return func(ctx context.Context) *Future[R] {
		return invokeAsync(ctx, s, nil, func(l *Logger) *Future[R] {
			return fn(ctx, l)
		})
	}
}

// WrapAsync1 is WrapAsync0 for a one-parameter method.
func WrapAsync1[A, R any](i *Interceptor, recv any, name string, fn func(context.Context, A, *Logger) *Future[R], opts ...Option) func(context.Context, A) *Future[R] {
	s := i.orDefault().site(recv, name, opts)
	return func(ctx context.Context, a A) *Future[R] {
		return invokeAsync(ctx, s, []any{a}, func(l *Logger) *Future[R] {
			return fn(ctx, a, l)
		})
	}
}
