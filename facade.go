package xcall

// Facade helpers using the default Hub, Interceptor and TagRegistry.
// Usage:
//
//	xcall.InstallListener(xcall.PassAll())
//	add := xcall.Wrap(calc, "Add", calc.add, xcall.WithInject())

func InstallListener(l Listener) { Default().InstallListener(l) }
func ClearListener()             { Default().ClearListener() }
func CurrentListener() Listener  { return Default().Listener() }

func Wrap(recv any, name string, fn Func, opts ...Option) Func {
	return DefaultInterceptor().Wrap(recv, name, fn, opts...)
}

func WrapAsync(recv any, name string, fn AsyncFunc, opts ...Option) AsyncFunc {
	return DefaultInterceptor().WrapAsync(recv, name, fn, opts...)
}

// RegisterClass tags the type of v in the default registry.
func RegisterClass(v any, cfg ClassConfig) { defaultTags.Register(v, cfg) }
