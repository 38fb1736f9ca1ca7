package xcall

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
	"time"
)

// Func is the dynamic calling surface of a wrapped method.
type Func func(args ...any) (any, error)

// AsyncFunc is the dynamic calling surface of a wrapped asynchronous method.
type AsyncFunc func(ctx context.Context, args ...any) *Future[any]

// Layouts used for the time and date parts of call/return messages.
const (
	DefaultTimeLayout = "3:04:05 PM"
	DefaultDateLayout = "1/2/2006"
)

const (
	stateCall   = "call"
	stateReturn = "return"
	separator   = "   "
)

// Interceptor wraps methods so every invocation emits a call record, an
// error record on failure, and optionally a return record on success.
type Interceptor struct {
	hub        *Hub // nil means Default() at each invocation
	tags       *TagRegistry
	profile    *Profile
	timeLayout string
	dateLayout string
}

// InterceptorOption configures NewInterceptor.
type InterceptorOption func(*Interceptor)

// WithHub binds the interceptor to h instead of the default Hub.
func WithHub(h *Hub) InterceptorOption { return func(i *Interceptor) { i.hub = h } }

// WithTags sets the registry consulted for class tags.
func WithTags(r *TagRegistry) InterceptorOption { return func(i *Interceptor) { i.tags = r } }

// WithProfile applies the profile's method overrides at wrap time and uses
// its class table as a fallback for class tags.
func WithProfile(p *Profile) InterceptorOption { return func(i *Interceptor) { i.profile = p } }

// WithLayouts overrides the time and date layouts. Empty values keep the
// defaults.
func WithLayouts(timeLayout, dateLayout string) InterceptorOption {
	return func(i *Interceptor) {
		if timeLayout != "" {
			i.timeLayout = timeLayout
		}
		if dateLayout != "" {
			i.dateLayout = dateLayout
		}
	}
}

// NewInterceptor returns an Interceptor using the default Hub, the default
// TagRegistry and the default layouts unless opts say otherwise.
func NewInterceptor(opts ...InterceptorOption) *Interceptor {
	i := &Interceptor{
		tags:       defaultTags,
		timeLayout: DefaultTimeLayout,
		dateLayout: DefaultDateLayout,
	}
	for _, o := range opts {
		o(i)
	}
	if i.tags == nil {
		i.tags = defaultTags
	}
	return i
}

var defaultInterceptor atomic.Pointer[Interceptor]

// DefaultInterceptor returns the interceptor used by the package-level
// helpers and by typed wrappers given a nil *Interceptor.
func DefaultInterceptor() *Interceptor {
	if i := defaultInterceptor.Load(); i != nil {
		return i
	}
	i := NewInterceptor()
	if defaultInterceptor.CompareAndSwap(nil, i) {
		return i
	}
	return defaultInterceptor.Load()
}

// SetDefaultInterceptor replaces the default interceptor. Methods already
// wrapped keep the interceptor they were wrapped with.
func SetDefaultInterceptor(i *Interceptor) { defaultInterceptor.Store(i) }

func (i *Interceptor) orDefault() *Interceptor {
	if i == nil {
		return DefaultInterceptor()
	}
	return i
}

// Hub returns the Hub records are emitted through.
func (i *Interceptor) Hub() *Hub {
	if i.hub != nil {
		return i.hub
	}
	return Default()
}

// Tags returns the class tag registry.
func (i *Interceptor) Tags() *TagRegistry { return i.tags }

// Wrap returns fn with call tracing. recv identifies the receiver (its type
// names the method and selects the class tag); it may be nil for plain
// functions. With WithInject, fn receives one extra trailing *Logger
// argument that callers of the returned Func never pass.
func (i *Interceptor) Wrap(recv any, name string, fn Func, opts ...Option) Func {
	s := i.orDefault().site(recv, name, opts)
	return func(args ...any) (any, error) {
		return invoke(s, args, func(l *Logger) (any, error) {
			return fn(extend(args, l)...)
		})
	}
}

// WrapAsync is Wrap for methods that return a Future. The call record is
// emitted before fn is invoked; the return or error record after the
// future fn returned settles, and before the returned future settles.
// If ctx is done before fn's future settles, the returned future rejects
// with ctx.Err() and nothing further is logged for that call.
func (i *Interceptor) WrapAsync(recv any, name string, fn AsyncFunc, opts ...Option) AsyncFunc {
	s := i.orDefault().site(recv, name, opts)
	return func(ctx context.Context, args ...any) *Future[any] {
		return invokeAsync(ctx, s, args, func(l *Logger) *Future[any] {
			return fn(ctx, extend(args, l)...)
		})
	}
}

// extend appends l without touching the caller's backing array.
func extend(args []any, l *Logger) []any {
	if l == nil {
		return args
	}
	return append(args[:len(args):len(args)], l)
}

// site is one wrapped method: its descriptor and frozen configuration.
type site struct {
	i      *Interceptor
	recv   any
	method Method
	cfg    MethodConfig
}

func (i *Interceptor) site(recv any, name string, opts []Option) *site {
	m := MethodOf(recv, name)
	cfg := NewMethodConfig(opts...)
	if i.profile != nil {
		if ov, ok := i.profile.Methods[m.String()]; ok {
			cfg = ov.Apply(cfg)
		}
	}
	return &site{i: i, recv: recv, method: m, cfg: cfg}
}

func (s *site) classTag() string {
	if s.recv == nil {
		return ""
	}
	if tag, ok := s.i.tags.Lookup(s.recv); ok {
		return tag
	}
	if p := s.i.profile; p != nil && s.method.Receiver != "" {
		if c, ok := p.Classes[s.method.Receiver]; ok {
			return c.Tag
		}
	}
	return ""
}

// injected returns the Logger handed to the wrapped body, or nil.
func (s *site) injected() *Logger {
	if !s.cfg.Inject {
		return nil
	}
	return s.i.Hub().NewLogger(NewEmptyRecord())
}

// call is one invocation of a site.
type call struct {
	s      *site
	id     string
	tag    string
	args   []any
	logger *Logger // wraps the call record; used for the error emission
}

func (s *site) enter(args []any) *call {
	c := &call{s: s, id: newCallID(), tag: s.classTag(), args: args}
	c.logger = c.emit(stateCall, nil)
	return c
}

func (c *call) emit(state string, result any) *Logger {
	h := c.s.i.Hub()
	at := h.Now()
	rec := NewRecord(at, c.s.cfg.Importance, c.s.method)
	rec.callID = c.id
	rec.Data.Tag = c.s.cfg.Tag
	rec.Data.Args = c.s.cfg.Args.Select(c.args)
	if defined(result) {
		rec.Data.Result = result
	}
	l := h.NewLogger(rec)
	l.Log(c.s.i.message(c.tag, at, state, c.s.method.Name))
	return l
}

func (c *call) fail(err error) error {
	c.logger.Error(err.Error())
	return err
}

func (c *call) leave(result any) {
	if c.s.cfg.PrintResult {
		c.emit(stateReturn, result)
	}
}

// observePanic must be deferred directly. It logs a panic once on the
// error channel and re-panics with the same value.
func (c *call) observePanic() {
	if r := recover(); r != nil {
		c.logger.Error(panicMessage(r))
		panic(r)
	}
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}

func (i *Interceptor) message(tag string, at time.Time, state, name string) string {
	var b strings.Builder
	if tag != "" {
		b.WriteString(tag)
		b.WriteString(separator)
	}
	b.WriteString(at.Format(i.timeLayout))
	b.WriteString(separator)
	b.WriteString(at.Format(i.dateLayout))
	b.WriteString(separator)
	b.WriteString(state)
	b.WriteString(": ")
	b.WriteString(name)
	return b.String()
}

func invoke[R any](s *site, args []any, body func(*Logger) (R, error)) (R, error) {
	c := s.enter(args)
	var (
		r   R
		err error
	)
	func() {
		defer c.observePanic()
		r, err = body(s.injected())
	}()
	if err != nil {
		return r, c.fail(err)
	}
	c.leave(r)
	return r, nil
}

// invokeAsync waits for the started future on its own goroutine. When ctx
// is done first the wait is abandoned: the outer future rejects with
// ctx.Err() and no return or error record is emitted.
func invokeAsync[R any](ctx context.Context, s *site, args []any, start func(*Logger) *Future[R]) *Future[R] {
	c := s.enter(args)
	var inner *Future[R]
	func() {
		defer c.observePanic()
		inner = start(s.injected())
	}()
	if inner == nil {
		var zero R
		inner = Resolved(zero)
	}
	out := newFuture[R]()
	go func() {
		select {
		case <-inner.Done():
		case <-ctx.Done():
			select {
			case <-inner.Done():
			default:
				var zero R
				out.settle(zero, ctx.Err())
				return
			}
		}
		v, err := inner.Result()
		if err != nil {
			out.settle(v, c.fail(err))
			return
		}
		c.leave(v)
		out.settle(v, nil)
	}()
	return out
}

// defined reports whether v carries a value worth attaching as a result.
// Zero values such as 0, "" and false count; nil pointers, maps, slices,
// channels, funcs and interfaces do not.
func defined(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
