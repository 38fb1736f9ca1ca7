package xcall

// Listener gates and styles every record a Hub emits.
//
// BeforeLog runs first; returning false drops the record (no write, no
// styling, no AfterLog). ApplyStyle decides how the write is styled.
// AfterLog runs after the write for side effects only.
// Implementations MUST be concurrency-safe.
type Listener interface {
	BeforeLog(rec *Record, ch Channel) bool
	ApplyStyle(rec *Record, ch Channel) Styling
	AfterLog(rec *Record, ch Channel)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields allow the
// record, use the default style, and do nothing after the write.
type ListenerFuncs struct {
	Before func(rec *Record, ch Channel) bool
	Style  func(rec *Record, ch Channel) Styling
	After  func(rec *Record, ch Channel)
}

var _ Listener = ListenerFuncs{}

func (f ListenerFuncs) BeforeLog(rec *Record, ch Channel) bool {
	if f.Before == nil {
		return true
	}
	return f.Before(rec, ch)
}

func (f ListenerFuncs) ApplyStyle(rec *Record, ch Channel) Styling {
	if f.Style == nil {
		return DefaultStyling()
	}
	return f.Style(rec, ch)
}

func (f ListenerFuncs) AfterLog(rec *Record, ch Channel) {
	if f.After != nil {
		f.After(rec, ch)
	}
}

// PassAll lets every record through with its channel's default style.
func PassAll() Listener { return ListenerFuncs{} }
