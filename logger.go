package xcall

// Logger emits messages about the single Record it wraps. A nil *Logger
// is valid and discards everything.
type Logger struct {
	rec *Record
	hub *Hub // nil means Default() at emission time
}

// NewLogger returns a Logger around rec bound to the default Hub.
func NewLogger(rec *Record) *Logger {
	return &Logger{rec: rec}
}

// Record exposes the wrapped record so callers can enrich its Data.
func (l *Logger) Record() *Record {
	if l == nil {
		return nil
	}
	return l.rec
}

func (l *Logger) Debug(msg string) { l.output(ChannelDebug, msg) }
func (l *Logger) Error(msg string) { l.output(ChannelError, msg) }
func (l *Logger) Info(msg string)  { l.output(ChannelInfo, msg) }
func (l *Logger) Log(msg string)   { l.output(ChannelLog, msg) }
func (l *Logger) Trace(msg string) { l.output(ChannelTrace, msg) }
func (l *Logger) Warn(msg string)  { l.output(ChannelWarn, msg) }

// Write emits msg on an arbitrary channel.
func (l *Logger) Write(ch Channel, msg string) { l.output(ch, msg) }

func (l *Logger) output(ch Channel, msg string) {
	if l == nil {
		return
	}
	h := l.hub
	if h == nil {
		h = Default()
	}
	rec := l.rec
	if rec == nil {
		rec = NewEmptyRecord()
	}
	h.emit(rec, ch, msg)
}
