package xcall

import (
	"time"
)

// Kind identifies the concrete type stored in a Field.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt64
	KindTime
	KindAny
)

// Field is a typed key/value pair describing one attribute of a Record.
// Structured sinks switch on Kind instead of reflecting on Any.
type Field struct {
	K     string
	Kind  Kind
	Str   string
	Int64 int64
	Time  time.Time
	Any   any
}

func Str(k, v string) Field         { return Field{K: k, Kind: KindString, Str: v} }
func Int64(k string, v int64) Field { return Field{K: k, Kind: KindInt64, Int64: v} }
func Time(k string, v time.Time) Field {
	return Field{K: k, Kind: KindTime, Time: v}
}
func Any(k string, v any) Field { return Field{K: k, Kind: KindAny, Any: v} }

// Field keys produced by Record.Fields.
const (
	KeyCallID     = "call_id"
	KeyMethod     = "method"
	KeyImportance = "importance"
	KeyTimestamp  = "ts"
	KeyTag        = "tag"
	KeyArgs       = "args"
	KeyResult     = "result"
)
