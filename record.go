package xcall

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// DefaultImportance is used when a method is wrapped without WithImportance.
const DefaultImportance = -1

// Method describes the wrapped method. It is a label, not a callable.
type Method struct {
	Receiver string // receiver type name, empty for plain functions
	Name     string
}

// MethodOf builds a Method from a receiver value and a method name.
// Pointer receivers are reported by their element type name.
func MethodOf(recv any, name string) Method {
	return Method{Receiver: typeName(recv), Name: name}
}

func (m Method) String() string {
	if m.Receiver == "" {
		return m.Name
	}
	return m.Receiver + "." + m.Name
}

func typeName(v any) string {
	t := baseType(v)
	if t == nil {
		return ""
	}
	return t.Name()
}

func baseType(v any) reflect.Type {
	if v == nil {
		return nil
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// RecordData is the part of a Record that may be enriched after construction.
type RecordData struct {
	Tag    string
	Result any
	Args   []any
}

// Record describes one logged event. Only Data is mutable.
type Record struct {
	callID     string
	at         time.Time
	importance int
	method     Method

	Data RecordData
}

// NewRecord builds a record. No validation is performed.
func NewRecord(at time.Time, importance int, method Method) *Record {
	return &Record{at: at, importance: importance, method: method}
}

// NewEmptyRecord builds the record carried by an injected Logger.
func NewEmptyRecord() *Record {
	return &Record{importance: DefaultImportance}
}

func (r *Record) CallID() string  { return r.callID }
func (r *Record) At() time.Time   { return r.at }
func (r *Record) Importance() int { return r.importance }
func (r *Record) Method() Method  { return r.method }

// Fields renders the record as structured fields. Unset optional
// attributes are omitted.
func (r *Record) Fields() []Field {
	fs := make([]Field, 0, 7)
	if r.callID != "" {
		fs = append(fs, Str(KeyCallID, r.callID))
	}
	if m := r.method.String(); m != "" {
		fs = append(fs, Str(KeyMethod, m))
	}
	fs = append(fs, Int64(KeyImportance, int64(r.importance)))
	if !r.at.IsZero() {
		fs = append(fs, Time(KeyTimestamp, r.at))
	}
	if r.Data.Tag != "" {
		fs = append(fs, Str(KeyTag, r.Data.Tag))
	}
	if r.Data.Args != nil {
		fs = append(fs, Any(KeyArgs, r.Data.Args))
	}
	if r.Data.Result != nil {
		fs = append(fs, Any(KeyResult, r.Data.Result))
	}
	return fs
}

// newCallID returns a time-ordered identifier shared by the call and
// return records of one invocation.
func newCallID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
