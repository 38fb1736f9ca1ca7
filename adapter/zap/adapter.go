package zapadapter

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xcall"
)

// Sink bridges xcall entries to go.uber.org/zap.
//
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Writes the record timestamp as an RFC3339Nano "ts" string.
//   - zap has no trace level; trace maps to debug and the channel is kept
//     under "channel".
type Sink struct {
	l *zap.Logger
}

var _ xcall.Sink = (*Sink)(nil)

// New creates a sink for the provided zap logger.
func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l}
}

// NewJSON writes one JSON object per entry to w (default os.Stdout).
func NewJSON(w io.Writer) *Sink {
	return New(zap.New(newCore(w, zapcore.NewJSONEncoder(encoderConfig()))))
}

// NewConsole writes tab-separated console lines to w (default os.Stdout).
func NewConsole(w io.Writer) *Sink {
	return New(zap.New(newCore(w, zapcore.NewConsoleEncoder(encoderConfig()))))
}

func newCore(w io.Writer, enc zapcore.Encoder) zapcore.Core {
	if w == nil {
		w = os.Stdout
	}
	return zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "", // the record carries its own "ts"
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func (s *Sink) Write(e xcall.Entry) {
	ce := s.l.Check(toZapLevel(e.Channel.Level()), e.Message)
	if ce == nil {
		return
	}

	var fields []xcall.Field
	if e.Record != nil {
		fields = e.Record.Fields()
	}
	zfs := make([]zap.Field, 0, 1+len(fields))
	zfs = append(zfs, zap.String("channel", e.Channel.String()))
	for i := range fields {
		zfs = append(zfs, toZapField(&fields[i]))
	}
	ce.Write(zfs...)
}

func toZapLevel(l xcall.Level) zapcore.Level {
	switch {
	case l <= xcall.LevelDebug:
		return zapcore.DebugLevel
	case l <= xcall.LevelInfo:
		return zapcore.InfoLevel
	case l <= xcall.LevelWarn:
		return zapcore.WarnLevel
	default:
		// Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}

func toZapField(f *xcall.Field) zap.Field {
	switch f.Kind {
	case xcall.KindString:
		return zap.String(f.K, f.Str)
	case xcall.KindInt64:
		return zap.Int64(f.K, f.Int64)
	case xcall.KindTime:
		return zap.String(f.K, f.Time.UTC().Format(time.RFC3339Nano))
	case xcall.KindAny:
		return zap.Any(f.K, f.Any)
	default:
		return zap.Skip()
	}
}
