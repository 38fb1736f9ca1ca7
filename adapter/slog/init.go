package slogadapter

import "github.com/trickstertwo/xcall"

// Importing this package registers the "slog" (JSON) and "slog-text" sinks.
func init() {
	xcall.RegisterSinkFactory("slog", func(cfg xcall.SinkConfig) xcall.Sink {
		return NewJSON(cfg.Writer)
	})
	xcall.RegisterSinkFactory("slog-text", func(cfg xcall.SinkConfig) xcall.Sink {
		return NewText(cfg.Writer)
	})
}
