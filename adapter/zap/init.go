package zapadapter

import "github.com/trickstertwo/xcall"

// Importing this package registers the "zap" (JSON) and "zap-console" sinks.
func init() {
	xcall.RegisterSinkFactory("zap", func(cfg xcall.SinkConfig) xcall.Sink {
		return NewJSON(cfg.Writer)
	})
	xcall.RegisterSinkFactory("zap-console", func(cfg xcall.SinkConfig) xcall.Sink {
		return NewConsole(cfg.Writer)
	})
}
