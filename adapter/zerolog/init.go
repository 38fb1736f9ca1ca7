package zerologadapter

import (
	"github.com/trickstertwo/xcall"
)

// Importing this package registers two sinks:
//
//	zerolog          JSON lines
//	zerolog-console  zerolog.ConsoleWriter, colour unless style mode is "never"
func init() {
	xcall.RegisterSinkFactory("zerolog", func(cfg xcall.SinkConfig) xcall.Sink {
		return NewJSON(cfg.Writer)
	})
	xcall.RegisterSinkFactory("zerolog-console", func(cfg xcall.SinkConfig) xcall.Sink {
		return NewConsole(cfg.Writer, cfg.Style == xcall.StyleNever)
	})
}
