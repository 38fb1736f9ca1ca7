package gologadapter

import "github.com/trickstertwo/xcall"

// Importing this package registers the "golog" sink.
func init() {
	xcall.RegisterSinkFactory("golog", func(cfg xcall.SinkConfig) xcall.Sink {
		return NewWriter(cfg.Writer)
	})
}
