package xcall

import (
	"fmt"
	"strings"
)

// Channel names one of the six console outputs a record can be written to.
type Channel uint8

const (
	ChannelDebug Channel = iota + 1
	ChannelInfo
	ChannelLog
	ChannelError
	ChannelWarn
	ChannelTrace
)

var channelNames = [...]string{
	ChannelDebug: "debug",
	ChannelInfo:  "info",
	ChannelLog:   "log",
	ChannelError: "error",
	ChannelWarn:  "warn",
	ChannelTrace: "trace",
}

// Channels returns every channel in declaration order.
func Channels() []Channel {
	return []Channel{ChannelDebug, ChannelInfo, ChannelLog, ChannelError, ChannelWarn, ChannelTrace}
}

func (c Channel) String() string {
	if c.Valid() {
		return channelNames[c]
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// Valid reports whether c is one of the declared channels.
func (c Channel) Valid() bool {
	return c >= ChannelDebug && c <= ChannelTrace
}

// ParseChannel maps a channel name (case-insensitive) to its Channel.
func ParseChannel(s string) (Channel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Channels() {
		if channelNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, s)
}

// Level mirrors slog numeric semantics and extends with Trace (-8).
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// Level maps the channel onto a severity for structured backends.
// ChannelLog shares LevelInfo.
func (c Channel) Level() Level {
	switch c {
	case ChannelTrace:
		return LevelTrace
	case ChannelDebug:
		return LevelDebug
	case ChannelWarn:
		return LevelWarn
	case ChannelError:
		return LevelError
	default:
		return LevelInfo
	}
}
