package xcall

// Default style descriptors, one per channel.
const (
	StyleDebug = "background: #2d3436; color: #dfe6e9;"
	StyleError = "background: #d63031; color: #dfe6e9;"
	StyleInfo  = "background: #0984e3; color: #dfe6e9;"
	StyleLog   = "color: #2d3436;"
	StyleTrace = "background: #6c5ce7; color: #dfe6e9;"
	StyleWarn  = "background: #ffeaa7; color: #2d3436;"
)

var defaultStyles = [...]string{
	ChannelDebug: StyleDebug,
	ChannelInfo:  StyleInfo,
	ChannelLog:   StyleLog,
	ChannelError: StyleError,
	ChannelWarn:  StyleWarn,
	ChannelTrace: StyleTrace,
}

// DefaultStyle returns the style descriptor used for ch when a listener
// asks for default styling.
func DefaultStyle(ch Channel) string {
	if !ch.Valid() {
		return ""
	}
	return defaultStyles[ch]
}

type stylingMode uint8

const (
	stylingDefault stylingMode = iota
	stylingPlain
	stylingCustom
)

// Styling is a listener's decision on how a record is styled.
// The zero value selects the channel default.
type Styling struct {
	mode  stylingMode
	style string
}

// Unstyled writes the record without any style.
func Unstyled() Styling { return Styling{mode: stylingPlain} }

// DefaultStyling uses DefaultStyle for the channel.
func DefaultStyling() Styling { return Styling{mode: stylingDefault} }

// Styled uses exactly the given descriptor.
func Styled(style string) Styling { return Styling{mode: stylingCustom, style: style} }

// Resolve returns the descriptor to apply on ch, and false for a plain write.
func (s Styling) Resolve(ch Channel) (string, bool) {
	switch s.mode {
	case stylingPlain:
		return "", false
	case stylingCustom:
		return s.style, true
	default:
		return DefaultStyle(ch), true
	}
}
