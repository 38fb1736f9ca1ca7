package xcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_RoundTrip(t *testing.T) {
	t.Parallel()
	names := []string{"debug", "info", "log", "error", "warn", "trace"}
	require.Len(t, Channels(), len(names))
	for i, ch := range Channels() {
		assert.True(t, ch.Valid())
		assert.Equal(t, names[i], ch.String())
		got, err := ParseChannel(" " + names[i] + " ")
		require.NoError(t, err)
		assert.Equal(t, ch, got)
	}

	got, err := ParseChannel("WARN")
	require.NoError(t, err)
	assert.Equal(t, ChannelWarn, got)

	_, err = ParseChannel("fatal")
	assert.ErrorIs(t, err, ErrUnknownChannel)

	assert.False(t, Channel(0).Valid())
	assert.Equal(t, "channel(9)", Channel(9).String())
}

func TestChannel_Level(t *testing.T) {
	t.Parallel()
	assert.Equal(t, LevelTrace, ChannelTrace.Level())
	assert.Equal(t, LevelDebug, ChannelDebug.Level())
	assert.Equal(t, LevelInfo, ChannelInfo.Level())
	assert.Equal(t, LevelInfo, ChannelLog.Level())
	assert.Equal(t, LevelWarn, ChannelWarn.Level())
	assert.Equal(t, LevelError, ChannelError.Level())
}
