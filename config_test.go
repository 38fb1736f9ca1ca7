package xcall

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefaults puts the process-wide Hub and Interceptor back after a
// test that calls Use.
func restoreDefaults(t *testing.T) {
	t.Helper()
	hub := global.Load()
	ic := defaultInterceptor.Load()
	t.Cleanup(func() {
		SetDefault(hub)
		SetDefaultInterceptor(ic)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("XCALL_SINK", "zap")
	t.Setenv("XCALL_STYLE", "never")
	t.Setenv("XCALL_TIME_LAYOUT", "15:04")
	t.Setenv("XCALL_VERBOSE", "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{Sink: "zap", Style: "never", TimeLayout: "15:04", Verbose: true}, cfg)
}

func TestLoadConfig_CustomPrefix(t *testing.T) {
	t.Setenv("TRACE_PROFILE", "/etc/trace.yaml")

	cfg, err := LoadConfig("trace")
	require.NoError(t, err)
	assert.Equal(t, "/etc/trace.yaml", cfg.Profile)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("XCALL_VERBOSE", "loudly")

	_, err := ConfigFromEnv()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

type svc struct{}

func TestUse_Verbose(t *testing.T) {
	restoreDefaults(t)
	var buf bytes.Buffer

	hub, ic, err := Use(Config{Style: "never", Verbose: true, Writer: &buf, TimeLayout: "15h", DateLayout: "2006"})
	require.NoError(t, err)
	assert.Same(t, hub, Default())
	assert.Same(t, ic, DefaultInterceptor())
	assert.NotNil(t, hub.Listener())

	ping := Wrap0(nil, svc{}, "Ping", func(*Logger) (string, error) { return "pong", nil }, WithPrintResult())
	got, err := ping()
	require.NoError(t, err)
	assert.Equal(t, "pong", got)

	out := buf.String()
	assert.Contains(t, out, "call: Ping {")
	assert.Contains(t, out, "return: Ping {")
	assert.Contains(t, out, "result=pong")
	assert.Regexp(t, `^\d+h   \d{4}   call: Ping`, out)
}

func TestUse_Quiet(t *testing.T) {
	restoreDefaults(t)
	var buf bytes.Buffer

	hub, _, err := Use(Config{Writer: &buf})
	require.NoError(t, err)
	assert.Nil(t, hub.Listener())

	_, _ = Wrap(svc{}, "Ping", func(...any) (any, error) { return nil, nil })()
	assert.Empty(t, buf.String())
}

func TestUse_Profile(t *testing.T) {
	restoreDefaults(t)
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listener:
  channels: [log]
methods:
  svc.Ping:
    print_result: true
    args: [1]
classes:
  svc:
    tag: SVC
`), 0o600))
	var buf bytes.Buffer

	_, _, err := Use(Config{Style: "never", Profile: path, Writer: &buf})
	require.NoError(t, err)

	ping := Wrap(svc{}, "Ping", func(args ...any) (any, error) { return len(args), nil })
	_, _ = ping("a", "b")

	out := buf.String()
	assert.Contains(t, out, "SVC   ")
	assert.Contains(t, out, "args=[b]")
	assert.Contains(t, out, "result=2")
}

func TestUse_Errors(t *testing.T) {
	restoreDefaults(t)

	_, _, err := Use(Config{Sink: "carrier-pigeon"})
	assert.ErrorIs(t, err, ErrUnknownSink)

	_, _, err = Use(Config{Style: "sometimes"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = Use(Config{Profile: filepath.Join(t.TempDir(), "p.ini")})
	assert.ErrorIs(t, err, ErrUnsupportedProfileFormat)
}
