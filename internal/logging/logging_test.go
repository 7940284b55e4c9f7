package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for raw, want := range tests {
		require.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestNewHonoursSharedLevel(t *testing.T) {
	defer SetRawLevel("info")

	var buf bytes.Buffer
	log := New(&buf)

	SetRawLevel("warn")
	log.Info("hidden")
	require.Zero(t, buf.Len())

	SetRawLevel("debug")
	log.Debug("shown", "index", 2)
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"index":2`)
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "multiswitch.log")
	log, err := Setup(path, "info")
	require.NoError(t, err)
	t.Cleanup(Close)

	log.Info("placing indicator", "value", "night")
	require.Same(t, log, Logger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"value":"night"`)
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	log, err := Setup("", "debug")
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Debug("nowhere")
}
