package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hy4ri/multiswitch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Padding = 4
	opts := &rootOptions{}
	cmd := newRootCmdWith(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--variant", "tabs", "--gap", "3", "--no-mouse", "-l", "de"}))
	require.NoError(t, applyFlags(cmd.Flags(), opts, cfg))

	assert.Equal(t, "tabs", cfg.UI.Variant)
	assert.Equal(t, 3, cfg.UI.Gap)
	assert.Equal(t, 4, cfg.UI.Padding, "unset flags keep the file's value")
	assert.Equal(t, "de", cfg.UI.Language)
	assert.False(t, cfg.UI.Mouse)
}

func TestApplyFlags_Validates(t *testing.T) {
	opts := &rootOptions{}
	cmd := newRootCmdWith(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--align", "middle"}))

	err := applyFlags(cmd.Flags(), opts, config.DefaultConfig())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "multiswitch version dev\n", out.String())
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", "--path", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Config file created")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	// Declining the prompt leaves the file alone.
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  gap: 5\n"), 0600))
	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{"init", "--path", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Aborted.")

	cfg, err = config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.UI.Gap)
}
