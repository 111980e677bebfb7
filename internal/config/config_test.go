package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/litebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(LoadOptions{HomeDir: home})
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, DefaultGatewayURL, cfg.Gateway.URL)
	assert.Equal(t, filepath.Join(home, ".litebot", "credentials"), cfg.Credentials.Dir)
	assert.Equal(t, filepath.Join(home, ".litebot", "commands"), cfg.Commands.Dir)
	assert.Equal(t, "/", cfg.Commands.Prefix)
	assert.Equal(t, domain.DefaultBrowser(), cfg.Browser())
	assert.Equal(t, 60*time.Second, cfg.Session.QueryTimeout)
	assert.Equal(t, 60*time.Second, cfg.Session.KeepAlive)
	assert.True(t, cfg.Session.MarkOnline)
	assert.False(t, cfg.Session.SyncHistory)
	assert.Zero(t, cfg.Reconnect.Delay)
	assert.Equal(t, 1000, cfg.Messages.CacheSize)
	assert.True(t, cfg.Tutor.Prompt)
	assert.False(t, cfg.Welcome.Enabled)
}

func TestLoadReadsTOMLAndEnvOverrides(t *testing.T) {
	home := t.TempDir()
	path := DefaultPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`
[gateway]
url = "ws://gateway.internal/session"

[commands]
dir = "~/bot/comandos"
prefix = "!"

[session]
browser = ["Firefox", "Mac", "120"]
query_timeout = "15s"

[reconnect]
delay = "2s"
`), 0o600))

	t.Setenv("LITEBOT_WELCOME_ENABLED", "true")
	t.Setenv("LITEBOT_RECONNECT_DELAY", "5s")

	cfg, err := Load(LoadOptions{HomeDir: home})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "ws://gateway.internal/session", cfg.Gateway.URL)
	assert.Equal(t, filepath.Join(home, "bot", "comandos"), cfg.Commands.Dir)
	assert.Equal(t, "!", cfg.Commands.Prefix)
	assert.Equal(t, domain.Browser{Name: "Firefox", Platform: "Mac", Version: "120"}, cfg.Browser())
	assert.Equal(t, 15*time.Second, cfg.Session.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Reconnect.Delay)
	assert.True(t, cfg.Welcome.Enabled)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(LoadOptions{HomeDir: t.TempDir(), ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[commands]
prefix = ""

[session]
browser = ["OnlyOne"]

[reconnect]
multiplier = 0.5
`), 0o600))

	_, err := Load(LoadOptions{HomeDir: home, ConfigFile: path})
	require.Error(t, err)
	assert.ErrorContains(t, err, "commands.prefix is empty")
	assert.ErrorContains(t, err, "session.browser needs 3 parts")
	assert.ErrorContains(t, err, "reconnect.multiplier must be at least 1")
}

func TestWriteDefaultRoundTripsThroughLoad(t *testing.T) {
	home := t.TempDir()
	path := DefaultPath(home)

	defaults, err := Load(LoadOptions{HomeDir: home})
	require.NoError(t, err)

	require.NoError(t, WriteDefault(path, home, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	written, err := Load(LoadOptions{HomeDir: home})
	require.NoError(t, err)
	assert.Equal(t, path, written.File)

	written.File = ""
	assert.Equal(t, defaults, written)
}

func TestWriteDefaultRefusesToOverwrite(t *testing.T) {
	home := t.TempDir()
	path := DefaultPath(home)
	require.NoError(t, WriteDefault(path, home, false))

	err := WriteDefault(path, home, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	assert.NoError(t, WriteDefault(path, home, true))
}
