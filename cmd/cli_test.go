package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/litebot/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestConfigInitWritesDefaultsOnce(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ".litebot", "config.toml")

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[gateway]")
	assert.Contains(t, string(data), "query_timeout")
	assert.Contains(t, string(data), "1m0s")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowUsesConfigFile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[commands]\nprefix = \"!\"\n"), 0o600))

	stdout, _, err := executeCLI(t, home, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config = "+path)
	assert.Contains(t, stdout, "commands.prefix = !")
	assert.Contains(t, stdout, "commands.dir = "+filepath.Join(home, ".litebot", "commands"))
}

func TestLookupPrintsStoredResponse(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCommandsFixture(home, "5511999", `[{"comando":"menu","resposta":"Hi"},{"comando":"menu","resposta":"second"}]`))

	stdout, _, err := executeCLI(t, home, "lookup", "--chat", "5511999@s.whatsapp.net", "--command", "menu")
	require.NoError(t, err)
	assert.Equal(t, "Hi\n", stdout)

	stdout, _, err = executeCLI(t, home, "lookup", "--chat", "5511999@g.us", "--command", "menu")
	require.NoError(t, err)
	assert.Equal(t, "Hi\n", stdout)
}

func TestLookupReportsNoMatch(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCommandsFixture(home, "5511999", `[{"comando":"menu","resposta":"Hi"}]`))

	_, _, err := executeCLI(t, home, "lookup", "--chat", "5511999@s.whatsapp.net", "--command", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no match for command "missing"`)

	_, _, err = executeCLI(t, home, "lookup", "--chat", "0000@s.whatsapp.net", "--command", "menu")
	require.Error(t, err)

	_, _, err = executeCLI(t, home, "lookup", "--chat", "5511999@s.whatsapp.net")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"command\" not set")
}

func TestCommandsListShowsTable(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCommandsFixture(home, "120363", `[{"comando":"menu","resposta":"Hi"},{"comando":"rules","resposta":"Be nice"}]`))

	stdout, _, err := executeCLI(t, home, "commands", "list", "--chat", "120363@g.us")
	require.NoError(t, err)
	assert.Contains(t, stdout, "COMMAND")
	assert.Contains(t, stdout, "menu")
	assert.Contains(t, stdout, "Be nice")

	stdout, _, err = executeCLI(t, home, "commands", "list", "--chat", "999@g.us")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no commands stored for 999@g.us in "+filepath.Join(home, ".litebot", "commands"))
}

func TestCredsStatusAndReset(t *testing.T) {
	home := t.TempDir()
	credsDir := filepath.Join(home, ".litebot", "credentials")

	stdout, _, err := executeCLI(t, home, "creds", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no credentials stored in "+credsDir)

	require.NoError(t, os.MkdirAll(credsDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(credsDir, "creds.json"), []byte(`{"registered":true}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(credsDir, "app-state-sync-key-1.json"), []byte(`{}`), 0o600))

	stdout, _, err = executeCLI(t, home, "creds", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "credentials: 2 entries")
	assert.Contains(t, stdout, "creds")

	_, _, err = executeCLI(t, home, "creds", "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without --yes")
	assert.DirExists(t, credsDir)

	stdout, _, err = executeCLI(t, home, "creds", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "credentials removed")
	assert.NoDirExists(t, credsDir)
}

func TestRunFailsWhenGatewayUnreachable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("LITEBOT_GATEWAY_URL", "ws://127.0.0.1:1/session")
	t.Setenv("LITEBOT_GATEWAY_VERSION_URL", "http://127.0.0.1:1/version")
	t.Setenv("LITEBOT_LOG_LEVEL", "error")

	stdout, _, err := executeCLI(t, home, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial gateway")
	assert.Contains(t, stdout, "litebot")
	assert.Contains(t, stdout, "Credentials not configured yet!")
	assert.Contains(t, stdout, "Failed to start")
}

func TestInvalidConfigFailsCommands(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[session]\nbrowser = [\"x\"]\n"), 0o600))

	_, _, err := executeCLI(t, home, "--config", path, "creds", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.browser needs 3 parts")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(bytes.NewReader(nil))
	root.SetArgs(append([]string{"--env-file", ""}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCommandsFixture(home, id, content string) error {
	dir := filepath.Join(home, ".litebot", "commands")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, id+".json"), []byte(content), 0o600)
}
