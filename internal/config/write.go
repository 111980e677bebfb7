package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/litebot/internal/adapters/messages/memory"
	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/logging"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	Gateway     gatewaySchema     `toml:"gateway"`
	Credentials credentialsSchema `toml:"credentials"`
	Commands    commandsSchema    `toml:"commands"`
	Session     sessionSchema     `toml:"session"`
	Reconnect   reconnectSchema   `toml:"reconnect"`
	Welcome     welcomeSchema     `toml:"welcome"`
	Messages    messagesSchema    `toml:"messages"`
	Tutor       tutorSchema       `toml:"tutor"`
	Log         logSchema         `toml:"log"`
}

type gatewaySchema struct {
	URL        string `toml:"url" comment:"websocket endpoint of the protocol gateway"`
	VersionURL string `toml:"version_url" comment:"returns {\"version\":[a,b,c]}"`
	Token      string `toml:"token" comment:"sent as a bearer token when set"`
}

type credentialsSchema struct {
	Dir string `toml:"dir"`
}

type commandsSchema struct {
	Dir    string `toml:"dir" comment:"one <chat>.json file per conversation"`
	Prefix string `toml:"prefix"`
}

type sessionSchema struct {
	Browser         []string `toml:"browser"`
	QueryTimeout    string   `toml:"query_timeout"`
	KeepAlive       string   `toml:"keep_alive"`
	MarkOnline      bool     `toml:"mark_online"`
	SyncHistory     bool     `toml:"sync_history"`
	PairingValidity string   `toml:"pairing_validity"`
}

type reconnectSchema struct {
	Delay      string  `toml:"delay" comment:"0s reconnects immediately"`
	MaxDelay   string  `toml:"max_delay"`
	Multiplier float64 `toml:"multiplier"`
}

type welcomeSchema struct {
	Enabled bool   `toml:"enabled"`
	Message string `toml:"message" comment:"{user} is replaced by a mention of the new member"`
}

type messagesSchema struct {
	CacheSize int `toml:"cache_size"`
}

type tutorSchema struct {
	Prompt bool `toml:"prompt"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format" comment:"json or console"`
}

func defaultSchema(homeDir string) fileSchema {
	browser := domain.DefaultBrowser()

	return fileSchema{
		Gateway:     gatewaySchema{URL: DefaultGatewayURL, VersionURL: DefaultVersionURL},
		Credentials: credentialsSchema{Dir: filepath.Join(homeDir, configDir, "credentials")},
		Commands:    commandsSchema{Dir: filepath.Join(homeDir, configDir, "commands"), Prefix: DefaultCommandPrefix},
		Session: sessionSchema{
			Browser:         []string{browser.Name, browser.Platform, browser.Version},
			QueryTimeout:    domain.DefaultQueryTimeout.String(),
			KeepAlive:       domain.DefaultKeepAliveInterval.String(),
			MarkOnline:      true,
			PairingValidity: domain.DefaultPairingValidity.String(),
		},
		Reconnect: reconnectSchema{Delay: "0s", MaxDelay: "1m0s", Multiplier: 2},
		Welcome:   welcomeSchema{Message: DefaultWelcomeMessage},
		Messages:  messagesSchema{CacheSize: memory.DefaultCapacity},
		Tutor:     tutorSchema{Prompt: true},
		Log:       logSchema{Level: "info", Format: logging.FormatJSON},
	}
}

// WriteDefault writes a config file holding every default value.
func WriteDefault(path, homeDir string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := toml.Marshal(defaultSchema(homeDir))
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
