package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/litebot/internal/adapters/messages/memory"
	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/logging"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".litebot"
	envPrefix  = "LITEBOT"

	DefaultGatewayURL     = "ws://127.0.0.1:8787/session"
	DefaultVersionURL     = "http://127.0.0.1:8787/version"
	DefaultCommandPrefix  = "/"
	DefaultWelcomeMessage = "Welcome to the group, {user}!"
)

type Config struct {
	Gateway     GatewayConfig     `mapstructure:"gateway"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Commands    CommandsConfig    `mapstructure:"commands"`
	Session     SessionConfig     `mapstructure:"session"`
	Reconnect   ReconnectConfig   `mapstructure:"reconnect"`
	Welcome     WelcomeConfig     `mapstructure:"welcome"`
	Messages    MessagesConfig    `mapstructure:"messages"`
	Tutor       TutorConfig       `mapstructure:"tutor"`
	Log         LogConfig         `mapstructure:"log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type GatewayConfig struct {
	URL        string `mapstructure:"url"`
	VersionURL string `mapstructure:"version_url"`
	Token      string `mapstructure:"token"`
}

type CredentialsConfig struct {
	Dir string `mapstructure:"dir"`
}

type CommandsConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
}

type SessionConfig struct {
	Browser         []string      `mapstructure:"browser"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
	KeepAlive       time.Duration `mapstructure:"keep_alive"`
	MarkOnline      bool          `mapstructure:"mark_online"`
	SyncHistory     bool          `mapstructure:"sync_history"`
	PairingValidity time.Duration `mapstructure:"pairing_validity"`
}

type ReconnectConfig struct {
	Delay      time.Duration `mapstructure:"delay"`
	MaxDelay   time.Duration `mapstructure:"max_delay"`
	Multiplier float64       `mapstructure:"multiplier"`
}

type WelcomeConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Message string `mapstructure:"message"`
}

type MessagesConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

type TutorConfig struct {
	Prompt bool `mapstructure:"prompt"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LoadOptions struct {
	// ConfigFile overrides the default lookup in ~/.litebot. It must exist.
	ConfigFile string
	HomeDir    string
}

// Load reads defaults, the TOML config file and LITEBOT_* environment
// variables, in increasing order of precedence.
func Load(opts LoadOptions) (Config, error) {
	homeDir := opts.HomeDir
	if homeDir == "" {
		resolved, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		homeDir = resolved
	}

	v := viper.New()
	setDefaults(v, homeDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType(configType)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	var err error
	if cfg.Credentials.Dir, err = normalizePath(cfg.Credentials.Dir, homeDir); err != nil {
		return Config{}, fmt.Errorf("resolve credentials dir: %w", err)
	}
	if cfg.Commands.Dir, err = normalizePath(cfg.Commands.Dir, homeDir); err != nil {
		return Config{}, fmt.Errorf("resolve commands dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath is where Load looks for the config file.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, configDir, configName+"."+configType)
}

func setDefaults(v *viper.Viper, homeDir string) {
	browser := domain.DefaultBrowser()

	v.SetDefault("gateway.url", DefaultGatewayURL)
	v.SetDefault("gateway.version_url", DefaultVersionURL)
	v.SetDefault("gateway.token", "")
	v.SetDefault("credentials.dir", filepath.Join(homeDir, configDir, "credentials"))
	v.SetDefault("commands.dir", filepath.Join(homeDir, configDir, "commands"))
	v.SetDefault("commands.prefix", DefaultCommandPrefix)
	v.SetDefault("session.browser", []string{browser.Name, browser.Platform, browser.Version})
	v.SetDefault("session.query_timeout", domain.DefaultQueryTimeout)
	v.SetDefault("session.keep_alive", domain.DefaultKeepAliveInterval)
	v.SetDefault("session.mark_online", true)
	v.SetDefault("session.sync_history", false)
	v.SetDefault("session.pairing_validity", domain.DefaultPairingValidity)
	v.SetDefault("reconnect.delay", time.Duration(0))
	v.SetDefault("reconnect.max_delay", time.Minute)
	v.SetDefault("reconnect.multiplier", 2.0)
	v.SetDefault("welcome.enabled", false)
	v.SetDefault("welcome.message", DefaultWelcomeMessage)
	v.SetDefault("messages.cache_size", memory.DefaultCapacity)
	v.SetDefault("tutor.prompt", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatJSON)
}

func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Gateway.URL) == "" {
		errs = append(errs, errors.New("gateway.url is empty"))
	}
	if c.Credentials.Dir == "" {
		errs = append(errs, errors.New("credentials.dir is empty"))
	}
	if c.Commands.Dir == "" {
		errs = append(errs, errors.New("commands.dir is empty"))
	}
	if c.Commands.Prefix == "" {
		errs = append(errs, errors.New("commands.prefix is empty"))
	}
	if len(c.Session.Browser) != 3 {
		errs = append(errs, fmt.Errorf("session.browser needs 3 parts, got %d", len(c.Session.Browser)))
	}
	if c.Session.QueryTimeout <= 0 {
		errs = append(errs, errors.New("session.query_timeout must be positive"))
	}
	if c.Session.KeepAlive < 0 {
		errs = append(errs, errors.New("session.keep_alive must not be negative"))
	}
	if c.Reconnect.Delay < 0 || c.Reconnect.MaxDelay < 0 {
		errs = append(errs, errors.New("reconnect delays must not be negative"))
	}
	if c.Reconnect.Multiplier < 1 {
		errs = append(errs, errors.New("reconnect.multiplier must be at least 1"))
	}
	if c.Messages.CacheSize < 0 {
		errs = append(errs, errors.New("messages.cache_size must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) Browser() domain.Browser {
	if len(c.Session.Browser) != 3 {
		return domain.DefaultBrowser()
	}
	return domain.Browser{Name: c.Session.Browser[0], Platform: c.Session.Browser[1], Version: c.Session.Browser[2]}
}

func (c Config) LoggingConfig() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}

func normalizePath(path, homeDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" {
		path = homeDir
	} else if rest, ok := strings.CutPrefix(path, "~/"); ok {
		path = filepath.Join(homeDir, rest)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(absPath), nil
}
