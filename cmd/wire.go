package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	credsfile "github.com/bnema/litebot/internal/adapters/credentials/file"
	"github.com/bnema/litebot/internal/adapters/gateway"
	"github.com/bnema/litebot/internal/adapters/messages/memory"
	"github.com/bnema/litebot/internal/adapters/prompt"
	"github.com/bnema/litebot/internal/adapters/render/notice"
	"github.com/bnema/litebot/internal/adapters/render/pairing"
	"github.com/bnema/litebot/internal/adapters/repo/jsonfile"
	"github.com/bnema/litebot/internal/application"
	"github.com/bnema/litebot/internal/config"
	"github.com/bnema/litebot/internal/logging"
	"github.com/bnema/litebot/internal/ports"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const versionRequestTimeout = 10 * time.Second

type app struct {
	configFile string
	envFile    string
	logLevel   string

	stdout io.Writer
	stdin  io.Reader

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) bindOutput(stdout io.Writer, stdin io.Reader) {
	a.stdout = stdout
	a.stdin = stdin
}

// load reads the config and builds the logger on first use.
func (a *app) load() (config.Config, *zap.Logger, error) {
	if a.cfg != nil {
		return *a.cfg, a.logger, nil
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile})
	if err != nil {
		return config.Config{}, nil, err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.New(cfg.LoggingConfig())
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("initialize logger: %w", err)
	}

	a.cfg = &cfg
	a.logger = logger
	return cfg, logger, nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) credentialStore(cfg config.Config, logger *zap.Logger) *credsfile.Store {
	return credsfile.NewStore(cfg.Credentials.Dir, logger.Named("credentials"))
}

func (a *app) commandRepository(cfg config.Config, logger *zap.Logger) *jsonfile.Repository {
	return jsonfile.NewRepository(cfg.Commands.Dir, logger.Named("commands"))
}

func (a *app) notifier() *notice.Printer {
	return notice.NewPrinter(a.stdout)
}

func (a *app) supervisor(cfg config.Config, logger *zap.Logger, notices ports.Notifier) (*application.Supervisor, error) {
	header := http.Header{}
	if cfg.Gateway.Token != "" {
		header.Set("Authorization", "Bearer "+cfg.Gateway.Token)
	}

	deps := application.SupervisorDeps{
		Credentials: a.credentialStore(cfg, logger),
		Versions: &gateway.VersionClient{
			URL:            cfg.Gateway.VersionURL,
			RequestTimeout: versionRequestTimeout,
			Logger:         logger.Named("version"),
		},
		Sessions: &gateway.Client{
			Endpoint: cfg.Gateway.URL,
			Header:   header,
			Logger:   logger.Named("gateway"),
		},
		Messages: memory.NewStore(cfg.Messages.CacheSize),
		Retries:  memory.NewRetryCounter(),
		Handler:  application.NewCommandResponder(a.commandRepository(cfg, logger), cfg.Commands.Prefix, logger.Named("responder")),
		Welcomer: application.NewWelcomer(cfg.Welcome.Enabled, cfg.Welcome.Message, logger.Named("welcome")),
		Notifier: notices,
		Pairing:  pairing.NewRenderer(a.stdout),
		Logger:   logger.Named("supervisor"),
	}
	if a.interactive() {
		deps.Prompter = &prompt.Terminal{In: a.stdin, Out: a.stdout}
	}

	return application.NewSupervisor(deps, application.SupervisorOptions{
		Browser:             cfg.Browser(),
		QueryTimeout:        cfg.Session.QueryTimeout,
		KeepAliveInterval:   cfg.Session.KeepAlive,
		MarkOnlineOnConnect: cfg.Session.MarkOnline,
		SyncHistory:         cfg.Session.SyncHistory,
		PairingValidity:     cfg.Session.PairingValidity,
		TutorPrompt:         cfg.Tutor.Prompt,
		Reconnect: application.ReconnectPolicy{
			Delay:      cfg.Reconnect.Delay,
			MaxDelay:   cfg.Reconnect.MaxDelay,
			Multiplier: cfg.Reconnect.Multiplier,
		},
	})
}

// interactive reports whether the prompt can read answers from a terminal.
func (a *app) interactive() bool {
	in, ok := a.stdin.(*os.File)
	if !ok {
		return false
	}
	out, ok := a.stdout.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}
