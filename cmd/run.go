package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to the gateway and keep the bot online",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := app.load()
			if err != nil {
				return err
			}

			notices := app.notifier()
			notices.Banner(version.Version, map[string]string{
				"config":      valueOr(cfg.File, "defaults"),
				"gateway":     cfg.Gateway.URL,
				"credentials": cfg.Credentials.Dir,
				"commands":    cfg.Commands.Dir,
			}, []string{"config", "gateway", "credentials", "commands"})

			sup, err := app.supervisor(cfg, logger, notices)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = sup.Run(ctx)
			switch {
			case err == nil, ctx.Err() != nil && errors.Is(err, context.Canceled):
				logger.Info("shutdown complete")
				return nil
			case errors.Is(err, domain.ErrLoggedOut):
				logger.Error("session ended", zap.Error(err))
				cmd.SilenceErrors = true
				return fmt.Errorf("%w: run `litebot creds reset --yes` and pair again", err)
			default:
				logger.Error("failed to start", zap.Error(err))
				notices.Notify(domain.NoticeError, fmt.Sprintf("Failed to start: %v", err))
				cmd.SilenceErrors = true
				return err
			}
		},
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
