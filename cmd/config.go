package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/litebot/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the litebot config file",
	}

	cmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app))
	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}

			path := app.configFile
			if path == "" {
				path = config.DefaultPath(homeDir)
			}

			if err := config.WriteDefault(path, homeDir, force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := app.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][2]string{
				{"config", valueOr(cfg.File, "(defaults)")},
				{"gateway.url", cfg.Gateway.URL},
				{"gateway.version_url", cfg.Gateway.VersionURL},
				{"credentials.dir", cfg.Credentials.Dir},
				{"commands.dir", cfg.Commands.Dir},
				{"commands.prefix", cfg.Commands.Prefix},
				{"session.query_timeout", cfg.Session.QueryTimeout.String()},
				{"session.keep_alive", cfg.Session.KeepAlive.String()},
				{"reconnect.delay", cfg.Reconnect.Delay.String()},
				{"welcome.enabled", fmt.Sprint(cfg.Welcome.Enabled)},
				{"log.level", cfg.Log.Level},
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(out, "%s = %s\n", row[0], row[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
