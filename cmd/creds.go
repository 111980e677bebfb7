package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCredsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Inspect or reset the stored session credentials",
	}

	cmd.AddCommand(newCredsStatusCmd(app), newCredsResetCmd(app))
	return cmd
}

func newCredsStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a credential bundle is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := app.load()
			if err != nil {
				return err
			}

			store := app.credentialStore(cfg, logger)
			bundle, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load credentials: %w", err)
			}

			out := cmd.OutOrStdout()
			if bundle.Empty() {
				_, err := fmt.Fprintf(out, "no credentials stored in %s, the next run will show a pairing code\n", store.Root())
				return err
			}

			names := bundle.Names()
			_, err = fmt.Fprintf(out, "credentials: %d entries in %s\n  %s\n", len(names), store.Root(), strings.Join(names, "\n  "))
			return err
		},
	}
}

func newCredsResetCmd(app *app) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete stored credentials so the device can be paired again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errors.New("refusing to delete credentials without --yes")
			}

			cfg, logger, err := app.load()
			if err != nil {
				return err
			}

			store := app.credentialStore(cfg, logger)
			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("reset credentials: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "credentials removed from %s\n", store.Root())
			return err
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm deletion")
	return cmd
}
