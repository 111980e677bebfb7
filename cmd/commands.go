package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCommandsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Inspect stored chat commands",
	}

	cmd.AddCommand(newCommandsListCmd(app))
	return cmd
}

func newCommandsListCmd(app *app) *cobra.Command {
	var chatID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the commands stored for a chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := app.load()
			if err != nil {
				return err
			}

			repo := app.commandRepository(cfg, logger)
			records, err := repo.List(cmd.Context(), chatID)
			if err != nil {
				return fmt.Errorf("list commands: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, err := fmt.Fprintf(out, "no commands stored for %s in %s\n", chatID, repo.BaseDir())
				return err
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "COMMAND\tRESPONSE")
			for _, record := range records {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", record.Command, record.Response)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&chatID, "chat", "", "conversation id")
	_ = cmd.MarkFlagRequired("chat")

	return cmd
}
