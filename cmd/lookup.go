package cmd

import (
	"fmt"

	"github.com/bnema/litebot/internal/adapters/repo/jsonfile"
	"github.com/spf13/cobra"
)

func newLookupCmd(app *app) *cobra.Command {
	var chatID string
	var command string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Print the stored response for a chat command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := app.load()
			if err != nil {
				return err
			}

			record, ok := jsonfile.Lookup(chatID, command, cfg.Commands.Dir)
			if !ok {
				return fmt.Errorf("no match for command %q in chat %s", command, chatID)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), record.Response)
			return err
		},
	}

	cmd.Flags().StringVar(&chatID, "chat", "", "conversation id, e.g. 5511999@s.whatsapp.net or 120363@g.us")
	cmd.Flags().StringVar(&command, "command", "", "command name without the prefix")
	_ = cmd.MarkFlagRequired("chat")
	_ = cmd.MarkFlagRequired("command")

	return cmd
}
