package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "litebot",
		Short:         "litebot: a lightweight WhatsApp command bot",
		Long:          "litebot keeps a WhatsApp session alive through a protocol gateway, answers stored chat commands and greets new group members.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.bindOutput(cmd.OutOrStdout(), cmd.InOrStdin())
			return loadDotEnv(app.envFile)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "config file (default ~/.litebot/config.toml)")
	rootCmd.PersistentFlags().StringVar(&app.envFile, "env-file", ".env", "dotenv file loaded before reading the config")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newLookupCmd(app),
		newCommandsCmd(app),
		newCredsCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
