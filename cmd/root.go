package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aukio/soundbank/cmd/inspect"
	"github.com/aukio/soundbank/cmd/load"
	"github.com/aukio/soundbank/internal/conf"
	"github.com/aukio/soundbank/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "soundbank",
		Short: "Soundbank CLI",
		Long:  `Manage named groups of decoded audio buffers.`,
	}

	if err := setupFlags(rootCmd, settings); err != nil {
		cobra.CheckErr(err)
	}

	subcommands := []*cobra.Command{
		load.Command(settings),
		inspect.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if settings.Debug {
			logging.SetLevel(slog.LevelDebug)
		}
		return nil
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVarP(&settings.Bank.Prefix, "prefix", "p", viper.GetString("bank.prefix"), "Path prefix prepended to every registered file")
	rootCmd.PersistentFlags().BoolVar(&settings.Bank.VerifyOnLoad, "verify", viper.GetBool("bank.verifyonload"), "Re-check file existence before loading each buffer")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
