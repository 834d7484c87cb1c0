package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/basecamp/cookie-composer/internal/server"
)

var globalConfig server.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "cookie-composer",
	Short:        "Read, write and remove HTTP cookies without conflicting Set-Cookie headers",
	SilenceUsage: true,
}

func Execute() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&globalConfig.CookieConfigPath, "cookie-config", getEnvString("COOKIE_CONFIG", ""), "Path to the cookie defaults file; empty to use the default location")

	rootCmd.AddCommand(newRunCommand().cmd)
	rootCmd.AddCommand(newComposeCommand().cmd)
	rootCmd.AddCommand(newBrowserCommand().cmd)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
