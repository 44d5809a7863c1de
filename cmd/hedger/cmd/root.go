package cmd

import (
	"github.com/rustyeddy/hedger/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hedger",
	Short: "Size a USDINR futures hedge for an INR bond investment",
	Long: `Hedger compares the USD outcome of an INR bond investment funded in USD,
with and without a currency hedge built from USDINR futures.

It provides tools for:
  - Sizing the hedge in whole futures lots and the margin it needs
  - Comparing unhedged and hedged USD value at an exit rate
  - Sweeping a range of exit rates
  - Journaling computed scenarios to CSV or SQLite
  - Serving the calculator over HTTP`,
	SilenceUsage: true,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (defaults are used when empty)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}
