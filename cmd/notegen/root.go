package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "notegen",
	Short: "notegen turns a directory of markdown notes into a static HTML site.",
	Long: `notegen mirrors a directory of .md notes into HTML pages. Every page carries a
navigation tree showing where it sits in the collection.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("source", "s", "", "Notes directory (default docs/)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory (default html/)")
	rootCmd.PersistentFlags().String("repo", "", "Git repository to take the notes from")
	rootCmd.PersistentFlags().IntP("depth", "d", 2, "Sublevels shown below each navigation entry")

	bindFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("SOURCE_DIR", rootCmd.PersistentFlags().Lookup("source"))
	bindFlag("OUTPUT_DIR", rootCmd.PersistentFlags().Lookup("output"))
	bindFlag("SOURCE_REPO", rootCmd.PersistentFlags().Lookup("repo"))
	bindFlag("TREE_DEPTH", rootCmd.PersistentFlags().Lookup("depth"))
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("NOTEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		slog.Error("Error binding flag", "flag", flag.Name, "error", err)
		os.Exit(1)
	}
}
