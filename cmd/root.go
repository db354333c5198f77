package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/datadict/pkg/config"
	"github.com/nsxbet/datadict/pkg/logger"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "datadict",
	Short: "A data dictionary toolkit",
	Long: `datadict validates data rows against a data dictionary, analyses the
dictionary itself and renders it as CSV, HTML, Markdown, JSON and MySQL DDL.

Dictionaries are YAML or JSON files listing one entry per column. When no
dictionary is given, an embedded insurance sample is used.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.datadict.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringP("dictionary", "d", "", "path to the data dictionary file (YAML or JSON)")
	rootCmd.PersistentFlags().StringP("output", "o", config.OutputText, "output format (text, json, yaml)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("dictionary", rootCmd.PersistentFlags().Lookup("dictionary"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	config.SetDefaults(viper.GetViper())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".datadict" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".datadict")
	}

	viper.SetEnvPrefix("DATADICT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	readErr := viper.ReadInConfig()

	logger.NewWithLevel(logger.LevelFromFlags(viper.GetBool("debug"), viper.GetBool("verbose"))).SetDefault()

	if readErr != nil {
		// A missing config file is not an error.
		slog.Debug("Config file not loaded", logger.Error(readErr))
		return
	}
	slog.Debug("Using config file", "file", viper.ConfigFileUsed())
}
