// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cinematch CLI.
// cinematch ranks every movie in a dataset by content similarity to one
// reference movie.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cinematch/internal/logging"
	"github.com/pdiddy/cinematch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appCfg and logger are populated before any subcommand runs.
var (
	appCfg types.AppConfig
	logger zerolog.Logger
)

// rootCmd is the base command for the cinematch CLI.
var rootCmd = &cobra.Command{
	Use:   "cinematch",
	Short: "Content-based movie similarity ranking",
	Long: `cinematch compares one reference movie against every movie in a dataset.
Year, runtime, and rating are scaled by their dataset-wide ranges, genres are
compared with the Jaccard index, and director and lead actor must match
exactly (ignoring case). The six scores are averaged into a total, and the
whole dataset is printed in descending order of that total.

Movies are read from an IMDB Top 1000 style CSV (--csv), or from the local
catalog after running "cinematch import".`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&appCfg); err != nil {
			return fmt.Errorf("decoding configuration: %w", err)
		}
		logger = logging.New(appCfg.Log, os.Stderr)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./cinematch.yaml or ~/.config/cinematch/cinematch.yaml)")
	pf.String("csv", "", "movie dataset CSV (IMDB Top 1000 layout)")
	pf.String("catalog-dir", "catalog", "directory holding the SQLite catalog")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	bindFlag("dataset.csv", pf.Lookup("csv"))
	bindFlag("catalog.dir", pf.Lookup("catalog-dir"))
	bindFlag("log.level", pf.Lookup("log-level"))
	bindFlag("log.format", pf.Lookup("log-format"))

	viper.SetDefault("output.format", string(types.OutputTable))
	viper.SetDefault("output.limit", 0)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cinematch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cinematch"))
		}
	}

	viper.SetEnvPrefix("CINEMATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config file:", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
