// Package cmd implements the CLI commands for descpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/internal/config"
	"github.com/gaurav-prasanna/descpipe/internal/logging"
)

// Persistent flag variables.
var (
	flagLogLevel  string
	flagLogFormat string
	flagJob       bool
	flagProduct   bool
)

// Loaded in PersistentPreRunE, shared by every subcommand.
var (
	cfg  *config.Config
	logs *logging.Provider
)

var rootCmd = &cobra.Command{
	Use:   "descpipe",
	Short: "descpipe — turn pasted listing copy into structured HTML",
	Long: `descpipe rebuilds semantic HTML (headings, section labels, bullet lists,
paragraphs) from plain-text job and product descriptions.

Usage:
  descpipe convert <file|-|url> [flags]
  descpipe template --about ... --requirements ... --benefits ...
  descpipe serve`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: console, json, pretty (default from LOG_FORMAT)")
	rootCmd.PersistentFlags().BoolVar(&flagJob, "job", false, "Render as a job description")
	rootCmd.PersistentFlags().BoolVar(&flagProduct, "product", false, "Render as a product description")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Load()
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}

	provider, err := logging.NewProvider(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	logs = provider
	return nil
}

// selectDomain resolves --job / --product, falling back to DESCRIPTION_DOMAIN.
func selectDomain() (core.Domain, error) {
	switch {
	case flagJob && flagProduct:
		return core.Domain{}, fmt.Errorf("--job and --product are mutually exclusive")
	case flagJob:
		return core.JobDomain, nil
	case flagProduct:
		return core.ProductDomain, nil
	default:
		return core.DomainByName(cfg.Domain)
	}
}
