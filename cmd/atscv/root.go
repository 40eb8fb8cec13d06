package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"atscv/internal/config"
	"atscv/internal/logger"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "atscv",
	Short: "Score a résumé for ATS compatibility",
	Long: `atscv scores a PDF or DOCX résumé against Applicant Tracking System heuristics
and prints a compatibility report with recommendations in Spanish.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// cliLogger writes to stderr so --json output stays clean. Only warnings show without --verbose.
func cliLogger(cfg config.LogConfig) zerolog.Logger {
	cfg.Format = "pretty"
	if !verbose {
		cfg.Level = zerolog.WarnLevel.String()
	}
	return logger.New(os.Stderr, cfg)
}
