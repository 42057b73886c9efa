// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-workbench/src/config"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/render"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/generator"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/inspector"
	"github.com/H0llyW00dzZ/x509-workbench/src/logger"
)

// DefaultName is the executable name used when os.Args carries none.
const DefaultName = "x509-workbench"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	log        logger.Logger
	configPath string
	format     string

	cfg       *config.Config
	generator *generator.Generator
	inspector *inspector.Inspector
}

// Execute runs the root command with the given context.
//
// Parameters:
//   - ctx: Context for cancellation
//   - version: Version string shown by --version
//
// Returns:
//   - error: The first command error; the caller reports it and exits non-zero
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version, logger.NewCLILogger()).ExecuteContext(ctx)
}

// NewRootCommand assembles the command tree. Output goes to the command's
// configured writers, so tests can capture it with SetOut.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	a := &app{
		log:       log,
		generator: generator.New(),
		inspector: inspector.New(),
	}

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(DefaultName),
		Short:         "Generate and inspect X.509 artifacts",
		Long:          "Generate RSA keys, CSRs and certificates, and inspect certificates, CSRs and RSA keys.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "F", "", "report format: markdown, html, json or text (default from config)")

	rootCmd.AddCommand(a.generateCommand(), a.inspectCommand())
	return rootCmd
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// reportFormat resolves --format against the configured default.
func (a *app) reportFormat() (render.Format, error) {
	if a.format != "" {
		return render.ParseFormat(a.format)
	}
	return render.ParseFormat(a.cfg.Defaults.ReportFormat)
}
