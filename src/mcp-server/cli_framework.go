// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-workbench/src/config"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/helper/posix"
)

// NewRootCommand creates the root command of the MCP server binary.
//
// Without arguments the command serves [MCP] over stdio. The [gopls-style]
// --instructions flag prints the rendered server instructions instead, and
// --config selects a configuration file.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
func NewRootCommand(version string) *cobra.Command {
	exeName := posix.GetExecutableName("x509-workbench-mcp")

	var (
		configFile       string
		showInstructions bool
	)

	rootCmd := &cobra.Command{
		Use:   exeName,
		Short: "X.509 artifact workbench MCP server",
		Long: `Serves the X.509 workbench tools over the Model Context Protocol on stdin
and stdout. Configuration is read from --config, then from the
X509_WORKBENCH_CONFIG environment variable, then from built-in defaults.`,
		Example: fmt.Sprintf(`  %[1]s
  %[1]s --config workbench.yaml
  %[1]s --instructions`, exeName),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %s for %q", strings.Join(args, " "), exeName)
			}
			if showInstructions {
				return printInstructions(cmd, configFile)
			}
			return Run(version, configFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to workbench configuration file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print usage workflows for the server tools")

	return rootCmd
}

// printInstructions writes the same instructions clients receive on initialization.
func printInstructions(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	instructions, err := loadInstructions(createTools(), cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), instructions)
	return err
}
