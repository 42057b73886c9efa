// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/template"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-workbench/src/config"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-workbench/src/logger"
	"github.com/H0llyW00dzZ/x509-workbench/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/x509-workbench/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but is overridden when calling [Run] with a specific version string.
func GetVersion() string {
	return appVersion
}

// toolInfo describes one tool in the instructions template.
type toolInfo struct {
	Name        string
	Description string
}

// instructionData is the data handed to the instructions template.
type instructionData struct {
	Tools    []toolInfo
	Defaults config.Defaults
}

// loadInstructions renders the embedded instructions for tools and the
// configured defaults.
func loadInstructions(tools []ToolDefinition, cfg *config.Config) (string, error) {
	templateBytes, err := templates.MagicEmbed.ReadFile(templates.Instructions)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	data := instructionData{Defaults: cfg.Defaults}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{Name: tool.Tool.Name, Description: tool.Tool.Description})
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return buf.String(), nil
}

// NewServer assembles the workbench [MCP] server with every tool and resource.
//
// Parameters:
//   - cfg: Effective configuration
//   - version: Version reported to clients
//   - log: Logger for server-side diagnostics; must not write to stdout
//
// Returns:
//   - The configured server
//   - An error if the instructions cannot be rendered or cfg is invalid
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewServer(cfg *config.Config, version string, log logger.Logger) (*server.MCPServer, error) {
	tools := createTools()

	instructions, err := loadInstructions(tools, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	return NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithTools(tools...).
		WithResources(createResources()...).
		WithInstructions(instructions).
		Build()
}

// Serve runs s over the stdio transport on in and out until ctx is done or
// the input ends. Cancellation is a clean shutdown and returns nil.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	err := server.NewStdioServer(s).Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Run starts the MCP server on stdin and stdout.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.1.0")
//   - configFile: Path to a JSON or YAML config file; when empty the
//     X509_WORKBENCH_CONFIG environment variable is consulted, then the
//     built-in defaults
//
// Returns:
//   - error: Configuration, build or transport errors; nil on SIGINT or SIGTERM
func Run(version, configFile string) error {
	appVersion = version

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Stdout carries the protocol, so the server logs nothing by default.
	s, err := NewServer(cfg, version, logger.NewMCPLogger(nil, true))
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return Serve(ctx, s, os.Stdin, os.Stdout)
}
