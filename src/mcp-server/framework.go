// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-workbench/src/config"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/generator"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/inspector"
	"github.com/H0llyW00dzZ/x509-workbench/src/logger"
)

// ServerName is the implementation name reported during initialization.
const ServerName = "X509 Workbench"

// Workbench holds the dependencies shared by every tool and resource handler.
//
// Fields:
//   - Version: Server version reported by the info://version resource
//   - Config: Effective configuration; its defaults fill omitted tool arguments
//   - Generator: Artifact generation pipeline
//   - Inspector: Artifact inspection pipeline
//   - Logger: Destination for server-side diagnostics
type Workbench struct {
	Version   string
	Config    *config.Config
	Generator *generator.Generator
	Inspector *inspector.Inspector
	Logger    logger.Logger
}

// ToolHandler processes a tool call with access to the [Workbench].
//
// Failures the caller can fix (bad arguments, unparseable input) are
// reported as tool results with IsError set, never as a Go error.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, wb *Workbench) (*mcp.CallToolResult, error)

// ResourceHandler serves a resource read with access to the [Workbench].
type ResourceHandler func(ctx context.Context, request mcp.ReadResourceRequest, wb *Workbench) ([]mcp.ResourceContents, error)

// ToolDefinition pairs an [MCP] tool specification with its handler.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
}

// ResourceDefinition pairs an [MCP] resource specification with its handler.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ResourceDefinition struct {
	Resource mcp.Resource
	Handler  ResourceHandler
}

// ServerBuilder helps construct [MCP] servers with a fluent interface.
// Dependencies that are never set fall back to their defaults in [ServerBuilder.Build].
//
// Example usage:
//
//	s, err := NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion("1.0.0").
//		WithTools(createTools()...).
//		WithResources(createResources()...).
//		Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct {
	workbench    Workbench
	tools        []ToolDefinition
	resources    []ResourceDefinition
	instructions string
}

// NewServerBuilder creates a new server builder.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration whose defaults fill omitted tool arguments.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.workbench.Config = cfg
	return b
}

// WithVersion sets the server version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.workbench.Version = version
	return b
}

// WithLogger sets the logger handed to handlers.
func (b *ServerBuilder) WithLogger(l logger.Logger) *ServerBuilder {
	b.workbench.Logger = l
	return b
}

// WithGenerator replaces the generation pipeline, e.g. to pin its clock in tests.
func (b *ServerBuilder) WithGenerator(g *generator.Generator) *ServerBuilder {
	b.workbench.Generator = g
	return b
}

// WithInspector replaces the inspection pipeline.
func (b *ServerBuilder) WithInspector(i *inspector.Inspector) *ServerBuilder {
	b.workbench.Inspector = i
	return b
}

// WithTools adds tools to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.tools = append(b.tools, tools...)
	return b
}

// WithResources adds resources to the server.
func (b *ServerBuilder) WithResources(resources ...ResourceDefinition) *ServerBuilder {
	b.resources = append(b.resources, resources...)
	return b
}

// WithInstructions sets the instructions returned to clients on initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.instructions = instructions
	return b
}

// Workbench returns the dependencies handlers will receive, with defaults applied.
func (b *ServerBuilder) Workbench() *Workbench {
	wb := b.workbench
	if wb.Config == nil {
		wb.Config = config.Default()
	}
	if wb.Generator == nil {
		wb.Generator = generator.New()
	}
	if wb.Inspector == nil {
		wb.Inspector = inspector.New()
	}
	if wb.Logger == nil {
		wb.Logger = logger.NewMCPLogger(nil, true)
	}
	if wb.Version == "" {
		wb.Version = appVersion
	}
	return &wb
}

// ServerTools binds the registered tools to a single [Workbench].
func (b *ServerBuilder) ServerTools() []server.ServerTool {
	return bindTools(b.Workbench(), b.tools)
}

// ServerResources binds the registered resources to a single [Workbench].
func (b *ServerBuilder) ServerResources() []server.ServerResource {
	return bindResources(b.Workbench(), b.resources)
}

// Build creates the [MCP] server with all configured components.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if the configuration is invalid
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	wb := b.Workbench()
	if err := wb.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	}
	if b.instructions != "" {
		opts = append(opts, server.WithInstructions(b.instructions))
	}

	s := server.NewMCPServer(ServerName, wb.Version, opts...)
	for _, tool := range bindTools(wb, b.tools) {
		s.AddTool(tool.Tool, tool.Handler)
	}
	for _, resource := range bindResources(wb, b.resources) {
		s.AddResource(resource.Resource, resource.Handler)
	}
	return s, nil
}

func bindTools(wb *Workbench, tools []ToolDefinition) []server.ServerTool {
	bound := make([]server.ServerTool, 0, len(tools))
	for _, tool := range tools {
		handler := tool.Handler
		bound = append(bound, server.ServerTool{
			Tool: tool.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, wb)
			},
		})
	}
	return bound
}

func bindResources(wb *Workbench, resources []ResourceDefinition) []server.ServerResource {
	bound := make([]server.ServerResource, 0, len(resources))
	for _, resource := range resources {
		handler := resource.Handler
		bound = append(bound, server.ServerResource{
			Resource: resource.Resource,
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handler(ctx, request, wb)
			},
		})
	}
	return bound
}
