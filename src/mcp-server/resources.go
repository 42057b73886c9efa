// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs served by the workbench.
const (
	URIConfig          = "config://template"
	URIVersion         = "info://version"
	URIArtifactFormats = "docs://artifact-formats"
)

// createResources returns the static resources exposed by the server:
//   - config://template: The effective configuration as JSON
//   - info://version: Server version and supported parameters
//   - docs://artifact-formats: Reference for the accepted and produced encodings
func createResources() []ResourceDefinition {
	return []ResourceDefinition{
		{
			Resource: mcp.NewResource(URIConfig, "Configuration",
				mcp.WithResourceDescription("Effective workbench configuration; can be saved as a config file"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(URIVersion, "Version Information",
				mcp.WithResourceDescription("Server version, tools and the supported kinds, key sizes, digests and report formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(URIArtifactFormats, "Artifact Formats",
				mcp.WithResourceDescription("PEM block types, binary encodings and generated file names"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleArtifactFormatsResource,
		},
	}
}
