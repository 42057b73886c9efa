// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/render"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	"github.com/H0llyW00dzZ/x509-workbench/src/mcp-server/templates"
)

// versionInfo is the info://version document.
type versionInfo struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Tools            []string          `json:"tools"`
	Resources        []string          `json:"resources"`
	SupportedKinds   []artifact.Kind   `json:"supportedKinds"`
	SupportedKeySize []int             `json:"supportedKeySizes"`
	SupportedDigests []artifact.Digest `json:"supportedDigests"`
	ReportFormats    []render.Format   `json:"reportFormats"`
}

// handleConfigResource returns the effective configuration as JSON.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest, wb *Workbench) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(wb.Config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      URIConfig,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource returns server metadata and the accepted parameter values.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest, wb *Workbench) ([]mcp.ResourceContents, error) {
	info := versionInfo{
		Name:             ServerName,
		Version:          wb.Version,
		SupportedKinds:   artifact.Kinds,
		SupportedKeySize: artifact.KeySizes,
		SupportedDigests: []artifact.Digest{artifact.SHA1, artifact.SHA256, artifact.SHA384, artifact.SHA512},
		ReportFormats:    render.Formats,
	}
	for _, tool := range createTools() {
		info.Tools = append(info.Tools, tool.Tool.Name)
	}
	for _, resource := range createResources() {
		info.Resources = append(info.Resources, resource.Resource.URI)
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      URIVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleArtifactFormatsResource serves the embedded format reference.
func handleArtifactFormatsResource(ctx context.Context, request mcp.ReadResourceRequest, wb *Workbench) ([]mcp.ResourceContents, error) {
	doc, err := templates.MagicEmbed.ReadFile(templates.ArtifactFormats)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact formats: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      URIArtifactFormats,
			MIMEType: "text/markdown",
			Text:     string(doc),
		},
	}, nil
}
