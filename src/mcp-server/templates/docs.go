// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// Two markdown files are embedded: the server instructions, a text/template
// that lists the registered tools and the configured defaults, and the
// artifact format reference served as the docs://artifact-formats resource.
// [MagicEmbed] is the default implementation of [EmbedFS].
package templates
