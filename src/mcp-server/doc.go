// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the [X509] workbench over the Model Context Protocol ([MCP]).
//
// The server registers four tools backed by the generator and inspector
// pipelines (generate_artifact, inspect_certificate, inspect_csr and
// validate_rsa_key) plus read-only resources for the effective configuration,
// version information and the artifact format reference. Tools never touch the
// network and keep no state between calls.
//
// Servers are assembled with [ServerBuilder] and served over stdio by [Run] or
// the cobra root command returned by [NewRootCommand].
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
