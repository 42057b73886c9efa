// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable diagnostics on stderr and MCPLogger for JSON lines in MCP server
// environments. MCPLogger builds each line in a pooled buffer and is silent by
// default so that it never interferes with the stdio transport.
package logger
