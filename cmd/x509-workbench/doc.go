// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-workbench generates and inspects X.509 artifacts from the command line.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-workbench/cmd/x509-workbench@latest
//
// # Usage
//
//	x509-workbench generate [FLAGS]
//	x509-workbench inspect cert|csr|key [FILE]
//
// # Global Flags
//
//	-c, --config  Path to a JSON or YAML configuration file
//	-F, --format  Report format: markdown, html, json or text
//
// # Environment Variables
//
//	X509_WORKBENCH_CONFIG  Path to configuration file (alternative to --config)
//
// # Examples
//
// Generate a self-signed certificate and its key in the current directory:
//
//	x509-workbench generate --cn example.com --alt-names "example.com, IP:192.0.2.1"
//
// Print a certificate signing request instead of writing files:
//
//	x509-workbench generate --type csr --cn example.com --stdout
//
// Inspect a DER certificate as JSON:
//
//	x509-workbench inspect cert --format json server.der
//
// Validate a key read from stdin:
//
//	x509-workbench inspect key < server.key
package main
