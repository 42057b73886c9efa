// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-workbench-mcp is a Model Context Protocol (MCP) server that exposes
// X.509 artifact generation and inspection to AI assistants and automation
// clients over stdio.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-workbench/cmd/x509-workbench-mcp@latest
//
// # Usage
//
//	x509-workbench-mcp [FLAGS]
//
// # Flags
//
//	--config        Path to workbench configuration file (JSON or YAML)
//	--instructions  Display the tool workflows and exit
//	--help          Show help information
//	--version       Show version information
//
// # Environment Variables
//
//	X509_WORKBENCH_CONFIG  Path to configuration file (alternative to --config)
//
// # MCP Tools
//
//   - generate_artifact: Generate an RSA key pair, CSR, self-signed or code signing certificate
//   - inspect_certificate: Report the fields of a PEM, DER or PKCS#7 certificate
//   - inspect_csr: Report the subject, public key and extensions of a CSR
//   - validate_rsa_key: Check whether input is an RSA private or public key
//
// # MCP Resources
//
//   - config://template: Effective configuration
//   - info://version: Version and supported parameters
//   - docs://artifact-formats: Artifact format documentation
package main
