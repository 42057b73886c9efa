// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 workbench.
//
// It implements a Cobra-based CLI with two command groups:
//
//   - generate: builds an RSA key pair, a CSR, or a self-signed or code signing
//     certificate from flags, writes each artifact into the output directory and
//     prints the equivalent openssl command
//   - inspect cert|csr|key: reads a file (or stdin) and prints a report as
//     markdown, HTML, JSON or text
//
// Form defaults and the output directory come from the configuration file
// (--config, or X509_WORKBENCH_CONFIG). Reports and artifacts go to stdout;
// diagnostics go to stderr through the logger package.
package cli
