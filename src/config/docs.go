// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the workbench configuration shared by the CLI and the
// MCP server.
//
// A configuration file is JSON (.json) or YAML (.yaml, .yml), selected by
// extension. Loading applies built-in defaults first, validates the file
// against an embedded JSON Schema with [gojsonschema], then lets the file
// override the defaults. Only form defaults live here; every generation
// request is still validated in full by the request builder.
//
// Example configuration (YAML):
//
//	defaults:
//	  keySize: 4096
//	  signatureDigest: SHA-384
//	  validityYears: 2
//	  outputDir: ./out
//	  reportFormat: text
//
// When no path is given, [Load] consults the X509_WORKBENCH_CONFIG
// environment variable.
//
// [gojsonschema]: https://github.com/xeipuuv/gojsonschema
package config
