// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix to provide a
// clean name for CLI usage strings.
//
//   - Linux/macOS: "x509-workbench" from "/usr/local/bin/x509-workbench"
//   - Windows: "x509-workbench" from "C:\bin\x509-workbench.exe"
//   - Fallback: fallback when os.Args[0] is unavailable
//
// Parameters:
//   - fallback: Name returned when os.Args carries no program name
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}
	return strings.TrimSuffix(baseName(os.Args[0]), ".exe")
}

// baseName returns the last path element, accepting both separators so that
// a Windows path seen on a Unix host still yields its final component.
func baseName(path string) string {
	name := filepath.Base(path)
	if !strings.ContainsAny(name, `/\`) {
		return name
	}

	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return name
	}
	return parts[len(parts)-1]
}
