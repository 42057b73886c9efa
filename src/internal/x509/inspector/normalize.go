// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspector

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	x509certs "github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/command"
)

// certificateMarker is the delimiter whose presence marks input as PEM.
const certificateMarker = "-----BEGIN CERTIFICATE-----"

// Input is one inspection input: the bytes of an upload or pasted text and
// the name they came from. Name may be empty for pasted text.
type Input struct {
	Name string
	Data []byte
}

// Binary reports whether Name has an extension that is read as binary (.der, .pfx).
func (in Input) Binary() bool {
	switch strings.ToLower(filepath.Ext(in.Name)) {
	case ".der", ".pfx":
		return true
	}
	return false
}

// Content returns Data, trimmed of surrounding whitespace unless the input
// is a binary upload.
func (in Input) Content() []byte {
	if in.Binary() {
		return in.Data
	}
	return bytes.TrimSpace(in.Data)
}

// Classification is the result of the format heuristic.
type Classification int

const (
	// Unrecognized input is printable text without PEM certificate markers.
	Unrecognized Classification = iota
	// PEM input contains a PEM certificate delimiter.
	PEM
	// LikelyBinary input contains control or high-bit bytes.
	LikelyBinary
)

func (c Classification) String() string {
	switch c {
	case PEM:
		return "PEM"
	case LikelyBinary:
		return "LikelyBinary"
	default:
		return "Unrecognized"
	}
}

// Classify applies the textual heuristic: PEM when the certificate delimiter
// is present, LikelyBinary when any byte is in 0x00-0x08, 0x0E-0x1F or
// 0x80-0xFF, Unrecognized otherwise.
//
// The heuristic cannot tell a DER certificate from other binary containers.
// A PKCS#12 file is reported as LikelyBinary as well.
func Classify(data []byte) Classification {
	if bytes.Contains(data, []byte(certificateMarker)) {
		return PEM
	}
	for _, b := range data {
		if b <= 0x08 || (b >= 0x0e && b <= 0x1f) || b >= 0x80 {
			return LikelyBinary
		}
	}
	return Unrecognized
}

// Normalize returns PEM text for data. PEM input is returned unchanged and
// binary input is armored as a CERTIFICATE block with 64-column lines.
//
// Parameters:
//   - data: Raw inspection input
//
// Returns:
//   - []byte: PEM text suitable for the certificate parser
//   - Classification: How data was classified
//   - error: Wraps [artifact.ErrUnrecognizedFormat] for unrecognized input
func Normalize(data []byte) ([]byte, Classification, error) {
	class := Classify(data)
	switch class {
	case PEM:
		return data, class, nil
	case LikelyBinary:
		return x509certs.New().Wrap(x509certs.BlockCertificate, data), class, nil
	default:
		return nil, class, fmt.Errorf("%w: input has no PEM certificate markers and is not binary", artifact.ErrUnrecognizedFormat)
	}
}

// DetectKind sniffs textual markers only: "PEM", "PKCS12" or "UNKNOWN".
func DetectKind(text []byte) string {
	switch {
	case bytes.Contains(text, []byte(certificateMarker)):
		return "PEM"
	case bytes.Contains(text, []byte("-----BEGIN PKCS12-----")):
		return "PKCS12"
	default:
		return "UNKNOWN"
	}
}

// SourceFormatOf derives the container format of in from its name and classification.
func SourceFormatOf(in Input, class Classification) command.SourceFormat {
	switch ext := strings.ToLower(filepath.Ext(in.Name)); {
	case ext == ".pfx":
		return command.FormatPKCS12
	case ext == ".der", class == LikelyBinary:
		return command.FormatDER
	case class == PEM:
		return command.FormatPEM
	default:
		return command.FormatUnknown
	}
}
