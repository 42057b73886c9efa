// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package command

import "github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"

// SourceFormat is the container format an inspected certificate arrived in.
type SourceFormat string

const (
	FormatPEM     SourceFormat = "PEM"
	FormatDER     SourceFormat = "DER"
	FormatPKCS12  SourceFormat = "PKCS12"
	FormatUnknown SourceFormat = "UNKNOWN"
)

// InspectCertificate returns the openssl command that prints a certificate
// stored in the given format.
func InspectCertificate(format SourceFormat) string {
	switch format {
	case FormatPEM:
		return "openssl x509 -in certificate.pem -text -noout"
	case FormatDER:
		return "openssl x509 -inform der -in certificate.der -text -noout"
	case FormatPKCS12:
		return "openssl pkcs12 -in certificate.pfx -nodes -info"
	default:
		return "# Unknown certificate type. Please check the format."
	}
}

// InspectCSR returns the openssl command that prints a certificate request.
func InspectCSR() string { return "openssl req -in csr.pem -text -noout" }

// ValidateKey returns the openssl command that checks a key of the given kind.
func ValidateKey(kind artifact.KeyKind) string {
	if kind == artifact.PublicKey {
		return "openssl rsa -pubin -in key.pub -text -noout"
	}
	return "openssl rsa -in key.pem -check -noout"
}
