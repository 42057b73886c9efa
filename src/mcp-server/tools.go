// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	ToolGenerateArtifact   = "generate_artifact"
	ToolInspectCertificate = "inspect_certificate"
	ToolInspectCSR         = "inspect_csr"
	ToolValidateRSAKey     = "validate_rsa_key"
)

// inputDescription is shared by every inspection tool argument.
const inputDescription = "PEM text, base64-encoded DER, or a local file path"

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - generate_artifact: Generates an RSA key pair, CSR, self-signed or code signing certificate
//   - inspect_certificate: Reports the fields of a PEM, DER or PKCS#7 certificate
//   - inspect_csr: Reports the subject, public key and extensions of a certificate request
//   - validate_rsa_key: Checks whether input is an RSA private or public key
//
// Numeric and digest arguments left out of a call fall back to the
// configured defaults.
func createTools() []ToolDefinition {
	formatOption := mcp.WithString("format",
		mcp.Description("Report format: 'markdown', 'html', 'json' or 'text' (default: configured report format)"),
		mcp.Enum("markdown", "html", "json", "text"),
	)

	return []ToolDefinition{
		{
			Tool: mcp.NewTool(ToolGenerateArtifact,
				mcp.WithDescription("Generate an RSA key pair, a certificate signing request, a self-signed certificate or a code signing certificate"),
				mcp.WithString("kind",
					mcp.Required(),
					mcp.Description("Artifact kind: 'rsa', 'csr', 'selfSigned' or 'codeSigning'"),
					mcp.Enum("rsa", "csr", "selfSigned", "codeSigning"),
				),
				mcp.WithNumber("key_size",
					mcp.Description("RSA modulus size in bits: 1024, 2048, 3072 or 4096 (default: configured key size)"),
				),
				mcp.WithString("signature_digest",
					mcp.Description("Signature digest: 'SHA-1', 'SHA-256', 'SHA-384' or 'SHA-512' (default: configured digest)"),
				),
				mcp.WithNumber("validity_years",
					mcp.Description("Certificate lifetime in whole years (default: configured validity)"),
				),
				mcp.WithString("common_name", mcp.Description("Subject common name (CN)")),
				mcp.WithString("organization", mcp.Description("Subject organization (O)")),
				mcp.WithString("organizational_unit", mcp.Description("Subject organizational unit (OU)")),
				mcp.WithString("city", mcp.Description("Subject locality (L)")),
				mcp.WithString("state", mcp.Description("Subject state or province (ST)")),
				mcp.WithString("country", mcp.Description("Subject two-letter country code (C)")),
				mcp.WithString("alt_names",
					mcp.Description("Comma-separated subject alternative names; prefix with 'IP:', 'email:' or 'URI:' for non-DNS entries"),
				),
				mcp.WithString("subject",
					mcp.Description("OpenSSL-style subject such as '/CN=example.com/O=Acme'; replaces the individual subject fields"),
				),
				mcp.WithString("output",
					mcp.Description("Output format: 'text', 'html' or 'json' (default: text)"),
					mcp.Enum("text", "html", "json"),
					mcp.DefaultString("text"),
				),
			),
			Handler: handleGenerateArtifact,
		},
		{
			Tool: mcp.NewTool(ToolInspectCertificate,
				mcp.WithDescription("Inspect a X509 certificate and report its subject, issuer, validity, key and extensions"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(inputDescription),
				),
				mcp.WithString("filename",
					mcp.Description("Original file name; a '.der' or '.pfx' extension marks the payload as binary"),
				),
				formatOption,
			),
			Handler: handleInspectCertificate,
		},
		{
			Tool: mcp.NewTool(ToolInspectCSR,
				mcp.WithDescription("Inspect a certificate signing request and report its subject, public key and requested extensions"),
				mcp.WithString("csr",
					mcp.Required(),
					mcp.Description(inputDescription),
				),
				formatOption,
			),
			Handler: handleInspectCSR,
		},
		{
			Tool: mcp.NewTool(ToolValidateRSAKey,
				mcp.WithDescription("Check whether input is a valid RSA private key or RSA public key"),
				mcp.WithString("key",
					mcp.Required(),
					mcp.Description(inputDescription),
				),
				formatOption,
			),
			Handler: handleValidateRSAKey,
		},
	}
}
