// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/render"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/generator"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/inspector"
)

// pemMarker identifies pasted PEM text of any block type.
const pemMarker = "-----BEGIN "

// handleGenerateArtifact runs the generation pipeline for one request.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: Tool call carrying the generation form arguments
//   - wb: Shared dependencies; its configuration fills omitted numeric and digest arguments
//
// Returns:
//   - The artifacts and the equivalent openssl command in the requested output format
//   - An error result (IsError) when the request is invalid; no partial output is returned
func handleGenerateArtifact(ctx context.Context, request mcp.CallToolRequest, wb *Workbench) (*mcp.CallToolResult, error) {
	kind, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("kind parameter required: %v", err)), nil
	}

	defaults := wb.Config.Defaults
	form := generator.Form{
		Kind:               kind,
		KeySize:            numberArgument(request, "key_size"),
		SignatureDigest:    request.GetString("signature_digest", ""),
		ValidityYears:      numberArgument(request, "validity_years"),
		CommonName:         request.GetString("common_name", ""),
		Organization:       request.GetString("organization", ""),
		OrganizationalUnit: request.GetString("organizational_unit", ""),
		City:               request.GetString("city", ""),
		State:              request.GetString("state", ""),
		Country:            request.GetString("country", ""),
		AltNames:           request.GetString("alt_names", ""),
		Subject:            request.GetString("subject", ""),
	}.WithDefaults(defaults.KeySize, defaults.SignatureDigest, defaults.ValidityYears)

	result, err := wb.Generator.Generate(form)
	if err != nil {
		wb.Logger.Errorf("generate %s: %v", kind, err)
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate %s: %v", kind, err)), nil
	}
	wb.Logger.Printf("generated %s (%d artifacts)", kind, len(result.Artifacts))

	switch output := strings.ToLower(request.GetString("output", "text")); output {
	case "json":
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	case "html":
		blocks, err := render.HTMLBlocks(result.Artifacts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render result: %v", err)), nil
		}
		return mcp.NewToolResultText(blocks + `<pre class="openssl-command">` + html.EscapeString(result.Command) + "</pre>\n"), nil
	case "text":
		return mcp.NewToolResultText(render.Text(result.Artifacts) + "\nEquivalent OpenSSL Command:\n" + result.Command + "\n"), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported output format %q: use 'text', 'html' or 'json'", output)), nil
	}
}

// handleInspectCertificate reports the fields of one certificate.
func handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest, wb *Workbench) (*mcp.CallToolResult, error) {
	return inspect(request, wb, "certificate", render.InvalidCertificateMessage, func(in inspector.Input) (*render.Report, error) {
		r, err := wb.Inspector.InspectCertificate(in)
		if err != nil {
			return nil, err
		}
		return render.CertificateReport(r), nil
	})
}

// handleInspectCSR reports the subject, public key and extensions of a certificate request.
func handleInspectCSR(ctx context.Context, request mcp.CallToolRequest, wb *Workbench) (*mcp.CallToolResult, error) {
	return inspect(request, wb, "csr", render.InvalidCSRMessage, func(in inspector.Input) (*render.Report, error) {
		r, err := wb.Inspector.InspectCSR(in)
		if err != nil {
			return nil, err
		}
		return render.CSRReport(r), nil
	})
}

// handleValidateRSAKey reports whether the input is an RSA private or public key.
func handleValidateRSAKey(ctx context.Context, request mcp.CallToolRequest, wb *Workbench) (*mcp.CallToolResult, error) {
	return inspect(request, wb, "key", render.InvalidKeyMessage, func(in inspector.Input) (*render.Report, error) {
		r, err := wb.Inspector.ValidateKey(in)
		if err != nil {
			return nil, err
		}
		return render.KeyReport(r), nil
	})
}

// inspect resolves the named argument, runs one inspector operation and
// renders the report. Any failure yields failure as an error result.
func inspect(request mcp.CallToolRequest, wb *Workbench, param, failure string, run func(inspector.Input) (*render.Report, error)) (*mcp.CallToolResult, error) {
	value, err := request.RequireString(param)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s parameter required: %v", param, err)), nil
	}

	format, err := render.ParseFormat(request.GetString("format", wb.Config.Defaults.ReportFormat))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := run(resolveInput(value, request.GetString("filename", "")))
	if err != nil {
		wb.Logger.Errorf("%s: %v", param, err)
		return mcp.NewToolResultError(fmt.Sprintf("%s (%v)", failure, err)), nil
	}

	out, err := report.Render(format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// resolveInput turns a tool argument into an inspection input.
//
// PEM text is used as-is. Otherwise the value is tried as a file path, then
// as base64. Anything else is handed to the inspector verbatim so that it
// reports the format error. Decoded binary payloads without a name are named
// as DER so that their bytes are not trimmed.
func resolveInput(value, filename string) inspector.Input {
	if strings.Contains(value, pemMarker) {
		return inspector.Input{Name: filename, Data: []byte(value)}
	}

	if data, err := os.ReadFile(value); err == nil {
		if filename == "" {
			filename = value
		}
		return inspector.Input{Name: filename, Data: data}
	}

	if data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value)); err == nil {
		if filename == "" && inspector.Classify(data) == inspector.LikelyBinary {
			filename = "input.der"
		}
		return inspector.Input{Name: filename, Data: data}
	}

	return inspector.Input{Name: filename, Data: []byte(value)}
}

// numberArgument returns a numeric argument as form text, or "" when absent.
func numberArgument(request mcp.CallToolRequest, key string) string {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
