// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/inspector"
)

// NotAvailable is shown for absent optional values.
const NotAvailable = "N/A"

// DateLayout formats report timestamps, always in UTC.
const DateLayout = "2006-01-02 15:04:05 MST"

const (
	SectionBasic   = "Basic Information"
	SectionSubject = "Certificate Information"
	SectionIssuer  = "Issuer Information"
	SectionOther   = "Other Information"
	SectionKey     = "Key Information"
)

// Row is one report line.
type Row struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// Block is preformatted report content shown below the table.
type Block struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Report is a renderer-neutral inspection result.
type Report struct {
	Title   string
	Rows    []Row
	Blocks  []Block
	Command string

	// Data is the value encoded by [Report.JSON].
	Data any

	// listing replaces the generic text rendering when set.
	listing string
}

// CertificateReport lays out the fixed certificate report fields.
func CertificateReport(r *inspector.CertificateReport) *Report {
	c := r.ParsedCertificate

	rows := []Row{
		{SectionBasic, "Common Name (CN)", orNA(c.Subject.Get(artifact.CommonName))},
		{SectionBasic, "Subject Alternative Names", joinOrNA(artifact.AltNameValues(c.AltNames))},
		{SectionBasic, "Hex Serial Number", c.SerialHex},
		{SectionBasic, "Decimal Serial Number", c.SerialDecimal},
		{SectionBasic, "Thumbprint", c.Fingerprint.SHA1},
		{SectionBasic, "SHA-256 Fingerprint", c.Fingerprint.SHA256},
		{SectionBasic, "Date Issued", formatDate(c.NotBefore)},
		{SectionBasic, "Date of Expiration", formatDate(c.NotAfter)},
		{SectionBasic, "Certificate is Valid", boolWord(r.Valid)},
		{SectionBasic, "Certificate Type", r.Kind},
	}
	rows = append(rows, dnRows(SectionSubject, c.Subject)...)
	rows = append(rows, dnRows(SectionIssuer, c.Issuer)...)
	rows = append(rows,
		Row{SectionOther, "Version", strconv.Itoa(c.DisplayVersion())},
		Row{SectionOther, "Signature Algorithm", c.SignatureAlgorithmOID},
		Row{SectionOther, "Signature Algorithm Name", c.SignatureAlgorithmName},
		Row{SectionOther, "Public Key", keyDescription(c.PublicKey)},
		Row{SectionOther, "Key Usage", joinOrNA(c.KeyUsage)},
		Row{SectionOther, "Extended Key Usage", joinOrNA(c.ExtendedKeyUsage)},
		Row{SectionOther, "Extensions", joinOrNA(c.Extensions)},
	)

	return &Report{
		Title:   "Certificate Details",
		Rows:    rows,
		Blocks:  []Block{{Title: "Public Key", Body: c.PublicKey.PEM}},
		Command: r.Command,
		Data:    r,
	}
}

// CSRReport lays out the certificate request fields. Its text rendering is
// the classic request listing (see [CSRListing]).
func CSRReport(r *inspector.CSRReport) *Report {
	c := r.ParsedCSR

	rows := dnRows(SectionSubject, c.Subject)
	rows = append(rows,
		Row{SectionKey, "Public Key", keyDescription(c.PublicKey)},
		Row{SectionOther, "Subject Alternative Names", joinOrNA(artifact.AltNameValues(c.AltNames))},
		Row{SectionOther, "Requested Extensions", joinOrNA(c.Extensions)},
		Row{SectionOther, "Signature Algorithm Name", c.SignatureAlgorithmName},
		Row{SectionOther, "Signature Verified", boolWord(c.SignatureValid)},
		Row{SectionOther, "SHA-256 Fingerprint", c.Fingerprint.SHA256},
	)

	return &Report{
		Title:   "CSR Details",
		Rows:    rows,
		Blocks:  []Block{{Title: "Public Key", Body: c.PublicKey.PEM}},
		Command: r.Command,
		Data:    r,
		listing: CSRListing(c),
	}
}

// KeyReport lays out a key validation result. The title is the validation
// message.
func KeyReport(r *inspector.KeyReport) *Report {
	k := r.ParsedKey

	return &Report{
		Title: KeyMessage(k.KeyKind),
		Rows: []Row{
			{SectionKey, "Key Type", string(k.KeyKind)},
			{SectionKey, "Encoding", k.Encoding},
			{SectionKey, "Public Key", keyDescription(k.PublicKey)},
			{SectionKey, "SHA-256 Fingerprint", k.Fingerprint.SHA256},
		},
		Blocks:  []Block{{Title: "Public Key", Body: k.PublicKey.PEM}},
		Command: r.Command,
		Data:    r,
	}
}

// Render dispatches on f.
func (r *Report) Render(f Format) (string, error) {
	switch f {
	case FormatMarkdown, "":
		return r.Markdown()
	case FormatHTML:
		return r.HTML()
	case FormatJSON:
		return r.JSON()
	case FormatText:
		return r.Text(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func (r *Report) tableRows() [][]string {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{row.Section, row.Field, row.Value})
	}
	return rows
}

// markdownEscaper keeps certificate text inside its cell and out of any
// HTML a markdown viewer would produce.
var markdownEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"|", `\|`,
	"\r", " ",
	"\n", " ",
)

// markdownRows is tableRows with every cell escaped for a markdown table.
func (r *Report) markdownRows() [][]string {
	rows := r.tableRows()
	for _, row := range rows {
		for i, cell := range row {
			row[i] = markdownEscaper.Replace(cell)
		}
	}
	return rows
}

// Markdown renders the report rows as a markdown table followed by the
// preformatted blocks and the equivalent command.
func (r *Report) Markdown() (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	fmt.Fprintf(buf, "## %s\n\n", r.Title)

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Section", "Field", "Value"})
	if err := table.Bulk(r.markdownRows()); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}

	for _, b := range r.Blocks {
		fmt.Fprintf(buf, "\n### %s\n\n```\n%s", b.Title, b.Body)
		ensureNewline(buf)
		buf.WriteString("```\n")
	}
	if r.Command != "" {
		fmt.Fprintf(buf, "\n### Equivalent OpenSSL Command\n\n```sh\n%s", r.Command)
		ensureNewline(buf)
		buf.WriteString("```\n")
	}
	return buf.String(), nil
}

// HTML renders the report as an escaped HTML table followed by the
// preformatted blocks and the equivalent command.
func (r *Report) HTML() (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	fmt.Fprintf(buf, "<h3>%s</h3>\n", html.EscapeString(r.Title))

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewHTML(renderer.HTMLConfig{
			EscapeContent: true,
			TableClass:    "report-table",
		})),
	)
	table.Header([]string{"Section", "Field", "Value"})
	if err := table.Bulk(r.tableRows()); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}

	for _, b := range r.Blocks {
		fmt.Fprintf(buf, "<h4>%s</h4>\n<pre>%s</pre>\n", html.EscapeString(b.Title), html.EscapeString(b.Body))
	}
	if r.Command != "" {
		fmt.Fprintf(buf, "<h4>Equivalent OpenSSL Command</h4>\n<pre class=\"openssl-command\">%s</pre>\n", html.EscapeString(r.Command))
	}
	return buf.String(), nil
}

// JSON encodes the underlying inspection report with two-space indentation.
func (r *Report) JSON() (string, error) {
	data, err := json.MarshalIndent(r.Data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render json: %w", err)
	}
	return string(data) + "\n", nil
}

// Text renders the report as aligned "Field: Value" lines grouped by section.
func (r *Report) Text() string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if r.listing != "" {
		buf.WriteString(r.listing)
	} else {
		buf.WriteString(r.Title)
		buf.WriteByte('\n')

		width := 0
		for _, row := range r.Rows {
			width = max(width, len(row.Field))
		}

		section := ""
		for _, row := range r.Rows {
			if row.Section != section {
				section = row.Section
				fmt.Fprintf(buf, "\n%s:\n", section)
			}
			fmt.Fprintf(buf, "  %-*s  %s\n", width+1, row.Field+":", row.Value)
		}
		for _, b := range r.Blocks {
			fmt.Fprintf(buf, "\n%s:\n%s", b.Title, b.Body)
			ensureNewline(buf)
		}
	}

	if r.Command != "" {
		fmt.Fprintf(buf, "\nEquivalent OpenSSL Command:\n%s", r.Command)
		ensureNewline(buf)
	}
	return buf.String()
}

// CSRListing renders a request in the classic listing format: subject
// attributes, the public key PEM, then the requested extensions with their
// alternative names.
func CSRListing(c *artifact.ParsedCSR) string {
	var b strings.Builder

	b.WriteString("Subject:\n")
	for _, attr := range c.Subject {
		fmt.Fprintf(&b, "  %s: %s\n", attr.Type.LongName(), attr.Value)
	}

	b.WriteString("\nPublic Key:\n")
	b.WriteString(c.PublicKey.PEM)

	if len(c.Extensions) > 0 {
		b.WriteString("\nExtensions:\n")
		for _, name := range c.Extensions {
			value := NotAvailable
			if name == inspector.ExtensionName(artifact.OIDSubjectAltName) && len(c.AltNames) > 0 {
				value = strings.Join(artifact.AltNameValues(c.AltNames), ", ")
			}
			fmt.Fprintf(&b, "  %s: %s\n", name, value)
		}
	}
	return b.String()
}

// KeyMessage is the success message of a key validation.
func KeyMessage(kind artifact.KeyKind) string {
	if kind == artifact.PublicKey {
		return "RSA Public Key is valid!"
	}
	return "RSA Private Key is valid!"
}

// Messages shown in place of a report when inspection fails.
const (
	InvalidCertificateMessage = "Invalid certificate format. Please check the input."
	InvalidCSRMessage         = "Invalid CSR format. Please check the input."
	InvalidKeyMessage         = "Invalid RSA Key format. Please check the file."
)

// AttributeValue formats a subject or issuer value. Country codes gain their
// English display name, e.g. "US (United States)".
func AttributeValue(attr artifact.Attribute) string {
	if attr.Type != artifact.Country {
		return attr.Value
	}
	region, err := language.ParseRegion(attr.Value)
	if err != nil || !region.IsCountry() {
		return attr.Value
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return attr.Value
	}
	return fmt.Sprintf("%s (%s)", attr.Value, name)
}

func dnRows(section string, dn artifact.DistinguishedName) []Row {
	if len(dn) == 0 {
		return []Row{{section, "Fields", NotAvailable}}
	}
	rows := make([]Row, 0, len(dn))
	for _, attr := range dn {
		rows = append(rows, Row{section, attr.Type.LongName(), AttributeValue(attr)})
	}
	return rows
}

func keyDescription(pub artifact.PublicKeyInfo) string {
	if pub.Bits == 0 {
		return pub.Algorithm
	}
	return fmt.Sprintf("%s %d bits", pub.Algorithm, pub.Bits)
}

func formatDate(t time.Time) string { return t.UTC().Format(DateLayout) }

func boolWord(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}

func ensureNewline(buf gc.Buffer) {
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
}
