// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/generator"
)

// pemMediaType is the media type of the download links.
const pemMediaType = "application/x-pem-file"

var blockTemplate = template.Must(template.New("output-section").Parse(`<div class="output-section">
  <h4>{{.Title}}</h4>
  <pre>{{.PEM}}</pre>
  <div class="action-buttons">
    <button type="button" class="copy-button">Copy {{.Title}}</button>
    <a class="download-button" download="{{.Filename}}" href="{{.Href}}">Download {{.Title}}</a>
  </div>
</div>
`))

// blockData is the template view of one artifact.
type blockData struct {
	Title    string
	PEM      template.HTML
	Filename string
	Href     template.URL
}

// DataURL returns the download link for pem.
func DataURL(pem string) string {
	return "data:" + pemMediaType + ";base64," + base64.StdEncoding.EncodeToString([]byte(pem))
}

// HTMLBlocks renders one output section per artifact, in order.
//
// Titles and filenames are escaped; PEM text is inserted verbatim.
//
// Parameters:
//   - artifacts: Generated artifacts in presentation order
//
// Returns:
//   - string: Concatenated HTML sections
//   - error: Template execution failure
func HTMLBlocks(artifacts []generator.Artifact) (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, a := range artifacts {
		data := blockData{
			Title:    a.Title,
			PEM:      template.HTML(a.PEM),
			Filename: a.Filename,
			Href:     template.URL(DataURL(a.PEM)),
		}
		if err := blockTemplate.Execute(buf, data); err != nil {
			return "", fmt.Errorf("render %s block: %w", a.Title, err)
		}
	}
	return buf.String(), nil
}

// Text renders artifacts for a terminal: a header line naming the title and
// filename, then the PEM text.
func Text(artifacts []generator.Artifact) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for i, a := range artifacts {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(buf, "==> %s (%s)\n", a.Title, a.Filename)
		buf.WriteString(a.PEM)
		if n := len(a.PEM); n == 0 || a.PEM[n-1] != '\n' {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
