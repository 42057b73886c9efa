// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import "io"

// Panel is a single output slot. Show replaces its content entirely and
// Hide clears it, so a result is either fully present or absent.
//
// Thread Safety: Panel is not safe for concurrent use. Each front-end
// invocation owns its own panel.
type Panel struct {
	content string
	visible bool
}

// Show replaces the panel content and makes it visible.
func (p *Panel) Show(content string) {
	p.content = content
	p.visible = true
}

// Hide clears the panel.
func (p *Panel) Hide() {
	p.content = ""
	p.visible = false
}

// Visible reports whether the panel holds content.
func (p *Panel) Visible() bool { return p.visible }

// Content returns the visible content, or "" when hidden.
func (p *Panel) Content() string { return p.content }

// Flush writes the visible content to w. A hidden panel writes nothing.
func (p *Panel) Flush(w io.Writer) error {
	if !p.visible {
		return nil
	}
	_, err := io.WriteString(w, p.content)
	return err
}
