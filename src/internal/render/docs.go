// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package render turns generation results and inspection reports into
// presentable output.
//
// Generated artifacts are rendered as HTML output blocks (one per artifact,
// with copy and download controls) or as plain terminal text. Inspection
// reports are rendered as markdown tables, HTML tables, JSON or text. Tables
// are drawn with [tablewriter]; HTML blocks are built with [html/template].
// Both write into buffers taken from the gc pool.
//
// PEM text is never HTML-escaped: it contains only base64 and armor lines,
// and must stay byte-exact for copy and download. Every other caller-supplied
// string (titles, filenames, subject values) is escaped.
//
// A [Panel] models a single output slot. Front-ends render into it with
// [Panel.Show] and clear it with [Panel.Hide] on error, so a failed operation
// never leaves a stale or partially overwritten result on screen.
//
// [tablewriter]: https://github.com/olekukonko/tablewriter
package render
