// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package artifact

import (
	"strings"
	"time"
)

// FileExt is the filename extension of a produced artifact.
type FileExt string

const (
	ExtKey FileExt = "key"
	ExtPub FileExt = "pub"
	ExtCSR FileExt = "csr"
	ExtCrt FileExt = "crt"
)

// FileStem returns name with filesystem-hostile characters replaced by '_',
// or fallback when name is blank.
func FileStem(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 || r == 0x7f {
			return '_'
		}
		return r
	}, name)
}

// Filename builds "<stem>-<label>-<YYYY-MM-DD>.<ext>" where stem is the
// sanitized common name or fallback. Only the date depends on the clock.
func Filename(commonName, fallback, label string, ext FileExt, date time.Time) string {
	return FileStem(commonName, fallback) + "-" + label + "-" + date.Format(time.DateOnly) + "." + string(ext)
}
