// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package inspector implements the artifact inspection pipeline:
//
//	Input -> Normalize -> Parse -> Extract -> Report
//
// Certificates go through a textual format heuristic ([Classify]) before
// parsing: PEM text passes unchanged and binary input is armored as a
// CERTIFICATE block. The heuristic treats every binary container as DER, so
// a PKCS#12 upload is wrapped too and then fails to parse.
//
// Certificate requests are accepted as PEM or DER. Key validation is an
// ordered list of parse attempts (private, then public) where the first
// success wins.
//
// Every method returns either a complete report or an error, never both.
package inspector
