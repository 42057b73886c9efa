// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package artifact

import "errors"

var (
	// ErrInvalidRequest indicates a missing or invalid generation form field.
	ErrInvalidRequest = errors.New("artifact: invalid request")

	// ErrSigningFailed indicates that signing a certificate or CSR failed.
	ErrSigningFailed = errors.New("artifact: signing failed")

	// ErrUnrecognizedFormat indicates that inspection input is neither PEM-marked nor binary.
	ErrUnrecognizedFormat = errors.New("artifact: unrecognized format")

	// ErrInvalidArtifactFormat indicates that a nominally PEM payload could not be parsed.
	ErrInvalidArtifactFormat = errors.New("artifact: invalid artifact format")

	// ErrInvalidKey indicates that neither a private nor a public key parse succeeded.
	ErrInvalidKey = errors.New("artifact: invalid key")
)
