// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspector

import (
	"crypto/x509"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	x509certs "github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/command"
)

// Inspector runs the inspection pipeline. It keeps no state between calls;
// every method receives its input explicitly.
type Inspector struct {
	*x509certs.Codec

	// Now is the clock the validity flag is computed against.
	Now func() time.Time
}

// New creates an Inspector using the system clock.
func New() *Inspector {
	return &Inspector{
		Codec: x509certs.New(),
		Now:   time.Now,
	}
}

// CertificateReport is the fixed-field certificate report.
type CertificateReport struct {
	*artifact.ParsedCertificate

	// Valid is true when the inspection time is not after NotAfter.
	Valid bool `json:"valid"`
	// Kind is the marker-sniffed type of the normalized text.
	Kind    string               `json:"kind"`
	Source  command.SourceFormat `json:"source"`
	Command string               `json:"command"`
}

// CSRReport is the certificate request report.
type CSRReport struct {
	*artifact.ParsedCSR

	Command string `json:"command"`
}

// KeyReport is the key validation report.
type KeyReport struct {
	*artifact.ParsedKey

	Command string `json:"command"`
}

// InspectCertificate normalizes, parses and extracts a certificate report.
//
// Parameters:
//   - in: Upload bytes or pasted text
//
// Returns:
//   - *CertificateReport: Full report; nil on error
//   - error: Wraps [artifact.ErrUnrecognizedFormat] or [artifact.ErrInvalidArtifactFormat]
func (i *Inspector) InspectCertificate(in Input) (*CertificateReport, error) {
	normalized, class, err := Normalize(in.Content())
	if err != nil {
		return nil, err
	}

	cert, err := i.DecodeCertificate(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", artifact.ErrInvalidArtifactFormat, err)
	}

	parsed, err := extractCertificate(i.Codec, cert)
	if err != nil {
		return nil, err
	}

	source := SourceFormatOf(in, class)
	return &CertificateReport{
		ParsedCertificate: parsed,
		Valid:             parsed.ValidAt(i.Now()),
		Kind:              DetectKind(normalized),
		Source:            source,
		Command:           command.InspectCertificate(source),
	}, nil
}

// InspectCSR parses a PEM or DER certificate request.
//
// Parameters:
//   - in: Upload bytes or pasted text
//
// Returns:
//   - *CSRReport: Subject, public key, requested extensions; nil on error
//   - error: Wraps [artifact.ErrInvalidArtifactFormat]
func (i *Inspector) InspectCSR(in Input) (*CSRReport, error) {
	csr, err := i.DecodeCSR(in.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", artifact.ErrInvalidArtifactFormat, err)
	}

	parsed, err := extractCSR(i.Codec, csr)
	if err != nil {
		return nil, err
	}

	return &CSRReport{ParsedCSR: parsed, Command: command.InspectCSR()}, nil
}

// keyAttempt is one fallible parse in the key validation order.
type keyAttempt func(data []byte) (*artifact.ParsedKey, error)

// ValidateKey tries a private key parse, then a public key parse, and
// returns the first success.
//
// Parameters:
//   - in: Key file bytes or pasted text
//
// Returns:
//   - *KeyReport: Which kind of key parsed and its public half
//   - error: Wraps [artifact.ErrInvalidKey] when every attempt fails
func (i *Inspector) ValidateKey(in Input) (*KeyReport, error) {
	data := in.Content()

	for _, attempt := range []keyAttempt{i.parsePrivateKey, i.parsePublicKey} {
		key, err := attempt(data)
		if err != nil {
			continue
		}
		return &KeyReport{ParsedKey: key, Command: command.ValidateKey(key.KeyKind)}, nil
	}
	return nil, fmt.Errorf("%w: input is neither an RSA private key nor an RSA public key", artifact.ErrInvalidKey)
}

func (i *Inspector) parsePrivateKey(data []byte) (*artifact.ParsedKey, error) {
	key, encoding, err := i.DecodePrivateKey(data)
	if err != nil {
		return nil, err
	}
	return i.parsedKey(artifact.PrivateKey, encoding, &key.PublicKey)
}

func (i *Inspector) parsePublicKey(data []byte) (*artifact.ParsedKey, error) {
	key, encoding, err := i.DecodePublicKey(data)
	if err != nil {
		return nil, err
	}
	return i.parsedKey(artifact.PublicKey, encoding, key)
}

func (i *Inspector) parsedKey(kind artifact.KeyKind, encoding string, pub any) (*artifact.ParsedKey, error) {
	info, err := publicKeyInfo(i.Codec, x509.RSA, pub)
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &artifact.ParsedKey{
		KeyKind:     kind,
		Encoding:    encoding,
		PublicKey:   info,
		Fingerprint: artifact.NewFingerprint(der),
	}, nil
}
