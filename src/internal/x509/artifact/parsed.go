// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package artifact

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Fingerprint holds digests computed over an artifact's DER encoding.
type Fingerprint struct {
	SHA1   string `json:"sha1"`
	SHA256 string `json:"sha256"`
}

// NewFingerprint digests der. Hex output is lower-case without separators.
func NewFingerprint(der []byte) Fingerprint {
	s1 := sha1.Sum(der)
	s256 := sha256.Sum256(der)
	return Fingerprint{
		SHA1:   hex.EncodeToString(s1[:]),
		SHA256: hex.EncodeToString(s256[:]),
	}
}

// PublicKeyInfo describes public key material found in an artifact.
type PublicKeyInfo struct {
	Algorithm string `json:"algorithm"`
	Bits      int    `json:"bits"`
	PEM       string `json:"pem"`
}

// ParsedArtifact is one of *ParsedCertificate, *ParsedCSR or *ParsedKey.
type ParsedArtifact interface {
	ArtifactType() string
	isParsedArtifact()
}

// ParsedCertificate is the decoded form of an X.509 certificate.
type ParsedCertificate struct {
	Subject  DistinguishedName `json:"subject"`
	Issuer   DistinguishedName `json:"issuer"`
	AltNames []AltName         `json:"altNames,omitempty"`

	SerialHex     string `json:"serialHex"`
	SerialDecimal string `json:"serialDecimal"`

	NotBefore time.Time `json:"notBefore"`
	NotAfter  time.Time `json:"notAfter"`

	// Version is zero-based as encoded; DisplayVersion adds one.
	Version int `json:"version"`

	SignatureAlgorithmOID  string `json:"signatureAlgorithmOid"`
	SignatureAlgorithmName string `json:"signatureAlgorithm"`

	PublicKey        PublicKeyInfo `json:"publicKey"`
	KeyUsage         []string      `json:"keyUsage,omitempty"`
	ExtendedKeyUsage []string      `json:"extendedKeyUsage,omitempty"`
	Extensions       []string      `json:"extensions,omitempty"`

	Fingerprint Fingerprint `json:"fingerprint"`
	DER         []byte      `json:"-"`
}

// DisplayVersion returns the one-based certificate version (3 for v3).
func (c *ParsedCertificate) DisplayVersion() int { return c.Version + 1 }

// ValidAt reports whether at is not later than NotAfter.
// NotBefore is not consulted.
func (c *ParsedCertificate) ValidAt(at time.Time) bool { return !at.After(c.NotAfter) }

func (c *ParsedCertificate) ArtifactType() string { return "certificate" }
func (c *ParsedCertificate) isParsedArtifact() {}

// ParsedCSR is the decoded form of a PKCS#10 certificate signing request.
type ParsedCSR struct {
	Subject    DistinguishedName `json:"subject"`
	PublicKey  PublicKeyInfo     `json:"publicKey"`
	AltNames   []AltName         `json:"altNames,omitempty"`
	Extensions []string          `json:"extensions,omitempty"`

	SignatureAlgorithmName string `json:"signatureAlgorithm"`
	SignatureValid         bool   `json:"signatureValid"`

	Fingerprint Fingerprint `json:"fingerprint"`
	DER         []byte      `json:"-"`
}

func (c *ParsedCSR) ArtifactType() string { return "csr" }
func (c *ParsedCSR) isParsedArtifact() {}

// KeyKind distinguishes private from public key material.
type KeyKind string

const (
	PrivateKey KeyKind = "private"
	PublicKey  KeyKind = "public"
)

// ParsedKey is the result of a successful key validation.
type ParsedKey struct {
	KeyKind     KeyKind       `json:"kind"`
	Encoding    string        `json:"encoding"`
	PublicKey   PublicKeyInfo `json:"publicKey"`
	Fingerprint Fingerprint   `json:"fingerprint"`
}

func (k *ParsedKey) ArtifactType() string { return "key" }
func (k *ParsedKey) isParsedArtifact() {}
