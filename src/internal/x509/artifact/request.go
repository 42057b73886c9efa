// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package artifact

import (
	"crypto/x509"
	"fmt"
	"strings"
	"time"
)

// Kind selects which artifacts a generation produces.
type Kind string

const (
	KindRSA         Kind = "rsa"
	KindCSR         Kind = "csr"
	KindSelfSigned  Kind = "selfSigned"
	KindCodeSigning Kind = "codeSigning"
)

// Kinds lists every supported generation kind in form order.
var Kinds = []Kind{KindRSA, KindCSR, KindSelfSigned, KindCodeSigning}

// ParseKind returns the Kind named by s (case-insensitive).
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown artifact kind %q", ErrInvalidRequest, s)
}

// KeySizes lists the accepted RSA modulus lengths in bits.
var KeySizes = []int{1024, 2048, 3072, 4096}

// ValidKeySize reports whether bits is one of KeySizes.
func ValidKeySize(bits int) bool {
	for _, s := range KeySizes {
		if s == bits {
			return true
		}
	}
	return false
}

// Digest is a signature hash name.
type Digest string

const (
	SHA1   Digest = "SHA-1"
	SHA256 Digest = "SHA-256"
	SHA384 Digest = "SHA-384"
	SHA512 Digest = "SHA-512"
)

var digestAlgorithms = map[Digest]x509.SignatureAlgorithm{
	SHA1:   x509.SHA1WithRSA,
	SHA256: x509.SHA256WithRSA,
	SHA384: x509.SHA384WithRSA,
	SHA512: x509.SHA512WithRSA,
}

// ParseDigest accepts "SHA-256", "sha256", "SHA256withRSA" and similar spellings.
func ParseDigest(s string) (Digest, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.TrimSuffix(norm, "WITHRSA")
	norm = strings.ReplaceAll(norm, "-", "")
	switch norm {
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	case "SHA384":
		return SHA384, nil
	case "SHA512":
		return SHA512, nil
	}
	return "", fmt.Errorf("%w: unknown signature digest %q", ErrInvalidRequest, s)
}

// SignatureAlgorithm maps the digest to its RSA PKCS#1 v1.5 signature algorithm.
func (d Digest) SignatureAlgorithm() (x509.SignatureAlgorithm, error) {
	alg, ok := digestAlgorithms[d]
	if !ok {
		return x509.UnknownSignatureAlgorithm, fmt.Errorf("%w: unsupported digest %q", ErrSigningFailed, d)
	}
	return alg, nil
}

// GenerationRequest is one of RawKeyPairRequest, CSRRequest or CertificateRequest.
type GenerationRequest interface {
	Kind() Kind
	Bits() int
	// DN returns the requested subject.
	DN() DistinguishedName
	isGenerationRequest()
}

// RawKeyPairRequest asks for a bare RSA key pair.
type RawKeyPairRequest struct {
	KeySize int
	// Subject only feeds display metadata such as filenames.
	Subject DistinguishedName
}

func (r RawKeyPairRequest) Kind() Kind { return KindRSA }
func (r RawKeyPairRequest) Bits() int { return r.KeySize }
func (r RawKeyPairRequest) DN() DistinguishedName { return r.Subject }
func (r RawKeyPairRequest) isGenerationRequest() {}

// CSRRequest asks for a certificate signing request and its key.
type CSRRequest struct {
	Subject         DistinguishedName
	KeySize         int
	SignatureDigest Digest
	AltNames        []AltName
}

func (r CSRRequest) Kind() Kind { return KindCSR }
func (r CSRRequest) Bits() int { return r.KeySize }
func (r CSRRequest) DN() DistinguishedName { return r.Subject }
func (r CSRRequest) isGenerationRequest() {}

// ExampleIssuer is the issuer named by certificates that are not self-signed.
var ExampleIssuer = DistinguishedName{
	{Type: CommonName, Value: "Your Issuing CA"},
	{Type: Country, Value: "US"},
}

// CertificateRequest asks for a certificate and its key.
//
// A non-self-signed request is still signed by its own freshly generated key.
// The issuer it names (ExampleIssuer) does not hold that key, so the result is a
// self-signature presented under a different issuer label.
type CertificateRequest struct {
	Variant         Kind
	Subject         DistinguishedName
	KeySize         int
	SignatureDigest Digest
	ValidityYears   int
	SelfSigned      bool
	AltNames        []AltName
}

func (r CertificateRequest) Kind() Kind { return r.Variant }
func (r CertificateRequest) Bits() int { return r.KeySize }
func (r CertificateRequest) DN() DistinguishedName { return r.Subject }
func (r CertificateRequest) isGenerationRequest() {}

// Issuer returns the subject itself for self-signed requests and ExampleIssuer otherwise.
func (r CertificateRequest) Issuer() DistinguishedName {
	if r.SelfSigned {
		return r.Subject
	}
	return ExampleIssuer
}

// MaxNotAfterYear is the last year an X.509 GeneralizedTime can carry.
const MaxNotAfterYear = 9999

// Validity returns the window starting at notBefore and lasting ValidityYears calendar years.
func (r CertificateRequest) Validity(notBefore time.Time) (time.Time, time.Time, error) {
	if r.ValidityYears <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: validity must be a positive number of years", ErrInvalidRequest)
	}
	if r.ValidityYears > MaxNotAfterYear-notBefore.UTC().Year() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: validity of %d years ends after year %d", ErrInvalidRequest, r.ValidityYears, MaxNotAfterYear)
	}
	notAfter := AddYears(notBefore, r.ValidityYears)
	if !notAfter.After(notBefore) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: notAfter is not after notBefore", ErrInvalidRequest)
	}
	return notBefore, notAfter, nil
}

// AddYears adds calendar years to t. A February 29 start lands on February 28
// when the target year is not a leap year.
func AddYears(t time.Time, years int) time.Time {
	y, m, d := t.Date()
	target := y + years
	if last := daysIn(m, target); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(target, m, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
