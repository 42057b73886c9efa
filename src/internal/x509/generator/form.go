// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
)

// Form holds raw generation inputs exactly as a front-end collects them.
// Numeric fields stay strings so that validation happens in one place.
type Form struct {
	Kind            string `json:"kind" yaml:"kind"`
	KeySize         string `json:"keySize" yaml:"keySize"`
	SignatureDigest string `json:"signatureDigest" yaml:"signatureDigest"`
	ValidityYears   string `json:"validityYears" yaml:"validityYears"`

	CommonName         string `json:"commonName" yaml:"commonName"`
	Organization       string `json:"organization" yaml:"organization"`
	OrganizationalUnit string `json:"organizationalUnit" yaml:"organizationalUnit"`
	City               string `json:"city" yaml:"city"`
	State              string `json:"state" yaml:"state"`
	Country            string `json:"country" yaml:"country"`

	// AltNames is a comma-separated list, e.g. "example.com, IP:10.0.0.1".
	AltNames string `json:"altNames" yaml:"altNames"`

	// Subject, when set, is an openssl-style DN ("/CN=a/OU=x/OU=y") that
	// replaces the six subject fields above.
	Subject string `json:"subject" yaml:"subject"`
}

// WithDefaults returns f with blank numeric and digest fields pre-filled.
// Fields the caller set are kept as-is, even when invalid.
func (f Form) WithDefaults(keySize int, digest string, validityYears int) Form {
	if strings.TrimSpace(f.KeySize) == "" && keySize > 0 {
		f.KeySize = strconv.Itoa(keySize)
	}
	if strings.TrimSpace(f.SignatureDigest) == "" {
		f.SignatureDigest = digest
	}
	if strings.TrimSpace(f.ValidityYears) == "" && validityYears > 0 {
		f.ValidityYears = strconv.Itoa(validityYears)
	}
	return f
}

// Build validates f and assembles the matching [artifact.GenerationRequest].
//
// Parameters:
//   - f: Raw form values
//
// Returns:
//   - artifact.GenerationRequest: RawKeyPairRequest, CSRRequest or CertificateRequest
//   - error: Wraps [artifact.ErrInvalidRequest] on any invalid or missing field
func Build(f Form) (artifact.GenerationRequest, error) {
	kind, err := artifact.ParseKind(f.Kind)
	if err != nil {
		return nil, err
	}

	bits, err := parseKeySize(f.KeySize)
	if err != nil {
		return nil, err
	}

	subject, err := f.DistinguishedName()
	if err != nil {
		return nil, err
	}

	if kind == artifact.KindRSA {
		return artifact.RawKeyPairRequest{KeySize: bits, Subject: subject}, nil
	}

	digest, err := artifact.ParseDigest(f.SignatureDigest)
	if err != nil {
		return nil, err
	}

	altNames, err := artifact.SplitAltNames(f.AltNames)
	if err != nil {
		return nil, err
	}

	if kind == artifact.KindCSR {
		return artifact.CSRRequest{
			Subject:         subject,
			KeySize:         bits,
			SignatureDigest: digest,
			AltNames:        altNames,
		}, nil
	}

	years, err := parseValidityYears(f.ValidityYears)
	if err != nil {
		return nil, err
	}

	return artifact.CertificateRequest{
		Variant:         kind,
		Subject:         subject,
		KeySize:         bits,
		SignatureDigest: digest,
		ValidityYears:   years,
		SelfSigned:      kind == artifact.KindSelfSigned,
		AltNames:        altNames,
	}, nil
}

// DistinguishedName returns the subject described by the form. Empty fields
// are left out; the remaining ones keep the order CN, C, ST, L, O, OU.
func (f Form) DistinguishedName() (artifact.DistinguishedName, error) {
	var dn artifact.DistinguishedName
	if strings.TrimSpace(f.Subject) != "" {
		parsed, err := artifact.ParseDN(f.Subject)
		if err != nil {
			return nil, err
		}
		dn = parsed
	} else {
		for _, a := range []artifact.Attribute{
			{Type: artifact.CommonName, Value: f.CommonName},
			{Type: artifact.Country, Value: f.Country},
			{Type: artifact.State, Value: f.State},
			{Type: artifact.Locality, Value: f.City},
			{Type: artifact.Organization, Value: f.Organization},
			{Type: artifact.OrganizationalUnit, Value: f.OrganizationalUnit},
		} {
			if a.Value = strings.TrimSpace(a.Value); a.Value != "" {
				dn = append(dn, a)
			}
		}
	}

	for i, a := range dn {
		if a.Type != artifact.Country {
			continue
		}
		code, err := CountryCode(a.Value)
		if err != nil {
			return nil, err
		}
		dn[i].Value = code
	}
	return dn, nil
}

// CountryCode validates an ISO 3166-1 alpha-2 code and returns it upper-cased.
func CountryCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return "", fmt.Errorf("%w: country %q is not a two-letter code", artifact.ErrInvalidRequest, s)
	}
	region, err := language.ParseRegion(s)
	if err != nil || !region.IsCountry() {
		return "", fmt.Errorf("%w: unknown country code %q", artifact.ErrInvalidRequest, s)
	}
	return strings.ToUpper(s), nil
}

func parseKeySize(s string) (int, error) {
	bits, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !artifact.ValidKeySize(bits) {
		return 0, fmt.Errorf("%w: key size %q must be one of %v", artifact.ErrInvalidRequest, s, artifact.KeySizes)
	}
	return bits, nil
}

func parseValidityYears(s string) (int, error) {
	years, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || years <= 0 {
		return 0, fmt.Errorf("%w: validity %q must be a positive number of years", artifact.ErrInvalidRequest, s)
	}
	return years, nil
}
