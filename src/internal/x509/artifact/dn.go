// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package artifact

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"
)

// AttributeType names a distinguished name attribute by its short form.
// Attributes with an OID outside the known set keep the dotted OID as their type.
type AttributeType string

const (
	CommonName         AttributeType = "CN"
	Country            AttributeType = "C"
	State              AttributeType = "ST"
	Locality           AttributeType = "L"
	Organization       AttributeType = "O"
	OrganizationalUnit AttributeType = "OU"
)

var attributeOIDs = map[AttributeType]asn1.ObjectIdentifier{
	CommonName:         {2, 5, 4, 3},
	Country:            {2, 5, 4, 6},
	Locality:           {2, 5, 4, 7},
	State:              {2, 5, 4, 8},
	Organization:       {2, 5, 4, 10},
	OrganizationalUnit: {2, 5, 4, 11},
}

var attributeNames = map[AttributeType]string{
	CommonName:         "commonName",
	Country:            "countryName",
	State:              "stateOrProvinceName",
	Locality:           "localityName",
	Organization:       "organizationName",
	OrganizationalUnit: "organizationalUnitName",
}

// Known reports whether t is one of the six supported attribute types.
func (t AttributeType) Known() bool {
	_, ok := attributeOIDs[t]
	return ok
}

// OID returns the object identifier for t, or nil when t is not a known type.
func (t AttributeType) OID() asn1.ObjectIdentifier { return attributeOIDs[t] }

// LongName returns the display name used in inspection reports (e.g. "commonName").
func (t AttributeType) LongName() string {
	if name, ok := attributeNames[t]; ok {
		return name
	}
	return string(t)
}

// attributeTypeFromOID maps an OID back to its AttributeType.
func attributeTypeFromOID(oid asn1.ObjectIdentifier) AttributeType {
	for t, known := range attributeOIDs {
		if known.Equal(oid) {
			return t
		}
	}
	return AttributeType(oid.String())
}

// Attribute is a single (type, value) pair of a distinguished name.
type Attribute struct {
	Type  AttributeType `json:"type"`
	Value string        `json:"value"`
}

// DistinguishedName is an ordered sequence of naming attributes.
// Duplicates of the same type are allowed and their order is preserved.
type DistinguishedName []Attribute

// Get returns the value of the first attribute of type t.
func (dn DistinguishedName) Get(t AttributeType) string {
	for _, a := range dn {
		if a.Type == t {
			return a.Value
		}
	}
	return ""
}

// Equal reports whether dn and other hold the same attributes in the same order.
func (dn DistinguishedName) Equal(other DistinguishedName) bool {
	if len(dn) != len(other) {
		return false
	}
	for i := range dn {
		if dn[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders dn in the openssl -subj syntax, e.g. "/CN=example.com/O=Acme".
func (dn DistinguishedName) String() string {
	var b strings.Builder
	for _, a := range dn {
		b.WriteByte('/')
		b.WriteString(string(a.Type))
		b.WriteByte('=')
		b.WriteString(EscapeSubjectValue(a.Value))
	}
	return b.String()
}

// EscapeSubjectValue escapes the separators of the openssl -subj syntax.
func EscapeSubjectValue(v string) string {
	return strings.NewReplacer(`\`, `\\`, `/`, `\/`).Replace(v)
}

// ParseDN parses the openssl -subj syntax. Values may contain "\/" and "\\" escapes.
// Every attribute type must be one of the known types.
func ParseDN(s string) (DistinguishedName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "/") {
		return nil, fmt.Errorf("%w: subject %q must start with '/'", ErrInvalidRequest, s)
	}

	var (
		parts   []string
		current strings.Builder
	)
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			i++
			current.WriteByte(s[i])
		case c == '/':
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	parts = append(parts, current.String())

	dn := make(DistinguishedName, 0, len(parts))
	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: subject component %q has no '='", ErrInvalidRequest, part)
		}
		t := AttributeType(strings.TrimSpace(key))
		if !t.Known() {
			return nil, fmt.Errorf("%w: unsupported subject attribute %q", ErrInvalidRequest, key)
		}
		dn = append(dn, Attribute{Type: t, Value: value})
	}
	return dn, nil
}

// Marshal encodes dn as a DER RDNSequence with one attribute per RDN, in order.
// The result is suitable for the RawSubject field of x509 templates.
func (dn DistinguishedName) Marshal() ([]byte, error) {
	rdns := make(pkix.RDNSequence, 0, len(dn))
	for _, a := range dn {
		oid := a.Type.OID()
		if oid == nil {
			return nil, fmt.Errorf("%w: unsupported attribute type %q", ErrInvalidRequest, a.Type)
		}
		rdns = append(rdns, pkix.RelativeDistinguishedNameSET{
			{Type: oid, Value: a.Value},
		})
	}
	return asn1.Marshal(rdns)
}

// UnmarshalDN decodes a DER RDNSequence, keeping attribute order as encoded.
func UnmarshalDN(der []byte) (DistinguishedName, error) {
	var rdns pkix.RDNSequence
	rest, err := asn1.Unmarshal(der, &rdns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifactFormat, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: trailing data after distinguished name", ErrInvalidArtifactFormat)
	}

	dn := make(DistinguishedName, 0, len(rdns))
	for _, set := range rdns {
		for _, atv := range set {
			value, ok := atv.Value.(string)
			if !ok {
				value = fmt.Sprint(atv.Value)
			}
			dn = append(dn, Attribute{Type: attributeTypeFromOID(atv.Type), Value: value})
		}
	}
	return dn, nil
}
