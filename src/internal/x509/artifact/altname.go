// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package artifact

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// AltNameTag identifies the GeneralName choice of a subject alternative name.
type AltNameTag string

const (
	AltDNS   AltNameTag = "DNS"
	AltEmail AltNameTag = "Email"
	AltIP    AltNameTag = "IP"
	AltURI   AltNameTag = "URI"
)

// GeneralName context-specific tag numbers (RFC 5280, section 4.2.1.6).
const (
	tagRFC822Name = 1
	tagDNSName    = 2
	tagURI        = 6
	tagIPAddress  = 7
)

// OIDSubjectAltName is the subjectAltName extension identifier.
var OIDSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// AltName is a tagged subject alternative name value.
type AltName struct {
	Tag   AltNameTag `json:"tag"`
	Value string     `json:"value"`
}

// String renders the name with its tag prefix, e.g. "IP:10.0.0.1".
func (a AltName) String() string { return string(a.Tag) + ":" + a.Value }

// ParseAltName parses a single entry. A bare value is a DNS name; the prefixes
// "DNS:", "IP:", "email:" and "URI:" (case-insensitive) select another tag.
func ParseAltName(s string) (AltName, error) {
	s = strings.TrimSpace(s)
	if prefix, value, ok := strings.Cut(s, ":"); ok {
		upper := strings.ToUpper(prefix)
		if value == "" && (upper == "DNS" || upper == "EMAIL" || upper == "URI" || upper == "IP") {
			return AltName{}, fmt.Errorf("%w: empty %s alt name", ErrInvalidRequest, prefix)
		}
		switch upper {
		case "DNS":
			return AltName{Tag: AltDNS, Value: value}, nil
		case "EMAIL":
			return AltName{Tag: AltEmail, Value: value}, nil
		case "URI":
			if _, err := url.Parse(value); err != nil {
				return AltName{}, fmt.Errorf("%w: invalid URI alt name %q", ErrInvalidRequest, value)
			}
			return AltName{Tag: AltURI, Value: value}, nil
		case "IP":
			if net.ParseIP(value) == nil {
				return AltName{}, fmt.Errorf("%w: invalid IP alt name %q", ErrInvalidRequest, value)
			}
			return AltName{Tag: AltIP, Value: value}, nil
		}
	}
	return AltName{Tag: AltDNS, Value: s}, nil
}

// SplitAltNames splits a comma-separated field, trims every entry, drops empty
// entries and duplicates (first occurrence wins) and parses what remains.
func SplitAltNames(field string) ([]AltName, error) {
	var (
		names []AltName
		seen  = make(map[AltName]struct{})
	)
	for _, raw := range strings.Split(field, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, err := ParseAltName(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// MarshalAltNames builds a subjectAltName extension whose GeneralNames keep
// the order of names.
func MarshalAltNames(names []AltName) (pkix.Extension, error) {
	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, name := range names {
			switch name.Tag {
			case AltEmail:
				addGeneralName(b, tagRFC822Name, []byte(name.Value))
			case AltURI:
				addGeneralName(b, tagURI, []byte(name.Value))
			case AltIP:
				ip := net.ParseIP(name.Value)
				if ip == nil {
					b.SetError(fmt.Errorf("%w: invalid IP alt name %q", ErrInvalidRequest, name.Value))
					return
				}
				if v4 := ip.To4(); v4 != nil {
					ip = v4
				}
				addGeneralName(b, tagIPAddress, ip)
			default:
				addGeneralName(b, tagDNSName, []byte(name.Value))
			}
		}
	})

	value, err := b.Bytes()
	if err != nil {
		return pkix.Extension{}, err
	}
	return pkix.Extension{Id: OIDSubjectAltName, Value: value}, nil
}

func addGeneralName(b *cryptobyte.Builder, tag int, value []byte) {
	b.AddASN1(cryptobyte_asn1.Tag(tag).ContextSpecific(), func(b *cryptobyte.Builder) {
		b.AddBytes(value)
	})
}

// UnmarshalAltNames decodes a subjectAltName extension value in encoded order.
// GeneralName choices other than DNS, email, URI and IP are skipped.
func UnmarshalAltNames(value []byte) ([]AltName, error) {
	input := cryptobyte.String(value)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: malformed subjectAltName extension", ErrInvalidArtifactFormat)
	}

	var names []AltName
	for !seq.Empty() {
		var (
			body cryptobyte.String
			tag  cryptobyte_asn1.Tag
		)
		if !seq.ReadAnyASN1(&body, &tag) {
			return nil, fmt.Errorf("%w: malformed GeneralName", ErrInvalidArtifactFormat)
		}
		switch tag {
		case cryptobyte_asn1.Tag(tagDNSName).ContextSpecific():
			names = append(names, AltName{Tag: AltDNS, Value: string(body)})
		case cryptobyte_asn1.Tag(tagRFC822Name).ContextSpecific():
			names = append(names, AltName{Tag: AltEmail, Value: string(body)})
		case cryptobyte_asn1.Tag(tagURI).ContextSpecific():
			names = append(names, AltName{Tag: AltURI, Value: string(body)})
		case cryptobyte_asn1.Tag(tagIPAddress).ContextSpecific():
			if len(body) != net.IPv4len && len(body) != net.IPv6len {
				return nil, fmt.Errorf("%w: invalid IP address length %d", ErrInvalidArtifactFormat, len(body))
			}
			names = append(names, AltName{Tag: AltIP, Value: net.IP(body).String()})
		}
	}
	return names, nil
}

// AltNamesFromExtensions finds and decodes the subjectAltName extension.
// It returns nil when the extension is absent.
func AltNamesFromExtensions(exts []pkix.Extension) ([]AltName, error) {
	for _, ext := range exts {
		if ext.Id.Equal(OIDSubjectAltName) {
			return UnmarshalAltNames(ext.Value)
		}
	}
	return nil, nil
}

// AltNameValues returns the bare values of names, in order.
func AltNameValues(names []AltName) []string {
	values := make([]string, 0, len(names))
	for _, n := range names {
		values = append(values, n.Value)
	}
	return values
}
