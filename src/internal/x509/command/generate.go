// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
)

// NoCommand is returned for requests without a template.
const NoCommand = "No local command available for this type."

// daysPerYear is the year length used for openssl -days.
const daysPerYear = 365

var shellEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// ShellQuoted escapes s for use inside a double-quoted shell word.
func ShellQuoted(s string) string { return shellEscaper.Replace(s) }

// Subject renders the -subj argument in the fixed order CN, O, OU, L, ST, C.
// A type without a value is still emitted empty; a repeated type emits each
// of its values, in request order, within its slot.
func Subject(dn artifact.DistinguishedName) string {
	var b strings.Builder
	for _, t := range []artifact.AttributeType{
		artifact.CommonName,
		artifact.Organization,
		artifact.OrganizationalUnit,
		artifact.Locality,
		artifact.State,
		artifact.Country,
	} {
		values := valuesOf(dn, t)
		if len(values) == 0 {
			values = []string{""}
		}
		for _, v := range values {
			b.WriteByte('/')
			b.WriteString(string(t))
			b.WriteByte('=')
			b.WriteString(ShellQuoted(artifact.EscapeSubjectValue(v)))
		}
	}
	return b.String()
}

func valuesOf(dn artifact.DistinguishedName, t artifact.AttributeType) []string {
	var values []string
	for _, a := range dn {
		if a.Type == t {
			values = append(values, a.Value)
		}
	}
	return values
}

// stem returns a file stem safe to use unquoted in a shell command.
func stem(cn, fallback string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_', r == '@', r == '+':
			return r
		}
		return '_'
	}, artifact.FileStem(cn, fallback))
}

// Generation returns the openssl commands that produce artifacts equivalent to req.
func Generation(req artifact.GenerationRequest) string {
	var (
		cn   = req.DN().Get(artifact.CommonName)
		bits = strconv.Itoa(req.Bits())
		key  = stem(cn, "key")
		csr  = stem(cn, "csr")
		crt  = stem(cn, "crt")
		subj = Subject(req.DN())
	)

	var b strings.Builder
	switch r := req.(type) {
	case artifact.RawKeyPairRequest:
		fmt.Fprintf(&b, "openssl genpkey -algorithm RSA -out %s.key -pkeyopt rsa_keygen_bits:%s\n", key, bits)
		fmt.Fprintf(&b, "openssl rsa -in %s.key -pubout -out %s.pub\n", key, key)

	case artifact.CSRRequest:
		fmt.Fprintf(&b, "openssl req -new -newkey rsa:%s -nodes -keyout %s.key -out %s.csr \\\n", bits, key, csr)
		fmt.Fprintf(&b, "-subj \"%s\" \\\n", subj)
		if len(r.AltNames) > 0 {
			fmt.Fprintf(&b, "-reqexts SAN -config <(cat /etc/ssl/openssl.cnf <(printf \"[SAN]\\nsubjectAltName=%s\"))\n", sanEntries(r.AltNames))
		}

	case artifact.CertificateRequest:
		days := r.ValidityYears * daysPerYear
		if r.SelfSigned {
			fmt.Fprintf(&b, "openssl req -x509 -new -newkey rsa:%s -nodes -keyout %s.key -out %s.crt \\\n", bits, key, crt)
			fmt.Fprintf(&b, "-days %d -subj \"%s\"", days, subj)
			if len(r.AltNames) > 0 {
				fmt.Fprintf(&b, " \\\n-addext \"subjectAltName=%s\"", extEntries(r.AltNames, false))
			}
			break
		}
		fmt.Fprintf(&b, "openssl req -new -newkey rsa:%s -nodes -keyout %s.key -out %s.csr -subj \"%s\"\n", bits, key, csr, subj)
		fmt.Fprintf(&b, "openssl x509 -req -in %s.csr -signkey %s.key -out %s.crt -days %d", csr, key, crt, days)
		if len(r.AltNames) > 0 {
			fmt.Fprintf(&b, " \\\n-extfile <(printf \"subjectAltName=%s\")", extEntries(r.AltNames, true))
		}
	}

	if b.Len() == 0 {
		return NoCommand
	}
	return b.String()
}

// sanEntries renders "DNS.1=a, IP.2=b" for an openssl config section.
func sanEntries(names []artifact.AltName) string {
	entries := make([]string, 0, len(names))
	for i, n := range names {
		tag := string(n.Tag)
		if n.Tag == artifact.AltEmail {
			tag = "email"
		}
		value := strings.ReplaceAll(ShellQuoted(n.Value), "%", "%%")
		entries = append(entries, fmt.Sprintf("%s.%d=%s", tag, i+1, value))
	}
	return strings.Join(entries, ", ")
}

// extEntries renders "DNS:a,IP:b" for -addext or an -extfile line. The
// printf form doubles % so the value survives the format string.
func extEntries(names []artifact.AltName, printf bool) string {
	entries := make([]string, 0, len(names))
	for _, n := range names {
		tag := string(n.Tag)
		if n.Tag == artifact.AltEmail {
			tag = "email"
		}
		value := ShellQuoted(n.Value)
		if printf {
			value = strings.ReplaceAll(value, "%", "%%")
		}
		entries = append(entries, tag+":"+value)
	}
	return strings.Join(entries, ",")
}
