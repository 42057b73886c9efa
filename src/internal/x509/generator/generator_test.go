// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator_test

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/generator"
)

var leapDay = time.Date(2024, time.February, 29, 10, 30, 15, 0, time.UTC)

func newGenerator() *generator.Generator {
	g := generator.New()
	g.Now = func() time.Time { return leapDay.Add(400 * time.Millisecond) }
	return g
}

func decodeBlock(t *testing.T, text, blockType string) []byte {
	t.Helper()
	block, rest := pem.Decode([]byte(text))
	require.NotNil(t, block, "failed to decode PEM")
	assert.Equal(t, blockType, block.Type)
	assert.Empty(t, strings.TrimSpace(string(rest)), "unexpected trailing data")
	return block.Bytes
}

func titles(artifacts []generator.Artifact) []string {
	out := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, a.Title)
	}
	return out
}

func TestGenerate_SelfSigned(t *testing.T) {
	g := newGenerator()

	result, err := g.Generate(generator.Form{
		Kind:            "selfSigned",
		KeySize:         "2048",
		SignatureDigest: "SHA-256",
		ValidityYears:   "1",
		CommonName:      "example.com",
		Organization:    "Acme & Sons",
	})
	require.NoError(t, err, "Generate() error")

	require.Len(t, result.Artifacts, 2)
	assert.Equal(t, []string{"Private Key", "Certificate"}, titles(result.Artifacts))
	assert.Equal(t, "example.com-selfSigned-2024-02-29.key", result.Artifacts[0].Filename)
	assert.Equal(t, "example.com-selfSigned-2024-02-29.crt", result.Artifacts[1].Filename)
	assert.Equal(t, artifact.ExtCrt, result.Artifacts[1].Ext)

	cert, err := x509.ParseCertificate(decodeBlock(t, result.Artifacts[1].PEM, "CERTIFICATE"))
	require.NoError(t, err, "ParseCertificate() error")

	assert.Equal(t, "example.com", cert.Subject.CommonName)
	assert.Equal(t, cert.RawSubject, cert.RawIssuer, "subject and issuer must be identical")

	subject, err := artifact.UnmarshalDN(cert.RawSubject)
	require.NoError(t, err)
	assert.Equal(t, artifact.DistinguishedName{
		{Type: artifact.CommonName, Value: "example.com"},
		{Type: artifact.Organization, Value: "Acme & Sons"},
	}, subject)

	assert.Equal(t, leapDay, cert.NotBefore)
	assert.Equal(t, time.Date(2025, time.February, 28, 10, 30, 15, 0, time.UTC), cert.NotAfter)
	assert.Equal(t, int64(1), cert.SerialNumber.Int64())
	assert.Equal(t, x509.SHA256WithRSA, cert.SignatureAlgorithm)
	assert.True(t, cert.IsCA, "self-signed certificate should be a CA")
	assert.NotZero(t, cert.KeyUsage&x509.KeyUsageCertSign)
	assert.NoError(t, cert.CheckSignatureFrom(cert), "self-signature must verify")

	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	require.True(t, ok, "expected RSA public key")
	assert.Equal(t, 2048, pub.N.BitLen())

	key, err := x509.ParsePKCS1PrivateKey(decodeBlock(t, result.Artifacts[0].PEM, "RSA PRIVATE KEY"))
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(pub), "certificate key does not match private key")

	assert.Contains(t, result.Command, "openssl req -x509")
	assert.Contains(t, result.Command, "-days 365")
}

func TestGenerate_CSRAltNames(t *testing.T) {
	g := newGenerator()

	result, err := g.Generate(generator.Form{
		Kind:            "csr",
		KeySize:         "1024",
		SignatureDigest: "SHA-256",
		CommonName:      "test",
		AltNames:        "example.com, www.example.com",
	})
	require.NoError(t, err, "Generate() error")

	require.Len(t, result.Artifacts, 2)
	assert.Equal(t, []string{"CSR", "Private Key"}, titles(result.Artifacts))
	assert.Equal(t, "test-csr-2024-02-29.csr", result.Artifacts[0].Filename)
	assert.Equal(t, "test-csr-2024-02-29.key", result.Artifacts[1].Filename)

	csr, err := x509.ParseCertificateRequest(decodeBlock(t, result.Artifacts[0].PEM, "CERTIFICATE REQUEST"))
	require.NoError(t, err, "ParseCertificateRequest() error")
	require.NoError(t, csr.CheckSignature())

	assert.Equal(t, "test", csr.Subject.CommonName)

	names, err := artifact.AltNamesFromExtensions(csr.Extensions)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "www.example.com"}, artifact.AltNameValues(names))

	sanCount := 0
	for _, ext := range csr.Extensions {
		if ext.Id.Equal(artifact.OIDSubjectAltName) {
			sanCount++
		}
	}
	assert.Equal(t, 1, sanCount, "exactly one subjectAltName extension expected")
}

func TestGenerate_CSRWithoutAltNames(t *testing.T) {
	g := newGenerator()

	result, err := g.Generate(generator.Form{
		Kind:            "csr",
		KeySize:         "1024",
		SignatureDigest: "SHA-384",
		AltNames:        " , ",
	})
	require.NoError(t, err)

	csr, err := x509.ParseCertificateRequest(decodeBlock(t, result.Artifacts[0].PEM, "CERTIFICATE REQUEST"))
	require.NoError(t, err)
	assert.Empty(t, csr.Extensions, "no extension request expected")
	assert.Equal(t, "csr-csr-2024-02-29.csr", result.Artifacts[0].Filename)
}

func TestGenerate_RSA(t *testing.T) {
	g := newGenerator()

	result, err := g.Generate(generator.Form{Kind: "rsa", KeySize: "1024"})
	require.NoError(t, err)

	require.Len(t, result.Artifacts, 2)
	assert.Equal(t, []string{"Private Key", "Public Key"}, titles(result.Artifacts))
	assert.Equal(t, "rsa-rsa-2024-02-29.key", result.Artifacts[0].Filename)
	assert.Equal(t, "rsa-rsa-2024-02-29.pub", result.Artifacts[1].Filename)

	key, err := x509.ParsePKCS1PrivateKey(decodeBlock(t, result.Artifacts[0].PEM, "RSA PRIVATE KEY"))
	require.NoError(t, err)
	assert.Equal(t, 1024, key.N.BitLen())

	pub, err := x509.ParsePKIXPublicKey(decodeBlock(t, result.Artifacts[1].PEM, "PUBLIC KEY"))
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(pub), "public key does not match private key")

	assert.True(t, strings.HasPrefix(result.Command, "openssl genpkey -algorithm RSA -out key.key"))
}

// The code signing variant names ExampleIssuer but is signed with the
// subject's own key. This pins that behavior.
func TestGenerate_CodeSigningIssuerMismatch(t *testing.T) {
	g := newGenerator()

	result, err := g.Generate(generator.Form{
		Kind:            "codeSigning",
		KeySize:         "1024",
		SignatureDigest: "SHA-512",
		ValidityYears:   "2",
		CommonName:      "signer",
		AltNames:        "URI:https://example.com/signer, IP:192.0.2.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "signer-codeSigning-2024-02-29.crt", result.Artifacts[1].Filename)

	cert, err := x509.ParseCertificate(decodeBlock(t, result.Artifacts[1].PEM, "CERTIFICATE"))
	require.NoError(t, err)

	issuer, err := artifact.UnmarshalDN(cert.RawIssuer)
	require.NoError(t, err)
	assert.Equal(t, artifact.ExampleIssuer, issuer)
	assert.NotEqual(t, cert.RawSubject, cert.RawIssuer)

	assert.Equal(t, []x509.ExtKeyUsage{x509.ExtKeyUsageCodeSigning}, cert.ExtKeyUsage)
	assert.Equal(t, x509.KeyUsageDigitalSignature, cert.KeyUsage)
	assert.False(t, cert.IsCA)
	assert.Equal(t, x509.SHA512WithRSA, cert.SignatureAlgorithm)
	assert.Equal(t, time.Date(2026, time.February, 28, 10, 30, 15, 0, time.UTC), cert.NotAfter)

	// Verifies against its own public key despite the foreign issuer name.
	assert.NoError(t, cert.CheckSignature(cert.SignatureAlgorithm, cert.RawTBSCertificate, cert.Signature))

	names, err := artifact.AltNamesFromExtensions(cert.Extensions)
	require.NoError(t, err)
	assert.Equal(t, []artifact.AltName{
		{Tag: artifact.AltURI, Value: "https://example.com/signer"},
		{Tag: artifact.AltIP, Value: "192.0.2.1"},
	}, names)
}

func TestGenerate_InvalidForm(t *testing.T) {
	g := newGenerator()

	result, err := g.Generate(generator.Form{Kind: "selfSigned", KeySize: "2048", SignatureDigest: "SHA-256"})
	assert.ErrorIs(t, err, artifact.ErrInvalidRequest)
	assert.Nil(t, result, "no partial output on error")
}

func TestGenerate_ValidityPastYear9999(t *testing.T) {
	g := newGenerator()

	result, err := g.Generate(generator.Form{
		Kind:            "selfSigned",
		KeySize:         "1024",
		SignatureDigest: "SHA-256",
		ValidityYears:   "8000",
		CommonName:      "example.com",
	})
	assert.ErrorIs(t, err, artifact.ErrInvalidRequest)
	assert.NotErrorIs(t, err, artifact.ErrSigningFailed)
	assert.Nil(t, result)
}

func TestSign_UnsupportedDigest(t *testing.T) {
	g := newGenerator()

	unsigned, err := g.Construct(artifact.CertificateRequest{
		Variant:         artifact.KindSelfSigned,
		KeySize:         1024,
		SignatureDigest: artifact.Digest("MD5"),
		ValidityYears:   1,
		SelfSigned:      true,
	})
	require.NoError(t, err, "Construct() error")

	signed, err := g.Sign(unsigned)
	assert.ErrorIs(t, err, artifact.ErrSigningFailed)
	assert.Nil(t, signed)
}

func TestConstruct_InvalidKeySize(t *testing.T) {
	g := newGenerator()

	_, err := g.Construct(artifact.RawKeyPairRequest{KeySize: 1000})
	assert.ErrorIs(t, err, artifact.ErrInvalidRequest)
}

func TestFilename_Idempotent(t *testing.T) {
	g := newGenerator()
	form := generator.Form{Kind: "rsa", KeySize: "1024", CommonName: "host/name"}

	first, err := g.Generate(form)
	require.NoError(t, err)
	second, err := g.Generate(form)
	require.NoError(t, err)

	for i := range first.Artifacts {
		assert.Equal(t, first.Artifacts[i].Filename, second.Artifacts[i].Filename)
		assert.NotEqual(t, first.Artifacts[i].PEM, second.Artifacts[i].PEM, "keys must never be reused")
	}
	assert.Equal(t, "host_name-rsa-2024-02-29.key", first.Artifacts[0].Filename)
}
