// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	x509certs "github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/command"
)

// placeholderSerial is the serial number of every generated certificate.
var placeholderSerial = big.NewInt(1)

// Generator runs the generation pipeline. It holds no per-request state, so
// a key pair lives only for the duration of one [Generator.Generate] call.
type Generator struct {
	*x509certs.Codec

	// Now is the clock used for validity windows and filename dates.
	Now func() time.Time

	// Rand is the entropy source for key generation and signing.
	Rand io.Reader
}

// New creates a Generator using the system clock and crypto/rand.
func New() *Generator {
	return &Generator{
		Codec: x509certs.New(),
		Now:   time.Now,
		Rand:  rand.Reader,
	}
}

// Unsigned is a constructed artifact waiting for its signature.
type Unsigned struct {
	Request artifact.GenerationRequest
	Key     *rsa.PrivateKey

	// CSR is set for CSR requests.
	CSR *x509.CertificateRequest

	// Template and Parent are set for certificate requests. For self-signed
	// requests Parent is Template itself.
	Template *x509.Certificate
	Parent   *x509.Certificate

	// Issued is the clock reading the artifact was built at.
	Issued time.Time
}

// Signed holds the DER output of the signer.
type Signed struct {
	Request artifact.GenerationRequest
	Key     *rsa.PrivateKey
	DER     []byte
	Issued  time.Time
}

// Artifact is one rendered output block.
type Artifact struct {
	Title    string           `json:"title"`
	Ext      artifact.FileExt `json:"kind"`
	PEM      string           `json:"pem"`
	Filename string           `json:"filename"`
}

// Result is the output of one generation.
type Result struct {
	Request   artifact.GenerationRequest `json:"-"`
	Artifacts []Artifact                 `json:"artifacts"`
	Command   string                     `json:"command"`
}

// Construct generates a fresh key pair and the unsigned structure for req.
//
// Parameters:
//   - req: A validated generation request
//
// Returns:
//   - *Unsigned: Key pair plus CSR or certificate template
//   - error: Wraps [artifact.ErrInvalidRequest] when the request cannot be encoded
func (g *Generator) Construct(req artifact.GenerationRequest) (*Unsigned, error) {
	if !artifact.ValidKeySize(req.Bits()) {
		return nil, fmt.Errorf("%w: key size %d must be one of %v", artifact.ErrInvalidRequest, req.Bits(), artifact.KeySizes)
	}

	subject, err := req.DN().Marshal()
	if err != nil {
		return nil, err
	}

	key, err := rsa.GenerateKey(g.Rand, req.Bits())
	if err != nil {
		return nil, fmt.Errorf("%w: generating %d-bit key: %v", artifact.ErrInvalidRequest, req.Bits(), err)
	}

	u := &Unsigned{
		Request: req,
		Key:     key,
		Issued:  g.Now().UTC().Truncate(time.Second),
	}

	switch r := req.(type) {
	case artifact.RawKeyPairRequest:
		return u, nil

	case artifact.CSRRequest:
		u.CSR = &x509.CertificateRequest{RawSubject: subject}
		if len(r.AltNames) > 0 {
			ext, err := artifact.MarshalAltNames(r.AltNames)
			if err != nil {
				return nil, err
			}
			u.CSR.ExtraExtensions = []pkix.Extension{ext}
		}
		return u, nil

	case artifact.CertificateRequest:
		notBefore, notAfter, err := r.Validity(u.Issued)
		if err != nil {
			return nil, err
		}
		template := &x509.Certificate{
			SerialNumber: placeholderSerial,
			RawSubject:   subject,
			NotBefore:    notBefore,
			NotAfter:     notAfter,
		}
		if len(r.AltNames) > 0 {
			ext, err := artifact.MarshalAltNames(r.AltNames)
			if err != nil {
				return nil, err
			}
			template.ExtraExtensions = []pkix.Extension{ext}
		}

		if r.SelfSigned {
			template.BasicConstraintsValid = true
			template.IsCA = true
			template.KeyUsage = x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment | x509.KeyUsageCertSign
			u.Template, u.Parent = template, template
			return u, nil
		}

		issuer, err := r.Issuer().Marshal()
		if err != nil {
			return nil, err
		}
		template.KeyUsage = x509.KeyUsageDigitalSignature
		template.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageCodeSigning}
		// No PublicKey on the parent: the signing key is the subject's own.
		u.Template = template
		u.Parent = &x509.Certificate{RawSubject: issuer}
		return u, nil
	}

	return nil, fmt.Errorf("%w: unsupported request %T", artifact.ErrInvalidRequest, req)
}

// Sign signs u with its own private key and the requested digest.
// Raw key pair requests pass through with no DER.
//
// Parameters:
//   - u: Output of [Generator.Construct]
//
// Returns:
//   - *Signed: Signed DER and the key pair
//   - error: Wraps [artifact.ErrSigningFailed] on any failure
func (g *Generator) Sign(u *Unsigned) (*Signed, error) {
	s := &Signed{Request: u.Request, Key: u.Key, Issued: u.Issued}

	var (
		digest artifact.Digest
		der    []byte
		err    error
	)
	switch r := u.Request.(type) {
	case artifact.RawKeyPairRequest:
		return s, nil
	case artifact.CSRRequest:
		digest = r.SignatureDigest
	case artifact.CertificateRequest:
		digest = r.SignatureDigest
	}

	alg, err := digest.SignatureAlgorithm()
	if err != nil {
		return nil, err
	}

	switch {
	case u.CSR != nil:
		u.CSR.SignatureAlgorithm = alg
		der, err = x509.CreateCertificateRequest(g.Rand, u.CSR, u.Key)
	case u.Template != nil:
		u.Template.SignatureAlgorithm = alg
		der, err = x509.CreateCertificate(g.Rand, u.Template, u.Parent, &u.Key.PublicKey, u.Key)
	default:
		return nil, fmt.Errorf("%w: nothing to sign", artifact.ErrSigningFailed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", artifact.ErrSigningFailed, err)
	}

	s.DER = der
	return s, nil
}

// Encode turns s into PEM output blocks in display order.
func (g *Generator) Encode(s *Signed) ([]Artifact, error) {
	var (
		cn       = s.Request.DN().Get(artifact.CommonName)
		priv     = string(g.EncodePrivateKeyPEM(s.Key))
		fallback string
		label    string
	)

	block := func(title string, ext artifact.FileExt, pem string) Artifact {
		return Artifact{
			Title:    title,
			Ext:      ext,
			PEM:      pem,
			Filename: artifact.Filename(cn, fallback, label, ext, s.Issued),
		}
	}

	switch s.Request.Kind() {
	case artifact.KindRSA:
		fallback, label = "rsa", "rsa"
		pub, err := g.EncodePublicKeyPEM(&s.Key.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", artifact.ErrSigningFailed, err)
		}
		return []Artifact{
			block("Private Key", artifact.ExtKey, priv),
			block("Public Key", artifact.ExtPub, string(pub)),
		}, nil

	case artifact.KindCSR:
		fallback, label = "csr", "csr"
		return []Artifact{
			block("CSR", artifact.ExtCSR, string(g.EncodeCSRPEM(s.DER))),
			block("Private Key", artifact.ExtKey, priv),
		}, nil

	default:
		fallback, label = "certificate", string(s.Request.Kind())
		return []Artifact{
			block("Private Key", artifact.ExtKey, priv),
			block("Certificate", artifact.ExtCrt, string(g.EncodeCertificatePEM(s.DER))),
		}, nil
	}
}

// Generate runs the full pipeline for one form submission.
//
// Parameters:
//   - f: Raw form values
//
// Returns:
//   - *Result: PEM blocks in display order plus the equivalent openssl command
//   - error: Wraps [artifact.ErrInvalidRequest] or [artifact.ErrSigningFailed]
func (g *Generator) Generate(f Form) (*Result, error) {
	req, err := Build(f)
	if err != nil {
		return nil, err
	}

	unsigned, err := g.Construct(req)
	if err != nil {
		return nil, err
	}

	signed, err := g.Sign(unsigned)
	if err != nil {
		return nil, err
	}

	artifacts, err := g.Encode(signed)
	if err != nil {
		return nil, err
	}

	return &Result{
		Request:   req,
		Artifacts: artifacts,
		Command:   command.Generation(req),
	}, nil
}
