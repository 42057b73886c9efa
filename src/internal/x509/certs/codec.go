// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/cloudflare/cfssl/helpers"
	"github.com/cloudflare/cfssl/helpers/derhelpers"
)

// PEM block types written and accepted by [Codec].
const (
	BlockCertificate   = "CERTIFICATE"
	BlockCSR           = "CERTIFICATE REQUEST"
	BlockRSAPrivateKey = "RSA PRIVATE KEY"
	BlockPrivateKey    = "PRIVATE KEY"
	BlockPublicKey     = "PUBLIC KEY"
	BlockRSAPublicKey  = "RSA PUBLIC KEY"
)

// Key encodings reported by the key decoders.
const (
	EncodingPKCS1 = "PKCS#1"
	EncodingPKCS8 = "PKCS#8"
	EncodingPKIX  = "PKIX"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is not the expected type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrParseCSR indicates a failure to parse a certificate signing request.
	ErrParseCSR = errors.New("x509certs: failed to parse certificate request")

	// ErrParsePrivateKey indicates a failure to parse a private key.
	ErrParsePrivateKey = errors.New("x509certs: failed to parse private key")

	// ErrParsePublicKey indicates a failure to parse a public key.
	ErrParsePublicKey = errors.New("x509certs: failed to parse public key")

	// ErrNotRSA indicates key material of a type other than RSA.
	ErrNotRSA = errors.New("x509certs: key is not RSA")
)

// Codec decodes and encodes workbench artifacts.
// It carries the block types it writes so callers never spell them out.
type Codec struct {
	certBlockType       string
	csrBlockType        string
	privateKeyBlockType string
	publicKeyBlockType  string
}

// New creates a Codec with the default block types.
func New() *Codec {
	return &Codec{
		certBlockType:       BlockCertificate,
		csrBlockType:        BlockCSR,
		privateKeyBlockType: BlockRSAPrivateKey,
		publicKeyBlockType:  BlockPublicKey,
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Codec) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// unwrap returns the DER body of data. PEM input must carry one of types;
// anything else is returned as-is on the assumption that it is DER.
func (c *Codec) unwrap(data []byte, types ...string) ([]byte, string, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return data, "", nil
	}
	for _, t := range types {
		if block.Type == t {
			return block.Bytes, block.Type, nil
		}
	}
	return nil, block.Type, ErrInvalidBlockType
}

// DecodeCertificate decodes a single certificate from PEM or DER data.
// DER that is not a bare certificate is retried as PKCS#7 and the first
// embedded certificate is returned.
func (c *Codec) DecodeCertificate(data []byte) (*x509.Certificate, error) {
	der, _, err := c.unwrap(data, c.certBlockType)
	if err != nil {
		return nil, err
	}

	cert, err := x509.ParseCertificate(der)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(der)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodeCSR decodes a certificate signing request from PEM or DER data.
// The signature is not checked here.
func (c *Codec) DecodeCSR(data []byte) (*x509.CertificateRequest, error) {
	der, _, err := c.unwrap(data, c.csrBlockType, "NEW CERTIFICATE REQUEST")
	if err != nil {
		return nil, err
	}

	csr, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return nil, ErrParseCSR
	}
	return csr, nil
}

// DecodePrivateKey parses an RSA private key in PKCS#1 or PKCS#8 form,
// PEM-armored or raw DER. It returns the detected encoding.
func (c *Codec) DecodePrivateKey(data []byte) (*rsa.PrivateKey, string, error) {
	var (
		signer crypto.Signer
		err    error
	)

	block, _ := pem.Decode(data)
	if block != nil {
		signer, err = helpers.ParsePrivateKeyPEM(data)
	} else {
		signer, err = derhelpers.ParsePrivateKeyDER(data)
	}
	if err != nil {
		return nil, "", ErrParsePrivateKey
	}

	key, ok := signer.(*rsa.PrivateKey)
	if !ok {
		return nil, "", ErrNotRSA
	}

	encoding := EncodingPKCS8
	der := data
	if block != nil {
		der = block.Bytes
	}
	if _, perr := x509.ParsePKCS1PrivateKey(der); perr == nil {
		encoding = EncodingPKCS1
	}
	return key, encoding, nil
}

// DecodePublicKey parses an RSA public key in PKIX or PKCS#1 form,
// PEM-armored or raw DER. It returns the detected encoding.
func (c *Codec) DecodePublicKey(data []byte) (*rsa.PublicKey, string, error) {
	der, _, err := c.unwrap(data, BlockPublicKey, BlockRSAPublicKey)
	if err != nil {
		return nil, "", ErrParsePublicKey
	}

	if pub, err := x509.ParsePKIXPublicKey(der); err == nil {
		key, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, "", ErrNotRSA
		}
		return key, EncodingPKIX, nil
	}

	key, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		return nil, "", ErrParsePublicKey
	}
	return key, EncodingPKCS1, nil
}

// EncodeCertificatePEM armors certificate DER.
func (c *Codec) EncodeCertificatePEM(der []byte) []byte { return c.Wrap(c.certBlockType, der) }

// EncodeCSRPEM armors certificate request DER.
func (c *Codec) EncodeCSRPEM(der []byte) []byte { return c.Wrap(c.csrBlockType, der) }

// EncodePrivateKeyPEM encodes key as a PKCS#1 "RSA PRIVATE KEY" block.
func (c *Codec) EncodePrivateKeyPEM(key *rsa.PrivateKey) []byte {
	return c.Wrap(c.privateKeyBlockType, x509.MarshalPKCS1PrivateKey(key))
}

// EncodePublicKeyPEM encodes key as a PKIX "PUBLIC KEY" block.
func (c *Codec) EncodePublicKeyPEM(key *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return nil, err
	}
	return c.Wrap(c.publicKeyBlockType, der), nil
}

// Wrap armors der with the given block type. Base64 lines are 64 columns wide.
func (c *Codec) Wrap(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}
