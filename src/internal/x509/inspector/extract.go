// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspector

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/cloudflare/cfssl/helpers"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/artifact"
	x509certs "github.com/H0llyW00dzZ/x509-workbench/src/internal/x509/certs"
)

var oidKeyUsage = asn1.ObjectIdentifier{2, 5, 29, 15}

var extensionNames = map[string]string{
	"2.5.29.14":               "subjectKeyIdentifier",
	"2.5.29.15":               "keyUsage",
	"2.5.29.17":               "subjectAltName",
	"2.5.29.19":               "basicConstraints",
	"2.5.29.30":               "nameConstraints",
	"2.5.29.31":               "cRLDistributionPoints",
	"2.5.29.32":               "certificatePolicies",
	"2.5.29.35":               "authorityKeyIdentifier",
	"2.5.29.37":               "extKeyUsage",
	"1.3.6.1.5.5.7.1.1":       "authorityInfoAccess",
	"1.3.6.1.4.1.11129.2.4.2": "signedCertificateTimestampList",
}

var keyUsageNames = []struct {
	bit  x509.KeyUsage
	name string
}{
	{x509.KeyUsageDigitalSignature, "digitalSignature"},
	{x509.KeyUsageContentCommitment, "nonRepudiation"},
	{x509.KeyUsageKeyEncipherment, "keyEncipherment"},
	{x509.KeyUsageDataEncipherment, "dataEncipherment"},
	{x509.KeyUsageKeyAgreement, "keyAgreement"},
	{x509.KeyUsageCertSign, "keyCertSign"},
	{x509.KeyUsageCRLSign, "cRLSign"},
	{x509.KeyUsageEncipherOnly, "encipherOnly"},
	{x509.KeyUsageDecipherOnly, "decipherOnly"},
}

var extKeyUsageNames = map[x509.ExtKeyUsage]string{
	x509.ExtKeyUsageAny:                            "anyExtendedKeyUsage",
	x509.ExtKeyUsageServerAuth:                     "serverAuth",
	x509.ExtKeyUsageClientAuth:                     "clientAuth",
	x509.ExtKeyUsageCodeSigning:                    "codeSigning",
	x509.ExtKeyUsageEmailProtection:                "emailProtection",
	x509.ExtKeyUsageIPSECEndSystem:                 "ipsecEndSystem",
	x509.ExtKeyUsageIPSECTunnel:                    "ipsecTunnel",
	x509.ExtKeyUsageIPSECUser:                      "ipsecUser",
	x509.ExtKeyUsageTimeStamping:                   "timeStamping",
	x509.ExtKeyUsageOCSPSigning:                    "OCSPSigning",
	x509.ExtKeyUsageMicrosoftServerGatedCrypto:     "msSGC",
	x509.ExtKeyUsageNetscapeServerGatedCrypto:      "nsSGC",
	x509.ExtKeyUsageMicrosoftCommercialCodeSigning: "msCodeCom",
	x509.ExtKeyUsageMicrosoftKernelCodeSigning:     "msKernelCodeSigning",
}

// ExtensionName returns the display name of an extension OID, or the dotted form.
func ExtensionName(oid asn1.ObjectIdentifier) string {
	if name, ok := extensionNames[oid.String()]; ok {
		return name
	}
	return oid.String()
}

func extensionList(exts []pkix.Extension) []string {
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		names = append(names, ExtensionName(ext.Id))
	}
	return names
}

// keyUsageList names the set bits, or returns nil when the extension is absent.
func keyUsageList(cert *x509.Certificate) []string {
	present := false
	for _, ext := range cert.Extensions {
		if ext.Id.Equal(oidKeyUsage) {
			present = true
			break
		}
	}
	if !present {
		return nil
	}

	names := []string{}
	for _, ku := range keyUsageNames {
		if cert.KeyUsage&ku.bit != 0 {
			names = append(names, ku.name)
		}
	}
	return names
}

func extKeyUsageList(cert *x509.Certificate) []string {
	if len(cert.ExtKeyUsage) == 0 && len(cert.UnknownExtKeyUsage) == 0 {
		return nil
	}
	names := make([]string, 0, len(cert.ExtKeyUsage)+len(cert.UnknownExtKeyUsage))
	for _, eku := range cert.ExtKeyUsage {
		if name, ok := extKeyUsageNames[eku]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("unknown(%d)", eku))
		}
	}
	for _, oid := range cert.UnknownExtKeyUsage {
		names = append(names, oid.String())
	}
	return names
}

// serialHex renders the serial as even-length lower-case hex; zero is "00".
func serialHex(serial *big.Int) string {
	if serial == nil || serial.Sign() == 0 {
		return "00"
	}
	return hex.EncodeToString(serial.Bytes())
}

// signatureAlgorithmOID reads the outer AlgorithmIdentifier of a certificate.
func signatureAlgorithmOID(raw []byte) (string, error) {
	var (
		input = cryptobyte.String(raw)
		cert  cryptobyte.String
		algID cryptobyte.String
		oid   asn1.ObjectIdentifier
	)
	if !input.ReadASN1(&cert, cryptobyte_asn1.SEQUENCE) ||
		!cert.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!cert.ReadASN1(&algID, cryptobyte_asn1.SEQUENCE) ||
		!algID.ReadASN1ObjectIdentifier(&oid) {
		return "", fmt.Errorf("%w: malformed signature algorithm", artifact.ErrInvalidArtifactFormat)
	}
	return oid.String(), nil
}

// publicKeyInfo describes pub using cfssl helpers for the key length.
func publicKeyInfo(codec *x509certs.Codec, alg x509.PublicKeyAlgorithm, pub any) (artifact.PublicKeyInfo, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return artifact.PublicKeyInfo{}, fmt.Errorf("%w: %v", artifact.ErrInvalidArtifactFormat, err)
	}
	return artifact.PublicKeyInfo{
		Algorithm: alg.String(),
		Bits:      helpers.KeyLength(pub),
		PEM:       string(codec.Wrap(x509certs.BlockPublicKey, der)),
	}, nil
}

// extractCertificate builds the fixed certificate report fields.
func extractCertificate(codec *x509certs.Codec, cert *x509.Certificate) (*artifact.ParsedCertificate, error) {
	subject, err := artifact.UnmarshalDN(cert.RawSubject)
	if err != nil {
		return nil, err
	}
	issuer, err := artifact.UnmarshalDN(cert.RawIssuer)
	if err != nil {
		return nil, err
	}
	altNames, err := artifact.AltNamesFromExtensions(cert.Extensions)
	if err != nil {
		return nil, err
	}
	sigOID, err := signatureAlgorithmOID(cert.Raw)
	if err != nil {
		return nil, err
	}
	pub, err := publicKeyInfo(codec, cert.PublicKeyAlgorithm, cert.PublicKey)
	if err != nil {
		return nil, err
	}

	return &artifact.ParsedCertificate{
		Subject:                subject,
		Issuer:                 issuer,
		AltNames:               altNames,
		SerialHex:              serialHex(cert.SerialNumber),
		SerialDecimal:          cert.SerialNumber.String(),
		NotBefore:              cert.NotBefore,
		NotAfter:               cert.NotAfter,
		Version:                cert.Version - 1,
		SignatureAlgorithmOID:  sigOID,
		SignatureAlgorithmName: helpers.SignatureString(cert.SignatureAlgorithm),
		PublicKey:              pub,
		KeyUsage:               keyUsageList(cert),
		ExtendedKeyUsage:       extKeyUsageList(cert),
		Extensions:             extensionList(cert.Extensions),
		Fingerprint:            artifact.NewFingerprint(cert.Raw),
		DER:                    cert.Raw,
	}, nil
}

// extractCSR builds the fixed CSR report fields.
func extractCSR(codec *x509certs.Codec, csr *x509.CertificateRequest) (*artifact.ParsedCSR, error) {
	subject, err := artifact.UnmarshalDN(csr.RawSubject)
	if err != nil {
		return nil, err
	}
	altNames, err := artifact.AltNamesFromExtensions(csr.Extensions)
	if err != nil {
		return nil, err
	}
	pub, err := publicKeyInfo(codec, csr.PublicKeyAlgorithm, csr.PublicKey)
	if err != nil {
		return nil, err
	}

	return &artifact.ParsedCSR{
		Subject:                subject,
		PublicKey:              pub,
		AltNames:               altNames,
		Extensions:             extensionList(csr.Extensions),
		SignatureAlgorithmName: helpers.SignatureString(csr.SignatureAlgorithm),
		SignatureValid:         csr.CheckSignature() == nil,
		Fingerprint:            artifact.NewFingerprint(csr.Raw),
		DER:                    csr.Raw,
	}, nil
}
