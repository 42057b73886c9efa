// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides the [PEM] and DER codec for every artifact the
// workbench handles: [X.509] certificates (with a [PKCS7] fallback), PKCS#10
// certificate signing requests and RSA private and public keys.
//
// The generator encodes its output through this package and the inspector
// decodes its input through it, so both pipelines agree on block types:
//
//	RSA PRIVATE KEY      PKCS#1 private key
//	PUBLIC KEY           PKIX public key
//	CERTIFICATE REQUEST  PKCS#10 request
//	CERTIFICATE          X.509 certificate
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
