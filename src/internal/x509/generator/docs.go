// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package generator implements the artifact generation pipeline:
//
//	Form -> Build -> Construct -> Sign -> Encode
//
// [Build] validates raw form values into an [artifact.GenerationRequest].
// [Generator.Construct] creates a fresh RSA key pair and the unsigned CSR or
// certificate template, [Generator.Sign] signs it with that same key and
// [Generator.Encode] armors every output as PEM with a download filename.
// [Generator.Generate] runs all stages and attaches the equivalent openssl
// command.
//
// Certificates carry the fixed serial number 1. Certificates that are not
// self-signed name [artifact.ExampleIssuer] as their issuer while still being
// signed by the subject key.
//
// Example usage:
//
//	g := generator.New()
//	result, err := g.Generate(generator.Form{
//		Kind:            "selfSigned",
//		KeySize:         "2048",
//		SignatureDigest: "SHA-256",
//		ValidityYears:   "1",
//		CommonName:      "example.com",
//	})
//	if err != nil {
//		return err
//	}
//	for _, a := range result.Artifacts {
//		fmt.Println(a.Filename)
//	}
package generator
