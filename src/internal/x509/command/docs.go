// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package command emits the [OpenSSL] invocations equivalent to a generation
// request or an inspection. The strings are informational only and are never
// executed or parsed back.
//
// Subject values are escaped for the openssl -subj syntax and then for a
// double-quoted shell context, so a hostile common name cannot break out of
// the quoted argument.
//
// [OpenSSL]: https://grokipedia.com/page/OpenSSL
package command
