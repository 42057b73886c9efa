// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package artifact defines the data model shared by the generator and the
// inspector: ordered [distinguished names], tagged subject alternative names,
// the generation request variants, the parsed artifact variants and the
// error kinds every pipeline stage reports.
//
// Distinguished names and SAN lists are encoded by hand so that attribute and
// GeneralName order survive a round trip through DER unchanged.
//
// [distinguished names]: https://grokipedia.com/page/Distinguished_Name
package artifact
