// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package extension recognizes compression and archive extensions in format
// strings and file names.
//
// A name like "bolovo.tar.gz" carries an ordered stack of formats: a tar
// archive compressed with gzip. The package decomposes such names, and raw
// format strings like "tar.gz" supplied on a command line, into typed
// [Extension] values that a compression engine can map onto a processing
// pipeline. No file content is inspected and no compression is performed;
// the package operates on names only and is safe for concurrent use.
package extension
