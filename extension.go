// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package extension

// Extension is one recognized extension token together with the ordered
// compression formats it denotes. A single token can carry multiple formats,
// e.g. "tgz" carries [Tar, Gzip].
type Extension struct {
	// compressionFormats is never empty, see NewExtension
	compressionFormats []CompressionFormat

	// displayText is the token as it appeared in the input, e.g. "tgz",
	// "tar" or "xz". Informational only, ignored by Equal.
	displayText string
}

// NewExtension returns an Extension for the given formats and the input text
// that produced them. It panics if formats is empty: the parsers only build
// extensions from table lookups, so an empty list means the table itself is
// broken.
func NewExtension(formats []CompressionFormat, text string) Extension {
	if len(formats) == 0 {
		panic("extension: empty compression format list")
	}
	return Extension{compressionFormats: formats, displayText: text}
}

// Formats returns the ordered compression formats of the extension. The
// returned slice is shared and must not be modified by the caller.
func (e Extension) Formats() []CompressionFormat {
	return e.compressionFormats
}

// IsArchive reports whether the outermost format is an archive container,
// e.g. true for "tar" and "tgz", false for "gz".
func (e Extension) IsArchive() bool {
	return e.compressionFormats[0].IsArchive()
}

// Equal reports whether both extensions denote the same format sequence. The
// display text is ignored, so extensions built from "tgz" and from "tar.gz"
// pieces can compare equal.
func (e Extension) Equal(other Extension) bool {
	if len(e.compressionFormats) != len(other.compressionFormats) {
		return false
	}
	for i, f := range e.compressionFormats {
		if f != other.compressionFormats[i] {
			return false
		}
	}
	return true
}

// String returns the token text the extension was built from.
func (e Extension) String() string {
	return e.displayText
}
