// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package extension

import "fmt"

// CompressionFormat is one supported compression algorithm or archive
// container. The set is closed: every switch over it lists all variants, so
// that adding a variant forces every dispatch site to be revisited.
type CompressionFormat int

const (
	// Gzip is the gzip compression algorithm (.gz).
	Gzip CompressionFormat = iota

	// Bzip is the bzip2 compression algorithm (.bz, .bz2).
	Bzip

	// Lz4 is the lz4 compression algorithm (.lz4).
	Lz4

	// Lzma is the lzma/xz compression algorithm (.xz, .lzma).
	Lzma

	// Snappy is the snappy compression algorithm (.sz).
	Snappy

	// Tar is the tar archive container (.tar and aliases like .tgz).
	Tar

	// Zstd is the zstandard compression algorithm (.zst).
	Zstd

	// Zip is the zip archive container (.zip).
	Zip
)

// IsArchive reports whether the format bundles multiple files into one
// stream, as opposed to compressing a single stream.
func (f CompressionFormat) IsArchive() bool {
	// Keep this switch without a wildcard over known formats so a new
	// variant cannot be forgotten here.
	switch f {
	case Tar, Zip:
		return true
	case Gzip, Bzip, Lz4, Lzma, Snappy, Zstd:
		return false
	}
	panic(fmt.Sprintf("extension: unknown compression format %d", int(f)))
}

// String returns the canonical dotted rendering of the format, e.g. ".gz".
func (f CompressionFormat) String() string {
	switch f {
	case Gzip:
		return ".gz"
	case Bzip:
		return ".bz"
	case Lz4:
		return ".lz4"
	case Lzma:
		return ".lz"
	case Snappy:
		return ".sz"
	case Tar:
		return ".tar"
	case Zstd:
		return ".zst"
	case Zip:
		return ".zip"
	}
	panic(fmt.Sprintf("extension: unknown compression format %d", int(f)))
}

// formatsByToken maps a dot-free extension token to the ordered formats it
// denotes. Compound tokens like "tgz" resolve to more than one format. The
// token vocabulary is a compatibility surface: adding tokens is additive,
// renaming or removing them breaks callers.
var formatsByToken = map[string][]CompressionFormat{
	"tar":   {Tar},
	"tgz":   {Tar, Gzip},
	"tbz":   {Tar, Bzip},
	"tbz2":  {Tar, Bzip},
	"tlz4":  {Tar, Lz4},
	"txz":   {Tar, Lzma},
	"tlzma": {Tar, Lzma},
	"tsz":   {Tar, Snappy},
	"tzst":  {Tar, Zstd},
	"zip":   {Zip},
	"bz":    {Bzip},
	"bz2":   {Bzip},
	"gz":    {Gzip},
	"lz4":   {Lz4},
	"xz":    {Lzma},
	"lzma":  {Lzma},
	"sz":    {Snappy},
	"zst":   {Zstd},
}

// CompressionFormatsFromText returns the ordered list of compression formats
// denoted by the given extension token, e.g. "tar" -> [Tar] and
// "tgz" -> [Tar, Gzip]. The lookup is exact and case-sensitive; tokens
// containing dots never match. The returned slice is shared and must not be
// modified by the caller.
func CompressionFormatsFromText(token string) ([]CompressionFormat, bool) {
	formats, ok := formatsByToken[token]
	return formats, ok
}
