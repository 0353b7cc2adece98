// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package extension_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashicorp/go-extension"
)

func TestCompressionFormatsFromText(t *testing.T) {
	tests := []struct {
		token string
		want  []extension.CompressionFormat
	}{
		{token: "tar", want: []extension.CompressionFormat{extension.Tar}},
		{token: "tgz", want: []extension.CompressionFormat{extension.Tar, extension.Gzip}},
		{token: "tbz", want: []extension.CompressionFormat{extension.Tar, extension.Bzip}},
		{token: "tbz2", want: []extension.CompressionFormat{extension.Tar, extension.Bzip}},
		{token: "tlz4", want: []extension.CompressionFormat{extension.Tar, extension.Lz4}},
		{token: "txz", want: []extension.CompressionFormat{extension.Tar, extension.Lzma}},
		{token: "tlzma", want: []extension.CompressionFormat{extension.Tar, extension.Lzma}},
		{token: "tsz", want: []extension.CompressionFormat{extension.Tar, extension.Snappy}},
		{token: "tzst", want: []extension.CompressionFormat{extension.Tar, extension.Zstd}},
		{token: "zip", want: []extension.CompressionFormat{extension.Zip}},
		{token: "bz", want: []extension.CompressionFormat{extension.Bzip}},
		{token: "bz2", want: []extension.CompressionFormat{extension.Bzip}},
		{token: "gz", want: []extension.CompressionFormat{extension.Gzip}},
		{token: "lz4", want: []extension.CompressionFormat{extension.Lz4}},
		{token: "xz", want: []extension.CompressionFormat{extension.Lzma}},
		{token: "lzma", want: []extension.CompressionFormat{extension.Lzma}},
		{token: "sz", want: []extension.CompressionFormat{extension.Snappy}},
		{token: "zst", want: []extension.CompressionFormat{extension.Zstd}},
	}

	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			got, ok := extension.CompressionFormatsFromText(test.token)
			assert.True(t, ok)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestCompressionFormatsFromTextUnknown(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "unknown token", token: "unknown"},
		{name: "empty token", token: ""},
		{name: "token with dot", token: "tar.gz"},
		{name: "leading dot", token: ".gz"},
		{name: "case sensitive", token: "GZ"},
		{name: "unsupported format", token: "7z"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := extension.CompressionFormatsFromText(test.token)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestCompressionFormatString(t *testing.T) {
	tests := []struct {
		format extension.CompressionFormat
		want   string
	}{
		{format: extension.Gzip, want: ".gz"},
		{format: extension.Bzip, want: ".bz"},
		{format: extension.Lz4, want: ".lz4"},
		{format: extension.Lzma, want: ".lz"},
		{format: extension.Snappy, want: ".sz"},
		{format: extension.Tar, want: ".tar"},
		{format: extension.Zstd, want: ".zst"},
		{format: extension.Zip, want: ".zip"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			assert.Equal(t, test.want, test.format.String())
		})
	}
}

func TestCompressionFormatIsArchive(t *testing.T) {
	tests := []struct {
		format extension.CompressionFormat
		want   bool
	}{
		{format: extension.Tar, want: true},
		{format: extension.Zip, want: true},
		{format: extension.Gzip, want: false},
		{format: extension.Bzip, want: false},
		{format: extension.Lz4, want: false},
		{format: extension.Lzma, want: false},
		{format: extension.Snappy, want: false},
		{format: extension.Zstd, want: false},
	}

	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			assert.Equal(t, test.want, test.format.IsArchive())
		})
	}
}

func TestCompressionFormatUnknownValuePanics(t *testing.T) {
	bogus := extension.CompressionFormat(42)
	assert.Panics(t, func() { _ = bogus.String() })
	assert.Panics(t, func() { _ = bogus.IsArchive() })
}
