// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package extension

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedExtension is returned when a token is not in the fixed
// extension vocabulary.
var ErrUnsupportedExtension = errors.New("unsupported extension")

// ParseFormat parses a user-supplied format string such as "tar.gz",
// ".tar.gz" or "zip" into extensions. The string is split on dots; empty
// pieces are discarded, which absorbs leading, trailing and repeated dots.
// If any piece is not a known token, the whole call fails with
// [ErrUnsupportedExtension] and no extensions are returned.
//
// The result is ordered innermost format first: "tar.gz" yields the "gz"
// extension before the "tar" extension. Callers that need the textual
// left-to-right order must reverse it.
func ParseFormat(format string) ([]Extension, error) {
	var extensions []Extension
	for _, piece := range strings.Split(format, ".") {
		if piece == "" {
			continue
		}
		formats, ok := CompressionFormatsFromText(piece)
		if !ok {
			return nil, fmt.Errorf("%q: %w", piece, ErrUnsupportedExtension)
		}
		extensions = append(extensions, NewExtension(formats, piece))
	}
	reverse(extensions)
	return extensions, nil
}

func reverse(extensions []Extension) {
	for i, j := 0, len(extensions)-1; i < j; i, j = i+1, j-1 {
		extensions[i], extensions[j] = extensions[j], extensions[i]
	}
}
