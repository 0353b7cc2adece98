// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package extension

import (
	"path/filepath"
	"strings"
)

// SplitExtensions splits a path like "bolovo.tar.gz" into the residual path
// "bolovo" and the recognized trailing extensions. Extensions are stripped
// rightmost first; the first unrecognized one stops the loop and stays on the
// residual path untouched. The returned extensions are ordered left to right
// as they appear in the name, outermost container first, e.g. "tar" before
// "gz". An empty extension list is not an error, it just means no known
// extension was found.
//
// Only the trailing extensions are removed, so joining the residual path with
// the dotted display texts of the extensions reconstructs the input.
func SplitExtensions(path string) (string, []Extension) {
	var extensions []Extension
	for {
		token, ok := trailingExtension(path)
		if !ok {
			break
		}
		formats, known := CompressionFormatsFromText(token)
		if !known {
			break
		}
		extensions = append(extensions, NewExtension(formats, token))
		path = path[:len(path)-len(token)-1]
	}
	// stripped rightmost first, report left to right
	reverse(extensions)
	return path, extensions
}

// ExtensionsFromPath returns only the recognized trailing extensions of the
// path, see [SplitExtensions].
func ExtensionsFromPath(path string) []Extension {
	_, extensions := SplitExtensions(path)
	return extensions
}

// trailingExtension returns the token after the last dot of the final path
// element. Names without a dot and dotfiles like ".tar" have no extension.
// The token must sit at the very end of the path string, so paths with a
// trailing separator have none either; stripping stays aligned with the end
// of the string.
func trailingExtension(path string) (string, bool) {
	base := filepath.Base(path)
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return "", false
	}
	token := base[i+1:]
	if !strings.HasSuffix(path, "."+token) {
		return "", false
	}
	return token, true
}
