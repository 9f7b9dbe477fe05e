/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlutil

import "strings"

// urlPunctuation is the ASCII punctuation allowed raw in a URL component.
const urlPunctuation = "!$&'()*+,-./:;=?@_~"

// IsASCIIHexDigit reports whether r is in 0-9, A-F or a-f.
func IsASCIIHexDigit(r rune) bool {
	return IsASCIIDigit(r) || ('A' <= r && r <= 'F') || ('a' <= r && r <= 'f')
}

// IsASCIIDigit reports whether r is in 0-9.
func IsASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsASCIIAlphaUpper reports whether r is in A-Z.
func IsASCIIAlphaUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

// IsASCIIAlphaLower reports whether r is in a-z.
func IsASCIIAlphaLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

// IsASCIIAlpha reports whether r is an ASCII letter.
func IsASCIIAlpha(r rune) bool {
	return IsASCIIAlphaUpper(r) || IsASCIIAlphaLower(r)
}

// IsASCIIAlphanumeric reports whether r is an ASCII letter or digit.
func IsASCIIAlphanumeric(r rune) bool {
	return IsASCIIAlpha(r) || IsASCIIDigit(r)
}

// IsURLCodePoint reports whether r may appear unescaped inside a URL
// component, as defined by the URL Standard. Anything else has to be
// percent-encoded by the serializer.
//
// The non-ASCII ranges exclude surrogates, the U+FDD0..U+FDEF noncharacters
// and the two trailing noncharacters (U+xFFFE, U+xFFFF) of every plane.
func IsURLCodePoint(r rune) bool {
	if r < 0x80 {
		return IsASCIIAlphanumeric(r) || strings.ContainsRune(urlPunctuation, r)
	}

	switch {
	case r >= 0x00A0 && r <= 0xD7FF,
		r >= 0xE000 && r <= 0xFDCF,
		r >= 0xFDF0 && r <= 0xFFEF:
		return true
	case r >= 0x10000 && r <= 0x10FFFD:
		// Every supplementary plane ends in ...FFFE and ...FFFF.
		return r&0xFFFF <= 0xFFFD
	}
	return false
}
