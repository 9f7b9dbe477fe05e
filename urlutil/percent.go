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

import (
	"strings"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
)

// PercentDecode replaces every "%XX" escape triplet in input with the byte it
// denotes and interprets the result as UTF-8.
//
// Unescaped characters are carried over as their UTF-8 encoding, so escaped
// and literal parts of the input form a single byte stream. A '%' that is not
// followed by two hex digits is kept as a literal character. Decoding never
// fails: byte sequences that are not valid UTF-8 are replaced with U+FFFD.
//
//	PercentDecode("%41%42%43") // "ABC"
//	PercentDecode("100%25")    // "100%"
//	PercentDecode("%2g")       // "%2g"
func PercentDecode(input string) string {
	if input == "" {
		return input
	}
	if strings.IndexByte(input, '%') < 0 && utf8.ValidString(input) {
		return input
	}

	in := newDecodeInput(input)
	buf := make([]byte, 0, len(input))
	for !in.done() {
		if b, ok := in.escape(); ok {
			// Decode run: consume consecutive triplets.
			for ok {
				buf = append(buf, b)
				in.skipEscape()
				b, ok = in.escape()
			}
			continue
		}
		r, _ := in.next()
		buf = utf8.AppendRune(buf, r)
	}
	return decodeUTF8(buf)
}

// decodeUTF8 converts the accumulated bytes into text, replacing ill-formed
// sequences with U+FFFD.
func decodeUTF8(b []byte) string {
	decoded, err := xunicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(decoded)
}

// EncodeByte returns the escape triplet of b, e.g. "%2F".
func EncodeByte(b byte) string {
	return string(appendPercentEncoded(make([]byte, 0, escapeLen), b))
}

// WritePercentEncoded writes the escape triplet of b to sb.
func WritePercentEncoded(sb *strings.Builder, b byte) {
	sb.WriteByte('%')
	sb.WriteByte(upperHex[b>>4])
	sb.WriteByte(upperHex[b&0x0F])
}

func appendPercentEncoded(dst []byte, b byte) []byte {
	return AppendByteHex(append(dst, '%'), b)
}

// PercentEncode escapes every rune of s for which keep returns false. The
// rune is written as the escape triplets of its UTF-8 bytes. Use
// IsURLCodePoint as keep to produce text that is safe in any URL component.
//
// The result round-trips through PercentDecode as long as s is valid UTF-8
// and keep rejects '%'.
func PercentEncode(s string, keep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	var buf [utf8.UTFMax]byte
	for _, ru := range s {
		if keep(ru) {
			b.WriteRune(ru)
			continue
		}
		n := utf8.EncodeRune(buf[:], ru)
		for i := 0; i < n; i++ {
			WritePercentEncoded(&b, buf[i])
		}
	}
	return b.String()
}
