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

// upperHex holds the digits used when serializing a byte.
const upperHex = "0123456789ABCDEF"

// ByteToHex returns the two uppercase hexadecimal digits of b.
func ByteToHex(b byte) string {
	return string([]byte{upperHex[b>>4], upperHex[b&0x0F]})
}

// AppendByteHex appends the two uppercase hexadecimal digits of b to dst and
// returns the extended slice.
func AppendByteHex(dst []byte, b byte) []byte {
	return append(dst, upperHex[b>>4], upperHex[b&0x0F])
}

// HexToInt returns the byte encoded by the hexadecimal digits hi and lo.
// Both cases are accepted. ok is false if either rune is not a hex digit.
func HexToInt(hi, lo rune) (b byte, ok bool) {
	h, okHi := hexValue(hi)
	l, okLo := hexValue(lo)
	if !okHi || !okLo {
		return 0, false
	}
	return h<<4 | l, true
}

// hexValue returns the numeric value of a single hex digit.
func hexValue(r rune) (byte, bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'a' <= r && r <= 'f':
		return byte(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
