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
	"io"
	"strings"
)

// escapeLen is the byte length of a "%XX" triplet.
const escapeLen = 3

// decodeInput is a forward-only cursor over the scalar values of a string.
// It never backtracks: every step consumes either one scalar value or one
// complete escape triplet.
type decodeInput struct {
	originalString string
	reader         *strings.Reader
}

// newDecodeInput creates a new decodeInput wrapping the given string.
func newDecodeInput(s string) *decodeInput {
	return &decodeInput{
		originalString: s,
		reader:         strings.NewReader(s),
	}
}

// next reads and returns the next rune from the input, advancing the position.
// An invalid UTF-8 byte is returned as utf8.RuneError and consumes one byte.
func (p *decodeInput) next() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	return r, err == nil
}

// done reports whether the whole input has been consumed.
func (p *decodeInput) done() bool {
	return p.reader.Len() == 0
}

// position returns the current read position in bytes from the start of the original string.
func (p *decodeInput) position() int {
	return len(p.originalString) - p.reader.Len()
}

// asStr returns the unread portion of the input string.
func (p *decodeInput) asStr() string {
	return p.originalString[p.position():]
}

// escape looks at the unread input and, if it starts with a valid escape
// triplet, returns the encoded byte. The cursor is not moved.
func (p *decodeInput) escape() (byte, bool) {
	rest := p.asStr()
	if len(rest) < escapeLen || rest[0] != '%' {
		return 0, false
	}
	// Hex digits are ASCII, so the two runes after '%' are the next two bytes
	// whenever they are valid digits.
	return HexToInt(rune(rest[1]), rune(rest[2]))
}

// skipEscape advances the cursor past one escape triplet. It must follow a
// successful escape, which guarantees that the three bytes are there, so the
// seek cannot fail.
func (p *decodeInput) skipEscape() {
	_, _ = p.reader.Seek(escapeLen, io.SeekCurrent)
}
