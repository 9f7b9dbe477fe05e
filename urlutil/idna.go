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
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// acePrefix is the ASCII Compatible Encoding prefix.
	acePrefix = "xn--"
	// maxLabelLength is the maximum length of an ASCII label, per RFC 1034.
	maxLabelLength = 63
)

// Nameprep is a lenient IDNA2003-style label transform (RFC 3490, RFC 3491).
//
// Labels are mapped (characters mapped to nothing are removed, then case
// folding and NFKC are applied), checked for prohibited code points and
// against the bidi rule, and Punycode encoded. Unassigned code points are allowed: a label is never rejected only
// because Unicode has not assigned one of its characters yet.
//
// Nameprep holds no mutable state and is safe for concurrent use.
type Nameprep struct {
	// CheckBidi enables the RFC 3454, Section 6 bidi check on mapped labels.
	CheckBidi bool
}

// NewNameprep returns a Nameprep with the bidi check enabled.
func NewNameprep() *Nameprep {
	return &Nameprep{CheckBidi: true}
}

// ToASCII implements LabelTransformer.
func (n *Nameprep) ToASCII(label string) (string, error) {
	// All-ASCII labels skip nameprep and keep their case.
	mapped := label
	if !isASCII(label) {
		var err error
		if mapped, err = nameprepMap(label); err != nil {
			return "", &labelError{message: "Invalid label", details: label}
		}
		if r, ok := firstProhibited(mapped); ok {
			return "", &labelError{message: "Label contains a prohibited code point", details: fmt.Sprintf("%U", r)}
		}
	}

	if !isASCII(mapped) {
		if n.CheckBidi {
			if err := validateBidiLabel(mapped); err != nil {
				return "", err
			}
		}
		if strings.HasPrefix(mapped, acePrefix) {
			return "", &labelError{message: "Label starts with the ACE prefix", details: label}
		}
		ascii, err := idna.Punycode.ToASCII(mapped)
		if err != nil {
			return "", err
		}
		mapped = ascii
	}

	if len(mapped) > maxLabelLength {
		return "", &labelError{message: "Label longer than 63 bytes", details: label}
	}
	return mapped, nil
}

// ToUnicode implements LabelTransformer. Labels that are not valid Punycode,
// or whose decoded form does not encode back to the same label, are returned
// unchanged.
func (n *Nameprep) ToUnicode(label string) string {
	if !strings.HasPrefix(strings.ToLower(label), acePrefix) {
		return label
	}
	u, err := idna.Punycode.ToUnicode(strings.ToLower(label))
	if err != nil {
		return label
	}
	ascii, err := n.ToASCII(u)
	if err != nil || !strings.EqualFold(ascii, label) {
		return label
	}
	return u
}

// nameprepMap applies the nameprep mapping step to a label.
func nameprepMap(label string) (string, error) {
	// The chain is stateful, so it is built for each call.
	t := transform.Chain(runes.Remove(runes.Predicate(isMappedToNothing)), cases.Fold(), norm.NFKC)
	mapped, _, err := transform.String(t, label)
	return mapped, err
}

// isMappedToNothing reports whether r is in RFC 3454, Table B.1.
func isMappedToNothing(r rune) bool {
	switch {
	case r == '\u00AD', r == '\u034F', r == '\u1806',
		r >= '\u180B' && r <= '\u180D',
		r >= '\u200B' && r <= '\u200D',
		r == '\u2060',
		r >= '\uFE00' && r <= '\uFE0F',
		r == '\uFEFF':
		return true
	}
	return false
}

// prohibitedOutput holds the RFC 3454 tables C.1.2, C.2.2 and C.6 to C.9
// that are not already covered by a Unicode category or property.
var prohibitedOutput = &unicode.RangeTable{ //nolint:gochecknoglobals // Read-only table.
	R16: []unicode.Range16{
		{Lo: 0x00A0, Hi: 0x00A0, Stride: 1},
		{Lo: 0x0340, Hi: 0x0341, Stride: 1},
		{Lo: 0x06DD, Hi: 0x06DD, Stride: 1},
		{Lo: 0x070F, Hi: 0x070F, Stride: 1},
		{Lo: 0x1680, Hi: 0x1680, Stride: 1},
		{Lo: 0x180E, Hi: 0x180E, Stride: 1},
		{Lo: 0x2000, Hi: 0x200F, Stride: 1},
		{Lo: 0x2028, Hi: 0x202F, Stride: 1},
		{Lo: 0x205F, Hi: 0x2063, Stride: 1},
		{Lo: 0x206A, Hi: 0x206F, Stride: 1},
		{Lo: 0x2FF0, Hi: 0x2FFB, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1},
		{Lo: 0xFFF9, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1D173, Hi: 0x1D17A, Stride: 1},
		{Lo: 0xE0001, Hi: 0xE0001, Stride: 1},
		{Lo: 0xE0020, Hi: 0xE007F, Stride: 1},
	},
	LatinOffset: 1,
}

// prohibited lists the sets a mapped label must not intersect. Controls (C.2),
// private use (C.3), non-characters (C.4) and surrogates (C.5) come from the
// Unicode tables. ASCII is checked separately and never prohibited here.
var prohibited = []runes.Set{ //nolint:gochecknoglobals // Read-only sets.
	runes.In(unicode.Cc),
	runes.In(unicode.Co),
	runes.In(unicode.Cs),
	runes.In(unicode.Noncharacter_Code_Point),
	runes.In(prohibitedOutput),
}

// firstProhibited returns the first non-ASCII rune of s that nameprep
// prohibits in its output.
func firstProhibited(s string) (rune, bool) {
	for _, r := range s {
		if r <= unicode.MaxASCII {
			continue
		}
		for _, set := range prohibited {
			if set.Contains(r) {
				return r, true
			}
		}
	}
	return 0, false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// ProfileTransformer adapts an x/net/idna profile, such as idna.Lookup or
// idna.Registration, to LabelTransformer. These profiles implement UTS #46
// and are stricter than Nameprep.
type ProfileTransformer struct {
	Profile *idna.Profile
}

// ToASCII implements LabelTransformer.
func (p ProfileTransformer) ToASCII(label string) (string, error) {
	return p.Profile.ToASCII(label)
}

// ToUnicode implements LabelTransformer. On error the label is returned
// unchanged.
func (p ProfileTransformer) ToUnicode(label string) string {
	u, err := p.Profile.ToUnicode(label)
	if err != nil {
		return label
	}
	return u
}
