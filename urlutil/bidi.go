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
	"golang.org/x/text/unicode/bidi"
)

// validateBidiLabel checks a mapped label against the bidi requirements of
// RFC 3454, Section 6.
//
// Rule 1: A label containing right-to-left characters must not contain
// left-to-right characters.
// Rule 2: Such a label must start and end with a right-to-left character.
func validateBidiLabel(label string) error {
	if label == "" {
		return nil
	}

	runes := []rune(label)
	var hasLTR, hasRTL bool
	for _, r := range runes {
		switch bidiClass(r) {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		default:
			// Neutral and weak classes do not take part in the check.
		}
	}

	if !hasRTL {
		return nil
	}
	if hasLTR {
		return &labelError{
			message: "Invalid label: mixed left-to-right and right-to-left characters",
			details: label,
		}
	}
	if !isRTL(runes[0]) || !isRTL(runes[len(runes)-1]) {
		return &labelError{
			message: "Invalid label: right-to-left labels must start and end with right-to-left characters",
			details: label,
		}
	}
	return nil
}

func bidiClass(r rune) bidi.Class {
	prop, _ := bidi.LookupRune(r)
	return prop.Class()
}

func isRTL(r rune) bool {
	class := bidiClass(r)
	return class == bidi.R || class == bidi.AL
}
