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

const (
	// maxLabels is the maximum number of labels in a domain.
	maxLabels = 127
	// maxDomainLength is the maximum length of the dotted ASCII domain,
	// computed as the sum of the label lengths plus one separator between
	// each pair of labels.
	maxDomainLength = 253
)

// LabelTransformer converts a single domain label between its Unicode form
// and its ASCII-compatible encoding.
type LabelTransformer interface {
	// ToASCII returns the ASCII-compatible form of label, or an error when
	// the label cannot be converted.
	ToASCII(label string) (string, error)
	// ToUnicode returns the Unicode form of label. It must not fail; labels
	// that cannot be decoded are returned as they are.
	ToUnicode(label string) string
}

// DomainConverter implements the "domain to ASCII" and "domain to Unicode"
// algorithms on top of a LabelTransformer.
type DomainConverter struct {
	transformer LabelTransformer
}

// NewDomainConverter returns a DomainConverter using t for the per-label
// transforms. A nil t selects the default Nameprep transform.
func NewDomainConverter(t LabelTransformer) *DomainConverter {
	if t == nil {
		t = NewNameprep()
	}
	return &DomainConverter{transformer: t}
}

// defaultConverter backs the package-level functions.
var defaultConverter = NewDomainConverter(nil) //nolint:gochecknoglobals // Immutable after init.

// ToASCII converts every label to its ASCII-compatible form and checks the
// DNS limits of the result: no empty label, at most 127 labels and at most
// 253 bytes once joined with dots. The returned slice has the same length
// and order as labels. On failure a *DomainConversionError is returned and
// no labels are.
func (c *DomainConverter) ToASCII(labels []string) ([]string, error) {
	asciiLabels := make([]string, 0, len(labels))
	totalLength := 0
	for _, label := range labels {
		asciiLabel, err := c.transformer.ToASCII(label)
		if err != nil {
			return nil, newDomainConversionError(ErrLabelConversion, label, err)
		}
		if asciiLabel == "" {
			return nil, newDomainConversionError(ErrEmptyLabel, "", nil)
		}
		asciiLabels = append(asciiLabels, asciiLabel)
		totalLength += len(asciiLabel)
	}

	if len(asciiLabels) > maxLabels {
		return nil, newDomainConversionError(ErrTooManyLabels, "", nil)
	}
	if totalLength+len(asciiLabels)-1 > maxDomainLength {
		return nil, newDomainConversionError(ErrDomainTooLong, "", nil)
	}
	return asciiLabels, nil
}

// ToUnicode converts every label to its Unicode form. Unicode labels are not
// subject to DNS limits, so no validation is done.
func (c *DomainConverter) ToUnicode(labels []string) []string {
	unicodeLabels := make([]string, len(labels))
	for i, label := range labels {
		unicodeLabels[i] = c.transformer.ToUnicode(label)
	}
	return unicodeLabels
}

// LabelToASCII converts a single label without any domain-level checks.
func (c *DomainConverter) LabelToASCII(label string) (string, error) {
	return c.transformer.ToASCII(label)
}

// LabelToUnicode converts a single label to its Unicode form.
func (c *DomainConverter) LabelToUnicode(label string) string {
	return c.transformer.ToUnicode(label)
}

// DomainToASCII is DomainConverter.ToASCII with the default transform.
func DomainToASCII(labels []string) ([]string, error) {
	return defaultConverter.ToASCII(labels)
}

// DomainToUnicode is DomainConverter.ToUnicode with the default transform.
func DomainToUnicode(labels []string) []string {
	return defaultConverter.ToUnicode(labels)
}

// LabelToASCII is DomainConverter.LabelToASCII with the default transform.
func LabelToASCII(label string) (string, error) {
	return defaultConverter.LabelToASCII(label)
}

// LabelToUnicode is DomainConverter.LabelToUnicode with the default transform.
func LabelToUnicode(label string) string {
	return defaultConverter.LabelToUnicode(label)
}

// SplitDomain splits a host into its dot-separated labels.
func SplitDomain(host string) []string {
	return strings.Split(host, ".")
}

// JoinDomain joins labels back into a dotted host.
func JoinDomain(labels []string) string {
	return strings.Join(labels, ".")
}
