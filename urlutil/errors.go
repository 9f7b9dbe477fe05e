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
	"errors"
	"fmt"
)

// Kinds of DomainConversionError. Match them with errors.Is.
var (
	// ErrLabelConversion is reported when the IDNA transform rejects a label.
	// The transform's error is available through errors.Unwrap.
	ErrLabelConversion = errors.New("could not convert domain to ASCII")
	// ErrEmptyLabel is reported when a label is empty after conversion.
	ErrEmptyLabel = errors.New("DNS violation: host contains empty label")
	// ErrTooManyLabels is reported when a domain has more than maxLabels labels.
	ErrTooManyLabels = errors.New("DNS violation: host must have a maximum of 127 labels")
	// ErrDomainTooLong is reported when the dotted ASCII domain is longer than
	// maxDomainLength bytes.
	ErrDomainTooLong = errors.New("DNS violation: host longer than 253 bytes")
)

// DomainConversionError is returned by DomainToASCII. The whole conversion is
// abandoned on the first violation, so no partial result accompanies it.
type DomainConversionError struct {
	// Message is a human-readable description of the failure.
	Message string
	// Label is the offending label, when the failure concerns a single one.
	Label string
	// Err is the error returned by the IDNA transform, if any.
	Err error

	kind error
}

// newDomainConversionError creates a DomainConversionError of the given kind.
func newDomainConversionError(kind error, label string, cause error) *DomainConversionError {
	return &DomainConversionError{Message: kind.Error(), Label: label, Err: cause, kind: kind}
}

// Error formats the message with the offending label and the wrapped cause
// when they are available.
func (e *DomainConversionError) Error() string {
	msg := "domain conversion error: " + e.Message
	if e.Label != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Label)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *DomainConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error.
func (e *DomainConversionError) Is(target error) bool {
	return e.kind != nil && e.kind == target
}

// labelError is returned by the built-in label transforms.
type labelError struct {
	message string
	details string
}

func (e *labelError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s '%s'", e.message, e.details)
	}
	return e.message
}
