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

// Package urlutil provides the text normalization primitives used by a URL
// parser following the WHATWG URL Standard.
//
// The package offers:
//   - Percent-decoding (`PercentDecode`) of "%XX" escapes into UTF-8 text, and the
//     matching encoders (`EncodeByte`, `PercentEncode`).
//   - Domain conversion (`DomainToASCII`, `DomainToUnicode`) between Unicode labels
//     and their ASCII-compatible encoding, with the DNS length limits enforced.
//     The per-label IDNA transform is pluggable through `LabelTransformer`.
//   - Code point predicates (`IsURLCodePoint` and the ASCII classes) telling which
//     characters may appear raw in a URL component.
//   - The relative scheme table and default ports (`IsRelativeScheme`,
//     `DefaultPortForScheme`).
//
// All functions are pure and safe for concurrent use.
package urlutil
