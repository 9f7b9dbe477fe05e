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

import "sort"

// relativeSchemes maps each relative scheme to its default port. An empty
// port means the scheme has none.
var relativeSchemes = map[string]string{ //nolint:gochecknoglobals // Read-only table.
	"ftp":    "21",
	"file":   "",
	"gopher": "70",
	"http":   "80",
	"https":  "443",
	"ws":     "80",
	"wss":    "443",
}

// IsRelativeScheme reports whether scheme is one of the relative schemes:
// ftp, file, gopher, http, https, ws or wss. The comparison is
// case-sensitive, so scheme must already be lowercase.
func IsRelativeScheme(scheme string) bool {
	_, ok := relativeSchemes[scheme]
	return ok
}

// DefaultPortForScheme returns the default port of scheme. ok is false for
// "file" and for any scheme that is not relative.
func DefaultPortForScheme(scheme string) (port string, ok bool) {
	port = relativeSchemes[scheme]
	return port, port != ""
}

// RelativeSchemes returns the relative schemes in lexical order.
func RelativeSchemes() []string {
	schemes := make([]string, 0, len(relativeSchemes))
	for scheme := range relativeSchemes {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}
