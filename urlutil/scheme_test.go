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

//nolint:testpackage // This is a white-box test file. It needs to be in the same package to test unexported functions.
package urlutil

import (
	"reflect"
	"testing"
)

func TestSchemeTable(t *testing.T) {
	tests := []struct {
		scheme   string
		relative bool
		port     string
		hasPort  bool
	}{
		{"ftp", true, "21", true},
		{"file", true, "", false},
		{"gopher", true, "70", true},
		{"http", true, "80", true},
		{"https", true, "443", true},
		{"ws", true, "80", true},
		{"wss", true, "443", true},
		{"mailto", false, "", false},
		{"data", false, "", false},
		{"HTTP", false, "", false},
		{"", false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			if got := IsRelativeScheme(tt.scheme); got != tt.relative {
				t.Errorf("IsRelativeScheme(%q) = %v, want %v", tt.scheme, got, tt.relative)
			}
			port, ok := DefaultPortForScheme(tt.scheme)
			if port != tt.port || ok != tt.hasPort {
				t.Errorf("DefaultPortForScheme(%q) = (%q, %v), want (%q, %v)", tt.scheme, port, ok, tt.port, tt.hasPort)
			}
		})
	}
}

func TestRelativeSchemes(t *testing.T) {
	want := []string{"file", "ftp", "gopher", "http", "https", "ws", "wss"}
	got := RelativeSchemes()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RelativeSchemes() = %v, want %v", got, want)
	}
	got[0] = "changed"
	if !IsRelativeScheme("file") {
		t.Error("changing the returned slice altered the scheme table")
	}
}
