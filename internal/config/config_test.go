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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/idna"

	"github.com/jplu/urlkit/internal/config"
	"github.com/jplu/urlkit/urlutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "environment: development\nidna:\n  profile: lookup\n  skipBidiCheck: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, config.ProfileLookup, cfg.IDNA.Profile)
	require.True(t, cfg.IDNA.SkipBidiCheck)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "idna:\n  profile: lookup\n")
	t.Setenv("URLKIT_IDNA_PROFILE", "registration")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.ProfileRegistration, cfg.IDNA.Profile)
	require.Equal(t, "production", cfg.Environment)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, config.ProfileNameprep, cfg.IDNA.Profile)
	require.False(t, cfg.IDNA.SkipBidiCheck)
}

func TestTransformer(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		want    urlutil.LabelTransformer
		wantErr bool
	}{
		{name: "nameprep", profile: config.ProfileNameprep, want: &urlutil.Nameprep{CheckBidi: true}},
		{name: "empty defaults to nameprep", profile: "", want: &urlutil.Nameprep{CheckBidi: true}},
		{name: "lookup", profile: config.ProfileLookup, want: urlutil.ProfileTransformer{Profile: idna.Lookup}},
		{name: "registration", profile: config.ProfileRegistration, want: urlutil.ProfileTransformer{Profile: idna.Registration}},
		{name: "unknown", profile: "punycode", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config.Config
			cfg.IDNA.Profile = tt.profile

			got, err := cfg.Transformer()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTransformer_SkipBidiCheck(t *testing.T) {
	var cfg config.Config
	cfg.IDNA.SkipBidiCheck = true

	got, err := cfg.Transformer()
	require.NoError(t, err)
	require.Equal(t, &urlutil.Nameprep{CheckBidi: false}, got)
}
