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

// Package config loads the urlkit command configuration from a YAML file
// and the environment.
package config

import (
	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/net/idna"

	"github.com/jplu/urlkit/urlutil"
)

// IDNA profile names accepted in IDNA.Profile.
const (
	ProfileNameprep     = "nameprep"
	ProfileLookup       = "lookup"
	ProfileRegistration = "registration"
)

// Config is the urlkit command configuration.
type Config struct {
	// Environment selects the logger preset (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	// IDNA configures the label transform used for host conversion.
	IDNA struct {
		// Profile is one of nameprep, lookup or registration.
		Profile string `env:"URLKIT_IDNA_PROFILE" env-default:"nameprep" yaml:"profile"`
		// SkipBidiCheck disables the bidi check of the nameprep profile.
		SkipBidiCheck bool `env:"URLKIT_IDNA_SKIP_BIDI_CHECK" yaml:"skipBidiCheck"`
	} `yaml:"idna"`
}

// Load reads the YAML file at path, then applies environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return &cfg, nil
}

// LoadEnv builds the configuration from defaults and the environment only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	return &cfg, nil
}

// Transformer returns the label transform selected by the configuration.
func (c *Config) Transformer() (urlutil.LabelTransformer, error) {
	switch c.IDNA.Profile {
	case ProfileNameprep, "":
		return &urlutil.Nameprep{CheckBidi: !c.IDNA.SkipBidiCheck}, nil
	case ProfileLookup:
		return urlutil.ProfileTransformer{Profile: idna.Lookup}, nil
	case ProfileRegistration:
		return urlutil.ProfileTransformer{Profile: idna.Registration}, nil
	default:
		return nil, errors.Errorf("unknown IDNA profile %q", c.IDNA.Profile)
	}
}
