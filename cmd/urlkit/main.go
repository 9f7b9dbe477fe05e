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

// Command urlkit exposes the urlutil primitives on the command line:
// percent-decoding and encoding, host conversion to and from IDNA, code point
// classification and the relative scheme table.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jplu/urlkit/internal/config"
	"github.com/jplu/urlkit/internal/logger"
	"github.com/jplu/urlkit/urlutil"
)

// app holds what the subcommands share once the configuration is loaded.
type app struct {
	converter *urlutil.DomainConverter
}

func main() {
	ctx := context.Background()
	err := execute(ctx, newRootCommand())
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1)
	}
}

// execute runs root and reports a failure. Once the configuration is loaded
// the command context carries a logger and the error is logged. Earlier
// failures, such as a bad config file or bad arguments, go to stderr.
func execute(ctx context.Context, root *cobra.Command) error {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}
	if cmd == nil {
		cmd = root
	}
	if cmd.Context() != nil {
		if l, ok := logger.FromContext(cmd.Context()); ok {
			l.Error("command failed", zap.Error(err))
			return err
		}
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	return err
}

// newRootCommand builds the command tree.
func newRootCommand() *cobra.Command {
	var configPath string
	a := &app{}

	root := &cobra.Command{
		Use:           "urlkit",
		Short:         "Normalize URL text: percent-decoding, IDNA hosts, code point classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err = logger.Setup(cfg.Environment); err != nil {
				return errors.Wrap(err, "setup logger")
			}
			t, err := cfg.Transformer()
			if err != nil {
				return err
			}
			a.converter = urlutil.NewDomainConverter(t)

			ctx := logger.WithFields(cmd.Context(),
				zap.String("command", cmd.CommandPath()),
				zap.String("idna_profile", cfg.IDNA.Profile),
			)
			cmd.SetContext(ctx)
			logger.Debug(ctx, "configuration loaded")
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (environment only when empty)")

	root.AddCommand(
		decodeCommand(),
		encodeCommand(),
		hostCommand(a),
		classifyCommand(),
		schemeCommand(),
	)
	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadEnv()
	}
	return config.Load(path)
}
