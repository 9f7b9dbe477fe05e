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

package main

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jplu/urlkit/internal/logger"
	"github.com/jplu/urlkit/urlutil"
)

func hostCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Convert hosts between Unicode and ASCII-compatible form",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "ascii <domain>...",
			Short: "Convert each domain to its ASCII-compatible form",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				for _, host := range args {
					labels, err := a.converter.ToASCII(urlutil.SplitDomain(host))
					if err != nil {
						return errors.Wrapf(err, "convert %q", host)
					}
					logger.Debug(ctx, "converted host", zap.String("host", host), zap.Strings("labels", labels))
					fmt.Fprintln(cmd.OutOrStdout(), urlutil.JoinDomain(labels))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "unicode <domain>...",
			Short: "Convert each domain to its Unicode form",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				for _, host := range args {
					labels := a.converter.ToUnicode(urlutil.SplitDomain(host))
					for _, label := range labels {
						if strings.HasPrefix(strings.ToLower(label), "xn--") {
							logger.Warn(ctx, "label left undecoded", zap.String("host", host), zap.String("label", label))
						}
					}
					fmt.Fprintln(cmd.OutOrStdout(), urlutil.JoinDomain(labels))
				}
				return nil
			},
		},
	)
	return cmd
}
