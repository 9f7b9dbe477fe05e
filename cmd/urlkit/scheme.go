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

	"github.com/spf13/cobra"

	"github.com/jplu/urlkit/urlutil"
)

func schemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "scheme <name>...",
		Short:     "Tell whether each scheme is relative and print its default port",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: urlutil.RelativeSchemes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, scheme := range args {
				port, ok := urlutil.DefaultPortForScheme(scheme)
				if !ok {
					port = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s relative=%t port=%s\n", scheme, urlutil.IsRelativeScheme(scheme), port)
			}
			return nil
		},
	}
}
