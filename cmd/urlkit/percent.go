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

func decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <text>...",
		Short: "Percent-decode each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), urlutil.PercentDecode(arg))
			}
			return nil
		},
	}
}

func encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text>...",
		Short: "Percent-encode every character that is not a URL code point",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), urlutil.PercentEncode(arg, urlutil.IsURLCodePoint))
			}
			return nil
		},
	}
}
