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
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jplu/urlkit/urlutil"
)

func classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Print the character classes of every code point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE POINT\tCHAR\tURL\tALPHA\tDIGIT\tHEX")
			for _, r := range args[0] {
				fmt.Fprintf(w, "%U\t%s\t%t\t%t\t%t\t%t\n",
					r,
					strconv.QuoteRuneToGraphic(r),
					urlutil.IsURLCodePoint(r),
					urlutil.IsASCIIAlpha(r),
					urlutil.IsASCIIDigit(r),
					urlutil.IsASCIIHexDigit(r),
				)
			}
			return w.Flush()
		},
	}
}
