// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/benoit-pereira-da-silva/strarray/pkg/strarray"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [text...]",
		Short: "Check that each text is valid UTF-8 of exactly N bytes",
		Long: `check validates each argument, or each line of standard input when no
argument is given, and prints one result line per input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := slices.Values(args)
			var scanErr error
			if len(args) == 0 {
				inputs = scanLines(cmd.InOrStdin(), &scanErr)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for text := range inputs {
				if err := strarray.Check([]byte(text), a.cfg.Len); err != nil {
					failed++
					a.logger.Debug().Str("input", text).Err(err).Msg("rejected")
					fmt.Fprintf(out, "invalid\t%q\t%v\n", text, err)
					continue
				}
				fmt.Fprintf(out, "ok\t%q\n", text)
			}
			if scanErr != nil {
				return fmt.Errorf("read input: %w", scanErr)
			}
			if failed > 0 {
				a.logger.Info().Int("rejected", failed).Msg("check failed")
				return errFailed
			}
			return nil
		},
	}
}

// scanLines yields the lines of r without their line endings.
func scanLines(r io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
		*errp = scanner.Err()
	}
}
