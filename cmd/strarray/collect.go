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

	"github.com/benoit-pereira-da-silva/strarray/pkg/strarray"
	"github.com/spf13/cobra"
)

func newCollectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Collect standard input rune by rune into an N-byte buffer",
		Long: `collect reads standard input as UTF-8 runes and succeeds only if they
encode to exactly N bytes. Reading stops at the first rune that does not fit.
Invalid input bytes are replaced with U+FFFD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(cmd.InOrStdin())
			dst := make([]byte, a.cfg.Len)

			n, err := strarray.FillReader(dst, r)
			if err != nil {
				a.logger.Debug().Int("written", n).Err(err).Msg("collect failed")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", dst)
			return err
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode standard input from a legacy charset into an N-byte buffer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Charset == "" {
				return fmt.Errorf("no charset: set --charset or STRARRAY_CHARSET")
			}
			enc, err := strarray.LookupCharset(a.cfg.Charset)
			if err != nil {
				return err
			}
			src, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			dst := make([]byte, a.cfg.Len)
			if _, err := strarray.DecodeInto(dst, enc.NewDecoder(), src); err != nil {
				a.logger.Debug().Str("charset", a.cfg.Charset).Int("input", len(src)).Err(err).Msg("decode failed")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", dst)
			return err
		},
	}
	cmd.Flags().StringP("charset", "c", "", "IANA name of the input charset (ISO-8859-1, windows-1252, Shift_JIS, ...)")
	return cmd
}
