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

	"github.com/benoit-pereira-da-silva/strarray/pkg/strarray"
	"github.com/spf13/cobra"
)

func newRecordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Split standard input into N-byte records and check each one",
		Long: `records reads standard input as consecutive N-byte records, as found in
fixed-width files, and prints one result line per record with its byte
offset. Every record is reported, including a short final one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Len
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 4096), max(n, bufio.MaxScanTokenSize))
			scanner.Split(strarray.ScanRecords(n))

			out := cmd.OutOrStdout()
			offset, count, failed := 0, 0, 0
			for scanner.Scan() {
				record := scanner.Bytes()
				if err := strarray.Check(record, n); err != nil {
					failed++
					fmt.Fprintf(out, "%d\tinvalid\t%q\t%v\n", offset, record, err)
				} else {
					fmt.Fprintf(out, "%d\tok\t%q\n", offset, record)
				}
				offset += len(record)
				count++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("scan records: %w", err)
			}

			a.logger.Info().Int("records", count).Int("rejected", failed).Msg("records checked")
			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}
}
