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
	"fmt"

	"github.com/benoit-pereira-da-silva/strarray/pkg/strarray"
	"github.com/spf13/cobra"
)

func newUUIDCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Print new random UUIDs in their 36-byte text form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for range count {
				fmt.Fprintln(cmd.OutOrStdout(), strarray.NewUUID())
			}
			a.logger.Debug().Int("count", count).Msg("uuids generated")
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "Number of UUIDs to print")
	return cmd
}
