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

// Command strarray checks, collects and decodes text into fixed-length UTF-8
// buffers whose length is given at run time.
//
//	strarray check --len 3 EUR USD EURO
//	printf 'Hello 💖' | strarray collect --len 10
//	strarray decode --len 5 --charset ISO-8859-1 < cafe.latin1
//	strarray records --len 3 < codes.dat
//	strarray uuid
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			logger := newLogger(os.Stderr, zerolog.InfoLevel)
			logger.Error().Err(err).Msg("Command failed")
		}
		os.Exit(1)
	}
}
