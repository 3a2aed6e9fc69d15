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

package strarray

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID is the canonical text form of a UUID,
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, always 36 ASCII bytes.
type UUID = Str[[36]byte]

// NewUUID returns the text form of a new random (version 4) UUID.
func NewUUID() UUID {
	return UUIDFrom(uuid.New())
}

// UUIDFrom returns the text form of id.
func UUIDFrom(id uuid.UUID) UUID {
	var out UUID
	copy(out.v[:], id.String())
	return out
}

// ParseUUID parses the text held by s. It accepts what uuid.ParseBytes
// accepts at 36 bytes, which includes upper case hex digits.
func ParseUUID(s UUID) (uuid.UUID, error) {
	id, err := uuid.ParseBytes(s.v[:])
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("strarray: parse uuid: %w", err)
	}
	return id, nil
}
