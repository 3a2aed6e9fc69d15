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
	"database/sql/driver"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// The persisted form of a Str is its N bytes of text: the length is implied by
// the type, so no framing is needed. Every decoder below goes through New or
// FromBytes and therefore enforces both the length and the UTF-8 invariant.

// MarshalText implements encoding.TextMarshaler.
func (s Str[A]) MarshalText() ([]byte, error) {
	return append([]byte(nil), bytesOf(&s.v)...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Str[A]) UnmarshalText(text []byte) error {
	v, err := FromBytes[A](text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the raw
// N-byte span.
func (s Str[A]) MarshalBinary() ([]byte, error) {
	return s.MarshalText()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Str[A]) UnmarshalBinary(data []byte) error {
	return s.UnmarshalText(data)
}

// MarshalJSON encodes s as a JSON string.
func (s Str[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// UnmarshalJSON decodes a JSON string of exactly N bytes. A JSON null leaves
// s unchanged.
func (s *Str[A]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("strarray: decode json: %w", err)
	}
	v, err := New[A](text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML encodes s as a YAML string scalar.
func (s Str[A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a YAML scalar of exactly N bytes.
func (s *Str[A]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("strarray: decode yaml: line %d: expected a scalar", value.Line)
	}
	v, err := New[A](value.Value)
	if err != nil {
		return fmt.Errorf("strarray: decode yaml: line %d: %w", value.Line, err)
	}
	*s = v
	return nil
}

// Value implements driver.Valuer. s is stored as a string.
func (s Str[A]) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner for TEXT and BLOB columns. Use
// sql.Null[Str[A]] for nullable columns.
func (s *Str[A]) Scan(src any) error {
	var (
		v   Str[A]
		err error
	)
	switch src := src.(type) {
	case string:
		v, err = New[A](src)
	case []byte:
		v, err = FromBytes[A](src)
	case nil:
		return fmt.Errorf("strarray: scan: NULL into %T", s)
	default:
		return fmt.Errorf("strarray: scan: unsupported type %T", src)
	}
	if err != nil {
		return fmt.Errorf("strarray: scan: %w", err)
	}
	*s = v
	return nil
}

// LogValue implements slog.LogValuer so that a Str logs as its text.
func (s Str[A]) LogValue() slog.Value {
	return slog.StringValue(s.String())
}
