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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoit-pereira-da-silva/strarray/pkg/strarray"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// run executes the root command with args and stdin and returns what it
// wrote to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck_Arguments(t *testing.T) {
	out, _, err := run(t, "", "check", "--len", "3", "EUR", "EURO", "USD")
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if lines[0] != `ok	"EUR"` || lines[2] != `ok	"USD"` {
		t.Fatalf("unexpected ok lines:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], `invalid	"EURO"	strarray: expected string with 3 bytes, but got 4`) {
		t.Fatalf("unexpected invalid line: %q", lines[1])
	}
}

func TestCheck_StdinLines(t *testing.T) {
	out, _, err := run(t, "Café\nThé!\n", "check", "-n", "5")
	if err != nil {
		t.Fatalf("check returned error: %v\n%s", err, out)
	}
	if out != "ok\t\"Café\"\nok\t\"Thé!\"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCheck_LenFromEnvironment(t *testing.T) {
	t.Setenv("STRARRAY_LEN", "2")
	out, _, err := run(t, "", "check", "ab")
	if err != nil {
		t.Fatalf("check returned error: %v\n%s", err, out)
	}
}

func TestCheck_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("STRARRAY_LEN", "2")
	if _, _, err := run(t, "", "check", "--len", "3", "abc"); err != nil {
		t.Fatalf("check returned error: %v", err)
	}
}

func TestCheck_ConfigFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "strarray.toml")
	if err := os.WriteFile(tomlPath, []byte("len = 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := run(t, "", "check", "--config", tomlPath, "abcd"); err != nil {
		t.Fatalf("check with toml config returned error: %v", err)
	}

	yamlPath := filepath.Join(dir, "strarray.yaml")
	if err := os.WriteFile(yamlPath, []byte("len: 1\nlog-level: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, errOut, err := run(t, "", "check", "--config", yamlPath, "a")
	if err != nil {
		t.Fatalf("check with yaml config returned error: %v", err)
	}
	if !strings.Contains(errOut, "configuration loaded") {
		t.Fatalf("expected a debug log line, got %q", errOut)
	}
}

func TestRoot_RejectsNegativeLength(t *testing.T) {
	if _, _, err := run(t, "", "check", "--len=-1", "a"); err == nil {
		t.Fatalf("expected an error for a negative length")
	}
}

func TestRoot_RejectsUnknownLogLevel(t *testing.T) {
	if _, _, err := run(t, "", "check", "--log-level", "loud", "--len", "1", "a"); err == nil {
		t.Fatalf("expected an error for an unknown log level")
	}
}

func TestCollect(t *testing.T) {
	out, _, err := run(t, "Hello 💖", "collect", "--len", "10")
	if err != nil {
		t.Fatalf("collect returned error: %v", err)
	}
	if out != "Hello 💖\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	_, _, err = run(t, "Hello", "collect", "--len", "2")
	if !errors.Is(err, strarray.ErrCollectLength) {
		t.Fatalf("expected ErrCollectLength, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "Caf\xe9", "decode", "--len", "5", "--charset", "ISO-8859-1")
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	if out != "Café\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	_, _, err = run(t, "Caf\xe9", "decode", "--len", "4", "--charset", "latin1")
	if !errors.Is(err, strarray.ErrCollectLength) {
		t.Fatalf("expected ErrCollectLength, got %v", err)
	}
}

func TestDecode_CharsetFromEnvironment(t *testing.T) {
	t.Setenv("STRARRAY_CHARSET", "windows-1252")
	// 0x80 is the euro sign in windows-1252.
	out, _, err := run(t, "\x80", "decode", "--len", "3")
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	if out != "€\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, _, err := run(t, "abc", "decode", "--len", "3"); err == nil {
		t.Fatalf("expected an error without a charset")
	}
	_, _, err := run(t, "abc", "decode", "--len", "3", "--charset", "klingon")
	if !errors.Is(err, strarray.ErrUnknownCharset) {
		t.Fatalf("expected ErrUnknownCharset, got %v", err)
	}
}

func TestRecords(t *testing.T) {
	out, _, err := run(t, "EURUSDCH", "records", "--len", "3")
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed for the short tail, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"0\tok\t\"EUR\"", "3\tok\t\"USD\""}
	if len(lines) != 3 || lines[0] != want[0] || lines[1] != want[1] {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], "6\tinvalid\t\"CH\"") {
		t.Fatalf("unexpected last line: %q", lines[2])
	}

	if _, _, err := run(t, "EURUSD", "records", "--len", "3"); err != nil {
		t.Fatalf("records returned error: %v", err)
	}
}

func TestUUID(t *testing.T) {
	out, _, err := run(t, "", "uuid", "--count", "2")
	if err != nil {
		t.Fatalf("uuid returned error: %v", err)
	}
	lines := strings.Fields(out)
	if len(lines) != 2 || lines[0] == lines[1] {
		t.Fatalf("unexpected output: %q", out)
	}
	for _, l := range lines {
		if _, err := uuid.Parse(l); err != nil || len(l) != 36 {
			t.Fatalf("invalid uuid %q: %v", l, err)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		if !ok || got != want {
			t.Fatalf("parseLevel(%q) = %v, %v; want %v", raw, got, ok, want)
		}
	}
	if _, ok := parseLevel("loud"); ok {
		t.Fatalf("parseLevel accepted an unknown level")
	}
}
