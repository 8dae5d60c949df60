// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-ejdict/codec"
	"github.com/ianlewis/go-ejdict/dict"
	"github.com/ianlewis/go-ejdict/internal/testutil"
)

// testFiles writes a dictionary and a configuration file and returns the
// global flags that select them.
func testFiles(t *testing.T, cfg string) []string {
	t.Helper()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "ejdict.json")
	words := append(testutil.Words(), testutil.Colour())
	if err := codec.WriteFile(dataPath, dict.New(words)); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	return []string{"--config", cfgPath, "--data", dataPath}
}

func runApp(t *testing.T, cfg string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newEJDictApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	argv := append([]string{"ejdict"}, testFiles(t, cfg)...)
	argv = append(argv, args...)
	err := app.Run(argv)
	return stdout.String(), stderr.String(), err
}

func decodeWords(t *testing.T, out string) []dict.Word {
	t.Helper()

	var words []dict.Word
	if err := json.Unmarshal([]byte(out), &words); err != nil {
		t.Fatalf("decoding output %q: %v", out, err)
	}
	return words
}

// TestLook tests the look command.
func TestLook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   string
		args     []string
		expected dict.Word
		err      error
	}{
		{
			name:     "default lower",
			args:     []string{"look", "--json", "APPLE"},
			expected: testutil.Apple(),
		},
		{
			name:     "second headword",
			args:     []string{"look", "--json", "colour"},
			expected: testutil.Colour(),
		},
		{
			name: "exact",
			args: []string{"look", "--json", "-m", "exact", "APPLE"},
			err:  dict.ErrNotFound,
		},
		{
			name:     "fuzzy",
			args:     []string{"look", "--json", "-m", "fuzzy", "app"},
			expected: testutil.Apple(),
		},
		{
			name:     "invalid mode falls back",
			args:     []string{"look", "--json", "-m", "prefix", "Apple"},
			expected: testutil.Apple(),
		},
		{
			name:   "config mode",
			config: "[look]\nmode = \"exact\"\n",
			args:   []string{"look", "--json", "Apple"},
			err:    dict.ErrNotFound,
		},
		{
			name:     "flag overrides config",
			config:   "[look]\nmode = \"exact\"\n",
			args:     []string{"look", "--json", "-m", "lower", "Apple"},
			expected: testutil.Apple(),
		},
		{
			name: "not found",
			args: []string{"look", "zebra"},
			err:  dict.ErrNotFound,
		},
		{
			name: "no word",
			args: []string{"look"},
			err:  ErrFlagParse,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := runApp(t, test.config, test.args...)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Run err (-want, +got):\n%s", diff)
			}
			if err != nil {
				return
			}

			var got dict.Word
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decoding output %q: %v", out, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("look (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestLook_table tests table output.
func TestLook_table(t *testing.T) {
	t.Parallel()

	out, _, err := runApp(t, "", "look", "color")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header and 2 rows, got %q", out)
	}
	if fields := strings.Fields(lines[0]); !cmp.Equal([]string{"word", "mean"}, fields) {
		t.Errorf("header: got %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); !cmp.Equal([]string{"color,colour", "〈U〉〈C〉『色』,色彩"}, fields) {
		t.Errorf("row 1: got %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); !cmp.Equal([]string{"〈U〉顔色,血色"}, fields) {
		t.Errorf("row 2: got %q", lines[2])
	}
}

// TestWriteTable_emptySubDefinitions tests that empty sub-definitions keep
// their rows.
func TestWriteTable_emptySubDefinitions(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	err := writeTable(&b, []dict.Word{{Words: []string{"x"}, Mean: "a //b"}})
	if err != nil {
		t.Fatalf("writeTable: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	var got [][]string
	for _, l := range lines[1:] {
		got = append(got, strings.Fields(l))
	}
	want := [][]string{{"x", "a"}, {}, {"b"}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("rows (-want, +got):\n%s", diff)
	}
}

// TestLook_invalidModeWarning tests that an invalid mode is logged.
func TestLook_invalidModeWarning(t *testing.T) {
	t.Parallel()

	_, stderr, err := runApp(t, "", "look", "-m", "prefix", "apple")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(stderr, "invalid search mode") {
		t.Fatalf("want warning, got %q", stderr)
	}

	_, stderr, err = runApp(t, "", "--log-level", "error", "look", "-m", "prefix", "apple")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stderr != "" {
		t.Fatalf("want no warning, got %q", stderr)
	}
}

// TestCandidates tests the candidates command.
func TestCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   string
		args     []string
		expected []dict.Word
	}{
		{
			name:     "default fuzzy",
			args:     []string{"candidates", "--json", "apple"},
			expected: []dict.Word{testutil.Apple(), testutil.AppleButter(), testutil.AppleGreen()},
		},
		{
			name:     "number",
			args:     []string{"candidates", "--json", "-n", "2", "apple"},
			expected: []dict.Word{testutil.Apple(), testutil.AppleButter()},
		},
		{
			name:     "config number",
			config:   "[candidates]\nnumber = 1\n",
			args:     []string{"candidates", "--json", "apple"},
			expected: []dict.Word{testutil.Apple()},
		},
		{
			name:     "exact",
			args:     []string{"candidates", "--json", "-m", "exact", "apple"},
			expected: []dict.Word{testutil.Apple()},
		},
		{
			name: "empty pattern",
			args: []string{"candidates", "--json", "-n", "10", ""},
			expected: []dict.Word{
				testutil.Apple(),
				testutil.AppleButter(),
				testutil.AppleGreen(),
				testutil.Blue(),
				testutil.Colour(),
			},
		},
		{
			name:     "no match",
			args:     []string{"candidates", "--json", "zebra"},
			expected: []dict.Word{},
		},
		{
			name:     "config json",
			config:   "[output]\njson = true\n",
			args:     []string{"candidates", "-n", "1", "blue"},
			expected: []dict.Word{testutil.Blue()},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := runApp(t, test.config, test.args...)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if diff := cmp.Diff(test.expected, decodeWords(t, out), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("candidates (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestComplete tests the complete command.
func TestComplete(t *testing.T) {
	t.Parallel()

	out, _, err := runApp(t, "", "complete", "-n", "2", "apple")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff("apple\napple butter\n", out); diff != "" {
		t.Fatalf("complete (-want, +got):\n%s", diff)
	}

	out, _, err = runApp(t, "", "complete", "--json", "col")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	var got []string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding output %q: %v", out, err)
	}
	if diff := cmp.Diff([]string{"color", "colour"}, got); diff != "" {
		t.Fatalf("complete (-want, +got):\n%s", diff)
	}

	_, stderr, err := runApp(t, "", "--log-level", "debug", "complete", "blue")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(stderr, "headwords=6") {
		t.Fatalf("want headword count in debug log, got %q", stderr)
	}
}

// TestApp_errors tests global option failures.
func TestApp_errors(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "", "--log-level", "loud", "look", "apple")
	if !errors.Is(err, ErrFlagParse) {
		t.Errorf("bad log level: want ErrFlagParse, got %v", err)
	}

	_, _, err = runApp(t, "[look]\nlimit = 1\n", "look", "apple")
	if err == nil {
		t.Errorf("bad config: expected failure")
	}

	var stdout bytes.Buffer
	app := newEJDictApp()
	app.Writer = &stdout
	app.ErrWriter = &bytes.Buffer{}
	err = app.Run([]string{"ejdict", "--config", filepath.Join(t.TempDir(), "missing.toml"), "look", "apple"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing config: want os.ErrNotExist, got %v", err)
	}

	app = newEJDictApp()
	app.Writer = &stdout
	app.ErrWriter = &bytes.Buffer{}
	err = app.Run([]string{"ejdict", "--data", filepath.Join(t.TempDir(), "missing.json"), "--config", testFiles(t, "")[1], "look", "apple"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing data: want os.ErrNotExist, got %v", err)
	}
}

// TestApp_version tests the version flag.
func TestApp_version(t *testing.T) {
	t.Parallel()

	out, _, err := runApp(t, "", "--version")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Copyright (c) 2025 Ian Lewis") {
		t.Fatalf("version: got %q", out)
	}
}
