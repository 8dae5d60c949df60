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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"

	"github.com/ianlewis/go-ejdict/dict"
)

// writeTable prints words as a table with one row per sub-definition,
// including empty ones. The headwords are printed on the first row of each
// word.
func writeTable(w io.Writer, words []dict.Word) error {
	tbl := table.New("word", "mean").WithWriter(w)
	for _, word := range words {
		headwords := strings.Join(word.Words, ",")
		meanings := word.Meanings()
		if len(meanings) == 0 {
			tbl.AddRow(headwords, "")
			continue
		}
		for i, m := range meanings {
			if i > 0 {
				headwords = ""
			}
			tbl.AddRow(headwords, m)
		}
	}
	tbl.Print()
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: writing JSON: %w", ErrEJDict, err)
	}
	return nil
}
