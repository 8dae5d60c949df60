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

package dict

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-ejdict/internal/folding"
)

// meaningSep separates sub-definitions in a meaning.
const meaningSep = "/"

// Word is a dictionary entry: one or more equivalent English headwords and
// their Japanese meaning.
type Word struct {
	// Words are the entry's headwords in source order. Headwords are case
	// sensitive.
	Words []string `json:"words" msgpack:"words"`

	// Mean is the meaning text. Sub-definitions are separated by '/'.
	Mean string `json:"mean" msgpack:"mean"`
}

// Matches reports whether any of the word's headwords match pattern under
// the given mode. A word without headwords never matches.
func (w Word) Matches(pattern string, mode SearchMode) bool {
	return newMatcher(pattern, mode).match(&w)
}

// Validate checks that w has at least one headword and that no headword is
// empty. It returns an error wrapping [ErrInvalidWord] otherwise.
func (w Word) Validate() error {
	if len(w.Words) == 0 {
		return fmt.Errorf("%w: no headwords", ErrInvalidWord)
	}
	for i, h := range w.Words {
		if h == "" {
			return fmt.Errorf("%w: headword %d is empty", ErrInvalidWord, i)
		}
	}
	return nil
}

// Equal reports whether w and o have the same headwords and meaning.
func (w Word) Equal(o Word) bool {
	return w.Mean == o.Mean && slices.Equal(w.Words, o.Words)
}

// Clone returns a copy of w that shares no memory with it.
func (w Word) Clone() Word {
	return Word{
		Words: slices.Clone(w.Words),
		Mean:  w.Mean,
	}
}

// Meanings splits the meaning into its sub-definitions with surrounding
// whitespace removed and internal whitespace collapsed. Sub-definitions that
// are empty are kept as empty strings. An empty meaning has no
// sub-definitions.
func (w Word) Meanings() []string {
	if w.Mean == "" {
		return nil
	}
	parts := strings.Split(w.Mean, meaningSep)
	meanings := make([]string, len(parts))
	for i, m := range parts {
		meanings[i] = folding.String(folding.Whitespace(), m)
	}
	return meanings
}

// String returns the headwords joined by ',', a tab, and the meaning. It is
// the inverse of the source line format.
func (w Word) String() string {
	return strings.Join(w.Words, ",") + "\t" + w.Mean
}
