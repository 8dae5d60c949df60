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
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-ejdict/internal/folding"
)

// SearchMode selects how a headword is compared with a pattern.
type SearchMode int

const (
	// Exact matches headwords that are byte-for-byte equal to the pattern.
	Exact SearchMode = iota

	// Lower matches headwords that are equal to the pattern once both have
	// been lowercased.
	Lower

	// Fuzzy matches headwords that start with the pattern. The empty
	// pattern matches every headword.
	Fuzzy
)

var modeNames = [...]string{
	Exact: "exact",
	Lower: "lower",
	Fuzzy: "fuzzy",
}

// ParseSearchMode returns the SearchMode with the given name. Only the
// lowercase names "exact", "lower" and "fuzzy" are accepted; anything else
// returns an [*InvalidSearchModeNameError].
func ParseSearchMode(name string) (SearchMode, error) {
	for m, n := range modeNames {
		if n == name {
			return SearchMode(m), nil
		}
	}
	return Exact, &InvalidSearchModeNameError{Given: name}
}

// String returns the mode's name.
func (m SearchMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("SearchMode(%d)", int(m))
	}
	return modeNames[m]
}

// MarshalText implements [encoding.TextMarshaler].
func (m SearchMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, &InvalidSearchModeNameError{Given: m.String()}
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using
// [ParseSearchMode].
func (m *SearchMode) UnmarshalText(text []byte) error {
	mode, err := ParseSearchMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// matcher tests headwords against a single pattern. It holds folding state
// so it must not be shared between goroutines.
type matcher struct {
	mode    SearchMode
	pattern string
	lower   transform.Transformer
}

func newMatcher(pattern string, mode SearchMode) *matcher {
	m := &matcher{
		mode:    mode,
		pattern: pattern,
	}
	if mode == Lower {
		m.lower = folding.Lower()
		m.pattern = folding.String(m.lower, pattern)
	}
	return m
}

// matchHeadword reports whether a single headword satisfies the mode.
func (m *matcher) matchHeadword(headword string) bool {
	switch m.mode {
	case Exact:
		return headword == m.pattern
	case Lower:
		return folding.String(m.lower, headword) == m.pattern
	case Fuzzy:
		return strings.HasPrefix(headword, m.pattern)
	default:
		return false
	}
}

// match reports whether any of the word's headwords match.
func (m *matcher) match(w *Word) bool {
	for _, h := range w.Words {
		if m.matchHeadword(h) {
			return true
		}
	}
	return false
}
