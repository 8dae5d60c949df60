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
package ejdict

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/ianlewis/go-ejdict/codec"
	"github.com/ianlewis/go-ejdict/dict"
)

//go:embed data/ejdict.json
var payload []byte

// ErrNoDictionary indicates a loader that returned neither a dictionary nor
// an error.
var ErrNoDictionary = errors.New("no dictionary")

// Word is a dictionary entry.
type Word = dict.Word

// SearchMode selects how a pattern is compared to headwords.
type SearchMode = dict.SearchMode

const (
	// Exact matches headwords byte for byte.
	Exact = dict.Exact

	// Lower matches headwords ignoring case.
	Lower = dict.Lower

	// Fuzzy matches headwords starting with the pattern.
	Fuzzy = dict.Fuzzy
)

// ParseSearchMode returns the SearchMode named "exact", "lower" or "fuzzy".
func ParseSearchMode(name string) (SearchMode, error) {
	return dict.ParseSearchMode(name)
}

// Holder loads a dictionary once and hands out the same read-only
// dictionary to every caller.
type Holder struct {
	once sync.Once
	load func() (*dict.Dictionary, error)

	d   *dict.Dictionary
	err error
}

// NewHolder returns a Holder that calls load the first time the dictionary
// is requested. Concurrent callers wait for that single call to complete.
func NewHolder(load func() (*dict.Dictionary, error)) *Holder {
	return &Holder{load: load}
}

// Dictionary returns the loaded dictionary or the error returned by the
// loader. The loader is never retried.
func (h *Holder) Dictionary() (*dict.Dictionary, error) {
	h.once.Do(func() {
		h.d, h.err = h.load()
		if h.err == nil && h.d == nil {
			h.err = ErrNoDictionary
		}
	})
	return h.d, h.err
}

// MustDictionary is like Dictionary but panics if the dictionary could not
// be loaded.
func (h *Holder) MustDictionary() *dict.Dictionary {
	d, err := h.Dictionary()
	if err != nil {
		panic(fmt.Sprintf("ejdict: loading dictionary: %v", err))
	}
	return d
}

var embedded = NewHolder(func() (*dict.Dictionary, error) {
	return codec.Decode(bytes.NewReader(payload), codec.JSON)
})

// Default returns the embedded dictionary. It panics if the embedded data
// is corrupt.
func Default() *dict.Dictionary {
	return embedded.MustDictionary()
}

// Look returns the first word in the embedded dictionary matching pattern.
// See [dict.Dictionary.Look].
func Look(pattern string, mode SearchMode) (*Word, error) {
	return Default().Look(pattern, mode)
}

// Candidates returns a cursor over the words in the embedded dictionary
// matching pattern. See [dict.Dictionary.Candidates].
func Candidates(pattern string, mode SearchMode) *dict.Candidates {
	return Default().Candidates(pattern, mode)
}
