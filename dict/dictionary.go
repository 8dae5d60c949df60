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
	"encoding/json"
	"fmt"
	"iter"

	"github.com/vmihailenco/msgpack/v5"
)

// Dictionary is an ordered, immutable list of words.
type Dictionary struct {
	// words is never modified after New returns.
	words []Word
}

// Document is the serialized form of a Dictionary. Decode into a Document
// and pass its words to [New] to build a Dictionary.
type Document struct {
	Words []Word `json:"words" msgpack:"words"`
}

// New returns a Dictionary holding copies of the given words in the given
// order.
func New(words []Word) *Dictionary {
	d := &Dictionary{
		words: make([]Word, len(words)),
	}
	for i, w := range words {
		d.words[i] = w.Clone()
	}
	return d
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// All returns an iterator over copies of every word in storage order.
func (d *Dictionary) All() iter.Seq[Word] {
	return func(yield func(Word) bool) {
		for _, w := range d.words {
			if !yield(w.Clone()) {
				return
			}
		}
	}
}

// Look returns a copy of the first word in storage order with a headword
// matching pattern under mode. If no word matches a [*NotFoundError] is
// returned.
func (d *Dictionary) Look(pattern string, mode SearchMode) (*Word, error) {
	m := newMatcher(pattern, mode)
	for i := range d.words {
		if m.match(&d.words[i]) {
			w := d.words[i].Clone()
			return &w, nil
		}
	}
	return nil, &NotFoundError{Pattern: pattern}
}

// Candidates returns a cursor over the words matching pattern under mode.
// No matching is done until the cursor is advanced. Each call returns an
// independent cursor.
func (d *Dictionary) Candidates(pattern string, mode SearchMode) *Candidates {
	return &Candidates{
		words: d.words,
		m:     newMatcher(pattern, mode),
	}
}

// MarshalJSON implements [json.Marshaler]. The dictionary is encoded as
// {"words": [{"words": [...], "mean": "..."}, ...]}.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(Document{Words: d.words})
	if err != nil {
		return nil, fmt.Errorf("encoding dictionary: %w", err)
	}
	return b, nil
}

// EncodeMsgpack implements [msgpack.CustomEncoder] using the same layout as
// the JSON encoding.
func (d *Dictionary) EncodeMsgpack(enc *msgpack.Encoder) error {
	//nolint:wrapcheck // called by the msgpack encoder.
	return enc.Encode(Document{Words: d.words})
}
