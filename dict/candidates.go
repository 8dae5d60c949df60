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
	"iter"
)

// Candidates is a forward-only cursor over the words of a Dictionary that
// match a pattern. It is created by [Dictionary.Candidates] and advanced
// with Scan. Once Scan returns false the cursor is exhausted for good; call
// [Dictionary.Candidates] again to search again.
//
// A Candidates must not be used from more than one goroutine.
type Candidates struct {
	// words is the dictionary's read-only storage.
	words []Word

	// pos is the index of the next word to test.
	pos int

	m *matcher

	// cur is the last match found by Scan.
	cur *Word
}

// Scan advances the cursor to the next matching word. It returns false when
// no words remain. Each call only tests the words following the previous
// match.
func (c *Candidates) Scan() bool {
	for c.pos < len(c.words) {
		w := &c.words[c.pos]
		c.pos++
		if c.m.match(w) {
			c.cur = w
			return true
		}
	}
	c.cur = nil
	return false
}

// Word returns a copy of the word found by the most recent call to Scan. It
// returns the zero Word if Scan has not been called or returned false.
func (c *Candidates) Word() Word {
	if c.cur == nil {
		return Word{}
	}
	return c.cur.Clone()
}

// All returns an iterator that advances the cursor, yielding each remaining
// match. Breaking out of the loop leaves the cursor positioned after the
// last yielded word.
func (c *Candidates) All() iter.Seq[Word] {
	return func(yield func(Word) bool) {
		for c.Scan() {
			if !yield(c.Word()) {
				return
			}
		}
	}
}

// Take advances the cursor up to n times and returns the matches found. It
// returns fewer than n words if the cursor is exhausted first.
func (c *Candidates) Take(n int) []Word {
	var words []Word
	for len(words) < n && c.Scan() {
		words = append(words, c.Word())
	}
	return words
}
