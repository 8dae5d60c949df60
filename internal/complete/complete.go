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
// Package complete completes headword prefixes.
package complete

import (
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/ianlewis/go-ejdict/dict"
)

// Completer completes prefixes to the headwords of a dictionary.
type Completer struct {
	trie *patricia.Trie
	size int
}

// New returns a Completer over every headword in d. Headwords are matched
// case-sensitively.
func New(d *dict.Dictionary) *Completer {
	c := &Completer{
		trie: patricia.NewTrie(),
	}
	for w := range d.All() {
		for _, h := range w.Words {
			if h == "" {
				continue
			}
			if c.trie.Insert(patricia.Prefix(h), struct{}{}) {
				c.size++
			}
		}
	}
	return c
}

// Len returns the number of distinct headwords.
func (c *Completer) Len() int {
	return c.size
}

// Complete returns the distinct headwords starting with prefix in
// lexicographic order. At most limit headwords are returned; limit <= 0
// returns all of them.
func (c *Completer) Complete(prefix string, limit int) []string {
	var words []string
	collect := func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	}

	// The visitor never fails.
	if prefix == "" {
		_ = c.trie.Visit(collect)
	} else {
		_ = c.trie.VisitSubtree(patricia.Prefix(prefix), collect)
	}

	slices.Sort(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
