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

// Package dict implements an in-memory English-Japanese dictionary.
//
// A [Dictionary] is an ordered, read-only list of [Word] entries. Each Word
// has one or more headwords and a single meaning string. Lookups are
// linear scans in storage order and come in two flavours:
//
//  1. [Dictionary.Look] returns the first Word with a matching headword.
//  2. [Dictionary.Candidates] returns a forward-only cursor that produces
//     every matching Word, one at a time, in storage order.
//
// How a headword matches a pattern is selected by a [SearchMode]:
// [Exact] compares bytes, [Lower] compares the lowercased headword with the
// lowercased pattern and [Fuzzy] checks that the headword starts with the
// pattern.
//
// A Dictionary is never modified after [New] returns and may be shared by
// any number of goroutines. A [Candidates] cursor may not.
package dict
