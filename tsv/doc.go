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

// Package tsv implements reading the ejdict source text.
//
// The source is a UTF-8 text file with one dictionary entry per line. Each
// line comes in two parts separated by the first tab character:
//  1. The headwords: one or more English words or phrases separated by
//     commas.
//  2. The meaning: Japanese text. Sub-definitions are separated by '/'.
//
// For example:
//
//	color,colour	〈U〉〈C〉『色』,色彩 / 〈U〉顔色,血色
//
// The file may be compressed with gzip or dictzip.
package tsv
