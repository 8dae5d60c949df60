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

package tsv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-ejdict/dict"
)

// ErrMalformedLine indicates a line without a tab separator or with an empty
// headword.
var ErrMalformedLine = errors.New("malformed line")

const (
	fieldSep    = "\t"
	headwordSep = ","
)

// ParseLine parses a single source line into a Word. The line is split on
// the first tab; the part before it is split on commas into headwords and
// the rest is the meaning. No other normalization is done. Empty headwords
// are rejected with an error wrapping both [ErrMalformedLine] and
// [dict.ErrInvalidWord].
func ParseLine(line string) (dict.Word, error) {
	words, mean, found := strings.Cut(line, fieldSep)
	if !found {
		return dict.Word{}, fmt.Errorf("%w: no tab separator: %q", ErrMalformedLine, line)
	}
	w := dict.Word{
		Words: strings.Split(words, headwordSep),
		Mean:  mean,
	}
	if err := w.Validate(); err != nil {
		return dict.Word{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return w, nil
}
