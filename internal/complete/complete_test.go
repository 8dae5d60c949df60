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
package complete_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-ejdict/dict"
	"github.com/ianlewis/go-ejdict/internal/complete"
	"github.com/ianlewis/go-ejdict/internal/testutil"
)

func newCompleter() *complete.Completer {
	words := append(testutil.Words(), testutil.Colour(),
		dict.Word{Words: []string{"apple"}, Mean: "リンゴ"},
		dict.Word{Words: []string{"Apple"}, Mean: "アップル社"},
	)
	return complete.New(dict.New(words))
}

// TestCompleter_Complete tests Completer.Complete.
func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		limit    int
		expected []string
	}{
		{
			name:     "prefix",
			prefix:   "apple",
			expected: []string{"apple", "apple butter", "apple green"},
		},
		{
			name:     "limit",
			prefix:   "apple",
			limit:    2,
			expected: []string{"apple", "apple butter"},
		},
		{
			name:     "case sensitive",
			prefix:   "A",
			expected: []string{"Apple"},
		},
		{
			name:     "second headword",
			prefix:   "colo",
			expected: []string{"color", "colour"},
		},
		{
			name:     "empty prefix",
			prefix:   "",
			expected: []string{"Apple", "apple", "apple butter", "apple green", "blue", "color", "colour"},
		},
		{
			name:     "empty prefix limit",
			prefix:   "",
			limit:    1,
			expected: []string{"Apple"},
		},
		{
			name:     "no match",
			prefix:   "zebra",
			expected: nil,
		},
		{
			name:     "longer than headword",
			prefix:   "apples",
			expected: nil,
		},
	}

	c := newCompleter()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := c.Complete(test.prefix, test.limit)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Complete (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestCompleter_Len tests Completer.Len.
func TestCompleter_Len(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(7, newCompleter().Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(0, complete.New(dict.New(nil)).Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
}
