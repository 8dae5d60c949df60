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

// Package folding implements text folding transformers used when comparing
// and displaying dictionary text.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Lower returns a [transform.Transformer] that lowercases text without
// regard to any locale. The returned transformer is stateful and must not
// be shared between goroutines.
func Lower() transform.Transformer {
	return cases.Lower(language.Und)
}

// String applies t to s. Errors are not possible for the transformers in
// this package, so on failure s is returned unchanged.
func String(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
