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
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the parent of all [NotFoundError] values.
	ErrNotFound = errors.New("not found from English-Japanese dictionary")

	// ErrInvalidSearchModeName is the parent of all
	// [InvalidSearchModeNameError] values.
	ErrInvalidSearchModeName = errors.New("invalid search mode name")

	// ErrInvalidWord indicates a word without headwords or with an empty
	// headword.
	ErrInvalidWord = errors.New("invalid word")
)

// NotFoundError is returned by [Dictionary.Look] when no word matches.
type NotFoundError struct {
	// Pattern is the pattern that was looked up.
	Pattern string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Pattern)
}

// Unwrap returns [ErrNotFound].
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InvalidSearchModeNameError is returned by [ParseSearchMode] when given a
// name that is not one of "exact", "lower" or "fuzzy".
type InvalidSearchModeNameError struct {
	// Given is the rejected name.
	Given string
}

func (e *InvalidSearchModeNameError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidSearchModeName, e.Given)
}

// Unwrap returns [ErrInvalidSearchModeName].
func (e *InvalidSearchModeNameError) Unwrap() error {
	return ErrInvalidSearchModeName
}
