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
// Package ejdict provides an embedded English-Japanese dictionary.
//
// The dictionary data is compiled into the package and decoded the first
// time it is used. Lookups never modify it, so it may be shared by any number
// of goroutines.
//
//	w, err := ejdict.Look("Apple", ejdict.Lower)
//	if err != nil {
//		// errors.Is(err, dict.ErrNotFound)
//	}
//	fmt.Println(w.Mean)
//
// Programs that load their own dictionary file can use [NewHolder] with
// [codec.ReadFile] instead of the embedded data.
package ejdict

//go:generate go run ./cmd/ejdict-gen --force --output data/ejdict.json res/ejdict-sample.txt
