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
// Command ejdict looks up words in an English-Japanese dictionary.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ianlewis/go-ejdict/dict"
)

func main() {
	app := newEJDictApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		switch {
		case errors.Is(err, ErrFlagParse):
			os.Exit(ExitCodeFlagParseError)
		case errors.Is(err, dict.ErrNotFound):
			os.Exit(ExitCodeNotFound)
		default:
			os.Exit(ExitCodeUnknownError)
		}
	}
}
