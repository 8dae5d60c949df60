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

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ejdict/dict"
)

func (e *env) candidatesCommand() *cli.Command {
	return &cli.Command{
		Name:      "candidates",
		Usage:     "print words matching WORD",
		ArgsUsage: "WORD",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "search `MODE` (exact, lower, fuzzy)",
				Aliases: []string{"m"},
			},
			&cli.IntFlag{
				Name:    "number",
				Usage:   "print at most `N` words",
				Aliases: []string{"n"},
			},
			jsonFlag(),
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			word, err := oneArg(c, "word")
			if err != nil {
				return err
			}

			name := e.config.Candidates.Mode
			if c.IsSet("mode") {
				name = c.String("mode")
			}
			mode := e.searchMode(name, dict.Fuzzy)

			n := e.config.Candidates.Number
			if c.IsSet("number") {
				n = c.Int("number")
			}

			d, err := e.dictionary()
			if err != nil {
				return err
			}

			words := d.Candidates(word, mode).Take(n)
			e.log.Debug("found candidates", "pattern", word, "mode", mode, "count", len(words))

			if e.useJSON(c) {
				if words == nil {
					words = []dict.Word{}
				}
				return writeJSON(c.App.Writer, words)
			}
			return writeTable(c.App.Writer, words)
		},
	}
}
