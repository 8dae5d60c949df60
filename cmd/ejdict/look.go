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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ejdict/dict"
)

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:               "json",
		Usage:              "print results as JSON",
		DisableDefaultText: true,
	}
}

// oneArg returns the single positional argument.
func oneArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%w: expected one %s, got %d arguments", ErrFlagParse, name, c.NArg())
	}
	return c.Args().First(), nil
}

// useJSON reports whether output should be JSON.
func (e *env) useJSON(c *cli.Context) bool {
	if c.IsSet("json") {
		return c.Bool("json")
	}
	return e.config.Output.JSON
}

func (e *env) lookCommand() *cli.Command {
	return &cli.Command{
		Name:      "look",
		Usage:     "print the first word matching WORD",
		ArgsUsage: "WORD",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "search `MODE` (exact, lower, fuzzy)",
				Aliases: []string{"m"},
			},
			jsonFlag(),
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			word, err := oneArg(c, "word")
			if err != nil {
				return err
			}

			name := e.config.Look.Mode
			if c.IsSet("mode") {
				name = c.String("mode")
			}
			mode := e.searchMode(name, dict.Lower)

			d, err := e.dictionary()
			if err != nil {
				return err
			}

			w, err := d.Look(word, mode)
			if err != nil {
				return err
			}
			e.log.Debug("found word", "pattern", word, "mode", mode, "words", w.Words)

			if e.useJSON(c) {
				return writeJSON(c.App.Writer, w)
			}
			return writeTable(c.App.Writer, []dict.Word{*w})
		},
	}
}
