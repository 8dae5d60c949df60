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

	"github.com/ianlewis/go-ejdict/internal/complete"
)

func (e *env) completeCommand() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Usage:     "print headwords starting with PREFIX",
		ArgsUsage: "PREFIX",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "number",
				Usage:   "print at most `N` headwords, 0 for all",
				Aliases: []string{"n"},
			},
			jsonFlag(),
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			prefix, err := oneArg(c, "prefix")
			if err != nil {
				return err
			}

			n := e.config.Complete.Number
			if c.IsSet("number") {
				n = c.Int("number")
			}

			d, err := e.dictionary()
			if err != nil {
				return err
			}

			comp := complete.New(d)
			e.log.Debug("built completer", "headwords", comp.Len())

			words := comp.Complete(prefix, n)
			if e.useJSON(c) {
				if words == nil {
					words = []string{}
				}
				return writeJSON(c.App.Writer, words)
			}

			for _, w := range words {
				if _, err := fmt.Fprintln(c.App.Writer, w); err != nil {
					return fmt.Errorf("%w: %w", ErrEJDict, err)
				}
			}
			return nil
		},
	}
}
