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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-ejdict/codec"
	"github.com/ianlewis/go-ejdict/dict"
	"github.com/ianlewis/go-ejdict/tsv"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrGen is a parent error for all command errors.
var ErrGen = errors.New("ejdict-gen")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrGen)

const defaultOutput = "ejdict.json"

func newGenApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Convert an English-Japanese dictionary source file.",
		ArgsUsage: "SOURCE",
		Description: strings.Join([]string{
			"Reads SOURCE, a file of '<headword>[,<headword>...]<TAB><meaning>' lines,",
			"optionally gzip or dictzip compressed, and writes a dictionary file.",
			"The output format is chosen by the file extension: .json, .msgpack or",
			".mpk, optionally followed by .gz or .dz.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write the dictionary to `FILE`",
				Aliases: []string{"o"},
				Value:   defaultOutput,
			},
			&cli.BoolFlag{
				Name:               "force",
				Usage:              "overwrite the output file if it exists",
				Aliases:            []string{"f"},
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 Ian Lewis",
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: generate,
	}
}

func generate(c *cli.Context) error {
	if c.Bool("version") {
		_, err := fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, version.GetVersionInfo().GitVersion)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrGen, err)
		}
		return nil
	}

	logger := log.NewWithOptions(c.App.ErrWriter, log.Options{
		Prefix: c.App.Name,
	})
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("%w: log level: %w", ErrFlagParse, err)
	}
	logger.SetLevel(level)

	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected one source file, got %d arguments", ErrFlagParse, c.NArg())
	}
	src := c.Args().First()
	out := c.String("output")

	// Check the output name before reading the source.
	if _, err := codec.OptionsFromPath(out); err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	if !c.Bool("force") {
		_, err := os.Stat(out)
		if err == nil {
			logger.Info("output exists, skipping", "output", out)
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrGen, err)
		}
	}

	words, err := readSource(src)
	if err != nil {
		return err
	}
	logger.Debug("read source", "source", src, "words", len(words))

	if err := codec.WriteFile(out, dict.New(words)); err != nil {
		return fmt.Errorf("%w: %w", ErrGen, err)
	}
	logger.Info("wrote dictionary", "output", out, "words", len(words))

	return nil
}

func readSource(path string) (words []dict.Word, err error) {
	s, err := tsv.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGen, err)
	}
	defer func() {
		if cErr := s.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrGen, cErr)
		}
	}()

	words, err = s.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrGen, path, err)
	}
	return words, nil
}
