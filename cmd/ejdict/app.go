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
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ejdict"
	"github.com/ianlewis/go-ejdict/codec"
	"github.com/ianlewis/go-ejdict/dict"
	"github.com/ianlewis/go-ejdict/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeNotFound is the exit code when a word is not found.
	ExitCodeNotFound

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrEJDict is a parent error for all command errors.
var ErrEJDict = errors.New("ejdict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrEJDict)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// env is the state shared by all commands. It is populated before any
// command runs.
type env struct {
	log    *log.Logger
	config *config.Config
	dict   *ejdict.Holder
}

// dictionary returns the loaded dictionary.
func (e *env) dictionary() (*dict.Dictionary, error) {
	d, err := e.dict.Dictionary()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEJDict, err)
	}
	return d, nil
}

// searchMode parses a search mode name falling back to def when the name is
// not valid.
func (e *env) searchMode(name string, def dict.SearchMode) dict.SearchMode {
	mode, err := dict.ParseSearchMode(name)
	if err != nil {
		e.log.Warn("invalid search mode", "mode", name, "default", def)
		return def
	}
	return mode
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// before resolves configuration, logging and the dictionary source.
func (e *env) before(c *cli.Context) error {
	e.log = log.NewWithOptions(c.App.ErrWriter, log.Options{
		Prefix: c.App.Name,
	})

	cfg, path, err := config.Resolve(c.String("config"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEJDict, err)
	}
	e.config = cfg

	levelName := cfg.Log.Level
	if c.IsSet("log-level") {
		levelName = c.String("log-level")
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("%w: log level %q: %w", ErrFlagParse, levelName, err)
	}
	e.log.SetLevel(level)

	if path != "" {
		e.log.Debug("loaded config", "path", path)
	}

	dataPath := c.String("data")
	if dataPath == "" {
		e.dict = ejdict.NewHolder(func() (*dict.Dictionary, error) {
			return ejdict.Default(), nil
		})
		return nil
	}

	e.dict = ejdict.NewHolder(func() (*dict.Dictionary, error) {
		d, err := codec.ReadFile(dataPath)
		if err != nil {
			return nil, err
		}
		e.log.Debug("loaded dictionary", "path", dataPath, "words", d.Len())
		return d, nil
	})
	return nil
}

func newEJDictApp() *cli.App {
	e := &env{}
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up words in an English-Japanese dictionary.",
		Description: strings.Join([]string{
			"English-Japanese dictionary written in Go.",
			"http://github.com/ianlewis/go-ejdict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "read the dictionary from `FILE` instead of the built-in data",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "read configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Before:          e.before,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			e.lookCommand(),
			e.candidatesCommand(),
			e.completeCommand(),
		},
	}
}
