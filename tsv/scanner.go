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

package tsv

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-ejdict/dict"
)

// maxLineSize is the longest line the Scanner accepts.
const maxLineSize = 1024 * 1024

// utf8BOM is stripped from the start of the first line.
const utf8BOM = "\ufeff"

// Scanner scans source lines from start to end.
type Scanner struct {
	r    io.Closer
	s    *bufio.Scanner
	line int
	word dict.Word
	err  error
}

// NewScanner returns a new Scanner reading from r. The Scanner assumes
// ownership of the reader and it should be closed with the Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	s := &Scanner{
		r: r,
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return s
}

// Open opens the source file at path. Files ending in .gz or .dz are
// decompressed.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".gz" && ext != ".dz" {
		return NewScanner(f), nil
	}

	// dictzip files are valid gzip files.
	z, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return NewScanner(&gzipFile{Reader: z, f: f}), nil
}

// Scan advances to the next entry, skipping blank lines. It returns false
// at the end of input or on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		line := strings.TrimSuffix(s.s.Text(), "\r")
		if s.line == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if line == "" {
			continue
		}

		w, err := ParseLine(line)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return false
		}
		s.word = w
		return true
	}
	if err := s.s.Err(); err != nil {
		s.err = fmt.Errorf("line %d: %w", s.line+1, err)
	}
	return false
}

// Word returns the entry found by the last call to Scan.
func (s *Scanner) Word() dict.Word {
	return s.word
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing source file: %w", err)
	}
	return nil
}

// ReadAll reads every remaining entry in source order.
func (s *Scanner) ReadAll() ([]dict.Word, error) {
	var words []dict.Word
	for s.Scan() {
		words = append(words, s.Word())
	}
	return words, s.Err()
}

// gzipFile closes both the gzip reader and the file under it.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zErr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err //nolint:wrapcheck // wrapped by Scanner.Close
	}
	return zErr //nolint:wrapcheck // wrapped by Scanner.Close
}
