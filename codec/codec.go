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

// Package codec reads and writes serialized dictionaries.
//
// A serialized dictionary is a single document holding every word in
// storage order:
//
//	{"words": [{"words": ["apple"], "mean": "『リンゴ』;リンゴの木"}, ...]}
//
// The document may be encoded as JSON or msgpack and may be compressed with
// gzip or dictzip. File names select the encoding: ".json" or
// ".msgpack"/".mpk", optionally followed by ".gz" or ".dz".
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ianlewis/go-ejdict/dict"
)

var (
	// ErrUnknownFormat indicates a format name or file extension that is not
	// supported.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnsupported indicates an unsupported combination of options.
	ErrUnsupported = errors.New("unsupported")

	// ErrInvalidWord indicates a decoded word without headwords or with an
	// empty headword.
	ErrInvalidWord = dict.ErrInvalidWord
)

// Format is a serialization format.
type Format int

const (
	// JSON is the JSON encoding.
	JSON Format = iota

	// Msgpack is the msgpack encoding.
	Msgpack
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Msgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "msgpack", "mpk":
		return Msgpack, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Compression is a compression method applied to an encoded dictionary.
type Compression int

const (
	// None is uncompressed data.
	None Compression = iota

	// Gzip is gzip compressed data.
	Gzip

	// DictZip is dictzip compressed data. dictzip files can be read as gzip.
	DictZip
)

// Options describe how a dictionary is stored.
type Options struct {
	Format      Format
	Compression Compression
}

// OptionsFromPath derives Options from a file name, e.g. "ejdict.json.gz".
func OptionsFromPath(path string) (*Options, error) {
	opts := &Options{}

	name := strings.ToLower(filepath.Base(path))
	switch filepath.Ext(name) {
	case ".gz":
		opts.Compression = Gzip
		name = strings.TrimSuffix(name, ".gz")
	case ".dz":
		opts.Compression = DictZip
		name = strings.TrimSuffix(name, ".dz")
	}

	var err error
	opts.Format, err = ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return opts, nil
}

// Encode writes d to w in the given format. Compression is applied by the
// caller; see [WriteFile].
func Encode(w io.Writer, d *dict.Dictionary, f Format) error {
	var err error
	switch f {
	case JSON:
		err = json.NewEncoder(w).Encode(d)
	case Msgpack:
		err = msgpack.NewEncoder(w).Encode(d)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encoding %v: %w", f, err)
	}
	return nil
}

// Decode reads a dictionary in the given format from r. Every word must
// have at least one headword and no empty headwords.
func Decode(r io.Reader, f Format) (*dict.Dictionary, error) {
	var doc dict.Document
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case Msgpack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %v: %w", f, err)
	}

	for i, w := range doc.Words {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return dict.New(doc.Words), nil
}
