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

package codec

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-ejdict/dict"
)

// ReadFile reads the dictionary stored at path. The format and compression
// are determined by the file name.
func ReadFile(path string) (*dict.Dictionary, error) {
	opts, err := OptionsFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	d, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// Read reads a dictionary from r, decompressing it as needed.
func Read(r io.Reader, opts *Options) (*dict.Dictionary, error) {
	if opts.Compression != None {
		// dictzip files are valid gzip files.
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("decompressing: %w", err)
		}
		defer z.Close()
		r = z
	}
	return Decode(bufio.NewReader(r), opts.Format)
}

// WriteFile writes d to path, replacing any existing file. The format and
// compression are determined by the file name.
func WriteFile(path string, d *dict.Dictionary) (err error) {
	opts, err := OptionsFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dictionary: %w", err)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cErr)
		}
	}()

	if err := Write(f, d, opts); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// Write writes d to w, compressing it as requested.
func Write(w io.Writer, d *dict.Dictionary, opts *Options) error {
	var zw io.WriteCloser
	switch opts.Compression {
	case None:
	case Gzip:
		zw = gzip.NewWriter(w)
	case DictZip:
		ws, ok := w.(io.WriteSeeker)
		if !ok {
			return fmt.Errorf("%w: dictzip output must be seekable", ErrUnsupported)
		}
		var err error
		zw, err = dictzip.NewWriter(ws)
		if err != nil {
			return fmt.Errorf("compressing: %w", err)
		}
	default:
		return fmt.Errorf("%w: compression %d", ErrUnknownFormat, opts.Compression)
	}

	if zw == nil {
		return Encode(w, d, opts.Format)
	}

	if err := Encode(zw, d, opts.Format); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing: %w", err)
	}
	return nil
}
