// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"io"
	"os"

	"cogentcore.org/hct/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given config object from the given TOML file.
// Fields missing from the file keep their current values.
func Open(cfg any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(cfg, f)
}

// OpenFiles reads the given config object from the given TOML files,
// in order, so later files override earlier ones.
func OpenFiles(cfg any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		if err := Open(cfg, fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Read reads the given config object from TOML on the given reader.
// Unknown keys are an error.
func Read(cfg any, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Save writes the given config object to the given TOML file.
func Save(cfg any, filename string) error {
	b, err := WriteBytes(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// WriteBytes returns the TOML encoding of the given object.
func WriteBytes(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
