// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides struct-tag defaults and TOML
// file loading for command line configuration objects.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/hct/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(SetFromDefaultTags(cfg))
}

// SetFromDefaultTags sets values of fields in the given struct pointer
// based on `default:` field tags. Nested structs without a tag are
// handled recursively. Slice and map defaults are written in JSON,
// with single quotes allowed in place of double quotes.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("config.SetFromDefaultTags: need a non-nil pointer, not %T", obj)
	}
	val := ov.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaultTags: need a pointer to a struct, not %T", obj)
	}
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if f.Type.Kind() == reflect.Struct && (!ok || def == "") {
			if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok || def == "" {
			continue
		}
		if err := setFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("config.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// setFromString sets the value from its string representation.
func setFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice, reflect.Map, reflect.Array:
		s = strings.ReplaceAll(s, `'`, `"`)
		return json.Unmarshal([]byte(s), v.Addr().Interface())
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
