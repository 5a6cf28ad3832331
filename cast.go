// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oaschema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cast converts a raw scalar or array value, typically a string from a
// textual transport, into the schema's primitive kind without semantic
// validation.
//
// Nil passes through uncast. Integer and number kinds parse textual input;
// boolean kinds use a permissive boolean grammar; array kinds cast each
// element recursively via the item schema; all other kinds are identity.
// Values that already have the target kind pass through unchanged, so Cast is
// idempotent. Cast is pure and safe for concurrent use.
func (s *Schema) Cast(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch s.kind {
	case KindInteger:
		return s.castInteger(value)
	case KindNumber:
		return s.castNumber(value)
	case KindBoolean:
		return s.castBoolean(value)
	case KindArray:
		return s.castArray(value)
	case KindAny, KindString, KindObject:
		return value, nil
	default:
		return value, nil
	}
}

// castInteger parses value into an int64.
func (s *Schema) castInteger(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, &CastError{Value: value, Kind: s.kind, Cause: err}
		}
		return i, nil
	case jsonNumber:
		i, err := v.Int64()
		if err != nil {
			return nil, &CastError{Value: value, Kind: s.kind, Cause: err}
		}
		return i, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, &CastError{Value: value, Kind: s.kind}
		}
		return int64(v), nil
	default:
		return nil, &CastError{Value: value, Kind: s.kind}
	}
}

// castNumber parses value into a float64.
func (s *Schema) castNumber(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, &CastError{Value: value, Kind: s.kind, Cause: err}
		}
		return f, nil
	case jsonNumber:
		f, err := v.Float64()
		if err != nil {
			return nil, &CastError{Value: value, Kind: s.kind, Cause: err}
		}
		return f, nil
	default:
		return nil, &CastError{Value: value, Kind: s.kind}
	}
}

// castBoolean parses value into a bool using the permissive grammar.
func (s *Schema) castBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := parseBoolPermissive(v)
		if err != nil {
			return nil, &CastError{Value: value, Kind: s.kind, Cause: err}
		}
		return b, nil
	default:
		return nil, &CastError{Value: value, Kind: s.kind}
	}
}

// castArray casts each element recursively via the item schema.
func (s *Schema) castArray(value any) (any, error) {
	elems, ok := asSlice(value)
	if !ok {
		return nil, &CastError{Value: value, Kind: s.kind}
	}

	out := make([]any, len(elems))
	for i, elem := range elems {
		cast, err := s.items.Cast(elem)
		if err != nil {
			return nil, err
		}
		out[i] = cast
	}

	return out, nil
}

// asSlice normalizes slice inputs to []any. Textual transports deliver
// repeated parameters as []string.
func asSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// errInvalidBoolean is the parse failure for the permissive boolean grammar.
var errInvalidBoolean = errors.New("invalid boolean value")

// parseBoolPermissive parses the boolean representations accepted on textual
// transports: true/false, 1/0, yes/no, on/off, t/f, y/n (case-insensitive).
func parseBoolPermissive(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errInvalidBoolean, s)
	}
}
