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
	"fmt"
	"math"
	"strconv"
)

// anyKindOrder is the fixed type-precedence order used to resolve typeless
// schemas without oneOf alternatives.
var anyKindOrder = []Kind{
	KindObject, KindArray, KindBoolean, KindInteger, KindNumber, KindString,
}

// anySchema is the wildcard schema used for array elements when a typeless
// schema is resolved as an array.
var anySchema = &Schema{kind: KindAny, additional: AdditionalProperties{Allowed: true}}

// Unmarshal converts an already-cast or raw value into its final typed form,
// recursing through object properties, array items, and composition.
//
// Nil passes through unchanged for every kind. Primitive kinds resolve a
// format entry for (kind, format); [WithStrict] controls whether inputs must
// already have their native runtime kind (the default, for JSON-native
// transports) or may be textual representations (for query, header, and path
// transports). Typeless schemas resolve oneOf alternatives in declaration
// order, or fall back to the fixed kind precedence object, array, boolean,
// integer, number, string. Ambiguous and unresolved polymorphic matches are
// soft conditions under the default [AmbiguityWarn] policy: they emit a
// [Warning] and continue.
//
// Unmarshal performs no mutation of the schema tree and no I/O, and is safe
// for concurrent use.
func (s *Schema) Unmarshal(value any, opts ...UnmarshalOption) (any, error) {
	cfg := newUnmarshalConfig(opts)
	return unmarshalValue(s, value, cfg)
}

// unmarshalValue dispatches on the schema kind. The kind set is closed; every
// kind has an explicit branch.
func unmarshalValue(s *Schema, value any, cfg *unmarshalConfig) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch s.kind {
	case KindString, KindInteger, KindNumber, KindBoolean:
		return unmarshalPrimitive(s, s.kind, value, cfg)
	case KindArray:
		return unmarshalArray(s, value, cfg)
	case KindObject:
		return unmarshalObject(s, value, cfg)
	case KindAny:
		return unmarshalAny(s, value, cfg)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, s.kind)
	}
}

// unmarshalPrimitive converts a primitive value, applying the resolved format
// entry when one exists for (kind, format). The kind is passed explicitly so
// the typeless resolution path can probe candidate kinds against the same
// schema node.
func unmarshalPrimitive(s *Schema, kind Kind, value any, cfg *unmarshalConfig) (any, error) {
	native, err := coercePrimitive(kind, value, cfg.strict)
	if err != nil {
		return nil, &UnmarshalValueError{Value: value, Kind: kind, Format: s.format, Cause: err}
	}

	entry, ok := resolveFormat(kind, s.format, cfg.formats)
	if !ok {
		// Absence of a format is not an error; the value is the bare primitive.
		return native, nil
	}

	// The format entry receives the raw value: numeric literals keep their
	// full precision and custom entries see the transport representation.
	typed, err := entry.Unmarshal(value)
	if err != nil {
		return nil, &UnmarshalValueError{Value: value, Kind: kind, Format: s.format, Cause: err}
	}

	return typed, nil
}

// coercePrimitive normalizes value to the native representation of kind.
// In strict mode the runtime kind must already be compatible; in non-strict
// mode textual representations are parsed with the cast grammar.
func coercePrimitive(kind Kind, value any, strict bool) (any, error) {
	switch kind {
	case KindString:
		return coerceString(value, strict)
	case KindInteger:
		return coerceInteger(value, strict)
	case KindNumber:
		return coerceNumber(value, strict)
	case KindBoolean:
		return coerceBoolean(value, strict)
	default:
		return nil, fmt.Errorf("kind %s is not primitive", kind)
	}
}

// coerceString accepts strings; non-strict mode also renders scalar inputs.
func coerceString(value any, strict bool) (any, error) {
	if str, ok := value.(string); ok {
		return str, nil
	}
	if !strict {
		switch v := value.(type) {
		case jsonNumber:
			return v.String(), nil
		case bool:
			return strconv.FormatBool(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
	}

	return nil, fmt.Errorf("expected string, got %T", value)
}

// coerceInteger accepts native integer representations, including integral
// JSON numbers; non-strict mode also parses decimal strings.
func coerceInteger(value any, strict bool) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case jsonNumber:
		i, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("not an integer: %w", err)
		}
		return i, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("not an integer: %v", v)
		}
		return int64(v), nil
	case string:
		if strict {
			return nil, fmt.Errorf("expected integer, got string")
		}
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %w", err)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", value)
	}
}

// coerceNumber accepts native numeric representations; non-strict mode also
// parses numeric strings.
func coerceNumber(value any, strict bool) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case jsonNumber:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("not a number: %w", err)
		}
		return f, nil
	case string:
		if strict {
			return nil, fmt.Errorf("expected number, got string")
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %w", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected number, got %T", value)
	}
}

// coerceBoolean accepts bools; non-strict mode also parses the permissive
// boolean grammar.
func coerceBoolean(value any, strict bool) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if strict {
			return nil, fmt.Errorf("expected boolean, got string")
		}
		return parseBoolPermissive(v)
	default:
		return nil, fmt.Errorf("expected boolean, got %T", value)
	}
}

// unmarshalArray unmarshals each element against the item schema in order.
// An element failure fails the whole array; no partial result is returned.
func unmarshalArray(s *Schema, value any, cfg *unmarshalConfig) (any, error) {
	elems, ok := asSlice(value)
	if !ok {
		return nil, &UnmarshalError{
			Value: value,
			Kind:  KindArray,
			Cause: fmt.Errorf("expected array, got %T", value),
		}
	}

	items := s.items
	if items == nil {
		// Only reachable through typeless resolution; array construction
		// requires an item schema.
		items = anySchema
	}

	out := make([]any, len(elems))
	for i, elem := range elems {
		typed, err := unmarshalValue(items, elem, cfg)
		if err != nil {
			return nil, &UnmarshalError{
				Value: value,
				Kind:  KindArray,
				Path:  strconv.Itoa(i),
				Cause: err,
			}
		}
		out[i] = typed
	}

	return out, nil
}

// unmarshalObject unmarshals declared properties against the flattened
// property view and applies the additionalProperties policy to undeclared
// ones. Required-but-absent properties are a structural validation concern
// and are not raised here.
func unmarshalObject(s *Schema, value any, cfg *unmarshalConfig) (any, error) {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, &UnmarshalError{
			Value: value,
			Kind:  KindObject,
			Cause: fmt.Errorf("expected object, got %T", value),
		}
	}

	out := make(map[string]any, len(raw))
	declared := make(map[string]struct{}, len(raw))

	for _, prop := range s.AllProperties() {
		declared[prop.Name] = struct{}{}

		propValue, present := raw[prop.Name]
		if !present {
			continue
		}

		typed, err := unmarshalValue(prop.Schema, propValue, cfg)
		if err != nil {
			return nil, &UnmarshalError{
				Value: value,
				Kind:  KindObject,
				Path:  prop.Name,
				Cause: err,
			}
		}
		out[prop.Name] = typed
	}

	for name, propValue := range raw {
		if _, ok := declared[name]; ok {
			continue
		}

		switch {
		case s.additional.Schema != nil:
			typed, err := unmarshalValue(s.additional.Schema, propValue, cfg)
			if err != nil {
				return nil, &UnmarshalError{
					Value: value,
					Kind:  KindObject,
					Path:  name,
					Cause: err,
				}
			}
			out[name] = typed
		case s.additional.Allowed:
			out[name] = propValue
		default:
			// Dropped; structural rejection of undeclared properties is the
			// validator's job.
		}
	}

	return out, nil
}

// unmarshalAny resolves a typeless schema: oneOf alternatives in declaration
// order when declared, otherwise the fixed kind precedence.
func unmarshalAny(s *Schema, value any, cfg *unmarshalConfig) (any, error) {
	if len(s.oneOf) > 0 {
		return unmarshalOneOf(s, value, cfg)
	}

	for _, kind := range anyKindOrder {
		var (
			typed any
			err   error
		)
		switch kind {
		case KindObject:
			typed, err = unmarshalObject(s, value, cfg)
		case KindArray:
			typed, err = unmarshalArray(s, value, cfg)
		default:
			typed, err = unmarshalPrimitive(s, kind, value, cfg)
		}
		if err == nil {
			return typed, nil
		}
	}

	warning := Warning{
		Code:    WarnAnyUnresolved,
		Message: "failed to unmarshal any type",
		Value:   value,
	}
	if cfg.ambiguity == AmbiguityFail {
		return nil, &UnmarshalError{
			Value: value,
			Kind:  KindAny,
			Cause: fmt.Errorf("%s: no kind accepted the value", warning.Message),
		}
	}
	cfg.warn(warning)

	// Final fallback: the raw value, unchanged.
	return value, nil
}

// unmarshalOneOf attempts every alternative independently and applies the
// first-match tie-break. Ambiguous and unresolved matches follow the
// configured [AmbiguityPolicy].
func unmarshalOneOf(s *Schema, value any, cfg *unmarshalConfig) (any, error) {
	var (
		result  any
		matched int
	)

	for _, sub := range s.oneOf {
		typed, err := unmarshalValue(sub, value, cfg)
		if err != nil {
			continue
		}
		matched++
		if matched == 1 {
			result = typed
		}
	}

	switch {
	case matched == 1:
		return result, nil

	case matched > 1:
		if cfg.ambiguity == AmbiguityFail {
			return nil, &UnmarshalError{Value: value, Kind: KindAny, Cause: ErrAmbiguousOneOf}
		}
		cfg.warn(Warning{
			Code:    WarnOneOfAmbiguous,
			Message: "multiple valid oneOf schemas found",
			Value:   value,
		})

		return result, nil

	default:
		if cfg.ambiguity == AmbiguityFail {
			return nil, &UnmarshalError{Value: value, Kind: KindAny, Cause: ErrUnresolvedOneOf}
		}
		cfg.warn(Warning{
			Code:    WarnOneOfUnresolved,
			Message: "valid oneOf schema not found",
			Value:   value,
		})

		return nil, nil
	}
}
