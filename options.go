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
	"log/slog"
	"regexp"
)

// SchemaOption configures a [Schema] during construction with [New].
// Options that receive inconsistent input make [New] fail fast.
type SchemaOption func(*Schema) error

// WithFormat sets the schema's format name (e.g. "date-time", "uuid").
func WithFormat(name string) SchemaOption {
	return func(s *Schema) error {
		s.format = name
		return nil
	}
}

// WithNullable marks null as an accepted value.
func WithNullable() SchemaOption {
	return func(s *Schema) error {
		s.nullable = true
		return nil
	}
}

// WithDeprecated marks the schema deprecated.
func WithDeprecated() SchemaOption {
	return func(s *Schema) error {
		s.deprecated = true
		return nil
	}
}

// WithDefault sets the schema's default value.
func WithDefault(value any) SchemaOption {
	return func(s *Schema) error {
		s.defaultVal = value
		s.hasDefault = true
		return nil
	}
}

// WithEnum restricts the schema to an ordered list of allowed values.
func WithEnum(values ...any) SchemaOption {
	return func(s *Schema) error {
		s.enum = append([]any(nil), values...)
		return nil
	}
}

// WithPattern compiles and sets the string pattern constraint.
// An invalid regular expression makes [New] fail.
func WithPattern(expr string) SchemaOption {
	return func(s *Schema) error {
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", expr, err)
		}
		s.pattern = re

		return nil
	}
}

// WithMinLength sets the minimum string length.
func WithMinLength(n int) SchemaOption {
	return func(s *Schema) error {
		s.minLength = &n
		return nil
	}
}

// WithMaxLength sets the maximum string length.
func WithMaxLength(n int) SchemaOption {
	return func(s *Schema) error {
		s.maxLength = &n
		return nil
	}
}

// WithMinimum sets the numeric lower bound. Exclusive makes the bound strict.
func WithMinimum(min float64, exclusive bool) SchemaOption {
	return func(s *Schema) error {
		s.minimum = &min
		s.exclusiveMinimum = exclusive
		return nil
	}
}

// WithMaximum sets the numeric upper bound. Exclusive makes the bound strict.
func WithMaximum(max float64, exclusive bool) SchemaOption {
	return func(s *Schema) error {
		s.maximum = &max
		s.exclusiveMaximum = exclusive
		return nil
	}
}

// WithMultipleOf constrains numeric values to multiples of n.
func WithMultipleOf(n float64) SchemaOption {
	return func(s *Schema) error {
		s.multipleOf = &n
		return nil
	}
}

// WithItems sets the item schema for array kinds.
func WithItems(items *Schema) SchemaOption {
	return func(s *Schema) error {
		s.items = items
		return nil
	}
}

// WithMinItems sets the minimum array length.
func WithMinItems(n int) SchemaOption {
	return func(s *Schema) error {
		s.minItems = &n
		return nil
	}
}

// WithMaxItems sets the maximum array length.
func WithMaxItems(n int) SchemaOption {
	return func(s *Schema) error {
		s.maxItems = &n
		return nil
	}
}

// WithUniqueItems requires array elements to be unique.
func WithUniqueItems() SchemaOption {
	return func(s *Schema) error {
		s.uniqueItems = true
		return nil
	}
}

// WithProperty declares an object property. Declaration order is preserved
// and drives the left-biased allOf flattening. Declaring the same name twice
// makes [New] fail.
func WithProperty(name string, schema *Schema) SchemaOption {
	return func(s *Schema) error {
		if s.propertyIndex == nil {
			s.propertyIndex = make(map[string]*Schema)
		}
		if _, dup := s.propertyIndex[name]; dup {
			return fmt.Errorf("property %q declared twice", name)
		}
		s.properties = append(s.properties, Property{Name: name, Schema: schema})
		s.propertyIndex[name] = schema

		return nil
	}
}

// WithRequired declares required property names.
func WithRequired(names ...string) SchemaOption {
	return func(s *Schema) error {
		s.required = append(s.required, names...)
		return nil
	}
}

// WithAdditionalProperties sets whether undeclared object properties are
// allowed. The default is allowed.
func WithAdditionalProperties(allowed bool) SchemaOption {
	return func(s *Schema) error {
		s.additional = AdditionalProperties{Allowed: allowed}
		return nil
	}
}

// WithAdditionalPropertiesSchema applies a schema to every undeclared object
// property.
func WithAdditionalPropertiesSchema(schema *Schema) SchemaOption {
	return func(s *Schema) error {
		if schema == nil {
			return fmt.Errorf("additionalProperties schema must not be nil")
		}
		s.additional = AdditionalProperties{Allowed: true, Schema: schema}

		return nil
	}
}

// WithMinProperties sets the minimum object property count.
func WithMinProperties(n int) SchemaOption {
	return func(s *Schema) error {
		s.minProperties = &n
		return nil
	}
}

// WithMaxProperties sets the maximum object property count.
func WithMaxProperties(n int) SchemaOption {
	return func(s *Schema) error {
		s.maxProperties = &n
		return nil
	}
}

// WithAllOf sets the ordered allOf composition members.
func WithAllOf(schemas ...*Schema) SchemaOption {
	return func(s *Schema) error {
		s.allOf = append(s.allOf, schemas...)
		return nil
	}
}

// WithOneOf sets the ordered oneOf alternatives.
func WithOneOf(schemas ...*Schema) SchemaOption {
	return func(s *Schema) error {
		s.oneOf = append(s.oneOf, schemas...)
		return nil
	}
}

// WithExtension attaches a free-form extension value (e.g. "x-internal").
func WithExtension(name string, value any) SchemaOption {
	return func(s *Schema) error {
		if s.extensions == nil {
			s.extensions = make(map[string]any)
		}
		s.extensions[name] = value

		return nil
	}
}

// AmbiguityPolicy controls how the unmarshalling engine reacts when oneOf
// resolution is ambiguous or unresolved.
type AmbiguityPolicy int

const (
	// AmbiguityWarn emits a warning and continues: an ambiguous match returns
	// the first successful alternative in declaration order, an unresolved
	// match returns nil. This favors availability over strictness and is the
	// default.
	AmbiguityWarn AmbiguityPolicy = iota

	// AmbiguityFail turns ambiguous and unresolved oneOf matches into hard
	// errors ([ErrAmbiguousOneOf], [ErrUnresolvedOneOf]).
	AmbiguityFail
)

// WarningCode classifies soft conditions emitted by the unmarshalling engine.
type WarningCode string

const (
	// WarnOneOfAmbiguous indicates more than one oneOf alternative accepted
	// the value; the first match was returned.
	WarnOneOfAmbiguous WarningCode = "oneof_ambiguous"

	// WarnOneOfUnresolved indicates no oneOf alternative accepted the value;
	// nil was returned.
	WarnOneOfUnresolved WarningCode = "oneof_unresolved"

	// WarnAnyUnresolved indicates no candidate kind accepted a typeless
	// value; the raw value was returned unchanged.
	WarnAnyUnresolved WarningCode = "any_unresolved"
)

// Warning is an observability signal emitted by the unmarshalling engine for
// the soft-fallback polymorphic cases. Warnings never fail a call under
// [AmbiguityWarn].
type Warning struct {
	// Code is a stable identifier for the condition.
	Code WarningCode

	// Message is a human-readable description.
	Message string

	// Value is the input value that triggered the warning.
	Value any
}

// UnmarshalOption configures one [Schema.Unmarshal] call.
type UnmarshalOption func(*unmarshalConfig)

// unmarshalConfig holds per-call unmarshalling configuration.
type unmarshalConfig struct {
	formats   Formats
	strict    bool
	ambiguity AmbiguityPolicy
	logger    *slog.Logger
	warnFunc  func(Warning)
}

// newUnmarshalConfig returns the default configuration: strict mode, no custom
// formats, warn-and-continue ambiguity handling, warnings to slog.Default.
func newUnmarshalConfig(opts []UnmarshalOption) *unmarshalConfig {
	cfg := &unmarshalConfig{
		strict:    true,
		ambiguity: AmbiguityWarn,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// warn routes a warning to the configured sink.
func (c *unmarshalConfig) warn(w Warning) {
	if c.warnFunc != nil {
		c.warnFunc(w)
		return
	}

	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(w.Message,
		slog.String("code", string(w.Code)),
		slog.Any("value", w.Value),
	)
}

// WithFormats supplies custom format entries for one call. Custom entries take
// precedence over built-ins with the same name.
func WithFormats(formats Formats) UnmarshalOption {
	return func(c *unmarshalConfig) {
		c.formats = formats
	}
}

// WithStrict controls whether primitive inputs must already have their native
// runtime kind (true, the default, for JSON-native transports) or may be
// compatible textual representations (false, for query/header/path
// transports).
func WithStrict(strict bool) UnmarshalOption {
	return func(c *unmarshalConfig) {
		c.strict = strict
	}
}

// WithAmbiguityPolicy selects the oneOf ambiguity handling policy.
func WithAmbiguityPolicy(policy AmbiguityPolicy) UnmarshalOption {
	return func(c *unmarshalConfig) {
		c.ambiguity = policy
	}
}

// WithLogger routes engine warnings to the given structured logger instead of
// slog.Default.
func WithLogger(logger *slog.Logger) UnmarshalOption {
	return func(c *unmarshalConfig) {
		c.logger = logger
	}
}

// WithWarnFunc routes engine warnings to fn, bypassing the logger. Intended
// for tests and callers that need to inspect soft conditions.
func WithWarnFunc(fn func(Warning)) UnmarshalOption {
	return func(c *unmarshalConfig) {
		c.warnFunc = fn
	}
}
