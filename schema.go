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
	"regexp"
	"sync"
)

// Property pairs a property name with its schema. Properties keep their
// declaration order so that allOf flattening is deterministic.
type Property struct {
	Name   string
	Schema *Schema
}

// AdditionalProperties captures the object policy for undeclared properties:
// allowed as-is (the default), allowed when matching a schema, or dropped.
type AdditionalProperties struct {
	// Allowed reports whether undeclared properties are permitted.
	Allowed bool

	// Schema, when non-nil, is applied to every undeclared property value.
	Schema *Schema
}

// Schema is an immutable description of one schema fragment: declared kind,
// child schemas, composition lists, constraints, and format name.
//
// A Schema is constructed once (typically by a specification loader) via [New]
// or [MustNew] and is read-only afterwards. The same Schema tree is safe for
// concurrent use across unrelated validation calls; lazily derived views are
// computed at most once under a [sync.Once].
type Schema struct {
	kind       Kind
	format     string
	nullable   bool
	deprecated bool
	defaultVal any
	hasDefault bool
	enum       []any

	// numeric constraints
	minimum          *float64
	maximum          *float64
	multipleOf       *float64
	exclusiveMinimum bool
	exclusiveMaximum bool

	// string constraints
	minLength *int
	maxLength *int
	pattern   *regexp.Regexp

	// array constraints
	items       *Schema
	minItems    *int
	maxItems    *int
	uniqueItems bool

	// object constraints
	properties    []Property
	propertyIndex map[string]*Schema
	required      []string
	additional    AdditionalProperties
	minProperties *int
	maxProperties *int

	// composition
	allOf []*Schema
	oneOf []*Schema

	extensions map[string]any

	// memoized derived views
	allPropsOnce    sync.Once
	allProps        []Property
	allRequiredOnce sync.Once
	allRequired     []string

	// memoized structural validation state, see validate.go
	compiledOnce sync.Once
	compiled     *compiledSchema
}

// New constructs a [Schema] of the given kind.
//
// New fails fast on inconsistent construction: an invalid pattern expression,
// array options on non-array kinds, object options on non-object kinds, an
// array kind without an item schema, or nil child schemas. Children must be
// fully constructed before the parent, which keeps every composition graph
// acyclic by construction.
func New(kind Kind, opts ...SchemaOption) (*Schema, error) {
	s := &Schema{
		kind:       kind,
		additional: AdditionalProperties{Allowed: true},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if err := s.check(); err != nil {
		return nil, err
	}

	return s, nil
}

// MustNew constructs a [Schema] and panics on construction errors.
// Use where schemas are assembled from trusted literals, e.g. in tests.
func MustNew(kind Kind, opts ...SchemaOption) *Schema {
	s, err := New(kind, opts...)
	if err != nil {
		panic(fmt.Sprintf("oaschema.MustNew: %v", err))
	}

	return s
}

// check enforces cross-field construction invariants.
func (s *Schema) check() error {
	if s.kind == KindArray && s.items == nil {
		return errors.New("array schema requires an item schema")
	}
	if s.kind != KindArray && s.items != nil {
		return fmt.Errorf("item schema is only valid for array schemas, not %s", s.kind)
	}
	if s.kind != KindObject && s.kind != KindAny {
		if len(s.properties) > 0 || len(s.required) > 0 {
			return fmt.Errorf("properties are only valid for object schemas, not %s", s.kind)
		}
	}
	for _, p := range s.properties {
		if p.Schema == nil {
			return fmt.Errorf("property %q has a nil schema", p.Name)
		}
	}
	for i, sub := range s.allOf {
		if sub == nil {
			return fmt.Errorf("allOf member %d is nil", i)
		}
	}
	for i, sub := range s.oneOf {
		if sub == nil {
			return fmt.Errorf("oneOf member %d is nil", i)
		}
	}

	return nil
}

// Kind returns the schema's resolved kind.
func (s *Schema) Kind() Kind { return s.kind }

// Format returns the schema's format name, empty when none was declared.
func (s *Schema) Format() string { return s.format }

// Nullable reports whether null is an accepted value.
func (s *Schema) Nullable() bool { return s.nullable }

// Deprecated reports whether the schema is marked deprecated.
func (s *Schema) Deprecated() bool { return s.deprecated }

// Default returns the declared default value and whether one was declared.
func (s *Schema) Default() (any, bool) { return s.defaultVal, s.hasDefault }

// Enum returns the ordered list of allowed values, nil when unconstrained.
func (s *Schema) Enum() []any { return s.enum }

// Items returns the item schema for array kinds, nil otherwise.
func (s *Schema) Items() *Schema { return s.items }

// Pattern returns the compiled pattern constraint, nil when none was declared.
func (s *Schema) Pattern() *regexp.Regexp { return s.pattern }

// Properties returns the schema's own properties in declaration order.
func (s *Schema) Properties() []Property { return s.properties }

// Property returns the schema for one of the schema's own properties.
func (s *Schema) Property(name string) (*Schema, bool) {
	sub, ok := s.propertyIndex[name]
	return sub, ok
}

// Required returns the schema's own required property names.
func (s *Schema) Required() []string { return s.required }

// AdditionalProperties returns the undeclared-property policy.
func (s *Schema) AdditionalProperties() AdditionalProperties { return s.additional }

// AllOf returns the ordered allOf composition members.
func (s *Schema) AllOf() []*Schema { return s.allOf }

// OneOf returns the ordered oneOf alternatives.
func (s *Schema) OneOf() []*Schema { return s.oneOf }

// Extension returns a free-form extension value by name.
func (s *Schema) Extension(name string) (any, bool) {
	v, ok := s.extensions[name]
	return v, ok
}

// AllProperties returns the schema's own properties merged with the recursive
// union of every allOf member's properties, in declaration order.
//
// Flattening is left-biased: own properties win over inherited ones when names
// collide, and among inherited ones the first-encountered schema in allOf
// order wins. The result is computed once per node and memoized; concurrent
// first accesses observe a single, fully-computed result.
func (s *Schema) AllProperties() []Property {
	s.allPropsOnce.Do(func() {
		seen := make(map[string]struct{}, len(s.properties))
		merged := make([]Property, 0, len(s.properties))

		for _, p := range s.properties {
			if _, dup := seen[p.Name]; dup {
				continue
			}
			seen[p.Name] = struct{}{}
			merged = append(merged, p)
		}
		for _, sub := range s.allOf {
			for _, p := range sub.AllProperties() {
				if _, dup := seen[p.Name]; dup {
					continue
				}
				seen[p.Name] = struct{}{}
				merged = append(merged, p)
			}
		}

		s.allProps = merged
	})

	return s.allProps
}

// AllRequiredNames returns the schema's own required set unioned with each
// allOf member's recursively resolved required names, in first-encountered
// order. The result is memoized like [Schema.AllProperties].
func (s *Schema) AllRequiredNames() []string {
	s.allRequiredOnce.Do(func() {
		seen := make(map[string]struct{}, len(s.required))
		names := make([]string, 0, len(s.required))

		for _, name := range s.required {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
		for _, sub := range s.allOf {
			for _, name := range sub.AllRequiredNames() {
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}

		s.allRequired = names
	})

	return s.allRequired
}

// allPropertySchema resolves a property by name across the flattened view.
func (s *Schema) allPropertySchema(name string) (*Schema, bool) {
	for _, p := range s.AllProperties() {
		if p.Name == name {
			return p.Schema, true
		}
	}

	return nil, false
}
