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

import "fmt"

// Kind identifies the declared type of a [Schema].
//
// The set of kinds is closed. Every schema resolves to exactly one Kind at
// construction time; [KindAny] covers schemas with no declared type, including
// oneOf-only polymorphic schemas.
type Kind int

const (
	// KindAny matches schemas with no declared type (wildcard).
	KindAny Kind = iota

	// KindString matches "string" schemas.
	KindString

	// KindNumber matches "number" (floating point) schemas.
	KindNumber

	// KindInteger matches "integer" schemas.
	KindInteger

	// KindBoolean matches "boolean" schemas.
	KindBoolean

	// KindArray matches "array" schemas.
	KindArray

	// KindObject matches "object" schemas.
	KindObject
)

// kindNames maps each Kind to its JSON Schema type name.
// KindAny has no type name and maps to the empty string.
var kindNames = map[Kind]string{
	KindAny:     "",
	KindString:  "string",
	KindNumber:  "number",
	KindInteger: "integer",
	KindBoolean: "boolean",
	KindArray:   "array",
	KindObject:  "object",
}

// String returns the JSON Schema type name for the kind ("any" for [KindAny]).
func (k Kind) String() string {
	if k == KindAny {
		return "any"
	}
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// typeName returns the JSON Schema "type" keyword value, or "" for [KindAny].
func (k Kind) typeName() string {
	return kindNames[k]
}

// ParseKind resolves a JSON Schema type name to a [Kind].
// The empty string resolves to [KindAny]. Unknown names return an error.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "":
		return KindAny, nil
	case "string":
		return KindString, nil
	case "number":
		return KindNumber, nil
	case "integer":
		return KindInteger, nil
	case "boolean":
		return KindBoolean, nil
	case "array":
		return KindArray, nil
	case "object":
		return KindObject, nil
	default:
		return KindAny, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
