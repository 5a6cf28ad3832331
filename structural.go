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

// StructuralDescription projects the schema node into the plain declarative
// form the external JSON Schema validator consumes: a draft 2020-12 document
// as a generic value tree.
//
// Nullability is expressed as a type union with "null". Boolean exclusivity
// flags are translated into the draft's numeric exclusiveMinimum and
// exclusiveMaximum keywords. Child schemas, composition members, and the
// additionalProperties schema are projected recursively.
func (s *Schema) StructuralDescription() map[string]any {
	doc := make(map[string]any)

	if name := s.kind.typeName(); name != "" {
		if s.nullable {
			doc["type"] = []any{name, "null"}
		} else {
			doc["type"] = name
		}
	}

	if s.format != "" {
		doc["format"] = s.format
	}
	if s.enum != nil {
		doc["enum"] = s.enum
	}
	if s.hasDefault {
		doc["default"] = s.defaultVal
	}
	if s.deprecated {
		doc["deprecated"] = true
	}

	s.describeNumeric(doc)
	s.describeString(doc)
	s.describeArray(doc)
	s.describeObject(doc)

	if len(s.allOf) > 0 {
		members := make([]any, len(s.allOf))
		for i, sub := range s.allOf {
			members[i] = sub.StructuralDescription()
		}
		doc["allOf"] = members
	}
	if len(s.oneOf) > 0 {
		members := make([]any, len(s.oneOf))
		for i, sub := range s.oneOf {
			members[i] = sub.StructuralDescription()
		}
		doc["oneOf"] = members
	}

	return doc
}

// describeNumeric adds the numeric constraint keywords.
func (s *Schema) describeNumeric(doc map[string]any) {
	if s.minimum != nil {
		if s.exclusiveMinimum {
			doc["exclusiveMinimum"] = *s.minimum
		} else {
			doc["minimum"] = *s.minimum
		}
	}
	if s.maximum != nil {
		if s.exclusiveMaximum {
			doc["exclusiveMaximum"] = *s.maximum
		} else {
			doc["maximum"] = *s.maximum
		}
	}
	if s.multipleOf != nil {
		doc["multipleOf"] = *s.multipleOf
	}
}

// describeString adds the string constraint keywords.
func (s *Schema) describeString(doc map[string]any) {
	if s.minLength != nil {
		doc["minLength"] = float64(*s.minLength)
	}
	if s.maxLength != nil {
		doc["maxLength"] = float64(*s.maxLength)
	}
	if s.pattern != nil {
		doc["pattern"] = s.pattern.String()
	}
}

// describeArray adds the array constraint keywords.
func (s *Schema) describeArray(doc map[string]any) {
	if s.items != nil {
		doc["items"] = s.items.StructuralDescription()
	}
	if s.minItems != nil {
		doc["minItems"] = float64(*s.minItems)
	}
	if s.maxItems != nil {
		doc["maxItems"] = float64(*s.maxItems)
	}
	if s.uniqueItems {
		doc["uniqueItems"] = true
	}
}

// describeObject adds the object constraint keywords.
func (s *Schema) describeObject(doc map[string]any) {
	if len(s.properties) > 0 {
		props := make(map[string]any, len(s.properties))
		for _, p := range s.properties {
			props[p.Name] = p.Schema.StructuralDescription()
		}
		doc["properties"] = props
	}
	if len(s.required) > 0 {
		required := make([]any, len(s.required))
		for i, name := range s.required {
			required[i] = name
		}
		doc["required"] = required
	}
	switch {
	case s.additional.Schema != nil:
		doc["additionalProperties"] = s.additional.Schema.StructuralDescription()
	case !s.additional.Allowed:
		doc["additionalProperties"] = false
	}
	if s.minProperties != nil {
		doc["minProperties"] = float64(*s.minProperties)
	}
	if s.maxProperties != nil {
		doc["maxProperties"] = float64(*s.maxProperties)
	}
}
