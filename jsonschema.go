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
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaResourceURL names the in-memory schema resource handed to the
// compiler. Nodes are compiled independently; no cross-document references
// exist in a structural description.
const schemaResourceURL = "oaschema://schema.json"

// compiledSchema caches the outcome of compiling a node's structural
// description, including a compilation failure.
type compiledSchema struct {
	schema *jsonschema.Schema
	err    error
}

// Validate confirms constraint satisfaction for value by delegating to the
// external JSON Schema validator. The node's structural description is
// compiled once per node and memoized; concurrent first calls observe a
// single compilation.
//
// On rejection, Validate returns an [*InvalidSchemaValueError] aggregating
// every structural violation, not just the first one. Validate does not
// perform any unmarshalling; callers orchestrate casting and unmarshalling
// around this checked boundary.
func (s *Schema) Validate(value any) error {
	s.compiledOnce.Do(func() {
		s.compiled = compileStructural(s)
	})
	if s.compiled.err != nil {
		return fmt.Errorf("compile structural schema: %w", s.compiled.err)
	}

	if err := s.compiled.schema.Validate(value); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &InvalidSchemaValueError{
				Value:      value,
				Kind:       s.kind,
				Violations: collectViolations(verr, nil),
			}
		}

		return fmt.Errorf("structural validation: %w", err)
	}

	return nil
}

// compileStructural compiles the node's structural description with format
// assertions enabled.
func compileStructural(s *Schema) *compiledSchema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()
	compiler.AssertContent()

	doc := s.StructuralDescription()
	if err := compiler.AddResource(schemaResourceURL, doc); err != nil {
		return &compiledSchema{err: fmt.Errorf("add schema resource: %w", err)}
	}

	schema, err := compiler.Compile(schemaResourceURL)
	if err != nil {
		return &compiledSchema{err: fmt.Errorf("compile schema: %w", err)}
	}

	return &compiledSchema{schema: schema}
}

// collectViolations flattens the validator's error cause tree into leaf
// violations in document order.
func collectViolations(verr *jsonschema.ValidationError, out []SchemaViolation) []SchemaViolation {
	if verr == nil {
		return out
	}

	if len(verr.Causes) == 0 {
		out = append(out, SchemaViolation{
			Path:      strings.Join(verr.InstanceLocation, "."),
			Keyword:   fmt.Sprintf("%v", verr.ErrorKind),
			Message:   verr.Error(),
			SchemaURL: verr.SchemaURL,
		})

		return out
	}

	for _, cause := range verr.Causes {
		out = collectViolations(cause, out)
	}

	return out
}
