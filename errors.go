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
)

// Sentinel errors. Use errors.Is to classify failures regardless of the
// concrete error type that carries them.
var (
	// ErrCast is the root of all casting failures.
	ErrCast = errors.New("cast")

	// ErrUnmarshal is the root of all unmarshalling failures.
	ErrUnmarshal = errors.New("unmarshal")

	// ErrValidation is the root of all structural validation failures.
	ErrValidation = errors.New("validation")

	// ErrUnknownKind is returned when a type name does not resolve to a [Kind].
	ErrUnknownKind = errors.New("unknown schema kind")

	// ErrAmbiguousOneOf is returned under [AmbiguityFail] when more than one
	// oneOf alternative accepts the value.
	ErrAmbiguousOneOf = errors.New("ambiguous oneOf match")

	// ErrUnresolvedOneOf is returned under [AmbiguityFail] when no oneOf
	// alternative accepts the value.
	ErrUnresolvedOneOf = errors.New("no oneOf alternative matched")
)

// CastError reports a raw value that could not be parsed into the schema's
// primitive kind during casting. It is local to the offending value and never
// fatal to the caller.
type CastError struct {
	// Value is the raw value that failed to cast.
	Value any

	// Kind is the target primitive kind.
	Kind Kind

	// Cause is the underlying parse error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *CastError) Error() string {
	return fmt.Sprintf("failed to cast %v to %s", e.Value, e.Kind)
}

// Unwrap returns [ErrCast] plus the underlying cause for errors.Is/errors.As.
func (e *CastError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCast, e.Cause}
	}

	return []error{ErrCast}
}

// UnmarshalValueError reports a primitive value that could not be converted
// via its resolved format (or whose runtime kind was rejected in strict mode).
type UnmarshalValueError struct {
	// Value is the offending value.
	Value any

	// Kind is the schema kind the value was unmarshalled against.
	Kind Kind

	// Format is the schema's format name, empty when none was declared.
	Format string

	// Cause is the underlying conversion error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *UnmarshalValueError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("failed to unmarshal %v as %s (format %q)", e.Value, e.Kind, e.Format)
	}

	return fmt.Sprintf("failed to unmarshal %v as %s", e.Value, e.Kind)
}

// Unwrap returns [ErrUnmarshal] plus the underlying cause.
func (e *UnmarshalValueError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUnmarshal, e.Cause}
	}

	return []error{ErrUnmarshal}
}

// UnmarshalError wraps a recursive failure from the array, object, or
// polymorphic unmarshal paths.
type UnmarshalError struct {
	// Value is the composite value whose unmarshalling failed.
	Value any

	// Kind is the schema kind of the failing composite.
	Kind Kind

	// Path locates the failing element within the composite, e.g. "2" for an
	// array index or "price" for an object property. Empty at the root.
	Path string

	// Cause is the wrapped failure.
	Cause error
}

// Error returns a formatted error message.
func (e *UnmarshalError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to unmarshal %s at %q: %v", e.Kind, e.Path, e.Cause)
	}

	return fmt.Sprintf("failed to unmarshal %s: %v", e.Kind, e.Cause)
}

// Unwrap returns [ErrUnmarshal] plus the wrapped cause.
func (e *UnmarshalError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUnmarshal, e.Cause}
	}

	return []error{ErrUnmarshal}
}

// SchemaViolation is a single structural constraint violation reported by the
// JSON Schema validator.
type SchemaViolation struct {
	// Path is the dotted instance location of the violating value
	// (e.g. "items.2.price"). Empty for the document root.
	Path string `json:"path"`

	// Keyword is the violated JSON Schema keyword (e.g. "minimum", "pattern").
	Keyword string `json:"keyword"`

	// Message is the validator's human-readable message.
	Message string `json:"message"`

	// SchemaURL locates the violated subschema inside the compiled document.
	SchemaURL string `json:"schema_url,omitempty"`
}

// Error returns a formatted violation message as "path: message".
func (v SchemaViolation) Error() string {
	if v.Path == "" {
		return v.Message
	}

	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// InvalidSchemaValueError reports a value rejected by structural validation.
// It aggregates every leaf violation, not just the first one.
type InvalidSchemaValueError struct {
	// Value is the rejected value.
	Value any

	// Kind is the schema kind the value was validated against.
	Kind Kind

	// Violations lists all structural violations found.
	Violations []SchemaViolation
}

// Error returns a summary followed by each violation.
func (e *InvalidSchemaValueError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "value %v not valid for schema of type %s", e.Value, e.Kind)
	for _, v := range e.Violations {
		sb.WriteString("; ")
		sb.WriteString(v.Error())
	}

	return sb.String()
}

// Unwrap returns [ErrValidation] for errors.Is compatibility.
func (e *InvalidSchemaValueError) Unwrap() error {
	return ErrValidation
}
