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

// Package oaschema coerces and validates untyped structured input, as
// received over HTTP query strings, headers, and JSON bodies, against
// declarative OpenAPI-style schemas, producing strongly typed values or a
// precise set of errors.
//
// # Getting Started
//
// Schemas are immutable trees built with [New] or [MustNew]; a specification
// loader typically builds them once per service lifetime:
//
//	user := oaschema.MustNew(oaschema.KindObject,
//		oaschema.WithProperty("id", oaschema.MustNew(oaschema.KindString, oaschema.WithFormat("uuid"))),
//		oaschema.WithProperty("age", oaschema.MustNew(oaschema.KindInteger)),
//		oaschema.WithRequired("id"),
//	)
//
// A request adapter then casts, validates, and unmarshals the raw value:
//
//	value, err := oaschema.DecodeJSON(body)
//	if err != nil {
//		return err
//	}
//	if err := user.Validate(value); err != nil {
//		var verr *oaschema.InvalidSchemaValueError
//		if errors.As(err, &verr) {
//			// verr.Violations aggregates every structural violation
//		}
//		return err
//	}
//	typed, err := user.Unmarshal(value)
//
// # Transports
//
// JSON-native transports use the default strict mode. Text-only transports
// (query, header, path) first [Schema.Cast] the raw strings and unmarshal
// with [WithStrict](false), which accepts compatible textual representations:
//
//	typed, err := ageSchema.Unmarshal("5", oaschema.WithStrict(false)) // int64(5)
//
// # Formats
//
// Format entries convert primitives beyond their bare kind: "date",
// "date-time", "byte", "binary", "uuid", and "number" are built in, and
// callers may supply additional entries per call with [WithFormats]; supplied
// entries win over built-ins for the same name. A schema naming an
// unregistered format unmarshals as the bare primitive, never an error.
//
// # Polymorphic schemas
//
// Typeless schemas resolve oneOf alternatives in declaration order, or fall
// back to a fixed kind precedence. Ambiguous and unresolved matches are soft
// conditions by default: the engine emits a [Warning] (to a logger or a
// [WithWarnFunc] hook) and continues with the first match, favoring
// availability over strictness. [WithAmbiguityPolicy]([AmbiguityFail]) turns
// them into hard errors.
//
// # Concurrency
//
// Schema trees are read-only after construction and safe for concurrent use
// across requests. Derived views and compiled structural schemas are
// memoized with a compute-once discipline.
package oaschema
