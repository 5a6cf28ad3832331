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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// jsonNumber is the numeric literal type produced by [DecodeJSON].
// goccy/go-json emits the encoding/json Number type.
type jsonNumber = json.Number

// DecodeJSON decodes a JSON document into the generic value tree the engine
// consumes: map[string]any objects, []any arrays, string, bool, nil, and
// json.Number scalars. Numbers keep their literal form so that integer inputs
// are not forced through float64.
func DecodeJSON(data []byte) (any, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader decodes a JSON document from r. See [DecodeJSON].
func DecodeJSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	// A document must be a single value; trailing content is malformed.
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json: trailing content after document")
	}

	return value, nil
}
