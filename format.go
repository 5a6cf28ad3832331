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
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dateLayout is the RFC 3339 full-date layout used by the "date" format.
const dateLayout = "2006-01-02"

// Format pairs an unmarshal function (raw to typed, may fail) with a validity
// predicate. Formats are resolved by name, scoped to the schema kind, and may
// be supplied per call via [WithFormats].
type Format struct {
	// Unmarshal converts a raw primitive value into its typed form.
	Unmarshal func(value any) (any, error)

	// Validate reports whether a raw or typed value satisfies the format.
	Validate func(value any) bool
}

// Formats maps format names to caller-supplied [Format] entries. Entries take
// precedence over built-ins for the same name.
type Formats map[string]Format

// formatKey scopes a format name to a primitive kind.
type formatKey struct {
	kind Kind
	name string
}

// builtinFormats holds the built-in format table. Unknown (kind, name) pairs
// are not an error; the value is then handled as the bare primitive.
var builtinFormats = map[formatKey]Format{
	{KindString, "date"}: {
		Unmarshal: unmarshalDate,
		Validate:  validates(unmarshalDate),
	},
	{KindString, "date-time"}: {
		Unmarshal: unmarshalDateTime,
		Validate:  validates(unmarshalDateTime),
	},
	{KindString, "byte"}: {
		Unmarshal: unmarshalByte,
		Validate:  validates(unmarshalByte),
	},
	{KindString, "binary"}: {
		Unmarshal: unmarshalBinary,
		Validate:  validates(unmarshalBinary),
	},
	{KindString, "uuid"}: {
		Unmarshal: unmarshalUUID,
		Validate:  validates(unmarshalUUID),
	},
	{KindNumber, "number"}: {
		Unmarshal: unmarshalDecimal,
		Validate:  validates(unmarshalDecimal),
	},
}

// resolveFormat looks up a format entry for (kind, name). Custom entries win
// over built-ins. The second return reports whether an entry was found.
func resolveFormat(kind Kind, name string, custom Formats) (Format, bool) {
	if name == "" {
		return Format{}, false
	}
	if entry, ok := custom[name]; ok {
		return entry, true
	}
	entry, ok := builtinFormats[formatKey{kind: kind, name: name}]

	return entry, ok
}

// validates adapts an unmarshal function into a validity predicate.
func validates(unmarshal func(any) (any, error)) func(any) bool {
	return func(value any) bool {
		_, err := unmarshal(value)
		return err == nil
	}
}

// unmarshalDate parses a full-date string into a time.Time at midnight UTC.
func unmarshalDate(value any) (any, error) {
	str, err := formatString(value)
	if err != nil {
		return nil, err
	}
	t, err := time.Parse(dateLayout, str)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return t, nil
}

// unmarshalDateTime parses an RFC 3339 date-time string into a time.Time.
func unmarshalDateTime(value any) (any, error) {
	str, err := formatString(value)
	if err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return nil, fmt.Errorf("invalid date-time: %w", err)
	}

	return t, nil
}

// unmarshalByte decodes a base64 string into its binary form.
func unmarshalByte(value any) (any, error) {
	str, err := formatString(value)
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}

	return b, nil
}

// unmarshalBinary passes raw binary content through as a byte slice.
func unmarshalBinary(value any) (any, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("expected binary content, got %T", value)
	}
}

// unmarshalUUID parses an RFC 4122 UUID string.
func unmarshalUUID(value any) (any, error) {
	str, err := formatString(value)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}

	return id, nil
}

// unmarshalDecimal parses a numeric value into an arbitrary-precision decimal.
func unmarshalDecimal(value any) (any, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid decimal: %w", err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	default:
		if str, err := formatString(value); err == nil {
			d, derr := decimal.NewFromString(str)
			if derr != nil {
				return nil, fmt.Errorf("invalid decimal: %w", derr)
			}
			return d, nil
		}
		return nil, fmt.Errorf("expected numeric value, got %T", value)
	}
}

// formatString extracts the string payload most formats operate on.
// json.Number is accepted because decoded JSON numbers carry their literal.
func formatString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case jsonNumber:
		return v.String(), nil
	default:
		return "", fmt.Errorf("expected string, got %T", value)
	}
}
