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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	t.Run("builtin by kind and name", func(t *testing.T) {
		t.Parallel()

		_, ok := resolveFormat(KindString, "date-time", nil)
		assert.True(t, ok)

		_, ok = resolveFormat(KindNumber, "number", nil)
		assert.True(t, ok)
	})

	t.Run("kind scopes the lookup", func(t *testing.T) {
		t.Parallel()

		// "date-time" is a string format; it does not resolve for integers.
		_, ok := resolveFormat(KindInteger, "date-time", nil)
		assert.False(t, ok)
	})

	t.Run("empty name never resolves", func(t *testing.T) {
		t.Parallel()

		_, ok := resolveFormat(KindString, "", nil)
		assert.False(t, ok)
	})

	t.Run("unknown name is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := resolveFormat(KindString, "no-such-format", nil)
		assert.False(t, ok)
	})

	t.Run("custom entries win over builtins", func(t *testing.T) {
		t.Parallel()

		custom := Formats{
			"date": {
				Unmarshal: func(value any) (any, error) { return "override", nil },
				Validate:  func(any) bool { return true },
			},
		}

		entry, ok := resolveFormat(KindString, "date", custom)
		require.True(t, ok)

		got, err := entry.Unmarshal("2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, "override", got)
	})
}

func TestBuiltinFormats_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  Kind
		name  string
		valid any
		bad   any
	}{
		{KindString, "date", "2024-01-15", "15/01/2024"},
		{KindString, "date-time", "2024-01-15T10:30:00Z", "2024-01-15"},
		{KindString, "byte", "aGVsbG8=", "%%%"},
		{KindString, "uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "not-a-uuid"},
		{KindNumber, "number", "3.14", "three"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry, ok := resolveFormat(tt.kind, tt.name, nil)
			require.True(t, ok)

			assert.True(t, entry.Validate(tt.valid), "value %v", tt.valid)
			assert.False(t, entry.Validate(tt.bad), "value %v", tt.bad)
		})
	}
}

func TestUnmarshalBinary(t *testing.T) {
	t.Parallel()

	got, err := unmarshalBinary([]byte{0x1, 0x2})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1, 0x2}, got)

	got, err = unmarshalBinary("raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), got)

	_, err = unmarshalBinary(42)
	require.Error(t, err)
}

func TestUnmarshalDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "1.5", "1.5"},
		{"float64", 0.25, "0.25"},
		{"int64", int64(7), "7"},
		{"int", 7, "7"},
		{"json number", jsonNumber("123.456"), "123.456"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := unmarshalDecimal(tt.value)
			require.NoError(t, err)

			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, want.Equal(got.(decimal.Decimal)))
		})
	}

	_, err := unmarshalDecimal("not numeric")
	require.Error(t, err)

	_, err = unmarshalDecimal(true)
	require.Error(t, err)
}
