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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast_Integer(t *testing.T) {
	t.Parallel()

	schema := MustNew(KindInteger)

	tests := []struct {
		name    string
		value   any
		want    any
		wantErr bool
	}{
		{"decimal string", "5", int64(5), false},
		{"negative string", "-12", int64(-12), false},
		{"string with spaces", " 7 ", int64(7), false},
		{"already int64", int64(42), int64(42), false},
		{"int", 42, int64(42), false},
		{"json number", json.Number("9"), int64(9), false},
		{"integral float", float64(3), int64(3), false},
		{"fractional float", 3.5, nil, true},
		{"fractional string", "3.5", nil, true},
		{"word", "five", nil, true},
		{"empty string", "", nil, true},
		{"bool", true, nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := schema.Cast(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrCast)

				var castErr *CastError
				require.ErrorAs(t, err, &castErr)
				assert.Equal(t, tt.value, castErr.Value)
				assert.Equal(t, KindInteger, castErr.Kind)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCast_Number(t *testing.T) {
	t.Parallel()

	schema := MustNew(KindNumber)

	tests := []struct {
		name    string
		value   any
		want    any
		wantErr bool
	}{
		{"decimal string", "2.5", 2.5, false},
		{"integer string", "2", 2.0, false},
		{"scientific notation", "1e3", 1000.0, false},
		{"already float64", 1.25, 1.25, false},
		{"int", 4, 4.0, false},
		{"json number", json.Number("0.5"), 0.5, false},
		{"word", "pi", nil, true},
		{"multiple dots", "1.2.3", nil, true},
		{"bool", false, nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := schema.Cast(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrCast)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCast_Boolean(t *testing.T) {
	t.Parallel()

	schema := MustNew(KindBoolean)

	trueValues := []string{"true", "TRUE", "True", "1", "yes", "on", "t", "y", "Y"}
	for _, v := range trueValues {
		got, err := schema.Cast(v)
		require.NoError(t, err, "value %q", v)
		assert.Equal(t, true, got, "value %q", v)
	}

	falseValues := []string{"false", "FALSE", "0", "no", "off", "f", "n", "N"}
	for _, v := range falseValues {
		got, err := schema.Cast(v)
		require.NoError(t, err, "value %q", v)
		assert.Equal(t, false, got, "value %q", v)
	}

	for _, v := range []string{"maybe", "2", "yesno", ""} {
		_, err := schema.Cast(v)
		require.Error(t, err, "value %q", v)
		assert.ErrorIs(t, err, ErrCast)
	}

	got, err := schema.Cast(true)
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestCast_Array(t *testing.T) {
	t.Parallel()

	schema := MustNew(KindArray, WithItems(MustNew(KindInteger)))

	got, err := schema.Cast([]string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)

	got, err = schema.Cast([]any{"4", int64(5)})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(4), int64(5)}, got)

	_, err = schema.Cast([]string{"1", "oops"})
	require.Error(t, err)

	var castErr *CastError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, "oops", castErr.Value)

	_, err = schema.Cast("not-an-array")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCast)
}

func TestCast_IdentityKinds(t *testing.T) {
	t.Parallel()

	// String, object, and any kinds are identity: no conversion is performed.
	obj := map[string]any{"k": "v"}

	tests := []struct {
		name   string
		schema *Schema
		value  any
	}{
		{"string", MustNew(KindString), "hello"},
		{"string leaves numbers alone", MustNew(KindString), "123"},
		{"object", MustNew(KindObject), obj},
		{"any", MustNew(KindAny), "anything"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.schema.Cast(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestCast_NullPassThrough(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindAny, KindString, KindNumber, KindInteger, KindBoolean, KindObject} {
		schema := MustNew(kind)
		got, err := schema.Cast(nil)
		require.NoError(t, err, "kind %s", kind)
		assert.Nil(t, got, "kind %s", kind)
	}

	arr := MustNew(KindArray, WithItems(MustNew(KindString)))
	got, err := arr.Cast(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCast_Idempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema *Schema
		value  any
	}{
		{"integer", MustNew(KindInteger), "5"},
		{"number", MustNew(KindNumber), "2.5"},
		{"boolean", MustNew(KindBoolean), "yes"},
		{"array", MustNew(KindArray, WithItems(MustNew(KindInteger))), []string{"1", "2"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			once, err := tt.schema.Cast(tt.value)
			require.NoError(t, err)

			twice, err := tt.schema.Cast(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestCastError_Unwrap(t *testing.T) {
	t.Parallel()

	_, err := MustNew(KindInteger).Cast("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCast))
	assert.NotErrorIs(t, err, ErrUnmarshal)
}
