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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorChains(t *testing.T) {
	t.Parallel()

	t.Run("cast error wraps its cause", func(t *testing.T) {
		t.Parallel()

		_, err := MustNew(KindInteger).Cast("abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCast)

		var castErr *CastError
		require.ErrorAs(t, err, &castErr)
		assert.Error(t, castErr.Cause)
	})

	t.Run("nested unmarshal failures unwrap to the sentinel", func(t *testing.T) {
		t.Parallel()

		schema := MustNew(KindObject,
			WithProperty("list", MustNew(KindArray, WithItems(MustNew(KindInteger)))),
		)

		_, err := schema.Unmarshal(map[string]any{"list": []any{"bad"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnmarshal)

		// The chain carries both the object wrapper and the array wrapper.
		var objErr *UnmarshalError
		require.ErrorAs(t, err, &objErr)
		assert.Equal(t, "list", objErr.Path)

		var valueErr *UnmarshalValueError
		require.ErrorAs(t, err, &valueErr)
		assert.Equal(t, "bad", valueErr.Value)
	})

	t.Run("sentinels stay distinct", func(t *testing.T) {
		t.Parallel()

		_, castErr := MustNew(KindInteger).Cast("x")
		assert.False(t, errors.Is(castErr, ErrUnmarshal))

		_, umErr := MustNew(KindInteger).Unmarshal("x")
		assert.False(t, errors.Is(umErr, ErrCast))
		assert.True(t, errors.Is(umErr, ErrUnmarshal))
	})

	t.Run("violation formatting", func(t *testing.T) {
		t.Parallel()

		v := SchemaViolation{Path: "items.2", Message: "too small"}
		assert.Equal(t, "items.2: too small", v.Error())

		root := SchemaViolation{Message: "invalid"}
		assert.Equal(t, "invalid", root.Error())
	})
}
