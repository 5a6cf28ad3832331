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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("numbers keep their literal form", func(t *testing.T) {
		t.Parallel()

		value, err := DecodeJSON([]byte(`{"int": 5, "frac": 2.5}`))
		require.NoError(t, err)

		obj, ok := value.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, json.Number("5"), obj["int"])
		assert.Equal(t, json.Number("2.5"), obj["frac"])
	})

	t.Run("nested structures", func(t *testing.T) {
		t.Parallel()

		value, err := DecodeJSON([]byte(`[{"a": null}, true, "s"]`))
		require.NoError(t, err)

		arr, ok := value.([]any)
		require.True(t, ok)
		require.Len(t, arr, 3)
		assert.Equal(t, map[string]any{"a": nil}, arr[0])
		assert.Equal(t, true, arr[1])
		assert.Equal(t, "s", arr[2])
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeJSON([]byte(`{"unterminated": `))
		require.Error(t, err)
	})

	t.Run("trailing content", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeJSON([]byte(`{"a": 1} {"b": 2}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trailing content")
	})

	t.Run("reader", func(t *testing.T) {
		t.Parallel()

		value, err := DecodeJSONReader(strings.NewReader(`"hello"`))
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})
}
