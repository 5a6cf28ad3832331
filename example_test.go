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

package oaschema_test

import (
	"fmt"

	"rivaas.dev/oaschema"
)

// ExampleSchema_Unmarshal shows a JSON request body being validated and
// unmarshalled against an object schema.
func ExampleSchema_Unmarshal() {
	user := oaschema.MustNew(oaschema.KindObject,
		oaschema.WithProperty("name", oaschema.MustNew(oaschema.KindString)),
		oaschema.WithProperty("age", oaschema.MustNew(oaschema.KindInteger)),
		oaschema.WithRequired("name"),
	)

	value, err := oaschema.DecodeJSON([]byte(`{"name": "ada", "age": 36}`))
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := user.Validate(value); err != nil {
		fmt.Println(err)
		return
	}

	typed, err := user.Unmarshal(value)
	if err != nil {
		fmt.Println(err)
		return
	}

	result := typed.(map[string]any)
	fmt.Printf("%s is %d\n", result["name"], result["age"])
	// Output: ada is 36
}

// ExampleWithStrict shows text-transport coercion: query parameters arrive as
// strings and are cast before unmarshalling in non-strict mode.
func ExampleWithStrict() {
	limit := oaschema.MustNew(oaschema.KindInteger)

	cast, err := limit.Cast("25")
	if err != nil {
		fmt.Println(err)
		return
	}

	typed, err := limit.Unmarshal(cast, oaschema.WithStrict(false))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%T %v\n", typed, typed)
	// Output: int64 25
}

// ExampleWithWarnFunc shows how ambiguous oneOf matches surface as warnings
// while the first declared alternative wins.
func ExampleWithWarnFunc() {
	amount := oaschema.MustNew(oaschema.KindAny, oaschema.WithOneOf(
		oaschema.MustNew(oaschema.KindInteger),
		oaschema.MustNew(oaschema.KindNumber),
	))

	typed, err := amount.Unmarshal(int64(5), oaschema.WithWarnFunc(func(w oaschema.Warning) {
		fmt.Println("warning:", w.Code)
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%T %v\n", typed, typed)
	// Output:
	// warning: oneof_ambiguous
	// int64 5
}
