/*
Copyright 2025 The Saltcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert" //nolint:depguard // testify is widely used for testing
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  Kind
	}{
		{name: "nil", value: nil, want: KindNull},
		{name: "bool", value: true, want: KindBool},
		{name: "int", value: 5, want: KindInt},
		{name: "int64", value: int64(5), want: KindInt},
		{name: "uint8", value: uint8(5), want: KindInt},
		{name: "float64", value: 5.5, want: KindFloat},
		{name: "float32", value: float32(5.5), want: KindFloat},
		{name: "string", value: "hello", want: KindString},
		{name: "generic slice", value: []interface{}{1, 2}, want: KindSequence},
		{name: "string slice", value: []string{"a"}, want: KindSequence},
		{name: "generic map", value: map[string]interface{}{"a": 1}, want: KindMapping},
		{name: "untyped key map", value: map[interface{}]interface{}{1: 2}, want: KindMapping},
		{name: "string map", value: map[string]string{"a": "b"}, want: KindMapping},
		{name: "struct", value: struct{}{}, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.value))
		})
	}
}

func TestTruthy(t *testing.T) {
	t.Run("falsy values", func(t *testing.T) {
		for _, v := range []interface{}{nil, false, 0, int64(0), 0.0, "", []interface{}{}, map[string]interface{}{}} {
			assert.False(t, truthy(v), "%#v should be falsy", v)
		}
	})

	t.Run("truthy values", func(t *testing.T) {
		values := []interface{}{
			true, 1, -1, 0.5, "x", "False",
			[]interface{}{nil}, map[string]interface{}{"a": nil},
		}
		for _, v := range values {
			assert.True(t, truthy(v), "%#v should be truthy", v)
		}
	})
}

func TestEqualValues(t *testing.T) {
	t.Run("numeric values unify across concrete types", func(t *testing.T) {
		assert.True(t, equalValues(5, int64(5)))
		assert.True(t, equalValues(int64(5), 5.0))
		assert.True(t, equalValues(uint8(5), 5))
		assert.False(t, equalValues(5, 6))
		assert.False(t, equalValues(5.5, 5))
	})

	t.Run("text never equals a number", func(t *testing.T) {
		assert.False(t, equalValues("5", 5))
	})

	t.Run("collections compare deeply", func(t *testing.T) {
		assert.True(t, equalValues([]interface{}{"a", "b"}, []interface{}{"a", "b"}))
		assert.False(t, equalValues([]interface{}{"a"}, []interface{}{"b"}))
		assert.True(t, equalValues(map[string]interface{}{"a": "b"}, map[string]interface{}{"a": "b"}))
	})
}

func TestCompareValues(t *testing.T) {
	t.Run("numbers order numerically", func(t *testing.T) {
		c, err := compareValues(5, 7)
		assert.NoError(t, err)
		assert.Equal(t, -1, c)

		c, err = compareValues(7.5, 7)
		assert.NoError(t, err)
		assert.Equal(t, 1, c)

		c, err = compareValues(int64(7), 7)
		assert.NoError(t, err)
		assert.Equal(t, 0, c)
	})

	t.Run("strings order lexicographically", func(t *testing.T) {
		c, err := compareValues("abc", "abd")
		assert.NoError(t, err)
		assert.Equal(t, -1, c)
	})

	t.Run("mixed kinds are incomparable", func(t *testing.T) {
		_, err := compareValues("5", 5)
		assert.Error(t, err)

		_, err = compareValues(5, []interface{}{})
		assert.Error(t, err)
	})
}

func TestContainsValue(t *testing.T) {
	t.Run("substring of a string", func(t *testing.T) {
		assert.True(t, containsValue("hello world", "lo wo"))
		assert.True(t, containsValue("version 42", 42))
		assert.False(t, containsValue("hello", "bye"))
	})

	t.Run("element of a sequence", func(t *testing.T) {
		assert.True(t, containsValue([]interface{}{"prod", "dev", "qa"}, "dev"))
		assert.True(t, containsValue([]interface{}{1, 2, 3}, int64(2)))
		assert.False(t, containsValue([]interface{}{"prod", "qa"}, "dev"))
	})

	t.Run("element of a typed sequence", func(t *testing.T) {
		assert.True(t, containsValue([]string{"a", "b"}, "b"))
		assert.False(t, containsValue([]string{"a", "b"}, "c"))
	})

	t.Run("key of a mapping", func(t *testing.T) {
		assert.True(t, containsValue(map[string]interface{}{"dev": 1}, "dev"))
		assert.False(t, containsValue(map[string]interface{}{"dev": 1}, "prod"))
	})

	t.Run("uncontainable values have no members", func(t *testing.T) {
		assert.False(t, containsValue(5, 5))
		assert.False(t, containsValue(nil, "x"))
		assert.False(t, containsValue(true, true))
	})
}
