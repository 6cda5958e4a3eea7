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
	"fmt"
	"reflect"
	"strings"
)

// Kind classifies a runtime value into the closed set of semantic kinds the
// engine understands. Values reaching the engine come from YAML or JSON
// parsing, so these kinds cover everything a collaborator can return.
type Kind int

// The semantic value kinds.
const (
	KindUnknown Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// KindOf returns the semantic kind of a value.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case []interface{}:
		return KindSequence
	case map[string]interface{}, map[interface{}]interface{}:
		return KindMapping
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	}

	return KindUnknown
}

// truthy reports whether a value is non-empty in the loose sense test
// results are judged by: nil, false, zero numbers, empty strings and empty
// collections are falsy, everything else is truthy.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return len(val) > 0
	}

	switch KindOf(v) {
	case KindInt:
		n, _ := toInt64(v)
		return n != 0
	case KindFloat:
		f, _ := toFloat64(v)
		return f != 0
	case KindSequence, KindMapping:
		return reflect.ValueOf(v).Len() > 0
	}

	return true
}

// equalValues reports deep equality with numeric unification, so an integer
// five equals a floating-point five regardless of the concrete Go type.
func equalValues(a, b interface{}) bool {
	if isNumeric(a) && isNumeric(b) {
		return numericEqual(a, b)
	}

	return reflect.DeepEqual(a, b)
}

// compareValues orders two values: -1, 0 or 1. Numbers order numerically,
// strings lexicographically. Anything else is incomparable.
func compareValues(a, b interface{}) (int, error) {
	if isNumeric(a) && isNumeric(b) {
		af, _ := toFloat64(a)
		bf, _ := toFloat64(b)

		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		}

		return 0, nil
	}

	as, aok := a.(string)

	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs), nil
	}

	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

// containsValue reports membership of expected in actual: substring for
// strings, element equality for sequences, key presence for mappings.
// Uncontainable actual values are simply not members.
func containsValue(actual, expected interface{}) bool {
	switch container := actual.(type) {
	case string:
		return strings.Contains(container, stringify(expected))
	case []interface{}:
		for _, item := range container {
			if equalValues(item, expected) {
				return true
			}
		}

		return false
	case map[string]interface{}:
		_, ok := container[stringify(expected)]
		return ok
	}

	if KindOf(actual) == KindSequence {
		rv := reflect.ValueOf(actual)
		for i := 0; i < rv.Len(); i++ {
			if equalValues(rv.Index(i).Interface(), expected) {
				return true
			}
		}
	}

	return false
}

func isNumeric(v interface{}) bool {
	k := KindOf(v)
	return k == KindInt || k == KindFloat
}

func numericEqual(a, b interface{}) bool {
	ai, aIsInt := toInt64(a)

	bi, bIsInt := toInt64(b)
	if aIsInt && bIsInt {
		return ai == bi
	}

	af, _ := toFloat64(a)
	bf, _ := toFloat64(b)

	return af == bf
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}

	return 0, false
}

func toFloat64(v interface{}) (float64, bool) {
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}

	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}

	return 0, false
}

// stringify renders a value the way failure messages and membership checks
// show it.
func stringify(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
