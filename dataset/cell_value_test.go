/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dataset

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellValueCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     CellValue
		expected int
	}{
		{"integer less", NewInteger(1), NewInteger(2), -1},
		{"integer equal", NewInteger(7), NewInteger(7), 0},
		{"integer greater", NewInteger(-1), NewInteger(-5), 1},
		{"string less", NewString("apple"), NewString("banana"), -1},
		{"string equal", NewString("x"), NewString("x"), 0},
		{"bool false before true", NewBool(false), NewBool(true), -1},
		{"bool true after false", NewBool(true), NewBool(false), 1},
		{"bool equal", NewBool(true), NewBool(true), 0},
		{"integer vs string", NewInteger(1), NewString("1"), 1},
		{"string vs integer", NewString("1"), NewInteger(1), 1},
		{"null vs integer", Null, NewInteger(1), 1},
		{"integer vs null", NewInteger(1), Null, 1},
		{"null vs null", Null, Null, 1},
		{"bool vs string", NewBool(true), NewString("true"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
		})
	}
}

func TestCellValueEqual(t *testing.T) {
	assert.True(t, NewInteger(3).Equal(NewInteger(3)))
	assert.False(t, NewInteger(3).Equal(NewInteger(4)))
	assert.True(t, NewString("a").Equal(NewString("a")))
	assert.False(t, NewString("1").Equal(NewInteger(1)))
	assert.True(t, Null.Equal(Null))
	assert.True(t, Null.Equal(CellValue{}))
	assert.False(t, Null.Equal(NewBool(false)))
	assert.False(t, NewBool(false).Equal(NewInteger(0)))
}

func TestCellValueMatches(t *testing.T) {
	tests := []struct {
		name     string
		cell     CellValue
		op       Operation
		value    CellValue
		expected bool
	}{
		{"equal strings", NewString("x"), OpEquals, NewString("x"), true},
		{"different strings", NewString("x"), OpEquals, NewString("y"), false},
		{"equal integers", NewInteger(1), OpEquals, NewInteger(1), true},
		{"equal bools", NewBool(true), OpEquals, NewBool(true), true},
		{"different bools", NewBool(true), OpEquals, NewBool(false), false},
		{"text never matches integer", NewString("1"), OpEquals, NewInteger(1), false},
		{"integer never matches text", NewInteger(1), OpEquals, NewString("1"), false},
		{"null cell", Null, OpEquals, NewString(""), false},
		{"null value", Null, OpEquals, Null, false},
		{"unsupported operation", NewInteger(1), Operation(">"), NewInteger(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cell.Matches(tt.op, tt.value))
		})
	}
}

func TestParseOperation(t *testing.T) {
	for _, s := range []string{"equals", "==", "eqeq", " EQUALS "} {
		op, err := ParseOperation(s)
		require.NoError(t, err, s)
		assert.Equal(t, OpEquals, op)
	}
	_, err := ParseOperation("contains")
	assert.Error(t, err)
}

func TestCellValueJSON(t *testing.T) {
	data, err := json.Marshal([]CellValue{NewInteger(-3), NewString("a\"b"), NewBool(true), Null})
	require.NoError(t, err)
	assert.Equal(t, `[-3,"a\"b",true,null]`, string(data))

	var cells []CellValue
	require.NoError(t, json.Unmarshal([]byte(`[1, "x", false, null, 4294967295, 18446744073709551615, 2.0]`), &cells))
	assert.Equal(t, []CellValue{
		NewInteger(1),
		NewString("x"),
		NewBool(false),
		Null,
		NewInteger(4294967295),
		NewInteger(-1),
		NewInteger(2),
	}, cells)

	var cell CellValue
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &cell))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &cell))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &cell))

	for _, literal := range []string{`1e20`, `9.3e18`, `-1e19`, `18446744073709551616`, `-9223372036854775809`} {
		assert.Error(t, json.Unmarshal([]byte(literal), &cell), literal)
	}
	require.NoError(t, json.Unmarshal([]byte(`-9223372036854775808`), &cell))
	assert.Equal(t, NewInteger(math.MinInt64), cell)
}

func TestFromInterface(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected CellValue
	}{
		{"nil", nil, Null},
		{"int8", int8(-8), NewInteger(-8)},
		{"int16", int16(16), NewInteger(16)},
		{"int32", int32(32), NewInteger(32)},
		{"uint8", uint8(8), NewInteger(8)},
		{"uint16", uint16(16), NewInteger(16)},
		{"uint32", uint32(32), NewInteger(32)},
		{"uint64", uint64(64), NewInteger(64)},
		{"int", 5, NewInteger(5)},
		{"json number", json.Number("12"), NewInteger(12)},
		{"string", "s", NewString("s")},
		{"bool", true, NewBool(true)},
		{"cell", NewString("c"), NewString("c")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromInterface(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := FromInterface(3.25)
	assert.Error(t, err)
	_, err = FromInterface([]int{1})
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromInterface(map[string]int{}) })
}

func TestCellValueAccessors(t *testing.T) {
	i, ok := NewInteger(9).AsInteger()
	assert.True(t, ok)
	assert.Equal(t, int64(9), i)
	_, ok = NewString("9").AsInteger()
	assert.False(t, ok)

	s, ok := NewString("v").AsString()
	assert.True(t, ok)
	assert.Equal(t, "v", s)

	b, ok := NewBool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, KindNull, CellValue{}.Kind())
	assert.Nil(t, Null.Interface())
	assert.Equal(t, int64(4), NewInteger(4).Interface())
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, `String("x")`, NewString("x").GoString())
}
