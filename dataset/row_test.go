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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowKeyEqualAtDepth(t *testing.T) {
	xa := RowKey{NewString("x"), NewString("a")}
	xb := RowKey{NewString("x"), NewString("b")}
	x := RowKey{NewString("x")}

	assert.True(t, xa.EqualAtDepth(xb, 0))
	assert.True(t, xa.EqualAtDepth(xb, 1))
	assert.False(t, xa.EqualAtDepth(xb, 2))
	assert.False(t, xa.Equal(xb))
	assert.True(t, xa.Equal(RowKey{NewString("x"), NewString("a")}))

	// lengths must match even when the prefix agrees
	assert.False(t, xa.EqualAtDepth(x, 1))

	// empty keys are never equal, not even to themselves
	assert.False(t, RowKey{}.Equal(RowKey{}))
	assert.False(t, RowKey(nil).EqualAtDepth(RowKey{}, 0))

	// nulls inside keys compare equal
	assert.True(t, RowKey{Null}.Equal(RowKey{Null}))
}

func TestRowKeyTruncate(t *testing.T) {
	key := RowKey{NewString("x"), NewInteger(1)}
	short := key.Truncate(1)
	assert.Equal(t, RowKey{NewString("x")}, short)
	assert.Equal(t, 1, short.Depth())
	assert.Equal(t, RowKey{}, key.Truncate(0))
	assert.Equal(t, key, key.Truncate(5))

	short[0] = NewString("changed")
	assert.Equal(t, NewString("x"), key[0])
}

func TestRowKeyAndClone(t *testing.T) {
	row := Row{NewString("x"), NewInteger(1), NewBool(true)}
	assert.Equal(t, RowKey{NewBool(true), NewString("x")}, row.Key([]int{2, 0}))

	cp := row.Clone()
	cp[0] = Null
	assert.Equal(t, NewString("x"), row[0])
}

func TestPivotTableProject(t *testing.T) {
	pt := &PivotTable{
		Columns: []string{"a", "b"},
		Rows: []PivotRow{
			{Key: RowKey{}, Values: Row{NewString("x"), NewInteger(8)}},
			{Key: RowKey{NewString("x")}, Values: Row{NewString("x"), NewInteger(3)}},
		},
	}

	columns := pt.Project([]string{"b", "missing", "a", "b"})
	assert.Equal(t, []string{"b", "a"}, columns.Keys())

	b, ok := columns.Get("b")
	require.True(t, ok)
	assert.Equal(t, []CellValue{NewInteger(8), NewInteger(3)}, b)

	assert.Equal(t, []RowKey{{}, {NewString("x")}}, pt.RowPaths())
	assert.Equal(t, 2, pt.Len())

	data, err := json.Marshal(columns)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":[8,3],"a":["x","x"]}`, string(data))

	var empty *PivotTable
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.RowPaths())
	assert.Empty(t, empty.Project([]string{"a"}).Keys())
}
