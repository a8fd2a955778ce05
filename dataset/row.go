/*
 * Copyright 2024 The RuleGo Authors.
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
	"github.com/Velocidex/ordereddict"
)

// RowPathColumn is the pseudo column carrying each result row's RowKey.
const RowPathColumn = "__ROW_PATH__"

// Row is one record aligned to a table's column list.
type Row []CellValue

// Clone returns a copy that shares no backing array with r.
func (r Row) Clone() Row {
	cp := make(Row, len(r))
	copy(cp, r)
	return cp
}

// Key builds the RowKey made of the cells at the given column indices.
func (r Row) Key(indices []int) RowKey {
	key := make(RowKey, len(indices))
	for i, idx := range indices {
		key[i] = r[idx]
	}
	return key
}

// RowKey is the ordered list of pivot values identifying a group. The empty
// key identifies the grand total.
type RowKey []CellValue

// Depth is the number of pivot values in the key.
func (k RowKey) Depth() int { return len(k) }

// EqualAtDepth reports whether both keys have the same non-zero length and
// agree on their first depth values. Empty keys never compare equal, so
// grand-total rows are never merged into a group.
func (k RowKey) EqualAtDepth(other RowKey, depth int) bool {
	if len(k) != len(other) || len(k) == 0 {
		return false
	}
	if depth > len(k) {
		depth = len(k)
	}
	for i := 0; i < depth; i++ {
		if !k[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Equal compares the keys over their full length.
func (k RowKey) Equal(other RowKey) bool {
	return k.EqualAtDepth(other, len(k))
}

// Truncate returns a copy of the first depth values.
func (k RowKey) Truncate(depth int) RowKey {
	if depth > len(k) {
		depth = len(k)
	}
	cp := make(RowKey, depth)
	copy(cp, k[:depth])
	return cp
}

// PivotRow is an aggregate over all rows sharing Key, or a plain row when no
// pivots are configured.
type PivotRow struct {
	Key    RowKey
	Values Row
}

// PivotTable is the ordered result of one view build.
type PivotTable struct {
	Columns []string
	Rows    []PivotRow
}

// Len returns the number of result rows, subtotals included.
func (t *PivotTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// RowPaths returns every row's key in row order.
func (t *PivotTable) RowPaths() []RowKey {
	paths := make([]RowKey, 0, t.Len())
	if t == nil {
		return paths
	}
	for _, row := range t.Rows {
		paths = append(paths, row.Key)
	}
	return paths
}

// Project builds a column-major view of the requested columns, in request
// order. Columns the table does not have are skipped; duplicates are
// emitted once.
func (t *PivotTable) Project(columns []string) *ordereddict.Dict {
	result := ordereddict.NewDict()
	if t == nil {
		return result
	}
	index := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		index[col] = i
	}
	for _, col := range columns {
		i, ok := index[col]
		if !ok {
			continue
		}
		if _, seen := result.Get(col); seen {
			continue
		}
		values := make([]CellValue, len(t.Rows))
		for r, row := range t.Rows {
			values[r] = row.Values[i]
		}
		result.Set(col, values)
	}
	return result
}
