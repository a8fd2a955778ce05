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
	"bytes"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// ErrInvalidTable is the root cause of every table construction failure.
var ErrInvalidTable = errors.New("invalid table")

// Table is a row-major dataset with a unique, ordered column list.
// A Table is read-only once built; view builds never reorder its rows, so a
// single Table can back any number of concurrent view builds.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewTable validates the column list and every row's width. The table takes
// ownership of the rows; callers must not modify them afterwards.
func NewTable(columns []string, rows []Row) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col == "" {
			return nil, errors.Wrapf(ErrInvalidTable, "column %d has an empty name", i)
		}
		if _, dup := index[col]; dup {
			return nil, errors.Wrapf(ErrInvalidTable, "duplicate column %q", col)
		}
		index[col] = i
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.Wrapf(ErrInvalidTable, "row %d has %d cells, expected %d", i, len(row), len(columns))
		}
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    append([]Row(nil), rows...),
	}, nil
}

// TableFromRecords builds a table from objects. The columns are the keys of
// the first record in sorted order; keys missing from later records read as
// null and keys absent from the first record are ignored.
func TableFromRecords(records []map[string]interface{}) (*Table, error) {
	if len(records) == 0 {
		return NewTable(nil, nil)
	}
	columns := make([]string, 0, len(records[0]))
	for k := range records[0] {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	rows := make([]Row, 0, len(records))
	for i, record := range records {
		row := make(Row, len(columns))
		for c, col := range columns {
			cell, err := FromInterface(record[col])
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidTable, "row %d column %q: %v", i, col, err)
			}
			row[c] = cell
		}
		rows = append(rows, row)
	}
	return NewTable(columns, rows)
}

// TableFromJSON parses a JSON array of objects, see TableFromRecords.
func TableFromJSON(data []byte) (*Table, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var items []interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, errors.Wrapf(ErrInvalidTable, "data should be a JSON array: %v", err)
	}
	records := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.Wrapf(ErrInvalidTable, "element %d is %T, the elements of the array should be objects", i, item)
		}
		records = append(records, record)
	}
	return TableFromRecords(records)
}

// Size returns the number of rows.
func (t *Table) Size() int { return len(t.rows) }

// Columns returns a copy of the column list.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// ColumnIndex resolves a column name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Rows exposes the table's rows. The slice and its rows must be treated as
// read-only.
func (t *Table) Rows() []Row { return t.rows }
