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

package operator

import (
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/types"
)

var _ types.ViewContext = (*Context)(nil)

// Context carries one view build through the operators. It starts with the
// table's rows; operators replace slices and never write into the table.
type Context struct {
	table      *dataset.Table
	rows       []dataset.Row
	result     []dataset.PivotRow
	projection []string
}

func NewContext(table *dataset.Table) *Context {
	return &Context{table: table, rows: table.Rows()}
}

func (c *Context) Table() *dataset.Table { return c.table }

func (c *Context) Rows() []dataset.Row { return c.rows }

func (c *Context) SetRows(rows []dataset.Row) { c.rows = rows }

func (c *Context) Result() []dataset.PivotRow { return c.result }

func (c *Context) SetResult(rows []dataset.PivotRow) { c.result = rows }

func (c *Context) Projection() []string { return c.projection }

func (c *Context) SetProjection(columns []string) { c.projection = columns }

// PivotTable returns the grouped rows keyed by the table's columns.
func (c *Context) PivotTable() *dataset.PivotTable {
	return &dataset.PivotTable{Columns: c.table.Columns(), Rows: c.result}
}
