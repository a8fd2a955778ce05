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

package pivotview

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/types"
	"github.com/rulego/pivotview/utils/table"
)

// TotalLabel is printed in the row path column of the grand total.
const TotalLabel = "TOTAL"

// View 一次构建的结果，只读
type View struct {
	pivoted    bool
	numColumns int
	columns    []string
	result     *dataset.PivotTable
}

func newView(config *types.Config, source *dataset.Table, result *dataset.PivotTable, columns []string) *View {
	return &View{
		pivoted:    config.IsPivoted(),
		numColumns: len(source.Columns()),
		columns:    columns,
		result:     result,
	}
}

// ToColumns 按列返回结果：先是 __ROW_PATH__，然后是请求的输出列，顺序与配置一致。
// 每个值都是与结果行一一对应的切片。
func (v *View) ToColumns() *ordereddict.Dict {
	out := ordereddict.NewDict()
	out.Set(dataset.RowPathColumn, v.RowPaths())
	projected := v.result.Project(v.columns)
	for _, col := range projected.Keys() {
		values, _ := projected.Get(col)
		out.Set(col, values)
	}
	return out
}

// Columns 返回输出列名，分组时以 __ROW_PATH__ 开头。
func (v *View) Columns() []string {
	columns := make([]string, 0, len(v.columns)+1)
	if v.pivoted {
		columns = append(columns, dataset.RowPathColumn)
	}
	return append(columns, v.columns...)
}

// NumRows 结果行数，包含小计和总计行。
func (v *View) NumRows() int { return v.result.Len() }

// NumColumns 源数据表的列数。
func (v *View) NumColumns() int { return v.numColumns }

// RowPaths 每个结果行的分组键，总计行为空。
func (v *View) RowPaths() []dataset.RowKey { return v.result.RowPaths() }

// PivotTable 返回完整的结果，包含所有源列。
func (v *View) PivotTable() *dataset.PivotTable { return v.result }

func (v *View) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToColumns())
}

// PrintTable 以文本表格输出视图。总计行显示为 TOTAL，其他行按深度缩进并显示最内层的分组值，
// 空值显示为空白。
func (v *View) PrintTable(w io.Writer) error {
	columns := v.Columns()
	projected := v.result.Project(v.columns)
	rows := make([][]string, v.NumRows())
	for r, row := range v.result.Rows {
		cells := make([]string, 0, len(columns))
		if v.pivoted {
			cells = append(cells, rowPathLabel(row.Key))
		}
		for _, col := range projected.Keys() {
			values, _ := projected.Get(col)
			cells = append(cells, displayCell(values.([]dataset.CellValue)[r]))
		}
		rows[r] = cells
	}
	return table.FprintTable(w, columns, rows)
}

func rowPathLabel(key dataset.RowKey) string {
	if key.Depth() == 0 {
		return TotalLabel
	}
	return strings.Repeat("  ", key.Depth()-1) + displayCell(key[key.Depth()-1])
}

func displayCell(cell dataset.CellValue) string {
	if cell.IsNull() {
		return ""
	}
	return cell.String()
}
