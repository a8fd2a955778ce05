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

package aggregator

import (
	"fmt"

	"github.com/rulego/pivotview/dataset"
)

// CellAccumulator is the running value of one column.
type CellAccumulator struct {
	Value       dataset.CellValue
	Accumulator Accumulator
}

// NewCellAccumulator seeds a cell accumulator from the group's first cell.
func NewCellAccumulator(cell dataset.CellValue, acc Accumulator) CellAccumulator {
	return CellAccumulator{Value: acc.Seed(cell), Accumulator: acc}
}

// Accumulate returns the accumulator after folding cell in.
func (c CellAccumulator) Accumulate(cell dataset.CellValue) CellAccumulator {
	return CellAccumulator{Value: c.Accumulator.Accumulate(c.Value, cell), Accumulator: c.Accumulator}
}

// WidthMismatchError is the panic value raised when a row does not line up
// with the aggregator's columns.
type WidthMismatchError struct {
	Expected int
	Got      int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("aggregator: row has %d cells, expected %d", e.Got, e.Expected)
}

// RowAggregator folds rows of a fixed width column by column.
type RowAggregator struct {
	cells []CellAccumulator
}

// NewRowAggregator seeds an aggregator from the first row of a group.
// It panics with *WidthMismatchError when row and accumulators differ in
// length.
func NewRowAggregator(row dataset.Row, accumulators []Accumulator) *RowAggregator {
	if len(row) != len(accumulators) {
		panic(&WidthMismatchError{Expected: len(accumulators), Got: len(row)})
	}
	cells := make([]CellAccumulator, len(row))
	for i, cell := range row {
		cells[i] = NewCellAccumulator(cell, accumulators[i])
	}
	return &RowAggregator{cells: cells}
}

// Accumulate returns a new aggregator with row folded in.
func (r *RowAggregator) Accumulate(row dataset.Row) *RowAggregator {
	if len(row) != len(r.cells) {
		panic(&WidthMismatchError{Expected: len(r.cells), Got: len(row)})
	}
	cells := make([]CellAccumulator, len(r.cells))
	for i, c := range r.cells {
		cells[i] = c.Accumulate(row[i])
	}
	return &RowAggregator{cells: cells}
}

// Width is the number of columns.
func (r *RowAggregator) Width() int { return len(r.cells) }

// Cells returns a copy of the per-column state.
func (r *RowAggregator) Cells() []CellAccumulator {
	return append([]CellAccumulator(nil), r.cells...)
}

// Materialize returns the current values, one per column.
func (r *RowAggregator) Materialize() dataset.Row {
	row := make(dataset.Row, len(r.cells))
	for i, c := range r.cells {
		row[i] = c.Value
	}
	return row
}

// TotalAccumulators maps every accumulator to its Total form.
func TotalAccumulators(accumulators []Accumulator) []Accumulator {
	totals := make([]Accumulator, len(accumulators))
	for i, acc := range accumulators {
		totals[i] = acc.Total()
	}
	return totals
}
