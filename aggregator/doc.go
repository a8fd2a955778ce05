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

/*
Package aggregator folds rows of scalar cells into a single row.

Every column of a view is paired with an Accumulator. The first row of a
group seeds one CellAccumulator per column, every following row is folded in
with Accumulate, and Materialize produces the aggregated row.

# Accumulators

	Sum    integer sum; any non-integer input turns the cell null for good
	Count  starts at 1 and counts the following non-null cells
	Low    integer minimum, non-integer inputs are ignored
	High   integer maximum, non-integer inputs are ignored
	Noop   keeps the first cell of the group

Subtotal and grand-total rows fold already aggregated rows, so they use the
accumulator returned by Total: Count becomes Sum, the others are unchanged.

# Usage

	accs := []Accumulator{Noop, Sum}
	agg := NewRowAggregator(dataset.Row{dataset.NewString("x"), dataset.NewInteger(1)}, accs)
	agg = agg.Accumulate(dataset.Row{dataset.NewString("x"), dataset.NewInteger(2)})
	row := agg.Materialize() // ["x", 3]

A RowAggregator is immutable: Accumulate returns a new aggregator and leaves
the receiver untouched, so partially folded groups can be shared freely.
*/
package aggregator
