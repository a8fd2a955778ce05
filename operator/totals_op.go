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
	"github.com/rulego/pivotview/aggregator"
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/types"
)

// TotalsOp adds a subtotal row in front of every group at each pivot depth
// above the leaves, finishing with the grand total as the first row.
type TotalsOp struct {
	*BaseOp
	// Depth 分组列数量
	Depth int
	// Accumulators 合计使用的聚合方式，见 aggregator.Accumulator.Total
	Accumulators []aggregator.Accumulator
}

func (o *TotalsOp) Apply(context types.ViewContext) error {
	result := context.Result()
	if len(result) == 0 {
		return nil
	}
	for depth := o.Depth - 1; depth >= 0; depth-- {
		result = o.totalize(result, depth)
	}
	o.log().Debug("added totals, %d result rows", len(result))
	context.SetResult(result)
	return nil
}

// totalize groups the rows whose key has depth+1 values by their first depth
// values. Rows with longer keys sit between them and stay with the run they
// follow. Each run is preceded by its total keyed by the shared prefix.
func (o *TotalsOp) totalize(rows []dataset.PivotRow, depth int) []dataset.PivotRow {
	out := make([]dataset.PivotRow, 0, len(rows)+len(rows)/2+1)
	var (
		runStart = -1
		copied   = 0
		runKey   dataset.RowKey
		agg      *aggregator.RowAggregator
	)
	flush := func(end int) {
		out = append(out, rows[copied:runStart]...)
		out = append(out, dataset.PivotRow{Key: runKey.Truncate(depth), Values: agg.Materialize()})
		out = append(out, rows[runStart:end]...)
		copied = end
	}
	for i, row := range rows {
		if row.Key.Depth() != depth+1 {
			continue
		}
		if runStart >= 0 && row.Key.EqualAtDepth(runKey, depth) {
			agg = agg.Accumulate(row.Values)
			continue
		}
		if runStart >= 0 {
			flush(i)
		}
		runStart, runKey = i, row.Key
		agg = aggregator.NewRowAggregator(row.Values, o.Accumulators)
	}
	if runStart < 0 {
		return rows
	}
	flush(len(rows))
	return out
}
