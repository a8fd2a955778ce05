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

package operator

import (
	"github.com/rulego/pivotview/aggregator"
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/types"
)

// GroupByOp folds sorted rows into one row per pivot key. The rows must
// already be ordered by the pivot columns so that each group is a single
// contiguous run.
type GroupByOp struct {
	*BaseOp
	// PivotIndices 分组列下标，从外到内
	PivotIndices []int
	// Accumulators 每一列的聚合方式
	Accumulators []aggregator.Accumulator
}

func (o *GroupByOp) Apply(context types.ViewContext) error {
	rows := context.Rows()
	if len(o.PivotIndices) == 0 {
		// 无分组：每行原样输出，分组键为空
		result := make([]dataset.PivotRow, len(rows))
		for i, row := range rows {
			result[i] = dataset.PivotRow{Key: dataset.RowKey{}, Values: row.Clone()}
		}
		context.SetResult(result)
		return nil
	}

	result := make([]dataset.PivotRow, 0)
	var (
		key dataset.RowKey
		agg *aggregator.RowAggregator
	)
	for _, row := range rows {
		rowKey := row.Key(o.PivotIndices)
		if agg != nil && rowKey.Equal(key) {
			agg = agg.Accumulate(row)
			continue
		}
		if agg != nil {
			result = append(result, dataset.PivotRow{Key: key, Values: agg.Materialize()})
		}
		key, agg = rowKey, aggregator.NewRowAggregator(row, o.Accumulators)
	}
	if agg != nil {
		result = append(result, dataset.PivotRow{Key: key, Values: agg.Materialize()})
	}
	o.log().Debug("grouped %d rows into %d groups", len(rows), len(result))
	context.SetResult(result)
	return nil
}
