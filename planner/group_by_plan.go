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

package planner

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/rulego/pivotview/aggregator"
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/operator"
	"github.com/rulego/pivotview/types"
)

type GroupByPlan struct {
	*BaseLogicalPlan
	explain string
}

func (p *GroupByPlan) New() types.LogicalPlan {
	return &GroupByPlan{BaseLogicalPlan: p.fork()}
}

func (p *GroupByPlan) Plan(config *types.Config, table *dataset.Table) error {
	pivots, err := resolvePivots(config, table)
	if err != nil {
		return err
	}

	columns := table.Columns()
	accumulators := make([]aggregator.Accumulator, len(columns))
	var aggregated []string
	for i, col := range columns {
		accumulators[i] = aggregator.FromAggregate(config.Aggregates[col])
		if accumulators[i] != aggregator.Noop {
			aggregated = append(aggregated, fmt.Sprintf("%s(%s)", accumulators[i], col))
		}
	}
	// 聚合配置中不存在的列直接忽略
	names := maps.Keys(config.Aggregates)
	slices.Sort(names)
	for _, name := range names {
		if _, ok := table.ColumnIndex(name); !ok {
			p.log().Warn("ignoring aggregate for unknown column %q", name)
		}
	}

	p.AddOperators(&operator.GroupByOp{
		BaseOp:       p.baseOp(),
		PivotIndices: pivots,
		Accumulators: accumulators,
	})
	if len(pivots) > 0 {
		p.AddOperators(&operator.TotalsOp{
			BaseOp:       p.baseOp(),
			Depth:        len(pivots),
			Accumulators: aggregator.TotalAccumulators(accumulators),
		})
	}
	p.explain = fmt.Sprintf("GroupBy(%s; %s)", strings.Join(config.RowPivots, ", "), strings.Join(aggregated, ", "))
	return nil
}

func (p *GroupByPlan) Explain() string {
	return p.explain
}

func (p *GroupByPlan) Type() string {
	return "GroupByPlan"
}
