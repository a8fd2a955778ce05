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
	"strings"

	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/operator"
	"github.com/rulego/pivotview/types"
)

type OrderByPlan struct {
	*BaseLogicalPlan
	explain []string
}

func (p *OrderByPlan) New() types.LogicalPlan {
	return &OrderByPlan{BaseLogicalPlan: p.fork()}
}

// Plan builds the effective sort: one descriptor per pivot column, using the
// order configured for that column or ascending, then the configured
// descriptors themselves.
func (p *OrderByPlan) Plan(config *types.Config, table *dataset.Table) error {
	if _, err := resolvePivots(config, table); err != nil {
		return err
	}
	effective := make([]types.SortDescriptor, 0, len(config.RowPivots)+len(config.Sort))
	for _, pivot := range config.RowPivots {
		order := types.SortAsc
		for _, s := range config.Sort {
			if s.Column == pivot {
				order = s.Order
				break
			}
		}
		effective = append(effective, types.SortDescriptor{Column: pivot, Order: order})
	}
	effective = append(effective, config.Sort...)

	sort := make([]operator.IndexedSortDescriptor, 0, len(effective))
	for _, s := range effective {
		idx, err := resolveColumn(table, "sort", s.Column)
		if err != nil {
			return err
		}
		sort = append(sort, operator.IndexedSortDescriptor{Index: idx, Order: s.Order})
		p.explain = append(p.explain, s.Column+" "+string(s.Order))
	}
	if len(sort) > 0 {
		p.AddOperators(&operator.OrderByOp{BaseOp: p.baseOp(), Sort: sort})
	}
	return nil
}

func (p *OrderByPlan) Explain() string {
	if len(p.explain) == 0 {
		return ""
	}
	return "OrderBy(" + strings.Join(p.explain, ", ") + ")"
}

func (p *OrderByPlan) Type() string {
	return "OrderByPlan"
}
