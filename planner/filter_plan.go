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

	"github.com/pkg/errors"
	"github.com/rulego/pivotview/condition"
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/operator"
	"github.com/rulego/pivotview/types"
)

type FilterPlan struct {
	*BaseLogicalPlan
	explain []string
}

func (p *FilterPlan) New() types.LogicalPlan {
	return &FilterPlan{BaseLogicalPlan: p.fork()}
}

// Plan AND-combines the filter descriptors, followed by the where
// expression when one is configured.
func (p *FilterPlan) Plan(config *types.Config, table *dataset.Table) error {
	var conditions condition.And
	for _, f := range config.Filter {
		idx, err := resolveColumn(table, "filter", f.Column)
		if err != nil {
			return err
		}
		conditions = append(conditions, condition.NewFilterCondition(idx, f.Operation, f.Value))
		p.explain = append(p.explain, fmt.Sprintf("%s %s %s", f.Column, f.Operation, f.Value.GoString()))
	}
	if config.Where != "" {
		cond, err := condition.NewExprCondition(config.Where, table.Columns())
		if err != nil {
			return types.NewConfigParseError(errors.Wrap(err, "where"))
		}
		conditions = append(conditions, cond)
		p.explain = append(p.explain, config.Where)
	}
	if len(conditions) > 0 {
		p.AddOperators(&operator.FilterOp{BaseOp: p.baseOp(), Condition: conditions})
	}
	return nil
}

func (p *FilterPlan) Explain() string {
	if len(p.explain) == 0 {
		return ""
	}
	return "Filter(" + strings.Join(p.explain, " AND ") + ")"
}

func (p *FilterPlan) Type() string {
	return "FilterPlan"
}
