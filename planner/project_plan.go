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

package planner

import (
	"strings"

	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/operator"
	"github.com/rulego/pivotview/types"
)

type ProjectPlan struct {
	*BaseLogicalPlan
	columns []string
}

func (p *ProjectPlan) New() types.LogicalPlan {
	return &ProjectPlan{BaseLogicalPlan: p.fork()}
}

func (p *ProjectPlan) Plan(config *types.Config, table *dataset.Table) error {
	columns := make([]string, 0, len(config.Columns))
	for _, col := range config.Columns {
		if _, err := resolveColumn(table, "columns", col); err != nil {
			if !p.options.LenientColumns {
				return err
			}
			p.log().Warn("dropping unknown output column %q", col)
			continue
		}
		columns = append(columns, col)
	}
	p.columns = columns
	p.AddOperators(&operator.ProjectOp{BaseOp: p.baseOp(), Columns: columns})
	return nil
}

func (p *ProjectPlan) Explain() string {
	return "Project(" + strings.Join(p.columns, ", ") + ")"
}

func (p *ProjectPlan) Type() string {
	return "ProjectPlan"
}
