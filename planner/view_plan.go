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

// viewPlans 视图子计划原型，每次构建通过 New 创建新实例
// 顺序不能乱，顺序会影响执行结果
var viewPlans = []types.LogicalPlan{
	&FilterPlan{BaseLogicalPlan: &BaseLogicalPlan{}},
	&OrderByPlan{BaseLogicalPlan: &BaseLogicalPlan{}},
	&GroupByPlan{BaseLogicalPlan: &BaseLogicalPlan{}},
	&ProjectPlan{BaseLogicalPlan: &BaseLogicalPlan{}},
}

// ViewPlan is the root plan of one view build.
type ViewPlan struct {
	*BaseLogicalPlan
}

// NewViewPlan creates a root plan with fresh children sharing options.
func NewViewPlan(options Options) *ViewPlan {
	plan := &ViewPlan{BaseLogicalPlan: NewBaseLogicalPlan(options)}
	for _, proto := range viewPlans {
		child := proto.New()
		if base, ok := child.(interface{ setOptions(Options) }); ok {
			base.setOptions(options)
		}
		plan.AddChildren(child)
	}
	return plan
}

func (p *BaseLogicalPlan) setOptions(options Options) {
	p.options = options
}

func (p *ViewPlan) New() types.LogicalPlan {
	return NewViewPlan(p.options)
}

func (p *ViewPlan) Plan(config *types.Config, table *dataset.Table) error {
	for _, plan := range p.children {
		if err := plan.Plan(config, table); err != nil {
			return err
		}
	}
	return nil
}

func (p *ViewPlan) Explain() string {
	var parts []string
	for _, plan := range p.children {
		if s := plan.Explain(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " -> ")
}

func (p *ViewPlan) Type() string {
	return "ViewPlan"
}

// CreateViewPlan plans a view of table and returns the plan with a context
// ready to run it.
func CreateViewPlan(config *types.Config, table *dataset.Table, options Options) (*ViewPlan, *operator.Context, error) {
	if config == nil {
		config = &types.Config{}
	}
	plan := NewViewPlan(options)
	if err := plan.Plan(config, table); err != nil {
		return nil, nil, err
	}
	plan.log().Debug("view plan: %s", plan.Explain())
	return plan, operator.NewContext(table), nil
}
