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
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/logger"
	"github.com/rulego/pivotview/operator"
	"github.com/rulego/pivotview/types"
)

// Options 计划选项，由所有子计划共享
type Options struct {
	Logger logger.Logger
	// LenientColumns drops unknown output columns instead of failing.
	LenientColumns bool
}

type BaseLogicalPlan struct {
	options Options
	// operators 计划的实际处理逻辑
	operators []types.Operator
	// children 子计划
	children []types.LogicalPlan
}

func NewBaseLogicalPlan(options Options) *BaseLogicalPlan {
	return &BaseLogicalPlan{options: options}
}

// fork returns an empty plan base with the same options.
func (p *BaseLogicalPlan) fork() *BaseLogicalPlan {
	return NewBaseLogicalPlan(p.options)
}

func (p *BaseLogicalPlan) log() logger.Logger {
	if p.options.Logger == nil {
		return logger.GetDefault()
	}
	return p.options.Logger
}

func (p *BaseLogicalPlan) baseOp() *operator.BaseOp {
	return operator.NewBaseOp(p.log())
}

// AddOperators 添加操作
func (p *BaseLogicalPlan) AddOperators(operators ...types.Operator) {
	p.operators = append(p.operators, operators...)
}

// AddChildren 添加子计划
func (p *BaseLogicalPlan) AddChildren(plans ...types.LogicalPlan) {
	p.children = append(p.children, plans...)
}

// Apply 执行
func (p *BaseLogicalPlan) Apply(context types.ViewContext) error {
	for _, op := range p.operators {
		if err := op.Apply(context); err != nil {
			return err
		}
	}
	for _, plan := range p.children {
		if err := plan.Apply(context); err != nil {
			return err
		}
	}
	return nil
}

func (p *BaseLogicalPlan) AllOperators() []types.Operator {
	var operators []types.Operator
	operators = append(operators, p.operators...)
	for _, plan := range p.children {
		operators = append(operators, plan.AllOperators()...)
	}
	return operators
}

// resolveColumn maps a configured column name to its index. usage names the
// config field for the error message.
func resolveColumn(table *dataset.Table, usage, column string) (int, error) {
	idx, ok := table.ColumnIndex(column)
	if !ok {
		return 0, types.NewUnknownColumnError(usage, column)
	}
	return idx, nil
}

// resolvePivots resolves the row pivots in order.
func resolvePivots(config *types.Config, table *dataset.Table) ([]int, error) {
	indices := make([]int, len(config.RowPivots))
	for i, col := range config.RowPivots {
		idx, err := resolveColumn(table, "row_pivots", col)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}
