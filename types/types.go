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

package types

import (
	"github.com/rulego/pivotview/dataset"
)

// ViewContext 一次视图构建的上下文，操作器按顺序读写其中的数据
type ViewContext interface {
	// Table 源数据表，只读
	Table() *dataset.Table
	// Rows 当前保留的行，过滤和排序后会被替换
	Rows() []dataset.Row
	SetRows(rows []dataset.Row)
	// Result 分组后的结果行
	Result() []dataset.PivotRow
	SetResult(rows []dataset.PivotRow)
	// Projection 输出列
	Projection() []string
	SetProjection(columns []string)
}

// Operator 操作器接口
type Operator interface {
	// Apply 执行
	Apply(context ViewContext) error
}

// LogicalPlan 逻辑计划接口
type LogicalPlan interface {
	New() LogicalPlan
	// Plan resolves the config against the table and creates the operators.
	Plan(config *Config, table *dataset.Table) error
	Apply(context ViewContext) error
	Explain() string
	Type() string
	// AllOperators 获取所有操作器
	AllOperators() []Operator
}
