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

package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rulego/pivotview/dataset"
)

// Condition decides whether a row is kept.
type Condition interface {
	Evaluate(row dataset.Row) bool
}

// FilterCondition compares the cell at Index with Value.
type FilterCondition struct {
	Index     int
	Operation dataset.Operation
	Value     dataset.CellValue
}

func NewFilterCondition(index int, op dataset.Operation, value dataset.CellValue) *FilterCondition {
	return &FilterCondition{Index: index, Operation: op, Value: value}
}

func (fc *FilterCondition) Evaluate(row dataset.Row) bool {
	return row[fc.Index].Matches(fc.Operation, fc.Value)
}

// And holds when every condition holds. Evaluation stops at the first
// failing condition; an empty And keeps every row.
type And []Condition

func (a And) Evaluate(row dataset.Row) bool {
	for _, c := range a {
		if !c.Evaluate(row) {
			return false
		}
	}
	return true
}

// ExprCondition evaluates an expr-lang predicate with the row's cells bound
// to their column names. Null cells are nil.
type ExprCondition struct {
	program *vm.Program
	columns []string
}

// exprFunctions 注册到每个表达式中的辅助函数
var exprFunctions = []expr.Option{
	expr.Function("like_match", func(params ...any) (any, error) {
		if len(params) != 2 {
			return false, fmt.Errorf("like_match: want 2 arguments, got %d", len(params))
		}
		text, textOK := params[0].(string)
		pattern, patternOK := params[1].(string)
		if !textOK || !patternOK {
			return false, nil
		}
		return like(text, pattern), nil
	}),
	expr.Function("is_null", func(params ...any) (any, error) {
		if len(params) != 1 {
			return false, fmt.Errorf("is_null: want 1 argument, got %d", len(params))
		}
		return params[0] == nil, nil
	}),
}

// NewExprCondition compiles expression against the given column names.
// Names that are not columns evaluate to nil.
func NewExprCondition(expression string, columns []string) (*ExprCondition, error) {
	options := append([]expr.Option{expr.AllowUndefinedVariables(), expr.AsBool()}, exprFunctions...)
	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{program: program, columns: append([]string(nil), columns...)}, nil
}

// Evaluate keeps the row only when the expression yields true. Runtime
// errors and non-boolean results drop it.
func (ec *ExprCondition) Evaluate(row dataset.Row) bool {
	env := make(map[string]interface{}, len(ec.columns))
	for i, col := range ec.columns {
		if i < len(row) {
			env[col] = row[i].Interface()
		}
	}
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false
	}
	// 变量类型在编译时未知，非布尔结果不保留该行
	matched, ok := result.(bool)
	return ok && matched
}

// like 判断 text 是否匹配 SQL LIKE 模式：% 匹配任意长度字符，_ 匹配单个字符
func like(text, pattern string) bool {
	t, p := []rune(text), []rune(pattern)
	// star 记录最近一个%的位置，mark 为它当前吞掉的文本末尾
	ti, pi, star, mark := 0, 0, -1, 0
	for ti < len(t) {
		switch {
		case pi < len(p) && p[pi] == '%':
			star, mark = pi, ti
			pi++
		case pi < len(p) && (p[pi] == '_' || p[pi] == t[ti]):
			ti++
			pi++
		case star >= 0:
			mark++
			ti, pi = mark, star+1
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '%' {
		pi++
	}
	return pi == len(p)
}
