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

/*
Package condition provides the row predicates used by view filters.

# Condition Interface

	type Condition interface {
		Evaluate(row dataset.Row) bool
	}

FilterCondition applies a single filter descriptor to one cell, And combines
conditions with short-circuit evaluation and ExprCondition runs an expr-lang
expression against the row.

# Expressions

Column names are bound to the row's cells; integers are int64, null cells
are nil. Any runtime error, such as comparing a null cell with a number,
makes the expression false.

	cond, err := NewExprCondition("sales > 100 && like_match(region, 'EU%')", table.Columns())
	if err != nil {
		return err
	}
	keep := cond.Evaluate(row)

Custom functions:

	like_match(text, pattern) - LIKE matching with % and _ wildcards
	is_null(value)            - true for null cells

Patterns:

	'John%' matches 'John', 'John Smith', 'Johnny'
	'J_hn' matches 'John' but not 'Johan'
*/
package condition
