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
Package types holds the view configuration, the errors returned by view
builds and the interfaces shared by the planner and the operators.

# Configuration

	type Config struct {
		Sort       []SortDescriptor     // sort order, compared in sequence
		Columns    []string             // output columns, projected in order
		Filter     []FilterDescriptor   // AND of all descriptors
		Aggregates map[string]Aggregate // per column aggregate, default pass-through
		RowPivots  []string             // group columns, outermost first
		Where      string               // optional expr-lang predicate
	}

A configuration is usually decoded from JSON. Descriptors accept an object
form and the tuple form sent by browser front ends:

	{
		"row_pivots": ["region"],
		"columns": ["region", "sales"],
		"aggregates": {"sales": "sum"},
		"sort": [["sales", "desc"]],
		"filter": [{"column": "year", "operation": "==", "value": 2024}]
	}

Aggregate names are case-insensitive and unknown names fall back to
AggregateUndefined. Unknown sort orders and filter operations are
configuration errors.

# Errors

	IsConfigParseError(err) // malformed configuration
	IsUnknownColumn(err)    // a column the table does not have
	IsTableParseError(err)  // table construction or JSON ingestion
*/
package types
