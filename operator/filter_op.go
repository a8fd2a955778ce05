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

package operator

import (
	"github.com/rulego/pivotview/condition"
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/types"
)

// FilterOp keeps the rows satisfying Condition. A nil Condition keeps all.
type FilterOp struct {
	*BaseOp
	Condition condition.Condition
}

func (o *FilterOp) Apply(context types.ViewContext) error {
	if o.Condition == nil {
		return nil
	}
	rows := context.Rows()
	kept := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		if o.Condition.Evaluate(row) {
			kept = append(kept, row)
		}
	}
	o.log().Debug("filter kept %d of %d rows", len(kept), len(rows))
	context.SetRows(kept)
	return nil
}
