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
	"github.com/rulego/pivotview/types"
)

// ProjectOp records the output columns, in request order.
type ProjectOp struct {
	*BaseOp
	Columns []string
}

func (o *ProjectOp) Apply(context types.ViewContext) error {
	columns := make([]string, 0, len(o.Columns))
	seen := make(map[string]struct{}, len(o.Columns))
	for _, col := range o.Columns {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		columns = append(columns, col)
	}
	context.SetProjection(columns)
	return nil
}
