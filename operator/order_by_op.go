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
	"golang.org/x/exp/slices"

	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/types"
)

// IndexedSortDescriptor is a sort descriptor resolved to a column index.
type IndexedSortDescriptor struct {
	Index int
	Order types.SortOrder
}

// OrderByOp stable-sorts the retained rows. The rows are sorted in a new
// slice so the table's own row order is never changed.
type OrderByOp struct {
	*BaseOp
	Sort []IndexedSortDescriptor
}

func (o *OrderByOp) Apply(context types.ViewContext) error {
	if len(o.Sort) == 0 {
		return nil
	}
	rows := slices.Clone(context.Rows())
	slices.SortStableFunc(rows, func(a, b dataset.Row) int {
		return CompareRows(a, b, o.Sort)
	})
	context.SetRows(rows)
	return nil
}

// CompareRows compares two rows descriptor by descriptor. SortNone
// descriptors are skipped and SortDesc reverses the cell ordering.
func CompareRows(a, b dataset.Row, sort []IndexedSortDescriptor) int {
	for _, d := range sort {
		if d.Order == types.SortNone {
			continue
		}
		c := a[d.Index].Compare(b[d.Index])
		if c == 0 {
			continue
		}
		if d.Order == types.SortDesc {
			return -c
		}
		return c
	}
	return 0
}
