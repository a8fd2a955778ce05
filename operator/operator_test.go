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
	"strings"
	"testing"

	"github.com/rulego/pivotview/aggregator"
	"github.com/rulego/pivotview/condition"
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/logger"
	"github.com/rulego/pivotview/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	s    = dataset.NewString
	n    = dataset.NewInteger
	base = NewBaseOp(logger.NewDiscardLogger())
)

func newTable(t *testing.T, columns []string, rows ...dataset.Row) *dataset.Table {
	table, err := dataset.NewTable(columns, rows)
	require.NoError(t, err)
	return table
}

func run(t *testing.T, table *dataset.Table, ops ...types.Operator) *Context {
	ctx := NewContext(table)
	for _, op := range ops {
		require.NoError(t, op.Apply(ctx))
	}
	return ctx
}

// pivotOps sorts by the pivot columns, groups and adds totals.
func pivotOps(pivots []int, accs []aggregator.Accumulator) []types.Operator {
	sort := make([]IndexedSortDescriptor, len(pivots))
	for i, idx := range pivots {
		sort[i] = IndexedSortDescriptor{Index: idx, Order: types.SortAsc}
	}
	return []types.Operator{
		&OrderByOp{BaseOp: base, Sort: sort},
		&GroupByOp{BaseOp: base, PivotIndices: pivots, Accumulators: accs},
		&TotalsOp{BaseOp: base, Depth: len(pivots), Accumulators: aggregator.TotalAccumulators(accs)},
	}
}

func keys(rows []dataset.PivotRow) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		parts := make([]string, len(row.Key))
		for j, v := range row.Key {
			parts[j] = v.String()
		}
		out[i] = "/" + strings.Join(parts, "/")
	}
	return out
}

func values(rows []dataset.PivotRow) []dataset.Row {
	out := make([]dataset.Row, len(rows))
	for i, row := range rows {
		out[i] = row.Values
	}
	return out
}

func abTable(t *testing.T) *dataset.Table {
	return newTable(t, []string{"a", "b"},
		dataset.Row{s("x"), n(1)},
		dataset.Row{s("x"), n(2)},
		dataset.Row{s("y"), n(5)},
	)
}

func TestPivotSum(t *testing.T) {
	ctx := run(t, abTable(t), pivotOps([]int{0}, []aggregator.Accumulator{aggregator.Noop, aggregator.Sum})...)
	assert.Equal(t, []string{"/", "/x", "/y"}, keys(ctx.Result()))
	assert.Equal(t, []dataset.Row{
		{s("x"), n(8)},
		{s("x"), n(3)},
		{s("y"), n(5)},
	}, values(ctx.Result()))
}

func TestPivotCount(t *testing.T) {
	ctx := run(t, abTable(t), pivotOps([]int{0}, []aggregator.Accumulator{aggregator.Noop, aggregator.Count})...)
	assert.Equal(t, []dataset.Row{
		{s("x"), n(3)},
		{s("x"), n(2)},
		{s("y"), n(1)},
	}, values(ctx.Result()))
}

func TestPivotWithFilter(t *testing.T) {
	ops := append([]types.Operator{
		&FilterOp{BaseOp: base, Condition: condition.And{condition.NewFilterCondition(0, dataset.OpEquals, s("x"))}},
	}, pivotOps([]int{0}, []aggregator.Accumulator{aggregator.Noop, aggregator.Sum})...)
	ctx := run(t, abTable(t), ops...)
	assert.Equal(t, []string{"/", "/x"}, keys(ctx.Result()))
	assert.Equal(t, []dataset.Row{{s("x"), n(3)}, {s("x"), n(3)}}, values(ctx.Result()))
}

func TestPivotTwoLevels(t *testing.T) {
	table := newTable(t, []string{"a", "b", "v"},
		dataset.Row{s("x"), s("p"), n(1)},
		dataset.Row{s("x"), s("q"), n(2)},
		dataset.Row{s("y"), s("p"), n(4)},
		dataset.Row{s("x"), s("p"), n(3)},
	)
	accs := []aggregator.Accumulator{aggregator.Noop, aggregator.Noop, aggregator.Sum}
	ctx := run(t, table, pivotOps([]int{0, 1}, accs)...)

	assert.Equal(t, []string{"/", "/x", "/x/p", "/x/q", "/y", "/y/p"}, keys(ctx.Result()))
	assert.Equal(t, []dataset.Row{
		{s("x"), s("p"), n(10)},
		{s("x"), s("p"), n(6)},
		{s("x"), s("p"), n(4)},
		{s("x"), s("q"), n(2)},
		{s("y"), s("p"), n(4)},
		{s("y"), s("p"), n(4)},
	}, values(ctx.Result()))
}

func TestPivotTotalsSumCounts(t *testing.T) {
	table := newTable(t, []string{"a", "b", "c"},
		dataset.Row{s("x"), s("p"), dataset.Null},
		dataset.Row{s("x"), s("p"), s("one")},
		dataset.Row{s("x"), s("q"), s("two")},
		dataset.Row{s("y"), s("q"), s("three")},
	)
	accs := []aggregator.Accumulator{aggregator.Noop, aggregator.Noop, aggregator.Count}
	ctx := run(t, table, pivotOps([]int{0, 1}, accs)...)

	counts := make([]dataset.CellValue, 0)
	for _, row := range ctx.Result() {
		counts = append(counts, row.Values[2])
	}
	// the first row of x/p is counted although its cell is null
	assert.Equal(t, []string{"/", "/x", "/x/p", "/x/q", "/y", "/y/q"}, keys(ctx.Result()))
	assert.Equal(t, []dataset.CellValue{n(4), n(3), n(2), n(1), n(1), n(1)}, counts)
}

func TestPivotSumNullPropagatesToTotals(t *testing.T) {
	table := newTable(t, []string{"a", "b"},
		dataset.Row{s("x"), n(1)},
		dataset.Row{s("x"), s("oops")},
		dataset.Row{s("y"), n(5)},
	)
	ctx := run(t, table, pivotOps([]int{0}, []aggregator.Accumulator{aggregator.Noop, aggregator.Sum})...)
	assert.Equal(t, []dataset.Row{
		{s("x"), dataset.Null},
		{s("x"), dataset.Null},
		{s("y"), n(5)},
	}, values(ctx.Result()))
}

func TestPivotMixedTypes(t *testing.T) {
	table := newTable(t, []string{"a", "b"},
		dataset.Row{s("x"), n(1)},
		dataset.Row{n(1), n(2)},
		dataset.Row{s("x"), n(4)},
	)
	ctx := run(t, table, pivotOps([]int{0}, []aggregator.Accumulator{aggregator.Noop, aggregator.Sum})...)
	// values of different types never compare as equal, so no group merges
	assert.Equal(t, []string{"/", "/x", "/1", "/x"}, keys(ctx.Result()))
	assert.Equal(t, n(7), ctx.Result()[0].Values[1])
}

func TestPivotEmpty(t *testing.T) {
	table := newTable(t, []string{"a", "b"})
	ctx := run(t, table, pivotOps([]int{0}, []aggregator.Accumulator{aggregator.Noop, aggregator.Sum})...)
	assert.Empty(t, ctx.Result())

	ops := append([]types.Operator{
		&FilterOp{BaseOp: base, Condition: condition.NewFilterCondition(0, dataset.OpEquals, s("nothing"))},
	}, pivotOps([]int{0}, []aggregator.Accumulator{aggregator.Noop, aggregator.Sum})...)
	ctx = run(t, abTable(t), ops...)
	assert.Empty(t, ctx.Result())
}

func TestGroupByWithoutPivots(t *testing.T) {
	table := abTable(t)
	ctx := run(t, table,
		&OrderByOp{BaseOp: base, Sort: []IndexedSortDescriptor{{Index: 1, Order: types.SortDesc}}},
		&GroupByOp{BaseOp: base, Accumulators: []aggregator.Accumulator{aggregator.Noop, aggregator.Sum}},
	)
	assert.Equal(t, []string{"/", "/", "/"}, keys(ctx.Result()))
	assert.Equal(t, []dataset.Row{
		{s("y"), n(5)},
		{s("x"), n(2)},
		{s("x"), n(1)},
	}, values(ctx.Result()))
	for _, row := range ctx.Result() {
		assert.Equal(t, 0, row.Key.Depth())
	}
}

func TestOrderByDoesNotMutateTable(t *testing.T) {
	table := abTable(t)
	before := append([]dataset.Row(nil), table.Rows()...)
	ctx := run(t, table, &OrderByOp{BaseOp: base, Sort: []IndexedSortDescriptor{{Index: 1, Order: types.SortDesc}}})
	assert.Equal(t, n(5), ctx.Rows()[0][1])
	assert.Equal(t, before, table.Rows())
}

func TestCompareRows(t *testing.T) {
	a := dataset.Row{s("x"), n(1)}
	b := dataset.Row{s("x"), n(2)}
	assert.Equal(t, -1, CompareRows(a, b, []IndexedSortDescriptor{{0, types.SortAsc}, {1, types.SortAsc}}))
	assert.Equal(t, 1, CompareRows(a, b, []IndexedSortDescriptor{{0, types.SortAsc}, {1, types.SortDesc}}))
	assert.Equal(t, 0, CompareRows(a, b, []IndexedSortDescriptor{{1, types.SortNone}}))
	assert.Equal(t, 0, CompareRows(a, b, nil))
}

func TestOrderByIsStable(t *testing.T) {
	table := newTable(t, []string{"k", "id"},
		dataset.Row{s("b"), n(1)},
		dataset.Row{s("a"), n(2)},
		dataset.Row{s("b"), n(3)},
		dataset.Row{s("a"), n(4)},
	)
	ctx := run(t, table, &OrderByOp{BaseOp: base, Sort: []IndexedSortDescriptor{{Index: 0, Order: types.SortAsc}}})
	ids := make([]dataset.CellValue, 0, 4)
	for _, row := range ctx.Rows() {
		ids = append(ids, row[1])
	}
	assert.Equal(t, []dataset.CellValue{n(2), n(4), n(1), n(3)}, ids)
}

func TestProjectOp(t *testing.T) {
	ctx := run(t, abTable(t), &ProjectOp{BaseOp: base, Columns: []string{"b", "a", "b"}})
	assert.Equal(t, []string{"b", "a"}, ctx.Projection())
	assert.Equal(t, []string{"a", "b"}, ctx.PivotTable().Columns)
}
