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

package aggregator

import (
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/types"
)

// Accumulator is the folding rule applied to one column of a group.
type Accumulator int

const (
	Noop Accumulator = iota
	Sum
	Count
	Low
	High
)

// FromAggregate maps a configured aggregate to its accumulator. Columns
// without a recognized aggregate pass their first value through.
func FromAggregate(agg types.Aggregate) Accumulator {
	switch agg {
	case types.AggregateSum:
		return Sum
	case types.AggregateCount:
		return Count
	case types.AggregateLow:
		return Low
	case types.AggregateHigh:
		return High
	default:
		return Noop
	}
}

// Total returns the accumulator used to combine rows that were already
// folded by a. Counts are added up, the other kinds fold the same way again.
func (a Accumulator) Total() Accumulator {
	if a == Count {
		return Sum
	}
	return a
}

func (a Accumulator) String() string {
	switch a {
	case Sum:
		return "sum"
	case Count:
		return "count"
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "noop"
	}
}

// Seed converts the first cell of a group into the accumulator's start value.
func (a Accumulator) Seed(cell dataset.CellValue) dataset.CellValue {
	switch a {
	case Sum, Low, High:
		if cell.IsInteger() {
			return cell
		}
		return dataset.Null
	case Count:
		// the first row is counted even when its cell is null
		return dataset.NewInteger(1)
	default:
		return cell
	}
}

// Accumulate folds incoming into current. Type mismatches never fail, they
// resolve to null or keep the current value.
func (a Accumulator) Accumulate(current, incoming dataset.CellValue) dataset.CellValue {
	cur, ok := current.AsInteger()
	if !ok {
		switch a {
		case Sum, Low, High:
			return dataset.Null
		default:
			return current
		}
	}
	in, inInt := incoming.AsInteger()
	switch a {
	case Sum:
		if !inInt {
			return dataset.Null
		}
		return dataset.NewInteger(cur + in)
	case Low:
		if inInt && in < cur {
			return incoming
		}
		return current
	case High:
		if inInt && in > cur {
			return incoming
		}
		return current
	case Count:
		if incoming.IsNull() {
			return current
		}
		return dataset.NewInteger(cur + 1)
	default:
		return current
	}
}
