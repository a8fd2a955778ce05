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

package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/rulego/pivotview/dataset"
)

// Config 视图配置
type Config struct {
	// Sort 排序描述，按顺序比较
	Sort []SortDescriptor `json:"sort"`
	// Columns 输出列，按请求顺序投影
	Columns []string `json:"columns"`
	// Filter 过滤条件，全部满足才保留
	Filter []FilterDescriptor `json:"filter"`
	// Aggregates 列名到聚合方式，未配置的列取分组首行的值
	Aggregates map[string]Aggregate `json:"aggregates"`
	// RowPivots 行分组列，从外到内
	RowPivots []string `json:"row_pivots"`
	// Where 可选的 expr 表达式过滤
	Where string `json:"where,omitempty"`
}

// ParseConfig decodes a JSON view configuration. Unknown fields are ignored.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigParseError(err)
	}
	return &cfg, nil
}

// IsPivoted reports whether the config groups rows.
func (c *Config) IsPivoted() bool {
	return c != nil && len(c.RowPivots) > 0
}

// SortOrder 排序方向
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
	// SortNone keeps the descriptor but skips it when comparing.
	SortNone SortOrder = "none"
)

// ParseSortOrder accepts asc, desc and none in any case.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case SortAsc, SortDesc, SortNone:
		return order, nil
	default:
		return "", errors.Errorf("unknown sort order %q", s)
	}
}

func (o *SortOrder) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "sort order should be a string")
	}
	order, err := ParseSortOrder(s)
	if err != nil {
		return err
	}
	*o = order
	return nil
}

// SortDescriptor 排序描述
type SortDescriptor struct {
	Column string    `json:"column"`
	Order  SortOrder `json:"order"`
}

// UnmarshalJSON accepts {"column":"a","order":"asc"} and ["a","asc"].
func (d *SortDescriptor) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return errors.Wrap(err, "sort descriptor")
		}
		if len(tuple) != 2 {
			return errors.Errorf("sort descriptor should be [column, order], got %d elements", len(tuple))
		}
		var out SortDescriptor
		if err := json.Unmarshal(tuple[0], &out.Column); err != nil {
			return errors.Wrap(err, "sort descriptor column")
		}
		if err := json.Unmarshal(tuple[1], &out.Order); err != nil {
			return err
		}
		*d = out
		return nil
	}
	type plain SortDescriptor
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return errors.Wrap(err, "sort descriptor")
	}
	if out.Order == "" {
		return errors.Errorf("sort descriptor for %q has no order", out.Column)
	}
	*d = SortDescriptor(out)
	return nil
}

// FilterDescriptor 过滤条件
type FilterDescriptor struct {
	Column    string
	Operation dataset.Operation
	Value     dataset.CellValue
}

type filterObject struct {
	Column    string            `json:"column"`
	Operation string            `json:"operation"`
	Value     dataset.CellValue `json:"value"`
}

func (d FilterDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(filterObject{Column: d.Column, Operation: string(d.Operation), Value: d.Value})
}

// UnmarshalJSON accepts {"column":"a","operation":"==","value":1} and
// ["a","==",1].
func (d *FilterDescriptor) UnmarshalJSON(data []byte) error {
	var obj filterObject
	if isJSONArray(data) {
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return errors.Wrap(err, "filter descriptor")
		}
		if len(tuple) != 3 {
			return errors.Errorf("filter descriptor should be [column, operation, value], got %d elements", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &obj.Column); err != nil {
			return errors.Wrap(err, "filter descriptor column")
		}
		if err := json.Unmarshal(tuple[1], &obj.Operation); err != nil {
			return errors.Wrap(err, "filter descriptor operation")
		}
		if err := json.Unmarshal(tuple[2], &obj.Value); err != nil {
			return errors.Wrap(err, "filter descriptor value")
		}
	} else if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "filter descriptor")
	}
	op, err := dataset.ParseOperation(obj.Operation)
	if err != nil {
		return err
	}
	*d = FilterDescriptor{Column: obj.Column, Operation: op, Value: obj.Value}
	return nil
}

// Aggregate 聚合方式
type Aggregate string

const (
	// AggregateUndefined passes the first value of a group through.
	AggregateUndefined Aggregate = ""
	AggregateSum       Aggregate = "sum"
	AggregateCount     Aggregate = "count"
	AggregateLow       Aggregate = "low"
	AggregateHigh      Aggregate = "high"
)

// ParseAggregate is case-insensitive; unrecognized names are undefined.
func ParseAggregate(s string) Aggregate {
	switch agg := Aggregate(strings.ToLower(strings.TrimSpace(s))); agg {
	case AggregateSum, AggregateCount, AggregateLow, AggregateHigh:
		return agg
	default:
		return AggregateUndefined
	}
}

// UnmarshalJSON never fails: anything but a known aggregate name decodes to
// AggregateUndefined.
func (a *Aggregate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*a = AggregateUndefined
		return nil
	}
	*a = ParseAggregate(s)
	return nil
}

func isJSONArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}
