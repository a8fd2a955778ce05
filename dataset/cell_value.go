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

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rulego/pivotview/utils/cast"
)

// Kind identifies the variant held by a CellValue.
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindString
	KindBool
)

// String returns string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Operation is a filter operation applied by CellValue.Matches.
type Operation string

const (
	OpEquals Operation = "equals"
)

// ParseOperation accepts the canonical operation name and the aliases sent by
// grid front ends ("==", "eqeq").
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equals", "==", "eqeq":
		return OpEquals, nil
	}
	return "", errors.Errorf("unsupported filter operation %q", s)
}

// CellValue is a single typed cell: an integer, a string, a boolean or null.
// The zero value is Null.
type CellValue struct {
	kind Kind
	i    int64
	s    string
	b    bool
}

// Null is the null cell.
var Null = CellValue{}

func NewInteger(v int64) CellValue {
	return CellValue{kind: KindInteger, i: v}
}

func NewString(v string) CellValue {
	return CellValue{kind: KindString, s: v}
}

func NewBool(v bool) CellValue {
	return CellValue{kind: KindBool, b: v}
}

func (v CellValue) Kind() Kind { return v.kind }

func (v CellValue) IsNull() bool { return v.kind == KindNull }

func (v CellValue) IsInteger() bool { return v.kind == KindInteger }

// AsInteger returns the integer payload and whether the cell holds one.
func (v CellValue) AsInteger() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// AsString returns the string payload and whether the cell holds one.
func (v CellValue) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBool returns the boolean payload and whether the cell holds one.
func (v CellValue) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Interface returns the native Go value: int64, string, bool or nil.
func (v CellValue) Interface() interface{} {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Equal reports whether both cells hold the same variant and payload.
// Null equals Null.
func (v CellValue) Equal(other CellValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == other.i
	case KindString:
		return v.s == other.s
	case KindBool:
		return v.b == other.b
	default:
		return true
	}
}

// Compare orders two cells of the same variant by their natural order
// (false < true for booleans). Every other pair, Null against Null
// included, compares as greater (+1), so Compare is not antisymmetric
// across variants.
func (v CellValue) Compare(other CellValue) int {
	switch {
	case v.kind == KindInteger && other.kind == KindInteger:
		switch {
		case v.i < other.i:
			return -1
		case v.i > other.i:
			return 1
		}
		return 0
	case v.kind == KindString && other.kind == KindString:
		return strings.Compare(v.s, other.s)
	case v.kind == KindBool && other.kind == KindBool:
		switch {
		case v.b == other.b:
			return 0
		case !v.b:
			return -1
		}
		return 1
	}
	return 1
}

// Matches applies a filter operation against value. Only equal variants can
// match; a string cell never matches an integer value even when both print
// the same. Unsupported combinations return false.
func (v CellValue) Matches(op Operation, value CellValue) bool {
	if op != OpEquals {
		return false
	}
	switch {
	case v.kind == KindString && value.kind == KindString:
		return v.s == value.s
	case v.kind == KindInteger && value.kind == KindInteger:
		return v.i == value.i
	case v.kind == KindBool && value.kind == KindBool:
		return v.b == value.b
	}
	return false
}

func (v CellValue) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

// GoString makes %#v output readable in test failures.
func (v CellValue) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", v.i)
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.b)
	default:
		return "Null"
	}
}

func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInteger:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindString:
		return json.Marshal(v.s)
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	default:
		return []byte("null"), nil
	}
}

func (v *CellValue) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return errors.Wrap(err, "invalid cell value")
	}
	cell, err := FromInterface(raw)
	if err != nil {
		return err
	}
	*v = cell
	return nil
}

// FromInterface converts a host value into a CellValue. Integers of every
// width, json.Number and integral floats normalize to int64; strings, bools
// and nil map to their variants. Anything else is rejected.
func FromInterface(raw interface{}) (CellValue, error) {
	switch x := raw.(type) {
	case nil:
		return Null, nil
	case CellValue:
		return x, nil
	case string:
		return NewString(x), nil
	case bool:
		return NewBool(x), nil
	}
	if cast.IsIntegral(raw) {
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return Null, err
		}
		return NewInteger(n), nil
	}
	return Null, errors.Errorf("unsupported cell value %v (%T): expected integer, string, boolean or null", raw, raw)
}

// MustFromInterface is FromInterface for literals known to be valid.
func MustFromInterface(raw interface{}) CellValue {
	v, err := FromInterface(raw)
	if err != nil {
		panic(err)
	}
	return v
}
