/*
 * Copyright 2024 The RuleGo Authors.
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

// Package cast normalizes integral host values to int64.
package cast

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	spfcast "github.com/spf13/cast"
)

// IsIntegral reports whether x is an integer of any width, a json.Number
// holding an int64 or uint64, or a finite float without a fractional part
// that fits in int64.
func IsIntegral(x any) bool {
	switch v := x.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isWholeFloat(float64(v))
	case float64:
		return isWholeFloat(v)
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return true
		}
		if _, err := strconv.ParseUint(string(v), 10, 64); err == nil {
			return true
		}
		// 纯整数字面量超出 int64 和 uint64 范围
		if !strings.ContainsAny(string(v), ".eE") {
			return false
		}
		f, err := v.Float64()
		return err == nil && isWholeFloat(f)
	}
	return false
}

// ToInt64E converts an integral value to int64. Unsigned values above
// math.MaxInt64 wrap around, matching a two's complement reinterpretation.
func ToInt64E(x any) (int64, error) {
	if !IsIntegral(x) {
		return 0, fmt.Errorf("invalid operation: int64(%v) of type %T", x, x)
	}
	if n, ok := x.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
			return spfcast.ToInt64E(u)
		}
		f, _ := n.Float64()
		return spfcast.ToInt64E(f)
	}
	return spfcast.ToInt64E(x)
}

// isWholeFloat reports whether f is integral and inside the int64 range.
// 2^63 itself is out of range; -2^63 is not.
func isWholeFloat(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Trunc(f) == f && f >= -maxInt64Float && f < maxInt64Float
}

const maxInt64Float = float64(1 << 63)
