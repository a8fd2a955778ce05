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

package cast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect int64
		hasErr bool
	}{
		{"int", 123, 123, false},
		{"int8", int8(-12), -12, false},
		{"int16", int16(123), 123, false},
		{"int32", int32(123), 123, false},
		{"int64", int64(123), 123, false},
		{"uint", uint(123), 123, false},
		{"uint8", uint8(255), 255, false},
		{"uint16", uint16(123), 123, false},
		{"uint32", uint32(4000000000), 4000000000, false},
		{"uint64", uint64(123), 123, false},
		{"uint64 wraps", uint64(math.MaxUint64), -1, false},
		{"whole float64", 42.0, 42, false},
		{"whole float32", float32(7), 7, false},
		{"json number", json.Number("-9"), -9, false},
		{"json number uint64", json.Number("18446744073709551615"), -1, false},
		{"json number exponent", json.Number("1e3"), 1000, false},
		{"fractional float", 1.5, 0, true},
		{"fractional json number", json.Number("2.25"), 0, true},
		{"NaN", math.NaN(), 0, true},
		{"min int64 float", -9223372036854775808.0, math.MinInt64, false},
		{"float above int64", 1e20, 0, true},
		{"float just above int64", 9.3e18, 0, true},
		{"float below int64", -1e19, 0, true},
		{"float32 above int64", float32(1e19), 0, true},
		{"json number exponent above int64", json.Number("1e20"), 0, true},
		{"json number above uint64", json.Number("18446744073709551616"), 0, true},
		{"json number below int64", json.Number("-9223372036854775809"), 0, true},
		{"string", "123", 0, true},
		{"bool", true, 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt64E(tt.input)
			if tt.hasErr {
				assert.Error(t, err)
				assert.False(t, IsIntegral(tt.input))
				return
			}
			assert.NoError(t, err)
			assert.True(t, IsIntegral(tt.input))
			assert.Equal(t, tt.expect, got)
		})
	}
}
