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

package operator

import (
	"github.com/rulego/pivotview/logger"
)

// BaseOp is embedded by every operator.
type BaseOp struct {
	Logger logger.Logger
}

func NewBaseOp(log logger.Logger) *BaseOp {
	return &BaseOp{Logger: log}
}

func (o *BaseOp) log() logger.Logger {
	if o == nil || o.Logger == nil {
		return logger.GetDefault()
	}
	return o.Logger
}
