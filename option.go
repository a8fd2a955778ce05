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

package pivotview

import (
	"io"
	"os"

	"github.com/rulego/pivotview/logger"
)

// Option 表示对Engine默认行为的修改配置。
type Option func(*Engine)

// WithLogger 设置引擎使用的日志记录器，不影响全局默认日志记录器。
//
//	engine := pivotview.New(pivotview.WithLogger(logger.NewLogger(logger.DEBUG, os.Stderr)))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.logger = log
	}
}

// WithLogLevel 设置日志级别。
// 未设置日志记录器时，创建一个输出到标准错误的日志记录器。
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		if e.logger == nil {
			e.logger = logger.NewLogger(level, os.Stderr)
			return
		}
		e.logger.SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标和级别。
//
//	logFile, _ := os.OpenFile("pivotview.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	engine := pivotview.New(pivotview.WithLogOutput(logFile, logger.INFO))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		e.logger = logger.NewLogger(level, output)
	}
}

// WithDiscardLog 禁用所有日志输出。
func WithDiscardLog() Option {
	return func(e *Engine) {
		e.logger = logger.NewDiscardLogger()
	}
}

// WithLenientColumns 输出列中不存在的列被忽略并记录警告，而不是返回错误。
// 分组、排序和过滤中的未知列仍然返回错误。
func WithLenientColumns() Option {
	return func(e *Engine) {
		e.lenientColumns = true
	}
}
