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
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rulego/pivotview/dataset"
)

// ErrorType 错误类型
type ErrorType int

const (
	ErrorTypeConfigParse ErrorType = iota
	ErrorTypeUnknownColumn
)

// ViewError is returned by view builds for invalid configurations.
type ViewError struct {
	Type    ErrorType
	Message string
	// Column 出错的列名，仅 ErrorTypeUnknownColumn 使用
	Column string
	cause  error
}

func (e *ViewError) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s] %s", e.getErrorTypeName(), e.Message))
	if e.Column != "" {
		builder.WriteString(fmt.Sprintf(" (column '%s')", e.Column))
	}
	if e.cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.cause.Error())
	}
	return builder.String()
}

func (e *ViewError) getErrorTypeName() string {
	switch e.Type {
	case ErrorTypeConfigParse:
		return "CONFIG_PARSE_ERROR"
	case ErrorTypeUnknownColumn:
		return "UNKNOWN_COLUMN"
	default:
		return "UNKNOWN_ERROR"
	}
}

func (e *ViewError) Unwrap() error { return e.cause }

// Cause supports github.com/pkg/errors.Cause.
func (e *ViewError) Cause() error { return e.cause }

// NewConfigParseError wraps a configuration decoding failure.
func NewConfigParseError(cause error) *ViewError {
	return &ViewError{
		Type:    ErrorTypeConfigParse,
		Message: "invalid view configuration",
		cause:   errors.WithStack(cause),
	}
}

// NewUnknownColumnError reports a column the table does not have. usage
// names the part of the config that referenced it.
func NewUnknownColumnError(usage, column string) *ViewError {
	return &ViewError{
		Type:    ErrorTypeUnknownColumn,
		Message: fmt.Sprintf("%s references a column the table does not have", usage),
		Column:  column,
	}
}

// IsConfigParseError reports whether err is a configuration decoding failure.
func IsConfigParseError(err error) bool {
	return isErrorType(err, ErrorTypeConfigParse)
}

// IsUnknownColumn reports whether err names an unknown column.
func IsUnknownColumn(err error) bool {
	return isErrorType(err, ErrorTypeUnknownColumn)
}

// IsTableParseError reports whether err comes from building a table.
func IsTableParseError(err error) bool {
	return errors.Is(err, dataset.ErrInvalidTable)
}

func isErrorType(err error, t ErrorType) bool {
	var viewErr *ViewError
	return errors.As(err, &viewErr) && viewErr.Type == t
}
