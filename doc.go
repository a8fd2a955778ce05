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

/*
Package pivotview 是一个进程内的透视表（pivot）引擎。

它接收一个按行存储的数据表和一份视图配置，生成经过过滤、分层分组、排序和聚合的视图，
每次调用都同步地从头计算。

# 核心特性

• 类型化的单元格 - 整数、字符串、布尔值和空值
• 多级分组 - 每一级都有小计行，第一行是总计
• 聚合方式 - sum、count、low、high，未配置的列取分组首行的值
• 稳定排序 - 支持 asc、desc、none
• 过滤 - 等值过滤条件和可选的 expr 表达式
• 列式输出 - 有序的列映射，可直接序列化为JSON

# 入门示例

	package main

	import (
		"os"

		"github.com/rulego/pivotview"
		"github.com/rulego/pivotview/dataset"
	)

	func main() {
		table, err := dataset.TableFromJSON([]byte(`[
			{"region": "east", "product": "a", "sales": 1},
			{"region": "east", "product": "b", "sales": 2},
			{"region": "west", "product": "a", "sales": 5}
		]`))
		if err != nil {
			panic(err)
		}

		engine := pivotview.New()
		view, err := engine.ViewJSON(table, `{
			"row_pivots": ["region"],
			"columns": ["sales"],
			"aggregates": {"sales": "sum"},
			"sort": [["sales", "desc"]]
		}`)
		if err != nil {
			panic(err)
		}
		view.PrintTable(os.Stdout)
	}

输出：

	+--------------+-------+
	| __ROW_PATH__ | sales |
	+--------------+-------+
	| TOTAL        | 8     |
	| east         | 3     |
	| west         | 5     |
	+--------------+-------+
	(3 rows)

# 配置

	{
		"row_pivots": ["region", "product"],   // 分组列，从外到内
		"columns": ["region", "sales"],        // 输出列
		"aggregates": {"sales": "sum"},        // sum | count | low | high
		"sort": [["sales", "desc"]],           // 也可以写成 {"column": "sales", "order": "desc"}
		"filter": [["region", "==", "east"]],  // equals | == | eqeq
		"where": "sales > 1"                   // 可选的 expr 表达式
	}

# 错误处理

	types.IsConfigParseError(err) // 配置无法解析
	types.IsUnknownColumn(err)    // 配置引用了不存在的列
	types.IsTableParseError(err)  // 数据表无法构建

# 日志配置

	// 设置日志级别
	engine := pivotview.New(pivotview.WithLogLevel(logger.DEBUG))

	// 输出到文件
	logFile, _ := os.OpenFile("app.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	engine := pivotview.New(pivotview.WithLogOutput(logFile, logger.INFO))

	// 禁用日志
	engine := pivotview.New(pivotview.WithDiscardLog())
*/
package pivotview
