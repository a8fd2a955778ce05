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
	"github.com/alecthomas/repr"
	"github.com/pkg/errors"

	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/logger"
	"github.com/rulego/pivotview/planner"
	"github.com/rulego/pivotview/types"
)

// Engine 构建视图。Engine 不持有可变状态，可以被多个 goroutine 同时使用，
// 同一个 Table 也可以同时用于多次构建。
//
//	engine := pivotview.New()
//	table, _ := dataset.TableFromJSON(data)
//	view, err := engine.ViewJSON(table, `{"row_pivots":["region"],"columns":["sales"],"aggregates":{"sales":"sum"}}`)
type Engine struct {
	logger         logger.Logger
	lenientColumns bool
}

// New 创建一个新的Engine实例。
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) log() logger.Logger {
	if e.logger == nil {
		return logger.GetDefault()
	}
	return e.logger
}

// View 根据配置构建视图：过滤、排序、分组聚合、小计与总计、投影。
// 每次调用都从头计算，table 不会被修改。
func (e *Engine) View(table *dataset.Table, config *types.Config) (*View, error) {
	if table == nil {
		return nil, errors.Wrap(dataset.ErrInvalidTable, "nil table")
	}
	if config == nil {
		config = &types.Config{}
	}
	e.log().Debug("building view over %d rows: %s", table.Size(),
		repr.String(config, repr.NoIndent(), repr.OmitEmpty(true)))

	plan, ctx, err := planner.CreateViewPlan(config, table, planner.Options{
		Logger:         e.log(),
		LenientColumns: e.lenientColumns,
	})
	if err != nil {
		return nil, err
	}
	if err := plan.Apply(ctx); err != nil {
		return nil, err
	}
	view := newView(config, table, ctx.PivotTable(), ctx.Projection())
	e.log().Debug("view built with %d rows", view.NumRows())
	return view, nil
}

// ViewJSON 解析JSON配置并构建视图。
func (e *Engine) ViewJSON(table *dataset.Table, config string) (*View, error) {
	cfg, err := types.ParseConfig([]byte(config))
	if err != nil {
		return nil, err
	}
	return e.View(table, cfg)
}
