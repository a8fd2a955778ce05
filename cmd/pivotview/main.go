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

// pivotview 读取一个JSON对象数组，按视图配置输出透视结果。
//
//	pivotview --config '{"row_pivots":["region"],"columns":["sales"],"aggregates":{"sales":"sum"}}' sales.json
//	cat sales.json | pivotview --config-file view.json --format json
package main

import (
	"encoding/json"
	"io"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/rulego/pivotview"
	"github.com/rulego/pivotview/dataset"
	"github.com/rulego/pivotview/logger"
)

var (
	dataFile   = kingpin.Arg("data", "JSON file holding an array of objects, stdin when omitted.").String()
	config     = kingpin.Flag("config", "View configuration as JSON.").Short('c').String()
	configFile = kingpin.Flag("config-file", "File holding the view configuration.").ExistingFile()
	format     = kingpin.Flag("format", "Output format.").Default("table").Enum("table", "json")
	logLevel   = kingpin.Flag("log-level", "Log level: debug, info, warn, error, off.").Default("warn").String()
	lenient    = kingpin.Flag("lenient", "Drop unknown output columns instead of failing.").Bool()
)

func main() {
	kingpin.Parse()

	level, err := logger.ParseLevel(*logLevel)
	kingpin.FatalIfError(err, "Invalid log level")

	data, err := readData()
	kingpin.FatalIfError(err, "Unable to read data")

	table, err := dataset.TableFromJSON(data)
	kingpin.FatalIfError(err, "Unable to load table")

	cfg := *config
	if *configFile != "" {
		raw, err := os.ReadFile(*configFile)
		kingpin.FatalIfError(err, "Unable to read config")
		cfg = string(raw)
	}
	if cfg == "" {
		cfg = "{}"
	}

	options := []pivotview.Option{pivotview.WithLogOutput(os.Stderr, level)}
	if *lenient {
		options = append(options, pivotview.WithLenientColumns())
	}
	view, err := pivotview.New(options...).ViewJSON(table, cfg)
	kingpin.FatalIfError(err, "Unable to build view")

	switch *format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(view)
	default:
		err = view.PrintTable(os.Stdout)
	}
	kingpin.FatalIfError(err, "Unable to write view")
}

func readData() ([]byte, error) {
	if *dataFile == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(*dataFile)
}
