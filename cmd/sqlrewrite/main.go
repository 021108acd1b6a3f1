/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/endink/sharding-rewrite/config"
	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/logging"
	"github.com/endink/sharding-rewrite/parser"
	"github.com/endink/sharding-rewrite/rewriting"
	"github.com/endink/sharding-rewrite/routing"
	"github.com/endink/sharding-rewrite/telemetry"
	cnf "go.uber.org/config"
)

// repeated collects a flag given more than once.
type repeated []string

func (r *repeated) String() string {
	return strings.Join(*r, " ")
}

func (r *repeated) Set(v string) error {
	*r = append(*r, v)
	return nil
}

func main() {
	var routes, rows repeated
	var configFile = flag.String("config", "", "config file, default locations are searched when empty")
	var sql = flag.String("sql", "", "logic sql to rewrite")
	var params = flag.String("params", "", "comma separated parameters, numbers are passed as int64")
	var union = flag.Bool("union", false, "merge route units on the same data source with UNION ALL")
	var metrics = flag.Bool("metrics", false, "print rewrite metrics to stdout")
	flag.Var(&routes, "route", "route unit like 'ds=ds_0/t_order=t_order_1', repeatable")
	flag.Var(&rows, "row-nodes", "data nodes of next insert row like 'ds.t_order_0,ds.t_order_1', repeatable")
	flag.Parse()

	if strings.TrimSpace(*sql) == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configFile, *sql, parseParams(*params), routes, rows, *union, *metrics); err != nil {
		logging.DefaultLogger.Errorf("rewrite fault: %v", err)
		os.Exit(1)
	}
}

func loadSettings(configFile string) (*config.Settings, error) {
	var mgr config.Manager
	var err error
	if configFile == "" {
		mgr, err = config.NewManager()
	} else {
		mgr, err = config.NewManagerFromFile(cnf.File(configFile))
	}
	if err != nil {
		return nil, err
	}
	settings := mgr.GetSettings()
	return settings, settings.ApplyLogging()
}

func run(configFile string, sql string, params []interface{}, routes []string, rows []string, union bool, metrics bool) error {
	settings, err := loadSettings(configFile)
	if err != nil {
		return err
	}
	if metrics {
		pipeline, e := telemetry.Start(context.Background(), telemetry.WithPushPeriod(time.Second))
		if e != nil {
			return e
		}
		defer func() {
			_ = pipeline.Stop(context.Background())
		}()
	}

	route := routing.NewRouteContext()
	for _, r := range routes {
		unit, e := routing.ParseRouteUnit(r)
		if e != nil {
			return e
		}
		route.AddRouteUnit(unit)
	}
	for _, row := range rows {
		nodes, e := parseDataNodes(row)
		if e != nil {
			return e
		}
		route.AddOriginalDataNodes(nodes...)
	}

	if err = checkParamCount(sql, params); err != nil {
		return err
	}
	stmt, err := explain.Explain(sql, params,
		explain.WithMultiRoute(route.IsMultiRouting()),
		explain.WithAggregationUnion(union),
	)
	if err != nil {
		return err
	}
	ctx, err := rewriting.NewRewriteContext(sql, stmt, params, settings.ContextOptions()...)
	if err != nil {
		return err
	}

	if len(route.RouteUnits) == 0 {
		engine, e := rewriting.NewGenericEngine(settings.EngineOptions()...)
		if e != nil {
			return e
		}
		defer engine.Close()
		unit, e := engine.Rewrite(ctx)
		if e != nil {
			return e
		}
		fmt.Printf("%s ::: %v\n", unit.SQL, unit.Parameters)
		return nil
	}

	engine, err := rewriting.NewRouteEngine(settings.EngineOptions()...)
	if err != nil {
		return err
	}
	defer engine.Close()
	result, err := engine.Rewrite(ctx, route)
	if err != nil {
		return err
	}
	for _, exec := range result.ExecutionUnits() {
		fmt.Printf("[%s] %s ::: %v\n", exec.DataSource, exec.Unit.SQL, exec.Unit.Parameters)
	}
	return nil
}

func parseParams(text string) []interface{} {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	params := make([]interface{}, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if v, err := strconv.ParseInt(p, 10, 64); err == nil {
			params[i] = v
		} else {
			params[i] = strings.Trim(p, "'")
		}
	}
	return params
}

func parseDataNodes(text string) ([]core.DataNode, error) {
	var nodes []core.DataNode
	for _, s := range core.SplitNames(text, ",") {
		n, err := core.ParseDataNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func checkParamCount(sql string, params []interface{}) error {
	count, err := parser.ParseSQLParamCount(sql)
	if err != nil {
		return err
	}
	if count != len(params) {
		return fmt.Errorf("sql has %d parameter markers but %d parameters are given", count, len(params))
	}
	return nil
}
