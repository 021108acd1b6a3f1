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

package rewriting

import (
	"context"
	"strings"
	"time"

	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/logging"
	"github.com/endink/sharding-rewrite/rewriting/parameter"
	"github.com/endink/sharding-rewrite/routing"
	"github.com/pingcap/errors"
)

const unionAll = " UNION ALL "

var unmatchedRowsLogger = logging.NewThrottledLogger("unmatched-rows", logger, time.Minute)

// RouteEngine rewrites sql for every route unit of a route context.
type RouteEngine struct {
	*engineBase
}

func NewRouteEngine(opts ...EngineOption) (*RouteEngine, error) {
	base, err := newEngineBase("route", opts...)
	if err != nil {
		return nil, err
	}
	return &RouteEngine{engineBase: base}, nil
}

// Rewrite groups route units by physical target and renders every group once.
// When aggregation union rewrite is allowed, units on the same actual data source are merged with UNION ALL,
// otherwise units sharing a physical target are rejected.
func (e *RouteEngine) Rewrite(ctx *RewriteContext, route *routing.RouteContext) (*RouteSQLRewriteResult, error) {
	defer e.recordLatency(time.Now())
	e.showLogicSQL(ctx)

	result := newRouteSQLRewriteResult()
	if route == nil || len(route.RouteUnits) == 0 {
		return result, nil
	}

	union := ctx.Statement().AggregationNeedsUnionRewrite()
	key := (*routing.RouteUnit).PhysicalKey
	if union {
		key = func(u *routing.RouteUnit) string {
			return strings.ToLower(u.DataSourceMapper.ActualName)
		}
	}

	for _, group := range routing.GroupRouteUnits(route.RouteUnits, key) {
		if len(group.Units) > 1 && !union {
			return nil, errors.Annotatef(ErrUnionRewriteRequired, "physical target '%s' has %d route units", group.Key, len(group.Units))
		}
		unit, err := e.rewriteGroup(ctx, group.Units, route.OriginalDataNodes)
		if err != nil {
			return nil, err
		}
		if len(group.Units) > 1 {
			unionCounter.Add(context.Background(), 1)
		}
		ds := group.Units[0].DataSourceMapper.ActualName
		result.put(ds, group.Units, unit)
		e.showActualSQL(ds, unit)
	}
	return result, nil
}

func (e *RouteEngine) rewriteGroup(ctx *RewriteContext, units []*routing.RouteUnit, dataNodes [][]core.DataNode) (*SQLRewriteUnit, error) {
	sqls := make([]string, 0, len(units))
	var params []interface{}
	for _, u := range units {
		sql, err := e.renderer.Render(ctx, TargetOf(u))
		if err != nil {
			return nil, err
		}
		p, err := parametersFor(ctx, u, dataNodes)
		if err != nil {
			return nil, err
		}
		sqls = append(sqls, sql)
		params = append(params, p...)
	}
	if params == nil {
		params = make([]interface{}, 0)
	}
	return &SQLRewriteUnit{SQL: strings.Join(sqls, unionAll), Parameters: params}, nil
}

func parametersFor(ctx *RewriteContext, unit *routing.RouteUnit, dataNodes [][]core.DataNode) ([]interface{}, error) {
	switch b := ctx.ParameterBuilder().(type) {
	case *parameter.GroupedBuilder:
		p, matched, err := b.ParametersFor(unit, dataNodes)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if len(b.Groups()) > 0 && matched == 0 {
			unmatchedRowsLogger.Warnf("route unit '%s' matches none of %d insert rows", unit, len(b.Groups()))
		}
		return p, nil
	case *parameter.StandardBuilder:
		return b.Parameters(), nil
	default:
		panic(errors.Errorf("unknown parameter builder type %T", b))
	}
}
