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
	"math"
	"strings"
	"testing"

	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/routing"
	"github.com/golang/mock/gomock"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRule(t *testing.T) *core.ShardingRule {
	rule := core.NewShardingRule("ds_0")
	rule.AddDataSource("ds_0", "db_0")
	rule.AddDataSource("ds_1", "")
	for _, name := range []string{"t_order", "t_order_item"} {
		var nodes []core.DataNode
		for _, ds := range []string{"ds_0", "ds_1"} {
			for _, suffix := range []string{"_0", "_1"} {
				nodes = append(nodes, core.NewDataNode(ds, name+suffix))
			}
		}
		table := core.NewShardingTable(name)
		table.SetResources(nodes...)
		rule.AddTable(table)
	}
	require.Nil(t, rule.AddBindingGroup("t_order", "t_order_item"))
	return rule
}

func mustRouteUnit(t *testing.T, text string) *routing.RouteUnit {
	unit, err := routing.ParseRouteUnit(text)
	require.Nil(t, err)
	return unit
}

func mustContext(t *testing.T, sql string, stmt explain.StatementContext, params []interface{}, opts ...ContextOption) *RewriteContext {
	ctx, err := NewRewriteContext(sql, stmt, params, opts...)
	require.Nil(t, err)
	return ctx
}

func mustRouteEngine(t *testing.T, opts ...EngineOption) *RouteEngine {
	e, err := NewRouteEngine(opts...)
	require.Nil(t, err)
	return e
}

func rewriteUnit(t *testing.T, ctx *RewriteContext, unit *routing.RouteUnit) *SQLRewriteUnit {
	result, err := mustRouteEngine(t).Rewrite(ctx, routing.NewRouteContext(unit))
	require.Nil(t, err)
	u, ok := result.Get(unit)
	require.True(t, ok)
	return u
}

func tableSegment(sql string, text string) *explain.TableSegment {
	return &explain.TableSegment{Begin: strings.Index(sql, text), Text: text, Name: strings.Trim(text, "`")}
}

func mockStatement(ctrl *gomock.Controller, union bool) *MockStatementContext {
	stmt := NewMockStatementContext(ctrl)
	stmt.EXPECT().Type().Return(explain.SelectStatement).AnyTimes()
	stmt.EXPECT().TableNames().Return(nil).AnyTimes()
	stmt.EXPECT().Tables().Return(nil).AnyTimes()
	stmt.EXPECT().Schemas().Return(nil).AnyTimes()
	stmt.EXPECT().Indexes().Return(nil).AnyTimes()
	stmt.EXPECT().Projections().Return(nil).AnyTimes()
	stmt.EXPECT().GroupBy().Return(nil).AnyTimes()
	stmt.EXPECT().OrderBy().Return(nil).AnyTimes()
	stmt.EXPECT().Pagination().Return(nil).AnyTimes()
	stmt.EXPECT().InsertValues().Return(nil).AnyTimes()
	stmt.EXPECT().HasAggregation().Return(false).AnyTimes()
	stmt.EXPECT().IsSameGroupByAndOrderBy().Return(false).AnyTimes()
	stmt.EXPECT().RequiresMerge().Return(union).AnyTimes()
	stmt.EXPECT().PaginationNeedsRewrite().Return(false).AnyTimes()
	stmt.EXPECT().AggregationNeedsUnionRewrite().Return(union).AnyTimes()
	return stmt
}

func TestGenericEngineIdentity(t *testing.T) {
	ctx := mustContext(t, "SELECT ?", &explain.Statement{StmtType: explain.SelectStatement}, []interface{}{1})
	e, err := NewGenericEngine()
	require.Nil(t, err)
	defer e.Close()

	unit, err := e.Rewrite(ctx)
	require.Nil(t, err)
	assert.Equal(t, "SELECT ?", unit.SQL)
	assert.Equal(t, []interface{}{1}, unit.Parameters)
}

func TestRouteEngineStandardParameters(t *testing.T) {
	ctx := mustContext(t, "SELECT ?", &explain.Statement{StmtType: explain.SelectStatement}, []interface{}{1})
	unit := mustRouteUnit(t, "ds=ds_0/tbl=tbl_0")

	result, err := mustRouteEngine(t).Rewrite(ctx, routing.NewRouteContext(unit))
	require.Nil(t, err)
	assert.Equal(t, 1, result.Len())
	u, ok := result.Get(unit)
	require.True(t, ok)
	assert.Equal(t, "SELECT ?", u.SQL)
	assert.Equal(t, []interface{}{1}, u.Parameters)
}

func TestRouteEngineUnionAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := mustContext(t, "SELECT ?", mockStatement(ctrl, true), []interface{}{1})
	first := mustRouteUnit(t, "ds=ds_0/tbl=tbl_0")
	second := mustRouteUnit(t, "ds=ds_0/tbl=tbl_1")

	result, err := mustRouteEngine(t).Rewrite(ctx, routing.NewRouteContext(first, second))
	require.Nil(t, err)
	require.Equal(t, 1, len(result.ExecutionUnits()))
	exec := result.ExecutionUnits()[0]
	assert.Equal(t, "ds_0", exec.DataSource)
	assert.Equal(t, "SELECT ? UNION ALL SELECT ?", exec.Unit.SQL)
	assert.Equal(t, []interface{}{1, 1}, exec.Unit.Parameters)

	u1, ok := result.Get(first)
	require.True(t, ok)
	u2, ok := result.Get(second)
	require.True(t, ok)
	assert.True(t, u1 == u2)
	assert.Equal(t, 2, result.Len())
}

func TestRouteEngineUnionRenderEachMember(t *testing.T) {
	sql := "SELECT COUNT(*) FROM t_order"
	stmt := &explain.Statement{
		StmtType:                    explain.SelectStatement,
		TableSegments:               []*explain.TableSegment{tableSegment(sql, "t_order")},
		NeedAggregationUnionRewrite: true,
	}
	ctx := mustContext(t, sql, stmt, nil, WithRule(newTestRule(t)))
	route := routing.NewRouteContext(
		mustRouteUnit(t, "ds_0/t_order=t_order_0"),
		mustRouteUnit(t, "ds_1/t_order=t_order_0"),
		mustRouteUnit(t, "ds_0/t_order=t_order_1"),
	)

	result, err := mustRouteEngine(t).Rewrite(ctx, route)
	require.Nil(t, err)
	execs := result.ExecutionUnits()
	require.Equal(t, 2, len(execs))
	assert.Equal(t, "ds_0", execs[0].DataSource)
	assert.Equal(t, "SELECT COUNT(*) FROM t_order_0 UNION ALL SELECT COUNT(*) FROM t_order_1", execs[0].Unit.SQL)
	assert.Equal(t, 0, len(execs[0].Unit.Parameters))
	assert.Equal(t, "ds_1", execs[1].DataSource)
	assert.Equal(t, "SELECT COUNT(*) FROM t_order_0", execs[1].Unit.SQL)
	assert.Equal(t, 3, len(result.RouteUnits()))
}

func TestRouteEngineSamePhysicalTargetWithoutUnion(t *testing.T) {
	ctx := mustContext(t, "SELECT ?", &explain.Statement{StmtType: explain.SelectStatement}, []interface{}{1})
	route := routing.NewRouteContext(mustRouteUnit(t, "ds=ds_0/tbl=tbl_0"), mustRouteUnit(t, "ds1=ds_0/tbl=tbl_0"))

	_, err := mustRouteEngine(t).Rewrite(ctx, route)
	assert.Equal(t, ErrUnionRewriteRequired, errors.Cause(err))
}

func TestRouteEngineSeparatedTargets(t *testing.T) {
	ctx := mustContext(t, "SELECT ?", &explain.Statement{StmtType: explain.SelectStatement}, []interface{}{1})
	route := routing.NewRouteContext(mustRouteUnit(t, "ds=ds_0/tbl=tbl_0"), mustRouteUnit(t, "ds=ds_0/tbl=tbl_1"))

	result, err := mustRouteEngine(t).Rewrite(ctx, route)
	require.Nil(t, err)
	assert.Equal(t, 2, len(result.ExecutionUnits()))
	for _, u := range route.RouteUnits {
		unit, ok := result.Get(u)
		require.True(t, ok)
		assert.Equal(t, "SELECT ?", unit.SQL)
		assert.Equal(t, []interface{}{1}, unit.Parameters)
	}
}

func TestRouteEngineEmptyRoute(t *testing.T) {
	ctx := mustContext(t, "SELECT ?", &explain.Statement{StmtType: explain.SelectStatement}, []interface{}{1})
	result, err := mustRouteEngine(t).Rewrite(ctx, routing.NewRouteContext())
	require.Nil(t, err)
	assert.Equal(t, 0, result.Len())
	_, ok := result.Get(mustRouteUnit(t, "ds"))
	assert.False(t, ok)
}

func insertStatement(groups ...[]interface{}) *explain.Statement {
	return &explain.Statement{
		StmtType:        explain.InsertStatement,
		InsertValuesCtx: &explain.InsertValuesContext{GroupedParameters: groups},
	}
}

func TestRouteEngineInsertRows(t *testing.T) {
	sql := "INSERT INTO tbl VALUES (?)"
	cases := []struct {
		name     string
		nodes    [][]core.DataNode
		expected []interface{}
	}{
		{name: "broadcast", nodes: nil, expected: []interface{}{1}},
		{name: "same data node", nodes: [][]core.DataNode{{core.MustParseDataNode("ds.tbl_0")}}, expected: []interface{}{1}},
		{name: "empty data node", nodes: [][]core.DataNode{{}}, expected: []interface{}{1}},
		{name: "other data node", nodes: [][]core.DataNode{{core.MustParseDataNode("ds_1.tbl_1")}}, expected: []interface{}{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := mustContext(t, sql, insertStatement([]interface{}{1}), []interface{}{1})
			unit := mustRouteUnit(t, "ds=ds_0/tbl=tbl_0")
			route := routing.NewRouteContext(unit)
			route.OriginalDataNodes = c.nodes

			result, err := mustRouteEngine(t).Rewrite(ctx, route)
			require.Nil(t, err)
			u, ok := result.Get(unit)
			require.True(t, ok)
			assert.Equal(t, sql, u.SQL)
			assert.Equal(t, c.expected, u.Parameters)
		})
	}
}

func TestRouteEngineInsertRowsPartitioned(t *testing.T) {
	sql := "INSERT INTO t_order (id, name) VALUES (?, ?), (?, ?)"
	stmt := insertStatement([]interface{}{1, "a"}, []interface{}{2, "b"})
	stmt.TableSegments = []*explain.TableSegment{tableSegment(sql, "t_order")}
	ctx := mustContext(t, sql, stmt, []interface{}{1, "a", 2, "b"}, WithRule(newTestRule(t)))

	u0 := mustRouteUnit(t, "ds_0/t_order=t_order_0")
	u1 := mustRouteUnit(t, "ds_0/t_order=t_order_1")
	route := routing.NewRouteContext(u0, u1)
	route.AddOriginalDataNodes(core.MustParseDataNode("ds_0.t_order_1"))
	route.AddOriginalDataNodes(core.MustParseDataNode("ds_0.t_order_0"))

	result, err := mustRouteEngine(t).Rewrite(ctx, route)
	require.Nil(t, err)
	r0, _ := result.Get(u0)
	r1, _ := result.Get(u1)
	assert.Equal(t, "INSERT INTO t_order_0 (id, name) VALUES (?, ?), (?, ?)", r0.SQL)
	assert.Equal(t, []interface{}{2, "b"}, r0.Parameters)
	assert.Equal(t, "INSERT INTO t_order_1 (id, name) VALUES (?, ?), (?, ?)", r1.SQL)
	assert.Equal(t, []interface{}{1, "a"}, r1.Parameters)
}

func TestRouteEngineInsertDataNodesMismatch(t *testing.T) {
	ctx := mustContext(t, "INSERT INTO tbl VALUES (?), (?)", insertStatement([]interface{}{1}, []interface{}{2}), []interface{}{1, 2})
	unit := mustRouteUnit(t, "ds=ds_0/tbl=tbl_0")
	route := routing.NewRouteContext(unit)
	route.AddOriginalDataNodes(core.MustParseDataNode("ds.tbl_0"))

	_, err := mustRouteEngine(t).Rewrite(ctx, route)
	assert.Equal(t, ErrDataNodesMismatch, errors.Cause(err))
}

func TestRewriteMixedTokens(t *testing.T) {
	sql := "SELECT price FROM `t_order` WHERE id = ? ORDER BY create_time DESC LIMIT 5, 10"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "`t_order`")},
		ProjectionsCtx: &explain.ProjectionsContext{
			Stop:    strings.Index(sql, " FROM"),
			Columns: []string{"price"},
		},
		OrderByCtx: &explain.OrderByContext{Items: []explain.ByItem{{Column: "create_time", Desc: true}}},
		PaginationCtx: &explain.PaginationContext{
			Offset:   &explain.PaginationValue{Begin: strings.Index(sql, "5, "), Text: "5", Value: 5, ParameterIndex: -1},
			RowCount: &explain.PaginationValue{Begin: strings.Index(sql, "10"), Text: "10", Value: 10, ParameterIndex: -1},
		},
		MultiRoute:            true,
		NeedPaginationRewrite: true,
	}
	ctx := mustContext(t, sql, stmt, []interface{}{7}, WithRule(newTestRule(t)))

	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_0/t_order=t_order_1"))
	assert.Equal(t, "SELECT price, create_time AS ORDER_BY_DERIVED_0 FROM `t_order_1` WHERE id = ? ORDER BY create_time DESC LIMIT 0, 15", unit.SQL)
	assert.Equal(t, []interface{}{7}, unit.Parameters)

	stmt.NeedPaginationRewrite = false
	ctx = mustContext(t, sql, stmt, []interface{}{7}, WithRule(newTestRule(t)))
	unit = rewriteUnit(t, ctx, mustRouteUnit(t, "ds_0/t_order=t_order_1"))
	assert.Equal(t, "SELECT price, create_time AS ORDER_BY_DERIVED_0 FROM `t_order_1` WHERE id = ? ORDER BY create_time DESC LIMIT 5, 10", unit.SQL)
}

func TestRewriteMaxRowCount(t *testing.T) {
	sql := "SELECT user_id, COUNT(*) cnt FROM t_order GROUP BY user_id ORDER BY cnt LIMIT 10"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "t_order")},
		ProjectionsCtx: &explain.ProjectionsContext{
			Stop:         strings.Index(sql, " FROM"),
			Columns:      []string{"user_id", "cnt"},
			Aggregations: []*explain.AggregationProjection{{Function: "COUNT", Argument: "*"}},
		},
		GroupByCtx: &explain.GroupByContext{Items: []explain.ByItem{{Column: "user_id"}}, Stop: strings.Index(sql, " ORDER BY")},
		OrderByCtx: &explain.OrderByContext{Items: []explain.ByItem{{Column: "cnt"}}},
		PaginationCtx: &explain.PaginationContext{
			RowCount: &explain.PaginationValue{Begin: strings.Index(sql, "10"), Text: "10", Value: 10, ParameterIndex: -1},
		},
		MultiRoute:            true,
		NeedPaginationRewrite: true,
	}
	ctx := mustContext(t, sql, stmt, nil, WithRule(newTestRule(t)))
	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_1/t_order=t_order_0"))
	assert.Equal(t, "SELECT user_id, COUNT(*) cnt FROM t_order_0 GROUP BY user_id ORDER BY cnt LIMIT 2147483647", unit.SQL)
}

func TestRewriteGeneratedOrderBy(t *testing.T) {
	sql := "SELECT user_id, SUM(price) FROM t_order GROUP BY user_id LIMIT 2"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "t_order")},
		ProjectionsCtx: &explain.ProjectionsContext{
			Stop:         strings.Index(sql, " FROM"),
			Columns:      []string{"user_id", "SUM(price)"},
			Aggregations: []*explain.AggregationProjection{{Function: "SUM", Argument: "price"}},
		},
		GroupByCtx: &explain.GroupByContext{Items: []explain.ByItem{{Column: "user_id"}}, Stop: strings.Index(sql, " LIMIT")},
		OrderByCtx: &explain.OrderByContext{Items: []explain.ByItem{{Column: "user_id"}}, Generated: true},
		PaginationCtx: &explain.PaginationContext{
			RowCount: &explain.PaginationValue{Begin: strings.Index(sql, "2"), Text: "2", Value: 2, ParameterIndex: -1},
		},
		MultiRoute:            true,
		NeedPaginationRewrite: true,
	}
	ctx := mustContext(t, sql, stmt, nil, WithRule(newTestRule(t)))
	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_1/t_order=t_order_0"))
	assert.Equal(t, "SELECT user_id, SUM(price) FROM t_order_0 GROUP BY user_id ORDER BY user_id ASC LIMIT 2", unit.SQL)
}

func TestRewritePaginationParameters(t *testing.T) {
	sql := "SELECT * FROM t_order LIMIT ?, ?"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "t_order")},
		ProjectionsCtx: &explain.ProjectionsContext{
			Stop: strings.Index(sql, " FROM"),
			Star: true,
		},
		PaginationCtx: &explain.PaginationContext{
			Offset:   &explain.PaginationValue{Begin: strings.Index(sql, "?"), Text: "?", Value: 2, ParameterIndex: 0},
			RowCount: &explain.PaginationValue{Begin: strings.LastIndex(sql, "?"), Text: "?", Value: 10, ParameterIndex: 1},
		},
		MultiRoute:            true,
		NeedPaginationRewrite: true,
	}
	ctx := mustContext(t, sql, stmt, []interface{}{2, 10}, WithRule(newTestRule(t)))
	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_1/t_order=t_order_0"))
	assert.Equal(t, "SELECT * FROM t_order_0 LIMIT ?, ?", unit.SQL)
	assert.Equal(t, []interface{}{int64(0), int64(12)}, unit.Parameters)

	stmt.GroupByCtx = &explain.GroupByContext{Items: []explain.ByItem{{Column: "user_id"}}}
	ctx = mustContext(t, sql, stmt, []interface{}{2, 10}, WithRule(newTestRule(t)))
	assert.Equal(t, []interface{}{int64(0), int64(math.MaxInt32)}, ctx.ParameterBuilder().Parameters())

	stmt.PaginationCtx.RowCount.ParameterIndex = 5
	_, err := NewRewriteContext(sql, stmt, []interface{}{2, 10})
	assert.NotNil(t, err)
}

func TestRewriteSchema(t *testing.T) {
	sql := "SELECT * FROM db.t_order"
	stmt := &explain.Statement{
		StmtType:       explain.SelectStatement,
		TableSegments:  []*explain.TableSegment{tableSegment(sql, "t_order")},
		SchemaSegments: []*explain.SchemaSegment{{Begin: strings.Index(sql, "db"), Text: "db", Name: "db", TableName: "t_order"}},
	}
	rule := newTestRule(t)
	ctx := mustContext(t, sql, stmt, nil, WithRule(rule))

	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_1/t_order=t_order_1"))
	assert.Equal(t, "SELECT * FROM ds_1.t_order_1", unit.SQL)

	e, err := NewGenericEngine()
	require.Nil(t, err)
	generic, err := e.Rewrite(ctx)
	require.Nil(t, err)
	assert.Equal(t, "SELECT * FROM db_0.t_order", generic.SQL)

	rule.DefaultDataSource = ""
	_, err = e.Rewrite(ctx)
	assert.Equal(t, ErrNoDefaultDataSource, errors.Cause(err))
}

func TestRewriteIndex(t *testing.T) {
	sql := "DROP INDEX idx_status ON t_order"
	stmt := &explain.Statement{
		StmtType:      explain.DDLStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "t_order")},
		IndexSegments: []*explain.IndexSegment{{Begin: strings.Index(sql, "idx_status"), Text: "idx_status", Name: "idx_status", TableName: "t_order"}},
	}
	ctx := mustContext(t, sql, stmt, nil, WithRule(newTestRule(t)))
	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_0/t_order=t_order_1"))
	assert.Equal(t, "DROP INDEX idx_status_t_order_1 ON t_order_1", unit.SQL)

	e, err := NewGenericEngine()
	require.Nil(t, err)
	generic, err := e.Rewrite(ctx)
	require.Nil(t, err)
	assert.Equal(t, sql, generic.SQL)
}

func TestRewriteBindingTable(t *testing.T) {
	sql := "SELECT * FROM t_order o JOIN t_order_item i ON o.order_id = i.order_id"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "t_order"), tableSegment(sql, "t_order_item")},
	}
	ctx := mustContext(t, sql, stmt, nil, WithRule(newTestRule(t)))
	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_1/t_order=t_order_1"))
	assert.Equal(t, "SELECT * FROM t_order_1 o JOIN t_order_item_1 i ON o.order_id = i.order_id", unit.SQL)
}

func TestRewriteMissingTableKeepsOriginal(t *testing.T) {
	sql := "SELECT * FROM t_config"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "t_config")},
	}
	ctx := mustContext(t, sql, stmt, nil)
	require.Equal(t, 1, len(ctx.Tokens()))
	unit := rewriteUnit(t, ctx, mustRouteUnit(t, "ds_1/t_order=t_order_1"))
	assert.Equal(t, sql, unit.SQL)
}

func TestRewriteTokenOutOfRange(t *testing.T) {
	sql := "SELECT * FROM t_order"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{{Begin: len(sql) - 3, Text: "t_order", Name: "t_order"}},
	}
	_, err := NewRewriteContext(sql, stmt, nil)
	assert.Equal(t, ErrTokenOutOfRange, errors.Cause(err))
}

func TestRewriteDeterministicAndCached(t *testing.T) {
	sql := "SELECT * FROM t_order WHERE id = ?"
	stmt := &explain.Statement{
		StmtType:      explain.SelectStatement,
		TableSegments: []*explain.TableSegment{tableSegment(sql, "t_order")},
	}
	ctx := mustContext(t, sql, stmt, []interface{}{1}, WithRule(newTestRule(t)))
	e := mustRouteEngine(t, WithRenderCache(16), WithSQLShow(true))
	require.NotNil(t, e.Cache())

	unit := mustRouteUnit(t, "ds_0/t_order=t_order_0")
	first, err := e.Rewrite(ctx, routing.NewRouteContext(unit))
	require.Nil(t, err)
	second, err := e.Rewrite(ctx, routing.NewRouteContext(unit))
	require.Nil(t, err)

	u1, _ := first.Get(unit)
	u2, _ := second.Get(unit)
	assert.Equal(t, "SELECT * FROM t_order_0 WHERE id = ?", u1.SQL)
	assert.Equal(t, u1, u2)
	assert.Equal(t, 1, e.Cache().Len())

	uncached := rewriteUnit(t, ctx, unit)
	assert.Equal(t, u1.SQL, uncached.SQL)

	e.Close()
	assert.Equal(t, 0, e.Cache().Len())
}
