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
	"testing"

	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/routing"
	"github.com/endink/sharding-rewrite/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteExplainedSelect(t *testing.T) {
	sql := "SELECT * FROM t_order WHERE user_id = ? LIMIT 10, 20"
	stmt, err := explain.Explain(sql, []interface{}{3}, explain.WithMultiRoute(true))
	require.Nil(t, err)

	ctx := mustContext(t, sql, stmt, []interface{}{3}, WithRule(newTestRule(t)))
	route := routing.NewRouteContext(
		mustRouteUnit(t, "ds_0/t_order=t_order_0"),
		mustRouteUnit(t, "ds_1/t_order=t_order_1"),
	)
	result, err := mustRouteEngine(t).Rewrite(ctx, route)
	require.Nil(t, err)

	execs := result.ExecutionUnits()
	require.Equal(t, 2, len(execs))
	assert.Equal(t, "SELECT * FROM t_order_0 WHERE user_id = ? LIMIT 0, 30", execs[0].Unit.SQL)
	assert.Equal(t, "SELECT * FROM t_order_1 WHERE user_id = ? LIMIT 0, 30", execs[1].Unit.SQL)
	testkit.AssertEqualSql(t, "select * from t_order_1 where user_id=? limit 0,30", execs[1].Unit.SQL)
	testkit.MustMatch(t, []interface{}{3}, execs[1].Unit.Parameters, "parameters")
}

func TestRewriteExplainedInsert(t *testing.T) {
	sql := "INSERT INTO t_order (order_id, user_id) VALUES (?, ?), (?, ?)"
	stmt, err := explain.Explain(sql, []interface{}{1, 10, 2, 11})
	require.Nil(t, err)

	ctx := mustContext(t, sql, stmt, []interface{}{1, 10, 2, 11}, WithRule(newTestRule(t)))
	unit := mustRouteUnit(t, "ds_1/t_order=t_order_1")
	u := rewriteUnit(t, ctx, unit)
	assert.Equal(t, "INSERT INTO t_order_1 (order_id, user_id) VALUES (?, ?), (?, ?)", u.SQL)
	assert.Equal(t, []interface{}{1, 10, 2, 11}, u.Parameters)
}

func TestRewriteDerivedItemsRenameOwners(t *testing.T) {
	cases := []struct {
		sql    string
		first  string
		second string
	}{
		{
			sql:    "SELECT COUNT(*) FROM t_order GROUP BY t_order.user_id",
			first:  "SELECT COUNT(*), t_order_0.user_id AS GROUP_BY_DERIVED_0 FROM t_order_0 GROUP BY t_order_0.user_id ORDER BY t_order_0.user_id ASC",
			second: "SELECT COUNT(*), t_order_1.user_id AS GROUP_BY_DERIVED_0 FROM t_order_1 GROUP BY t_order_1.user_id ORDER BY t_order_1.user_id ASC",
		},
		{
			sql:    "SELECT t_order.user_id, COUNT(*) FROM t_order GROUP BY t_order.user_id",
			first:  "SELECT t_order_0.user_id, COUNT(*) FROM t_order_0 GROUP BY t_order_0.user_id ORDER BY t_order_0.user_id ASC",
			second: "SELECT t_order_1.user_id, COUNT(*) FROM t_order_1 GROUP BY t_order_1.user_id ORDER BY t_order_1.user_id ASC",
		},
		{
			sql:    "SELECT order_id FROM t_order ORDER BY t_order.user_id",
			first:  "SELECT order_id, t_order_0.user_id AS ORDER_BY_DERIVED_0 FROM t_order_0 ORDER BY t_order_0.user_id",
			second: "SELECT order_id, t_order_1.user_id AS ORDER_BY_DERIVED_0 FROM t_order_1 ORDER BY t_order_1.user_id",
		},
		{
			sql:    "SELECT o.order_id FROM t_order o ORDER BY o.user_id",
			first:  "SELECT o.order_id, o.user_id AS ORDER_BY_DERIVED_0 FROM t_order_0 o ORDER BY o.user_id",
			second: "SELECT o.order_id, o.user_id AS ORDER_BY_DERIVED_0 FROM t_order_1 o ORDER BY o.user_id",
		},
	}
	for _, c := range cases {
		t.Run(c.sql, func(t *testing.T) {
			stmt, err := explain.Explain(c.sql, nil, explain.WithMultiRoute(true))
			require.Nil(t, err)

			ctx := mustContext(t, c.sql, stmt, nil, WithRule(newTestRule(t)))
			route := routing.NewRouteContext(
				mustRouteUnit(t, "ds_0/t_order=t_order_0"),
				mustRouteUnit(t, "ds_1/t_order=t_order_1"),
			)
			result, err := mustRouteEngine(t).Rewrite(ctx, route)
			require.Nil(t, err)

			execs := result.ExecutionUnits()
			require.Equal(t, 2, len(execs))
			assert.Equal(t, c.first, execs[0].Unit.SQL)
			assert.Equal(t, c.second, execs[1].Unit.SQL)
		})
	}
}
