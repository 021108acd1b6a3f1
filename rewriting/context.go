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

	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/rewriting/parameter"
	"github.com/endink/sharding-rewrite/rewriting/token"
)

// RewriteContext is built once per statement and never changed after that.
type RewriteContext struct {
	sql         string
	tokens      []token.SQLToken
	fingerprint string
	stmt        explain.StatementContext
	parameters  parameter.Builder
	rule        *core.ShardingRule
}

func (c *RewriteContext) SQL() string {
	return c.sql
}

// Tokens returns tokens sorted by begin position.
func (c *RewriteContext) Tokens() []token.SQLToken {
	return c.tokens
}

func (c *RewriteContext) Statement() explain.StatementContext {
	return c.stmt
}

func (c *RewriteContext) ParameterBuilder() parameter.Builder {
	return c.parameters
}

// Rule returns nil when the statement is rewritten without sharding rule.
func (c *RewriteContext) Rule() *core.ShardingRule {
	return c.rule
}

// isMaxRowCount reports whether every shard must return all rows, that happens when rows are grouped in memory.
func isMaxRowCount(stmt explain.StatementContext) bool {
	gb := stmt.GroupBy()
	grouped := gb != nil && len(gb.Items) > 0
	return (grouped || stmt.HasAggregation()) && !stmt.IsSameGroupByAndOrderBy()
}

func revisedRowCount(stmt explain.StatementContext, rowCount int64) int64 {
	if isMaxRowCount(stmt) {
		return math.MaxInt32
	}
	return rowCount + stmt.Pagination().OffsetValue()
}
