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

package generator

import (
	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/rewriting/token"
)

// orderByGenerator injects an ORDER BY clause derived from GROUP BY right after the group by clause.
type orderByGenerator struct{}

func (g *orderByGenerator) Name() string {
	return "order by"
}

func (g *orderByGenerator) IsGenerateSQLToken(stmt explain.StatementContext) bool {
	o, gb := stmt.OrderBy(), stmt.GroupBy()
	return stmt.RequiresMerge() && o != nil && o.Generated && len(o.Items) > 0 && gb != nil
}

func (g *orderByGenerator) GenerateSQLTokens(stmt explain.StatementContext) ([]token.SQLToken, error) {
	gb := stmt.GroupBy()
	if gb.Stop < 0 {
		return nil, ErrInvalidSegment
	}
	items := make([]token.OrderByItem, 0, len(stmt.OrderBy().Items))
	for _, item := range stmt.OrderBy().Items {
		items = append(items, token.OrderByItem{Expression: token.ParseExpression(item.Column), Desc: item.Desc})
	}
	return []token.SQLToken{&token.OrderByToken{Begin: gb.Stop, Items: items}}, nil
}
