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
	"fmt"
	"strings"

	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/rewriting/token"
)

const (
	avgCountAlias = "AVG_DERIVED_COUNT_%d"
	avgSumAlias   = "AVG_DERIVED_SUM_%d"
	orderByAlias  = "ORDER_BY_DERIVED_%d"
	groupByAlias  = "GROUP_BY_DERIVED_%d"
)

// projectionsGenerator appends columns the merger needs but the select list does not carry.
type projectionsGenerator struct{}

func (g *projectionsGenerator) Name() string {
	return "projections"
}

func (g *projectionsGenerator) IsGenerateSQLToken(stmt explain.StatementContext) bool {
	p := stmt.Projections()
	return stmt.RequiresMerge() && p != nil && !p.Star
}

func (g *projectionsGenerator) GenerateSQLTokens(stmt explain.StatementContext) ([]token.SQLToken, error) {
	p := stmt.Projections()
	if p.Stop < 0 {
		return nil, ErrInvalidSegment
	}
	items := derivedItems(stmt)
	if len(items) == 0 {
		return nil, nil
	}
	return []token.SQLToken{&token.ItemsToken{Begin: p.Stop, Items: items}}, nil
}

func derivedItems(stmt explain.StatementContext) []token.DerivedItem {
	var items []token.DerivedItem
	p := stmt.Projections()

	avg := 0
	for _, agg := range p.Aggregations {
		if !strings.EqualFold(agg.Function, "avg") {
			continue
		}
		arg := token.ParseExpression(agg.Argument)
		items = append(items,
			token.DerivedItem{Function: "COUNT", Distinct: agg.Distinct, Expression: arg, Alias: fmt.Sprintf(avgCountAlias, avg)},
			token.DerivedItem{Function: "SUM", Distinct: agg.Distinct, Expression: arg, Alias: fmt.Sprintf(avgSumAlias, avg)})
		avg++
	}

	derived := make(map[string]bool)
	if o := stmt.OrderBy(); o != nil && !o.Generated {
		n := 0
		for _, item := range o.Items {
			if !needDerive(p, item, derived) {
				continue
			}
			items = append(items, token.DerivedItem{Expression: token.ParseExpression(item.Column), Alias: fmt.Sprintf(orderByAlias, n)})
			derived[strings.ToLower(item.Column)] = true
			n++
		}
	}
	if gb := stmt.GroupBy(); gb != nil {
		n := 0
		for _, item := range gb.Items {
			if !needDerive(p, item, derived) {
				continue
			}
			items = append(items, token.DerivedItem{Expression: token.ParseExpression(item.Column), Alias: fmt.Sprintf(groupByAlias, n)})
			derived[strings.ToLower(item.Column)] = true
			n++
		}
	}
	return items
}

func needDerive(p *explain.ProjectionsContext, item explain.ByItem, derived map[string]bool) bool {
	if item.Position > 0 || item.Column == "" || derived[strings.ToLower(item.Column)] {
		return false
	}
	if p.Contains(item.Column) {
		return false
	}
	if i := strings.LastIndexByte(item.Column, '.'); i >= 0 && p.Contains(item.Column[i+1:]) {
		return false
	}
	return true
}
