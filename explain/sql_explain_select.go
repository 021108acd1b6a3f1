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

package explain

import (
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/parser/ast"
	driver "github.com/pingcap/tidb/types/parser_driver"
)

var projectionBoundaries = []string{"FROM", "WHERE", "GROUP", "HAVING", "WINDOW", "ORDER", "LIMIT", "FOR", "LOCK", "INTO", "UNION"}
var groupByBoundaries = []string{"WINDOW", "ORDER", "LIMIT", "FOR", "LOCK", "INTO", "UNION"}

func (e *sqlExplain) explainSelect(stmt *ast.SelectStmt) error {
	selectIdx := -1
	for i, t := range e.tokens {
		if t.isKeyword("SELECT") {
			selectIdx = i
			break
		}
	}
	if selectIdx < 0 {
		return errors.Errorf("keyword SELECT is not found in sql: %s", e.sql)
	}
	depth := e.tokens[selectIdx].depth

	boundary := e.findKeyword(selectIdx+1, depth, projectionBoundaries...)
	projections := &ProjectionsContext{Stop: e.clauseStop(boundary)}
	if stmt.Fields != nil {
		if err := explainProjections(stmt.Fields.Fields, projections); err != nil {
			return err
		}
	}
	e.stmt.ProjectionsCtx = projections

	if stmt.GroupBy != nil && len(stmt.GroupBy.Items) > 0 {
		items, err := byItems(stmt.GroupBy.Items)
		if err != nil {
			return err
		}
		groupIdx := e.findGroupBy(selectIdx+1, depth)
		if groupIdx < 0 {
			return errors.Errorf("keyword GROUP BY is not found in sql: %s", e.sql)
		}
		stop := e.clauseStop(e.findKeyword(groupIdx+2, depth, groupByBoundaries...))
		e.stmt.GroupByCtx = &GroupByContext{Items: items, Stop: stop}
	}

	if stmt.OrderBy != nil && len(stmt.OrderBy.Items) > 0 {
		items, err := byItems(stmt.OrderBy.Items)
		if err != nil {
			return err
		}
		e.stmt.OrderByCtx = &OrderByContext{Items: items}
	} else if e.stmt.GroupByCtx != nil {
		items := make([]ByItem, len(e.stmt.GroupByCtx.Items))
		copy(items, e.stmt.GroupByCtx.Items)
		e.stmt.OrderByCtx = &OrderByContext{Items: items, Generated: true}
	}

	if stmt.Limit != nil {
		return e.explainLimit(stmt.Limit, selectIdx+1, depth)
	}
	return nil
}

func (e *sqlExplain) findGroupBy(start int, depth int) int {
	for i := start; i < len(e.tokens); i++ {
		i = e.findKeyword(i, depth, "GROUP")
		if i < 0 || !e.isKeywordAt(i, "GROUP") {
			return -1
		}
		if e.isKeywordAt(i+1, "BY") {
			return i
		}
	}
	return -1
}

func explainProjections(fields []*ast.SelectField, projections *ProjectionsContext) error {
	for _, f := range fields {
		if f.WildCard != nil {
			projections.Star = true
			continue
		}
		text, err := restoreText(f.Expr)
		if err != nil {
			return errors.Trace(err)
		}
		projections.Columns = append(projections.Columns, text)
		if c, ok := f.Expr.(*ast.ColumnNameExpr); ok {
			projections.Columns = append(projections.Columns, c.Name.Name.O)
		}
		if f.AsName.O != "" {
			projections.Columns = append(projections.Columns, f.AsName.O)
		}
		if agg, ok := f.Expr.(*ast.AggregateFuncExpr); ok {
			aggregation := &AggregationProjection{
				Function: strings.ToUpper(agg.F),
				Distinct: agg.Distinct,
			}
			if len(agg.Args) > 0 {
				if aggregation.Argument, err = restoreText(agg.Args[0]); err != nil {
					return errors.Trace(err)
				}
			}
			projections.Aggregations = append(projections.Aggregations, aggregation)
		}
	}
	return nil
}

func byItems(items []*ast.ByItem) ([]ByItem, error) {
	result := make([]ByItem, 0, len(items))
	for _, item := range items {
		text, err := restoreText(item.Expr)
		if err != nil {
			return nil, errors.Trace(err)
		}
		by := ByItem{Column: text, Desc: item.Desc}
		if p, ok := item.Expr.(*ast.PositionExpr); ok {
			by.Position = p.N
		}
		result = append(result, by)
	}
	return result, nil
}

// explainLimit supports both 'LIMIT offset, count' and 'LIMIT count OFFSET offset'.
func (e *sqlExplain) explainLimit(limit *ast.Limit, start int, depth int) error {
	limitIdx := e.findKeyword(start, depth, "LIMIT")
	if limitIdx < 0 || !e.isKeywordAt(limitIdx, "LIMIT") {
		return errors.Errorf("keyword LIMIT is not found in sql: %s", e.sql)
	}
	first := e.tokenAt(limitIdx + 1)
	var countTok, offsetTok *lexToken
	switch second := e.tokenAt(limitIdx + 2); {
	case second != nil && second.isSymbol(','):
		offsetTok, countTok = first, e.tokenAt(limitIdx+3)
	case second != nil && second.isKeyword("OFFSET"):
		countTok, offsetTok = first, e.tokenAt(limitIdx+3)
	default:
		countTok = first
	}

	pagination := &PaginationContext{}
	var err error
	if limit.Count != nil {
		if pagination.RowCount, err = e.paginationValue(limit.Count, countTok); err != nil {
			return err
		}
	}
	if limit.Offset != nil {
		if pagination.Offset, err = e.paginationValue(limit.Offset, offsetTok); err != nil {
			return err
		}
	}
	e.stmt.PaginationCtx = pagination
	return nil
}

func (e *sqlExplain) paginationValue(expr ast.ExprNode, tok *lexToken) (*PaginationValue, error) {
	switch v := expr.(type) {
	case *driver.ParamMarkerExpr:
		index, err := e.parameterIndex(v)
		if err != nil {
			return nil, err
		}
		value, err := toInt64(e.params[index])
		if err != nil {
			return nil, errors.Annotatef(err, "invalid limit parameter at index %d", index)
		}
		return &PaginationValue{Begin: v.Offset, Text: "?", Value: value, ParameterIndex: index}, nil
	case *driver.ValueExpr:
		if tok == nil || tok.kind != lexNumber {
			return nil, errors.Errorf("limit value is not found in sql: %s", e.sql)
		}
		return &PaginationValue{Begin: tok.begin, Text: tok.text, Value: v.GetInt64(), ParameterIndex: -1}, nil
	default:
		return nil, errors.Errorf("unsupported limit value type %T", expr)
	}
}
