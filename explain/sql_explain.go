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

	"github.com/endink/sharding-rewrite/logging"
	"github.com/endink/sharding-rewrite/parser"
	"github.com/pingcap/errors"
	"github.com/pingcap/parser/ast"
	driver "github.com/pingcap/tidb/types/parser_driver"
)

var logger = logging.GetLogger("explain")

type sqlExplain struct {
	sql     string
	tokens  []*lexToken
	params  []interface{}
	markers map[int]int
	stmt    *Statement
}

// Explain parses a mysql statement and builds the statement context used by sql rewriting.
func Explain(sql string, params []interface{}, opts ...Option) (*Statement, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	node, err := parser.ParseSQL(sql)
	if err != nil {
		return nil, err
	}

	markers, err := parser.ParamMarkers(node)
	if err != nil {
		return nil, errors.Trace(err)
	}

	e := &sqlExplain{
		sql:     sql,
		tokens:  scanTokens(sql),
		params:  params,
		markers: make(map[int]int, len(markers)),
		stmt:    &Statement{MultiRoute: o.multiRoute},
	}
	for i, m := range markers {
		e.markers[m.Offset] = i
	}

	if err = e.explainTables(node); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case *ast.SelectStmt:
		e.stmt.StmtType = SelectStatement
		err = e.explainSelect(n)
	case *ast.InsertStmt:
		e.stmt.StmtType = InsertStatement
		err = e.explainInsert(n, o.dataNodes)
	case *ast.UpdateStmt:
		e.stmt.StmtType = UpdateStatement
	case *ast.DeleteStmt:
		e.stmt.StmtType = DeleteStatement
	case ast.DDLNode:
		e.stmt.StmtType = DDLStatement
		e.explainIndex(n)
	default:
		e.stmt.StmtType = OtherStatement
	}
	if err != nil {
		return nil, err
	}

	e.stmt.NeedPaginationRewrite = o.multiRoute && e.stmt.PaginationCtx != nil
	e.stmt.NeedAggregationUnionRewrite = o.aggregationUnion
	logger.Debugf("explain %s statement, tables: %v, sql: %s", e.stmt.StmtType, e.stmt.TableNames(), sql)
	return e.stmt, nil
}

// parameterIndex returns index of the parameter marker in the statement.
func (e *sqlExplain) parameterIndex(marker *driver.ParamMarkerExpr) (int, error) {
	index, ok := e.markers[marker.Offset]
	if !ok {
		return -1, errors.Errorf("parameter marker at position %d is not found", marker.Offset)
	}
	if index >= len(e.params) {
		return -1, errors.Errorf("missing parameter at index %d, %d parameters are provided", index, len(e.params))
	}
	return index, nil
}

func (e *sqlExplain) parameterValues(markers []*driver.ParamMarkerExpr) ([]interface{}, error) {
	values := make([]interface{}, 0, len(markers))
	for _, m := range markers {
		index, err := e.parameterIndex(m)
		if err != nil {
			return nil, err
		}
		values = append(values, e.params[index])
	}
	return values, nil
}

func (e *sqlExplain) tokenAt(i int) *lexToken {
	if i >= 0 && i < len(e.tokens) {
		return e.tokens[i]
	}
	return nil
}

func (e *sqlExplain) isKeywordAt(i int, keyword string) bool {
	t := e.tokenAt(i)
	return t != nil && t.isKeyword(keyword)
}

// findKeyword finds the first token at given depth whose text is one of keywords, searching from index start.
// The end of statement or of the enclosing parentheses is returned as well.
func (e *sqlExplain) findKeyword(start int, depth int, keywords ...string) int {
	for i := start; i < len(e.tokens); i++ {
		t := e.tokens[i]
		if t.depth < depth {
			return i
		}
		if t.depth > depth {
			continue
		}
		if t.isSymbol(';') {
			return i
		}
		for _, k := range keywords {
			if t.isKeyword(k) {
				return i
			}
		}
	}
	return -1
}

// clauseStop returns the end position of the last token before index boundary, boundary -1 means end of statement.
func (e *sqlExplain) clauseStop(boundary int) int {
	last := boundary - 1
	if boundary < 0 {
		last = len(e.tokens) - 1
		for last >= 0 && e.tokens[last].isSymbol(';') {
			last--
		}
	}
	if last < 0 {
		return 0
	}
	return e.tokens[last].end
}

func lower(s string) string {
	return strings.ToLower(s)
}
