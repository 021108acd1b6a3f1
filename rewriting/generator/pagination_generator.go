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

// paginationGenerator emits tokens of literal LIMIT values, parameter markers are rewritten through parameters.
type paginationGenerator struct{}

func (g *paginationGenerator) Name() string {
	return "pagination"
}

func (g *paginationGenerator) IsGenerateSQLToken(stmt explain.StatementContext) bool {
	return stmt.Pagination() != nil
}

func (g *paginationGenerator) GenerateSQLTokens(stmt explain.StatementContext) ([]token.SQLToken, error) {
	var tokens []token.SQLToken
	p := stmt.Pagination()
	if p.Offset != nil && !p.Offset.IsParameter() {
		if err := checkSegment(p.Offset.Begin, p.Offset.Text, "offset"); err != nil {
			return nil, err
		}
		tokens = append(tokens, &token.OffsetToken{Begin: p.Offset.Begin, Text: p.Offset.Text, Value: p.Offset.Value})
	}
	if p.RowCount != nil && !p.RowCount.IsParameter() {
		if err := checkSegment(p.RowCount.Begin, p.RowCount.Text, "row count"); err != nil {
			return nil, err
		}
		tokens = append(tokens, &token.RowCountToken{Begin: p.RowCount.Begin, Text: p.RowCount.Text, Value: p.RowCount.Value})
	}
	return tokens, nil
}
