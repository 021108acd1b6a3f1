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
	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/rewriting/token"
)

type indexGenerator struct{}

func (g *indexGenerator) Name() string {
	return "index"
}

func (g *indexGenerator) IsGenerateSQLToken(stmt explain.StatementContext) bool {
	return len(stmt.Indexes()) > 0
}

func (g *indexGenerator) GenerateSQLTokens(stmt explain.StatementContext) ([]token.SQLToken, error) {
	tokens := make([]token.SQLToken, 0, len(stmt.Indexes()))
	for _, idx := range stmt.Indexes() {
		if err := checkSegment(idx.Begin, idx.Text, "index"); err != nil {
			return nil, err
		}
		tokens = append(tokens, &token.IndexToken{
			Begin:     idx.Begin,
			Text:      idx.Text,
			IndexName: token.Unquote(idx.Name),
			TableName: core.TrimAndLower(idx.TableName),
			Quote:     token.QuoteOf(idx.Text),
		})
	}
	return tokens, nil
}
