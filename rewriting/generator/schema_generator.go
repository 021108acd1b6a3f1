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

type schemaGenerator struct {
	rule *core.ShardingRule
}

func (g *schemaGenerator) Name() string {
	return "schema"
}

func (g *schemaGenerator) IsGenerateSQLToken(stmt explain.StatementContext) bool {
	return g.rule != nil && len(stmt.Schemas()) > 0
}

func (g *schemaGenerator) GenerateSQLTokens(stmt explain.StatementContext) ([]token.SQLToken, error) {
	tokens := make([]token.SQLToken, 0, len(stmt.Schemas()))
	for _, s := range stmt.Schemas() {
		if err := checkSegment(s.Begin, s.Text, "schema"); err != nil {
			return nil, err
		}
		tokens = append(tokens, &token.SchemaToken{
			Begin:      s.Begin,
			Text:       s.Text,
			SchemaName: s.Name,
			TableName:  core.TrimAndLower(s.TableName),
			Quote:      token.QuoteOf(s.Text),
		})
	}
	return tokens, nil
}
