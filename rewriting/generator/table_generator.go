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

// tableGenerator emits tokens of sharding tables, all tables are emitted when there is no rule.
type tableGenerator struct {
	rule *core.ShardingRule
}

func (g *tableGenerator) Name() string {
	return "table"
}

func (g *tableGenerator) IsGenerateSQLToken(stmt explain.StatementContext) bool {
	return len(stmt.Tables()) > 0
}

func (g *tableGenerator) GenerateSQLTokens(stmt explain.StatementContext) ([]token.SQLToken, error) {
	tokens := make([]token.SQLToken, 0, len(stmt.Tables()))
	for _, t := range stmt.Tables() {
		if err := checkSegment(t.Begin, t.Text, "table"); err != nil {
			return nil, err
		}
		if g.rule != nil {
			if _, ok := g.rule.FindTable(t.Name); !ok {
				continue
			}
		}
		tokens = append(tokens, &token.TableToken{
			Begin: t.Begin,
			Text:  t.Text,
			Name:  core.TrimAndLower(token.Unquote(t.Name)),
			Quote: token.QuoteOf(t.Text),
		})
	}
	return tokens, nil
}
