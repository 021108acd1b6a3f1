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
	"github.com/endink/sharding-rewrite/parser"
	"github.com/pingcap/parser/ast"
)

// explainTables locates every reference of the tables in the statement, including owners of columns like t_order.order_id.
func (e *sqlExplain) explainTables(node ast.Node) error {
	tables := make(map[string]map[string]struct{})
	for _, t := range parser.TableNames(node) {
		schemas, exists := tables[t.Name.L]
		if !exists {
			schemas = make(map[string]struct{})
			tables[t.Name.L] = schemas
		}
		if t.Schema.L != "" {
			schemas[t.Schema.L] = struct{}{}
		}
	}
	if len(tables) == 0 {
		return nil
	}

	for i, tok := range e.tokens {
		if !tok.isIdentifier() {
			continue
		}
		name := lower(tok.identifier())
		schemas, ok := tables[name]
		if !ok {
			continue
		}
		if next := e.tokenAt(i + 1); tok.kind == lexIdent && next != nil && next.isSymbol('(') {
			continue
		}
		prev := e.tokenAt(i - 1)
		if prev != nil && prev.isSymbol('.') {
			owner := e.tokenAt(i - 2)
			if owner == nil || !owner.isIdentifier() {
				continue
			}
			schema := lower(owner.identifier())
			if _, isSchema := schemas[schema]; !isSchema {
				continue
			}
			e.stmt.SchemaSegments = append(e.stmt.SchemaSegments, &SchemaSegment{
				Begin:     owner.begin,
				Text:      owner.text,
				Name:      schema,
				TableName: name,
			})
		} else if prev != nil && prev.isKeyword("AS") {
			continue
		}
		e.stmt.TableSegments = append(e.stmt.TableSegments, &TableSegment{
			Begin: tok.begin,
			Text:  tok.text,
			Name:  name,
		})
	}
	return nil
}

func (e *sqlExplain) explainIndex(node ast.Node) {
	var indexName, tableName string
	switch n := node.(type) {
	case *ast.CreateIndexStmt:
		indexName, tableName = n.IndexName, n.Table.Name.L
	case *ast.DropIndexStmt:
		indexName, tableName = n.IndexName, n.Table.Name.L
	default:
		return
	}
	for i, tok := range e.tokens {
		if !tok.isKeyword("INDEX") {
			continue
		}
		for j := i + 1; j < len(e.tokens); j++ {
			candidate := e.tokens[j]
			if candidate.isIdentifier() && lower(candidate.identifier()) == lower(indexName) {
				e.stmt.IndexSegments = append(e.stmt.IndexSegments, &IndexSegment{
					Begin:     candidate.begin,
					Text:      candidate.text,
					Name:      lower(indexName),
					TableName: tableName,
				})
				return
			}
		}
	}
}
