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
	"github.com/pingcap/errors"
	"go.uber.org/multierr"
)

var ErrInvalidSegment = errors.New("invalid statement segment")

// Generator decides whether a statement needs its tokens and emits them.
type Generator interface {
	Name() string
	IsGenerateSQLToken(stmt explain.StatementContext) bool
	GenerateSQLTokens(stmt explain.StatementContext) ([]token.SQLToken, error)
}

// Defaults returns generators in the order they run, rule can be nil for statements without sharding rule.
func Defaults(rule *core.ShardingRule) []Generator {
	return []Generator{
		&tableGenerator{rule: rule},
		&schemaGenerator{rule: rule},
		&indexGenerator{},
		&paginationGenerator{},
		&projectionsGenerator{},
		&orderByGenerator{},
	}
}

// Generate runs generators one by one and sorts tokens by begin position, errors of all generators are combined.
func Generate(stmt explain.StatementContext, generators ...Generator) ([]token.SQLToken, error) {
	var (
		tokens []token.SQLToken
		err    error
	)
	for _, g := range generators {
		if !g.IsGenerateSQLToken(stmt) {
			continue
		}
		generated, e := g.GenerateSQLTokens(stmt)
		if e != nil {
			err = multierr.Append(err, errors.Annotatef(e, "generator '%s'", g.Name()))
			continue
		}
		tokens = append(tokens, generated...)
	}
	if err != nil {
		return nil, err
	}
	token.Sort(tokens)
	return tokens, nil
}

func checkSegment(begin int, text string, kind string) error {
	if begin < 0 || text == "" {
		return errors.Annotatef(ErrInvalidSegment, "%s segment at %d with text '%s'", kind, begin, text)
	}
	return nil
}
