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

package rewriting

import (
	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/explain"
	"github.com/endink/sharding-rewrite/rewriting/generator"
	"github.com/endink/sharding-rewrite/rewriting/parameter"
	"github.com/endink/sharding-rewrite/rewriting/token"
	"github.com/pingcap/errors"
)

type contextOptions struct {
	rule       *core.ShardingRule
	generators []generator.Generator
}

type ContextOption func(o *contextOptions)

// WithRule rewrites tables of the rule only, and enables schema rewriting.
func WithRule(rule *core.ShardingRule) ContextOption {
	return func(o *contextOptions) {
		o.rule = rule
	}
}

// WithGenerators replaces default generators.
func WithGenerators(generators ...generator.Generator) ContextOption {
	return func(o *contextOptions) {
		o.generators = generators
	}
}

// NewRewriteContext generates tokens of the statement and builds its parameters.
func NewRewriteContext(sql string, stmt explain.StatementContext, params []interface{}, opts ...ContextOption) (*RewriteContext, error) {
	if stmt == nil {
		return nil, errors.New("statement context can not be nil")
	}
	options := &contextOptions{}
	for _, opt := range opts {
		opt(options)
	}
	generators := options.generators
	if generators == nil {
		generators = generator.Defaults(options.rule)
	}

	tokens, err := generator.Generate(stmt, generators...)
	if err != nil {
		return nil, err
	}
	for _, t := range tokens {
		if t.BeginPosition() < 0 || t.StopPosition() < t.BeginPosition() || t.StopPosition() > len(sql) {
			return nil, errors.Annotatef(ErrTokenOutOfRange, "token %T [%d, %d), sql length %d", t, t.BeginPosition(), t.StopPosition(), len(sql))
		}
	}

	builder, err := newParameterBuilder(stmt, params)
	if err != nil {
		return nil, err
	}
	return &RewriteContext{
		sql:         sql,
		tokens:      tokens,
		fingerprint: token.Fingerprint(tokens),
		stmt:        stmt,
		parameters:  builder,
		rule:        options.rule,
	}, nil
}

func newParameterBuilder(stmt explain.StatementContext, params []interface{}) (parameter.Builder, error) {
	if values := stmt.InsertValues(); values != nil {
		b, err := parameter.NewGroupedBuilder(values.GroupedParameters, values.GenericParameters, values.OriginalDataNodes)
		return b, errors.Trace(err)
	}
	b := parameter.NewStandardBuilder(params)
	p := stmt.Pagination()
	if p == nil || !stmt.PaginationNeedsRewrite() {
		return b, nil
	}
	if p.Offset.IsParameter() {
		if p.Offset.ParameterIndex >= len(params) {
			return nil, errors.Errorf("offset parameter index %d out of range, %d parameters", p.Offset.ParameterIndex, len(params))
		}
		b.AddReplacedParameter(p.Offset.ParameterIndex, int64(0))
	}
	if p.RowCount.IsParameter() {
		if p.RowCount.ParameterIndex >= len(params) {
			return nil, errors.Errorf("row count parameter index %d out of range, %d parameters", p.RowCount.ParameterIndex, len(params))
		}
		b.AddReplacedParameter(p.RowCount.ParameterIndex, revisedRowCount(stmt, p.RowCount.Value))
	}
	return b, nil
}
