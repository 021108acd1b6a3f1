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
	"fmt"
	"strconv"
	"strings"

	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/rewriting/token"
	"github.com/pingcap/errors"
)

// Renderer replaces token spans of the original sql, text between tokens is copied byte by byte.
type Renderer struct {
	cache *RenderCache
}

// NewRenderer creates renderer, cache can be nil.
func NewRenderer(cache *RenderCache) *Renderer {
	return &Renderer{cache: cache}
}

func (r *Renderer) Render(ctx *RewriteContext, target RenderTarget) (string, error) {
	if len(ctx.tokens) == 0 {
		return ctx.sql, nil
	}
	if r.cache == nil {
		return render(ctx, target)
	}
	key := renderKey(ctx, target)
	if sql, ok := r.cache.Get(key); ok {
		return sql, nil
	}
	sql, err := render(ctx, target)
	if err != nil {
		return "", err
	}
	r.cache.Add(key, sql)
	return sql, nil
}

func render(ctx *RewriteContext, target RenderTarget) (string, error) {
	sql := ctx.sql
	sb := core.NewStringBuilder()
	sb.Grow(len(sql) + 32)
	cursor := 0
	for _, t := range ctx.tokens {
		begin, stop := t.BeginPosition(), t.StopPosition()
		if begin < cursor || stop < begin || stop > len(sql) {
			return "", errors.Annotatef(ErrTokenOutOfRange, "token %T [%d, %d), cursor %d, sql length %d", t, begin, stop, cursor, len(sql))
		}
		sb.WriteString(sql[cursor:begin])
		text, err := tokenText(ctx, t, target)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		cursor = stop
	}
	sb.WriteString(sql[cursor:])
	return sb.String(), nil
}

func tokenText(ctx *RewriteContext, t token.SQLToken, target RenderTarget) (string, error) {
	stmt := ctx.stmt
	switch v := t.(type) {
	case *token.TableToken:
		if actual, ok := target.ActualTable(ctx.rule, v.Name); ok {
			return v.Quote.Wrap(actual), nil
		}
		return v.Text, nil
	case *token.SchemaToken:
		return schemaText(ctx, v, target)
	case *token.IndexToken:
		if v.TableName == "" {
			return v.Text, nil
		}
		if actual, ok := target.ActualTable(ctx.rule, v.TableName); ok {
			return v.Quote.Wrap(v.IndexName + "_" + actual), nil
		}
		return v.Text, nil
	case *token.ItemsToken:
		sb := &strings.Builder{}
		for _, item := range v.Items {
			sb.WriteString(", ")
			sb.WriteString(item.Format(expressionText(ctx, item.Expression, target)))
		}
		return sb.String(), nil
	case *token.RowCountToken:
		if !stmt.PaginationNeedsRewrite() {
			return v.Text, nil
		}
		return strconv.FormatInt(revisedRowCount(stmt, v.Value), 10), nil
	case *token.OffsetToken:
		if !stmt.PaginationNeedsRewrite() {
			return v.Text, nil
		}
		return "0", nil
	case *token.OrderByToken:
		items := make([]string, len(v.Items))
		for i, item := range v.Items {
			items[i] = expressionText(ctx, item.Expression, target) + item.Direction()
		}
		return " ORDER BY " + strings.Join(items, ", "), nil
	default:
		panic(fmt.Sprintf("unknown sql token type %T", t))
	}
}

// expressionText renames table qualifiers of the expression for the target, alias qualifiers are kept.
func expressionText(ctx *RewriteContext, e token.Expression, target RenderTarget) string {
	if len(e.Owners) == 0 {
		return e.Text
	}
	sb := &strings.Builder{}
	cursor := 0
	for _, owner := range e.Owners {
		actual, ok := target.ActualTable(ctx.rule, owner.Table)
		if !ok {
			continue
		}
		if owner.Schema {
			if ctx.rule == nil || target.DataSource == "" {
				continue
			}
			actual = ctx.rule.Schema(target.DataSource)
		}
		sb.WriteString(e.Text[cursor:owner.Begin])
		sb.WriteString(owner.Quote().Wrap(actual))
		cursor = owner.Begin + len(owner.Text)
	}
	sb.WriteString(e.Text[cursor:])
	return sb.String()
}

// schemaText resolves schema of the target data source, default data source is used when sql has no target.
func schemaText(ctx *RewriteContext, t *token.SchemaToken, target RenderTarget) (string, error) {
	if ctx.rule == nil {
		return t.Text, nil
	}
	ds := target.DataSource
	if ds == "" {
		if !ctx.rule.HasDefaultDataSource() {
			return "", errors.Annotatef(ErrNoDefaultDataSource, "can not resolve schema '%s'", t.SchemaName)
		}
		ds = ctx.rule.DefaultDataSource
	}
	return t.Quote.Wrap(ctx.rule.Schema(ds)), nil
}

func renderKey(ctx *RewriteContext, target RenderTarget) string {
	stmt := ctx.stmt
	return fmt.Sprintf("%s\x00%s\x00%s\x00%p\x00%t:%t:%d",
		ctx.sql,
		ctx.fingerprint,
		target.key(),
		ctx.rule,
		stmt.PaginationNeedsRewrite(),
		stmt.Pagination() != nil && isMaxRowCount(stmt),
		stmt.Pagination().OffsetValue(),
	)
}
