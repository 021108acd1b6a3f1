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

package script

import (
	"fmt"
	"strings"
)

var _ InlineExpression = &inlineExpr{}

// InlineExpression is a text template with embed scripts, e.g. ds_${range(0,1)}.t_order_${[0,1]}.
// Comma split the expression into several independent expressions.
type InlineExpression interface {
	Flat() ([]string, error)
	RawExpression() string
}

type inlineExpr struct {
	expression string
	groups     []*inlineGroup
}

func NewInlineExpression(expression string) (InlineExpression, error) {
	groups, err := splitGroups(expression)
	if err != nil {
		return nil, err
	}
	return &inlineExpr{expression: expression, groups: groups}, nil
}

func (i *inlineExpr) RawExpression() string {
	return i.expression
}

// Flat evaluates every script and returns the cartesian product in declaration order, duplicates are removed.
func (i *inlineExpr) Flat() ([]string, error) {
	seen := make(map[string]struct{})
	list := make([]string, 0)
	for _, g := range i.groups {
		values, err := g.flat()
		if err != nil {
			return nil, fmt.Errorf("inline expression '%s' execute fault: %v", i.expression, err)
		}
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				list = append(list, v)
			}
		}
	}
	return list, nil
}

// Flat is a shortcut of NewInlineExpression and Flat.
func Flat(expression string) ([]string, error) {
	expr, err := NewInlineExpression(expression)
	if err != nil {
		return nil, err
	}
	return expr.Flat()
}
