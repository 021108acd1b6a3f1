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

package parser

import "github.com/pingcap/parser/ast"

// Visit is called for every node in depth first order, returning false skips the children of the node.
type Visit func(node ast.Node) (descend bool, err error)

type visitor struct {
	fn  Visit
	err error
}

var _ ast.Visitor = &visitor{}

func (v *visitor) Enter(n ast.Node) (ast.Node, bool) {
	if v.err != nil {
		return n, true
	}
	descend, err := v.fn(n)
	v.err = err
	return n, err != nil || !descend
}

func (v *visitor) Leave(n ast.Node) (ast.Node, bool) {
	return n, v.err == nil
}

// Walk visits nodes one by one and stops at the first error.
func Walk(fn Visit, nodes ...ast.Node) error {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		v := &visitor{fn: fn}
		node.Accept(v)
		if v.err != nil {
			return v.err
		}
	}
	return nil
}

// TableNames returns every table referenced by nodes, tables of sub queries included.
func TableNames(nodes ...ast.Node) []*ast.TableName {
	var names []*ast.TableName
	_ = Walk(func(n ast.Node) (bool, error) {
		if t, ok := n.(*ast.TableName); ok {
			names = append(names, t)
		}
		return true, nil
	}, nodes...)
	return names
}
