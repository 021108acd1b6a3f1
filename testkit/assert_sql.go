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

package testkit

import (
	"strings"
	"testing"

	"github.com/endink/sharding-rewrite/parser"
	"github.com/pingcap/parser/ast"
	"github.com/pingcap/parser/format"
	"github.com/stretchr/testify/assert"
)

func ParseForTest(t testing.TB, sql string) ast.StmtNode {
	t.Helper()
	node, err := parser.ParseSQL(sql)
	if err != nil {
		t.Fatalf("%s\nsql err: %v", sql, err)
	}
	return node
}

// NormalizeSql restores the sql from its ast, formatting differences are removed.
func NormalizeSql(t testing.TB, sql string) string {
	return writeNode(t, ParseForTest(t, sql))
}

// AssertEqualSql asserts two sql texts have the same ast.
func AssertEqualSql(t testing.TB, excepted string, actual string) bool {
	t.Helper()
	return assert.Equal(t, NormalizeSql(t, excepted), NormalizeSql(t, actual))
}

func writeNode(t testing.TB, node ast.Node) string {
	var sb = new(strings.Builder)
	ctx := format.NewRestoreCtx(format.DefaultRestoreFlags|format.RestoreSpacesAroundBinaryOperation, sb)
	assert.Nil(t, node.Restore(ctx))
	return sb.String()
}
