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

package main

import (
	"testing"

	"github.com/endink/sharding-rewrite/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	assert.Nil(t, parseParams(" "))
	assert.Equal(t, []interface{}{int64(1), "abc", "x y"}, parseParams("1, abc,'x y'"))
}

func TestCheckParamCount(t *testing.T) {
	assert.Nil(t, checkParamCount("SELECT * FROM t_order WHERE id = ? LIMIT ?", []interface{}{int64(1), int64(10)}))
	assert.NotNil(t, checkParamCount("SELECT * FROM t_order WHERE id = ?", nil))
	assert.NotNil(t, checkParamCount("SELECT * FROM", nil))
}

func TestParseDataNodes(t *testing.T) {
	nodes, err := parseDataNodes("ds.t_order_0, ds.t_order_1,ds.t_order_0")
	require.Nil(t, err)
	assert.Equal(t, []core.DataNode{core.NewDataNode("ds", "t_order_0"), core.NewDataNode("ds", "t_order_1")}, nodes)

	nodes, err = parseDataNodes("")
	require.Nil(t, err)
	assert.Equal(t, 0, len(nodes))

	_, err = parseDataNodes("t_order")
	assert.NotNil(t, err)
}
