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
	"github.com/endink/sharding-rewrite/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var unorderedStrings = cmp.Options{
	cmpopts.SortSlices(func(a, b string) bool { return a < b }),
	cmpopts.EquateEmpty(),
}

// AssertStrArrayEquals asserts two string slices hold the same elements regardless of order, duplicates count.
func AssertStrArrayEquals(t assert.TestingT, expected []string, actual []string, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if diff := cmp.Diff(expected, actual, unorderedStrings); diff != "" {
		return assert.Fail(t, "string arrays differ regardless of order (-expected +actual):\n"+diff, msgAndArgs...)
	}
	return true
}

// AssertDataNodes compares data nodes regardless of order, expected nodes are written as "ds.table".
func AssertDataNodes(t assert.TestingT, expected []string, actual []core.DataNode, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	texts := make([]string, len(actual))
	for i, node := range actual {
		texts[i] = node.String()
	}
	return AssertStrArrayEquals(t, expected, texts, msgAndArgs...)
}
