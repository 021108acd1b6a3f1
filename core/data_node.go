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

package core

import (
	"strings"

	"github.com/pingcap/errors"
)

const dataNodeDelimiter = "."

// DataNode is a physical table location in form of "<datasource>.<table>".
type DataNode struct {
	DataSource string
	Table      string
}

func NewDataNode(dataSource string, table string) DataNode {
	return DataNode{
		DataSource: strings.TrimSpace(dataSource),
		Table:      strings.TrimSpace(table),
	}
}

// ParseDataNode parse text like "ds_0.t_order_1"
func ParseDataNode(text string) (DataNode, error) {
	v := strings.TrimSpace(text)
	segments := strings.Split(v, dataNodeDelimiter)
	if len(segments) != 2 || strings.TrimSpace(segments[0]) == "" || strings.TrimSpace(segments[1]) == "" {
		return DataNode{}, errors.Errorf("invalid data node format '%s', excepted format is <datasource>.<table>", text)
	}
	return NewDataNode(segments[0], segments[1]), nil
}

func MustParseDataNode(text string) DataNode {
	n, err := ParseDataNode(text)
	if err != nil {
		panic(err)
	}
	return n
}

func (n DataNode) Equals(v interface{}) bool {
	other, ok := v.(DataNode)
	if !ok {
		return false
	}
	return strings.EqualFold(n.DataSource, other.DataSource) && strings.EqualFold(n.Table, other.Table)
}

func (n DataNode) String() string {
	return n.DataSource + dataNodeDelimiter + n.Table
}
