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
	"fmt"
	"strings"

	"github.com/scylladb/go-set/strset"
)

// ShardingTable describe a logic table and the physical tables behind it.
type ShardingTable struct {
	Name        string
	actualNodes []DataNode
	dsTables    map[string][]string
	dataSources []string
}

func NewShardingTable(name string) *ShardingTable {
	return &ShardingTable{
		Name:     TrimAndLower(name),
		dsTables: make(map[string][]string),
	}
}

// SetResources set actual data nodes, order of the nodes is kept, duplicate nodes are ignored.
func (t *ShardingTable) SetResources(nodes ...DataNode) {
	seen := strset.New()
	dsSet := strset.New()
	t.actualNodes = make([]DataNode, 0, len(nodes))
	t.dsTables = make(map[string][]string)
	t.dataSources = nil
	for _, n := range nodes {
		key := strings.ToLower(n.String())
		if seen.Has(key) {
			continue
		}
		seen.Add(key)
		t.actualNodes = append(t.actualNodes, n)
		ds := strings.ToLower(n.DataSource)
		if !dsSet.Has(ds) {
			dsSet.Add(ds)
			t.dataSources = append(t.dataSources, n.DataSource)
		}
		t.dsTables[ds] = append(t.dsTables[ds], n.Table)
	}
}

func (t *ShardingTable) ActualNodes() []DataNode {
	return t.actualNodes
}

func (t *ShardingTable) GetDataSources() []string {
	return t.dataSources
}

// GetTables returns actual tables of the data source.
func (t *ShardingTable) GetTables(dataSource string) []string {
	return t.dsTables[strings.ToLower(dataSource)]
}

// ActualTableIndex find the index of the actual table in the tables of given data source, -1 if not found
func (t *ShardingTable) ActualTableIndex(dataSource string, actualTable string) int {
	for i, table := range t.GetTables(dataSource) {
		if strings.EqualFold(table, actualTable) {
			return i
		}
	}
	return -1
}

func (t *ShardingTable) ContainsDataSource(dataSource string) bool {
	_, ok := t.dsTables[strings.ToLower(dataSource)]
	return ok
}

func (t *ShardingTable) String() string {
	nodes := make([]string, len(t.actualNodes))
	for i, n := range t.actualNodes {
		nodes[i] = n.String()
	}
	return fmt.Sprintf("%s -> [%s]", t.Name, strings.Join(nodes, ", "))
}
