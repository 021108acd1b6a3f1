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
	"github.com/scylladb/go-set/strset"
)

type DataSource struct {
	Name   string
	Schema string
}

// ShardingRule is the read-only view of sharding configuration used by sql rewriting.
type ShardingRule struct {
	DefaultDataSource string
	dataSources       map[string]*DataSource
	tables            map[string]*ShardingTable
	bindingGroups     []*strset.Set
}

func NewShardingRule(defaultDataSource string) *ShardingRule {
	return &ShardingRule{
		DefaultDataSource: strings.TrimSpace(defaultDataSource),
		dataSources:       make(map[string]*DataSource),
		tables:            make(map[string]*ShardingTable),
	}
}

func (r *ShardingRule) AddDataSource(name string, schema string) {
	n := strings.TrimSpace(name)
	r.dataSources[strings.ToLower(n)] = &DataSource{
		Name:   n,
		Schema: IfBlankAndTrim(schema, n),
	}
}

func (r *ShardingRule) AddTable(table *ShardingTable) {
	r.tables[table.Name] = table
}

// AddBindingGroup declare logic tables those have the same sharding layout.
func (r *ShardingRule) AddBindingGroup(tables ...string) error {
	group := strset.New()
	for _, t := range tables {
		name := TrimAndLower(t)
		if name == "" {
			continue
		}
		if _, ok := r.tables[name]; !ok {
			return errors.Errorf("binding table '%s' is not a sharding table", t)
		}
		for _, g := range r.bindingGroups {
			if g.Has(name) {
				return errors.Errorf("table '%s' has been declared in another binding group", t)
			}
		}
		group.Add(name)
	}
	if group.Size() > 1 {
		r.bindingGroups = append(r.bindingGroups, group)
	}
	return nil
}

func (r *ShardingRule) FindTable(logicTable string) (*ShardingTable, bool) {
	t, ok := r.tables[TrimAndLower(logicTable)]
	return t, ok
}

func (r *ShardingRule) TableNames() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	return names
}

func (r *ShardingRule) FindDataSource(name string) (*DataSource, bool) {
	ds, ok := r.dataSources[strings.ToLower(strings.TrimSpace(name))]
	return ds, ok
}

func (r *ShardingRule) HasDefaultDataSource() bool {
	return r.DefaultDataSource != ""
}

// Schema returns the physical schema name of the data source, data source name is used when schema is not configured.
func (r *ShardingRule) Schema(dataSource string) string {
	if ds, ok := r.FindDataSource(dataSource); ok {
		return ds.Schema
	}
	return dataSource
}

func (r *ShardingRule) IsBindingTable(a string, b string) bool {
	x, y := TrimAndLower(a), TrimAndLower(b)
	for _, g := range r.bindingGroups {
		if g.Has(x) && g.Has(y) {
			return true
		}
	}
	return false
}

// BindingActualTable resolve actual table of logicTable by a routed binding table (otherLogic -> otherActual) on the data source.
func (r *ShardingRule) BindingActualTable(dataSource string, logicTable string, otherLogic string, otherActual string) (string, bool) {
	if !r.IsBindingTable(logicTable, otherLogic) {
		return "", false
	}
	other, ok := r.FindTable(otherLogic)
	if !ok {
		return "", false
	}
	index := other.ActualTableIndex(dataSource, otherActual)
	if index < 0 {
		return "", false
	}
	table, ok := r.FindTable(logicTable)
	if !ok {
		return "", false
	}
	tables := table.GetTables(dataSource)
	if index >= len(tables) {
		return "", false
	}
	return tables[index], true
}
