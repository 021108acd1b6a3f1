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
	"sort"
	"strings"

	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/routing"
)

// RenderTarget is the physical target sql is rendered for.
// DataSource is the actual data source name, Tables maps lower-cased logic table names to actual table names.
type RenderTarget struct {
	DataSource string
	Tables     map[string]string
}

// IdentityTarget keeps every table name as it is.
func IdentityTarget() RenderTarget {
	return RenderTarget{}
}

func TargetOf(unit *routing.RouteUnit) RenderTarget {
	return RenderTarget{
		DataSource: unit.DataSourceMapper.ActualName,
		Tables:     unit.TableMap(),
	}
}

// ActualTable resolves the actual table of a logic table, binding tables of a routed table are resolved through the rule.
func (t RenderTarget) ActualTable(rule *core.ShardingRule, logicTable string) (string, bool) {
	logic := core.TrimAndLower(logicTable)
	if actual, ok := t.Tables[logic]; ok {
		return actual, true
	}
	if rule == nil || len(t.Tables) == 0 {
		return "", false
	}
	for _, other := range t.sortedLogicTables() {
		if actual, ok := rule.BindingActualTable(t.DataSource, logic, other, t.Tables[other]); ok {
			return actual, true
		}
	}
	return "", false
}

func (t RenderTarget) sortedLogicTables() []string {
	names := make([]string, 0, len(t.Tables))
	for name := range t.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t RenderTarget) key() string {
	sb := &strings.Builder{}
	sb.WriteString(strings.ToLower(t.DataSource))
	for _, name := range t.sortedLogicTables() {
		sb.WriteByte('|')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(t.Tables[name])
	}
	return sb.String()
}
