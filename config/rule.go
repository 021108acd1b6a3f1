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

package config

import (
	"sort"
	"strings"

	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/core/script"
	"github.com/pingcap/errors"
	"go.uber.org/multierr"
)

type sourceConfig struct {
	Schema string `yaml:"schema"`
}

type tableConfig struct {
	// Resources is an inline expression of actual data nodes, e.g. ds${range(0,1)}.t_order_${[0,1]}
	Resources string `yaml:"resources"`
}

type ruleConfig struct {
	DefaultSource string                  `yaml:"default-source"`
	Sources       map[string]sourceConfig `yaml:"sources"`
	Tables        map[string]tableConfig  `yaml:"tables"`
	// BindingTables is a list of comma separated logic tables.
	BindingTables []string `yaml:"binding-tables"`
}

func (c *ruleConfig) isEmpty() bool {
	return c.DefaultSource == "" && len(c.Sources) == 0 && len(c.Tables) == 0
}

// buildRule validates the config and builds sharding rule, all problems are reported together.
func (c *ruleConfig) buildRule() (*core.ShardingRule, error) {
	var err error
	rule := core.NewShardingRule(strings.TrimSpace(c.DefaultSource))

	sources := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		sources = append(sources, name)
	}
	sort.Strings(sources)
	for _, name := range sources {
		rule.AddDataSource(name, c.Sources[name].Schema)
	}
	if rule.HasDefaultDataSource() && len(c.Sources) > 0 {
		if _, ok := rule.FindDataSource(rule.DefaultDataSource); !ok {
			err = multierr.Append(err, errors.Errorf("default source '%s' is not declared in sources", rule.DefaultDataSource))
		}
	}

	tables := make([]string, 0, len(c.Tables))
	for name := range c.Tables {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	for _, name := range tables {
		table, e := c.buildTable(name, c.Tables[name], rule)
		if e != nil {
			err = multierr.Append(err, e)
			continue
		}
		rule.AddTable(table)
	}
	if err != nil {
		return nil, err
	}

	for _, group := range c.BindingTables {
		if e := rule.AddBindingGroup(core.SplitNames(group, ",")...); e != nil {
			err = multierr.Append(err, e)
		}
	}
	return rule, err
}

func (c *ruleConfig) buildTable(name string, tc tableConfig, rule *core.ShardingRule) (*core.ShardingTable, error) {
	if strings.TrimSpace(tc.Resources) == "" {
		return nil, errors.Errorf("resources of table '%s' is required", name)
	}
	resources, err := script.Flat(tc.Resources)
	if err != nil {
		return nil, errors.Annotatef(err, "bad resources of table '%s'", name)
	}
	nodes := make([]core.DataNode, 0, len(resources))
	for _, r := range resources {
		node, e := core.ParseDataNode(r)
		if e != nil {
			return nil, errors.Annotatef(e, "bad resources of table '%s'", name)
		}
		if len(c.Sources) > 0 {
			if _, ok := rule.FindDataSource(node.DataSource); !ok {
				return nil, errors.Errorf("data source '%s' of table '%s' is not declared in sources", node.DataSource, name)
			}
		}
		nodes = append(nodes, node)
	}
	table := core.NewShardingTable(name)
	table.SetResources(nodes...)
	return table, nil
}
