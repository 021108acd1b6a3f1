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

package routing

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/endink/sharding-rewrite/core"
)

// RouteContext is the routing decision of a statement.
// OriginalDataNodes is parallel to the grouped parameters of an insert statement, it can be empty.
type RouteContext struct {
	RouteUnits        []*RouteUnit
	OriginalDataNodes [][]core.DataNode
}

func NewRouteContext(units ...*RouteUnit) *RouteContext {
	return &RouteContext{RouteUnits: units}
}

func (c *RouteContext) AddRouteUnit(units ...*RouteUnit) {
	c.RouteUnits = append(c.RouteUnits, units...)
}

// AddOriginalDataNodes append data nodes of next insert row.
func (c *RouteContext) AddOriginalDataNodes(nodes ...core.DataNode) {
	c.OriginalDataNodes = append(c.OriginalDataNodes, nodes)
}

// IsMultiRouting reports whether results of more than one route unit have to be merged.
func (c *RouteContext) IsMultiRouting() bool {
	return len(c.RouteUnits) > 1
}

// RouteUnitGroup is the units sharing the same key.
type RouteUnitGroup struct {
	Key   string
	Units []*RouteUnit
}

// GroupRouteUnits groups units by key, groups and units in group are in first-seen order.
func GroupRouteUnits(units []*RouteUnit, key func(u *RouteUnit) string) []*RouteUnitGroup {
	m := linkedhashmap.New()
	for _, u := range units {
		k := key(u)
		if v, ok := m.Get(k); ok {
			g := v.(*RouteUnitGroup)
			g.Units = append(g.Units, u)
		} else {
			m.Put(k, &RouteUnitGroup{Key: k, Units: []*RouteUnit{u}})
		}
	}
	groups := make([]*RouteUnitGroup, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		groups = append(groups, it.Value().(*RouteUnitGroup))
	}
	return groups
}
