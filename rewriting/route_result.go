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
	"github.com/endink/sharding-rewrite/routing"
)

// ExecutionUnit is a distinct physical sql on an actual data source.
type ExecutionUnit struct {
	DataSource string
	Unit       *SQLRewriteUnit
}

// RouteSQLRewriteResult maps every route unit to its rewritten sql.
// Route units merged with UNION ALL share the same *SQLRewriteUnit.
type RouteSQLRewriteResult struct {
	routeUnits []*routing.RouteUnit
	units      map[string]*SQLRewriteUnit
	executions []*ExecutionUnit
}

func newRouteSQLRewriteResult() *RouteSQLRewriteResult {
	return &RouteSQLRewriteResult{units: make(map[string]*SQLRewriteUnit)}
}

func (r *RouteSQLRewriteResult) put(dataSource string, units []*routing.RouteUnit, unit *SQLRewriteUnit) {
	for _, u := range units {
		r.routeUnits = append(r.routeUnits, u)
		r.units[u.Key()] = unit
	}
	r.executions = append(r.executions, &ExecutionUnit{DataSource: dataSource, Unit: unit})
}

func (r *RouteSQLRewriteResult) Get(unit *routing.RouteUnit) (*SQLRewriteUnit, bool) {
	if unit == nil {
		return nil, false
	}
	u, ok := r.units[unit.Key()]
	return u, ok
}

// RouteUnits returns route units in order of their groups.
func (r *RouteSQLRewriteResult) RouteUnits() []*routing.RouteUnit {
	return r.routeUnits
}

// ExecutionUnits returns one unit per physical sql, in order of first route unit of each group.
func (r *RouteSQLRewriteResult) ExecutionUnits() []*ExecutionUnit {
	return r.executions
}

func (r *RouteSQLRewriteResult) Len() int {
	return len(r.routeUnits)
}
