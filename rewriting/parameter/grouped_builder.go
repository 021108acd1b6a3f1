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

package parameter

import (
	"github.com/endink/sharding-rewrite/core"
	"github.com/endink/sharding-rewrite/routing"
	"github.com/pingcap/errors"
)

var ErrDataNodesMismatch = errors.New("count of original data nodes does not match count of parameter groups")

// GroupedBuilder holds parameters of insert rows, a row is sent only to the route units it was resolved to.
type GroupedBuilder struct {
	groups            [][]interface{}
	generic           *StandardBuilder
	originalDataNodes [][]core.DataNode
}

// NewGroupedBuilder creates grouped builder, originalDataNodes is parallel to groups or empty.
func NewGroupedBuilder(groups [][]interface{}, generic []interface{}, originalDataNodes [][]core.DataNode) (*GroupedBuilder, error) {
	if len(originalDataNodes) > 0 && len(originalDataNodes) != len(groups) {
		return nil, errors.Annotatef(ErrDataNodesMismatch, "%d data nodes, %d groups", len(originalDataNodes), len(groups))
	}
	return &GroupedBuilder{
		groups:            groups,
		generic:           NewStandardBuilder(generic),
		originalDataNodes: originalDataNodes,
	}, nil
}

func (b *GroupedBuilder) parameterBuilder() {}

func (b *GroupedBuilder) Groups() [][]interface{} {
	return b.groups
}

func (b *GroupedBuilder) Parameters() []interface{} {
	var result []interface{}
	for _, g := range b.groups {
		result = append(result, g...)
	}
	return append(result, b.generic.Parameters()...)
}

// ParametersFor returns the parameters of rows belong to the route unit and the count of matched rows.
// Data nodes of the builder are used when originalDataNodes is empty, all rows are returned when both are empty.
// A row matches when one of its data nodes has the logic data source of the unit and one of the actual tables of the unit.
func (b *GroupedBuilder) ParametersFor(unit *routing.RouteUnit, originalDataNodes [][]core.DataNode) ([]interface{}, int, error) {
	dataNodes := originalDataNodes
	if len(dataNodes) == 0 {
		dataNodes = b.originalDataNodes
	}
	if len(dataNodes) == 0 || unit == nil {
		return b.Parameters(), len(b.groups), nil
	}
	if len(dataNodes) != len(b.groups) {
		return nil, 0, errors.Annotatef(ErrDataNodesMismatch, "%d data nodes, %d groups", len(dataNodes), len(b.groups))
	}
	result := make([]interface{}, 0)
	matched := 0
	for i, g := range b.groups {
		if inDataNodes(unit, dataNodes[i]) {
			result = append(result, g...)
			matched++
		}
	}
	return append(result, b.generic.Parameters()...), matched, nil
}

func inDataNodes(unit *routing.RouteUnit, nodes []core.DataNode) bool {
	if len(nodes) == 0 {
		return true
	}
	for _, n := range nodes {
		if _, ok := unit.FindTableMapper(n.DataSource, n.Table); ok {
			return true
		}
	}
	return false
}
