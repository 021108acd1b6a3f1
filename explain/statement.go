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

package explain

var _ StatementContext = &Statement{}

// Statement is the plain implementation of StatementContext, it is filled by Explain or by hand.
type Statement struct {
	StmtType                    StatementType
	TableSegments               []*TableSegment
	SchemaSegments              []*SchemaSegment
	IndexSegments               []*IndexSegment
	ProjectionsCtx              *ProjectionsContext
	GroupByCtx                  *GroupByContext
	OrderByCtx                  *OrderByContext
	PaginationCtx               *PaginationContext
	InsertValuesCtx             *InsertValuesContext
	MultiRoute                  bool
	NeedPaginationRewrite       bool
	NeedAggregationUnionRewrite bool
}

func (s *Statement) Type() StatementType {
	return s.StmtType
}

func (s *Statement) TableNames() []string {
	seen := make(map[string]struct{}, len(s.TableSegments))
	names := make([]string, 0, len(s.TableSegments))
	for _, t := range s.TableSegments {
		if _, ok := seen[t.Name]; !ok {
			seen[t.Name] = struct{}{}
			names = append(names, t.Name)
		}
	}
	return names
}

func (s *Statement) Tables() []*TableSegment {
	return s.TableSegments
}

func (s *Statement) Schemas() []*SchemaSegment {
	return s.SchemaSegments
}

func (s *Statement) Indexes() []*IndexSegment {
	return s.IndexSegments
}

func (s *Statement) Projections() *ProjectionsContext {
	return s.ProjectionsCtx
}

func (s *Statement) GroupBy() *GroupByContext {
	return s.GroupByCtx
}

func (s *Statement) OrderBy() *OrderByContext {
	return s.OrderByCtx
}

func (s *Statement) Pagination() *PaginationContext {
	return s.PaginationCtx
}

func (s *Statement) InsertValues() *InsertValuesContext {
	return s.InsertValuesCtx
}

func (s *Statement) HasAggregation() bool {
	return s.ProjectionsCtx != nil && len(s.ProjectionsCtx.Aggregations) > 0
}

func (s *Statement) IsSameGroupByAndOrderBy() bool {
	if s.GroupByCtx == nil || len(s.GroupByCtx.Items) == 0 || s.OrderByCtx == nil {
		return false
	}
	group, order := s.GroupByCtx.Items, s.OrderByCtx.Items
	if len(group) != len(order) {
		return false
	}
	for i := range group {
		if !group[i].Equals(order[i]) {
			return false
		}
	}
	return true
}

func (s *Statement) RequiresMerge() bool {
	return s.MultiRoute
}

func (s *Statement) PaginationNeedsRewrite() bool {
	return s.NeedPaginationRewrite
}

func (s *Statement) AggregationNeedsUnionRewrite() bool {
	return s.NeedAggregationUnionRewrite
}
