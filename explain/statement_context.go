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

import (
	"github.com/endink/sharding-rewrite/core"
)

type StatementType int

const (
	OtherStatement StatementType = iota
	SelectStatement
	InsertStatement
	UpdateStatement
	DeleteStatement
	DDLStatement
)

func (t StatementType) String() string {
	switch t {
	case SelectStatement:
		return "SELECT"
	case InsertStatement:
		return "INSERT"
	case UpdateStatement:
		return "UPDATE"
	case DeleteStatement:
		return "DELETE"
	case DDLStatement:
		return "DDL"
	default:
		return "OTHER"
	}
}

// StatementContext is the read-only view of a parsed statement the rewrite engine works on.
// Every position is a byte offset in the original sql text.
type StatementContext interface {
	Type() StatementType
	// TableNames returns distinct lower-cased logic table names referenced by the statement.
	TableNames() []string
	Tables() []*TableSegment
	Schemas() []*SchemaSegment
	Indexes() []*IndexSegment
	// Projections returns nil for statements other than select.
	Projections() *ProjectionsContext
	GroupBy() *GroupByContext
	OrderBy() *OrderByContext
	Pagination() *PaginationContext
	// InsertValues returns nil when parameters of the statement are not grouped by rows.
	InsertValues() *InsertValuesContext
	HasAggregation() bool
	IsSameGroupByAndOrderBy() bool
	// RequiresMerge is true when results of several targets are merged, derived columns are needed.
	RequiresMerge() bool
	PaginationNeedsRewrite() bool
	AggregationNeedsUnionRewrite() bool
}

// TableSegment is a table reference, Text is the literal in sql, Name is lower-cased unquoted table name.
type TableSegment struct {
	Begin int
	Text  string
	Name  string
}

type SchemaSegment struct {
	Begin     int
	Text      string
	Name      string
	TableName string
}

type IndexSegment struct {
	Begin     int
	Text      string
	Name      string
	TableName string
}

type AggregationProjection struct {
	Function string
	Argument string
	Distinct bool
}

// ProjectionsContext describes the select list, Stop is the position right after the last projection.
type ProjectionsContext struct {
	Stop         int
	Star         bool
	Columns      []string
	Aggregations []*AggregationProjection
}

// Contains reports whether the column (name, alias or expression text) is selected, case-insensitively.
func (p *ProjectionsContext) Contains(column string) bool {
	if p == nil {
		return false
	}
	c := core.TrimAndLower(column)
	for _, s := range p.Columns {
		if core.TrimAndLower(s) == c {
			return true
		}
	}
	return false
}

// ByItem is an item of group by or order by, Position is greater than 0 for items like 'ORDER BY 1'.
type ByItem struct {
	Column   string
	Desc     bool
	Position int
}

func (i ByItem) Equals(other ByItem) bool {
	return core.TrimAndLower(i.Column) == core.TrimAndLower(other.Column) && i.Desc == other.Desc
}

// GroupByContext describes the group by clause, Stop is the position right after the clause and its HAVING part.
type GroupByContext struct {
	Items []ByItem
	Stop  int
}

// OrderByContext describes order by items, Generated is true when items are derived from group by.
type OrderByContext struct {
	Items     []ByItem
	Generated bool
}

// PaginationValue is a LIMIT value, ParameterIndex is -1 for literals.
type PaginationValue struct {
	Begin          int
	Text           string
	Value          int64
	ParameterIndex int
}

func (v *PaginationValue) IsParameter() bool {
	return v != nil && v.ParameterIndex >= 0
}

type PaginationContext struct {
	RowCount *PaginationValue
	Offset   *PaginationValue
}

func (p *PaginationContext) OffsetValue() int64 {
	if p == nil || p.Offset == nil {
		return 0
	}
	return p.Offset.Value
}

// InsertValuesContext is the parameters of an insert statement grouped by rows.
// OriginalDataNodes is parallel to GroupedParameters or empty.
type InsertValuesContext struct {
	GroupedParameters [][]interface{}
	GenericParameters []interface{}
	OriginalDataNodes [][]core.DataNode
}
