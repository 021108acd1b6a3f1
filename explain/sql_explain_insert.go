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
	"github.com/endink/sharding-rewrite/parser"
	"github.com/pingcap/errors"
	"github.com/pingcap/parser/ast"
)

// explainInsert groups parameters by value rows, parameters of ON DUPLICATE KEY UPDATE are generic to all rows.
// INSERT ... SELECT is not grouped.
func (e *sqlExplain) explainInsert(stmt *ast.InsertStmt, dataNodes [][]core.DataNode) error {
	if stmt.Select != nil {
		return nil
	}

	var rows [][]ast.Node
	for _, list := range stmt.Lists {
		row := make([]ast.Node, len(list))
		for i, expr := range list {
			row[i] = expr
		}
		rows = append(rows, row)
	}
	if len(stmt.Setlist) > 0 {
		row := make([]ast.Node, len(stmt.Setlist))
		for i, a := range stmt.Setlist {
			row[i] = a.Expr
		}
		rows = append(rows, row)
	}

	values := &InsertValuesContext{
		GroupedParameters: make([][]interface{}, 0, len(rows)),
		OriginalDataNodes: dataNodes,
	}
	for _, row := range rows {
		group, err := e.markerValues(row...)
		if err != nil {
			return err
		}
		values.GroupedParameters = append(values.GroupedParameters, group)
	}

	if len(stmt.OnDuplicate) > 0 {
		nodes := make([]ast.Node, len(stmt.OnDuplicate))
		for i, a := range stmt.OnDuplicate {
			nodes[i] = a.Expr
		}
		generic, err := e.markerValues(nodes...)
		if err != nil {
			return err
		}
		values.GenericParameters = generic
	}

	if len(dataNodes) > 0 && len(dataNodes) != len(values.GroupedParameters) {
		return errors.Errorf("count of insert data nodes is %d, but the statement has %d rows", len(dataNodes), len(values.GroupedParameters))
	}
	e.stmt.InsertValuesCtx = values
	return nil
}

func (e *sqlExplain) markerValues(nodes ...ast.Node) ([]interface{}, error) {
	markers, err := parser.ParamMarkers(nodes...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return e.parameterValues(markers)
}
