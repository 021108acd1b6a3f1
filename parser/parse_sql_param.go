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

package parser

import (
	"fmt"
	"sort"

	"github.com/pingcap/parser/ast"
	driver "github.com/pingcap/tidb/types/parser_driver"
)

// ParamMarkers collects parameter markers under the nodes, sorted by the position in sql text.
func ParamMarkers(nodes ...ast.Node) ([]*driver.ParamMarkerExpr, error) {
	var markers []*driver.ParamMarkerExpr
	err := Walk(func(node ast.Node) (bool, error) {
		if p, ok := node.(*driver.ParamMarkerExpr); ok {
			markers = append(markers, p)
		}
		return true, nil
	}, nodes...)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].Offset < markers[j].Offset
	})
	return markers, nil
}

func ParseSQLParamCount(sql string) (int, error) {
	stmt, err := ParseSQL(sql)
	if err != nil {
		return 0, err
	}
	markers, err := ParamMarkers(stmt)
	if err != nil {
		return 0, err
	}
	// DDL Statements can not accept parameters
	if _, ok := stmt.(ast.DDLNode); ok && len(markers) > 0 {
		return 0, fmt.Errorf("parameter in ddl statement is not supported")
	}
	return len(markers), nil
}
