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
	"sync"

	"github.com/endink/sharding-rewrite/logging"
	"github.com/pingcap/errors"
	tidb "github.com/pingcap/parser"
	"github.com/pingcap/parser/ast"
	_ "github.com/pingcap/tidb/types/parser_driver"
)

var logger = logging.GetLogger("parser")

// ErrMultipleStatements is returned when the text holds more than one statement, a rewrite works on exactly one.
var ErrMultipleStatements = errors.New("only one sql statement can be rewritten at a time")

// tidb parser is not thread safe
var parsers = sync.Pool{
	New: func() interface{} {
		return tidb.New()
	},
}

// ParseSQL parses one mysql statement, a trailing ';' is allowed.
func ParseSQL(sql string) (ast.StmtNode, error) {
	p := parsers.Get().(*tidb.Parser)
	defer parsers.Put(p)

	stmts, warns, err := p.Parse(sql, "", "")
	if err != nil {
		return nil, errors.Annotatef(err, "parse sql fault, sql: %s", sql)
	}
	for _, w := range warns {
		logger.Debugf("parse warning: %v, sql: %s", w, sql)
	}
	switch len(stmts) {
	case 0:
		return nil, errors.Errorf("no sql statement found in '%s'", sql)
	case 1:
		return stmts[0], nil
	default:
		return nil, errors.Annotatef(ErrMultipleStatements, "%d statements found", len(stmts))
	}
}
