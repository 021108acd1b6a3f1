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
	"time"
)

// GenericEngine rewrites sql for statements without route, table names are kept.
type GenericEngine struct {
	*engineBase
}

func NewGenericEngine(opts ...EngineOption) (*GenericEngine, error) {
	base, err := newEngineBase("generic", opts...)
	if err != nil {
		return nil, err
	}
	return &GenericEngine{engineBase: base}, nil
}

func (e *GenericEngine) Rewrite(ctx *RewriteContext) (*SQLRewriteUnit, error) {
	defer e.recordLatency(time.Now())
	e.showLogicSQL(ctx)

	sql, err := e.renderer.Render(ctx, IdentityTarget())
	if err != nil {
		return nil, err
	}
	unit := &SQLRewriteUnit{SQL: sql, Parameters: ctx.ParameterBuilder().Parameters()}
	e.showActualSQL("", unit)
	return unit, nil
}
