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
	"context"
	"time"

	"github.com/endink/sharding-rewrite/logging"
	"github.com/endink/sharding-rewrite/telemetry"
	"github.com/pingcap/errors"
)

var logger = logging.GetLogger("rewriting")

var (
	rewriteLatency = meter.NewLatencyRecorder(telemetry.BuildMetricName("rewriting", "latency"), "sql rewrite latency", "engine")
	unionCounter   = meter.NewInt64Counter(telemetry.BuildMetricName("rewriting", "union", "merged"), "route unit groups merged with union all")
)

// SQLRewriteUnit is a physical sql with its parameters.
type SQLRewriteUnit struct {
	SQL        string
	Parameters []interface{}
}

type engineOptions struct {
	cacheEnabled bool
	cacheSize    int
	sqlShow      bool
}

type EngineOption func(o *engineOptions)

// WithRenderCache enables render cache, size not greater than 0 means DefaultRenderCacheSize.
func WithRenderCache(size int) EngineOption {
	return func(o *engineOptions) {
		o.cacheEnabled = true
		o.cacheSize = size
	}
}

// WithSQLShow logs logic sql and every actual sql at info level.
func WithSQLShow(enabled bool) EngineOption {
	return func(o *engineOptions) {
		o.sqlShow = enabled
	}
}

// engineBase is shared by engines, it owns the render cache.
type engineBase struct {
	name     string
	renderer *Renderer
	cache    *RenderCache
	sqlShow  bool
}

func newEngineBase(name string, opts ...EngineOption) (*engineBase, error) {
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}
	e := &engineBase{name: name, sqlShow: options.sqlShow}
	if options.cacheEnabled {
		c, err := NewRenderCache(options.cacheSize)
		if err != nil {
			return nil, errors.Annotate(err, "create render cache fault")
		}
		e.cache = c
	}
	e.renderer = NewRenderer(e.cache)
	return e, nil
}

// Cache returns nil when render cache is disabled.
func (e *engineBase) Cache() *RenderCache {
	return e.cache
}

func (e *engineBase) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

func (e *engineBase) recordLatency(start time.Time) {
	rewriteLatency.Since(context.Background(), start, e.name)
}

func (e *engineBase) showLogicSQL(ctx *RewriteContext) {
	if e.sqlShow {
		logger.Infof("Logic SQL: %s ::: %v", ctx.SQL(), ctx.ParameterBuilder().Parameters())
	}
}

func (e *engineBase) showActualSQL(target string, unit *SQLRewriteUnit) {
	if e.sqlShow {
		logger.Infof("Actual SQL: %s ::: %s ::: %v", target, unit.SQL, unit.Parameters)
	}
}
