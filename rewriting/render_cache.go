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

	"github.com/endink/sharding-rewrite/telemetry"
	lru "github.com/hashicorp/golang-lru"
	"go.opentelemetry.io/otel/metric"
)

const DefaultRenderCacheSize = 1024

var (
	meter            = telemetry.GetMeter("rewriting")
	cacheHitCounter  = meter.NewInt64Counter(telemetry.BuildMetricName("rewriting", "RenderCache", "hit"), "render cache hits")
	cacheMissCounter = meter.NewInt64Counter(telemetry.BuildMetricName("rewriting", "RenderCache", "miss"), "render cache misses")
)

// RenderCache keeps rendered sql of (sql, tokens, target), it is safe for concurrent use.
type RenderCache struct {
	cache *lru.Cache
	hits  metric.Int64Counter
	miss  metric.Int64Counter
}

func NewRenderCache(size int) (*RenderCache, error) {
	if size <= 0 {
		size = DefaultRenderCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &RenderCache{cache: c, hits: cacheHitCounter, miss: cacheMissCounter}, nil
}

func (c *RenderCache) Get(key string) (string, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		c.miss.Add(context.Background(), 1)
		return "", false
	}
	c.hits.Add(context.Background(), 1)
	return v.(string), true
}

func (c *RenderCache) Add(key string, sql string) {
	c.cache.Add(key, sql)
}

func (c *RenderCache) Len() int {
	return c.cache.Len()
}

func (c *RenderCache) Purge() {
	c.cache.Purge()
}

// Close purges the cache, the cache is still usable after closed.
func (c *RenderCache) Close() {
	c.Purge()
}
