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

import "github.com/endink/sharding-rewrite/core"

type options struct {
	multiRoute       bool
	aggregationUnion bool
	dataNodes        [][]core.DataNode
}

type Option func(o *options)

// WithMultiRoute tells the statement is executed on more than one target and results are merged.
func WithMultiRoute(multiRoute bool) Option {
	return func(o *options) {
		o.multiRoute = multiRoute
	}
}

// WithAggregationUnion allows targets sharing one data source to be merged into a UNION ALL statement.
func WithAggregationUnion(union bool) Option {
	return func(o *options) {
		o.aggregationUnion = union
	}
}

// WithInsertDataNodes set the data nodes each insert row resolved to.
func WithInsertDataNodes(nodes [][]core.DataNode) Option {
	return func(o *options) {
		o.dataNodes = nodes
	}
}
