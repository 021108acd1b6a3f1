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
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
)

// StandardBuilder is a flat parameter list, it is never filtered by route units.
// Every index is an index of the original parameters.
type StandardBuilder struct {
	original []interface{}
	added    *treemap.Map
	replaced map[int]interface{}
	removed  *treeset.Set
}

func NewStandardBuilder(original []interface{}) *StandardBuilder {
	return &StandardBuilder{
		original: original,
		added:    treemap.NewWithIntComparator(),
		replaced: make(map[int]interface{}),
		removed:  treeset.NewWithIntComparator(),
	}
}

func (b *StandardBuilder) parameterBuilder() {}

// addAddedParameters inserts values before the original parameter at index, index not less than original length appends values.
func (b *StandardBuilder) addAddedParameters(index int, values ...interface{}) {
	if v, ok := b.added.Get(index); ok {
		b.added.Put(index, append(v.([]interface{}), values...))
		return
	}
	b.added.Put(index, values)
}

func (b *StandardBuilder) AddReplacedParameter(index int, value interface{}) {
	b.replaced[index] = value
}

func (b *StandardBuilder) addRemovedParameters(indexes ...int) {
	for _, i := range indexes {
		b.removed.Add(i)
	}
}

func (b *StandardBuilder) originalParameters() []interface{} {
	return b.original
}

func (b *StandardBuilder) Parameters() []interface{} {
	size := len(b.original)
	for _, v := range b.added.Values() {
		size += len(v.([]interface{}))
	}
	result := make([]interface{}, 0, size)

	it := b.added.Iterator()
	hasAdded := it.Next()
	for i, p := range b.original {
		for hasAdded && it.Key().(int) <= i {
			result = append(result, it.Value().([]interface{})...)
			hasAdded = it.Next()
		}
		if b.removed.Contains(i) {
			continue
		}
		if v, ok := b.replaced[i]; ok {
			result = append(result, v)
		} else {
			result = append(result, p)
		}
	}
	for hasAdded {
		result = append(result, it.Value().([]interface{})...)
		hasAdded = it.Next()
	}
	return result
}
