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

package testkit

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// MustMatchFn returns a diff assertion built from opts.
// Nil and empty slices or maps are equal, integers of different kinds holding one value are equal.
func MustMatchFn(opts ...cmp.Option) func(t testing.TB, want, got interface{}, msg string) {
	diffOpts := cmp.Options{cmpopts.EquateEmpty(), EquateIntegers()}
	diffOpts = append(diffOpts, opts...)
	return func(t testing.TB, want, got interface{}, msg string) {
		t.Helper()
		if diff := cmp.Diff(want, got, diffOpts); diff != "" {
			t.Fatalf("%s: (-want +got)\n%s", msg, diff)
		}
	}
}

// MustMatch diffs with the default options only.
//
// testkit.MustMatch(t, []interface{}{1, 30}, unit.Parameters, "parameters")
var MustMatch = MustMatchFn()

// IgnoreFields skips struct fields by name at any depth, unexported fields included.
func IgnoreFields(names ...string) cmp.Option {
	skip := make(map[string]struct{}, len(names))
	for _, name := range names {
		skip[name] = struct{}{}
	}
	return cmp.FilterPath(func(path cmp.Path) bool {
		sf, ok := path.Last().(cmp.StructField)
		if !ok {
			return false
		}
		_, ignored := skip[sf.Name()]
		return ignored
	}, cmp.Ignore())
}

// EquateIntegers compares integer values by value, rewritten pagination parameters are int64
// while callers usually write untyped constants.
func EquateIntegers() cmp.Option {
	return cmp.FilterValues(func(x, y interface{}) bool {
		_, okX := integer(x)
		_, okY := integer(y)
		return okX && okY
	}, cmp.Comparer(func(x, y interface{}) bool {
		a, _ := integer(x)
		b, _ := integer(y)
		return a == b
	}))
}

func integer(v interface{}) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	}
	return 0, false
}
