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

package telemetry

import (
	"errors"
	"strings"
	"sync"
	"unicode"
)

const instrumentationPrefix = "sharding-rewrite/"

var meters sync.Map

// GetMeter returns the meter of a package.
func GetMeter(pkg string) *NamedMeter {
	if m, ok := meters.Load(pkg); ok {
		return m.(*NamedMeter)
	}
	m, _ := meters.LoadOrStore(pkg, &NamedMeter{
		name:        instrumentationPrefix + pkg,
		instruments: make(map[string]interface{}),
	})
	return m.(*NamedMeter)
}

// BuildMetricName snake cases every segment and joins them with '_', blank segments are ignored.
func BuildMetricName(segments ...string) string {
	if len(segments) == 0 {
		panic(errors.New("metric name needs at least one segment"))
	}
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if p := snakeCase(s); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_")
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func snakeCase(segment string) string {
	trimmed := strings.TrimFunc(segment, func(r rune) bool { return !isAlnum(r) })
	var sb strings.Builder
	var prev rune
	for _, r := range trimmed {
		switch {
		case !isAlnum(r):
			if prev != '_' {
				sb.WriteByte('_')
			}
			r = '_'
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
		prev = r
	}
	return sb.String()
}
