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

package core

import "strings"

const LineSeparator = "\n"

// IfBlankAndTrim returns the trimmed value, or blankValue when nothing is left after trimming.
func IfBlankAndTrim(value string, blankValue string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return blankValue
}

// SplitNames splits a list of identifiers like "t_order, t_order_item".
// Blank names and case-insensitive duplicates are dropped, the first spelling wins and order is kept.
func SplitNames(text string, sep string) []string {
	segments := strings.Split(text, sep)
	names := make([]string, 0, len(segments))
	seen := make(map[string]struct{}, len(segments))
	for _, s := range segments {
		name := strings.TrimSpace(s)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

// TrimAndLower normalizes an identifier for case-insensitive lookups.
func TrimAndLower(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
