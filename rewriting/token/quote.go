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

package token

type QuoteCharacter int

const (
	QuoteNone QuoteCharacter = iota
	QuoteBack
	QuoteDouble
	QuoteBracket
)

// QuoteOf detects the quote character of an identifier literal.
func QuoteOf(literal string) QuoteCharacter {
	if len(literal) < 2 {
		return QuoteNone
	}
	switch {
	case literal[0] == '`' && literal[len(literal)-1] == '`':
		return QuoteBack
	case literal[0] == '"' && literal[len(literal)-1] == '"':
		return QuoteDouble
	case literal[0] == '[' && literal[len(literal)-1] == ']':
		return QuoteBracket
	}
	return QuoteNone
}

// Unquote removes quote characters of the identifier literal.
func Unquote(literal string) string {
	if QuoteOf(literal) == QuoteNone {
		return literal
	}
	return literal[1 : len(literal)-1]
}

func (q QuoteCharacter) Wrap(identifier string) string {
	switch q {
	case QuoteBack:
		return "`" + identifier + "`"
	case QuoteDouble:
		return `"` + identifier + `"`
	case QuoteBracket:
		return "[" + identifier + "]"
	default:
		return identifier
	}
}
