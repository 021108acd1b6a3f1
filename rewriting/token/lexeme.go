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

import (
	"strings"

	"github.com/CovenantSQL/sqlparser"
)

// Lexeme is a token of sql text at [Begin, End), Text is the original text including quotes.
type Lexeme struct {
	Begin int
	End   int
	Text  string
}

// IsIdentifier reports whether the lexeme is a plain or back quoted word, keywords included.
func (l Lexeme) IsIdentifier() bool {
	c := l.Text[0]
	return c == '`' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$' || c == '@' || c >= 0x80
}

func (l Lexeme) IsSymbol(symbol byte) bool {
	return len(l.Text) == 1 && l.Text[0] == symbol
}

// Lexemes splits sql with the tokenizer of CovenantSQL/sqlparser, comments are dropped.
// The tokenizer reads one character ahead, so a token always ends at Position-1.
func Lexemes(sql string) []Lexeme {
	var (
		tokenizer = sqlparser.NewStringTokenizer(sql)
		lexemes   []Lexeme
		last      int
	)
	for {
		typ, _ := tokenizer.Scan()
		if typ == 0 {
			return lexemes
		}
		end := tokenizer.Position - 1
		if end > len(sql) {
			end = len(sql)
		}
		begin := skipBlank(sql, last)
		if end <= last || begin >= end {
			// tokens of a version comment, the whole comment was consumed at once
			continue
		}
		last = end
		text := sql[begin:end]
		if typ == sqlparser.COMMENT || strings.HasPrefix(text, "/*") {
			continue
		}
		lexemes = append(lexemes, Lexeme{Begin: begin, End: end, Text: text})
	}
}

func skipBlank(sql string, pos int) int {
	for pos < len(sql) {
		switch sql[pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			pos++
		default:
			return pos
		}
	}
	return pos
}
