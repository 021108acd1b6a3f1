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

import (
	"strings"

	"github.com/endink/sharding-rewrite/rewriting/token"
)

type lexKind int

const (
	lexIdent lexKind = iota
	lexQuotedIdent
	lexNumber
	lexString
	lexMarker
	lexSymbol
)

// lexToken is a token of sql text, depth is the parentheses nesting level where the token is.
type lexToken struct {
	kind  lexKind
	text  string
	begin int
	end   int
	depth int
}

func (t *lexToken) isKeyword(keyword string) bool {
	return t.kind == lexIdent && strings.EqualFold(t.text, keyword)
}

func (t *lexToken) isSymbol(symbol byte) bool {
	return t.kind == lexSymbol && t.text[0] == symbol
}

func (t *lexToken) isIdentifier() bool {
	return t.kind == lexIdent || t.kind == lexQuotedIdent
}

// identifier returns the unquoted identifier.
func (t *lexToken) identifier() string {
	if t.kind != lexQuotedIdent {
		return t.text
	}
	inner := t.text[1 : len(t.text)-1]
	return strings.ReplaceAll(inner, "``", "`")
}

// scanTokens splits sql into tokens with byte spans and parentheses depth, comments are dropped.
func scanTokens(sql string) []*lexToken {
	var (
		lexemes = token.Lexemes(sql)
		tokens  = make([]*lexToken, 0, len(lexemes))
		depth   int
	)
	for _, l := range lexemes {
		kind := classify(l.Text)
		if kind == lexSymbol && l.Text == ")" && depth > 0 {
			depth--
		}
		tokens = append(tokens, &lexToken{kind: kind, text: l.Text, begin: l.Begin, end: l.End, depth: depth})
		if kind == lexSymbol && l.Text == "(" {
			depth++
		}
	}
	return tokens
}

// classify works on the original text, keywords are reported as identifiers and checked by isKeyword.
func classify(text string) lexKind {
	c := text[0]
	switch {
	case c == '`':
		return lexQuotedIdent
	case c == '\'' || c == '"':
		return lexString
	case c == '?':
		return lexMarker
	case isDigit(c) || (c == '.' && len(text) > 1):
		return lexNumber
	case isIdentStart(c):
		return lexIdent
	}
	return lexSymbol
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$' || c == '@' || c >= 0x80
}
