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
	"sort"
	"strconv"
	"strings"
)

// SQLToken marks a span of the original sql text to be replaced, or a position to insert text.
// Variants are fixed, use a type switch to handle them.
type SQLToken interface {
	// BeginPosition is the inclusive offset in the original sql.
	BeginPosition() int
	// StopPosition is the exclusive end offset of the consumed text, equals to BeginPosition for insertions.
	StopPosition() int
	sqlToken()
}

var (
	_ SQLToken = &TableToken{}
	_ SQLToken = &SchemaToken{}
	_ SQLToken = &IndexToken{}
	_ SQLToken = &ItemsToken{}
	_ SQLToken = &RowCountToken{}
	_ SQLToken = &OffsetToken{}
	_ SQLToken = &OrderByToken{}
)

// TableToken is a table identifier reference, Text is the original literal including quote characters.
type TableToken struct {
	Begin int
	Text  string
	Name  string
	Quote QuoteCharacter
}

func (t *TableToken) BeginPosition() int { return t.Begin }
func (t *TableToken) StopPosition() int  { return t.Begin + len(t.Text) }
func (t *TableToken) sqlToken()          {}

// SchemaToken is a schema qualifier, TableName is the table it qualifies, empty for statements like 'USE db'.
type SchemaToken struct {
	Begin      int
	Text       string
	SchemaName string
	TableName  string
	Quote      QuoteCharacter
}

func (t *SchemaToken) BeginPosition() int { return t.Begin }
func (t *SchemaToken) StopPosition() int  { return t.Begin + len(t.Text) }
func (t *SchemaToken) sqlToken()          {}

// IndexToken is an index name, it is rendered as <index>_<actual table> when the table is routed.
type IndexToken struct {
	Begin     int
	Text      string
	IndexName string
	TableName string
	Quote     QuoteCharacter
}

func (t *IndexToken) BeginPosition() int { return t.Begin }
func (t *IndexToken) StopPosition() int  { return t.Begin + len(t.Text) }
func (t *IndexToken) sqlToken()          {}

// ItemsToken inserts derived projection items, each item is prefixed with ", ".
type ItemsToken struct {
	Begin int
	Items []DerivedItem
}

func (t *ItemsToken) BeginPosition() int { return t.Begin }
func (t *ItemsToken) StopPosition() int  { return t.Begin }
func (t *ItemsToken) sqlToken()          {}

type RowCountToken struct {
	Begin int
	Text  string
	Value int64
}

func (t *RowCountToken) BeginPosition() int { return t.Begin }
func (t *RowCountToken) StopPosition() int  { return t.Begin + len(t.Text) }
func (t *RowCountToken) sqlToken()          {}

type OffsetToken struct {
	Begin int
	Text  string
	Value int64
}

func (t *OffsetToken) BeginPosition() int { return t.Begin }
func (t *OffsetToken) StopPosition() int  { return t.Begin + len(t.Text) }
func (t *OffsetToken) sqlToken()          {}

// OrderByToken injects an ORDER BY clause, Length is the count of original characters it consumes.
type OrderByToken struct {
	Begin  int
	Length int
	Items  []OrderByItem
}

type OrderByItem struct {
	Expression Expression
	Desc       bool
}

func (i OrderByItem) String() string {
	return i.Expression.Text + i.Direction()
}

func (i OrderByItem) Direction() string {
	if i.Desc {
		return " DESC"
	}
	return " ASC"
}

func (t *OrderByToken) BeginPosition() int { return t.Begin }
func (t *OrderByToken) StopPosition() int  { return t.Begin + t.Length }
func (t *OrderByToken) sqlToken()          {}

// Sort sorts tokens by begin position, tokens at the same position keep their generated order.
func Sort(tokens []SQLToken) {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].BeginPosition() < tokens[j].BeginPosition()
	})
}

// Fingerprint describes tokens structurally, equal fingerprints render the same text for the same input.
func Fingerprint(tokens []SQLToken) string {
	sb := &strings.Builder{}
	for _, t := range tokens {
		sb.WriteString(strconv.Itoa(t.BeginPosition()))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(t.StopPosition()))
		switch v := t.(type) {
		case *TableToken:
			sb.WriteString("T:")
			sb.WriteString(v.Name)
		case *SchemaToken:
			sb.WriteString("S:")
			sb.WriteString(v.SchemaName)
			sb.WriteByte('.')
			sb.WriteString(v.TableName)
		case *IndexToken:
			sb.WriteString("I:")
			sb.WriteString(v.IndexName)
			sb.WriteByte('.')
			sb.WriteString(v.TableName)
		case *ItemsToken:
			sb.WriteString("P:")
			for _, item := range v.Items {
				sb.WriteString(item.String())
				sb.WriteByte(',')
			}
		case *RowCountToken:
			sb.WriteString("R:")
			sb.WriteString(strconv.FormatInt(v.Value, 10))
		case *OffsetToken:
			sb.WriteString("O:")
			sb.WriteString(strconv.FormatInt(v.Value, 10))
		case *OrderByToken:
			sb.WriteString("B:")
			for _, item := range v.Items {
				sb.WriteString(item.String())
				sb.WriteByte(',')
			}
		}
		sb.WriteByte(';')
	}
	return sb.String()
}
