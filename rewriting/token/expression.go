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

// OwnerRef is a qualifier inside an expression, like t_order in t_order.user_id or db_0 in db_0.t_order.user_id.
// Table is the unquoted logic table the qualifier belongs to, Schema is true for the schema part.
type OwnerRef struct {
	Begin  int
	Text   string
	Table  string
	Schema bool
}

func (o OwnerRef) Quote() QuoteCharacter {
	return QuoteOf(o.Text)
}

// Expression is sql text copied into generated sql, its owners are renamed for every target.
type Expression struct {
	Text   string
	Owners []OwnerRef
}

// ParseExpression locates the table qualifiers of column references in text.
// Qualified function calls like db.fn(x) are not column references.
func ParseExpression(text string) Expression {
	e := Expression{Text: text}
	lexemes := Lexemes(text)
	for i := 0; i < len(lexemes); {
		chain := identifierChain(lexemes, i)
		if len(chain) == 0 {
			i++
			continue
		}
		next := i + 2*len(chain) - 1
		call := next < len(lexemes) && lexemes[next].IsSymbol('(')
		if !call && (len(chain) == 2 || len(chain) == 3) {
			owner := chain[len(chain)-2]
			table := Unquote(owner.Text)
			if len(chain) == 3 {
				e.Owners = append(e.Owners, OwnerRef{Begin: chain[0].Begin, Text: chain[0].Text, Table: table, Schema: true})
			}
			e.Owners = append(e.Owners, OwnerRef{Begin: owner.Begin, Text: owner.Text, Table: table})
		}
		i = next
	}
	return e
}

// identifierChain returns identifiers joined by '.' starting at index i, like a.b.c.
func identifierChain(lexemes []Lexeme, i int) []Lexeme {
	if !lexemes[i].IsIdentifier() || (i > 0 && lexemes[i-1].IsSymbol('.')) {
		return nil
	}
	chain := []Lexeme{lexemes[i]}
	for j := i + 1; j+1 < len(lexemes) && lexemes[j].IsSymbol('.') && lexemes[j+1].IsIdentifier(); j += 2 {
		chain = append(chain, lexemes[j+1])
	}
	return chain
}

// DerivedItem is a projection appended to the select list, rendered as Function(DISTINCT Expression) AS Alias.
// Function is empty for plain columns.
type DerivedItem struct {
	Function   string
	Distinct   bool
	Expression Expression
	Alias      string
}

// Format renders the item with the given expression text.
func (d DerivedItem) Format(expression string) string {
	if d.Function == "" {
		return expression + " AS " + d.Alias
	}
	if d.Distinct {
		expression = "DISTINCT " + expression
	}
	return d.Function + "(" + expression + ") AS " + d.Alias
}

func (d DerivedItem) String() string {
	return d.Format(d.Expression.Text)
}
