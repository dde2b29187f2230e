// Copyright 2024 The SV Elaborator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/token"
)

// tryParseScope greedily consumes a chain of scope-separated prefixes
// (`local::`, `$unit::`, or named scopes), keeping LocalScope and
// UnitScope as distinct outermost variants. It returns nil when the
// upcoming name carries no scope prefix at all. Class-parameterized
// scopes (`cls#(8)::`) are not modeled: the `#( ... )` portion, if
// present, is skipped rather than captured, since ast.Scope has no slot
// for it.
func (p *Parser) tryParseScope() ast.Scope {
	var sc ast.Scope
	for {
		t := p.peek()
		switch {
		case t.Kind == token.KeywordTok && t.Keyword == token.KwLocal && p.nextIsScopeSep():
			p.next()
			p.next()
			sc = ast.NewLocalScope(t.Span)
		case t.Kind == token.KeywordTok && t.Keyword == token.KwUnit && p.nextIsScopeSep():
			p.next()
			p.next()
			sc = ast.NewUnitScope(t.Span)
		case t.Kind == token.Ident && p.identScopeSepAhead():
			p.next()
			name := ast.Ident{Val: t.Text, Span: t.Span}
			if p.consumeIfOp(token.OpHash) {
				p.expectDelim(token.Paren) // parameterization skipped, not modeled
			}
			p.expectOp(token.OpScopeSep)
			sc = ast.NewNamedScope(t.Span, sc, name)
		default:
			return sc
		}
	}
}

func (p *Parser) nextIsScopeSep() bool {
	n := p.peekN(1)
	return n.Kind == token.OperatorTok && n.Operator == token.OpScopeSep
}

// identScopeSepAhead looks past an identifier's optional `#( ... )`
// parameterization to see whether a scope separator follows.
func (p *Parser) identScopeSepAhead() bool {
	n := p.peekN(1)
	if n.Kind == token.OperatorTok && n.Operator == token.OpScopeSep {
		return true
	}
	if n.Kind == token.OperatorTok && n.Operator == token.OpHash {
		n2 := p.peekN(2)
		if n2.Kind == token.DelimGroupTok && n2.Group != nil && n2.Group.Delim == token.Paren {
			n3 := p.peekN(3)
			return n3.Kind == token.OperatorTok && n3.Operator == token.OpScopeSep
		}
	}
	return false
}

// parseHierId parses a (possibly dotted) hierarchical identifier, rooted
// optionally at $root, this, or super.
func (p *Parser) parseHierId() ast.HierId {
	var id ast.HierId
	switch t := p.peek(); {
	case t.Kind == token.Ident && t.Text == "$root":
		p.next()
		id = ast.NewRootId(t.Span)
	case t.Kind == token.KeywordTok && t.Keyword == token.KwThis:
		p.next()
		id = ast.NewThisId(t.Span)
	case t.Kind == token.KeywordTok && t.Keyword == token.KwSuper:
		p.next()
		id = ast.NewSuperId(t.Span)
	default:
		name := p.expectIdent()
		id = ast.NewNameId(name.Span, nil, name)
	}
	for p.consumeIfOp(token.OpDot) {
		name := p.expectIdent()
		id = ast.NewNameId(name.Span, id, name)
	}
	return id
}

func scopedSpan(scope ast.Scope, name ast.HierId) token.Span {
	if scope == nil {
		return name.Span()
	}
	return scope.Span().Join(name.Span())
}
