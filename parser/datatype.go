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

// aheadLooksLikeTypeName reports whether the upcoming bare identifier is
// being used as a type name rather than as a declared name, resolving the
// classic data_type_or_implicit ambiguity with two-token lookahead: a
// declared name is never itself followed by another identifier, a scope
// separator, or a dotted modport name, so seeing one of those after an
// identifier means the identifier was a type (or interface) name instead.
func (p *Parser) aheadLooksLikeTypeName() bool {
	t := p.peek()
	if t.Kind != token.Ident {
		return false
	}
	n1 := p.peekN(1)
	if n1.Kind == token.Ident {
		return true
	}
	if n1.Kind == token.OperatorTok && (n1.Operator == token.OpScopeSep || n1.Operator == token.OpDot) {
		return true
	}
	return false
}

// looksLikeDataTypeStart reports whether the current position begins an
// explicit data type, as opposed to jumping straight to implicit-typed
// declared names.
func (p *Parser) looksLikeDataTypeStart() bool {
	t := p.peek()
	switch {
	case t.Kind == token.KeywordTok &&
		(t.Keyword == token.KwBit || t.Keyword == token.KwLogic || t.Keyword == token.KwReg ||
			t.Keyword == token.KwSigned || t.Keyword == token.KwUnsigned ||
			t.Keyword == token.KwInterface || t.Keyword == token.KwType):
		return true
	case t.Kind == token.Ident && t.Text == "virtual":
		return true
	default:
		return p.aheadLooksLikeTypeName()
	}
}

func intVecKindOf(kw token.Keyword) ast.IntVecKind {
	switch kw {
	case token.KwBit:
		return ast.IntVecBit
	case token.KwReg:
		return ast.IntVecReg
	default:
		return ast.IntVecLogic
	}
}

// parseOptSigning consumes an optional `signed`/`unsigned` restatement,
// defaulting to def when neither is present.
func (p *Parser) parseOptSigning(def ast.Signing) ast.Signing {
	if p.consumeIfKw(token.KwSigned) {
		return ast.Signed
	}
	if p.consumeIfKw(token.KwUnsigned) {
		return ast.Unsigned
	}
	return def
}

// parseDataTypeOrImplicit parses a data_type_or_implicit: an explicit
// data type if one is present, or an ImplicitType carrying only an
// optional signing restatement and packed dimensions otherwise.
func (p *Parser) parseDataTypeOrImplicit() (ast.DataType, error) {
	sp := p.here()
	switch t := p.peek(); {
	case t.Kind == token.KeywordTok && (t.Keyword == token.KwBit || t.Keyword == token.KwLogic || t.Keyword == token.KwReg):
		p.next()
		kind := intVecKindOf(t.Keyword)
		signing := p.parseOptSigning(ast.Unsigned)
		dims, err := p.parsePackDims()
		if err != nil {
			return nil, err
		}
		return ast.NewIntVecType(sp.Join(p.prevEnd()), kind, signing, dims), nil

	case t.Kind == token.KeywordTok && t.Keyword == token.KwType:
		p.next()
		g := p.expectDelim(token.Paren)
		inner := p.nested(g)
		expr, err := inner.parseExpr()
		if err != nil {
			return nil, err
		}
		p.finishNested(inner, g)
		return ast.NewTypeRefType(sp.Join(g.Close.Span), expr), nil

	case t.Kind == token.KeywordTok && t.Keyword == token.KwInterface:
		p.next()
		name := p.expectIdent()
		return ast.NewVirtualInterfaceType(sp.Join(name.Span), name), nil

	case t.Kind == token.Ident && t.Text == "virtual":
		p.next()
		p.consumeIfKw(token.KwInterface)
		name := p.expectIdent()
		return ast.NewVirtualInterfaceType(sp.Join(name.Span), name), nil

	case t.Kind == token.KeywordTok && (t.Keyword == token.KwSigned || t.Keyword == token.KwUnsigned):
		signing := p.parseOptSigning(ast.Unsigned)
		dims, err := p.parsePackDims()
		if err != nil {
			return nil, err
		}
		return ast.NewImplicitType(sp.Join(p.prevEnd()), signing, dims), nil

	case p.aheadLooksLikeTypeName():
		scope := p.tryParseScope()
		name := p.parseHierId()
		dims, err := p.parsePackDims()
		if err != nil {
			return nil, err
		}
		return ast.NewHierNameType(sp.Join(p.prevEnd()), scope, name, dims), nil

	default:
		dims, err := p.parsePackDims()
		if err != nil {
			return nil, err
		}
		end := sp
		if len(dims) > 0 {
			end = dims[len(dims)-1].Span()
		}
		return ast.NewImplicitType(sp.Join(end), ast.Unsigned, dims), nil
	}
}

// prevEnd approximates the end of the node just parsed by the start of
// whatever follows it. It under-covers trailing whitespace/comments, which
// never matters since spans are only ever used to slice real source text
// or to report diagnostics at a reasonable nearby position.
func (p *Parser) prevEnd() token.Span { return p.here() }

// parseDims parses zero or more bracketed dimensions: value, range, +:/-:
// indexed part-select, unsized, queue, and associative-wildcard. It never
// produces an associative-keyed AssocDim: a `[key_type]` bracket's contents
// are parsed as an expression.
func (p *Parser) parseDims() ([]ast.Dim, error) {
	var dims []ast.Dim
	for {
		g, ok := p.consumeIfDelim(token.Bracket)
		if !ok {
			break
		}
		d, err := p.parseDimGroup(g)
		if err != nil {
			return dims, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}

// parseUnpackedDims is parseDims under the name spec.md gives the
// unpacked-dimension production; every Dim variant is valid here.
func (p *Parser) parseUnpackedDims() ([]ast.Dim, error) { return p.parseDims() }

// parsePackDims parses dimensions restricted to the packed-dimension
// grammar: only a constant range or a bare value is allowed. A
// disallowed form (queue, unsized, associative) is reported as an Error
// and kept in the result so later passes still see what was written.
func (p *Parser) parsePackDims() ([]ast.Dim, error) {
	dims, err := p.parseDims()
	if err != nil {
		return dims, err
	}
	for _, d := range dims {
		switch d.(type) {
		case *ast.ValueDim, *ast.RangeDim:
		default:
			p.bridge.Errorf([]token.Span{d.Span()}, "packed dimensions must be a constant range or value")
		}
	}
	return dims, nil
}

// parseDimGroup parses the interior of a single `[ ... ]` dimension.
func (p *Parser) parseDimGroup(group *token.DelimGroup) (ast.Dim, error) {
	sp := group.Open.Span.Join(group.Close.Span)
	inner := p.nested(group)
	if inner.stream.IsEOF() {
		return ast.NewUnsizedDim(sp), nil
	}
	if t := inner.peek(); t.Kind == token.OperatorTok && t.Operator == token.OpDollar {
		inner.next()
		if inner.consumeIfOp(token.OpColon) {
			bound, err := inner.parseExpr()
			if err != nil {
				return nil, err
			}
			p.finishNested(inner, group)
			return ast.NewQueueDim(sp, bound), nil
		}
		p.finishNested(inner, group)
		return ast.NewQueueDim(sp, nil), nil
	}
	if t := inner.peek(); t.Kind == token.OperatorTok && t.Operator == token.OpMul {
		inner.next()
		p.finishNested(inner, group)
		return ast.NewAssocWildDim(sp), nil
	}
	first, err := inner.parseExpr()
	if err != nil {
		return nil, err
	}
	switch {
	case inner.consumeIfOp(token.OpColon):
		lsb, err := inner.parseExpr()
		if err != nil {
			return nil, err
		}
		p.finishNested(inner, group)
		return ast.NewRangeDim(sp, first, lsb), nil
	case inner.consumeIfOp(token.OpPlusColon):
		width, err := inner.parseExpr()
		if err != nil {
			return nil, err
		}
		p.finishNested(inner, group)
		return ast.NewPlusRangeDim(sp, first, width), nil
	case inner.consumeIfOp(token.OpMinusColon):
		width, err := inner.parseExpr()
		if err != nil {
			return nil, err
		}
		p.finishNested(inner, group)
		return ast.NewMinusRangeDim(sp, first, width), nil
	default:
		p.finishNested(inner, group)
		return ast.NewValueDim(sp, first), nil
	}
}
