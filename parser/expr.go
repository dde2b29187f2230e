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
	"strings"

	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/token"
)

// parseExpr parses a full expression, including the assignment form used
// in for-loop steps and continuous assigns. Constructs this front end does
// not model (concatenation, assignment patterns, tagged unions — each
// recognized by its opening `{`, `'{`, or `tagged` — and casts) are
// reported as Fatal, matching spec.md's "not implemented" as a
// first-class, testable result.
func (p *Parser) parseExpr() (ast.Expr, error) { return p.parseAssignExpr() }

func (p *Parser) parseAssignExpr() (ast.Expr, error) {
	lhs, err := p.parseLogicalOrExpr()
	if err != nil {
		return nil, err
	}
	if p.consumeIfOp(token.OpAssign) {
		rhs, err := p.parseAssignExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewAssignExpr(lhs.Span().Join(rhs.Span()), lhs, rhs), nil
	}
	return lhs, nil
}

func (p *Parser) parseLogicalOrExpr() (ast.Expr, error) {
	left, err := p.parseLogicalAndExpr()
	if err != nil {
		return nil, err
	}
	for p.consumeIfOp(token.OpLOr) {
		right, err := p.parseLogicalAndExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left.Span().Join(right.Span()), ast.BinaryLOr, left, right)
	}
	return left, nil
}

func (p *Parser) parseLogicalAndExpr() (ast.Expr, error) {
	left, err := p.parseEqualityExpr()
	if err != nil {
		return nil, err
	}
	for p.consumeIfOp(token.OpLAnd) {
		right, err := p.parseEqualityExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left.Span().Join(right.Span()), ast.BinaryLAnd, left, right)
	}
	return left, nil
}

func (p *Parser) parseEqualityExpr() (ast.Expr, error) {
	left, err := p.parseRelationalExpr()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.consumeIfOp(token.OpEq):
			op = ast.BinaryEq
		case p.consumeIfOp(token.OpNeq):
			op = ast.BinaryNeq
		default:
			return left, nil
		}
		right, err := p.parseRelationalExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left.Span().Join(right.Span()), op, left, right)
	}
}

func (p *Parser) parseRelationalExpr() (ast.Expr, error) {
	left, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.consumeIfOp(token.OpLe):
			op = ast.BinaryLe
		case p.consumeIfOp(token.OpGe):
			op = ast.BinaryGe
		case p.consumeIfOp(token.OpLt):
			op = ast.BinaryLt
		case p.consumeIfOp(token.OpGt):
			op = ast.BinaryGt
		default:
			return left, nil
		}
		right, err := p.parseAdditiveExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left.Span().Join(right.Span()), op, left, right)
	}
}

func (p *Parser) parseAdditiveExpr() (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.consumeIfOp(token.OpAdd):
			op = ast.BinaryAdd
		case p.consumeIfOp(token.OpSub):
			op = ast.BinarySub
		default:
			return left, nil
		}
		right, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(left.Span().Join(right.Span()), op, left, right)
	}
}

func unaryOpFor(t token.Token) (ast.UnaryOp, bool) {
	if t.Kind != token.OperatorTok {
		return 0, false
	}
	switch t.Operator {
	case token.OpAdd:
		return ast.UnaryPlus, true
	case token.OpSub:
		return ast.UnaryMinus, true
	case token.OpLNot:
		return ast.UnaryLNot, true
	case token.OpNot:
		return ast.UnaryNot, true
	case token.OpAnd:
		return ast.UnaryAnd, true
	case token.OpOr:
		return ast.UnaryOr, true
	case token.OpXor:
		return ast.UnaryXor, true
	default:
		return 0, false
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	t := p.peek()
	if op, ok := unaryOpFor(t); ok {
		p.next()
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(t.Span.Join(operand.Span()), op, operand), nil
	}
	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() (ast.Expr, error) {
	base, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case isBracketGroup(p.peek()):
			g, _ := p.consumeIfDelim(token.Bracket)
			dim, err := p.parseDimGroup(g)
			if err != nil {
				return nil, err
			}
			base = ast.NewSelectExpr(base.Span().Join(g.Close.Span), base, dim)
		case p.consumeIfOp(token.OpDot):
			name := p.expectIdent()
			base = ast.NewMemberExpr(base.Span().Join(name.Span), base, name)
		case p.consumeIfOp(token.OpInc):
			return ast.NewPostfixIncDecExpr(base.Span(), ast.IncOp, base), nil
		case p.consumeIfOp(token.OpDec):
			return ast.NewPostfixIncDecExpr(base.Span(), ast.DecOp, base), nil
		default:
			return base, nil
		}
	}
}

func isBracketGroup(t token.Token) bool {
	return t.Kind == token.DelimGroupTok && t.Group != nil && t.Group.Delim == token.Bracket
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	t := p.peek()
	switch {
	case t.Kind == token.IntLiteral || t.Kind == token.RealLiteral || t.Kind == token.TimeLiteral ||
		t.Kind == token.StringLiteral || t.Kind == token.UnbasedLiteral:
		p.next()
		return ast.NewLiteralExpr(t.Span, t.Text, t.Kind), nil

	case t.Kind == token.KeywordTok && t.Keyword == token.KwNull:
		p.next()
		return ast.NewLiteralExpr(t.Span, "null", token.KeywordTok), nil

	case t.Kind == token.DelimGroupTok && t.Group != nil && t.Group.Delim == token.Paren:
		p.next()
		return p.parseParenOrMinTypMax(t.Group)

	case t.Kind == token.DelimGroupTok && t.Group != nil && t.Group.Delim == token.Brace:
		p.next()
		return nil, p.notYetSupported(t.Span, "concatenation and replication expressions")

	case t.Kind == token.DelimGroupTok && t.Group != nil && t.Group.Delim == token.TickBrace:
		p.next()
		return nil, p.notYetSupported(t.Span, "assignment-pattern expressions")

	case t.Kind == token.KeywordTok && t.Keyword == token.KwTagged:
		p.next()
		return nil, p.notYetSupported(t.Span, "tagged union expressions")

	case t.Kind == token.Ident && strings.HasPrefix(t.Text, "$") && t.Text != "$root":
		return p.parseSysTfCallExpr(t)

	case t.Kind == token.EOF:
		return nil, p.fatalf([]token.Span{t.Span}, "expected an expression, found end of input")

	default:
		scope := p.tryParseScope()
		name := p.parseHierId()
		return ast.NewHierNameExpr(scopedSpan(scope, name), scope, name), nil
	}
}

// parseParenOrMinTypMax parses the interior of an already-consumed Paren
// group as either a plain parenthesized expression or a `min:typ:max`
// expression.
func (p *Parser) parseParenOrMinTypMax(group *token.DelimGroup) (ast.Expr, error) {
	sp := group.Open.Span.Join(group.Close.Span)
	inner := p.nested(group)
	if inner.stream.IsEOF() {
		return nil, p.notYetSupported(sp, "an empty parenthesized expression")
	}
	first, err := inner.parseExpr()
	if err != nil {
		return nil, err
	}
	if inner.consumeIfOp(token.OpColon) {
		typ, err := inner.parseExpr()
		if err != nil {
			return nil, err
		}
		inner.expectOp(token.OpColon)
		maxExpr, err := inner.parseExpr()
		if err != nil {
			return nil, err
		}
		p.finishNested(inner, group)
		return ast.NewMinTypMaxExpr(sp, first, typ, maxExpr), nil
	}
	p.finishNested(inner, group)
	return ast.NewParenExpr(sp, first), nil
}

// parseSysTfCallExpr parses a `$system_task(args, ...)` call, with t
// (already peeked but not consumed) as the task name.
func (p *Parser) parseSysTfCallExpr(t token.Token) (ast.Expr, error) {
	p.next()
	name := ast.Ident{Val: t.Text, Span: t.Span}
	var args []ast.Expr
	g, ok := p.consumeIfDelim(token.Paren)
	if !ok {
		return ast.NewSysTfCallExpr(t.Span, name, args), nil
	}
	inner := p.nested(g)
	if !inner.stream.IsEOF() {
		for {
			e, err := inner.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
			if !inner.consumeIfOp(token.OpComma) {
				break
			}
		}
	}
	p.finishNested(inner, g)
	return ast.NewSysTfCallExpr(t.Span.Join(g.Close.Span), name, args), nil
}
