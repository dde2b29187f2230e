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

// parseItem parses one module item: a nested module declaration,
// a continuous assign, a hierarchical instantiation, or a standalone
// system-task call. Anything else recognized-but-unimplemented (generate
// constructs, always/initial blocks, ...) is reported Fatal: this front
// end's closed keyword set does not yet include the keywords needed to
// recognize them at all.
func (p *Parser) parseItem() (ast.Item, error) {
	t := p.peek()
	switch {
	case t.Kind == token.DelimGroupTok && t.Group != nil && t.Group.Delim == token.Module:
		p.next()
		return p.parseModule(t)

	case t.Kind == token.KeywordTok && t.Keyword == token.KwAssign:
		return p.parseContinuousAssign()

	case t.Kind == token.KeywordTok && t.Keyword == token.KwExtern:
		return nil, p.notYetSupported(t.Span, "extern declarations")

	case t.Kind == token.Ident && strings.HasPrefix(t.Text, "$"):
		return p.parseSysTfCallItem()

	case t.Kind == token.Ident:
		return p.parseHierInstantiation()

	case t.Kind == token.EOF:
		return nil, p.fatalf([]token.Span{t.Span}, "unexpected end of input, expected a module item")

	default:
		return nil, p.notYetSupported(t.Span, t.String()+" as a module item")
	}
}

func (p *Parser) parseContinuousAssign() (ast.Item, error) {
	kw := p.next() // `assign`
	var assigns []ast.Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, e)
		if !p.consumeIfOp(token.OpComma) {
			break
		}
	}
	p.expectOp(token.OpSemi)
	sp := kw.Span
	if len(assigns) > 0 {
		sp = sp.Join(assigns[len(assigns)-1].Span())
	}
	return ast.NewContinuousAssign(sp, assigns), nil
}

func (p *Parser) parseHierInstantiation() (ast.Item, error) {
	nameTok := p.next()
	name := ast.Ident{Val: nameTok.Text, Span: nameTok.Span}

	var params []ast.Arg
	if p.consumeIfOp(token.OpHash) {
		g := p.expectDelim(token.Paren)
		ps, err := p.parseArgList(g)
		if err != nil {
			return nil, err
		}
		params = ps
	}

	var instances []ast.HierInst
	for {
		inst, err := p.parseHierInst()
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
		if !p.consumeIfOp(token.OpComma) {
			break
		}
	}
	p.expectOp(token.OpSemi)

	sp := name.Span
	if len(instances) > 0 {
		sp = sp.Join(instances[len(instances)-1].Span())
	}
	return ast.NewHierInstantiation(sp, name, params, instances), nil
}

func (p *Parser) parseHierInst() (ast.HierInst, error) {
	instName := p.expectIdent()
	var rng ast.Dim
	if g, ok := p.consumeIfDelim(token.Bracket); ok {
		d, err := p.parseDimGroup(g)
		if err != nil {
			return ast.HierInst{}, err
		}
		rng = d
	}
	portsGroup := p.expectDelim(token.Paren)
	ports, err := p.parseArgList(portsGroup)
	if err != nil {
		return ast.HierInst{}, err
	}
	sp := instName.Span.Join(portsGroup.Close.Span)
	return ast.NewHierInst(sp, instName, rng, ports), nil
}

func (p *Parser) parseArgList(group *token.DelimGroup) ([]ast.Arg, error) {
	inner := p.nested(group)
	var args []ast.Arg
	if inner.stream.IsEOF() {
		return nil, nil
	}
	for {
		arg, err := inner.parseArg()
		if err != nil {
			return args, err
		}
		args = append(args, arg)
		if !inner.consumeIfOp(token.OpComma) {
			break
		}
	}
	p.finishNested(inner, group)
	return args, nil
}

func (p *Parser) parseArg() (ast.Arg, error) {
	sp := p.here()
	if p.consumeIfOp(token.OpDotStar) {
		return ast.NewNamedWildcardArg(sp), nil
	}
	if p.consumeIfOp(token.OpDot) {
		name := p.expectIdent()
		if g, ok := p.consumeIfDelim(token.Paren); ok {
			inner := p.nested(g)
			var expr ast.Expr
			if !inner.stream.IsEOF() {
				e, err := inner.parseExpr()
				if err != nil {
					return nil, err
				}
				expr = e
			}
			p.finishNested(inner, g)
			return ast.NewNamedArg(sp.Join(g.Close.Span), name, expr), nil
		}
		return ast.NewNamedArg(sp.Join(name.Span), name, nil), nil
	}
	if isArgTerminator(p.peek()) {
		return ast.NewOrderedArg(sp, nil), nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewOrderedArg(e.Span(), e), nil
}

func isArgTerminator(t token.Token) bool {
	return t.Kind == token.EOF || (t.Kind == token.OperatorTok && t.Operator == token.OpComma)
}

func (p *Parser) parseSysTfCallItem() (ast.Item, error) {
	t := p.peek()
	call, err := p.parseSysTfCallExpr(t)
	if err != nil {
		return nil, err
	}
	p.expectOp(token.OpSemi)
	ce := call.(*ast.SysTfCallExpr)
	return ast.NewSysTfCallItem(ce.Span(), ce), nil
}
