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

// parseModule parses the interior of an already-lexed module...endmodule
// DelimGroup (modTok.Group): an optional lifetime, the module name, an
// optional parameter port list, an optional port list, and the module's
// items.
func (p *Parser) parseModule(modTok token.Token) (*ast.ModuleDecl, error) {
	group := modTok.Group
	inner := p.nested(group)

	lifetime := inner.parseLifetime()
	name := inner.expectIdent()

	var paramPortList []*ast.ParamDecl
	if inner.consumeIfOp(token.OpHash) {
		g := inner.expectDelim(token.Paren)
		pl, err := inner.parseParamPortList(g)
		if err != nil {
			return nil, err
		}
		paramPortList = pl
	}

	var ports []ast.PortDecl
	if g, ok := inner.consumeIfDelim(token.Paren); ok {
		pl, err := inner.parsePortList(g)
		if err != nil {
			return nil, err
		}
		ports = pl
	}
	inner.expectOp(token.OpSemi)

	var items []ast.Item
	for !inner.stream.IsEOF() {
		it, err := inner.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	p.finishNested(inner, group)

	sp := modTok.Span.Join(group.Close.Span)
	return ast.NewModuleDecl(sp, lifetime, name, paramPortList, ports, items), nil
}

func (p *Parser) parseLifetime() ast.Lifetime {
	if p.consumeIfKw(token.KwAutomatic) {
		return ast.LifetimeAutomatic
	}
	p.consumeIfKw(token.KwStatic)
	return ast.LifetimeStatic
}

// parseParamPortList parses the comma-separated contents of a `#( ... )`
// parameter port list. Each element optionally restates the
// parameter/localparam keyword and sort; omitting either inherits the run
// currently in progress. A sort of SortKind (the bare `type` keyword)
// marks the run as type parameters instead of value parameters.
func (p *Parser) parseParamPortList(group *token.DelimGroup) ([]*ast.ParamDecl, error) {
	inner := p.nested(group)
	if inner.stream.IsEOF() {
		return nil, nil
	}

	var decls []*ast.ParamDecl
	curKw := token.KwParameter
	var curSort *ast.Sort
	var curAssigns []ast.DeclAssign

	flush := func() {
		if len(curAssigns) == 0 {
			return
		}
		sp := curAssigns[0].Span().Join(curAssigns[len(curAssigns)-1].Span())
		decls = append(decls, ast.NewParamDecl(sp, curKw, curSort, curAssigns))
		curAssigns = nil
	}

	for {
		restated := false
		newKw := curKw
		switch {
		case inner.consumeIfKw(token.KwParameter):
			newKw = token.KwParameter
			restated = true
		case inner.consumeIfKw(token.KwLocalparam):
			newKw = token.KwLocalparam
			restated = true
		}

		// A sort restatement is checked on every element independently of
		// whether the keyword was restated: `parameter int W=8, type T=logic`
		// restates the sort on its second element without repeating
		// `parameter`, and still starts a new run. The flush must see the
		// previous entry's keyword, so it runs before curKw is overwritten.
		sort, hasSort, err := inner.tryParseSort()
		if err != nil {
			return decls, err
		}
		if restated || hasSort {
			flush()
			if hasSort {
				curSort = sort
			}
		}
		curKw = newKw

		assignSp := inner.here()
		name := inner.expectIdent()
		dims, err := inner.parseUnpackedDims()
		if err != nil {
			return decls, err
		}
		var init ast.Expr
		if inner.consumeIfOp(token.OpAssign) {
			// A type parameter's default is a data type, not an expression.
			if curSort != nil && curSort.Tag == ast.SortKind {
				dt, err := inner.parseDataTypeOrImplicit()
				if err != nil {
					return decls, err
				}
				init = ast.NewTypeExpr(dt.Span(), dt)
			} else {
				e, err := inner.parseExpr()
				if err != nil {
					return decls, err
				}
				init = e
			}
		}
		end := name.Span
		if init != nil {
			end = init.Span()
		}
		curAssigns = append(curAssigns, ast.NewDeclAssign(assignSp.Join(end), name, dims, init))

		if !inner.consumeIfOp(token.OpComma) {
			break
		}
	}
	flush()
	p.finishNested(inner, group)
	return decls, nil
}

// tryParseSort parses an optional Sort restatement at the head of a
// parameter declaration: the bare `type` keyword (SortKind, a type
// parameter), `type(expr)` (a SortType TypeRefType), or an ordinary data
// type (SortType). It reports hasSort=false, consuming nothing, when
// neither form is present.
func (p *Parser) tryParseSort() (*ast.Sort, bool, error) {
	if p.consumeIfKw(token.KwType) {
		if g, ok := p.consumeIfDelim(token.Paren); ok {
			inner := p.nested(g)
			e, err := inner.parseExpr()
			if err != nil {
				return nil, false, err
			}
			p.finishNested(inner, g)
			dt := ast.NewTypeRefType(g.Open.Span.Join(g.Close.Span), e)
			return &ast.Sort{Tag: ast.SortType, DataType: dt}, true, nil
		}
		return &ast.Sort{Tag: ast.SortKind}, true, nil
	}
	if !p.looksLikeDataTypeStart() {
		return nil, false, nil
	}
	dt, err := p.parseDataTypeOrImplicit()
	if err != nil {
		return nil, false, err
	}
	return &ast.Sort{Tag: ast.SortType, DataType: dt}, true, nil
}

func (p *Parser) consumeDir() (ast.PortDir, bool) {
	switch {
	case p.consumeIfKw(token.KwInput):
		return ast.DirInput, true
	case p.consumeIfKw(token.KwOutput):
		return ast.DirOutput, true
	case p.consumeIfKw(token.KwInout):
		return ast.DirInout, true
	case p.consumeIfKw(token.KwRef):
		return ast.DirRef, true
	default:
		return ast.DirNone, false
	}
}

// looksLikeInterfacePortHeader recognizes the unambiguous `iface.modport
// name` port header by four-token lookahead: an ordinary data type is
// never itself followed by a bare dotted name before the declared port
// name, so this shape can only be an interface port.
func (p *Parser) looksLikeInterfacePortHeader() bool {
	return p.peek().Kind == token.Ident &&
		p.peekN(1).Kind == token.OperatorTok && p.peekN(1).Operator == token.OpDot &&
		p.peekN(2).Kind == token.Ident &&
		p.peekN(3).Kind == token.Ident
}

// parsePortList parses the comma-separated contents of an ANSI port
// list. Direction, net kind, and data type are "sticky": an entry that
// restates none of them inherits the previous entry's, matching how SV
// lets port declarations share a header across commas. Names declared
// under the same un-restated header are merged into a single PortDecl's
// Assignments (matching scenario S4's `input logic a, b` producing one
// `Data` port with two names, not two separate ports); the run flushes
// into its own PortDecl whenever the header is next restated, or at a
// `.name(expr)` explicit port, or at the end of the list.
func (p *Parser) parsePortList(group *token.DelimGroup) ([]ast.PortDecl, error) {
	inner := p.nested(group)
	if inner.stream.IsEOF() {
		return nil, nil
	}

	var ports []ast.PortDecl
	dir := ast.DirInput
	net := ast.NetDefault
	var dataType ast.DataType
	var iface *ast.Ident
	var modport *ast.Ident
	isInterface := false

	var curAssigns []ast.DeclAssign

	flush := func() {
		if len(curAssigns) == 0 {
			return
		}
		sp := curAssigns[0].Span().Join(curAssigns[len(curAssigns)-1].Span())
		if isInterface {
			ports = append(ports, ast.NewInterfacePortDecl(sp, iface, modport, curAssigns))
		} else {
			dt := dataType
			if dt == nil {
				dt = ast.NewImplicitType(sp.Collapsed(), ast.Unsigned, nil)
			}
			ports = append(ports, ast.NewDataPortDecl(sp, dir, net, dt, curAssigns))
		}
		curAssigns = nil
	}

	for {
		sp := inner.here()

		if inner.consumeIfOp(token.OpDot) {
			flush()
			name := inner.expectIdent()
			g := inner.expectDelim(token.Paren)
			gi := inner.nested(g)
			var expr ast.Expr
			if !gi.stream.IsEOF() {
				e, err := gi.parseExpr()
				if err != nil {
					return ports, err
				}
				expr = e
			}
			inner.finishNested(gi, g)
			ports = append(ports, ast.NewExplicitPortDecl(sp.Join(g.Close.Span), dir, name, expr))
			if !inner.consumeIfOp(token.OpComma) {
				break
			}
			continue
		}

		restated := false
		newDir, newNet, newDataType, newIface, newModport, newIsInterface :=
			dir, net, dataType, iface, modport, isInterface

		if d, ok := inner.consumeDir(); ok {
			newDir = d
			newNet = ast.NetDefault
			newDataType = nil
			newIface, newModport = nil, nil
			newIsInterface = false
			restated = true
		}
		varStated := inner.consumeIfKw(token.KwVar)
		if varStated {
			newNet = ast.NetVariable
			restated = true
		}

		switch {
		case inner.consumeIfKw(token.KwInterface):
			newIsInterface = true
			newDataType = nil
			name := inner.expectIdent()
			newIface = &name
			newModport = nil
			if inner.consumeIfOp(token.OpDot) {
				m := inner.expectIdent()
				newModport = &m
			}
			restated = true
		case inner.looksLikeInterfacePortHeader():
			newIsInterface = true
			newDataType = nil
			name := inner.expectIdent()
			newIface = &name
			newModport = nil
			if inner.consumeIfOp(token.OpDot) {
				m := inner.expectIdent()
				newModport = &m
			}
			restated = true
		case inner.looksLikeDataTypeStart():
			dt, err := inner.parseDataTypeOrImplicit()
			if err != nil {
				return ports, err
			}
			newDataType = dt
			newIsInterface = false
			newIface, newModport = nil, nil
			restated = true
		}

		// Without `var`, ref ports and output ports with an explicit data
		// type are implied variables.
		if restated && !varStated && !newIsInterface {
			_, implicit := newDataType.(*ast.ImplicitType)
			if newDir == ast.DirRef || (newDir == ast.DirOutput && newDataType != nil && !implicit) {
				newNet = ast.NetVariable
			}
		}

		// The flush must see the previous entry's header, so it runs
		// before the sticky state is overwritten with this entry's.
		if restated {
			flush()
		}
		dir, net, dataType, iface, modport, isInterface =
			newDir, newNet, newDataType, newIface, newModport, newIsInterface

		name := inner.expectIdent()
		dims, err := inner.parseUnpackedDims()
		if err != nil {
			return ports, err
		}
		var init ast.Expr
		if inner.consumeIfOp(token.OpAssign) {
			e, err := inner.parseExpr()
			if err != nil {
				return ports, err
			}
			init = e
		}
		end := name.Span
		if init != nil {
			end = init.Span()
		}
		curAssigns = append(curAssigns, ast.NewDeclAssign(sp.Join(end), name, dims, init))

		if !inner.consumeIfOp(token.OpComma) {
			break
		}
	}
	flush()
	p.finishNested(inner, group)
	return ports, nil
}
