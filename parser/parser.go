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

// Package parser is a handwritten recursive-descent parser over the
// preprocessed token stream. It never backtracks over consumed tokens;
// local grammar ambiguities are resolved with bounded lookahead (and the
// cheap "peek into a delimited group" operation) instead. Every
// production returns either a successfully built node — possibly a
// synthesized error-recovery placeholder — or a fatal error the caller
// propagates unchanged.
package parser

import (
	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/diag"
	"github.com/lowRISC/sv-elaborator/token"
)

// Parser holds one token.Stream and the diagnostic bridge it reports
// through. Recursing into a delimited group swaps in a fresh Parser over
// the group's own stream (see nested); there is no shared mutable
// parse state beyond the call stack.
type Parser struct {
	bridge *diag.Bridge
	stream *token.Stream
}

// ParseSource is the package's top-level entry point matching the
// `parse_source(tokens) -> list of top-level Items` interface.
func ParseSource(mgr diag.Mgr, src diag.SrcMgr, toks []token.Token) ([]ast.Item, error) {
	p := newParser(diag.NewBridge(mgr, src), toks, eofSpanOf(toks))
	return p.parseSource()
}

func newParser(bridge *diag.Bridge, toks []token.Token, eofAt token.Span) *Parser {
	return &Parser{bridge: bridge, stream: token.NewStream(toks, eofAt)}
}

func eofSpanOf(toks []token.Token) token.Span {
	if len(toks) == 0 {
		return token.Span{}
	}
	return toks[len(toks)-1].Span.Collapsed()
}

func (p *Parser) parseSource() ([]ast.Item, error) {
	var items []ast.Item
	for !p.stream.IsEOF() {
		it, err := p.parseItem()
		if err != nil {
			return items, err
		}
		items = append(items, it)
	}
	return items, nil
}

// --- token stream helpers ---

func (p *Parser) peek() token.Token        { return p.stream.Peek() }
func (p *Parser) peekN(n int) token.Token  { return p.stream.PeekN(n) }
func (p *Parser) next() token.Token        { return p.stream.Next() }
func (p *Parser) pushback(t token.Token)   { p.stream.Pushback(t) }
func (p *Parser) here() token.Span         { return p.peek().Span.Collapsed() }

func (p *Parser) consumeIfOp(op token.Operator) bool {
	if t := p.peek(); t.Kind == token.OperatorTok && t.Operator == op {
		p.next()
		return true
	}
	return false
}

func (p *Parser) consumeIfKw(kw token.Keyword) bool {
	if t := p.peek(); t.Kind == token.KeywordTok && t.Keyword == kw {
		p.next()
		return true
	}
	return false
}

func (p *Parser) consumeIfDelim(d token.Delim) (*token.DelimGroup, bool) {
	if t := p.peek(); t.Kind == token.DelimGroupTok && t.Group != nil && t.Group.Delim == d {
		p.next()
		return t.Group, true
	}
	return nil, false
}

func (p *Parser) consumeIfIdent() (ast.Ident, bool) {
	if t := p.peek(); t.Kind == token.Ident {
		p.next()
		return ast.Ident{Val: t.Text, Span: t.Span}, true
	}
	return ast.Ident{}, false
}

// expectIdent consumes an identifier, or reports an Error diagnostic and
// synthesizes an empty-name placeholder carrying the current position.
func (p *Parser) expectIdent() ast.Ident {
	if id, ok := p.consumeIfIdent(); ok {
		return id
	}
	at := p.here()
	p.bridge.Errorf([]token.Span{at}, "expected an identifier, found %s", p.peek())
	return ast.Ident{Val: "", Span: at}
}

// expectOp consumes op, or reports an Error diagnostic and leaves the
// stream positioned where it was so the caller can keep trying to
// recover.
func (p *Parser) expectOp(op token.Operator) bool {
	if p.consumeIfOp(op) {
		return true
	}
	p.bridge.Errorf([]token.Span{p.here()}, "expected '%s', found %s", op, p.peek())
	return false
}

// expectDelim consumes a delimited group of kind d, or reports an Error
// diagnostic and synthesizes an empty placeholder group.
func (p *Parser) expectDelim(d token.Delim) *token.DelimGroup {
	if g, ok := p.consumeIfDelim(d); ok {
		return g
	}
	at := p.here()
	p.bridge.Errorf([]token.Span{at}, "expected a %s, found %s", delimName(d), p.peek())
	return &token.DelimGroup{Delim: d}
}

func delimName(d token.Delim) string {
	switch d {
	case token.Paren:
		return "'('"
	case token.Bracket:
		return "'['"
	case token.Brace:
		return "'{'"
	case token.TickBrace:
		return "'{"
	case token.Attr:
		return "(*"
	case token.Module:
		return "module"
	default:
		return "delimiter"
	}
}

// nested returns a Parser over group's interior, with Eof reported at the
// group's closing delimiter.
func (p *Parser) nested(group *token.DelimGroup) *Parser {
	return newParser(p.bridge, group.Tokens, group.Close.Span.Collapsed())
}

// finishNested checks the nested-stream invariant (§4.1): a recursive
// parse of a delimited group must consume everything the group contains.
func (p *Parser) finishNested(inner *Parser, group *token.DelimGroup) {
	if inner.stream.Remaining() > 0 {
		p.bridge.Errorf([]token.Span{inner.here()}, "unexpected %s inside %s", inner.peek(), delimName(group.Delim))
	}
}

// fatalf reports a Fatal diagnostic and returns the resulting abort
// error; callers must propagate it unchanged to their own caller.
func (p *Parser) fatalf(spans []token.Span, format string, args ...interface{}) error {
	return p.bridge.Fatalf(spans, format, args...)
}

// notYetSupported reports the standard Fatal "not yet supported" used for
// recognized-but-unimplemented grammar productions; spec.md treats "not
// implemented" as a first-class, testable result rather than a crash.
func (p *Parser) notYetSupported(at token.Span, what string) error {
	return p.fatalf([]token.Span{at}, "%s is not yet supported", what)
}
