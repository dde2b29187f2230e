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

// Package preprocessor interprets compiler directives over a stream of
// lexical tokens: conditional compilation, macro definition, and macro
// expansion. Its output stream is directive-free, newline-free, and
// comment-free.
package preprocessor

import (
	"fmt"

	"github.com/lowRISC/sv-elaborator/diag"
	"github.com/lowRISC/sv-elaborator/token"
)

// directiveNames is the closed set of recognized directive keywords. Any
// backtick-prefixed name outside this set is a macro invocation.
var directiveNames = map[string]bool{
	"resetall": true, "include": true, "define": true, "undef": true,
	"undefineall": true, "ifdef": true, "else": true, "elsif": true,
	"endif": true, "ifndef": true, "timescale": true,
	"default_nettype": true, "unconnected_drive": true,
	"nounconnected_drive": true, "celldefine": true, "endcelldefine": true,
	"pragma": true, "line": true, "__FILE__": true, "__LINE__": true,
	"begin_keywords": true, "end_keywords": true,
}

// macroDef is a stored macro: the span of the macro name in its defining
// `define (used for "previous defined here" remarks on redefinition) and the token list
// substituted at each invocation.
type macroDef struct {
	span token.Span
	toks []token.Token
}

// branchFrame tracks one open `ifdef`/`ifndef` conditional chain.
//
// live is sticky: once a clause in the chain has fired it stays true for
// the rest of the chain, so later elsif/else clauses never reactivate.
// active reflects whether we are currently inside the chain's one live
// clause, folding in the enclosing chain's own active state — so the main
// loop only ever needs to look at the innermost (top) frame to know
// whether it is in skip mode.
type branchFrame struct {
	live     bool
	active   bool
	seenElse bool
}

// frame is one layer of the re-entrant raw-token stack: the base layer is
// the lexer's output; every macro expansion pushes a new layer on top,
// which next_raw drains before falling back to the layer beneath it.
type frame struct {
	toks []token.Token
	pos  int
}

// Preprocessor holds all state needed to turn one lexed token stream into
// its preprocessed form. It is not safe for concurrent use, and is meant
// to be constructed fresh per source file.
type Preprocessor struct {
	bridge *diag.Bridge

	stacks []*frame
	macros map[string]macroDef
	branch []branchFrame

	out          []token.Token
	afterNewline bool
}

// New constructs a Preprocessor reporting through bridge.
func New(bridge *diag.Bridge) *Preprocessor {
	return &Preprocessor{bridge: bridge, macros: make(map[string]macroDef), afterNewline: true}
}

// Preprocess is the package's top-level entry point matching the
// `preprocess(mgr, diag, source) -> token deque` interface.
func Preprocess(mgr diag.Mgr, src diag.SrcMgr, toks []token.Token) ([]token.Token, error) {
	p := New(diag.NewBridge(mgr, src))
	return p.Run(toks)
}

// Run preprocesses toks in full and returns the resulting directive-free
// stream. The Preprocessor instance is single-use: call Run once.
func (p *Preprocessor) Run(toks []token.Token) ([]token.Token, error) {
	p.stacks = []*frame{{toks: toks}}
	for {
		if p.skipping() {
			tok, ok := p.skipToBranchingDirective()
			if !ok {
				break
			}
			p.dispatchDirective(tok)
			continue
		}
		tok := p.nextRaw()
		if tok.Kind == token.EOF {
			break
		}
		switch tok.Kind {
		case token.NewLine:
			p.afterNewline = true
		case token.LineComment:
			// A comment alone still counts as a line-start event for the
			// `include`-must-begin-a-line check.
			p.afterNewline = true
		case token.Directive:
			p.dispatchDirective(tok)
		default:
			if tok.Kind == token.DelimGroupTok && tok.Group != nil {
				// A group's interior is preprocessed the same way, into a
				// copy of the group, so nested tokens obey the same output
				// invariant as top-level ones.
				savedStacks, savedOut := p.stacks, p.out
				p.out = nil
				inner, _ := p.Run(tok.Group.Tokens)
				p.stacks, p.out = savedStacks, savedOut
				g := *tok.Group
				g.Tokens = inner
				tok.Group = &g
			}
			p.out = append(p.out, tok)
			p.afterNewline = false
		}
	}
	return p.out, nil
}

func (p *Preprocessor) skipping() bool {
	return len(p.branch) > 0 && !p.branch[len(p.branch)-1].active
}

// skipToBranchingDirective discards raw tokens (silently, including any
// non-branching directive) until it finds a branching directive token,
// which it consumes and returns. It reports ok=false at end of input.
func (p *Preprocessor) skipToBranchingDirective() (token.Token, bool) {
	for {
		tok := p.nextRaw()
		if tok.Kind == token.EOF {
			return token.Token{}, false
		}
		if tok.Kind == token.Directive {
			switch tok.Text {
			case "ifdef", "ifndef", "else", "elsif", "endif":
				return tok, true
			}
		}
	}
}

func (p *Preprocessor) dispatchDirective(tok token.Token) {
	switch tok.Text {
	case "define":
		p.parseDefine(tok)
	case "ifdef":
		p.parseIfdef(tok, false)
	case "ifndef":
		p.parseIfdef(tok, true)
	case "elsif":
		p.parseElsif(tok)
	case "else":
		p.parseElse(tok)
	case "endif":
		p.parseEndif(tok)
	case "resetall", "include", "undef", "undefineall", "timescale",
		"default_nettype", "unconnected_drive", "nounconnected_drive",
		"celldefine", "endcelldefine", "pragma", "line",
		"__FILE__", "__LINE__", "begin_keywords", "end_keywords":
		p.notYetSupported(tok)
	default:
		p.invokeMacro(tok)
	}
}

// --- raw token stack ---

func (p *Preprocessor) nextRaw() token.Token {
	for len(p.stacks) > 0 {
		top := p.stacks[len(p.stacks)-1]
		if top.pos < len(top.toks) {
			t := top.toks[top.pos]
			top.pos++
			if top.pos >= len(top.toks) {
				p.stacks = p.stacks[:len(p.stacks)-1]
			}
			return t
		}
		p.stacks = p.stacks[:len(p.stacks)-1]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Preprocessor) peekRaw() token.Token {
	for len(p.stacks) > 0 {
		top := p.stacks[len(p.stacks)-1]
		if top.pos < len(top.toks) {
			return top.toks[top.pos]
		}
		p.stacks = p.stacks[:len(p.stacks)-1]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Preprocessor) pushbackRaw(t token.Token) {
	p.stacks = append(p.stacks, &frame{toks: []token.Token{t}})
}

func (p *Preprocessor) pushExpansion(toks []token.Token) {
	if len(toks) == 0 {
		return
	}
	p.stacks = append(p.stacks, &frame{toks: toks})
}

// --- `define` ---

func (p *Preprocessor) parseDefine(tok token.Token) {
	nameTok := p.nextRaw()
	if nameTok.Kind != token.Ident {
		p.bridge.Errorf([]token.Span{tok.Span, nameTok.Span}, "expected a macro name after `define")
		p.discardLine()
		return
	}
	name := nameTok.Text
	if directiveNames[name] {
		p.bridge.Errorf([]token.Span{nameTok.Span}, "%q is a directive name and cannot be used as a macro name", name)
		p.discardLine()
		return
	}

	next := p.peekRaw()
	if next.Kind == token.DelimGroupTok && next.Group != nil && next.Group.Delim == token.Paren && next.Group.Open.Span.Lo == nameTok.Span.Hi {
		p.nextRaw()
		p.bridge.NotYetSupported([]token.Span{tok.Span}, "function-like macro definition")
		p.discardLine()
		return
	}

	toks := p.readUntilNewline()
	if prior, exists := p.macros[name]; exists {
		p.bridge.Errorf([]token.Span{nameTok.Span}, "redefinition of macro %q", name)
		p.bridge.Remarkf([]token.Span{prior.span}, "previous definition of %q is here", name)
	}
	p.macros[name] = macroDef{span: nameTok.Span, toks: toks}
}

// readUntilNewline consumes and returns every raw token up to (but not
// including) the next NewLine/LineComment/Eof, consuming a trailing
// NewLine as well.
func (p *Preprocessor) readUntilNewline() []token.Token {
	var out []token.Token
	for {
		t := p.peekRaw()
		if t.Kind == token.NewLine {
			p.nextRaw()
			p.afterNewline = true
			return out
		}
		if t.Kind == token.LineComment || t.Kind == token.EOF {
			return out
		}
		out = append(out, p.nextRaw())
	}
}

func (p *Preprocessor) discardLine() { p.readUntilNewline() }

// --- conditional compilation ---

func (p *Preprocessor) expectMacroName(tok token.Token) (string, bool) {
	n := p.nextRaw()
	if n.Kind != token.Ident {
		p.bridge.Errorf([]token.Span{tok.Span, n.Span}, "expected an identifier after `%s", tok.Text)
		return "", false
	}
	return n.Text, true
}

func (p *Preprocessor) parseIfdef(tok token.Token, negate bool) {
	name, ok := p.expectMacroName(tok)
	parentActive := len(p.branch) == 0 || p.branch[len(p.branch)-1].active
	if !parentActive {
		p.branch = append(p.branch, branchFrame{})
		return
	}
	if !ok {
		p.branch = append(p.branch, branchFrame{})
		return
	}
	_, defined := p.macros[name]
	taken := defined != negate
	p.branch = append(p.branch, branchFrame{live: taken, active: taken})
}

func (p *Preprocessor) parseElsif(tok token.Token) {
	if len(p.branch) == 0 {
		p.bridge.Errorf([]token.Span{tok.Span}, "`elsif without a matching `ifdef")
		p.expectMacroName(tok)
		return
	}
	f := &p.branch[len(p.branch)-1]
	if f.seenElse {
		p.bridge.Errorf([]token.Span{tok.Span}, "`elsif after an `else")
		f.active = false
		p.expectMacroName(tok)
		return
	}
	name, ok := p.expectMacroName(tok)
	parentActive := len(p.branch) == 1 || p.branch[len(p.branch)-2].active
	if !parentActive {
		f.active = false
		return
	}
	if f.live || !ok {
		f.active = false
		return
	}
	_, defined := p.macros[name]
	f.active = defined
	f.live = f.live || defined
}

func (p *Preprocessor) parseElse(tok token.Token) {
	if len(p.branch) == 0 {
		p.bridge.Errorf([]token.Span{tok.Span}, "`else without a matching `ifdef")
		return
	}
	f := &p.branch[len(p.branch)-1]
	if f.seenElse {
		p.bridge.Errorf([]token.Span{tok.Span}, "`else after an `else")
		f.active = false
		return
	}
	f.seenElse = true
	parentActive := len(p.branch) == 1 || p.branch[len(p.branch)-2].active
	if !parentActive || f.live {
		f.active = false
		return
	}
	f.active = true
	f.live = true
}

func (p *Preprocessor) parseEndif(tok token.Token) {
	if len(p.branch) == 0 {
		p.bridge.Errorf([]token.Span{tok.Span}, "`endif without a matching `ifdef")
		return
	}
	p.branch = p.branch[:len(p.branch)-1]
}

// --- macro invocation ---

func (p *Preprocessor) invokeMacro(tok token.Token) {
	def, ok := p.macros[tok.Text]
	if !ok {
		p.bridge.Errorf([]token.Span{tok.Span}, "cannot find macro %s", tok.Text)
		return
	}
	cloned := make([]token.Token, len(def.toks))
	for i, t := range def.toks {
		t.Span = tok.Span
		cloned[i] = t
	}
	p.pushExpansion(cloned)
}

// --- unsupported directives ---

func (p *Preprocessor) notYetSupported(tok token.Token) {
	p.bridge.NotYetSupported([]token.Span{tok.Span}, fmt.Sprintf("`%s", tok.Text))
	if tok.Text == "include" && !p.afterNewline {
		p.bridge.Errorf([]token.Span{tok.Span}, "`include directive must begin a line")
	}
	p.discardLine()
}
