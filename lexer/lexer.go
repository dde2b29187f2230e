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

// Package lexer is the concrete Lexer the rest of this module treats as an
// external collaborator: it turns a diag.Source into a flat []token.Token,
// preserving NewLine/LineComment/Directive markers for the preprocessor and
// assembling delimited groups (parens, brackets, braces, '{...}, (*...*),
// and the synthetic module...endmodule group) with pre-balanced contents.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lowRISC/sv-elaborator/diag"
	"github.com/lowRISC/sv-elaborator/token"
)

// Lexer is the default concrete implementation of the sv.Lexer interface.
type Lexer struct{}

// New constructs a Lexer. It carries no state of its own between calls.
func New() *Lexer { return &Lexer{} }

// Lex scans src in full and returns its token sequence, including NewLine,
// LineComment, and Directive markers, with every bracketed run collapsed
// into a single DelimGroupTok token.
func (*Lexer) Lex(src *diag.Source) ([]token.Token, error) {
	s := &scanner{file: src.File, text: src.Text}
	var out []token.Token
	for {
		t, ok := s.nextToken()
		if !ok {
			return out, nil
		}
		out = append(out, t)
	}
}

type scanner struct {
	file token.File
	text string
	pos  int
}

func (s *scanner) eof() bool { return s.pos >= len(s.text) }

func (s *scanner) peekByte() byte {
	if s.eof() {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) hasPrefix(p string) bool { return strings.HasPrefix(s.text[s.pos:], p) }

func (s *scanner) span(lo int) token.Span { return token.Span{File: s.file, Lo: lo, Hi: s.pos} }

// nextToken scans and returns exactly one token, or ok=false at end of
// input. Whitespace is consumed silently; newlines and comments are
// returned as their own marker tokens, matching spec.md's requirement
// that the lexer preserve them for the preprocessor to strip.
func (s *scanner) nextToken() (token.Token, bool) {
	s.skipInlineWhitespace()
	if s.eof() {
		return token.Token{}, false
	}
	lo := s.pos
	switch {
	case s.hasPrefix("\n"):
		s.pos++
		return token.Token{Kind: token.NewLine, Span: s.span(lo)}, true
	case s.hasPrefix("//"):
		for !s.eof() && s.peekByte() != '\n' {
			s.pos++
		}
		return token.Token{Kind: token.LineComment, Text: s.text[lo:s.pos], Span: s.span(lo)}, true
	case s.hasPrefix("/*"):
		s.pos += 2
		for !s.eof() && !s.hasPrefix("*/") {
			s.pos++
		}
		if s.hasPrefix("*/") {
			s.pos += 2
		}
		return token.Token{Kind: token.LineComment, Text: s.text[lo:s.pos], Span: s.span(lo)}, true
	case s.peekByte() == '`':
		return s.lexDirective(), true
	case s.hasPrefix("(*"):
		return s.lexDelim(token.Attr, "(*", "*)"), true
	case s.hasPrefix("'{"):
		return s.lexDelim(token.TickBrace, "'{", "}"), true
	case s.peekByte() == '(':
		return s.lexDelim(token.Paren, "(", ")"), true
	case s.peekByte() == '[':
		return s.lexDelim(token.Bracket, "[", "]"), true
	case s.peekByte() == '{':
		return s.lexDelim(token.Brace, "{", "}"), true
	case s.isBareKeywordHere("module"):
		return s.lexModuleGroup(), true
	case isIdentStart(rune(s.peekByte())):
		return s.lexIdentOrKeyword(), true
	case isDigit(s.peekByte()):
		return s.lexNumber(), true
	case s.peekByte() == '"':
		return s.lexString(), true
	default:
		return s.lexOperator(), true
	}
}

func (s *scanner) skipInlineWhitespace() {
	for !s.eof() {
		b := s.peekByte()
		if b == ' ' || b == '\t' || b == '\r' {
			s.pos++
			continue
		}
		return
	}
}

// lexDelim consumes open, recursively collects tokens via nextToken until
// the matching close operator is seen at the top of this group (nested
// occurrences of the same bracket kind are themselves collapsed into
// their own DelimGroupTok by the recursive nextToken calls, so no
// explicit depth counting is needed here), and assembles the DelimGroup.
func (s *scanner) lexDelim(kind token.Delim, open, close string) token.Token {
	lo := s.pos
	s.pos += len(open)
	openTok := token.Token{Kind: token.OperatorTok, Text: open, Span: s.span(lo)}

	var inner []token.Token
	for {
		s.skipInlineWhitespace()
		if s.hasPrefix(close) {
			break
		}
		t, ok := s.nextToken()
		if !ok {
			break
		}
		inner = append(inner, t)
	}
	closeLo := s.pos
	if s.hasPrefix(close) {
		s.pos += len(close)
	}
	closeTok := token.Token{Kind: token.OperatorTok, Text: close, Span: token.Span{File: s.file, Lo: closeLo, Hi: s.pos}}
	return token.Token{
		Kind: token.DelimGroupTok,
		Span: s.span(lo),
		Group: &token.DelimGroup{
			Delim:  kind,
			Open:   openTok,
			Close:  closeTok,
			Tokens: inner,
		},
	}
}

// isBareKeywordHere reports whether the scanner is positioned at kw as a
// standalone identifier, not as a prefix of a longer one.
func (s *scanner) isBareKeywordHere(kw string) bool {
	if !s.hasPrefix(kw) {
		return false
	}
	after := s.pos + len(kw)
	return after >= len(s.text) || !isIdentCont(rune(s.text[after]))
}

// lexModuleGroup assembles the synthetic module...endmodule DelimGroup
// named in spec.md §3/§9: the module keyword and its matching endmodule
// act as the open/close pair, with everything between as the
// pre-balanced interior. A nested module declaration is itself collapsed
// into its own group by the recursive nextToken call below before this
// loop ever sees it, so depth tracking falls out for free: this loop
// only needs to stop at the first bare `endmodule` token it receives.
func (s *scanner) lexModuleGroup() token.Token {
	lo := s.pos
	s.pos += len("module")
	openTok := token.Token{Kind: token.KeywordTok, Keyword: token.KwModule, Text: "module", Span: s.span(lo)}

	var inner []token.Token
	var closeTok token.Token
	for {
		t, ok := s.nextToken()
		if !ok {
			closeTok = token.Token{Kind: token.Unknown, Span: s.span(s.pos)}
			break
		}
		if t.Kind == token.KeywordTok && t.Keyword == token.KwEndmodule {
			closeTok = t
			break
		}
		inner = append(inner, t)
	}
	return token.Token{
		Kind: token.DelimGroupTok,
		Span: s.span(lo),
		Group: &token.DelimGroup{
			Delim:  token.Module,
			Open:   openTok,
			Close:  closeTok,
			Tokens: inner,
		},
	}
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' || r == '$' }
func isIdentCont(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' }
func isDigit(b byte) bool      { return b >= '0' && b <= '9' }

func (s *scanner) lexIdentOrKeyword() token.Token {
	lo := s.pos
	for !s.eof() {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if s.pos > lo && !isIdentCont(r) {
			break
		}
		if s.pos == lo && !isIdentStart(r) {
			break
		}
		s.pos += size
	}
	text := s.text[lo:s.pos]
	if kw, ok := token.Keywords[text]; ok {
		return token.Token{Kind: token.KeywordTok, Keyword: kw, Text: text, Span: s.span(lo)}
	}
	return token.Token{Kind: token.Ident, Text: text, Span: s.span(lo)}
}

func (s *scanner) lexNumber() token.Token {
	lo := s.pos
	for !s.eof() && (isDigit(s.peekByte()) || s.peekByte() == '_') {
		s.pos++
	}
	kind := token.IntLiteral
	if !s.eof() && s.peekByte() == '.' {
		kind = token.RealLiteral
		s.pos++
		for !s.eof() && isDigit(s.peekByte()) {
			s.pos++
		}
	}
	if !s.eof() && (s.peekByte() == 'e' || s.peekByte() == 'E') {
		kind = token.RealLiteral
		s.pos++
		if !s.eof() && (s.peekByte() == '+' || s.peekByte() == '-') {
			s.pos++
		}
		for !s.eof() && isDigit(s.peekByte()) {
			s.pos++
		}
	}
	return token.Token{Kind: kind, Text: s.text[lo:s.pos], Span: s.span(lo)}
}

func (s *scanner) lexString() token.Token {
	lo := s.pos
	s.pos++
	for !s.eof() && s.peekByte() != '"' {
		if s.peekByte() == '\\' {
			s.pos++
		}
		s.pos++
	}
	if !s.eof() {
		s.pos++
	}
	return token.Token{Kind: token.StringLiteral, Text: s.text[lo:s.pos], Span: s.span(lo)}
}

// lexDirective reads a backtick-prefixed directive or macro-invocation
// name into a single Directive token; the preprocessor decides which
// directive names are recognized and which are macro invocations.
func (s *scanner) lexDirective() token.Token {
	lo := s.pos
	s.pos++ // backtick
	for !s.eof() && isIdentCont(rune(s.peekByte())) {
		s.pos++
	}
	return token.Token{Kind: token.Directive, Text: s.text[lo+1 : s.pos], Span: s.span(lo)}
}

func (s *scanner) lexOperator() token.Token {
	lo := s.pos
	for _, op := range token.Operators {
		text := op.String()
		if s.hasPrefix(text) {
			s.pos += len(text)
			return token.Token{Kind: token.OperatorTok, Operator: op, Text: text, Span: s.span(lo)}
		}
	}
	// Unrecognized byte: consume it as an Unknown placeholder so the
	// scanner always makes progress.
	_, size := utf8.DecodeRuneInString(s.text[s.pos:])
	if size == 0 {
		size = 1
	}
	s.pos += size
	return token.Token{Kind: token.Unknown, Text: s.text[lo:s.pos], Span: s.span(lo)}
}
