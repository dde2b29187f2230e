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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowRISC/sv-elaborator/diag"
	"github.com/lowRISC/sv-elaborator/token"
)

func lexText(t *testing.T, text string) []token.Token {
	t.Helper()
	toks, err := New().Lex(&diag.Source{File: 0, Name: "t.sv", Text: text})
	require.NoError(t, err)
	return toks
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	toks := lexText(t, "foo module bar")
	require.Len(t, toks, 2)
	// "module" greedily opens a synthetic module...endmodule group that
	// swallows "bar" as its (unterminated) interior.
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Text)
	assert.Equal(t, token.DelimGroupTok, toks[1].Kind)
	assert.Equal(t, token.Module, toks[1].Group.Delim)
}

func TestLexPlainKeyword(t *testing.T) {
	toks := lexText(t, "parameter")
	require.Len(t, toks, 1)
	assert.Equal(t, token.KeywordTok, toks[0].Kind)
	assert.Equal(t, token.KwParameter, toks[0].Keyword)
}

func TestLexModuleGroupBalancesToEndmodule(t *testing.T) {
	toks := lexText(t, "module m; assign x = 1; endmodule")
	require.Len(t, toks, 1)
	g := toks[0].Group
	require.NotNil(t, g)
	assert.Equal(t, token.Module, g.Delim)
	assert.Equal(t, "module", g.Open.Text)
	assert.Equal(t, token.KwEndmodule, g.Close.Keyword)
	// Interior tokens: m ; assign x = 1 ;
	var texts []string
	for _, it := range g.Tokens {
		texts = append(texts, it.String())
	}
	assert.Equal(t, []string{"m", ";", "assign", "x", "=", "1", ";"}, texts)
}

func TestLexNestedModuleGroupsDoNotConfuseEndmoduleMatching(t *testing.T) {
	toks := lexText(t, "module outer; module inner; endmodule endmodule")
	require.Len(t, toks, 1)
	outer := toks[0].Group
	require.NotNil(t, outer)
	// "outer" ident, ";", then the whole inner group collapsed into one token
	require.Len(t, outer.Tokens, 3)
	assert.Equal(t, token.DelimGroupTok, outer.Tokens[2].Kind)
	assert.Equal(t, token.Module, outer.Tokens[2].Group.Delim)
}

func TestLexDelimitedGroups(t *testing.T) {
	toks := lexText(t, "(a, b[7:0])")
	require.Len(t, toks, 1)
	paren := toks[0].Group
	require.NotNil(t, paren)
	assert.Equal(t, token.Paren, paren.Delim)
	// a , b [7:0]
	require.Len(t, paren.Tokens, 4)
	assert.Equal(t, token.DelimGroupTok, paren.Tokens[3].Kind)
	assert.Equal(t, token.Bracket, paren.Tokens[3].Group.Delim)
}

func TestLexTickBraceAndAttrGroups(t *testing.T) {
	toks := lexText(t, "'{1, 2} (* foo *)")
	require.Len(t, toks, 2)
	assert.Equal(t, token.TickBrace, toks[0].Group.Delim)
	assert.Equal(t, token.Attr, toks[1].Group.Delim)
}

func TestLexNumbersAndStrings(t *testing.T) {
	toks := lexText(t, `42 3.14 1e10 "hi \"there\""`)
	require.Len(t, toks, 4)
	assert.Equal(t, token.IntLiteral, toks[0].Kind)
	assert.Equal(t, token.RealLiteral, toks[1].Kind)
	assert.Equal(t, token.RealLiteral, toks[2].Kind)
	assert.Equal(t, token.StringLiteral, toks[3].Kind)
	assert.Equal(t, `"hi \"there\""`, toks[3].Text)
}

func TestLexOperatorsMaximalMunch(t *testing.T) {
	toks := lexText(t, ":: +: -: && || == != <= >=")
	want := []token.Operator{
		token.OpScopeSep, token.OpPlusColon, token.OpMinusColon,
		token.OpLAnd, token.OpLOr, token.OpEq, token.OpNeq, token.OpLe, token.OpGe,
	}
	require.Len(t, toks, len(want))
	for i, op := range want {
		assert.Equal(t, token.OperatorTok, toks[i].Kind, "token %d", i)
		assert.Equal(t, op, toks[i].Operator, "token %d", i)
	}
}

func TestLexDirectiveToken(t *testing.T) {
	toks := lexText(t, "`define WIDTH")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Directive, toks[0].Kind)
	assert.Equal(t, "define", toks[0].Text)
	assert.Equal(t, token.Ident, toks[1].Kind)
}

func TestLexNewlineAndCommentsPreserved(t *testing.T) {
	toks := lexText(t, "a // comment\nb /* block */ c")
	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Ident, token.LineComment, token.NewLine,
		token.Ident, token.LineComment, token.Ident,
	}, kinds)
}

func TestLexSpansAreByteRanges(t *testing.T) {
	toks := lexText(t, "  foo")
	require.Len(t, toks, 1)
	assert.Equal(t, 2, toks[0].Span.Lo)
	assert.Equal(t, 5, toks[0].Span.Hi)
}
