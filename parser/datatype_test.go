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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/diag"
	"github.com/lowRISC/sv-elaborator/token"
)

func bracketGroup(inner ...token.Token) token.Token {
	g := &token.DelimGroup{
		Delim:  token.Bracket,
		Open:   token.Token{Kind: token.OperatorTok, Text: "[", Span: token.Span{Lo: 0, Hi: 1}},
		Close:  token.Token{Kind: token.OperatorTok, Text: "]", Span: token.Span{Lo: 10, Hi: 11}},
		Tokens: inner,
	}
	return token.Token{Kind: token.DelimGroupTok, Group: g, Span: token.Span{Lo: 0, Hi: 11}}
}

func intLit(text string, lo int) token.Token {
	return token.Token{Kind: token.IntLiteral, Text: text, Span: token.Span{Lo: lo, Hi: lo + len(text)}}
}

func newTestParser(toks []token.Token) *Parser {
	return newParser(diag.NewBridge(&diag.CollectingMgr{}, nil), toks, token.Span{Lo: 1000, Hi: 1000})
}

// parsePackDims accepts a bare value dimension without complaint.
func TestParsePackDimsAcceptsValueDim(t *testing.T) {
	p := newTestParser([]token.Token{bracketGroup(intLit("8", 1))})
	dims, err := p.parsePackDims()
	require.NoError(t, err)
	require.Len(t, dims, 1)
	_, ok := dims[0].(*ast.ValueDim)
	assert.True(t, ok)
	assert.Equal(t, 0, p.bridge.Counts[diag.Error])
}

// parsePackDims accepts a constant range dimension without complaint.
func TestParsePackDimsAcceptsRangeDim(t *testing.T) {
	colon := token.Token{Kind: token.OperatorTok, Operator: token.OpColon, Text: ":", Span: token.Span{Lo: 3, Hi: 4}}
	p := newTestParser([]token.Token{bracketGroup(intLit("7", 1), colon, intLit("0", 5))})
	dims, err := p.parsePackDims()
	require.NoError(t, err)
	require.Len(t, dims, 1)
	_, ok := dims[0].(*ast.RangeDim)
	assert.True(t, ok)
	assert.Equal(t, 0, p.bridge.Counts[diag.Error])
}

// A queue dimension `[$]` is not a legal packed dimension: parsePackDims
// reports it as a non-fatal Error but still keeps it in the result so
// downstream code sees what was actually written.
func TestParsePackDimsRejectsQueueDimAsNonFatalError(t *testing.T) {
	dollar := token.Token{Kind: token.OperatorTok, Operator: token.OpDollar, Text: "$", Span: token.Span{Lo: 1, Hi: 2}}
	p := newTestParser([]token.Token{bracketGroup(dollar)})
	dims, err := p.parsePackDims()
	require.NoError(t, err)
	require.Len(t, dims, 1)
	_, ok := dims[0].(*ast.QueueDim)
	assert.True(t, ok)
	assert.Equal(t, 1, p.bridge.Counts[diag.Error])
}

// A bare `[]` (unsized dimension) is likewise rejected from the packed
// grammar, non-fatally.
func TestParsePackDimsRejectsUnsizedDimAsNonFatalError(t *testing.T) {
	p := newTestParser([]token.Token{bracketGroup()})
	dims, err := p.parsePackDims()
	require.NoError(t, err)
	require.Len(t, dims, 1)
	_, ok := dims[0].(*ast.UnsizedDim)
	assert.True(t, ok)
	assert.Equal(t, 1, p.bridge.Counts[diag.Error])
}

// parseUnpackedDims, by contrast, accepts every Dim variant including a
// queue dimension.
func TestParseUnpackedDimsAcceptsQueueDim(t *testing.T) {
	dollar := token.Token{Kind: token.OperatorTok, Operator: token.OpDollar, Text: "$", Span: token.Span{Lo: 1, Hi: 2}}
	p := newTestParser([]token.Token{bracketGroup(dollar)})
	dims, err := p.parseUnpackedDims()
	require.NoError(t, err)
	require.Len(t, dims, 1)
	_, ok := dims[0].(*ast.QueueDim)
	assert.True(t, ok)
	assert.Equal(t, 0, p.bridge.Counts[diag.Error])
}

// finishNested enforces the nested-stream invariant (§4.1): a group whose
// interior a recursive parse did not fully consume reports a non-fatal
// Error naming the leftover token, rather than silently dropping it.
func TestFinishNestedReportsLeftoverTokens(t *testing.T) {
	group := &token.DelimGroup{
		Delim: token.Paren,
		Open:  token.Token{Kind: token.OperatorTok, Text: "(", Span: token.Span{Lo: 0, Hi: 1}},
		Close: token.Token{Kind: token.OperatorTok, Text: ")", Span: token.Span{Lo: 9, Hi: 10}},
		Tokens: []token.Token{
			intLit("1", 1),
			{Kind: token.OperatorTok, Operator: token.OpComma, Text: ",", Span: token.Span{Lo: 3, Hi: 4}},
			intLit("2", 5),
		},
	}
	outer := newTestParser(nil)
	inner := outer.nested(group)

	// Only consume the first token, leaving "," and "2" unconsumed.
	inner.next()

	outer.finishNested(inner, group)
	assert.Equal(t, 1, outer.bridge.Counts[diag.Error])
}

// finishNested is silent when the nested parse consumed every token.
func TestFinishNestedIsSilentWhenFullyConsumed(t *testing.T) {
	group := &token.DelimGroup{
		Delim:  token.Paren,
		Open:   token.Token{Kind: token.OperatorTok, Text: "(", Span: token.Span{Lo: 0, Hi: 1}},
		Close:  token.Token{Kind: token.OperatorTok, Text: ")", Span: token.Span{Lo: 9, Hi: 10}},
		Tokens: []token.Token{intLit("1", 1)},
	}
	outer := newTestParser(nil)
	inner := outer.nested(group)
	inner.next()

	outer.finishNested(inner, group)
	assert.Equal(t, 0, outer.bridge.Counts[diag.Error])
}
