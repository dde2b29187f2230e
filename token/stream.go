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

package token

// Stream is a buffered peek/push-back wrapper around a flat slice of
// Tokens. It underlies both the preprocessed token stream the parser reads
// from, and the per-delimited-group streams the parser recurses into.
//
// Reading past the end of the underlying slice never panics: Stream
// synthesizes Eof tokens for as long as it is asked, which is what lets
// recursive-descent code peek a few tokens ahead near the end of a group
// without special-casing the boundary.
type Stream struct {
	toks   []Token
	pos    int
	pushed []Token // LIFO; consumed before toks[pos:]
	eofAt  Span
}

// NewStream wraps toks. eofAt is the span reported by synthesized Eof
// tokens once the stream is exhausted; pass the span of the last token (or
// the group's closing delimiter) so diagnostics still point somewhere
// sensible.
func NewStream(toks []Token, eofAt Span) *Stream {
	return &Stream{toks: toks, eofAt: eofAt}
}

// at returns the token n positions ahead of the read cursor without
// consuming anything, accounting for any pushed-back tokens.
func (s *Stream) at(n int) Token {
	if n < len(s.pushed) {
		return s.pushed[len(s.pushed)-1-n]
	}
	n -= len(s.pushed)
	idx := s.pos + n
	if idx >= len(s.toks) {
		return Eof(s.eofAt)
	}
	return s.toks[idx]
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() Token { return s.at(0) }

// PeekN returns the token at offset n (0 is the same as Peek).
func (s *Stream) PeekN(n int) Token { return s.at(n) }

// Next consumes and returns the next token.
func (s *Stream) Next() Token {
	t := s.at(0)
	if len(s.pushed) > 0 {
		s.pushed = s.pushed[:len(s.pushed)-1]
	} else if s.pos < len(s.toks) {
		s.pos++
	}
	return t
}

// Pushback returns a previously-consumed token to the head of the stream.
func (s *Stream) Pushback(t Token) {
	s.pushed = append(s.pushed, t)
}

// IsEOF reports whether the next token is the synthesized end-of-stream
// token, i.e. nothing real remains to be read.
func (s *Stream) IsEOF() bool { return s.Peek().Kind == EOF }

// Remaining reports how many real (non-synthesized) tokens are left. It is
// used to enforce the nested-stream invariant: a recursive parse of a
// delimited group must consume everything the group contains.
func (s *Stream) Remaining() int {
	n := len(s.toks) - s.pos
	if n < 0 {
		n = 0
	}
	return n + len(s.pushed)
}
