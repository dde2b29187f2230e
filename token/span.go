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

// Package token defines the lexical token vocabulary shared by the
// preprocessor and parser, along with the Span type used to track source
// locations end to end through the pipeline.
package token

import "fmt"

// File identifies the source file a Span's offsets are relative to. The
// elaborator never opens files itself; File is an opaque handle minted by
// whatever produced the token stream (typically the external lexer).
type File int

// Span is an ordered (Lo, Hi) byte position pair within a single File. It is
// the only location information that survives into the AST and hierarchical
// IR; everything downstream resolves a Span back to text through a SrcMgr.
type Span struct {
	File File
	Lo   int
	Hi   int
}

// Zero reports whether the span carries no location information at all.
func (s Span) Zero() bool { return s == Span{} }

// Join returns the smallest span that contains both s and other. Joining
// across different Files is a programmer error and panics, since it would
// silently produce a meaningless range.
func (s Span) Join(other Span) Span {
	if s.Zero() {
		return other
	}
	if other.Zero() {
		return s
	}
	if s.File != other.File {
		panic(fmt.Sprintf("token: cannot join spans from different files (%d, %d)", s.File, other.File))
	}
	lo, hi := s.Lo, s.Hi
	if other.Lo < lo {
		lo = other.Lo
	}
	if other.Hi > hi {
		hi = other.Hi
	}
	return Span{File: s.File, Lo: lo, Hi: hi}
}

// Collapsed returns a zero-width span at s's starting position, useful for
// placeholder nodes synthesized during error recovery.
func (s Span) Collapsed() Span { return Span{File: s.File, Lo: s.Lo, Hi: s.Lo} }

func (s Span) String() string { return fmt.Sprintf("%d:%d-%d", s.File, s.Lo, s.Hi) }

// Spanned wraps any value together with the span of source text it was
// parsed from.
type Spanned[T any] struct {
	Val  T
	Span Span
}

// NewSpanned constructs a Spanned value.
func NewSpanned[T any](val T, span Span) Spanned[T] {
	return Spanned[T]{Val: val, Span: span}
}
