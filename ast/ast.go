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

// Package ast defines the typed syntax tree the parser produces. Every node
// carries the Span of source text it was parsed from, including nodes
// synthesized during error recovery.
package ast

import "github.com/lowRISC/sv-elaborator/token"

// Ident is a plain identifier: a name with the span it was spelled at. A
// placeholder identifier synthesized during error recovery has an empty
// Val but a real, non-zero Span.
type Ident = token.Spanned[string]

// Node is implemented by every AST node.
type Node interface {
	Span() token.Span
}

// Item is a top-level or nested declaration/statement: module declarations,
// continuous assigns, hierarchical instantiations, and generate constructs.
type Item interface {
	Node
	itemNode()
}

// Expr is a SystemVerilog expression.
type Expr interface {
	Node
	exprNode()
}

// DataType is a data_type_or_implicit in the SystemVerilog grammar.
type DataType interface {
	Node
	dataTypeNode()
}

// PortDecl is one element of an ANSI port list.
type PortDecl interface {
	Node
	portDeclNode()
}

// Dim is a single dimension of a declaration (packed, unpacked, or
// otherwise), e.g. the `[7:0]` in `logic [7:0] x`.
type Dim interface {
	Node
	dimNode()
}

// Scope is a hierarchical-name scope prefix: `local::`, `$unit::`, or a
// named (possibly parameterized) scope.
type Scope interface {
	Node
	scopeNode()
}

// HierId is a (possibly dotted) hierarchical identifier, rooted optionally
// at $root, this, or super.
type HierId interface {
	Node
	hierIdNode()
}

// spanned is embedded by every concrete node to satisfy Node.
type spanned struct{ span token.Span }

func (s spanned) Span() token.Span { return s.span }

func newSpanned(sp token.Span) spanned { return spanned{span: sp} }
