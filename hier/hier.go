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

// Package hier defines the post-elaboration hierarchical intermediate
// representation: the tree typeparam.Eliminate rewrites and downstream
// passes (out of scope here) consume. The elaborator that turns an
// ast.Item tree into this IR is itself an external collaborator (§1); this
// package only defines the shape the rewrite pass needs.
package hier

import (
	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/token"
)

// Item is one entry of a Scope's Items list.
type Item interface {
	hierItemNode()
}

// Scope owns an ordered sequence of Items, e.g. a DesignInstantiation's
// body or a generate block's body.
type Scope struct {
	Items []Item
}

// ParamItem is a `parameter`/`localparam` instance, either an ordinary
// value parameter or — when IsTypeParam is set — a parameter whose
// declared sort is the meta-type `type`, which the rewrite pass turns
// into a TypeItem.
type ParamItem struct {
	Name Ident
	Span token.Span

	IsTypeParam bool
	// TypeValue is the initializer's embedded type value; populated by
	// the elaborator and required to be non-nil when IsTypeParam is set.
	TypeValue ast.DataType
	// ValueInit is the ordinary initializer expression; populated when
	// !IsTypeParam.
	ValueInit ast.Expr
}

func (*ParamItem) hierItemNode() {}

// Ident is a plain elaborated name: no span-bearing wrapper is needed
// here since the owning Item already carries its own Span.
type Ident = string

// TypedefDecl is a local type alias, either written directly in source or
// synthesized by the rewrite pass from an eliminated type parameter.
type TypedefDecl struct {
	Name Ident
	Span token.Span
	Type ast.DataType
}

// TypeItem wraps a TypedefDecl as a Scope entry.
type TypeItem struct {
	Decl *TypedefDecl
}

func (*TypeItem) hierItemNode() {}

// DataPortItem is an elaborated data port.
type DataPortItem struct {
	Name     Ident
	Span     token.Span
	Dir      ast.PortDir
	DataType ast.DataType
}

func (*DataPortItem) hierItemNode() {}

// InterfacePortItem is an elaborated interface port.
type InterfacePortItem struct {
	Name      Ident
	Span      token.Span
	Interface Ident
	Modport   Ident
}

func (*InterfacePortItem) hierItemNode() {}

// GenBlockItem is a named or conditionally-instantiated generate block
// scope.
type GenBlockItem struct {
	Name  Ident
	Span  token.Span
	Scope *Scope
}

func (*GenBlockItem) hierItemNode() {}

// LoopGenBlockItem owns the keyed collection of scopes a generate-for
// construct instantiated, one per loop iteration.
type LoopGenBlockItem struct {
	Name      Ident
	Span      token.Span
	Instances map[string]*Scope
}

func (*LoopGenBlockItem) hierItemNode() {}

// OtherItem is an opaque passthrough for any elaborated construct the
// rewrite pass does not itself interpret (continuous assigns, nested
// instantiations of other designs, system-task calls, ...). Downstream
// passes interpret Payload; the rewrite pass only needs to relocate it.
type OtherItem struct {
	Span    token.Span
	Kind    string
	Payload interface{}
}

func (*OtherItem) hierItemNode() {}

// DesignInstantiation is one instance of a Design: the scope the rewrite
// pass reorders.
type DesignInstantiation struct {
	Name  Ident
	Span  token.Span
	Scope *Scope
}

// DesignDecl is a module's elaborated form: its keyed instance map. The
// rewrite pass requires unique access to each instance it visits (§4.4,
// §5) — in Go terms, that no other goroutine holds a reference to an
// instance's Scope while Eliminate runs over it.
type DesignDecl struct {
	Name      Ident
	Span      token.Span
	Instances map[Ident]*DesignInstantiation
}

// DesignItem wraps a DesignDecl as a top-level Item.
type DesignItem struct {
	Decl *DesignDecl
}

func (*DesignItem) hierItemNode() {}

// Source is the top-level hierarchical IR the elaborator hands to
// typeparam.Eliminate and to whatever downstream pass consumes its
// result.
type Source struct {
	Items []Item
}
