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

package ast

import "github.com/lowRISC/sv-elaborator/token"

// Lifetime is the optional static/automatic qualifier on a module header.
type Lifetime int

const (
	LifetimeStatic Lifetime = iota
	LifetimeAutomatic
)

// ModuleDecl is a `module ... endmodule` declaration.
type ModuleDecl struct {
	spanned
	Lifetime      Lifetime
	Name          Ident
	ParamPortList []*ParamDecl // nil if the module has no `#( ... )`
	Ports         []PortDecl
	Items         []Item
}

func NewModuleDecl(sp token.Span, lifetime Lifetime, name Ident, params []*ParamDecl, ports []PortDecl, items []Item) *ModuleDecl {
	return &ModuleDecl{spanned: newSpanned(sp), Lifetime: lifetime, Name: name, ParamPortList: params, Ports: ports, Items: items}
}

func (*ModuleDecl) itemNode() {}

// SortTag distinguishes whether a ParamDecl's declared sort is an ordinary
// data type or the meta-type `type` (making it a type parameter).
type SortTag int

const (
	SortType SortTag = iota
	SortKind
)

// Sort is a ParamDecl's declared sort. A nil *Sort means no sort was
// restated for this element and it carries no explicit type at all (a
// plain, untyped value parameter).
type Sort struct {
	Tag      SortTag
	DataType DataType // non-nil iff Tag == SortType
}

// ParamDecl is one `parameter`/`localparam` declaration, covering a run of
// co-declared parameters that share a keyword and sort.
type ParamDecl struct {
	spanned
	Keyword     token.Keyword // KwParameter or KwLocalparam
	Sort        *Sort
	Assignments []DeclAssign
}

func NewParamDecl(sp token.Span, kw token.Keyword, sort *Sort, assigns []DeclAssign) *ParamDecl {
	return &ParamDecl{spanned: newSpanned(sp), Keyword: kw, Sort: sort, Assignments: assigns}
}

// DeclAssign is a single declared name with optional dimensions and
// initializer, shared by parameter and port/variable declarations.
type DeclAssign struct {
	spanned
	Name Ident
	Dims []Dim
	Init Expr // nil if unset
}

func NewDeclAssign(sp token.Span, name Ident, dims []Dim, init Expr) DeclAssign {
	return DeclAssign{spanned: newSpanned(sp), Name: name, Dims: dims, Init: init}
}

// PortDir is an ANSI port direction.
type PortDir int

const (
	DirNone PortDir = iota
	DirInput
	DirOutput
	DirInout
	DirRef
)

// NetPortType is the net-kind portion of a data port's header.
type NetPortType int

const (
	NetDefault NetPortType = iota // implied by direction / default nettype
	NetVariable                   // `var`, or implied for ref/typed-output ports
)

// DataPortDecl is an ANSI port with a direction, net kind, data type, and
// one or more co-declared names.
type DataPortDecl struct {
	spanned
	Dir         PortDir
	Net         NetPortType
	DataType    DataType
	Assignments []DeclAssign
}

func NewDataPortDecl(sp token.Span, dir PortDir, net NetPortType, ty DataType, assigns []DeclAssign) *DataPortDecl {
	return &DataPortDecl{spanned: newSpanned(sp), Dir: dir, Net: net, DataType: ty, Assignments: assigns}
}
func (*DataPortDecl) portDeclNode() {}

// InterfacePortDecl is an ANSI interface port, e.g. `foo_if.mp p`.
type InterfacePortDecl struct {
	spanned
	Interface   *Ident // nil for bare `interface` header
	Modport     *Ident // nil if no modport stated
	Assignments []DeclAssign
}

func NewInterfacePortDecl(sp token.Span, intf, modport *Ident, assigns []DeclAssign) *InterfacePortDecl {
	return &InterfacePortDecl{spanned: newSpanned(sp), Interface: intf, Modport: modport, Assignments: assigns}
}
func (*InterfacePortDecl) portDeclNode() {}

// ExplicitPortDecl is a `.name(expr)` port.
type ExplicitPortDecl struct {
	spanned
	Dir  PortDir
	Name Ident
	Expr Expr
}

func NewExplicitPortDecl(sp token.Span, dir PortDir, name Ident, expr Expr) *ExplicitPortDecl {
	return &ExplicitPortDecl{spanned: newSpanned(sp), Dir: dir, Name: name, Expr: expr}
}
func (*ExplicitPortDecl) portDeclNode() {}
