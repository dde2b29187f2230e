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

// ContinuousAssign is an `assign lhs = rhs, ...;` item.
type ContinuousAssign struct {
	spanned
	Assignments []Expr // each is an AssignExpr
}

func NewContinuousAssign(sp token.Span, assigns []Expr) *ContinuousAssign {
	return &ContinuousAssign{spanned: newSpanned(sp), Assignments: assigns}
}
func (*ContinuousAssign) itemNode() {}

// Arg is one actual argument of a module/interface instantiation's
// parameter or port connection list.
type Arg interface {
	Node
	argNode()
}

// OrderedArg is a positional actual argument; Expr is nil for an empty
// `()` placeholder (leaving that position at its default).
type OrderedArg struct {
	spanned
	Expr Expr
}

func NewOrderedArg(sp token.Span, expr Expr) *OrderedArg {
	return &OrderedArg{spanned: newSpanned(sp), Expr: expr}
}
func (*OrderedArg) argNode() {}

// NamedArg is a `.name(expr)` actual argument; Expr is nil for `.name()`,
// which connects name to an identically-named signal/parameter in scope.
type NamedArg struct {
	spanned
	Name Ident
	Expr Expr
}

func NewNamedArg(sp token.Span, name Ident, expr Expr) *NamedArg {
	return &NamedArg{spanned: newSpanned(sp), Name: name, Expr: expr}
}
func (*NamedArg) argNode() {}

// NamedWildcardArg is `.*`, connecting every remaining port by name.
type NamedWildcardArg struct{ spanned }

func NewNamedWildcardArg(sp token.Span) *NamedWildcardArg {
	return &NamedWildcardArg{spanned: newSpanned(sp)}
}
func (*NamedWildcardArg) argNode() {}

// HierInst is one instance of a hierarchical instantiation: an instance
// name plus its port connections (and, for arrayed instances, a range).
type HierInst struct {
	spanned
	Name  Ident
	Range Dim // nil for a scalar (non-arrayed) instance
	Ports []Arg
}

func NewHierInst(sp token.Span, name Ident, rng Dim, ports []Arg) HierInst {
	return HierInst{spanned: newSpanned(sp), Name: name, Range: rng, Ports: ports}
}

// HierInstantiation is `module_name #(params) inst1(...), inst2(...);`.
type HierInstantiation struct {
	spanned
	Name      Ident
	Params    []Arg
	Instances []HierInst
}

func NewHierInstantiation(sp token.Span, name Ident, params []Arg, instances []HierInst) *HierInstantiation {
	return &HierInstantiation{spanned: newSpanned(sp), Name: name, Params: params, Instances: instances}
}
func (*HierInstantiation) itemNode() {}

// GenBlock is a `begin [: name] ... end` generate block, or the implicit
// single-item block a generate construct has when no begin/end is
// written.
type GenBlock struct {
	spanned
	Name  *Ident // nil if unlabeled
	Items []Item
}

func NewGenBlock(sp token.Span, name *Ident, items []Item) *GenBlock {
	return &GenBlock{spanned: newSpanned(sp), Name: name, Items: items}
}
func (*GenBlock) itemNode() {}

// IfGen is `if (cond) block [else elseBlock]`, in a generate context.
type IfGen struct {
	spanned
	Cond      Expr
	Block     *GenBlock
	ElseBlock *GenBlock // nil if there is no else clause
}

func NewIfGen(sp token.Span, cond Expr, block, elseBlock *GenBlock) *IfGen {
	return &IfGen{spanned: newSpanned(sp), Cond: cond, Block: block, ElseBlock: elseBlock}
}
func (*IfGen) itemNode() {}

// LoopGen is `for (genvar ...; cond; step) block`, in a generate context.
type LoopGen struct {
	spanned
	GenvarName Ident
	Init       Expr
	Cond       Expr
	Step       Expr
	Block      *GenBlock
}

func NewLoopGen(sp token.Span, genvar Ident, init, cond, step Expr, block *GenBlock) *LoopGen {
	return &LoopGen{spanned: newSpanned(sp), GenvarName: genvar, Init: init, Cond: cond, Step: step, Block: block}
}
func (*LoopGen) itemNode() {}

// SysTfCallItem is a `$system_task(args...);` used as a standalone item
// rather than an expression operand.
type SysTfCallItem struct {
	spanned
	Call *SysTfCallExpr
}

func NewSysTfCallItem(sp token.Span, call *SysTfCallExpr) *SysTfCallItem {
	return &SysTfCallItem{spanned: newSpanned(sp), Call: call}
}
func (*SysTfCallItem) itemNode() {}
