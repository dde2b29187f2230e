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

// UnaryOp is a prefix unary operator.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryLNot
	UnaryNot
	UnaryAnd
	UnaryNand
	UnaryOr
	UnaryNor
	UnaryXor
	UnaryXnor
)

// BinaryOp is an infix binary operator.
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryLAnd
	BinaryLOr
	BinaryEq
	BinaryNeq
	BinaryLt
	BinaryLe
	BinaryGt
	BinaryGe
)

// IncDecOp distinguishes `++` from `--`.
type IncDecOp int

const (
	IncOp IncDecOp = iota
	DecOp
)

// LiteralExpr is a self-contained literal token: integer, real, time,
// string, unbased-unsized, or one of the built-in `null`/`'x`/`'z`-style
// keywords that stand alone as an expression.
type LiteralExpr struct {
	spanned
	Text string
	Kind token.Kind
}

func NewLiteralExpr(sp token.Span, text string, kind token.Kind) *LiteralExpr {
	return &LiteralExpr{spanned: newSpanned(sp), Text: text, Kind: kind}
}
func (*LiteralExpr) exprNode() {}

// HierNameExpr is a (possibly scoped) hierarchical name used as a
// standalone expression, before any postfix select/member/call is applied.
type HierNameExpr struct {
	spanned
	Scope Scope // nil if unscoped
	Name  HierId
}

func NewHierNameExpr(sp token.Span, scope Scope, name HierId) *HierNameExpr {
	return &HierNameExpr{spanned: newSpanned(sp), Scope: scope, Name: name}
}
func (*HierNameExpr) exprNode() {}

// SelectExpr is `base[dim]`, a bit-select or part-select.
type SelectExpr struct {
	spanned
	Base Expr
	Dim  Dim
}

func NewSelectExpr(sp token.Span, base Expr, dim Dim) *SelectExpr {
	return &SelectExpr{spanned: newSpanned(sp), Base: base, Dim: dim}
}
func (*SelectExpr) exprNode() {}

// MemberExpr is `base.name`.
type MemberExpr struct {
	spanned
	Base Expr
	Name Ident
}

func NewMemberExpr(sp token.Span, base Expr, name Ident) *MemberExpr {
	return &MemberExpr{spanned: newSpanned(sp), Base: base, Name: name}
}
func (*MemberExpr) exprNode() {}

// ConstCastExpr is `expr'` (a const_cast), kept separate from the sized/
// typed casts below because it carries no right-hand type or size operand.
type ConstCastExpr struct {
	spanned
	Operand Expr
}

func NewConstCastExpr(sp token.Span, operand Expr) *ConstCastExpr {
	return &ConstCastExpr{spanned: newSpanned(sp), Operand: operand}
}
func (*ConstCastExpr) exprNode() {}

// SignCastExpr is `signed'(expr)` or `unsigned'(expr)`.
type SignCastExpr struct {
	spanned
	Signing Signing
	Operand Expr
}

func NewSignCastExpr(sp token.Span, signing Signing, operand Expr) *SignCastExpr {
	return &SignCastExpr{spanned: newSpanned(sp), Signing: signing, Operand: operand}
}
func (*SignCastExpr) exprNode() {}

// TypeCastExpr is `type'(expr)`, casting to a named data type.
type TypeCastExpr struct {
	spanned
	Target  DataType
	Operand Expr
}

func NewTypeCastExpr(sp token.Span, target DataType, operand Expr) *TypeCastExpr {
	return &TypeCastExpr{spanned: newSpanned(sp), Target: target, Operand: operand}
}
func (*TypeCastExpr) exprNode() {}

// UnaryExpr is a prefix unary operator applied to an operand.
type UnaryExpr struct {
	spanned
	Op      UnaryOp
	Operand Expr
}

func NewUnaryExpr(sp token.Span, op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{spanned: newSpanned(sp), Op: op, Operand: operand}
}
func (*UnaryExpr) exprNode() {}

// BinaryExpr is an infix binary operator applied to two operands.
type BinaryExpr struct {
	spanned
	Op    BinaryOp
	Lhs   Expr
	Rhs   Expr
}

func NewBinaryExpr(sp token.Span, op BinaryOp, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{spanned: newSpanned(sp), Op: op, Lhs: lhs, Rhs: rhs}
}
func (*BinaryExpr) exprNode() {}

// PostfixIncDecExpr is `lvalue++` or `lvalue--`.
type PostfixIncDecExpr struct {
	spanned
	Op     IncDecOp
	Target Expr
}

func NewPostfixIncDecExpr(sp token.Span, op IncDecOp, target Expr) *PostfixIncDecExpr {
	return &PostfixIncDecExpr{spanned: newSpanned(sp), Op: op, Target: target}
}
func (*PostfixIncDecExpr) exprNode() {}

// AssignExpr is `lvalue = expr` (and the compound-assignment forms),
// usable as an expression in contexts like for-loop steps.
type AssignExpr struct {
	spanned
	Lhs Expr
	Rhs Expr
}

func NewAssignExpr(sp token.Span, lhs, rhs Expr) *AssignExpr {
	return &AssignExpr{spanned: newSpanned(sp), Lhs: lhs, Rhs: rhs}
}
func (*AssignExpr) exprNode() {}

// ParenExpr is a parenthesized sub-expression, kept as its own node so
// that re-spans and later passes can tell explicit grouping from operator
// precedence.
type ParenExpr struct {
	spanned
	Inner Expr
}

func NewParenExpr(sp token.Span, inner Expr) *ParenExpr {
	return &ParenExpr{spanned: newSpanned(sp), Inner: inner}
}
func (*ParenExpr) exprNode() {}

// MinTypMaxExpr is `min:typ:max`.
type MinTypMaxExpr struct {
	spanned
	Min Expr
	Typ Expr
	Max Expr
}

func NewMinTypMaxExpr(sp token.Span, min, typ, max Expr) *MinTypMaxExpr {
	return &MinTypMaxExpr{spanned: newSpanned(sp), Min: min, Typ: typ, Max: max}
}
func (*MinTypMaxExpr) exprNode() {}

// TypeExpr wraps a DataType so it can stand in wherever the grammar allows
// either an expression or a type (e.g. the actual argument of a parameter,
// or the right-hand side of `parse_expr_or_type`).
type TypeExpr struct {
	spanned
	Type DataType
}

func NewTypeExpr(sp token.Span, ty DataType) *TypeExpr {
	return &TypeExpr{spanned: newSpanned(sp), Type: ty}
}
func (*TypeExpr) exprNode() {}

// SysTfCallExpr is a `$system_task(args...)` call.
type SysTfCallExpr struct {
	spanned
	Task Ident
	Args []Expr
}

func NewSysTfCallExpr(sp token.Span, task Ident, args []Expr) *SysTfCallExpr {
	return &SysTfCallExpr{spanned: newSpanned(sp), Task: task, Args: args}
}
func (*SysTfCallExpr) exprNode() {}
