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

// Signing is the explicit or defaulted signedness of an integer data type.
type Signing int

const (
	Unsigned Signing = iota
	Signed
)

// IntVecKind distinguishes the three integer vector keywords, which all
// share the same (signing, packed dims) shape.
type IntVecKind int

const (
	IntVecBit IntVecKind = iota
	IntVecLogic
	IntVecReg
)

// IntAtomKind distinguishes the integer atom keywords (byte, shortint,
// int, longint, integer, time), which carry a signing but no dims.
type IntAtomKind int

const (
	IntAtomByte IntAtomKind = iota
	IntAtomShortint
	IntAtomInt
	IntAtomLongint
	IntAtomInteger
	IntAtomTime
)

// NonIntKind distinguishes the non-integer keywords (shortreal, real,
// realtime).
type NonIntKind int

const (
	NonIntShortreal NonIntKind = iota
	NonIntReal
	NonIntRealtime
)

// ImplicitType is an implicit_data_type: no base keyword at all, just an
// optional signing restatement and packed dimensions. It is the data type
// a declaration has when nothing more specific was written.
type ImplicitType struct {
	spanned
	Signing Signing
	Dims    []Dim
}

func NewImplicitType(sp token.Span, signing Signing, dims []Dim) *ImplicitType {
	return &ImplicitType{spanned: newSpanned(sp), Signing: signing, Dims: dims}
}
func (*ImplicitType) dataTypeNode() {}

// IntVecType is `bit`/`logic`/`reg` with signing and packed dimensions.
type IntVecType struct {
	spanned
	Kind    IntVecKind
	Signing Signing
	Dims    []Dim
}

func NewIntVecType(sp token.Span, kind IntVecKind, signing Signing, dims []Dim) *IntVecType {
	return &IntVecType{spanned: newSpanned(sp), Kind: kind, Signing: signing, Dims: dims}
}
func (*IntVecType) dataTypeNode() {}

// IntAtomType is a fixed-width integer atom type with signing but no
// dimensions.
type IntAtomType struct {
	spanned
	Kind    IntAtomKind
	Signing Signing
}

func NewIntAtomType(sp token.Span, kind IntAtomKind, signing Signing) *IntAtomType {
	return &IntAtomType{spanned: newSpanned(sp), Kind: kind, Signing: signing}
}
func (*IntAtomType) dataTypeNode() {}

// NonIntType is a shortreal/real/realtime type.
type NonIntType struct {
	spanned
	Kind NonIntKind
}

func NewNonIntType(sp token.Span, kind NonIntKind) *NonIntType {
	return &NonIntType{spanned: newSpanned(sp), Kind: kind}
}
func (*NonIntType) dataTypeNode() {}

// StringType is the built-in `string` type.
type StringType struct{ spanned }

func NewStringType(sp token.Span) *StringType { return &StringType{spanned: newSpanned(sp)} }
func (*StringType) dataTypeNode()              {}

// ChandleType is the built-in `chandle` type.
type ChandleType struct{ spanned }

func NewChandleType(sp token.Span) *ChandleType { return &ChandleType{spanned: newSpanned(sp)} }
func (*ChandleType) dataTypeNode()               {}

// EventType is the built-in `event` type.
type EventType struct{ spanned }

func NewEventType(sp token.Span) *EventType { return &EventType{spanned: newSpanned(sp)} }
func (*EventType) dataTypeNode()             {}

// VirtualInterfaceType is `virtual [interface] name`.
type VirtualInterfaceType struct {
	spanned
	Name Ident
}

func NewVirtualInterfaceType(sp token.Span, name Ident) *VirtualInterfaceType {
	return &VirtualInterfaceType{spanned: newSpanned(sp), Name: name}
}
func (*VirtualInterfaceType) dataTypeNode() {}

// HierNameType is a data type spelled as a (possibly scoped, possibly
// dotted) hierarchical name, e.g. a typedef name or a struct/union/enum/
// class/interface name used as a type, with optional packed dims.
type HierNameType struct {
	spanned
	Scope  Scope // nil if unscoped
	Name   HierId
	Dims   []Dim
}

func NewHierNameType(sp token.Span, scope Scope, name HierId, dims []Dim) *HierNameType {
	return &HierNameType{spanned: newSpanned(sp), Scope: scope, Name: name, Dims: dims}
}
func (*HierNameType) dataTypeNode() {}

// TypeRefType is `type(expr)`, deferring to the type of an expression.
type TypeRefType struct {
	spanned
	Expr Expr
}

func NewTypeRefType(sp token.Span, expr Expr) *TypeRefType {
	return &TypeRefType{spanned: newSpanned(sp), Expr: expr}
}
func (*TypeRefType) dataTypeNode() {}
