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

// ValueDim is a single-expression dimension, e.g. the `[8]` in an unpacked
// array declaration (an element count, not a bit range).
type ValueDim struct {
	spanned
	Value Expr
}

func NewValueDim(sp token.Span, value Expr) *ValueDim { return &ValueDim{spanned: newSpanned(sp), Value: value} }
func (*ValueDim) dimNode()                             {}

// RangeDim is a `[msb:lsb]` dimension.
type RangeDim struct {
	spanned
	Msb Expr
	Lsb Expr
}

func NewRangeDim(sp token.Span, msb, lsb Expr) *RangeDim {
	return &RangeDim{spanned: newSpanned(sp), Msb: msb, Lsb: lsb}
}
func (*RangeDim) dimNode() {}

// PlusRangeDim is a `[base+:width]` indexed part-select dimension.
type PlusRangeDim struct {
	spanned
	Base  Expr
	Width Expr
}

func NewPlusRangeDim(sp token.Span, base, width Expr) *PlusRangeDim {
	return &PlusRangeDim{spanned: newSpanned(sp), Base: base, Width: width}
}
func (*PlusRangeDim) dimNode() {}

// MinusRangeDim is a `[base-:width]` indexed part-select dimension.
type MinusRangeDim struct {
	spanned
	Base  Expr
	Width Expr
}

func NewMinusRangeDim(sp token.Span, base, width Expr) *MinusRangeDim {
	return &MinusRangeDim{spanned: newSpanned(sp), Base: base, Width: width}
}
func (*MinusRangeDim) dimNode() {}

// UnsizedDim is a bare `[]`, an unsized dynamic-array dimension.
type UnsizedDim struct{ spanned }

func NewUnsizedDim(sp token.Span) *UnsizedDim { return &UnsizedDim{spanned: newSpanned(sp)} }
func (*UnsizedDim) dimNode()                   {}

// QueueDim is `[$]` or `[$:bound]`, a queue dimension with an optional
// bound.
type QueueDim struct {
	spanned
	Bound Expr // nil if unbounded
}

func NewQueueDim(sp token.Span, bound Expr) *QueueDim { return &QueueDim{spanned: newSpanned(sp), Bound: bound} }
func (*QueueDim) dimNode()                             {}

// AssocWildDim is `[*]`, an associative array indexed by its element's own
// type.
type AssocWildDim struct{ spanned }

func NewAssocWildDim(sp token.Span) *AssocWildDim { return &AssocWildDim{spanned: newSpanned(sp)} }
func (*AssocWildDim) dimNode()                     {}

// AssocDim is `[key_type]`, an associative array indexed by an explicit
// key type.
type AssocDim struct {
	spanned
	KeyType DataType
}

func NewAssocDim(sp token.Span, keyType DataType) *AssocDim {
	return &AssocDim{spanned: newSpanned(sp), KeyType: keyType}
}
func (*AssocDim) dimNode() {}
