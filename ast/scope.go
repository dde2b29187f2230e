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

// LocalScope is the `local::` outermost scope prefix.
type LocalScope struct{ spanned }

func NewLocalScope(sp token.Span) *LocalScope { return &LocalScope{spanned: newSpanned(sp)} }
func (*LocalScope) scopeNode()                 {}

// UnitScope is the `$unit::` outermost scope prefix.
//
// Kept as a variant distinct from LocalScope even though $unit and local
// both only ever appear as the outermost scope: they name different
// things (the compilation unit vs. the nearest enclosing local scope) and
// collapsing them loses that distinction for any later pass that inspects
// the scope chain.
type UnitScope struct{ spanned }

func NewUnitScope(sp token.Span) *UnitScope { return &UnitScope{spanned: newSpanned(sp)} }
func (*UnitScope) scopeNode()                {}

// NamedScope is a named (optionally parameterized, optionally nested)
// scope, e.g. `pkg::` or `cls#(8)::inner::`.
type NamedScope struct {
	spanned
	Parent Scope // nil if this is the outermost named scope
	Name   Ident
}

func NewNamedScope(sp token.Span, parent Scope, name Ident) *NamedScope {
	return &NamedScope{spanned: newSpanned(sp), Parent: parent, Name: name}
}
func (*NamedScope) scopeNode() {}
