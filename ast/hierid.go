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

// RootId is the `$root` outermost hierarchical-name component.
type RootId struct{ spanned }

func NewRootId(sp token.Span) *RootId { return &RootId{spanned: newSpanned(sp)} }
func (*RootId) hierIdNode()            {}

// ThisId is the `this` outermost hierarchical-name component.
type ThisId struct{ spanned }

func NewThisId(sp token.Span) *ThisId { return &ThisId{spanned: newSpanned(sp)} }
func (*ThisId) hierIdNode()            {}

// SuperId is the `super` hierarchical-name component; only valid
// immediately after `this` or as the outermost component.
type SuperId struct{ spanned }

func NewSuperId(sp token.Span) *SuperId { return &SuperId{spanned: newSpanned(sp)} }
func (*SuperId) hierIdNode()             {}

// NameId is a plain dotted-name component, chaining onto an optional
// parent.
type NameId struct {
	spanned
	Parent HierId // nil if this is the outermost component
	Name   Ident
}

func NewNameId(sp token.Span, parent HierId, name Ident) *NameId {
	return &NameId{spanned: newSpanned(sp), Parent: parent, Name: name}
}
func (*NameId) hierIdNode() {}
