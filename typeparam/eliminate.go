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

// Package typeparam implements the post-elaboration rewrite pass that
// turns type-valued parameters into local typedefs and reorders each
// instantiation's scope into a fixed, deterministic layout.
package typeparam

import (
	"fmt"

	"github.com/lowRISC/sv-elaborator/hier"
)

// Eliminate walks every Design in src and rewrites each of its
// instantiations in place. It requires unique access to every IR node it
// visits: src must not be shared with another goroutine for the duration
// of the call.
func Eliminate(src *hier.Source) error {
	for _, it := range src.Items {
		if err := visitItem(it); err != nil {
			return err
		}
	}
	return nil
}

func visitItem(it hier.Item) error {
	switch v := it.(type) {
	case *hier.DesignItem:
		for _, inst := range v.Decl.Instances {
			if err := TypeParamElim(inst); err != nil {
				return err
			}
		}
	case *hier.GenBlockItem:
		return visitScope(v.Scope)
	case *hier.LoopGenBlockItem:
		for _, scope := range v.Instances {
			if err := visitScope(scope); err != nil {
				return err
			}
		}
	}
	return nil
}

func visitScope(s *hier.Scope) error {
	for _, it := range s.Items {
		if err := visitItem(it); err != nil {
			return err
		}
	}
	return nil
}

// TypeParamElim rewrites a single instantiation's scope, partitioning its
// items into params, ports, type_params (synthesized from eliminated type
// parameters, or already in typedef form from a prior run), and others —
// recursing into each "other" item first — and reassembling them in the
// fixed order params ++ ports ++ type_params ++ others. Relative order
// within each bucket is preserved from the input.
//
// A type parameter whose initializer carries no type value is an
// invariant violation: the elaborator must have populated it.
func TypeParamElim(inst *hier.DesignInstantiation) error {
	var params, typeParams, ports, others []hier.Item

	for _, it := range inst.Scope.Items {
		switch v := it.(type) {
		case *hier.ParamItem:
			if !v.IsTypeParam {
				params = append(params, v)
				continue
			}
			if v.TypeValue == nil {
				return fmt.Errorf("type parameter %q has no type-valued initializer", v.Name)
			}
			typeParams = append(typeParams, &hier.TypeItem{
				Decl: &hier.TypedefDecl{Name: v.Name, Span: v.Span, Type: v.TypeValue},
			})
		case *hier.TypeItem:
			// Already in its final form, e.g. from a prior run of this
			// pass: keep it in the type_params bucket so the pass stays
			// idempotent.
			typeParams = append(typeParams, v)
		case *hier.DataPortItem:
			ports = append(ports, v)
		case *hier.InterfacePortItem:
			ports = append(ports, v)
		default:
			if err := visitItem(it); err != nil {
				return err
			}
			others = append(others, it)
		}
	}

	merged := make([]hier.Item, 0, len(params)+len(ports)+len(typeParams)+len(others))
	merged = append(merged, params...)
	merged = append(merged, ports...)
	merged = append(merged, typeParams...)
	merged = append(merged, others...)
	inst.Scope.Items = merged
	return nil
}
