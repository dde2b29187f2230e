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

package typeparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/hier"
	"github.com/lowRISC/sv-elaborator/token"
)

func namesOf(items []hier.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		switch v := it.(type) {
		case *hier.ParamItem:
			out[i] = v.Name
		case *hier.DataPortItem:
			out[i] = v.Name
		case *hier.InterfacePortItem:
			out[i] = v.Name
		case *hier.TypeItem:
			out[i] = v.Decl.Name
		case *hier.OtherItem:
			out[i] = v.Kind
		default:
			out[i] = "?"
		}
	}
	return out
}

// A scope mixing params, ports, a type parameter, and an opaque other item
// in declaration order is reordered to params ++ ports ++ type_params ++
// others, preserving relative order within each bucket.
func TestTypeParamElimReordersScope(t *testing.T) {
	logicTy := ast.NewImplicitType(token.Span{}, ast.Unsigned, nil)
	inst := &hier.DesignInstantiation{
		Name: "u0",
		Scope: &hier.Scope{Items: []hier.Item{
			&hier.OtherItem{Kind: "assign_y"},
			&hier.DataPortItem{Name: "a", Dir: ast.DirInput},
			&hier.ParamItem{Name: "WIDTH", ValueInit: nil},
			&hier.ParamItem{Name: "T", IsTypeParam: true, TypeValue: logicTy},
			&hier.DataPortItem{Name: "b", Dir: ast.DirOutput},
			&hier.OtherItem{Kind: "assign_z"},
		}},
	}

	require.NoError(t, TypeParamElim(inst))

	assert.Equal(t, []string{"WIDTH", "a", "b", "T", "assign_y", "assign_z"}, namesOf(inst.Scope.Items))

	typeItem, ok := inst.Scope.Items[3].(*hier.TypeItem)
	require.True(t, ok)
	assert.Same(t, logicTy, typeItem.Decl.Type)
}

// A type parameter with no embedded type value is an invariant violation
// the elaborator must never produce; the rewrite pass reports it rather
// than silently dropping the parameter.
func TestTypeParamElimRejectsMissingTypeValue(t *testing.T) {
	inst := &hier.DesignInstantiation{
		Scope: &hier.Scope{Items: []hier.Item{
			&hier.ParamItem{Name: "T", IsTypeParam: true},
		}},
	}
	err := TypeParamElim(inst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "T")
}

// Running the pass a second time over its own output is a no-op: an
// already-synthesized TypeItem passes through the type_params bucket
// unchanged, and the already-correct ordering is preserved.
func TestTypeParamElimIsIdempotent(t *testing.T) {
	logicTy := ast.NewImplicitType(token.Span{}, ast.Unsigned, nil)
	inst := &hier.DesignInstantiation{
		Scope: &hier.Scope{Items: []hier.Item{
			&hier.ParamItem{Name: "WIDTH"},
			&hier.DataPortItem{Name: "a", Dir: ast.DirInput},
			&hier.ParamItem{Name: "T", IsTypeParam: true, TypeValue: logicTy},
			&hier.OtherItem{Kind: "assign_y"},
		}},
	}
	require.NoError(t, TypeParamElim(inst))
	first := append([]hier.Item(nil), inst.Scope.Items...)

	require.NoError(t, TypeParamElim(inst))
	assert.Equal(t, namesOf(first), namesOf(inst.Scope.Items))
	assert.Len(t, inst.Scope.Items, 4)
}

// Eliminate recurses through generate blocks and loop-generate instances to
// reach every DesignInstantiation reachable from the top-level Source.
func TestEliminateRecursesThroughGenerateBlocks(t *testing.T) {
	logicTy := ast.NewImplicitType(token.Span{}, ast.Unsigned, nil)
	nested := &hier.DesignInstantiation{
		Scope: &hier.Scope{Items: []hier.Item{
			&hier.ParamItem{Name: "T", IsTypeParam: true, TypeValue: logicTy},
			&hier.DataPortItem{Name: "a"},
		}},
	}
	looped := &hier.DesignInstantiation{
		Scope: &hier.Scope{Items: []hier.Item{
			&hier.DataPortItem{Name: "b"},
			&hier.ParamItem{Name: "U", IsTypeParam: true, TypeValue: logicTy},
		}},
	}

	src := &hier.Source{Items: []hier.Item{
		&hier.GenBlockItem{
			Name: "g",
			Scope: &hier.Scope{Items: []hier.Item{
				&hier.DesignItem{Decl: &hier.DesignDecl{
					Name:      "sub",
					Instances: map[hier.Ident]*hier.DesignInstantiation{"u0": nested},
				}},
			}},
		},
		&hier.LoopGenBlockItem{
			Name: "gl",
			Instances: map[string]*hier.Scope{
				"0": {Items: []hier.Item{
					&hier.DesignItem{Decl: &hier.DesignDecl{
						Name:      "sub2",
						Instances: map[hier.Ident]*hier.DesignInstantiation{"u1": looped},
					}},
				}},
			},
		},
	}}

	require.NoError(t, Eliminate(src))

	assert.Equal(t, []string{"a", "T"}, namesOf(nested.Scope.Items))
	assert.Equal(t, []string{"b", "U"}, namesOf(looped.Scope.Items))
}
