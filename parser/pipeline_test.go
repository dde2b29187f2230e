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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/diag"
	"github.com/lowRISC/sv-elaborator/lexer"
	"github.com/lowRISC/sv-elaborator/preprocessor"
	"github.com/lowRISC/sv-elaborator/token"
)

// parseText runs the full lex -> preprocess -> parse pipeline over text
// and returns the parsed items, any diagnostics collected along the way,
// and the parser's own error.
func parseText(t *testing.T, text string) ([]ast.Item, []diag.Diagnostic, error) {
	t.Helper()
	toks, err := lexer.New().Lex(&diag.Source{File: 0, Name: "t.sv", Text: text})
	require.NoError(t, err)

	mgr := &diag.CollectingMgr{}
	srcMgr := diag.NewSourceMgr()
	pp, err := preprocessor.Preprocess(mgr, srcMgr, toks)
	require.NoError(t, err)

	items, perr := ParseSource(mgr, srcMgr, pp)
	return items, mgr.Diagnostics, perr
}

func soleModule(t *testing.T, items []ast.Item) *ast.ModuleDecl {
	t.Helper()
	require.Len(t, items, 1)
	mod, ok := items[0].(*ast.ModuleDecl)
	require.True(t, ok, "expected a *ast.ModuleDecl, got %T", items[0])
	return mod
}

// Scenario: an ANSI port list mixing a sized logic vector input with a
// plain logic output.
func TestParseDataPorts(t *testing.T) {
	items, diags, err := parseText(t, "module m(input logic [7:0] a, output logic b); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	assert.Equal(t, "m", mod.Name.Val)
	require.Len(t, mod.Ports, 2)

	p0, ok := mod.Ports[0].(*ast.DataPortDecl)
	require.True(t, ok)
	assert.Equal(t, ast.DirInput, p0.Dir)
	require.Len(t, p0.Assignments, 1)
	assert.Equal(t, "a", p0.Assignments[0].Name.Val)
	vec, ok := p0.DataType.(*ast.IntVecType)
	require.True(t, ok)
	assert.Equal(t, ast.IntVecLogic, vec.Kind)
	require.Len(t, vec.Dims, 1)
	rng, ok := vec.Dims[0].(*ast.RangeDim)
	require.True(t, ok)
	msb, ok := rng.Msb.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, "7", msb.Text)

	p1, ok := mod.Ports[1].(*ast.DataPortDecl)
	require.True(t, ok)
	assert.Equal(t, ast.DirOutput, p1.Dir)
	assert.Equal(t, "b", p1.Assignments[0].Name.Val)
}

// Direction is sticky across an un-restated comma-separated entry, and
// names sharing the un-restated header land in one PortDecl's Assignments.
func TestParsePortListStickyDirection(t *testing.T) {
	items, diags, err := parseText(t, "module m(input logic a, b); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.Ports, 1)
	p, ok := mod.Ports[0].(*ast.DataPortDecl)
	require.True(t, ok)
	assert.Equal(t, ast.DirInput, p.Dir)
	require.Len(t, p.Assignments, 2)
	assert.Equal(t, "a", p.Assignments[0].Name.Val)
	assert.Equal(t, "b", p.Assignments[1].Name.Val)
}

// Scenario S4: `module m(input logic a, b, output c)` groups the
// co-declared `a, b` under one Data(Input, Default, logic, [a, b]) port
// and yields a separate Data(Output, Default, implicit, [c]) port, two
// PortDecls total, not three.
func TestParseAnsiPortInheritanceGroupsCoDeclaredNames(t *testing.T) {
	items, diags, err := parseText(t, "module m(input logic a, b, output c); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.Ports, 2)

	p0, ok := mod.Ports[0].(*ast.DataPortDecl)
	require.True(t, ok)
	assert.Equal(t, ast.DirInput, p0.Dir)
	require.Len(t, p0.Assignments, 2)
	assert.Equal(t, "a", p0.Assignments[0].Name.Val)
	assert.Equal(t, "b", p0.Assignments[1].Name.Val)

	p1, ok := mod.Ports[1].(*ast.DataPortDecl)
	require.True(t, ok)
	assert.Equal(t, ast.DirOutput, p1.Dir)
	require.Len(t, p1.Assignments, 1)
	assert.Equal(t, "c", p1.Assignments[0].Name.Val)
	_, ok = p1.DataType.(*ast.ImplicitType)
	require.True(t, ok)
}

func TestParseExplicitPort(t *testing.T) {
	items, diags, err := parseText(t, "module m(.clk(x)); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.Ports, 1)
	p, ok := mod.Ports[0].(*ast.ExplicitPortDecl)
	require.True(t, ok)
	assert.Equal(t, "clk", p.Name.Val)
	require.NotNil(t, p.Expr)
}

func TestParseInterfacePortWithModport(t *testing.T) {
	items, diags, err := parseText(t, "module m(bus_if.master b); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.Ports, 1)
	p, ok := mod.Ports[0].(*ast.InterfacePortDecl)
	require.True(t, ok)
	require.NotNil(t, p.Interface)
	assert.Equal(t, "bus_if", p.Interface.Val)
	require.NotNil(t, p.Modport)
	assert.Equal(t, "master", p.Modport.Val)
	assert.Equal(t, "b", p.Assignments[0].Name.Val)
}

// A run of co-declared params sharing a keyword/sort is split into a new
// ParamDecl whenever the keyword or sort is restated.
func TestParseParamPortListRuns(t *testing.T) {
	items, diags, err := parseText(t,
		"module m #(parameter WIDTH = 8, parameter logic [3:0] OFFSET = 0) (); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.ParamPortList, 2)

	d0 := mod.ParamPortList[0]
	assert.Nil(t, d0.Sort)
	require.Len(t, d0.Assignments, 1)
	assert.Equal(t, "WIDTH", d0.Assignments[0].Name.Val)
	lit, ok := d0.Assignments[0].Init.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, "8", lit.Text)

	d1 := mod.ParamPortList[1]
	require.NotNil(t, d1.Sort)
	assert.Equal(t, ast.SortType, d1.Sort.Tag)
	_, ok = d1.Sort.DataType.(*ast.IntVecType)
	require.True(t, ok)
	assert.Equal(t, "OFFSET", d1.Assignments[0].Name.Val)
}

// Scenario S6: a sort restatement (`type T = logic`) is recognized on an
// element that restates neither `parameter` nor `localparam`, and a later
// element's own keyword restatement (`localparam int D = 4`) still starts
// its own run. Three ParamDecls result, each a single-assignment run.
func TestParseParamPortListRecognizesSortWithoutKeywordRestatement(t *testing.T) {
	items, diags, err := parseText(t,
		"module m #(parameter int W = 8, type T = logic, localparam int D = 4) (); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.ParamPortList, 3)

	d0 := mod.ParamPortList[0]
	assert.Equal(t, token.KwParameter, d0.Keyword)
	require.NotNil(t, d0.Sort)
	assert.Equal(t, ast.SortType, d0.Sort.Tag)
	assert.Equal(t, "W", d0.Assignments[0].Name.Val)

	d1 := mod.ParamPortList[1]
	assert.Equal(t, token.KwParameter, d1.Keyword)
	require.NotNil(t, d1.Sort)
	assert.Equal(t, ast.SortKind, d1.Sort.Tag)
	assert.Equal(t, "T", d1.Assignments[0].Name.Val)

	d2 := mod.ParamPortList[2]
	assert.Equal(t, token.KwLocalparam, d2.Keyword)
	require.NotNil(t, d2.Sort)
	assert.Equal(t, ast.SortType, d2.Sort.Tag)
	assert.Equal(t, "D", d2.Assignments[0].Name.Val)
}

// A bare `type` sort marks a parameter as a type parameter.
func TestParseTypeParameter(t *testing.T) {
	items, diags, err := parseText(t, "module m #(parameter type T = logic) (); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.ParamPortList, 1)
	sort := mod.ParamPortList[0].Sort
	require.NotNil(t, sort)
	assert.Equal(t, ast.SortKind, sort.Tag)
	assert.Equal(t, "T", mod.ParamPortList[0].Assignments[0].Name.Val)
}

func TestParseHierInstantiation(t *testing.T) {
	items, diags, err := parseText(t, "module top; sub #(.W(8)) u0(.a(x), .b(y)); endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.Items, 1)
	inst, ok := mod.Items[0].(*ast.HierInstantiation)
	require.True(t, ok)
	assert.Equal(t, "sub", inst.Name.Val)
	require.Len(t, inst.Params, 1)
	pw, ok := inst.Params[0].(*ast.NamedArg)
	require.True(t, ok)
	assert.Equal(t, "W", pw.Name.Val)

	require.Len(t, inst.Instances, 1)
	u0 := inst.Instances[0]
	assert.Equal(t, "u0", u0.Name.Val)
	require.Len(t, u0.Ports, 2)
	pa, ok := u0.Ports[0].(*ast.NamedArg)
	require.True(t, ok)
	assert.Equal(t, "a", pa.Name.Val)
}

func TestParseContinuousAssignWithSelectAndMember(t *testing.T) {
	items, diags, err := parseText(t, "module m; assign y = x[0] + s[1].field; endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.Items, 1)
	ca, ok := mod.Items[0].(*ast.ContinuousAssign)
	require.True(t, ok)
	require.Len(t, ca.Assignments, 1)
	assignExpr, ok := ca.Assignments[0].(*ast.AssignExpr)
	require.True(t, ok)

	add, ok := assignExpr.Rhs.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAdd, add.Op)
	_, ok = add.Lhs.(*ast.SelectExpr)
	require.True(t, ok)
	_, ok = add.Rhs.(*ast.MemberExpr)
	require.True(t, ok)
}

func TestParseSysTfCallItem(t *testing.T) {
	items, diags, err := parseText(t, `module m; $display("hi", 1); endmodule`)
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	require.Len(t, mod.Items, 1)
	call, ok := mod.Items[0].(*ast.SysTfCallItem)
	require.True(t, ok)
	assert.Equal(t, "$display", call.Call.Task.Val)
	require.Len(t, call.Call.Args, 2)
}

// Constructs outside the closed keyword/operator set are reported Fatal
// rather than silently accepted or crashing the parser.
func TestParseExternItemIsFatal(t *testing.T) {
	items, diags, err := parseText(t, "module m; extern foo(); endmodule")
	require.Error(t, err)
	_, isAbort := err.(diag.ErrAbort)
	assert.True(t, isAbort)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Fatal, diags[0].Severity)
	assert.Empty(t, items)
}

func TestParseConcatenationIsNotYetSupported(t *testing.T) {
	_, diags, err := parseText(t, "module m; assign y = {a, b}; endmodule")
	require.Error(t, err)
	require.NotEmpty(t, diags)
	assert.Equal(t, diag.Fatal, diags[len(diags)-1].Severity)
}

// The $unit and local scopes must stay distinct per the fixed Rust bug.
func TestParseUnitAndLocalScopesAreDistinct(t *testing.T) {
	items, diags, err := parseText(t, "module m; assign y = $unit::x + local::z; endmodule")
	require.NoError(t, err)
	require.Empty(t, diags)
	mod := soleModule(t, items)
	ca := mod.Items[0].(*ast.ContinuousAssign)
	assignExpr := ca.Assignments[0].(*ast.AssignExpr)
	add := assignExpr.Rhs.(*ast.BinaryExpr)

	lhs := add.Lhs.(*ast.HierNameExpr)
	_, isUnit := lhs.Scope.(*ast.UnitScope)
	assert.True(t, isUnit)

	rhs := add.Rhs.(*ast.HierNameExpr)
	_, isLocal := rhs.Scope.(*ast.LocalScope)
	assert.True(t, isLocal)
}
