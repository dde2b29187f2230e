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

// Package sv wires the lexer, preprocessor, and parser stages into one
// entry point, mirroring the teacher's gapis/api/gles/glsl top-level
// Parse function. It also re-exports the preprocessor and parser's own
// top-level functions under this package so callers working against the
// pipeline as a whole never need to import the stage packages directly.
package sv

import (
	"go.uber.org/zap"

	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/diag"
	"github.com/lowRISC/sv-elaborator/hier"
	"github.com/lowRISC/sv-elaborator/lexer"
	"github.com/lowRISC/sv-elaborator/parser"
	"github.com/lowRISC/sv-elaborator/preprocessor"
	"github.com/lowRISC/sv-elaborator/token"
	"github.com/lowRISC/sv-elaborator/typeparam"
)

// Lexer is the interface the pipeline's first stage must satisfy. The
// concrete lexer.Lexer is the only implementation in this module; it is
// named here, separately from the lexer package, because §6 treats the
// lexer as an external collaborator the rest of the pipeline depends on
// only through this interface.
type Lexer interface {
	Lex(src *diag.Source) ([]token.Token, error)
}

// Preprocess re-exports preprocessor.Preprocess.
func Preprocess(mgr diag.Mgr, src diag.SrcMgr, toks []token.Token) ([]token.Token, error) {
	return preprocessor.Preprocess(mgr, src, toks)
}

// ParseSource re-exports parser.ParseSource.
func ParseSource(mgr diag.Mgr, src diag.SrcMgr, toks []token.Token) ([]ast.Item, error) {
	return parser.ParseSource(mgr, src, toks)
}

// TypeParamElim re-exports typeparam.TypeParamElim.
func TypeParamElim(inst *hier.DesignInstantiation) error {
	return typeparam.TypeParamElim(inst)
}

// nopLogger is substituted whenever Compile is called with a nil logger,
// so stage-entry tracing never needs a nil check at every call site.
var nopLogger = zap.NewNop().Sugar()
