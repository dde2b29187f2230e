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

package sv

import (
	"go.uber.org/zap"

	"github.com/lowRISC/sv-elaborator/ast"
	"github.com/lowRISC/sv-elaborator/diag"
)

// Compile runs lex, the full set of §4.2/§4.3 pipeline stages over src and
// returns the top-level items parsed from it: lexer.Lex, then
// preprocessor.Preprocess, then parser.ParseSource. log receives
// stage-entry tracing; a nil log is a no-op, matching the teacher's
// light-touch approach to logging library code.
func Compile(lex Lexer, src *diag.Source, srcMgr diag.SrcMgr, diagMgr diag.Mgr, log *zap.SugaredLogger) ([]ast.Item, error) {
	if log == nil {
		log = nopLogger
	}

	log.Debugw("lexing", "file", src.Name)
	toks, err := lex.Lex(src)
	if err != nil {
		return nil, err
	}
	log.Debugw("lexed", "file", src.Name, "tokens", len(toks))

	pp, err := Preprocess(diagMgr, srcMgr, toks)
	if err != nil {
		log.Debugw("preprocessing aborted", "file", src.Name, "error", err)
		return nil, err
	}
	log.Debugw("preprocessed", "file", src.Name, "tokens", len(pp))

	items, err := ParseSource(diagMgr, srcMgr, pp)
	if err != nil {
		log.Debugw("parsing aborted", "file", src.Name, "error", err)
		return items, err
	}
	log.Debugw("parsed", "file", src.Name, "items", len(items))
	return items, nil
}
