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

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"

	"github.com/lowRISC/sv-elaborator/ast"
)

// stubTarget pairs a source file's name with the top-level items parsed
// from it, for --emit-stub to walk after every file has compiled.
type stubTarget struct {
	file  string
	items []ast.Item
}

// writeStub renders every module found across targets as a Go struct whose
// fields mirror that module's ports, gofmt's the result through
// golang.org/x/tools/imports (which also drops the package clause's unused
// import guesswork), and writes it to path. This is a debugging aid, not a
// faithful code generator: ports whose direction or type this front end
// never resolved are rendered with a placeholder comment rather than
// omitted, so every port a module declares is visible in the stub.
func writeStub(path string, targets []stubTarget) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "package svstub")
	fmt.Fprintln(&buf)

	for _, t := range targets {
		for _, it := range t.items {
			mod, ok := it.(*ast.ModuleDecl)
			if !ok {
				continue
			}
			writeModuleStub(&buf, t.file, mod)
		}
	}

	out, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return errors.Wrap(err, "formatting stub")
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func writeModuleStub(buf *bytes.Buffer, file string, mod *ast.ModuleDecl) {
	fmt.Fprintf(buf, "// %s mirrors the %q module declared in %s.\n", goTypeName(mod.Name.Val), mod.Name.Val, file)
	fmt.Fprintf(buf, "type %s struct {\n", goTypeName(mod.Name.Val))
	for _, port := range mod.Ports {
		writePortStub(buf, port)
	}
	fmt.Fprintln(buf, "}")
	fmt.Fprintln(buf)
}

func writePortStub(buf *bytes.Buffer, port ast.PortDecl) {
	switch p := port.(type) {
	case *ast.DataPortDecl:
		for _, a := range p.Assignments {
			fmt.Fprintf(buf, "\t%s %s // %s\n", goFieldName(a.Name.Val), goKindFor(p.Dir), a.Name.Val)
		}
	case *ast.InterfacePortDecl:
		for _, a := range p.Assignments {
			fmt.Fprintf(buf, "\t%s interface{} // interface port, modport unresolved\n", goFieldName(a.Name.Val))
		}
	case *ast.ExplicitPortDecl:
		fmt.Fprintf(buf, "\t%s interface{} // explicit .name(expr) port\n", goFieldName(p.Name.Val))
	}
}

func goKindFor(dir ast.PortDir) string {
	switch dir {
	case ast.DirInput:
		return "InputSignal"
	case ast.DirOutput:
		return "OutputSignal"
	case ast.DirInout:
		return "InoutSignal"
	case ast.DirRef:
		return "RefSignal"
	default:
		return "interface{}"
	}
}

func goTypeName(svName string) string  { return exportedName(svName) }
func goFieldName(svName string) string { return exportedName(svName) }

func exportedName(svName string) string {
	out := make([]byte, 0, len(svName)+1)
	upperNext := true
	for i := 0; i < len(svName); i++ {
		c := svName[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		out = append(out, c)
	}
	if len(out) == 0 {
		return "M"
	}
	return string(out)
}
