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

package diag

import (
	"fmt"

	"github.com/lowRISC/sv-elaborator/token"
)

// Source is one input file: its name and full text. The elaborator treats
// Source as opaque except for byte-offset slicing; it never performs file
// I/O itself.
type Source struct {
	File token.File
	Name string
	Text string
}

// SourceMgr keeps Sources registered by file handle and answers SrcMgr queries
// against them. It is read-only after the Sources are added.
type SourceMgr struct {
	sources map[token.File]*Source
}

// NewSourceMgr constructs an empty SourceMgr.
func NewSourceMgr() *SourceMgr {
	return &SourceMgr{sources: make(map[token.File]*Source)}
}

// Add registers src and returns it for convenience.
func (m *SourceMgr) Add(src *Source) *Source {
	m.sources[src.File] = src
	return src
}

func (m *SourceMgr) Text(span token.Span) string {
	src, ok := m.sources[span.File]
	if !ok {
		return ""
	}
	lo, hi := span.Lo, span.Hi
	if lo < 0 {
		lo = 0
	}
	if hi > len(src.Text) {
		hi = len(src.Text)
	}
	if lo > hi {
		return ""
	}
	return src.Text[lo:hi]
}

func (m *SourceMgr) Locate(span token.Span) (file string, line, column int) {
	src, ok := m.sources[span.File]
	if !ok {
		return "-", 1, 1
	}
	line, column = 1, 1
	limit := span.Lo
	if limit > len(src.Text) {
		limit = len(src.Text)
	}
	for _, r := range src.Text[:limit] {
		if r == '\n' {
			line++
			column = 0
		}
		column++
	}
	return src.Name, line, column
}

// CollectingMgr accumulates every reported Diagnostic in order; it is the
// default sink used by tests and by callers that just want the final list.
type CollectingMgr struct {
	Diagnostics []Diagnostic
}

func (c *CollectingMgr) Report(d Diagnostic) { c.Diagnostics = append(c.Diagnostics, d) }

// Format renders a Diagnostic as "file:line:col: severity: message", mirroring
// the conventional compiler diagnostic line. src may be nil; then, as for a
// diagnostic with no spans, only "severity: message" is rendered.
func Format(src SrcMgr, d Diagnostic) string {
	if len(d.Spans) == 0 || src == nil {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	file, line, col := src.Locate(d.Spans[0])
	return fmt.Sprintf("%s:%d:%d: %s: %s", file, line, col, d.Severity, d.Message)
}
