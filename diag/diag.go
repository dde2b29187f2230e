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

// Package diag defines the diagnostic sink and source-manager interfaces
// the preprocessor and parser report through, plus a small default
// implementation of each for standalone use and tests.
package diag

import (
	"fmt"

	"github.com/lowRISC/sv-elaborator/token"
)

// Severity ranks a Diagnostic. Fatal is the only severity that must cause
// the caller to abort the current parse; the rest are recorded and parsing
// continues.
type Severity int

const (
	Remark Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Remark:
		return "remark"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reported issue: a severity, a message, and the
// spans of source text it concerns. Hints carry supplementary remarks (e.g.
// "previous declared here") that share the same severity-independent shape.
type Diagnostic struct {
	Severity Severity
	Message  string
	Spans    []token.Span
	Hints    []string
}

// Mgr is the diagnostic sink every stage reports through. It is the only
// object written during parsing other than the parser's own return value.
type Mgr interface {
	Report(d Diagnostic)
}

// SrcMgr maps a Span back to human-readable source text for diagnostics. It
// is read-only from the elaborator's point of view: file contents never
// change once a Source is registered.
type SrcMgr interface {
	// Text returns the source text covered by span.
	Text(span token.Span) string
	// Locate returns the file name, 1-based line, and 1-based column of the
	// start of span.
	Locate(span token.Span) (file string, line, column int)
}

// ErrAbort is returned, unwrapped, whenever a Fatal diagnostic is reported;
// recognize it with a type assertion (err.(diag.ErrAbort)).
type ErrAbort string

func (e ErrAbort) Error() string { return string(e) }

// errAbort is the sentinel value every Fatal report produces.
const errAbort = ErrAbort("fatal: diagnostic aborted the parse")

// Bridge adapts a raw Mgr into the severity-aware reporting convention used
// throughout this module: reporting at Fatal severity both records the
// diagnostic and yields a non-nil error that callers propagate to unwind
// out of the current parse.
type Bridge struct {
	Mgr    Mgr
	Src    SrcMgr
	Counts [Fatal + 1]int
}

// NewBridge constructs a Bridge over sink. src is kept in the Src field for
// callers that want it; the Bridge itself never reads it.
func NewBridge(sink Mgr, src SrcMgr) *Bridge {
	return &Bridge{Mgr: sink, Src: src}
}

// Report files d with the bridge's sink and returns a non-nil error iff d's
// severity is Fatal.
func (b *Bridge) Report(d Diagnostic) error {
	b.Counts[d.Severity]++
	if b.Mgr != nil {
		b.Mgr.Report(d)
	}
	if d.Severity == Fatal {
		return errAbort
	}
	return nil
}

// Errorf reports an Error-severity diagnostic at the given spans.
func (b *Bridge) Errorf(spans []token.Span, format string, args ...interface{}) error {
	return b.Report(Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...), Spans: spans})
}

// Warnf reports a Warning-severity diagnostic at the given spans.
func (b *Bridge) Warnf(spans []token.Span, format string, args ...interface{}) error {
	return b.Report(Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Spans: spans})
}

// Remarkf reports a Remark-severity diagnostic at the given spans.
func (b *Bridge) Remarkf(spans []token.Span, format string, args ...interface{}) error {
	return b.Report(Diagnostic{Severity: Remark, Message: fmt.Sprintf(format, args...), Spans: spans})
}

// Fatalf reports a Fatal-severity diagnostic and returns the resulting
// abort error; callers should propagate it unchanged to their own caller.
func (b *Bridge) Fatalf(spans []token.Span, format string, args ...interface{}) error {
	return b.Report(Diagnostic{Severity: Fatal, Message: fmt.Sprintf(format, args...), Spans: spans})
}

// NotYetSupported reports the standard "not yet supported" warning used for
// recognized-but-unimplemented directives and constructs.
func (b *Bridge) NotYetSupported(spans []token.Span, what string) error {
	return b.Warnf(spans, "%s not yet supported", what)
}
