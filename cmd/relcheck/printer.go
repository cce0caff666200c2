// Copyright 2026 The Relcheck Authors
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
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/DataBridgeTech/relcheck"
)

// diagnosticPrinter writes diagnostics to the error stream, red when the
// stream is a terminal. The mutex keeps lines whole when several files are
// validated in parallel.
type diagnosticPrinter struct {
	mu    sync.Mutex
	out   io.Writer
	paint *color.Color
}

func newDiagnosticPrinter(out io.Writer) *diagnosticPrinter {
	return &diagnosticPrinter{
		out:   out,
		paint: color.New(color.FgRed),
	}
}

func (p *diagnosticPrinter) Print(d relcheck.Diagnostic) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = p.paint.Fprintln(p.out, d.String())
}
