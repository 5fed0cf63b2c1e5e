// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package table

import (
	"fmt"
	"io"
	"math"

	"github.com/consensys/go-coltab/pkg/util/termio"
)

// Printer encapsulates various configuration options useful for printing out
// tables in human-readable forms.
type Printer struct {
	// First row to print
	startRow uint
	// Last row to print (exclusive)
	endRow uint
	// Determine maximum width to print
	maxCellWidth uint
	// Enable ANSI
	ansiEscapes bool
}

// NewPrinter constructs a default printer, which prints every row.
func NewPrinter() *Printer {
	return &Printer{0, math.MaxUint, math.MaxUint, true}
}

// Start configures the starting row for this printer.
func (p *Printer) Start(start uint) *Printer {
	p.startRow = start
	return p
}

// End configures the ending row (exclusive) for this printer.
func (p *Printer) End(end uint) *Printer {
	p.endRow = end
	return p
}

// AnsiEscapes can be used to enable or disable the use of ANSI escape sequences
// (e.g. for showing colour in a terminal, etc)
func (p *Printer) AnsiEscapes(enable bool) *Printer {
	p.ansiEscapes = enable
	return p
}

// MaxCellWidth sets the maximum width to use for the cell data.
func (p *Printer) MaxCellWidth(width uint) *Printer {
	p.maxCellWidth = width
	return p
}

// Print a given table view to a given writer.  The first line holds the column
// names, and each subsequent line is prefixed with its row index.
func (p *Printer) Print(out io.Writer, view View) error {
	var (
		schema = view.Schema()
		rows   = view.Rows()
		start  = min(p.startRow, rows.Len())
		end    = max(start, min(p.endRow, rows.Len()))
		tp     = termio.NewTablePrinter(1+schema.Width(), 1+end-start)
	)
	// Column names
	tp.Set(0, 0, "")
	//
	for i, c := range schema.Columns() {
		tp.Set(uint(i+1), 0, c.Name())
	}
	//
	tp.SetRowEscape(0, termio.BoldAnsiEscape().FgColour(termio.TERM_WHITE))
	// Row data
	for r := start; r < end; r++ {
		ith := rows.At(r)
		tp.Set(0, 1+r-start, fmt.Sprintf("%d", r))
		tp.SetEscape(0, 1+r-start, termio.NewAnsiEscape().FgColour(termio.TERM_WHITE))
		//
		for j := uint(0); j < schema.Width(); j++ {
			tp.Set(1+j, 1+r-start, schema.Column(j).Type().Format(ith.Ref(j)))
		}
	}
	//
	tp.SetMaxWidths(p.maxCellWidth)
	tp.AnsiEscapes(p.ansiEscapes)
	//
	return tp.Print(out)
}

// Print a table view to a given writer using the default printer, without
// ANSI escapes.
func Print(out io.Writer, view View) error {
	return NewPrinter().AnsiEscapes(false).Print(out, view)
}
