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
package termio

import (
	"strings"
	"testing"
)

func Test_TablePrinter_01(t *testing.T) {
	tp := NewTablePrinter(2, 2)
	tp.SetRow(0, "a", "bb")
	tp.SetRow(1, "ccc", "d")
	//
	check_Print(t, tp, "   a | bb |\n ccc |  d |\n")
}

func Test_TablePrinter_02(t *testing.T) {
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "abcdefgh")
	tp.SetMaxWidths(5)
	//
	check_Print(t, tp, " abc.. |\n")
}

func Test_TablePrinter_03(t *testing.T) {
	tp := NewTablePrinter(1, 1)
	tp.Set(0, 0, "x")
	tp.SetRowEscape(0, BoldAnsiEscape().FgColour(TERM_RED))
	//
	check_Print(t, tp, " \033[1;31mx\033[0m |\n")
	//
	tp.AnsiEscapes(false)
	check_Print(t, tp, " x |\n")
}

func Test_TablePrinter_04(t *testing.T) {
	tp := NewTablePrinter(2, 2)
	tp.SetRow(0, "αβγδεζ", "x")
	tp.SetRow(1, "ab", "λ")
	//
	check_Print(t, tp, " αβγδεζ | x |\n     ab | λ |\n")
	// truncation respects rune boundaries
	tp.SetMaxWidth(0, 4)
	check_Print(t, tp, " αβ.. | x |\n   ab | λ |\n")
}

func check_Print(t *testing.T, tp *TablePrinter, expected string) {
	t.Helper()
	//
	var builder strings.Builder
	//
	if err := tp.Print(&builder); err != nil {
		t.Fatal(err)
	} else if builder.String() != expected {
		t.Errorf("expected %q, got %q", expected, builder.String())
	}
}
