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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// Largest arity for which destructuring helpers are generated.
const maxArity = 6

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-coltab")
	//
	assertNoError(bgen.Generate(destructureConfig(maxArity), "row", "templates",
		bavard.Entry{
			File:      "../../destructure_gen.go",
			Templates: []string{"destructure.go.tmpl"},
		},
	), "for destructuring helpers")
	// run gofmt on the generated file
	runCmd("gofmt", "-w", "../../destructure_gen.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// Arity describes the helpers generated for records of a given width.  All
// strings are precomputed here to keep the template simple.
type Arity struct {
	N int
	// Type parameter list, e.g. "T1, T2 any"
	TypeParams string
	// Type arguments, e.g. "T1, T2"
	TypeArgs string
	// Reference results, e.g. "*T1, *T2"
	RefTypes string
	// Value results, e.g. "T1, T2"
	ValueTypes string
	// Zero references, e.g. "nil, nil"
	Nils string
	// Reference variables, e.g. "p1, p2"
	Refs string
	// Dereferenced variables, e.g. "*p1, *p2"
	Derefs string
	// Value variables, e.g. "v1, v2"
	Vals string
	// Individual columns
	Columns []Column
}

// Column describes a single column of a given arity.
type Column struct {
	// One-based position used in identifiers
	Pos int
	// Zero-based column index
	Index int
}

type destructureData struct {
	Arities []Arity
}

func destructureConfig(n int) destructureData {
	var data destructureData
	//
	for i := 1; i <= n; i++ {
		data.Arities = append(data.Arities, arityConfig(i))
	}
	//
	return data
}

func arityConfig(n int) Arity {
	var (
		targs   = make([]string, n)
		rtypes  = make([]string, n)
		nils    = make([]string, n)
		refs    = make([]string, n)
		derefs  = make([]string, n)
		vals    = make([]string, n)
		columns = make([]Column, n)
	)
	//
	for i := 0; i < n; i++ {
		targs[i] = fmt.Sprintf("T%d", i+1)
		rtypes[i] = fmt.Sprintf("*T%d", i+1)
		nils[i] = "nil"
		refs[i] = fmt.Sprintf("p%d", i+1)
		derefs[i] = fmt.Sprintf("*p%d", i+1)
		vals[i] = fmt.Sprintf("v%d", i+1)
		columns[i] = Column{i + 1, i}
	}
	//
	return Arity{
		N:          n,
		TypeParams: strings.Join(targs, ", ") + " any",
		TypeArgs:   strings.Join(targs, ", "),
		RefTypes:   strings.Join(rtypes, ", "),
		ValueTypes: strings.Join(targs, ", "),
		Nils:       strings.Join(nils, ", "),
		Refs:       strings.Join(refs, ", "),
		Derefs:     strings.Join(derefs, ", "),
		Vals:       strings.Join(vals, ", "),
		Columns:    columns,
	}
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
