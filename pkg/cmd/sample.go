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
package cmd

import (
	"fmt"
	"strings"

	bls12_377 "github.com/consensys/go-coltab/field/bls12-377"
	"github.com/consensys/go-coltab/pkg/column"
	"github.com/consensys/go-coltab/pkg/row"
	"github.com/consensys/go-coltab/pkg/table"
	"github.com/google/uuid"
)

var (
	colId    = column.NewName[uuid.UUID]("id")
	colA     = column.NewName[int64]("a")
	colB     = column.NewName[float64]("b")
	colC     = column.NewName[bls12_377.Element]("c")
	colLabel = column.NewName[string]("label")
	// Schema of the sample table
	sampleSchema = column.MustSchema(colId, colA, colB, colC, colLabel)
	// Fields of the sample schema
	fieldId    = row.MustBind(sampleSchema, colId)
	fieldA     = row.MustBind(sampleSchema, colA)
	fieldB     = row.MustBind(sampleSchema, colB)
	fieldC     = row.MustBind(sampleSchema, colC)
	fieldLabel = row.MustBind(sampleSchema, colLabel)
)

// Construct a sample table with n rows.  Row identifiers are derived from the
// row index, hence the table is the same on every run.
func sampleTable(n uint, reserve bool) *table.Table {
	var (
		tbl     = table.New(sampleSchema)
		scratch = row.Zero(sampleSchema)
	)
	//
	if reserve {
		tbl.Reserve(n)
	}
	//
	for i := uint(0); i < n; i++ {
		fieldId.Set(scratch, uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("row-%d", i))))
		fieldA.Set(scratch, int64(i))
		fieldB.Set(scratch, float64(i)/2)
		fieldC.Set(scratch, bls12_377.NewElement(uint64(i)).Mul(bls12_377.NewElement(uint64(i))))
		fieldLabel.Set(scratch, fmt.Sprintf("row %d", i))
		//
		if err := tbl.AppendRecord(scratch); err != nil {
			// Cannot happen, since scratch has the table's own schema.
			panic(err)
		}
	}
	//
	return tbl
}

// Apply projections to a table view in a fixed order: first the subset (if
// any), then any dropped columns and, finally, relabelings given as
// "old=new".
func project(view table.View, subset []string, drop []string, relabel []string) (table.View, error) {
	var err error
	//
	if len(subset) > 0 {
		if view, err = view.Subset(subset...); err != nil {
			return view, err
		}
	}
	//
	if len(drop) > 0 {
		if view, err = view.Drop(drop...); err != nil {
			return view, err
		}
	}
	//
	if len(relabel) > 0 {
		relabelings, err := parseRelabelings(relabel)
		if err != nil {
			return view, err
		}
		//
		return view.Relabel(relabelings...)
	}
	//
	return view, nil
}

func parseRelabelings(args []string) ([]column.Relabeling, error) {
	relabelings := make([]column.Relabeling, len(args))
	//
	for i, arg := range args {
		from, to, ok := strings.Cut(arg, "=")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid relabeling \"%s\" (expected old=new)", arg)
		}
		//
		relabelings[i] = column.Rename(from, to)
	}
	//
	return relabelings, nil
}
