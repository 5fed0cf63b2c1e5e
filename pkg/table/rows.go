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

	"github.com/consensys/go-coltab/pkg/column"
	"github.com/consensys/go-coltab/pkg/row"
	"github.com/consensys/go-coltab/pkg/util/collection/iter"
)

// Rows is a finite sequence of row views over the columns of a table, one for
// each row present when the sequence was obtained.  A sequence can be traversed
// any number of times, and each traversal produces fresh views.  Views produced
// by a sequence write directly into the table's columns.
//
// Appending to the table may relocate its columns, after which views already
// produced from this sequence no longer address the table's storage: reads
// observe old values and writes are lost.  Use Stale to detect this.
type Rows struct {
	schema  *column.Schema
	columns []column.Vector
	height  uint
	// Relocation count of each column when this sequence was produced.
	relocations []uint
}

func newRows(schema *column.Schema, columns []column.Vector, height uint) Rows {
	relocations := make([]uint, len(columns))
	//
	for i, c := range columns {
		relocations[i] = c.Relocations()
	}
	//
	return Rows{schema, columns, height, relocations}
}

// Schema returns the schema of the views produced by this sequence.
func (p Rows) Schema() *column.Schema {
	return p.schema
}

// Len returns the number of rows in this sequence.
func (p Rows) Len() uint {
	return p.height
}

// At returns a view of the ith row in this sequence.
func (p Rows) At(index uint) row.View {
	if index >= p.height {
		panic(fmt.Sprintf("row %d out-of-bounds (%d rows)", index, p.height))
	}
	//
	refs := make([]any, len(p.columns))
	//
	for i, c := range p.columns {
		refs[i] = c.Ref(index)
	}
	//
	return row.ViewOf(p.schema, refs)
}

// Iter returns an iterator over the rows of this sequence, producing views
// lazily.
func (p Rows) Iter() iter.Iterator[row.View] {
	return iter.NewProjectIterator(iter.NewRangeIterator(0, p.height), p.At)
}

// All returns a range-over-func sequence of each row index and its view.
func (p Rows) All() func(yield func(uint, row.View) bool) {
	return func(yield func(uint, row.View) bool) {
		for i := uint(0); i < p.height; i++ {
			if !yield(i, p.At(i)) {
				return
			}
		}
	}
}

// Stale checks whether any column underlying this sequence has relocated since
// the sequence was obtained.  When stale, views produced by this sequence before
// the relocation no longer address the table's storage, whilst views produced
// afterwards do.
func (p Rows) Stale() bool {
	for i, c := range p.columns {
		if c.Relocations() != p.relocations[i] {
			return true
		}
	}
	//
	return false
}
