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
	log "github.com/sirupsen/logrus"
)

// Table is a growable, columnar table whose layout is fixed by a schema.  Each
// column is held in its own contiguous vector, and all columns always have the
// same height.  A table exclusively owns its column storage.
type Table struct {
	schema  *column.Schema
	columns []column.Vector
	height  uint
	// Most recent source schema seen by AppendRecord, along with the
	// permutation mapping its columns onto this table's columns.
	lastSource *column.Schema
	lastPerm   []uint
}

// New constructs an empty table for a given schema.
func New(schema *column.Schema) *Table {
	return NewWithCapacity(schema, 0)
}

// NewWithCapacity constructs an empty table for a given schema, whose columns
// can hold at least n rows before relocating.
func NewWithCapacity(schema *column.Schema, n uint) *Table {
	columns := make([]column.Vector, schema.Width())
	//
	for i := range columns {
		columns[i] = schema.Column(uint(i)).Type().NewVector(n)
	}
	//
	return &Table{schema, columns, 0, nil, nil}
}

// Schema returns the schema of this table.
func (p *Table) Schema() *column.Schema {
	return p.schema
}

// Len returns the number of rows in this table.
func (p *Table) Len() uint {
	return p.height
}

// Column returns the vector holding the ith column of this table.
func (p *Table) Column(index uint) column.Vector {
	return p.columns[index]
}

// Append a row, given as one value per column in column order.  Values must
// match the column types exactly.  Nothing is appended if any value fails to
// match.
func (p *Table) Append(values ...any) error {
	if uint(len(values)) != p.schema.Width() {
		return fmt.Errorf("%w: table has %d columns, got %d values", column.ErrArityMismatch, p.schema.Width(),
			len(values))
	}
	//
	for i, v := range values {
		ith := p.schema.Column(uint(i))
		//
		if !ith.Type().Accepts(v) {
			return fmt.Errorf("%w: column %s requires %s, not %T", column.ErrTypeMismatch, ith.Name(), ith.Type(), v)
		}
	}
	//
	return p.grow(func(i uint) {
		p.columns[i].Append(values[i])
	})
}

// AppendRecord appends a copy of a given row or view.  The record must have
// exactly the columns of this table (i.e. same names and types), though they
// may be given in any order.  Nothing is appended if the record does not match.
func (p *Table) AppendRecord(record row.Record) error {
	perm, err := p.permutation(record.Schema())
	if err != nil {
		return err
	}
	//
	return p.grow(func(i uint) {
		p.columns[i].AppendRef(record.Ref(perm[i]))
	})
}

// Reserve ensures there is space for n further rows, such that the next n
// appends will not relocate any column.
func (p *Table) Reserve(n uint) {
	before := p.relocations()
	//
	for _, c := range p.columns {
		c.Reserve(n)
	}
	//
	if after := p.relocations(); after != before {
		log.Debugf("relocated %d column(s) of %s reserving %d rows", after-before, p.schema, n)
	}
}

// Rows returns the sequence of rows currently held in this table.
func (p *Table) Rows() Rows {
	return p.View().Rows()
}

// View returns a non-owning view of this table, through which its columns can
// be relabeled or projected without copying any data.
func (p *Table) View() View {
	indices := make([]uint, p.schema.Width())
	//
	for i := range indices {
		indices[i] = uint(i)
	}
	//
	return View{p, p.schema, indices}
}

// Determine the mapping from this table's columns into the columns of a given
// source schema.  The last mapping computed is retained, since records are
// typically appended from the same source over and over.
func (p *Table) permutation(source *column.Schema) ([]uint, error) {
	if p.lastSource == source {
		return p.lastPerm, nil
	}
	//
	perm, err := p.schema.Match(source)
	if err != nil {
		return nil, err
	}
	//
	p.lastSource, p.lastPerm = source, perm
	//
	return perm, nil
}

// Grow every column by one element, as determined by a given push function
// applied to each column index in turn.  Should any push fail, all columns are
// rolled back to their original height.
func (p *Table) grow(push func(uint)) (err error) {
	before := p.relocations()
	//
	defer func() {
		if r := recover(); r != nil {
			p.rollback()
			err = fmt.Errorf("append failed at row %d: %v", p.height, r)
		}
	}()
	//
	for i := range p.columns {
		push(uint(i))
	}
	//
	p.height++
	//
	if after := p.relocations(); after != before {
		log.Debugf("relocated %d column(s) of %s at row %d", after-before, p.schema, p.height-1)
	}
	//
	return nil
}

func (p *Table) rollback() {
	for _, c := range p.columns {
		if c.Len() > p.height {
			c.Truncate(p.height)
		}
	}
}

// Total number of relocations across all columns.
func (p *Table) relocations() uint {
	var n uint
	//
	for _, c := range p.columns {
		n += c.Relocations()
	}
	//
	return n
}
