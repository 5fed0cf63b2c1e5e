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
package row

import (
	"github.com/consensys/go-coltab/pkg/column"
)

// Row is an owning row, holding one value per column of its schema.  A row is
// constructed by copying values (either given explicitly, or from another
// record) and has no aliasing relationship with the source it was constructed
// or assigned from.  Rows are handled by pointer, since the cells are shared by
// shallow copies of the struct; use Copy for an independent row.
type Row struct {
	schema *column.Schema
	// One reference per column, each to a separately allocated value.
	cells []any
}

// Zero constructs a row holding the zero value for every column.
func Zero(schema *column.Schema) *Row {
	cells := make([]any, schema.Width())
	//
	for i := range cells {
		cells[i] = schema.Column(uint(i)).Type().New()
	}
	//
	return &Row{schema, cells}
}

// New constructs a row holding copies of a given sequence of values, which must
// match the schema positionally.
func New(schema *column.Schema, values ...any) (*Row, error) {
	row := Zero(schema)
	//
	if err := row.Assign(values...); err != nil {
		return nil, err
	}
	//
	return row, nil
}

// MustNew constructs a row from a sequence of values, or panics.
func MustNew(schema *column.Schema, values ...any) *Row {
	row, err := New(schema, values...)
	if err != nil {
		panic(err)
	}
	//
	return row
}

// FromRecord constructs a row with the same schema as a given record (e.g. a
// view), holding a snapshot of its values.
func FromRecord(src Record) *Row {
	schema := src.Schema()
	cells := make([]any, schema.Width())
	//
	for i := range cells {
		vtype := schema.Column(uint(i)).Type()
		cells[i] = vtype.New()
		vtype.Copy(cells[i], src.Ref(uint(i)))
	}
	//
	return &Row{schema, cells}
}

// Schema returns the schema of this row.
func (p *Row) Schema() *column.Schema {
	return p.schema
}

// Width returns the number of columns in this row.
func (p *Row) Width() uint {
	return uint(len(p.cells))
}

// Ref returns a reference to the ith value held in this row.
func (p *Row) Ref(index uint) any {
	return p.cells[index]
}

// Assign a sequence of values to this row, overwriting its own storage.
// Nothing is written if the values do not match the schema.
func (p *Row) Assign(values ...any) error {
	return assign(p, values)
}

// AssignFrom copies the values of another record into this row.  The record
// must have the same column names, in the same order, with the same types.
// Assigning from a view takes a snapshot: subsequent changes to the storage
// referenced by the view are not reflected in this row.
func (p *Row) AssignFrom(src Record) error {
	return assignFrom(p, src)
}

// Values returns a copy of each value held in this row, in order.
func (p *Row) Values() []any {
	return values(p)
}

// Refs returns references to each value held in this row, in order.  Writing
// through these references modifies this row.
func (p *Row) Refs() []any {
	return refs(p)
}

// View returns a view over the values held in this row.
func (p *Row) View() View {
	return View{p.schema, refs(p)}
}

// Subset returns a view over exactly the named columns of this row, in the
// order requested.  Naming a column more than once is rejected with
// column.ErrDuplicateColumn.
func (p *Row) Subset(names ...string) (View, error) {
	return subset(p, names)
}

// Drop returns a view over every column of this row except those named.
func (p *Row) Drop(names ...string) (View, error) {
	return drop(p, names)
}

// Relabel returns a view over this row in which the given columns are renamed.
func (p *Row) Relabel(relabelings ...column.Relabeling) (View, error) {
	return relabel(p, relabelings)
}

// Copy returns an independent copy of this row.
func (p *Row) Copy() *Row {
	return FromRecord(p)
}

// Equal checks whether this row and another record have the same schema and
// equal values.
func (p *Row) Equal(other Record) bool {
	return Equal(p, other)
}

// EqualValues checks whether this row holds exactly the given values.
func (p *Row) EqualValues(values ...any) bool {
	return EqualValues(p, values...)
}

func (p *Row) String() string {
	return String(p)
}
