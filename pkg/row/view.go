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
	"fmt"

	"github.com/consensys/go-coltab/pkg/column"
)

// View is a non-owning row, holding one reference per column into storage owned
// elsewhere (e.g. local variables, the fields of a row, or the column vectors of
// a table).  Copying a view copies the references, not the values referenced.
// Writing through a view writes into the referenced storage.  A view is only
// meaningful for as long as the storage it references is: in particular, a view
// into a table does not observe the table's contents after the table relocates
// a column (see table.Rows.Stale).
type View struct {
	schema *column.Schema
	refs   []any
}

// NewView constructs a view over a given set of references, which must be
// non-nil pointers matching the type of each column in the schema.
func NewView(schema *column.Schema, refs ...any) (View, error) {
	if uint(len(refs)) != schema.Width() {
		return View{}, fmt.Errorf("%w: expected %d references, got %d", column.ErrArityMismatch, schema.Width(), len(refs))
	}
	//
	for i, ref := range refs {
		ith := schema.Column(uint(i))
		//
		if !ith.Type().AcceptsRef(ref) {
			return View{}, fmt.Errorf("%w: column %s requires *%s, not %T", column.ErrTypeMismatch, ith.Name(), ith.Type(),
				ref)
		}
	}
	//
	return ViewOf(schema, refs), nil
}

// MustView constructs a view over a given set of references, or panics.
func MustView(schema *column.Schema, refs ...any) View {
	view, err := NewView(schema, refs...)
	if err != nil {
		panic(err)
	}
	//
	return view
}

// ViewOf constructs a view directly from an array of references, which is
// retained.  No checking is performed, hence the caller must ensure every
// reference is a non-nil pointer of the corresponding column's type.
func ViewOf(schema *column.Schema, refs []any) View {
	return View{schema, refs}
}

// Schema returns the schema of this view.
func (p View) Schema() *column.Schema {
	return p.schema
}

// Width returns the number of columns in this view.
func (p View) Width() uint {
	return uint(len(p.refs))
}

// Ref returns the reference held for the ith column.
func (p View) Ref(index uint) any {
	return p.refs[index]
}

// Assign a sequence of values through this view, writing each into the
// referenced storage in column order.  Nothing is written if the values do not
// match the schema.
func (p View) Assign(values ...any) error {
	return assign(p, values)
}

// AssignFrom assigns the values of another record through this view.  The
// record must have the same column names, in the same order, with the same
// types.
func (p View) AssignFrom(src Record) error {
	return assignFrom(p, src)
}

// Values returns a copy of the value referenced by each column, in order.
func (p View) Values() []any {
	return values(p)
}

// Refs returns the reference held for each column, in order.  Writing through
// these references writes into the storage referenced by this view.
func (p View) Refs() []any {
	return refs(p)
}

// Subset returns a view over exactly the named columns, in the order requested,
// referencing the same storage as this view.  Naming a column more than once is
// rejected with column.ErrDuplicateColumn, since names within a schema are
// unique (relabel first to obtain a column twice).
func (p View) Subset(names ...string) (View, error) {
	return subset(p, names)
}

// Drop returns a view over every column except those named, referencing the
// same storage as this view.
func (p View) Drop(names ...string) (View, error) {
	return drop(p, names)
}

// Relabel returns a view in which the given columns are renamed.  The resulting
// view references exactly the same storage as this view.
func (p View) Relabel(relabelings ...column.Relabeling) (View, error) {
	return relabel(p, relabelings)
}

// Copy takes a snapshot of the values referenced by this view.
func (p View) Copy() *Row {
	return FromRecord(p)
}

// Equal checks whether this view and another record have the same schema and
// equal values.
func (p View) Equal(other Record) bool {
	return Equal(p, other)
}

// EqualValues checks whether this view references exactly the given values.
func (p View) EqualValues(values ...any) bool {
	return EqualValues(p, values...)
}

func (p View) String() string {
	return String(p)
}
