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
	"strings"

	"github.com/consensys/go-coltab/pkg/column"
)

// Record abstracts the notion of something row-like: one slot per column of a
// schema, where each slot is addressed by a reference (i.e. *T) to the storage
// holding its value.  Both owning rows and non-owning views are records.
type Record interface {
	// Schema returns the schema of this record.
	Schema() *column.Schema
	// Width returns the number of columns in this record.
	Width() uint
	// Ref returns a reference to the storage of the ith column.
	Ref(index uint) any
}

// Equal checks whether two records have the same schema and, if so, whether
// every column holds equal values pairwise.
func Equal(lhs Record, rhs Record) bool {
	schema := lhs.Schema()
	//
	if !schema.Equal(rhs.Schema()) {
		return false
	}
	//
	for i := uint(0); i < schema.Width(); i++ {
		if !schema.Column(i).Type().Equal(lhs.Ref(i), rhs.Ref(i)) {
			return false
		}
	}
	//
	return true
}

// EqualValues checks whether a record holds exactly the given sequence of
// values, in column order.
func EqualValues(r Record, values ...any) bool {
	schema := r.Schema()
	//
	if uint(len(values)) != schema.Width() {
		return false
	}
	//
	for i, v := range values {
		if !schema.Column(uint(i)).Type().EqualValue(r.Ref(uint(i)), v) {
			return false
		}
	}
	//
	return true
}

// String returns a human-readable rendering of a record, such as "(a=1, b=2.5)".
func String(r Record) string {
	var (
		builder strings.Builder
		schema  = r.Schema()
	)
	//
	builder.WriteString("(")
	//
	for i := uint(0); i < schema.Width(); i++ {
		ith := schema.Column(i)
		//
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(ith.Name())
		builder.WriteString("=")
		builder.WriteString(ith.Type().Format(r.Ref(i)))
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// Check a sequence of values can be assigned positionally to a given schema.
func checkValues(schema *column.Schema, values []any) error {
	if uint(len(values)) != schema.Width() {
		return fmt.Errorf("%w: expected %d values, got %d", column.ErrArityMismatch, schema.Width(), len(values))
	}
	//
	for i, v := range values {
		ith := schema.Column(uint(i))
		//
		if !ith.Type().Accepts(v) {
			return fmt.Errorf("%w: column %s has type %s, not %T", column.ErrTypeMismatch, ith.Name(), ith.Type(), v)
		}
	}
	//
	return nil
}

// Assign a sequence of values to a record, column by column.  All values are
// checked before any column is written.
func assign(dst Record, values []any) error {
	schema := dst.Schema()
	//
	if err := checkValues(schema, values); err != nil {
		return err
	}
	//
	for i, v := range values {
		schema.Column(uint(i)).Type().Store(dst.Ref(uint(i)), v)
	}
	//
	return nil
}

// Assign the values of one record to another, column by column.  The source
// must have the same column names in the same positions as the destination.
func assignFrom(dst Record, src Record) error {
	schema := dst.Schema()
	//
	if err := schema.Aligned(src.Schema()); err != nil {
		return err
	}
	//
	for i := uint(0); i < schema.Width(); i++ {
		schema.Column(i).Type().Copy(dst.Ref(i), src.Ref(i))
	}
	//
	return nil
}

// Read the values of every column of a record into a fresh array.
func values(r Record) []any {
	schema := r.Schema()
	values := make([]any, schema.Width())
	//
	for i := range values {
		values[i] = schema.Column(uint(i)).Type().Load(r.Ref(uint(i)))
	}
	//
	return values
}

// Read the references of every column of a record into a fresh array.
func refs(r Record) []any {
	refs := make([]any, r.Width())
	//
	for i := range refs {
		refs[i] = r.Ref(uint(i))
	}
	//
	return refs
}

// Project out the given columns of a record, producing a view over the same
// storage.
func project(r Record, schema *column.Schema, indices []uint) View {
	refs := make([]any, len(indices))
	//
	for i, index := range indices {
		refs[i] = r.Ref(index)
	}
	//
	return View{schema, refs}
}

func subset(r Record, names []string) (View, error) {
	schema, indices, err := r.Schema().Subset(names...)
	if err != nil {
		return View{}, err
	}
	//
	return project(r, schema, indices), nil
}

func drop(r Record, names []string) (View, error) {
	schema, indices, err := r.Schema().Drop(names...)
	if err != nil {
		return View{}, err
	}
	//
	return project(r, schema, indices), nil
}

func relabel(r Record, relabelings []column.Relabeling) (View, error) {
	schema, err := r.Schema().Relabel(relabelings...)
	if err != nil {
		return View{}, err
	}
	// Relabeling retains every reference in place
	return View{schema, refs(r)}, nil
}
