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

// Field provides typed access to a single named column of records with a given
// schema.  The column name is resolved to a position once, when the field is
// bound, such that accessing a record through the field involves no name
// lookup.
type Field[T any] struct {
	name   column.Name[T]
	schema *column.Schema
	index  uint
}

// Bind resolves a column name against a schema, producing a field for
// accessing that column in any record of the schema.  This fails if the schema
// has no such column, or the column holds values of a different type.
func Bind[T any](schema *column.Schema, name column.Name[T]) (Field[T], error) {
	index, err := schema.Lookup(name)
	if err != nil {
		return Field[T]{}, err
	}
	//
	return Field[T]{name, schema, index}, nil
}

// MustBind resolves a column name against a schema, or panics.
func MustBind[T any](schema *column.Schema, name column.Name[T]) Field[T] {
	field, err := Bind(schema, name)
	if err != nil {
		panic(err)
	}
	//
	return field
}

// Name returns the column name token of this field.
func (f Field[T]) Name() column.Name[T] {
	return f.name
}

// Index returns the position of this field's column within its schema.
func (f Field[T]) Index() uint {
	return f.index
}

// Ref returns a reference to this field's slot in a given record.  For a view,
// this is a reference into the storage it aliases; for a row, it is a
// reference into the row itself.  The record must have the schema this field
// was bound against, otherwise this panics.
func (f Field[T]) Ref(r Record) *T {
	if schema := r.Schema(); schema != f.schema && !schema.Equal(f.schema) {
		panic(fmt.Sprintf("field %s bound to schema %s, not %s", f.name, f.schema, schema))
	}
	//
	return r.Ref(f.index).(*T)
}

// Get returns the value of this field in a given record.
func (f Field[T]) Get(r Record) T {
	return *f.Ref(r)
}

// Set the value of this field in a given record.
func (f Field[T]) Set(r Record, value T) {
	*f.Ref(r) = value
}
