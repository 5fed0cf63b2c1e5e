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
	"github.com/consensys/go-coltab/pkg/column"
)

// View is a non-owning view of a table, presenting some or all of its columns
// (possibly reordered and/or renamed).  A view holds no data of its own: its
// rows address the underlying table's columns directly.  Views remain valid as
// the table grows, and always reflect the table's current height.
type View struct {
	table  *Table
	schema *column.Schema
	// Column in the underlying table for each column of this view.
	indices []uint
}

// Schema returns the schema of this view.
func (p View) Schema() *column.Schema {
	return p.schema
}

// Len returns the number of rows in this view, which is that of the underlying
// table.
func (p View) Len() uint {
	return p.table.height
}

// Column returns the vector holding the ith column of this view.
func (p View) Column(index uint) column.Vector {
	return p.table.columns[p.indices[index]]
}

// Rows returns the sequence of rows currently visible through this view.
func (p View) Rows() Rows {
	columns := make([]column.Vector, len(p.indices))
	//
	for i, index := range p.indices {
		columns[i] = p.table.columns[index]
	}
	//
	return newRows(p.schema, columns, p.table.height)
}

// Relabel returns a view over the same columns, where the given columns are
// renamed.
func (p View) Relabel(relabelings ...column.Relabeling) (View, error) {
	schema, err := p.schema.Relabel(relabelings...)
	if err != nil {
		return View{}, err
	}
	//
	return View{p.table, schema, p.indices}, nil
}

// Subset returns a view over exactly the named columns, in the order given.
// Naming a column more than once is rejected with column.ErrDuplicateColumn.
func (p View) Subset(names ...string) (View, error) {
	schema, indices, err := p.schema.Subset(names...)
	if err != nil {
		return View{}, err
	}
	//
	return View{p.table, schema, p.compose(indices)}, nil
}

// Drop returns a view over all columns except those named.
func (p View) Drop(names ...string) (View, error) {
	schema, indices, err := p.schema.Drop(names...)
	if err != nil {
		return View{}, err
	}
	//
	return View{p.table, schema, p.compose(indices)}, nil
}

// Map positions in this view's schema to columns of the underlying table.
func (p View) compose(indices []uint) []uint {
	result := make([]uint, len(indices))
	//
	for i, index := range indices {
		result[i] = p.indices[index]
	}
	//
	return result
}
