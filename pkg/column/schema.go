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
package column

import (
	"fmt"
	"strings"
)

// Schema is an ordered sequence of uniquely named columns.  The order of
// columns determines positional operations (e.g. assignment from a sequence of
// values, or concatenation) whilst names are used for addressed operations
// (e.g. binding fields, subsetting or relabeling).  A schema is immutable once
// constructed.
type Schema struct {
	columns []Descriptor
	// Maps column names to their position in the schema.
	index map[string]uint
}

// Relabeling describes the renaming of a single column.
type Relabeling struct {
	From string
	To   string
}

// Rename constructs a relabeling from one column name to another.
func Rename(from string, to string) Relabeling {
	return Relabeling{from, to}
}

// NewSchema constructs a schema from a given sequence of columns.  This fails
// with ErrDuplicateColumn if two columns share the same name.
func NewSchema(columns ...Column) (*Schema, error) {
	descriptors := make([]Descriptor, len(columns))
	//
	for i, c := range columns {
		descriptors[i] = c.Descriptor()
	}
	//
	return newSchema(descriptors)
}

// MustSchema constructs a schema from a given sequence of columns, or panics.
// This is intended for schemas declared as package-level variables.
func MustSchema(columns ...Column) *Schema {
	schema, err := NewSchema(columns...)
	if err != nil {
		panic(err)
	}
	//
	return schema
}

func newSchema(columns []Descriptor) (*Schema, error) {
	index := make(map[string]uint, len(columns))
	//
	for i, c := range columns {
		if _, ok := index[c.name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.name)
		}
		//
		index[c.name] = uint(i)
	}
	//
	return &Schema{columns, index}, nil
}

// Width returns the number of columns in this schema.
func (p *Schema) Width() uint {
	return uint(len(p.columns))
}

// Column returns the descriptor of the ith column.
func (p *Schema) Column(index uint) Descriptor {
	return p.columns[index]
}

// Columns returns a copy of the column descriptors in this schema.
func (p *Schema) Columns() []Descriptor {
	columns := make([]Descriptor, len(p.columns))
	copy(columns, p.columns)
	//
	return columns
}

// Names returns the column names of this schema, in order.
func (p *Schema) Names() []string {
	names := make([]string, len(p.columns))
	//
	for i, c := range p.columns {
		names[i] = c.name
	}
	//
	return names
}

// IndexOf returns the position of the column with the given name, or false if
// no such column exists.
func (p *Schema) IndexOf(name string) (uint, bool) {
	index, ok := p.index[name]
	return index, ok
}

// Lookup returns the position of a given column in this schema.  This fails if
// either no column of that name exists, or it has a different type.
func (p *Schema) Lookup(column Column) (uint, error) {
	desc := column.Descriptor()
	//
	index, ok := p.index[desc.name]
	if !ok {
		return 0, fmt.Errorf("%w: %s not in %s", ErrUnknownColumn, desc.name, p)
	} else if ith := p.columns[index]; !SameType(ith.vtype, desc.vtype) {
		return 0, fmt.Errorf("%w: column %s has type %s, not %s", ErrTypeMismatch, desc.name, ith.vtype, desc.vtype)
	}
	//
	return index, nil
}

// Equal checks whether two schemas have the same columns (i.e. names and
// types) in the same order.
func (p *Schema) Equal(other *Schema) bool {
	if p == other {
		return true
	} else if other == nil || len(p.columns) != len(other.columns) {
		return false
	}
	//
	for i, c := range p.columns {
		o := other.columns[i]
		if c.name != o.name || !SameType(c.vtype, o.vtype) {
			return false
		}
	}
	//
	return true
}

// Subset returns the schema consisting of exactly the named columns, in the
// order requested, along with the position of each requested column in this
// schema.
func (p *Schema) Subset(names ...string) (*Schema, []uint, error) {
	indices := make([]uint, len(names))
	columns := make([]Descriptor, len(names))
	//
	for i, name := range names {
		index, ok := p.index[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s not in %s", ErrUnknownColumn, name, p)
		}
		//
		indices[i] = index
		columns[i] = p.columns[index]
	}
	// Duplicate requests are caught here.
	schema, err := newSchema(columns)
	//
	return schema, indices, err
}

// Drop returns the schema consisting of all columns except those named,
// preserving their relative order, along with the position of each remaining
// column in this schema.
func (p *Schema) Drop(names ...string) (*Schema, []uint, error) {
	dropped := make([]bool, len(p.columns))
	//
	for _, name := range names {
		index, ok := p.index[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s not in %s", ErrUnknownColumn, name, p)
		}
		//
		dropped[index] = true
	}
	//
	var (
		indices []uint
		columns []Descriptor
	)
	//
	for i, c := range p.columns {
		if !dropped[i] {
			indices = append(indices, uint(i))
			columns = append(columns, c)
		}
	}
	//
	schema, err := newSchema(columns)
	//
	return schema, indices, err
}

// Relabel returns a schema in which the given columns are renamed, whilst all
// other columns retain their names.  Every relabeled column must exist, and the
// resulting names must remain unique.
func (p *Schema) Relabel(relabelings ...Relabeling) (*Schema, error) {
	columns := make([]Descriptor, len(p.columns))
	copy(columns, p.columns)
	//
	for _, r := range relabelings {
		index, ok := p.index[r.From]
		if !ok {
			return nil, fmt.Errorf("%w: %s not in %s", ErrUnknownColumn, r.From, p)
		}
		//
		columns[index] = columns[index].Rename(r.To)
	}
	//
	return newSchema(columns)
}

// Concat returns the schema formed by concatenating the columns of each schema
// in order.  Schemas sharing a column name cannot be concatenated.
func Concat(schemas ...*Schema) (*Schema, error) {
	var columns []Descriptor
	//
	for _, s := range schemas {
		columns = append(columns, s.columns...)
	}
	//
	return newSchema(columns)
}

// Match determines, for each column of this schema, the position of the column
// with the same name in a given source schema.  The source schema may order its
// columns differently, but must have the same names with the same types.
func (p *Schema) Match(source *Schema) ([]uint, error) {
	if len(p.columns) != len(source.columns) {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", ErrArityMismatch, len(p.columns), len(source.columns))
	}
	//
	indices := make([]uint, len(p.columns))
	//
	for i, c := range p.columns {
		index, err := source.Lookup(c)
		if err != nil {
			return nil, err
		}
		//
		indices[i] = index
	}
	//
	return indices, nil
}

// Aligned checks whether a given source schema has the same column names as
// this schema, in the same positions and with the same types.  Aligned schemas
// can be assigned positionally from one to the other.
func (p *Schema) Aligned(source *Schema) error {
	if p == source {
		return nil
	} else if len(p.columns) != len(source.columns) {
		return fmt.Errorf("%w: expected %d columns, got %d", ErrArityMismatch, len(p.columns), len(source.columns))
	}
	//
	for i, c := range p.columns {
		o := source.columns[i]
		//
		if c.name != o.name {
			return fmt.Errorf("%w: expected column %s at position %d, got %s", ErrUnknownColumn, c.name, i, o.name)
		} else if !SameType(c.vtype, o.vtype) {
			return fmt.Errorf("%w: column %s has type %s, not %s", ErrTypeMismatch, c.name, c.vtype, o.vtype)
		}
	}
	//
	return nil
}

func (p *Schema) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, c := range p.columns {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(c.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
