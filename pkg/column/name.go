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

import "fmt"

// Column is anything which can describe a column of a schema.
type Column interface {
	Descriptor() Descriptor
}

// Name is a column name token, which pairs the name of a column with the type
// of values held in it.  Tokens are typically declared once as package-level
// variables, and then used both to declare schemas and to bind typed fields.
type Name[T any] struct {
	id string
}

// NewName constructs a column name token for values of type T.
func NewName[T any](id string) Name[T] {
	return Name[T]{id}
}

// As returns a token for the same value type under a different name.  This is
// useful for spelling the target of a relabeling.
func (n Name[T]) As(id string) Name[T] {
	return Name[T]{id}
}

// Descriptor returns the column descriptor for this token.
func (n Name[T]) Descriptor() Descriptor {
	return Descriptor{n.id, TypeOf[T]()}
}

func (n Name[T]) String() string {
	return n.id
}

// Descriptor is a (name, value-type) pair describing a single column.
type Descriptor struct {
	name  string
	vtype Type
}

// NewDescriptor constructs a descriptor from a name and a type.
func NewDescriptor(name string, vtype Type) Descriptor {
	return Descriptor{name, vtype}
}

// Descriptor returns this descriptor, so that descriptors can be used wherever
// a Column is expected.
func (d Descriptor) Descriptor() Descriptor {
	return d
}

// Name returns the name of the described column.
func (d Descriptor) Name() string {
	return d.name
}

// Type returns the value type of the described column.
func (d Descriptor) Type() Type {
	return d.vtype
}

// Rename returns a descriptor for the same type under a different name.
func (d Descriptor) Rename(name string) Descriptor {
	return Descriptor{name, d.vtype}
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s:%s", d.name, d.vtype.String())
}
