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

// Vector provides the contiguous, growable storage for a single column.  All
// elements are held in one backing array which may be relocated when the
// vector grows beyond its capacity.  References obtained via Ref are pointers
// into the backing array and, hence, no longer address the vector's contents
// after a relocation.
type Vector interface {
	// Type returns the type of elements held in this vector.
	Type() Type
	// Len returns the number of elements in this vector.
	Len() uint
	// Cap returns the number of elements this vector can hold before its
	// backing array must be relocated.
	Cap() uint
	// Ref returns a reference (i.e. *T) to the element at a given index.
	Ref(index uint) any
	// Append a value onto the end of this vector.  The value must be accepted
	// by the vector's type, otherwise this will panic.
	Append(value any)
	// AppendRef appends a copy of the value held at a given reference.
	AppendRef(ref any)
	// Truncate this vector to a given length, which cannot exceed the current
	// length.
	Truncate(length uint)
	// Reserve ensures space for n further elements without relocation.  This
	// may itself relocate the backing array.
	Reserve(n uint)
	// Relocations returns the number of times the backing array has been
	// relocated whilst holding elements.
	Relocations() uint
}

// Values provides typed access to the backing array of a vector holding
// elements of type T.  The returned slice aliases the vector's storage and is
// only valid until the vector next relocates.  This returns false if the vector
// does not hold elements of type T.
func Values[T any](vec Vector) ([]T, bool) {
	if v, ok := vec.(*vector[T]); ok {
		return v.items, true
	}
	//
	return nil, false
}

type vector[T any] struct {
	vtype       *valueType[T]
	items       []T
	relocations uint
}

func (p *vector[T]) Type() Type {
	return p.vtype
}

func (p *vector[T]) Len() uint {
	return uint(len(p.items))
}

func (p *vector[T]) Cap() uint {
	return uint(cap(p.items))
}

func (p *vector[T]) Ref(index uint) any {
	return &p.items[index]
}

func (p *vector[T]) Append(value any) {
	p.push(value.(T))
}

func (p *vector[T]) AppendRef(ref any) {
	p.push(*ref.(*T))
}

func (p *vector[T]) Truncate(length uint) {
	if length > uint(len(p.items)) {
		panic(fmt.Sprintf("cannot truncate vector of length %d to %d", len(p.items), length))
	}
	// Clear truncated elements so they can be collected
	clear(p.items[length:])
	p.items = p.items[:length]
}

func (p *vector[T]) Reserve(n uint) {
	n += uint(len(p.items))
	//
	if n > uint(cap(p.items)) {
		items := make([]T, len(p.items), n)
		copy(items, p.items)
		p.relocate(items)
	}
}

func (p *vector[T]) Relocations() uint {
	return p.relocations
}

func (p *vector[T]) push(item T) {
	if len(p.items) < cap(p.items) {
		p.items = append(p.items, item)
		return
	}
	// Backing array is full, hence append will allocate.
	p.relocate(append(p.items, item))
}

func (p *vector[T]) relocate(items []T) {
	if len(p.items) > 0 {
		p.relocations++
	}
	//
	p.items = items
}
