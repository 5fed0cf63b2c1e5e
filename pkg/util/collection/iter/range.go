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
package iter

// rangeIterator visits each index in a half-open interval [start, end).
type rangeIterator struct {
	index uint
	end   uint
}

// NewRangeIterator constructs an iterator over the indices of the half-open
// interval [start, end).
func NewRangeIterator(start uint, end uint) Iterator[uint] {
	return &rangeIterator{start, max(start, end)}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *rangeIterator) HasNext() bool {
	return p.index < p.end
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *rangeIterator) Next() uint {
	if p.index >= p.end {
		panic("iterator out-of-bounds")
	}
	//
	next := p.index
	p.index++

	return next
}

// Append another iterator onto the end of this iterator.  Thus, when all
// items are visited in this iterator, iteration continues into the other.
//
//nolint:revive
func (p *rangeIterator) Append(iter Iterator[uint]) Iterator[uint] {
	return NewAppendIterator(p, iter)
}

// Clone creates a copy of this iterator at the given cursor position.
// Modifying the clone (i.e. by calling Next) iterator will not modify the
// original.
//
//nolint:revive
func (p *rangeIterator) Clone() Iterator[uint] {
	return &rangeIterator{p.index, p.end}
}

// Collect allocates a new array containing all items of this iterator.
// This drains the iterator.
//
//nolint:revive
func (p *rangeIterator) Collect() []uint {
	items := make([]uint, 0, p.Count())
	//
	for ; p.index < p.end; p.index++ {
		items = append(items, p.index)
	}
	//
	return items
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *rangeIterator) Count() uint {
	return p.end - p.index
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *rangeIterator) Find(predicate Predicate[uint]) (uint, bool) {
	return Find(p, predicate)
}

// Nth returns the nth item in this iterator, skipping directly to it.
//
//nolint:revive
func (p *rangeIterator) Nth(n uint) uint {
	if n >= p.Count() {
		panic("iterator out-of-bounds")
	}
	//
	p.index += n

	return p.Next()
}
