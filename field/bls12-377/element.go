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
package bls12_377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element is an element of the BLS12-377 scalar field, held by value so that it
// can be stored directly in a column.  Equality is by value, via Equal, rather
// than on the Montgomery representation.
type Element struct {
	value fr.Element
}

// NewElement constructs the field element with the given numerical value.
func NewElement(value uint64) Element {
	return Element{fr.NewElement(value)}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res Element
	res.value.Add(&x.value, &y.value)
	//
	return res
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res Element
	res.value.Mul(&x.value, &y.value)
	//
	return res
}

// Equal checks whether x = y.
func (x Element) Equal(y Element) bool {
	return x.value.Equal(&y.value)
}

func (x Element) String() string {
	return x.value.String()
}
