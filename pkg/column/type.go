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
	"reflect"
)

// Type provides the operations needed to store, copy, compare and print the
// values of a column without knowing their static type.  A Type is constructed
// once, when a column is declared, and all references passed to it are pointers
// (i.e. *T) to values of the underlying type T.
type Type interface {
	fmt.Stringer
	// Reflect returns the underlying Go type.
	Reflect() reflect.Type
	// Accepts determines whether a given value has exactly this type.
	Accepts(value any) bool
	// AcceptsRef determines whether a given reference is a non-nil pointer to
	// a value of this type.
	AcceptsRef(ref any) bool
	// New allocates a fresh zero value, returning a reference to it.
	New() any
	// Load reads the value held at a given reference.
	Load(ref any) any
	// Store writes a value (which must be accepted by this type) through a
	// given reference.
	Store(ref any, value any)
	// Copy the value held at one reference into another.
	Copy(dst any, src any)
	// Equal compares the values held at two references.
	Equal(lhs any, rhs any) bool
	// EqualValue compares the value held at a reference against a given value.
	// A value of the wrong type is never equal.
	EqualValue(ref any, value any) bool
	// Format returns a human-readable rendering of the value held at a given
	// reference.
	Format(ref any) string
	// NewVector constructs an empty growable vector of this type with a given
	// initial capacity.
	NewVector(capacity uint) Vector
}

// TypeOf returns the Type for values of type T.  Equality for T is determined
// here: an Equal(T) method is used when available, followed by an Equal(*T)
// method on the pointer type, then Go's == operator for comparable types and,
// finally, reflect.DeepEqual.
func TypeOf[T any]() Type {
	return newValueType[T]()
}

// SameType checks whether two types describe the same underlying Go type.
func SameType(lhs Type, rhs Type) bool {
	return lhs.Reflect() == rhs.Reflect()
}

type valueType[T any] struct {
	rtype reflect.Type
	equal func(*T, *T) bool
}

func newValueType[T any]() *valueType[T] {
	rtype := reflect.TypeFor[T]()
	return &valueType[T]{rtype, equalityOf[T](rtype)}
}

func equalityOf[T any](rtype reflect.Type) func(*T, *T) bool {
	var zero T
	//
	if _, ok := any(zero).(interface{ Equal(T) bool }); ok {
		return func(lhs *T, rhs *T) bool {
			return any(*lhs).(interface{ Equal(T) bool }).Equal(*rhs)
		}
	} else if _, ok := any(&zero).(interface{ Equal(*T) bool }); ok {
		return func(lhs *T, rhs *T) bool {
			return any(lhs).(interface{ Equal(*T) bool }).Equal(rhs)
		}
	} else if strictlyComparable(rtype) {
		return func(lhs *T, rhs *T) bool {
			return any(*lhs) == any(*rhs)
		}
	}
	// Fall back on a structural comparison
	return func(lhs *T, rhs *T) bool {
		return reflect.DeepEqual(*lhs, *rhs)
	}
}

// Check whether == can be applied to any two values of a given type without
// panicking.  Interfaces (including those nested within structs or arrays) are
// excluded, since their dynamic values may not be comparable.
func strictlyComparable(rtype reflect.Type) bool {
	switch rtype.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return strictlyComparable(rtype.Elem())
	case reflect.Struct:
		for i := 0; i < rtype.NumField(); i++ {
			if !strictlyComparable(rtype.Field(i).Type) {
				return false
			}
		}
		//
		return true
	default:
		return rtype.Comparable()
	}
}

func (p *valueType[T]) String() string {
	return p.rtype.String()
}

func (p *valueType[T]) Reflect() reflect.Type {
	return p.rtype
}

func (p *valueType[T]) Accepts(value any) bool {
	_, ok := value.(T)
	return ok
}

func (p *valueType[T]) AcceptsRef(ref any) bool {
	ptr, ok := ref.(*T)
	return ok && ptr != nil
}

func (p *valueType[T]) New() any {
	return new(T)
}

func (p *valueType[T]) Load(ref any) any {
	return *ref.(*T)
}

func (p *valueType[T]) Store(ref any, value any) {
	*ref.(*T) = value.(T)
}

func (p *valueType[T]) Copy(dst any, src any) {
	*dst.(*T) = *src.(*T)
}

func (p *valueType[T]) Equal(lhs any, rhs any) bool {
	return p.equal(lhs.(*T), rhs.(*T))
}

func (p *valueType[T]) EqualValue(ref any, value any) bool {
	if val, ok := value.(T); ok {
		return p.equal(ref.(*T), &val)
	}
	//
	return false
}

func (p *valueType[T]) Format(ref any) string {
	return fmt.Sprint(*ref.(*T))
}

func (p *valueType[T]) NewVector(capacity uint) Vector {
	return &vector[T]{p, make([]T, 0, capacity), 0}
}
