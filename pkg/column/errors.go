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

import "errors"

// ErrDuplicateColumn indicates that a schema would contain the same column name
// more than once.  This arises when declaring a schema, relabeling columns onto
// an existing name, or concatenating schemas which share a name.
var ErrDuplicateColumn = errors.New("duplicate column")

// ErrUnknownColumn indicates that a column name was not found in a schema.
var ErrUnknownColumn = errors.New("unknown column")

// ErrTypeMismatch indicates that a value (or a column of another schema) does
// not have the value type of the column it was matched against.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrArityMismatch indicates that a sequence of values (or another schema) has
// a different number of columns than expected.
var ErrArityMismatch = errors.New("arity mismatch")
