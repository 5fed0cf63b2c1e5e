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

// Destructuring helpers ValuesN and RefsN are generated by internal/generator.

func checkArity(r Record, n uint) error {
	if r.Width() != n {
		return fmt.Errorf("%w: cannot destructure %d columns into %d", column.ErrArityMismatch, r.Width(), n)
	}
	//
	return nil
}

func refAt[T any](r Record, index uint) (*T, error) {
	if ref, ok := r.Ref(index).(*T); ok {
		return ref, nil
	}
	//
	ith := r.Schema().Column(index)
	//
	return nil, fmt.Errorf("%w: column %s has type %s", column.ErrTypeMismatch, ith.Name(), ith.Type())
}
