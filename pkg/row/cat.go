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
	"github.com/consensys/go-coltab/pkg/column"
)

// Cat concatenates one or more records into a new row.  The schema of the row
// is the concatenation of each record's schema, in argument order, and its
// values are copies of each record's values.  Records sharing a column name
// cannot be concatenated.
func Cat(records ...Record) (*Row, error) {
	schemas := make([]*column.Schema, len(records))
	//
	for i, r := range records {
		schemas[i] = r.Schema()
	}
	//
	schema, err := column.Concat(schemas...)
	if err != nil {
		return nil, err
	}
	//
	cells := make([]any, 0, schema.Width())
	//
	for _, r := range records {
		for i := uint(0); i < r.Width(); i++ {
			vtype := r.Schema().Column(i).Type()
			cell := vtype.New()
			vtype.Copy(cell, r.Ref(i))
			cells = append(cells, cell)
		}
	}
	//
	return &Row{schema, cells}, nil
}
