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
package cmd

import (
	"reflect"
	"testing"

	bls12_377 "github.com/consensys/go-coltab/field/bls12-377"
)

func Test_Sample_01(t *testing.T) {
	tbl := sampleTable(4, false)
	//
	if tbl.Len() != 4 {
		t.Fatalf("expected 4 rows, got %d", tbl.Len())
	}
	// identifiers are deterministic and distinct
	other := sampleTable(4, true)
	//
	for i := uint(0); i < 4; i++ {
		id := fieldId.Get(tbl.Rows().At(i))
		//
		if id != fieldId.Get(other.Rows().At(i)) {
			t.Errorf("row %d: identifiers differ", i)
		} else if i > 0 && id == fieldId.Get(tbl.Rows().At(i-1)) {
			t.Errorf("row %d: duplicate identifier", i)
		}
	}
	//
	rest, err := tbl.Rows().At(3).Drop("id")
	if err != nil {
		t.Fatal(err)
	} else if !rest.EqualValues(int64(3), 1.5, bls12_377.NewElement(9), "row 3") {
		t.Errorf("unexpected row %s", rest)
	}
}

func Test_Sample_02(t *testing.T) {
	sumA, sumC := sumRows(sampleTable(5, false))
	//
	if sumA != 10 || !sumC.Equal(bls12_377.NewElement(30)) {
		t.Errorf("unexpected sums %d and %s", sumA, sumC)
	}
	// reserved tables never relocate
	if n := relocations(sampleTable(100, true)); n != 0 {
		t.Errorf("expected no relocations, got %d", n)
	}
}

func Test_Project_01(t *testing.T) {
	view, err := project(sampleTable(2, false).View(), []string{"label", "a", "b"}, []string{"b"},
		[]string{"label=name"})
	//
	if err != nil {
		t.Fatal(err)
	} else if !reflect.DeepEqual(view.Schema().Names(), []string{"name", "a"}) {
		t.Errorf("unexpected schema %s", view.Schema())
	} else if !view.Rows().At(1).EqualValues("row 1", int64(1)) {
		t.Errorf("unexpected row %s", view.Rows().At(1))
	}
}

func Test_Project_02(t *testing.T) {
	view := sampleTable(1, false).View()
	//
	if _, err := project(view, []string{"z"}, nil, nil); err == nil {
		t.Errorf("expected unknown column to be rejected")
	}
	//
	if _, err := project(view, nil, nil, []string{"a"}); err == nil {
		t.Errorf("expected malformed relabeling to be rejected")
	}
	//
	if _, err := project(view, nil, nil, []string{"a=b"}); err == nil {
		t.Errorf("expected clashing relabeling to be rejected")
	}
	//
	if _, err := parseRelabelings([]string{"a=x", "b=y"}); err != nil {
		t.Error(err)
	}
}
