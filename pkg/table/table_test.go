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
package table

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	bls12_377 "github.com/consensys/go-coltab/field/bls12-377"
	"github.com/consensys/go-coltab/pkg/column"
	"github.com/consensys/go-coltab/pkg/row"
)

// customObject is a non-primitive value type.
type customObject struct {
	a int
	b float32
}

func newCustomObject(a int) customObject {
	return customObject{a, float32(a) / 2.0}
}

func (c customObject) inc() customObject {
	return customObject{c.a + 1, c.b + 1}
}

var (
	colA = column.NewName[int64]("a")
	colB = column.NewName[float64]("b")
	colC = column.NewName[customObject]("c")
	// Schema shared by most tests
	abc    = column.MustSchema(colA, colB, colC)
	fieldA = row.MustBind(abc, colA)
	fieldB = row.MustBind(abc, colB)
	fieldC = row.MustBind(abc, colC)
)

func Test_Table_Append_01(t *testing.T) {
	table := New(abc)
	check_Len(t, table, 0)
	// insert a tuple
	table.Append(int64(1), 2.5, newCustomObject(3))
	check_Len(t, table, 1)
	check_Row(t, table, 0, int64(1), 2.5, newCustomObject(3))
	// insert a row
	r := row.MustNew(abc, int64(2), 3.5, newCustomObject(4))
	//
	if err := table.AppendRecord(r); err != nil {
		t.Fatal(err)
	}
	//
	check_Len(t, table, 2)
	check_Row(t, table, 0, int64(1), 2.5, newCustomObject(3))
	check_Row(t, table, 1, int64(2), 3.5, newCustomObject(4))
	// insert a view
	a, b, c := int64(3), 4.5, newCustomObject(5)
	//
	if err := table.AppendRecord(row.MustView(abc, &a, &b, &c)); err != nil {
		t.Fatal(err)
	}
	//
	check_Len(t, table, 3)
	check_Row(t, table, 0, int64(1), 2.5, newCustomObject(3))
	check_Row(t, table, 1, int64(2), 3.5, newCustomObject(4))
	check_Row(t, table, 2, int64(3), 4.5, newCustomObject(5))
	// the table holds copies
	a = 10
	check_Row(t, table, 2, int64(3), 4.5, newCustomObject(5))
}

func Test_Table_Append_02(t *testing.T) {
	table := New(abc)
	table.Append(int64(1), 2.5, newCustomObject(3))
	// records with columns in another order are matched by name
	cab := column.MustSchema(colC, colA, colB)
	//
	if err := table.AppendRecord(row.MustNew(cab, newCustomObject(4), int64(2), 3.5)); err != nil {
		t.Fatal(err)
	}
	// same source schema again (cached permutation)
	if err := table.AppendRecord(row.MustNew(cab, newCustomObject(5), int64(3), 4.5)); err != nil {
		t.Fatal(err)
	}
	// a table row can be appended to its own table
	if err := table.AppendRecord(table.Rows().At(0)); err != nil {
		t.Fatal(err)
	}
	//
	check_Len(t, table, 4)
	check_Row(t, table, 1, int64(2), 3.5, newCustomObject(4))
	check_Row(t, table, 2, int64(3), 4.5, newCustomObject(5))
	check_Row(t, table, 3, int64(1), 2.5, newCustomObject(3))
}

func Test_Table_Append_03(t *testing.T) {
	table := New(abc)
	table.Append(int64(1), 2.5, newCustomObject(3))
	// wrong type
	err := table.Append(int64(2), 3.5, 4)
	check_Error(t, err, column.ErrTypeMismatch)
	// wrong arity
	err = table.Append(int64(2), 3.5)
	check_Error(t, err, column.ErrArityMismatch)
	// unknown column
	ab := column.MustSchema(colA, colB, column.NewName[customObject]("d"))
	err = table.AppendRecord(row.MustNew(ab, int64(2), 3.5, newCustomObject(4)))
	check_Error(t, err, column.ErrUnknownColumn)
	// column with wrong type
	bad := column.MustSchema(colA, colB, column.NewName[int64]("c"))
	err = table.AppendRecord(row.MustNew(bad, int64(2), 3.5, int64(4)))
	check_Error(t, err, column.ErrTypeMismatch)
	//
	check_Len(t, table, 1)
	check_Row(t, table, 0, int64(1), 2.5, newCustomObject(3))
}

func Test_Table_Append_04(t *testing.T) {
	table := New(abc)
	table.Append(int64(1), 2.5, newCustomObject(3))
	// a record which fails part way through leaves no partial row behind
	err := table.AppendRecord(brokenRecord{abc})
	//
	if err == nil {
		t.Fatal("expected append of broken record to fail")
	}
	//
	check_Len(t, table, 1)
	//
	for i := uint(0); i < abc.Width(); i++ {
		if table.Column(i).Len() != 1 {
			t.Errorf("column %d has height %d after failed append", i, table.Column(i).Len())
		}
	}
	// table remains usable
	table.Append(int64(2), 3.5, newCustomObject(4))
	check_Len(t, table, 2)
	check_Row(t, table, 1, int64(2), 3.5, newCustomObject(4))
}

func Test_Table_Append_05(t *testing.T) {
	var (
		colF  = column.NewName[bls12_377.Element]("f")
		table = New(column.MustSchema(colA, colF))
	)
	//
	for i := uint64(0); i < 4; i++ {
		table.Append(int64(i), bls12_377.NewElement(i*i))
	}
	//
	check_Row(t, table, 3, int64(3), bls12_377.NewElement(9))
	//
	if !table.Rows().At(2).Equal(row.MustNew(table.Schema(), int64(2), bls12_377.NewElement(4))) {
		t.Errorf("unexpected row %s", table.Rows().At(2))
	}
}

func Test_Table_Rows_01(t *testing.T) {
	table := New(abc)
	a, b, c := int64(0), 1.5, newCustomObject(2)
	//
	for i := 0; i < 64; i++ {
		a, b, c = a+1, b+1, c.inc()
		table.Append(a, b, c)
	}
	//
	expectedA, expectedB, expectedC := int64(0), 1.5, newCustomObject(2)
	count := 0
	//
	for i, r := range table.Rows().All() {
		expectedA, expectedB, expectedC = expectedA+1, expectedB+1, expectedC.inc()
		//
		if uint(count) != i {
			t.Errorf("expected row index %d, got %d", count, i)
		}
		//
		if fieldA.Get(r) != expectedA || fieldB.Get(r) != expectedB || fieldC.Get(r) != expectedC {
			t.Errorf("row %d: unexpected %s", i, r)
		}
		//
		count++
	}
	//
	if count != 64 {
		t.Errorf("expected 64 rows, visited %d", count)
	}
}

func Test_Table_Rows_02(t *testing.T) {
	table := New(abc)
	//
	for i := 0; i < 8; i++ {
		table.Append(int64(i), float64(i), newCustomObject(i))
	}
	// sequences are restartable
	rows := table.Rows()
	//
	for n := 0; n < 2; n++ {
		iter := rows.Iter()
		//
		if iter.Count() != 8 {
			t.Errorf("expected 8 rows, got %d", iter.Count())
		}
		//
		for i := 0; iter.HasNext(); i++ {
			r := iter.Next()
			//
			if !r.EqualValues(int64(i), float64(i), newCustomObject(i)) {
				t.Errorf("row %d: unexpected %s", i, r)
			}
		}
	}
	// early exit
	for i := range rows.All() {
		if i == 2 {
			break
		}
	}
	// views write into the table
	fieldA.Set(rows.At(3), 100)
	check_Row(t, table, 3, int64(100), float64(3), newCustomObject(3))
	// copies do not
	copied := rows.At(4).Copy()
	fieldA.Set(copied, 100)
	check_Row(t, table, 4, int64(4), float64(4), newCustomObject(4))
	//
	if !rows.At(5).Equal(rows.At(5).Copy()) {
		t.Errorf("expected row to equal its copy")
	}
}

func Test_Table_Rows_03(t *testing.T) {
	table := New(abc)
	table.Append(int64(1), 2.5, newCustomObject(3))
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out-of-bounds row")
		}
	}()
	//
	table.Rows().At(1)
}

func Test_Table_Stale_01(t *testing.T) {
	table := NewWithCapacity(abc, 1)
	table.Append(int64(1), 2.5, newCustomObject(3))
	//
	rows := table.Rows()
	view := rows.At(0)
	//
	if rows.Stale() {
		t.Errorf("rows stale before relocation")
	}
	// exceeds capacity, hence relocates
	table.Append(int64(2), 3.5, newCustomObject(4))
	//
	if !rows.Stale() {
		t.Errorf("rows not stale after relocation")
	}
	// writes through a stale view are not observed by the table
	fieldA.Set(view, 100)
	check_Row(t, table, 0, int64(1), 2.5, newCustomObject(3))
	// views produced afterwards address the current storage
	fieldA.Set(rows.At(0), 200)
	check_Row(t, table, 0, int64(200), 2.5, newCustomObject(3))
	// fresh sequences are not stale
	if table.Rows().Stale() {
		t.Errorf("fresh rows stale")
	}
}

func Test_Table_Stale_02(t *testing.T) {
	table := New(abc)
	table.Append(int64(1), 2.5, newCustomObject(3))
	table.Reserve(16)
	//
	rows := table.Rows()
	//
	for i := 0; i < 16; i++ {
		table.Append(int64(i), float64(i), newCustomObject(i))
	}
	//
	if rows.Stale() {
		t.Errorf("rows stale after reserved appends")
	}
	// existing sequences retain their original length
	if rows.Len() != 1 || table.Rows().Len() != 17 {
		t.Errorf("unexpected lengths %d and %d", rows.Len(), table.Rows().Len())
	}
	//
	fieldA.Set(rows.At(0), 100)
	check_Row(t, table, 0, int64(100), 2.5, newCustomObject(3))
}

func Test_Table_View_01(t *testing.T) {
	table := New(abc)
	a, b, c := int64(0), 1.5, newCustomObject(2)
	//
	for i := 0; i < 64; i++ {
		a, b, c = a+1, b+1, c.inc()
		table.Append(a, b, c)
	}
	//
	view := table.View()
	//
	relabeled, err := view.Relabel(column.Rename("a", "a-new"), column.Rename("c", "c-new"))
	if err != nil {
		t.Fatal(err)
	}
	//
	if relabeled.Len() != view.Len() || relabeled.Len() != 64 {
		t.Fatalf("unexpected lengths %d and %d", relabeled.Len(), view.Len())
	}
	//
	var (
		newA = row.MustBind(relabeled.Schema(), colA.As("a-new"))
		newB = row.MustBind(relabeled.Schema(), colB)
		newC = row.MustBind(relabeled.Schema(), colC.As("c-new"))
	)
	//
	for i := uint(0); i < relabeled.Len(); i++ {
		base := view.Rows().At(i)
		r := relabeled.Rows().At(i)
		//
		if newA.Ref(r) != fieldA.Ref(base) || newB.Ref(r) != fieldB.Ref(base) || newC.Ref(r) != fieldC.Ref(base) {
			t.Errorf("row %d: relabeled view does not alias table", i)
		}
	}
}

func Test_Table_View_02(t *testing.T) {
	table := New(abc)
	table.Append(int64(1), 2.5, newCustomObject(3))
	table.Append(int64(2), 3.5, newCustomObject(4))
	//
	view, err := table.View().Subset("c", "a")
	if err != nil {
		t.Fatal(err)
	}
	//
	if !view.Rows().At(1).EqualValues(newCustomObject(4), int64(2)) {
		t.Errorf("unexpected row %s", view.Rows().At(1))
	}
	// write through the projection
	if err := view.Rows().At(0).Assign(newCustomObject(9), int64(8)); err != nil {
		t.Fatal(err)
	}
	//
	check_Row(t, table, 0, int64(8), 2.5, newCustomObject(9))
	// projections compose
	inner, err := view.Drop("c")
	if err != nil {
		t.Fatal(err)
	} else if !inner.Schema().Equal(column.MustSchema(colA)) {
		t.Errorf("unexpected schema %s", inner.Schema())
	} else if inner.Column(0) != table.Column(0) {
		t.Errorf("projection does not address table column")
	}
	// views observe subsequent appends
	table.Append(int64(3), 4.5, newCustomObject(5))
	//
	if inner.Len() != 3 || !inner.Rows().At(2).EqualValues(int64(3)) {
		t.Errorf("view did not observe append")
	}
	//
	_, err = view.Subset("b")
	check_Error(t, err, column.ErrUnknownColumn)
	//
	_, err = table.View().Relabel(column.Rename("a", "b"))
	check_Error(t, err, column.ErrDuplicateColumn)
}

func Test_Table_Print_01(t *testing.T) {
	table := New(column.MustSchema(colA, colB))
	table.Append(int64(1), 2.5)
	table.Append(int64(10), 3.0)
	//
	check_Print(t, NewPrinter().AnsiEscapes(false), table.View(), "   |  a |   b |\n 0 |  1 | 2.5 |\n 1 | 10 |   3 |\n")
	check_Print(t, NewPrinter().AnsiEscapes(false).Start(1), table.View(), "   |  a | b |\n 1 | 10 | 3 |\n")
	check_Print(t, NewPrinter().AnsiEscapes(false).End(0), table.View(), "  | a | b |\n")
}

func Test_Table_Print_02(t *testing.T) {
	table := New(column.MustSchema(column.NewName[string]("label")))
	table.Append("abcdefgh")
	//
	view, err := table.View().Relabel(column.Rename("label", "l"))
	if err != nil {
		t.Fatal(err)
	}
	//
	check_Print(t, NewPrinter().AnsiEscapes(false).MaxCellWidth(5), view, "   |     l |\n 0 | abc.. |\n")
}

// ===================================================================
// Test Helpers
// ===================================================================

// brokenRecord claims the shared schema, but cannot supply its last column.
type brokenRecord struct {
	schema *column.Schema
}

func (p brokenRecord) Schema() *column.Schema {
	return p.schema
}

func (p brokenRecord) Width() uint {
	return p.schema.Width()
}

func (p brokenRecord) Ref(index uint) any {
	switch index {
	case 0:
		v := int64(-1)
		return &v
	case 1:
		v := -1.0
		return &v
	default:
		return nil
	}
}

func check_Len(t *testing.T, table *Table, expected uint) {
	t.Helper()
	//
	if table.Len() != expected {
		t.Errorf("expected %d rows, got %d", expected, table.Len())
	}
}

func check_Row(t *testing.T, table *Table, index uint, values ...any) {
	t.Helper()
	//
	actual := table.Rows().At(index)
	//
	if !actual.EqualValues(values...) {
		t.Errorf("row %d: expected %v, got %s", index, values, actual)
	}
}

func check_Print(t *testing.T, printer *Printer, view View, expected string) {
	t.Helper()
	//
	var builder strings.Builder
	//
	if err := printer.Print(&builder, view); err != nil {
		t.Fatal(err)
	} else if builder.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, builder.String())
	}
}

func check_Error(t *testing.T, err error, expected error) {
	t.Helper()
	//
	if err == nil {
		t.Errorf("expected error %s, got none", expected)
	} else if !errors.Is(err, expected) {
		t.Errorf("expected error %s, got %s", expected, err)
	}
}

func (c customObject) String() string {
	return fmt.Sprintf("<customObject a=%d, b=%g>", c.a, c.b)
}
