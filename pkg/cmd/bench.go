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
	"fmt"

	bls12_377 "github.com/consensys/go-coltab/field/bls12-377"
	"github.com/consensys/go-coltab/pkg/table"
	"github.com/consensys/go-coltab/pkg/util"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "measure appending to and iterating over a table.",
	Long: `Construct a sample table row by row, then iterate over its rows.
	Timing and memory usage are reported with --verbose.`,
	Run: func(cmd *cobra.Command, args []string) {
		nrows := GetUint(cmd, "rows")
		reserve := GetFlag(cmd, "reserve")
		//
		stats := util.NewPerfStats()
		tbl := sampleTable(nrows, reserve)
		stats.Log(fmt.Sprintf("Appending %d rows", nrows))
		//
		stats = util.NewPerfStats()
		sumA, sumC := sumRows(tbl)
		stats.Log(fmt.Sprintf("Iterating %d rows", nrows))
		//
		fmt.Printf("%d rows, sum(a) = %d, sum(c) = %s, %d relocation(s)\n", tbl.Len(), sumA, sumC.String(),
			relocations(tbl))
	},
}

// Sum columns "a" and "c" over all rows of a sample table.
func sumRows(tbl *table.Table) (int64, bls12_377.Element) {
	var (
		sumA int64
		sumC bls12_377.Element
	)
	//
	for _, r := range tbl.Rows().All() {
		sumA += fieldA.Get(r)
		sumC = sumC.Add(fieldC.Get(r))
	}
	//
	return sumA, sumC
}

func relocations(tbl *table.Table) uint {
	var n uint
	//
	for i := uint(0); i < tbl.Schema().Width(); i++ {
		n += tbl.Column(i).Relocations()
	}
	//
	return n
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("rows", 1_000_000, "number of rows to append")
	benchCmd.Flags().Bool("reserve", false, "reserve space for all rows up front")
}
