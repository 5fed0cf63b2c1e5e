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
	"os"

	"github.com/consensys/go-coltab/pkg/table"
	"github.com/consensys/go-coltab/pkg/util/termio"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags]",
	Short: "print a sample table.",
	Long: `Construct a sample table and print it, optionally projecting
	its columns through a subset, dropping columns or relabeling them
	first.`,
	Run: func(cmd *cobra.Command, args []string) {
		nrows := GetUint(cmd, "rows")
		subset := GetStringSlice(cmd, "subset")
		drop := GetStringSlice(cmd, "drop")
		relabel := GetStringSlice(cmd, "relabel")
		maxWidth := GetUint(cmd, "max-width")
		noColour := GetFlag(cmd, "no-colour")
		//
		view, err := project(sampleTable(nrows, false).View(), subset, drop, relabel)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Size cells to fit the terminal, unless told otherwise.
		width, tty := termio.TerminalWidth()
		if maxWidth == 0 && tty {
			maxWidth = max(3, width/(1+view.Schema().Width()))
		} else if maxWidth == 0 {
			maxWidth = 64
		}
		//
		printer := table.NewPrinter().MaxCellWidth(maxWidth).AnsiEscapes(tty && !noColour)
		//
		if err := printer.Print(os.Stdout, view); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Uint("rows", 10, "number of rows in the sample table")
	showCmd.Flags().StringSlice("subset", nil, "columns to include (in order)")
	showCmd.Flags().StringSlice("drop", nil, "columns to exclude")
	showCmd.Flags().StringSlice("relabel", nil, "columns to rename, given as old=new")
	showCmd.Flags().Uint("max-width", 0, "maximum width of a cell (0 fits the terminal)")
	showCmd.Flags().Bool("no-colour", false, "disable ANSI escapes")
}
