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

	"github.com/consensys/go-zqfield/pkg/util/termio"
	"github.com/consensys/go-zqfield/pkg/zq"
	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params [flags]",
	Short: "Print the parameters derived for a given field.",
	Long: `Print the parameters derived for a given field, such as its bit length,
	smallest quadratic nonresidue and 2-adic decomposition.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		field := getField(cmd)
		// List named fields as well
		if getFlag(cmd, "list") {
			printFieldConfigs(cmd)
			return
		}
		//
		printParameters(cmd, field)
	},
}

func printParameters(cmd *cobra.Command, field *zq.Field) {
	var (
		table = termio.NewTablePrinter(2, 8)
		bold  = termio.AnsiEscape{}.Bold()
	)
	//
	table.SetRow(0, "modulus", field.Modulus().String())
	table.SetRow(1, "bits", fmt.Sprintf("%d", field.BitLength()))
	table.SetRow(2, "bytes", fmt.Sprintf("%d", field.ByteWidth()))
	table.SetRow(3, "mask", "0x"+field.Mask().Text(16))
	table.SetRow(4, "half", field.Half().String())
	table.SetRow(5, "nonresidue", field.NonResidue().String())
	table.SetRow(6, "2-adicity", fmt.Sprintf("%d", field.S()))
	table.SetRow(7, "odd part", field.T().String())
	//
	for i := uint(0); i < table.Height(); i++ {
		table.SetEscape(0, i, bold)
	}
	//
	table.AnsiEscapes(ansiEscapes(cmd))
	table.SetMaxWidth(1, getUint(cmd, "max-width"))
	table.Print(cmd.OutOrStdout())
}

func printFieldConfigs(cmd *cobra.Command) {
	table := termio.NewTablePrinter(3, uint(len(zq.FIELD_CONFIGS)))
	//
	for i, config := range zq.FIELD_CONFIGS {
		table.SetRow(uint(i), config.Name, config.Description, config.Modulus().String())
		table.SetEscape(0, uint(i), termio.AnsiEscape{}.Fg(termio.CYAN))
	}
	//
	table.AnsiEscapes(ansiEscapes(cmd))
	table.SetMaxWidth(2, getUint(cmd, "max-width"))
	table.Print(cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.Flags().Bool("list", false, "list all named fields")
	paramsCmd.Flags().Uint("max-width", 80, "maximum width of any value printed")
}
