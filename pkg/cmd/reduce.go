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
	"io"
	"os"

	"github.com/consensys/go-zqfield/pkg/util"
	"github.com/consensys/go-zqfield/pkg/util/bigjson"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce [flags] [json_file]",
	Short: "Reduce all big integers within a JSON document into the field.",
	Long: `Reduce all big integers within a JSON document into the field.  Big
	integers are strings consisting only of decimal digits, and are written back
	in the same form.  When no file is given, the document is read from
	standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			field = getField(cmd)
			data  []byte
			err   error
		)
		//
		switch len(args) {
		case 0:
			data, err = io.ReadAll(cmd.InOrStdin())
		case 1:
			data, err = os.ReadFile(args[0])
		default:
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		value, err := bigjson.Unmarshal(data)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		value = field.ReduceValue(value)
		stats.Log("reducing document")
		//
		if getFlag(cmd, "indent") {
			data, err = bigjson.MarshalIndent(value, "  ")
		} else {
			data, err = bigjson.Marshal(value)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	},
}

func init() {
	rootCmd.AddCommand(reduceCmd)
	reduceCmd.Flags().Bool("indent", false, "indent the JSON written")
}
