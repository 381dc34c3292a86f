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

	"github.com/consensys/go-zqfield/pkg/util/random"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random [flags]",
	Short: "Sample random field elements.",
	Long: `Sample random field elements.  By default, the operating system's
	cryptographically strong generator is used.  When a seed is given, elements
	are instead derived deterministically from it.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			field = getField(cmd)
			count = getUint(cmd, "count")
			seed  = getString(cmd, "seed")
			src   = random.Crypto()
		)
		//
		if seed != "" {
			log.Debug("using deterministic source")
			//
			src = random.NewShake([]byte(seed))
		}
		//
		for i := uint(0); i < count; i++ {
			elem, err := field.Random(src)
			if err != nil {
				log.Error(err)
				os.Exit(3)
			}
			//
			fmt.Fprintln(cmd.OutOrStdout(), formatElement(cmd, field, elem))
		}
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().Uint("count", 1, "number of elements to sample")
	randomCmd.Flags().String("seed", "", "seed for deterministic sampling")
}
