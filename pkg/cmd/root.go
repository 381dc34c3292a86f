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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zqfield",
	Short: "A toolbox for arithmetic over prime fields.",
	Long:  "A toolbox for arithmetic over prime fields, including square roots, bitwise operators and encodings.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Fprint(cmd.OutOrStdout(), "zqfield ")
			if Version != "" {
				// Built via "make"
				fmt.Fprintf(cmd.OutOrStdout(), "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Fprintf(cmd.OutOrStdout(), "%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Fprintf(cmd.OutOrStdout(), "(unknown version)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().String("field", "BN254", "name of the field to use (e.g. BN254, BLS12_381, GF_13)")
	rootCmd.PersistentFlags().String("prime", "", "explicit prime modulus to use (overrides --field)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("ansi-escapes", true, "enable ANSI escapes when writing to a terminal")
	rootCmd.PersistentFlags().Bool("unsigned", false, "print elements as canonical (unsigned) values")
}
