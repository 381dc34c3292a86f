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
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-zqfield/pkg/util/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] value",
	Short: "Encode a field element as a fixed-width byte string.",
	Long: `Encode a field element as a fixed-width byte string, printed in
	hexadecimal.  The value is first reduced into the field.  By default, the
	width is the number of bytes needed for the modulus.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			field = getField(cmd)
			elem  = parseElements(field, args)[0]
			width = getUint(cmd, "width")
			bytes []byte
			err   error
		)
		//
		if width == 0 {
			width = field.ByteWidth()
		}
		//
		if getFlag(cmd, "little-endian") {
			bytes, err = word.PutLittleEndian(elem.BigInt(), width)
		} else {
			bytes, err = word.PutBigEndian(elem.BigInt(), width)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(bytes))
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] hex",
	Short: "Decode a byte string into a field element.",
	Long: `Decode a byte string (given in hexadecimal) into a field element.  The
	decoded integer is reduced into the field.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var field = getField(cmd)
		//
		bytes, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		elem := field.FromBytes(bytes, getFlag(cmd, "little-endian"))
		//
		fmt.Fprintln(cmd.OutOrStdout(), formatElement(cmd, field, elem))
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	encodeCmd.Flags().Uint("width", 0, "number of bytes to encode into (0 for default)")
	encodeCmd.Flags().Bool("little-endian", false, "use little endian byte order")
	decodeCmd.Flags().Bool("little-endian", false, "use little endian byte order")
}
