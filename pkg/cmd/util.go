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

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-zqfield/pkg/util"
	"github.com/consensys/go-zqfield/pkg/util/termio"
	"github.com/consensys/go-zqfield/pkg/zq"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the field selected on the command line, where an explicit prime
// takes precedence over a named field.
func getField(cmd *cobra.Command) *zq.Field {
	var (
		field *zq.Field
		err   error
		prime = getString(cmd, "prime")
		name  = getString(cmd, "field")
		stats = util.NewPerfStats()
	)
	//
	if prime != "" {
		field, err = zq.Parse(prime)
	} else if config := zq.GetConfig(name); config != nil {
		field, err = config.Field()
	} else {
		err = errors.Newf("unknown field \"%s\"", name)
	}
	// Handle error
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	stats.Log("constructing field")
	log.Debugf("using field %s", field.String())
	//
	return field
}

// Parse a list of element literals, reporting any which is malformed.
func parseElements(field *zq.Field, args []string) []zq.Element {
	elems := make([]zq.Element, len(args))
	//
	for i, arg := range args {
		elem, err := field.FromString(arg)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		elems[i] = elem
	}
	//
	return elems
}

// Render an element either in signed or unsigned form, depending on the flags
// given.
func formatElement(cmd *cobra.Command, field *zq.Field, elem zq.Element) string {
	if getFlag(cmd, "unsigned") {
		return elem.String()
	}
	//
	return field.Text(elem, 10)
}

// Determine whether ANSI escapes should be used for output.
func ansiEscapes(cmd *cobra.Command) bool {
	return getFlag(cmd, "ansi-escapes") && termio.IsTerminal()
}
