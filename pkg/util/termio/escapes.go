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
package termio

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Colour identifies one of the eight standard terminal colours.
type Colour uint

const (
	// BLACK terminal colour
	BLACK Colour = iota
	// RED terminal colour
	RED
	// GREEN terminal colour
	GREEN
	// YELLOW terminal colour
	YELLOW
	// BLUE terminal colour
	BLUE
	// MAGENTA terminal colour
	MAGENTA
	// CYAN terminal colour
	CYAN
	// WHITE terminal colour
	WHITE
)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal, built up from a sequence of select graphic rendition codes.
type AnsiEscape struct {
	codes []string
}

// Reset constructs the escape which clears all formatting.
func Reset() AnsiEscape {
	return AnsiEscape{[]string{"0"}}
}

// Bold adds bold formatting to this escape.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with("1")
}

// Underline adds underlining to this escape.
func (p AnsiEscape) Underline() AnsiEscape {
	return p.with("4")
}

// Fg sets the foreground colour.
func (p AnsiEscape) Fg(col Colour) AnsiEscape {
	return p.with(fmt.Sprintf("%d", 30+col))
}

// Bg sets the background colour.
func (p AnsiEscape) Bg(col Colour) AnsiEscape {
	return p.with(fmt.Sprintf("%d", 40+col))
}

// Build constructs the final escape sequence, which is empty if no codes were
// given.
func (p AnsiEscape) Build() string {
	if len(p.codes) == 0 {
		return ""
	}
	//
	return "\033[" + strings.Join(p.codes, ";") + "m"
}

func (p AnsiEscape) with(code string) AnsiEscape {
	codes := make([]string, len(p.codes), len(p.codes)+1)
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, code)}
}

// IsTerminal reports whether standard output is attached to a terminal, in
// which case escapes are generally safe to use.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
