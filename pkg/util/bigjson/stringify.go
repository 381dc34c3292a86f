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
package bigjson

import "math/big"

// Stringify converts a value into a tree built only from JSON-compatible Go
// values.  Every scalar becomes its base-10 string, sequences become []any and
// mappings become map[string]any.  Values of kind OTHER are returned as is.
func Stringify(v Value) any {
	switch v.kind {
	case SCALAR:
		return v.scalar.Text(10)
	case SEQUENCE:
		items := make([]any, len(v.items))
		//
		for i, item := range v.items {
			items[i] = Stringify(item)
		}
		//
		return items
	case MAPPING:
		entries := make(map[string]any, len(v.entries))
		//
		for k, item := range v.entries {
			entries[k] = Stringify(item)
		}
		//
		return entries
	default:
		return v.other
	}
}

// Unstringify reverses Stringify.  Any string consisting solely of decimal
// digits is restored as a scalar.  Observe that this means a digit-only string
// which was never intended as an integer is converted as well; there is no way
// to distinguish the two cases after stringification.
func Unstringify(o any) Value {
	switch o := o.(type) {
	case string:
		if isDecimal(o) {
			var n big.Int
			// Cannot fail, since the string is known to be decimal.
			n.SetString(o, 10)
			//
			return Value{kind: SCALAR, scalar: &n}
		}
		//
		return Other(o)
	case []any:
		items := make([]Value, len(o))
		//
		for i, item := range o {
			items[i] = Unstringify(item)
		}
		//
		return Sequence(items...)
	case map[string]any:
		entries := make(map[string]Value, len(o))
		//
		for k, item := range o {
			entries[k] = Unstringify(item)
		}
		//
		return Mapping(entries)
	default:
		return Other(o)
	}
}

// isDecimal checks whether a string matches ^[0-9]+$
func isDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}
	//
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	//
	return true
}
