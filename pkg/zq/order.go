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
package zq

import "math/big"

// Signed returns the signed interpretation of x, where values above p/2 are
// regarded as negative, i.e. x - p.
func (f *Field) Signed(x Element) *big.Int {
	f.check(x)
	//
	if x.value.Cmp(f.half) > 0 {
		return new(big.Int).Sub(x.value, f.p)
	}
	//
	return new(big.Int).Set(x.value)
}

// Compare x and y under the signed interpretation, returning -1 if x < y, 0 if
// x == y and 1 if x > y.
func (f *Field) Compare(x, y Element) int {
	return f.Signed(x).Cmp(f.Signed(y))
}

// Lt checks x < y under the signed interpretation.
func (f *Field) Lt(x, y Element) bool {
	return f.Compare(x, y) < 0
}

// Gt checks x > y under the signed interpretation.
func (f *Field) Gt(x, y Element) bool {
	return f.Compare(x, y) > 0
}

// Leq checks x <= y under the signed interpretation.
func (f *Field) Leq(x, y Element) bool {
	return f.Compare(x, y) <= 0
}

// Geq checks x >= y under the signed interpretation.
func (f *Field) Geq(x, y Element) bool {
	return f.Compare(x, y) >= 0
}

// Text renders x in the given base under the signed interpretation, such that
// values above p/2 are written as -(p-x).
func (f *Field) Text(x Element, base int) string {
	f.check(x)
	//
	if x.value.Cmp(f.half) > 0 {
		return "-" + new(big.Int).Sub(f.p, x.value).Text(base)
	}
	//
	return x.value.Text(base)
}
