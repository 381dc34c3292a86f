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

// Sqrt computes a square root r of n, such that r*r == n, using the
// Tonelli-Shanks algorithm.  Of the two roots r and p-r, the one in the lower
// half (i.e. non-negative under the signed interpretation) is returned.  If n
// has no square root, false is returned.
func (f *Field) Sqrt(n Element) (Element, bool) {
	f.check(n)
	//
	if n.IsZero() {
		return f.Zero(), true
	}
	// Euler's criterion
	if !f.Pow(n, f.half).IsOne() {
		return Element{}, false
	}
	//
	var (
		m = f.s
		c = f.NonResidueToT()
		t = f.Pow(n, f.t)
		// (t+1)/2
		e = new(big.Int).Add(f.t, one)
		r = f.Pow(n, e.Rsh(e, 1))
	)
	//
	for !t.IsOne() {
		// Find least i such that t^(2^i) == 1
		i := uint(1)
		//
		for sq := f.Square(t); !sq.IsOne(); sq = f.Square(sq) {
			i++
		}
		// b = c^(2^(m-i-1))
		b := c
		for j := i + 1; j < m; j++ {
			b = f.Square(b)
		}
		//
		m = i
		c = f.Square(b)
		t = f.Mul(t, c)
		r = f.Mul(r, b)
	}
	//
	if r.value.Cmp(f.half) > 0 {
		r = f.Neg(r)
	}
	//
	return r, true
}

// IsSquare determines whether n has a square root (using Euler's criterion).
func (f *Field) IsSquare(n Element) bool {
	f.check(n)
	//
	return n.IsZero() || f.Pow(n, f.half).IsOne()
}
