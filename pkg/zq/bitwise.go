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

// The operators in this file act on the bit pattern of their operands, rather
// than their meaning as field elements.  Results are truncated to the bit
// length of the modulus before being reduced back into the field.  Shift
// amounts are field elements as well, where an amount which is not below the
// bit length is interpreted as a negative shift p - b in the opposite
// direction.

// BAnd x & y
func (f *Field) BAnd(x, y Element) Element {
	f.check(x, y)
	//
	res := new(big.Int).And(x.value, y.value)
	//
	return f.reduce(res.And(res, f.mask))
}

// BOr x | y
func (f *Field) BOr(x, y Element) Element {
	f.check(x, y)
	//
	res := new(big.Int).Or(x.value, y.value)
	//
	return f.reduce(res.And(res, f.mask))
}

// BXor x ^ y
func (f *Field) BXor(x, y Element) Element {
	f.check(x, y)
	//
	res := new(big.Int).Xor(x.value, y.value)
	//
	return f.reduce(res.And(res, f.mask))
}

// BNot ~x, i.e. x ^ mask.
func (f *Field) BNot(x Element) Element {
	f.check(x)
	//
	return f.reduce(new(big.Int).Xor(x.value, f.mask))
}

// Shl x << y.  When y is not below the bit length, this is a right shift by
// p - y if that is below the bit length, and zero otherwise.
func (f *Field) Shl(x, y Element) Element {
	f.check(x, y)
	//
	if n, ok := f.shiftAmount(y.value); ok {
		return f.shiftLeft(x, n)
	} else if n, ok := f.shiftAmount(new(big.Int).Sub(f.p, y.value)); ok {
		return f.shiftRight(x, n)
	}
	//
	return f.Zero()
}

// Shr x >> y.  When y is not below the bit length, this is a left shift by p -
// y if that is below the bit length, and zero otherwise.
func (f *Field) Shr(x, y Element) Element {
	f.check(x, y)
	//
	if n, ok := f.shiftAmount(y.value); ok {
		return f.shiftRight(x, n)
	} else if n, ok := f.shiftAmount(new(big.Int).Sub(f.p, y.value)); ok {
		return f.shiftLeft(x, n)
	}
	//
	return f.Zero()
}

// LAnd returns 1 if both x and y are nonzero, and 0 otherwise.
func (f *Field) LAnd(x, y Element) Element {
	f.check(x, y)
	//
	return f.fromBool(!x.IsZero() && !y.IsZero())
}

// LOr returns 1 if either x or y is nonzero, and 0 otherwise.
func (f *Field) LOr(x, y Element) Element {
	f.check(x, y)
	//
	return f.fromBool(!x.IsZero() || !y.IsZero())
}

// LNot returns 1 if x is zero, and 0 otherwise.
func (f *Field) LNot(x Element) Element {
	f.check(x)
	//
	return f.fromBool(x.IsZero())
}

// (x << n) & mask, reduced.
func (f *Field) shiftLeft(x Element, n uint) Element {
	res := new(big.Int).Lsh(x.value, n)
	//
	return f.reduce(res.And(res, f.mask))
}

// x >> n, which needs neither truncation nor reduction.
func (f *Field) shiftRight(x Element, n uint) Element {
	return f.wrap(new(big.Int).Rsh(x.value, n))
}

// shiftAmount determines whether a given (non-negative) shift amount is below
// the bit length.
func (f *Field) shiftAmount(n *big.Int) (uint, bool) {
	if n.IsUint64() && n.Uint64() < uint64(f.bitLength) {
		return uint(n.Uint64()), true
	}
	//
	return 0, false
}

func (f *Field) fromBool(b bool) Element {
	if b {
		return f.One()
	}
	//
	return f.Zero()
}
