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
package math

import "math/big"

// Monoid captures the multiplicative structure required for exponentiation.
// Implementations are expected to return fresh values from every operation.
type Monoid[T any] interface {
	// One returns the multiplicative identity.
	One() T
	// Mul returns x * y
	Mul(x, y T) T
	// Square returns x * x
	Square(x T) T
}

// Exp raises base to the given (non-negative) exponent using left-to-right
// square-and-multiply, driven by the bit pattern of the exponent.  The
// exponent is consumed as a plain integer, hence no reduction of any kind is
// applied to it.
func Exp[T any](m Monoid[T], base T, exponent *big.Int) T {
	if exponent.Sign() < 0 {
		panic("negative exponent")
	} else if exponent.Sign() == 0 {
		return m.One()
	}
	//
	var (
		n   = exponent.BitLen()
		res = base
	)
	// Most significant bit already accounted for
	for i := n - 2; i >= 0; i-- {
		res = m.Square(res)
		//
		if exponent.Bit(i) == 1 {
			res = m.Mul(res, base)
		}
	}
	//
	return res
}

// ExpUint64 is a convenience wrapper around Exp for machine-sized exponents.
func ExpUint64[T any](m Monoid[T], base T, exponent uint64) T {
	var e big.Int
	//
	return Exp(m, base, e.SetUint64(exponent))
}
