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

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-zqfield/pkg/util/math"
)

// Add x + y
func (f *Field) Add(x, y Element) Element {
	f.check(x, y)
	//
	res := new(big.Int).Add(x.value, y.value)
	if res.Cmp(f.p) >= 0 {
		res.Sub(res, f.p)
	}
	//
	return f.wrap(res)
}

// Sub x - y
func (f *Field) Sub(x, y Element) Element {
	f.check(x, y)
	//
	if x.value.Cmp(y.value) >= 0 {
		return f.wrap(new(big.Int).Sub(x.value, y.value))
	}
	// p - y + x
	res := new(big.Int).Sub(f.p, y.value)
	//
	return f.wrap(res.Add(res, x.value))
}

// Neg -x
func (f *Field) Neg(x Element) Element {
	f.check(x)
	//
	if x.IsZero() {
		return x
	}
	//
	return f.wrap(new(big.Int).Sub(f.p, x.value))
}

// Mul x * y
func (f *Field) Mul(x, y Element) Element {
	f.check(x, y)
	//
	res := new(big.Int).Mul(x.value, y.value)
	//
	return f.wrap(res.Mod(res, f.p))
}

// MulScalar x * k, where k is first normalised into the field.
func (f *Field) MulScalar(x Element, k int64) Element {
	return f.Mul(x, f.FromInt64(k))
}

// Square x * x
func (f *Field) Square(x Element) Element {
	return f.Mul(x, x)
}

// Inverse computes x⁻¹ using the extended Euclidean algorithm, failing if x is
// zero.
func (f *Field) Inverse(x Element) (Element, error) {
	f.check(x)
	//
	if x.IsZero() {
		return Element{}, errors.Wrap(ErrDivisionByZero, "inverse of zero")
	}
	//
	var (
		t    = new(big.Int)
		r    = new(big.Int).Set(f.p)
		newt = big.NewInt(1)
		newr = new(big.Int).Mod(x.value, f.p)
		q    big.Int
		tmp  big.Int
	)
	// Invariant: t*x ≡ r and newt*x ≡ newr (mod p)
	for newr.Sign() != 0 {
		q.Quo(r, newr)
		// (t, newt) = (newt, t - q*newt)
		tmp.Mul(&q, newt)
		tmp.Sub(t, &tmp)
		t, newt = newt, new(big.Int).Set(&tmp)
		// (r, newr) = (newr, r - q*newr)
		tmp.Mul(&q, newr)
		tmp.Sub(r, &tmp)
		r, newr = newr, new(big.Int).Set(&tmp)
	}
	//
	if t.Sign() < 0 {
		t.Add(t, f.p)
	}
	//
	return f.wrap(t), nil
}

// Div x / y, failing if y is zero.
func (f *Field) Div(x, y Element) (Element, error) {
	inv, err := f.Inverse(y)
	if err != nil {
		return Element{}, errors.Wrapf(err, "dividing %s", x.String())
	}
	//
	return f.Mul(x, inv), nil
}

// IDiv performs truncating integer division of the canonical representatives
// of x and y, failing if y is zero.  This is not field division.
func (f *Field) IDiv(x, y Element) (Element, error) {
	f.check(x, y)
	//
	if y.IsZero() {
		return Element{}, errors.Wrapf(ErrDivisionByZero, "integer division of %s", x.String())
	}
	//
	return f.wrap(new(big.Int).Quo(x.value, y.value)), nil
}

// Mod computes the integer remainder of the canonical representatives of x and
// y, failing if y is zero.
func (f *Field) Mod(x, y Element) (Element, error) {
	f.check(x, y)
	//
	if y.IsZero() {
		return Element{}, errors.Wrapf(ErrDivisionByZero, "remainder of %s", x.String())
	}
	//
	return f.wrap(new(big.Int).Rem(x.value, y.value)), nil
}

// Pow raises x to a given non-negative exponent.  The exponent is an arbitrary
// integer which is not reduced in any way (e.g. modulo p-1).  Observe that 0^0
// is 1.
func (f *Field) Pow(x Element, exponent *big.Int) Element {
	f.check(x)
	//
	return math.Exp[Element](f, x, exponent)
}

// PowUint64 raises x to a given machine-sized exponent.
func (f *Field) PowUint64(x Element, exponent uint64) Element {
	f.check(x)
	//
	return math.ExpUint64[Element](f, x, exponent)
}

// Equal checks whether x == y
func (f *Field) Equal(x, y Element) bool {
	f.check(x, y)
	//
	return x.value.Cmp(y.value) == 0
}

// NotEqual checks whether x != y
func (f *Field) NotEqual(x, y Element) bool {
	return !f.Equal(x, y)
}

// IsZero checks whether x == 0
func (f *Field) IsZero(x Element) bool {
	f.check(x)
	//
	return x.IsZero()
}
