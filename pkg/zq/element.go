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
	"github.com/consensys/go-zqfield/pkg/util/word"
	"github.com/holiman/uint256"
)

// Element of a prime field.  An element is bound to the field which produced
// it, and is immutable: every operation returns a fresh element.  Elements are
// always held in canonical form, i.e. in the range [0,p).
type Element struct {
	field *Field
	value *big.Int
}

// FromInt64 constructs the element congruent to a given integer.
func (f *Field) FromInt64(v int64) Element {
	return f.FromBigInt(big.NewInt(v))
}

// FromUint64 constructs the element congruent to a given integer.
func (f *Field) FromUint64(v uint64) Element {
	return f.reduce(new(big.Int).SetUint64(v))
}

// FromBigInt constructs the element congruent to a given integer.  Negative
// values v are mapped to p - (|v| mod p).
func (f *Field) FromBigInt(v *big.Int) Element {
	if v.Sign() >= 0 {
		return f.reduce(new(big.Int).Set(v))
	}
	//
	nv := new(big.Int).Neg(v)
	nv.Mod(nv, f.p)
	// Observe p - 0 is not canonical
	if nv.Sign() == 0 {
		return f.wrap(nv)
	}
	//
	return f.wrap(nv.Sub(f.p, nv))
}

// FromString constructs an element from an integer literal, given either in
// decimal or in hexadecimal (with a "0x" prefix).  A leading minus sign is
// permitted.
func (f *Field) FromString(text string) (Element, error) {
	n, ok := parseInt(text)
	if !ok {
		return Element{}, errors.Wrapf(ErrInvalidLiteral, "\"%s\"", text)
	}
	//
	return f.FromBigInt(n), nil
}

// FromText constructs an element from an integer literal given in a specific
// base (without any prefix).  A leading minus sign is permitted.
func (f *Field) FromText(text string, base int) (Element, error) {
	var n big.Int
	//
	if base < 2 || base > big.MaxBase {
		return Element{}, errors.Wrapf(ErrInvalidLiteral, "unsupported base %d", base)
	} else if _, ok := n.SetString(text, base); !ok {
		return Element{}, errors.Wrapf(ErrInvalidLiteral, "\"%s\" (base %d)", text, base)
	}
	//
	return f.FromBigInt(&n), nil
}

// FromBytes constructs the element congruent to the integer encoded in the
// given buffer, which is read either in big endian or little endian order.
func (f *Field) FromBytes(buf []byte, littleEndian bool) Element {
	if littleEndian {
		return f.reduce(word.FromLittleEndian(buf))
	}
	//
	return f.reduce(word.FromBigEndian(buf))
}

// FromUint256 constructs the element congruent to a given 256-bit word.
func (f *Field) FromUint256(v *uint256.Int) Element {
	return f.reduce(word.FromUint256(v))
}

// Field returns the field to which this element belongs.
func (x Element) Field() *Field {
	return x.field
}

// BigInt returns (a copy of) the canonical representative of this element.
func (x Element) BigInt() *big.Int {
	return new(big.Int).Set(x.value)
}

// IsZero checks whether this element is zero.
func (x Element) IsZero() bool {
	return x.value.Sign() == 0
}

// IsOne checks whether this element is one.
func (x Element) IsOne() bool {
	return x.value.Cmp(one) == 0
}

// Equals checks whether two elements are equal.  Elements of different fields
// are never equal.
func (x Element) Equals(y Element) bool {
	return x.field.Equals(y.field) && x.value.Cmp(y.value) == 0
}

// Bytes returns the canonical representative encoded in big endian order,
// using exactly as many bytes as required for the modulus.
func (x Element) Bytes() []byte {
	// Cannot overflow as canonical values are below the modulus.
	buf, _ := word.PutBigEndian(x.value, x.field.ByteWidth())
	//
	return buf
}

// LittleEndianBytes returns the canonical representative encoded in little
// endian order, using exactly as many bytes as required for the modulus.
func (x Element) LittleEndianBytes() []byte {
	buf, _ := word.PutLittleEndian(x.value, x.field.ByteWidth())
	//
	return buf
}

// Uint256 returns the canonical representative as a 256-bit word, or false if
// it does not fit (which is only possible for fields larger than 256 bits).
func (x Element) Uint256() (*uint256.Int, bool) {
	return word.ToUint256(x.value)
}

// Text returns the canonical representative in the given base.
func (x Element) Text(base int) string {
	return x.value.Text(base)
}

func (x Element) String() string {
	if x.field == nil {
		return "<nil>"
	}
	//
	return x.value.String()
}
