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
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-zqfield/pkg/util/math"
	"github.com/consensys/go-zqfield/pkg/util/word"
	log "github.com/sirupsen/logrus"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Field holds the parameters of a prime field Z/pZ.  All parameters are derived
// deterministically from the modulus alone, and never change after
// construction.  Hence, a field can be shared freely between goroutines, and
// two fields constructed from the same modulus behave identically.
type Field struct {
	// The prime modulus
	p *big.Int
	// p - 1, which is the canonical representative of -1
	minusOne *big.Int
	// p >> 1, separating "non-negative" values from "negative" ones.
	half *big.Int
	// Number of bits required to represent p.
	bitLength uint
	// 2^bitLength - 1
	mask *big.Int
	// Smallest quadratic nonresidue (starting from 2).
	nonResidue *big.Int
	// Exponent of the 2-adic decomposition p-1 = t*2^s
	s uint
	// Odd part of the 2-adic decomposition p-1 = t*2^s
	t *big.Int
	// nonResidue^t
	nonResidueToT *big.Int
}

// New constructs a field for a given modulus, which must be an odd prime.
// Primality is checked using the Baillie-PSW test.
func New(p *big.Int) (*Field, error) {
	if p.Cmp(two) <= 0 || p.Bit(0) == 0 || !p.ProbablyPrime(0) {
		return nil, errors.Wrapf(ErrInvalidModulus, "%s is not an odd prime", p.String())
	}
	//
	f := &Field{p: new(big.Int).Set(p)}
	f.minusOne = new(big.Int).Sub(f.p, one)
	f.half = new(big.Int).Rsh(f.p, 1)
	f.bitLength = uint(f.p.BitLen())
	f.mask = new(big.Int).Lsh(one, f.bitLength)
	f.mask.Sub(f.mask, one)
	// Find smallest nonresidue using Euler's criterion.  At least half of all
	// nonzero residues are nonresidues, so this terminates quickly in practice.
	var (
		exponent = new(big.Int).Rsh(f.minusOne, 1)
		nqr      = f.wrap(big.NewInt(2))
	)
	//
	for f.Pow(nqr, exponent).value.Cmp(f.minusOne) != 0 {
		nqr = f.wrap(new(big.Int).Add(nqr.value, one))
	}
	//
	f.nonResidue = nqr.value
	// Compute 2-adic decomposition
	f.t = new(big.Int).Set(f.minusOne)
	//
	for f.t.Bit(0) == 0 {
		f.s++
		f.t.Rsh(f.t, 1)
	}
	//
	f.nonResidueToT = f.Pow(nqr, f.t).value
	//
	log.Debugf("constructed field of %d bits (nonresidue %s, 2-adicity %d)", f.bitLength, f.nonResidue.String(), f.s)
	//
	return f, nil
}

// MustNew constructs a field for a given modulus, panicking if the modulus is
// not an odd prime.
func MustNew(p *big.Int) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	//
	return f
}

// Parse constructs a field from a textual modulus, given either in decimal or
// in hexadecimal (with a "0x" prefix).
func Parse(text string) (*Field, error) {
	p, ok := parseInt(text)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidModulus, "cannot parse \"%s\"", text)
	}
	//
	return New(p)
}

// Modulus returns (a copy of) the prime modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitLength returns the number of bits needed to represent the modulus.
func (f *Field) BitLength() uint {
	return f.bitLength
}

// ByteWidth returns the number of bytes needed to represent the modulus.
func (f *Field) ByteWidth() uint {
	return word.ByteWidth(f.bitLength)
}

// Mask returns (a copy of) 2^bitLength - 1.
func (f *Field) Mask() *big.Int {
	return new(big.Int).Set(f.mask)
}

// Half returns the largest element considered non-negative under the signed
// interpretation, i.e. p >> 1.
func (f *Field) Half() Element {
	return f.wrap(f.half)
}

// NonResidue returns the smallest quadratic nonresidue of this field.
func (f *Field) NonResidue() Element {
	return f.wrap(f.nonResidue)
}

// NonResidueToT returns nonresidue^t where p - 1 = t * 2^s.
func (f *Field) NonResidueToT() Element {
	return f.wrap(f.nonResidueToT)
}

// S returns the 2-adicity of this field, i.e. s where p - 1 = t * 2^s.
func (f *Field) S() uint {
	return f.s
}

// T returns (a copy of) the odd part t where p - 1 = t * 2^s.
func (f *Field) T() *big.Int {
	return new(big.Int).Set(f.t)
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return f.wrap(new(big.Int))
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return f.wrap(big.NewInt(1))
}

// MinusOne returns the element p - 1.
func (f *Field) MinusOne() Element {
	return f.wrap(f.minusOne)
}

// Equals determines whether two fields have the same modulus, in which case
// they are interchangeable.
func (f *Field) Equals(g *Field) bool {
	return f == g || f.p.Cmp(g.p) == 0
}

func (f *Field) String() string {
	return "Z/" + f.p.String() + "Z"
}

// check that each element given belongs to this field.
func (f *Field) check(elems ...Element) {
	for _, e := range elems {
		if e.field == nil {
			panic(errors.Wrap(ErrFieldMismatch, "uninitialised element"))
		} else if e.field != f && e.field.p.Cmp(f.p) != 0 {
			panic(errors.Wrapf(ErrFieldMismatch, "element of %s used in %s", e.field.String(), f.String()))
		}
	}
}

// wrap a value known to be canonical.  The value must not be mutated
// afterwards.
func (f *Field) wrap(v *big.Int) Element {
	return Element{f, v}
}

// reduce a non-negative value into the canonical range.  The value may be
// mutated in the process.
func (f *Field) reduce(v *big.Int) Element {
	if v.Cmp(f.p) >= 0 {
		v.Mod(v, f.p)
	}
	//
	return f.wrap(v)
}

// parseInt parses a decimal or "0x" prefixed hexadecimal integer, with an
// optional leading minus sign.
func parseInt(text string) (*big.Int, bool) {
	var (
		n        big.Int
		negative = strings.HasPrefix(text, "-")
		base     = 10
	)
	//
	text = strings.TrimPrefix(text, "-")
	//
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		text, base = text[2:], 16
	}
	// Guard against signs which SetString would otherwise accept.
	if text == "" || text[0] == '+' || text[0] == '-' {
		return nil, false
	} else if _, ok := n.SetString(text, base); !ok {
		return nil, false
	} else if negative {
		n.Neg(&n)
	}
	//
	return &n, true
}

// Ensure fields can drive exponentiation.
var _ math.Monoid[Element] = &Field{}
