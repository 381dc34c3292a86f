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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// Small primes covering a range of 2-adicities (p = 3 mod 4, p = 5 mod 8, p = 1
// mod 16, etc).
var SMALL_PRIMES = []int64{3, 5, 7, 11, 13, 17, 41, 97, 193, 251, 257, 769, 7681, 8209}

func gf(p int64) *Field {
	return MustNew(big.NewInt(p))
}

func Test_Field_GF13(t *testing.T) {
	f := gf(13)
	//
	require.Equal(t, uint(4), f.BitLength())
	require.Equal(t, uint(1), f.ByteWidth())
	require.Equal(t, int64(15), f.Mask().Int64())
	require.Equal(t, "6", f.Half().String())
	require.Equal(t, "2", f.NonResidue().String())
	require.Equal(t, uint(2), f.S())
	require.Equal(t, int64(3), f.T().Int64())
	require.Equal(t, "8", f.NonResidueToT().String())
	require.Equal(t, "12", f.MinusOne().String())
	require.Equal(t, "Z/13Z", f.String())
}

func Test_Field_Parameters(t *testing.T) {
	for _, p := range SMALL_PRIMES {
		checkParameters(t, gf(p))
	}
	//
	for _, c := range FIELD_CONFIGS {
		f, err := c.Field()
		require.NoError(t, err, c.Name)
		checkParameters(t, f)
	}
}

func Test_Field_TwoAdicity(t *testing.T) {
	for name, s := range map[string]uint{"BN254": 28, "BLS12_377": 47, "BLS12_381": 32, "GOLDILOCKS": 32, "KOALABEAR": 24} {
		f, err := GetConfig(name).Field()
		require.NoError(t, err)
		require.Equal(t, s, f.S(), name)
	}
}

func Test_Field_Invalid(t *testing.T) {
	for _, p := range []int64{-7, 0, 1, 2, 4, 9, 15, 221, 8211} {
		_, err := New(big.NewInt(p))
		require.True(t, errors.Is(err, ErrInvalidModulus), "modulus %d", p)
	}
	//
	require.Panics(t, func() { MustNew(big.NewInt(91)) })
}

func Test_Field_Parse(t *testing.T) {
	f, err := Parse("0xd")
	require.NoError(t, err)
	require.True(t, f.Equals(gf(13)))
	//
	f, err = Parse("21888242871839275222246405745257275088548364400416034343698204186575808495617")
	require.NoError(t, err)
	require.Equal(t, 0, f.Modulus().Cmp(BN254.Modulus()))
	//
	for _, s := range []string{"", "0x", "abc", "+13", "--13", "1 3"} {
		_, err = Parse(s)
		require.True(t, errors.Is(err, ErrInvalidModulus), "parsing \"%s\"", s)
	}
}

func Test_Field_Equals(t *testing.T) {
	var (
		f = gf(13)
		g = gf(13)
		h = gf(17)
	)
	//
	require.True(t, f.Equals(g))
	require.False(t, f.Equals(h))
	// Elements of equal fields mix freely
	require.True(t, f.Equal(f.FromInt64(3), g.FromInt64(3)))
	require.Panics(t, func() { f.Add(f.One(), h.One()) })
	require.Panics(t, func() { f.Add(f.One(), Element{}) })
	require.False(t, f.One().Equals(h.One()))
}

func Test_Config_00(t *testing.T) {
	require.Nil(t, GetConfig("NOT_A_FIELD"))
	//
	for _, c := range FIELD_CONFIGS {
		require.Equal(t, c.Name, GetConfig(c.Name).Name)
		require.True(t, c.Modulus().ProbablyPrime(20), c.Name)
	}
	// Moduli are freshly allocated
	BN254.Modulus().SetInt64(0)
	require.NotEqual(t, 0, BN254.Modulus().Sign())
}

func checkParameters(t *testing.T, f *Field) {
	var (
		p        = f.Modulus()
		minusOne = f.MinusOne()
		euler    = new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	)
	// Bit length
	require.Equal(t, uint(p.BitLen()), f.BitLength())
	require.Equal(t, 0, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), f.BitLength()), big.NewInt(1)).Cmp(f.Mask()))
	// Nonresidue is the smallest
	require.True(t, f.Pow(f.NonResidue(), euler).Equals(minusOne), "%s not a nonresidue in %s", f.NonResidue(), f)
	//
	for i := int64(2); i < f.NonResidue().BigInt().Int64(); i++ {
		require.True(t, f.IsSquare(f.FromInt64(i)), "%d is a nonresidue in %s", i, f)
	}
	// 2-adic decomposition
	require.Equal(t, uint(1), f.T().Bit(0))
	//
	pMinusOne := new(big.Int).Lsh(f.T(), f.S())
	require.Equal(t, 0, pMinusOne.Cmp(minusOne.BigInt()))
	require.True(t, f.Pow(f.NonResidue(), f.T()).Equals(f.NonResidueToT()))
}
