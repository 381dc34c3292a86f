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
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func Test_Element_Literals(t *testing.T) {
	f := gf(13)
	//
	for text, expected := range map[string]string{
		"0":     "0",
		"12":    "12",
		"13":    "0",
		"27":    "1",
		"-1":    "12",
		"-13":   "0",
		"-14":   "12",
		"0x0f":  "2",
		"0XFF":  "8",
		"-0x1":  "12",
		"00010": "10",
	} {
		x, err := f.FromString(text)
		require.NoError(t, err, text)
		require.Equal(t, expected, x.String(), text)
	}
	//
	for _, text := range []string{"", "-", "0x", "1.5", "ten", "+1", "0b101"} {
		_, err := f.FromString(text)
		require.True(t, errors.Is(err, ErrInvalidLiteral), text)
	}
}

func Test_Element_FromText(t *testing.T) {
	f := gf(8209)
	//
	x, err := f.FromText("ff", 16)
	require.NoError(t, err)
	require.Equal(t, "255", x.String())
	//
	x, err = f.FromText("-101", 2)
	require.NoError(t, err)
	require.Equal(t, "8204", x.String())
	//
	_, err = f.FromText("12", 0)
	require.True(t, errors.Is(err, ErrInvalidLiteral))
	//
	_, err = f.FromText("12", 1000)
	require.True(t, errors.Is(err, ErrInvalidLiteral))
}

func Test_Element_FromBigInt(t *testing.T) {
	f := gf(13)
	//
	require.Equal(t, "12", f.FromBigInt(big.NewInt(-27)).String())
	require.Equal(t, "0", f.FromBigInt(big.NewInt(-26)).String())
	require.Equal(t, "3", f.FromUint64(16).String())
	// Input is not aliased
	n := big.NewInt(5)
	x := f.FromBigInt(n)
	n.SetInt64(7)
	require.Equal(t, "5", x.String())
	// Nor is output
	x.BigInt().SetInt64(9)
	require.Equal(t, "5", x.String())
}

func Test_Element_Text(t *testing.T) {
	f := gf(13)
	//
	require.Equal(t, "6", f.Text(f.FromInt64(6), 10))
	require.Equal(t, "-6", f.Text(f.FromInt64(7), 10))
	require.Equal(t, "-1", f.Text(f.MinusOne(), 10))
	require.Equal(t, "c", f.MinusOne().Text(16))
	require.Equal(t, "<nil>", Element{}.String())
}

func Test_Element_Bytes(t *testing.T) {
	f, err := BN254.Field()
	require.NoError(t, err)
	//
	x := f.MinusOne()
	be := x.Bytes()
	le := x.LittleEndianBytes()
	//
	require.Len(t, be, 32)
	require.Len(t, le, 32)
	require.True(t, f.FromBytes(be, false).Equals(x))
	require.True(t, f.FromBytes(le, true).Equals(x))
	// Reduction on decode
	var all [32]byte
	for i := range all {
		all[i] = 0xff
	}
	//
	y := f.FromBytes(all[:], false)
	expected := new(big.Int).SetBytes(all[:])
	require.Equal(t, 0, expected.Mod(expected, f.Modulus()).Cmp(y.BigInt()))
}

func Test_Element_Uint256(t *testing.T) {
	f, err := BN254.Field()
	require.NoError(t, err)
	//
	x := f.FromInt64(-2)
	v, ok := x.Uint256()
	require.True(t, ok)
	require.True(t, f.FromUint256(v).Equals(x))
	// 2^256-1 reduces
	y := f.FromUint256(new(uint256.Int).SetAllOne())
	require.Equal(t, -1, y.BigInt().Cmp(f.Modulus()))
}
