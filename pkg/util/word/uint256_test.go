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
package word

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func Test_Uint256_00(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := randomInt(256)
		v, ok := ToUint256(n)
		require.True(t, ok)
		require.Equal(t, 0, n.Cmp(FromUint256(v)))
	}
}

func Test_Uint256_Overflow(t *testing.T) {
	var n big.Int
	//
	n.SetBit(&n, 256, 1)
	_, ok := ToUint256(&n)
	require.False(t, ok)
	//
	_, ok = ToUint256(big.NewInt(-5))
	require.False(t, ok)
}

func Test_Uint256_Bytes(t *testing.T) {
	// encoding agrees with the fixed 32 byte layout of uint256
	n := randomInt(250)
	v, _ := ToUint256(n)
	buf, err := PutBigEndian(n, 32)
	require.NoError(t, err)
	//
	expected := v.Bytes32()
	require.Equal(t, expected[:], buf)
	require.True(t, v.Eq(new(uint256.Int).SetBytes(buf)))
}
