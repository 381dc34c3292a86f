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
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Order_GF13(t *testing.T) {
	var (
		f     = gf(13)
		six   = f.FromInt64(6)
		seven = f.FromInt64(7)
	)
	// 7 is -6 under the signed interpretation
	require.Equal(t, int64(-6), f.Signed(seven).Int64())
	require.Equal(t, int64(6), f.Signed(six).Int64())
	require.True(t, f.Lt(seven, six))
	require.True(t, f.Lt(seven, f.Zero()))
	require.True(t, f.Gt(six, seven))
	require.True(t, f.Leq(six, six))
	require.True(t, f.Geq(six, six))
	require.False(t, f.Gt(f.MinusOne(), f.Zero()))
}

func Test_Order_Exhaustive(t *testing.T) {
	for _, p := range []int64{3, 5, 13, 17, 251} {
		var (
			f    = gf(p)
			half = p / 2
		)
		//
		signed := func(v int64) int64 {
			if v > half {
				return v - p
			}
			//
			return v
		}
		//
		for a := int64(0); a < p; a++ {
			for b := int64(0); b < p; b++ {
				var (
					x  = f.FromInt64(a)
					y  = f.FromInt64(b)
					sa = signed(a)
					sb = signed(b)
				)
				//
				require.Equal(t, sa < sb, f.Lt(x, y))
				require.Equal(t, sa > sb, f.Gt(x, y))
				require.Equal(t, sa <= sb, f.Leq(x, y))
				require.Equal(t, sa >= sb, f.Geq(x, y))
			}
		}
	}
}
