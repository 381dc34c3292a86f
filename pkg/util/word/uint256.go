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

	"github.com/holiman/uint256"
)

// ToUint256 converts a big integer into a 256-bit word.  The second result is
// false when the value is negative or does not fit in 256 bits, in which case
// the returned word is meaningless.
func ToUint256(n *big.Int) (*uint256.Int, bool) {
	if n.Sign() < 0 {
		return new(uint256.Int), false
	}
	//
	v, overflow := uint256.FromBig(n)
	//
	return v, !overflow
}

// FromUint256 converts a 256-bit word into a freshly allocated big integer.
func FromUint256(v *uint256.Int) *big.Int {
	return v.ToBig()
}
