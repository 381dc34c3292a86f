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
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrEncodingOverflow is returned when a value cannot be encoded within the
// requested number of bytes.  This always signals a caller choosing the wrong
// width (or passing a negative value).
var ErrEncodingOverflow = errors.New("encoding overflow")

// PutBigEndian encodes a non-negative integer into a freshly allocated buffer
// of exactly width bytes, most significant byte first.
func PutBigEndian(n *big.Int, width uint) ([]byte, error) {
	if err := checkFits(n, width); err != nil {
		return nil, err
	}
	//
	buf := make([]byte, width)
	n.FillBytes(buf)
	//
	return buf, nil
}

// PutLittleEndian encodes a non-negative integer into a freshly allocated
// buffer of exactly width bytes, least significant byte first.
func PutLittleEndian(n *big.Int, width uint) ([]byte, error) {
	buf, err := PutBigEndian(n, width)
	if err != nil {
		return nil, err
	}
	//
	slices.Reverse(buf)
	//
	return buf, nil
}

// FromBigEndian decodes a buffer whose most significant byte comes first.
// Any buffer (including an empty one) is accepted.
func FromBigEndian(buf []byte) *big.Int {
	return new(big.Int).SetBytes(buf)
}

// FromLittleEndian decodes a buffer whose least significant byte comes first.
// Any buffer (including an empty one) is accepted.  The buffer itself is not
// modified.
func FromLittleEndian(buf []byte) *big.Int {
	tmp := slices.Clone(buf)
	slices.Reverse(tmp)
	//
	return new(big.Int).SetBytes(tmp)
}

// ByteWidth returns the number of bytes required to hold a given number of
// bits.
func ByteWidth(bitwidth uint) uint {
	return (bitwidth + 7) / 8
}

func checkFits(n *big.Int, width uint) error {
	switch {
	case n.Sign() < 0:
		return errors.Wrapf(ErrEncodingOverflow, "cannot encode negative value %s", n.String())
	case uint(n.BitLen()) > 8*width:
		return errors.Wrapf(ErrEncodingOverflow, "value %s does not fit in %d bytes", n.String(), width)
	}
	//
	return nil
}
