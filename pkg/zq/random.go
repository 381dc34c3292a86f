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
	"github.com/cockroachdb/errors"
	"github.com/consensys/go-zqfield/pkg/util/random"
	"github.com/consensys/go-zqfield/pkg/util/word"
)

// Random samples an element approximately uniformly using bytes drawn from a
// given source.  Twice as many bits as the modulus has are drawn, and the
// resulting integer reduced modulo p.  This keeps the bias negligible, though
// not zero.  Whether the result is suitable for cryptographic use depends
// entirely on the source.
func (f *Field) Random(src random.Source) (Element, error) {
	buf := make([]byte, word.ByteWidth(2*f.bitLength))
	//
	if err := random.ReadFull(src, buf); err != nil {
		return Element{}, errors.Wrap(err, "sampling field element")
	}
	//
	return f.reduce(word.FromBigEndian(buf)), nil
}
