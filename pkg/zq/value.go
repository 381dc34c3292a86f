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

	"github.com/consensys/go-zqfield/pkg/util/bigjson"
)

// ReduceValue normalises every scalar within a nested value into this field,
// returning a value of the same shape whose scalars are canonical
// representatives.
func (f *Field) ReduceValue(v bigjson.Value) bigjson.Value {
	return v.Map(func(n *big.Int) *big.Int {
		return f.FromBigInt(n).value
	})
}

// ElementsOf extracts the elements of a flat sequence of scalars, failing if
// the value is not a sequence or contains anything other than scalars.
func (f *Field) ElementsOf(v bigjson.Value) ([]Element, bool) {
	if v.Kind() != bigjson.SEQUENCE {
		return nil, false
	}
	//
	elems := make([]Element, len(v.Items()))
	//
	for i, item := range v.Items() {
		if item.Kind() != bigjson.SCALAR {
			return nil, false
		}
		//
		elems[i] = f.FromBigInt(item.Scalar())
	}
	//
	return elems, true
}

// ValueOf converts a slice of elements into a sequence of scalars.
func ValueOf(elems ...Element) bigjson.Value {
	items := make([]bigjson.Value, len(elems))
	//
	for i, e := range elems {
		items[i] = bigjson.Scalar(e.value)
	}
	//
	return bigjson.Sequence(items...)
}
