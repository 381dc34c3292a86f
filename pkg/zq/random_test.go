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

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-zqfield/pkg/util/random"
	"github.com/stretchr/testify/require"
)

type emptySource struct{}

func (emptySource) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func Test_Random_Deterministic(t *testing.T) {
	f, err := BN254.Field()
	require.NoError(t, err)
	//
	var (
		a = random.NewShake([]byte("seed"))
		b = random.NewShake([]byte("seed"))
	)
	//
	for i := 0; i < 20; i++ {
		x, err := f.Random(a)
		require.NoError(t, err)
		y, err := f.Random(b)
		require.NoError(t, err)
		require.True(t, x.Equals(y))
		require.Equal(t, -1, x.BigInt().Cmp(f.Modulus()))
	}
}

func Test_Random_Coverage(t *testing.T) {
	var (
		f    = gf(13)
		src  = random.NewInsecure(7)
		seen = make(map[string]bool)
	)
	//
	for i := 0; i < 1000; i++ {
		x, err := f.Random(src)
		require.NoError(t, err)
		seen[x.String()] = true
	}
	// Every element should turn up eventually
	require.Len(t, seen, 13)
}

func Test_Random_Crypto(t *testing.T) {
	f, err := BLS12_381.Field()
	require.NoError(t, err)
	//
	x, err := f.Random(random.Crypto())
	require.NoError(t, err)
	require.Equal(t, -1, x.BigInt().Cmp(f.Modulus()))
}

func Test_Random_Failure(t *testing.T) {
	_, err := gf(13).Random(emptySource{})
	require.Error(t, err)
}
