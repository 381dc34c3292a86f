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
package random

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func Test_Shake_Deterministic(t *testing.T) {
	var (
		a = make([]byte, 100)
		b = make([]byte, 100)
	)
	//
	require.NoError(t, ReadFull(NewShake([]byte("seed")), a))
	require.NoError(t, ReadFull(NewShake([]byte("seed")), b))
	require.Equal(t, a, b)
	//
	require.NoError(t, ReadFull(NewShake([]byte("other")), b))
	require.NotEqual(t, a, b)
}

func Test_Shake_Stream(t *testing.T) {
	// Reading in pieces yields the same stream as reading in one go.
	var (
		whole  = make([]byte, 64)
		pieces bytes.Buffer
		src    = NewShake([]byte{1, 2, 3})
	)
	//
	require.NoError(t, ReadFull(NewShake([]byte{1, 2, 3}), whole))
	//
	for i := 0; i < 4; i++ {
		buf := make([]byte, 16)
		require.NoError(t, ReadFull(src, buf))
		pieces.Write(buf)
	}
	//
	require.Equal(t, whole, pieces.Bytes())
}

func Test_Insecure_Deterministic(t *testing.T) {
	var (
		a = make([]byte, 48)
		b = make([]byte, 48)
	)
	//
	require.NoError(t, ReadFull(NewInsecure(42), a))
	require.NoError(t, ReadFull(NewInsecure(42), b))
	require.Equal(t, a, b)
}

func Test_Crypto(t *testing.T) {
	buf := make([]byte, 32)
	require.NoError(t, ReadFull(Crypto(), buf))
}

type failingSource struct{}

func (failingSource) Read([]byte) (int, error) {
	return 0, errors.New("exhausted")
}

func Test_ReadFull_Error(t *testing.T) {
	require.Error(t, ReadFull(failingSource{}, make([]byte, 4)))
}
