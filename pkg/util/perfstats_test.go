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
package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var sink []*big.Int

func Test_PerfStats_01(t *testing.T) {
	stats := NewPerfStats()
	//
	for i := range 64 {
		sink = append(sink, big.NewInt(int64(i)))
	}
	//
	require.Positive(t, stats.Allocated())
	require.GreaterOrEqual(t, stats.Elapsed().Nanoseconds(), int64(0))
	// Should not panic, irrespective of log level.
	stats.Log("allocation")
}
