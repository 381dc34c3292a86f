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
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/sha3"
)

// Source provides random bytes.  Any io.Reader can serve as a source, though
// only cryptographically strong ones should be used for security sensitive
// sampling.
type Source = io.Reader

// Crypto returns the operating system's cryptographically strong random number
// generator.
func Crypto() Source {
	return crand.Reader
}

// Shake is a deterministic source expanding a seed via the SHAKE-256
// extendable output function.  Two instances created from the same seed
// produce identical byte streams, which makes it suitable for reproducible
// tests and for deriving values from a shared secret.
type Shake struct {
	xof sha3.ShakeHash
}

// NewShake constructs a deterministic source from the given seed.
func NewShake(seed []byte) *Shake {
	xof := sha3.NewShake256()
	// Never fails
	_, _ = xof.Write(seed)
	//
	return &Shake{xof}
}

func (p *Shake) Read(buf []byte) (int, error) {
	return p.xof.Read(buf)
}

// Insecure is a pseudo-random fallback for environments without access to a
// cryptographically strong generator.  It is NOT suitable for any security
// sensitive use: its output is fully determined by its seed.
type Insecure struct {
	rng *rand.ChaCha8
}

// NewInsecure constructs a pseudo-random fallback source from a seed.
func NewInsecure(seed uint64) *Insecure {
	var key [32]byte
	//
	binary.LittleEndian.PutUint64(key[:], seed)
	//
	return &Insecure{rand.NewChaCha8(key)}
}

func (p *Insecure) Read(buf []byte) (int, error) {
	return p.rng.Read(buf)
}

// ReadFull fills the given buffer entirely from a source, failing if the
// source cannot supply enough bytes.
func ReadFull(src Source, buf []byte) error {
	if _, err := io.ReadFull(src, buf); err != nil {
		return errors.Wrapf(err, "reading %d random bytes", len(buf))
	}
	//
	return nil
}
