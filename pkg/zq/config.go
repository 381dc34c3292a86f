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

	bls12_377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	bls12_381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254_fp "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	bn254_fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// GF_13 is a tiny prime field used mostly for testing.
var GF_13 = Config{"GF_13", "tiny test field", constant(13)}

// GF_251 is a tiny prime field used mostly for testing.
var GF_251 = Config{"GF_251", "tiny test field", constant(251)}

// GF_8209 is a small prime field used mostly for testing.
var GF_8209 = Config{"GF_8209", "small test field", constant(8209)}

// KOALABEAR is the 31bit KoalaBear field 2^31 - 2^24 + 1.
var KOALABEAR = Config{"KOALABEAR", "KoalaBear (2^31 - 2^24 + 1)", constant(2130706433)}

// GOLDILOCKS is the 64bit Goldilocks field 2^64 - 2^32 + 1.
var GOLDILOCKS = Config{"GOLDILOCKS", "Goldilocks (2^64 - 2^32 + 1)", goldilocks.Modulus}

// BN254 is the scalar field of the BN254 curve.  This is the default field.
var BN254 = Config{"BN254", "BN254 scalar field", bn254_fr.Modulus}

// BN254_BASE is the base field of the BN254 curve.
var BN254_BASE = Config{"BN254_BASE", "BN254 base field", bn254_fp.Modulus}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377", "BLS12-377 scalar field", bls12_377.Modulus}

// BLS12_381 is the scalar field of the BLS12-381 curve.
var BLS12_381 = Config{"BLS12_381", "BLS12-381 scalar field", bls12_381.Modulus}

// FIELD_CONFIGS determines the set of named fields.
var FIELD_CONFIGS = []Config{
	GF_13,
	GF_251,
	GF_8209,
	KOALABEAR,
	GOLDILOCKS,
	BN254,
	BN254_BASE,
	BLS12_377,
	BLS12_381,
}

// Config identifies a well-known prime field by name.
type Config struct {
	// Name suitable for identifying the field (e.g. on the command line).
	Name string
	// Short human-readable description.
	Description string
	// Returns a freshly allocated modulus.
	modulus func() *big.Int
}

// Modulus returns the prime modulus of this field.
func (c Config) Modulus() *big.Int {
	return c.modulus()
}

// Field constructs the field described by this configuration.
func (c Config) Field() (*Field, error) {
	return New(c.modulus())
}

// GetConfig returns the field configuration corresponding with the given name,
// or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}

func constant(p int64) func() *big.Int {
	return func() *big.Int {
		return big.NewInt(p)
	}
}
