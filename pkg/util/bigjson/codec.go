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
package bigjson

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/encoding/json"
)

// Marshal encodes a value as JSON, with every scalar written as a base-10
// string.
func Marshal(v Value) ([]byte, error) {
	data, err := json.Marshal(Stringify(v))
	if err != nil {
		return nil, errors.Wrap(err, "encoding json")
	}
	//
	return data, nil
}

// MarshalIndent is like Marshal but applies indentation to the output.
func MarshalIndent(v Value, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(Stringify(v), "", indent)
	if err != nil {
		return nil, errors.Wrap(err, "encoding json")
	}
	//
	return data, nil
}

// Unmarshal decodes a JSON document, restoring every digit-only string as a
// scalar.  JSON numbers are retained verbatim (as json.Number values of kind
// OTHER) so that no precision is lost.
func Unmarshal(data []byte) (Value, error) {
	var (
		raw     any
		decoder = json.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.UseNumber()
	//
	if err := decoder.Decode(&raw); err != nil {
		return Value{}, errors.Wrap(err, "decoding json")
	}
	//
	return Unstringify(raw), nil
}
