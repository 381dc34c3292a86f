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
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strings"
)

// Kind identifies which variant a given Value holds.
type Kind uint8

const (
	// OTHER is any value which is neither a big integer nor a container.
	OTHER Kind = iota
	// SCALAR is a (non-negative) big integer.
	SCALAR
	// SEQUENCE is an ordered list of values.
	SEQUENCE
	// MAPPING is a set of values indexed by string keys.
	MAPPING
)

func (k Kind) String() string {
	switch k {
	case SCALAR:
		return "scalar"
	case SEQUENCE:
		return "sequence"
	case MAPPING:
		return "mapping"
	default:
		return "other"
	}
}

// Value is a nested structure of big integers, sequences and mappings.  The
// variant held is fixed at construction, rather than being inferred by probing
// the runtime type of some arbitrary value.
type Value struct {
	kind    Kind
	scalar  *big.Int
	items   []Value
	entries map[string]Value
	other   any
}

// Scalar constructs a value holding a copy of the given big integer.
func Scalar(n *big.Int) Value {
	return Value{kind: SCALAR, scalar: new(big.Int).Set(n)}
}

// Sequence constructs a value holding the given items.
func Sequence(items ...Value) Value {
	return Value{kind: SEQUENCE, items: items}
}

// Mapping constructs a value holding the given entries.
func Mapping(entries map[string]Value) Value {
	return Value{kind: MAPPING, entries: entries}
}

// Other constructs a value holding something which is passed through
// unchanged (e.g. a bool, a plain string, nil or a JSON number).
func Other(v any) Value {
	return Value{kind: OTHER, other: v}
}

// Kind returns the variant held by this value.
func (p Value) Kind() Kind {
	return p.kind
}

// Scalar returns the big integer held by this value, or nil if this is not a
// scalar.
func (p Value) Scalar() *big.Int {
	return p.scalar
}

// Items returns the items of a sequence, or nil if this is not a sequence.
func (p Value) Items() []Value {
	return p.items
}

// Entries returns the entries of a mapping, or nil if this is not a mapping.
func (p Value) Entries() map[string]Value {
	return p.entries
}

// Other returns the pass-through value, or nil if this is not of kind OTHER.
func (p Value) Other() any {
	return p.other
}

// Map applies a given function to every scalar within this value, returning a
// new value of the same shape.
func (p Value) Map(fn func(*big.Int) *big.Int) Value {
	switch p.kind {
	case SCALAR:
		return Value{kind: SCALAR, scalar: fn(p.scalar)}
	case SEQUENCE:
		items := make([]Value, len(p.items))
		//
		for i, item := range p.items {
			items[i] = item.Map(fn)
		}
		//
		return Sequence(items...)
	case MAPPING:
		entries := make(map[string]Value, len(p.entries))
		//
		for k, v := range p.entries {
			entries[k] = v.Map(fn)
		}
		//
		return Mapping(entries)
	default:
		return p
	}
}

// Equals determines whether two values have the same shape and contents.
func (p Value) Equals(o Value) bool {
	if p.kind != o.kind {
		return false
	}
	//
	switch p.kind {
	case SCALAR:
		return p.scalar.Cmp(o.scalar) == 0
	case SEQUENCE:
		return slices.EqualFunc(p.items, o.items, Value.Equals)
	case MAPPING:
		if len(p.entries) != len(o.entries) {
			return false
		}
		//
		for k, v := range p.entries {
			if w, ok := o.entries[k]; !ok || !v.Equals(w) {
				return false
			}
		}
		//
		return true
	default:
		return reflect.DeepEqual(p.other, o.other)
	}
}

func (p Value) String() string {
	var builder strings.Builder
	//
	p.write(&builder)
	//
	return builder.String()
}

func (p Value) write(builder *strings.Builder) {
	switch p.kind {
	case SCALAR:
		builder.WriteString(p.scalar.String())
	case SEQUENCE:
		builder.WriteString("[")
		//
		for i, item := range p.items {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			item.write(builder)
		}
		//
		builder.WriteString("]")
	case MAPPING:
		keys := make([]string, 0, len(p.entries))
		for k := range p.entries {
			keys = append(keys, k)
		}
		//
		slices.Sort(keys)
		builder.WriteString("{")
		//
		for i, k := range keys {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(fmt.Sprintf("%q: ", k))
			p.entries[k].write(builder)
		}
		//
		builder.WriteString("}")
	default:
		builder.WriteString(fmt.Sprintf("%v", p.other))
	}
}
