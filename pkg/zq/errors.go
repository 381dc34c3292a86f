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

import "github.com/cockroachdb/errors"

// ErrDivisionByZero is returned when dividing by (or inverting) the zero
// element, or when an integer division is attempted with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// ErrInvalidModulus is returned when attempting to construct a field from a
// modulus which is not an odd prime.
var ErrInvalidModulus = errors.New("invalid modulus")

// ErrInvalidLiteral is returned when a field element literal cannot be parsed.
var ErrInvalidLiteral = errors.New("invalid literal")

// ErrFieldMismatch signals elements from different fields being combined, or
// an uninitialised element being used.  This is a programming error and, as
// such, is raised as a panic rather than returned.
var ErrFieldMismatch = errors.New("field mismatch")
