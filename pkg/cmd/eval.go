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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/consensys/go-zqfield/pkg/zq"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] operator operand(s)",
	Short: "Evaluate a field operator on one or two operands.",
	Long: `Evaluate a field operator on one or two operands.  Operands are integer
	literals given in decimal or hexadecimal (with a 0x prefix), and are first
	reduced into the field.  The exponent of "pow" is an exception, being used
	as a plain (non-negative) integer.  Supported operators are: ` + strings.Join(operatorNames(), ", "),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			field   = getField(cmd)
			op, ok  = operators[args[0]]
			operand = args[1:]
		)
		//
		if !ok {
			log.Errorf("unknown operator \"%s\"", args[0])
			os.Exit(2)
		} else if uint(len(operand)) != op.arity {
			log.Errorf("operator \"%s\" expects %d operand(s)", args[0], op.arity)
			os.Exit(2)
		}
		//
		result, err := op.eval(field, operand)
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), result.format(cmd, field))
	},
}

// operator describes an operation which can be evaluated from the command
// line.
type operator struct {
	arity uint
	eval  func(f *zq.Field, args []string) (result, error)
}

// result of evaluating an operator, which is either an element, a boolean or
// nothing at all (e.g. when no square root exists).
type result struct {
	elem    *zq.Element
	boolean *bool
}

func (r result) format(cmd *cobra.Command, field *zq.Field) string {
	switch {
	case r.elem != nil:
		return formatElement(cmd, field, *r.elem)
	case r.boolean != nil:
		return fmt.Sprintf("%t", *r.boolean)
	default:
		return "none"
	}
}

var operators = map[string]operator{
	"add":    binary((*zq.Field).Add),
	"sub":    binary((*zq.Field).Sub),
	"mul":    binary((*zq.Field).Mul),
	"div":    binaryErr((*zq.Field).Div),
	"idiv":   binaryErr((*zq.Field).IDiv),
	"mod":    binaryErr((*zq.Field).Mod),
	"neg":    unary((*zq.Field).Neg),
	"square": unary((*zq.Field).Square),
	"inv":    unaryErr((*zq.Field).Inverse),
	"pow":    {2, evalPow},
	"sqrt":   {1, evalSqrt},
	"eq":     predicate((*zq.Field).Equal),
	"neq":    predicate((*zq.Field).NotEqual),
	"lt":     predicate((*zq.Field).Lt),
	"gt":     predicate((*zq.Field).Gt),
	"leq":    predicate((*zq.Field).Leq),
	"geq":    predicate((*zq.Field).Geq),
	"band":   binary((*zq.Field).BAnd),
	"bor":    binary((*zq.Field).BOr),
	"bxor":   binary((*zq.Field).BXor),
	"bnot":   unary((*zq.Field).BNot),
	"shl":    binary((*zq.Field).Shl),
	"shr":    binary((*zq.Field).Shr),
	"land":   binary((*zq.Field).LAnd),
	"lor":    binary((*zq.Field).LOr),
	"lnot":   unary((*zq.Field).LNot),
}

func operatorNames() []string {
	names := make([]string, 0, len(operators))
	//
	for name := range operators {
		names = append(names, name)
	}
	//
	slices.Sort(names)
	//
	return names
}

func unary(fn func(*zq.Field, zq.Element) zq.Element) operator {
	return unaryErr(func(f *zq.Field, x zq.Element) (zq.Element, error) {
		return fn(f, x), nil
	})
}

func unaryErr(fn func(*zq.Field, zq.Element) (zq.Element, error)) operator {
	return operator{1, func(f *zq.Field, args []string) (result, error) {
		var (
			elems  = parseElements(f, args)
			r, err = fn(f, elems[0])
		)
		//
		return result{elem: &r}, err
	}}
}

func binary(fn func(*zq.Field, zq.Element, zq.Element) zq.Element) operator {
	return binaryErr(func(f *zq.Field, x, y zq.Element) (zq.Element, error) {
		return fn(f, x, y), nil
	})
}

func binaryErr(fn func(*zq.Field, zq.Element, zq.Element) (zq.Element, error)) operator {
	return operator{2, func(f *zq.Field, args []string) (result, error) {
		var (
			elems  = parseElements(f, args)
			r, err = fn(f, elems[0], elems[1])
		)
		//
		return result{elem: &r}, err
	}}
}

func predicate(fn func(*zq.Field, zq.Element, zq.Element) bool) operator {
	return operator{2, func(f *zq.Field, args []string) (result, error) {
		var (
			elems = parseElements(f, args)
			b     = fn(f, elems[0], elems[1])
		)
		//
		return result{boolean: &b}, nil
	}}
}

func evalPow(f *zq.Field, args []string) (result, error) {
	var (
		base     = parseElements(f, args[:1])[0]
		exponent = new(big.Int)
		text     = args[1]
		radix    = 10
	)
	//
	if strings.HasPrefix(text, "0x") {
		text, radix = text[2:], 16
	}
	//
	if _, ok := exponent.SetString(text, radix); !ok || exponent.Sign() < 0 {
		return result{}, errors.Newf("invalid exponent \"%s\"", args[1])
	}
	//
	r := f.Pow(base, exponent)
	//
	return result{elem: &r}, nil
}

func evalSqrt(f *zq.Field, args []string) (result, error) {
	var (
		n     = parseElements(f, args)[0]
		r, ok = f.Sqrt(n)
	)
	//
	if !ok {
		return result{}, nil
	}
	//
	return result{elem: &r}, nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
