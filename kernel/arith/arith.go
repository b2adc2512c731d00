// Copyright 2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arith implements the arithmetic kernels (+ - * / %) over every
// documented type pairing: same-width integers, same-width floats,
// Date32±Int64, Interval*Int64, and the simplified Decimal64/Decimal64 and
// Decimal128/Decimal128 pairings (+ - * / only; the result keeps the left
// operand's precision and scale).
package arith

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/scalar"
)

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Op names the five supported arithmetic operators.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpRem
)

// Add, Sub, Mul, Div, Rem evaluate the named operator over left and right,
// dispatching on the pair of logical DataTypes to the matching kernel.
// Unsupported pairings return InvalidInputTypes.
func Add(left, right *array.Array) (*array.Array, error) { return Eval(OpAdd, left, right) }
func Sub(left, right *array.Array) (*array.Array, error) { return Eval(OpSub, left, right) }
func Mul(left, right *array.Array) (*array.Array, error) { return Eval(OpMul, left, right) }
func Div(left, right *array.Array) (*array.Array, error) { return Eval(OpDiv, left, right) }
func Rem(left, right *array.Array) (*array.Array, error) { return Eval(OpRem, left, right) }

// Eval is the single entry point the scalar function registry plans
// against: it resolves the concrete kernel for (op, left.DataType,
// right.DataType) and executes it.
func Eval(op Op, left, right *array.Array) (*array.Array, error) {
	lid, rid := left.DataType.ID, right.DataType.ID

	switch {
	case lid == rid && isIntegerID(lid):
		return evalSameIntegerID(op, lid, left, right)
	case lid == datatype.Float32 && rid == datatype.Float32:
		return evalFloat[float32](op, datatype.NewFloat32(), left, right)
	case lid == datatype.Float64 && rid == datatype.Float64:
		return evalFloat[float64](op, datatype.NewFloat64(), left, right)
	case lid == datatype.Date32 && rid == datatype.Int64 && (op == OpAdd || op == OpSub):
		return evalDate32Int64(op, left, right)
	case lid == datatype.Interval && rid == datatype.Int64 && op == OpMul:
		return evalIntervalMulInt64(left, right)
	case lid == datatype.Decimal64 && rid == datatype.Decimal64:
		return evalDecimal64(op, left, right)
	case lid == datatype.Decimal128 && rid == datatype.Decimal128:
		return evalDecimal128(op, left, right)
	default:
		return nil, errs.NoMatchingSignature(opName(op), []string{left.DataType.String(), right.DataType.String()})
	}
}

func opName(op Op) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	default:
		return "?"
	}
}

func isIntegerID(id datatype.ID) bool {
	switch id {
	case datatype.Int8, datatype.Int16, datatype.Int32, datatype.Int64,
		datatype.UInt8, datatype.UInt16, datatype.UInt32, datatype.UInt64:
		return true
	default:
		return false
	}
}

func evalSameIntegerID(op Op, id datatype.ID, left, right *array.Array) (*array.Array, error) {
	switch id {
	case datatype.Int8:
		return evalInteger[int8](op, datatype.NewInt8(), left, right)
	case datatype.Int16:
		return evalInteger[int16](op, datatype.NewInt16(), left, right)
	case datatype.Int32:
		return evalInteger[int32](op, datatype.NewInt32(), left, right)
	case datatype.Int64:
		return evalInteger[int64](op, datatype.NewInt64(), left, right)
	case datatype.UInt8:
		return evalInteger[uint8](op, datatype.NewUInt8(), left, right)
	case datatype.UInt16:
		return evalInteger[uint16](op, datatype.NewUInt16(), left, right)
	case datatype.UInt32:
		return evalInteger[uint32](op, datatype.NewUInt32(), left, right)
	case datatype.UInt64:
		return evalInteger[uint64](op, datatype.NewUInt64(), left, right)
	default:
		return nil, errs.InternalInvariantf("arith: unreachable integer id %s", id)
	}
}

// evalInteger drives the shared integer kernel: +,-,* never fail; /,% treat
// division by zero as the documented NULL-producing behavior for that row
// rather than aborting the whole kernel or panicking.
func evalInteger[T integer](op Op, dt datatype.DataType, left, right *array.Array) (*array.Array, error) {
	switch op {
	case OpAdd:
		return runBinary(left, right, dt, func(a, b T) T { return a + b })
	case OpSub:
		return runBinary(left, right, dt, func(a, b T) T { return a - b })
	case OpMul:
		return runBinary(left, right, dt, func(a, b T) T { return a * b })
	case OpDiv:
		return runBinaryDivLike(left, right, dt, func(b T) bool { return b == 0 }, func(a, b T) T { return a / b })
	case OpRem:
		return runBinaryDivLike(left, right, dt, func(b T) bool { return b == 0 }, func(a, b T) T { return a % b })
	default:
		return nil, errs.InternalInvariantf("arith: unreachable op %d", op)
	}
}

func evalFloat[T ~float32 | ~float64](op Op, dt datatype.DataType, left, right *array.Array) (*array.Array, error) {
	switch op {
	case OpAdd:
		return runBinary(left, right, dt, func(a, b T) T { return a + b })
	case OpSub:
		return runBinary(left, right, dt, func(a, b T) T { return a - b })
	case OpMul:
		return runBinary(left, right, dt, func(a, b T) T { return a * b })
	case OpDiv:
		// IEEE float division by zero is well-defined (+-Inf or NaN); no
		// NULL substitution is performed, unlike the integer kernels.
		return runBinary(left, right, dt, func(a, b T) T { return a / b })
	case OpRem:
		return runBinary(left, right, dt, func(a, b T) T { return T(math.Mod(float64(a), float64(b))) })
	default:
		return nil, errs.InternalInvariantf("arith: unreachable op %d", op)
	}
}

func evalDate32Int64(op Op, left, right *array.Array) (*array.Array, error) {
	sign := int64(1)
	if op == OpSub {
		sign = -1
	}
	return runBinary[int32, int64, int32](left, right, datatype.NewDate32(), func(a int32, b int64) int32 {
		// Documented simplification: Int64 is truncated to i32 without a
		// range check (Open Question 1 in the design notes).
		return a + int32(sign*b)
	})
}

func evalIntervalMulInt64(left, right *array.Array) (*array.Array, error) {
	return runBinary[scalar.Interval, int64, scalar.Interval](left, right, datatype.NewInterval(), func(a scalar.Interval, b int64) scalar.Interval {
		return a.MulInt64(b)
	})
}

// evalDecimal64 implements the documented simplification: +,-,* preserve
// the left operand's precision/scale and ignore overflow (multiply
// overflow returns 0, per Open Question 2); / casts both sides to Float64.
func evalDecimal64(op Op, left, right *array.Array) (*array.Array, error) {
	dt := datatype.NewDecimal64(left.DataType.Precision, left.DataType.Scale)
	if op == OpRem {
		return nil, errs.NoMatchingSignature(opName(op), []string{left.DataType.String(), right.DataType.String()})
	}
	if op == OpDiv {
		return decimalDivAsFloat64(left, right, left.DataType.Scale, right.DataType.Scale)
	}
	return runBinary(left, right, dt, decimal64Op(op))
}

func evalDecimal128(op Op, left, right *array.Array) (*array.Array, error) {
	dt := datatype.NewDecimal128(left.DataType.Precision, left.DataType.Scale)
	if op == OpRem {
		return nil, errs.NoMatchingSignature(opName(op), []string{left.DataType.String(), right.DataType.String()})
	}
	if op == OpDiv {
		return decimalDivAsFloat64(left, right, left.DataType.Scale, right.DataType.Scale)
	}
	return runBinary(left, right, dt, decimal128Op(op))
}

// decimal64Op operates on the raw unscaled int64 coefficient directly: a
// Decimal64 array's physical storage is the same Int64 buffer a plain Int64
// column uses (datatype.DataType.Physical), so the kernel's write side must
// produce int64, not a scalar.Decimal64 wrapper, to agree with how
// physicalInt64Scalar reads it back.
func decimal64Op(op Op) func(a, b int64) int64 {
	switch op {
	case OpAdd:
		return func(a, b int64) int64 { return a + b }
	case OpSub:
		return func(a, b int64) int64 { return a - b }
	case OpMul:
		return func(a, b int64) int64 {
			result := a * b
			if a != 0 && result/a != b {
				return 0 // documented overflow behavior
			}
			return result
		}
	default:
		return func(a, b int64) int64 { return 0 }
	}
}

// decimal128Op operates on the raw [2]uint64 high/low word pair, the
// physical representation a Decimal128 array shares with a bare Int128
// column, converting to scalar.Decimal128 only for the arithmetic itself.
func decimal128Op(op Op) func(a, b [2]uint64) [2]uint64 {
	switch op {
	case OpAdd:
		return func(a, b [2]uint64) [2]uint64 {
			x, y := scalar.Decimal128FromRaw(a), scalar.Decimal128FromRaw(b)
			lo, carry := bits.Add64(x.Lo, y.Lo, 0)
			return scalar.Decimal128{Hi: x.Hi + y.Hi + int64(carry), Lo: lo}.Raw()
		}
	case OpSub:
		return func(a, b [2]uint64) [2]uint64 {
			x, y := scalar.Decimal128FromRaw(a), scalar.Decimal128FromRaw(b)
			lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
			return scalar.Decimal128{Hi: x.Hi - y.Hi - int64(borrow), Lo: lo}.Raw()
		}
	case OpMul:
		return func(a, b [2]uint64) [2]uint64 {
			// Full signed 128-bit multiply; a product that does not fit the
			// 128-bit coefficient yields zero, the same overflow behavior
			// as Decimal64.
			x := new(big.Int).Lsh(big.NewInt(int64(a[0])), 64)
			x.Add(x, new(big.Int).SetUint64(a[1]))
			y := new(big.Int).Lsh(big.NewInt(int64(b[0])), 64)
			y.Add(y, new(big.Int).SetUint64(b[1]))
			p := x.Mul(x, y)
			if p.BitLen() > 127 {
				return [2]uint64{}
			}
			lo := new(big.Int).And(p, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
			return [2]uint64{uint64(new(big.Int).Rsh(p, 64).Int64()), lo}
		}
	default:
		return func(a, b [2]uint64) [2]uint64 { return [2]uint64{} }
	}
}

func decimalDivAsFloat64(left, right *array.Array, leftScale, rightScale int8) (*array.Array, error) {
	if left.DataType.ID == datatype.Decimal128 {
		return runBinary(left, right, datatype.NewFloat64(), func(a, b [2]uint64) float64 {
			return scalar.Decimal128FromRaw(a).AsFloat64(leftScale) / scalar.Decimal128FromRaw(b).AsFloat64(rightScale)
		})
	}
	return runBinary(left, right, datatype.NewFloat64(), func(a, b int64) float64 {
		return scalar.Decimal64{Unscaled: a}.AsFloat64(leftScale) / scalar.Decimal64{Unscaled: b}.AsFloat64(rightScale)
	})
}
