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

// Package cast implements the scalar type-promotion kernels planners insert
// when a function signature requires a wider numeric type than the one
// actually supplied (e.g. Int32 -> Int64 before a same-width arithmetic
// kernel, or Decimal -> Float64 for division).
package cast

import (
	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/executor"
	"github.com/dolthub/bullet/scalar"
)

// ToFloat64 casts any supported numeric-family array to Float64: integers
// widen exactly, Decimal64/Decimal128 rescale through their coefficient, and
// Float32 widens via the standard IEEE conversion.
func ToFloat64(in *array.Array) (*array.Array, error) {
	dt := datatype.NewFloat64()
	switch in.DataType.ID {
	case datatype.Int8:
		return runUnary(in, dt, func(v int8) float64 { return float64(v) })
	case datatype.Int16:
		return runUnary(in, dt, func(v int16) float64 { return float64(v) })
	case datatype.Int32:
		return runUnary(in, dt, func(v int32) float64 { return float64(v) })
	case datatype.Int64:
		return runUnary(in, dt, func(v int64) float64 { return float64(v) })
	case datatype.UInt8:
		return runUnary(in, dt, func(v uint8) float64 { return float64(v) })
	case datatype.UInt16:
		return runUnary(in, dt, func(v uint16) float64 { return float64(v) })
	case datatype.UInt32:
		return runUnary(in, dt, func(v uint32) float64 { return float64(v) })
	case datatype.UInt64:
		return runUnary(in, dt, func(v uint64) float64 { return float64(v) })
	case datatype.Float32:
		return runUnary(in, dt, func(v float32) float64 { return float64(v) })
	case datatype.Float64:
		return runUnary(in, dt, func(v float64) float64 { return v })
	case datatype.Decimal64:
		scale := in.DataType.Scale
		return runUnary(in, dt, func(v int64) float64 { return scalar.Decimal64{Unscaled: v}.AsFloat64(scale) })
	case datatype.Decimal128:
		scale := in.DataType.Scale
		return runUnary(in, dt, func(v [2]uint64) float64 { return scalar.Decimal128FromRaw(v).AsFloat64(scale) })
	default:
		return nil, errs.NoMatchingSignature("cast_float64", []string{in.DataType.String()})
	}
}

// ToInt64 widens any same-width-or-narrower signed integer type to Int64.
// UInt8/UInt16/UInt32 inputs widen without a sign check, mirroring the
// target language's defined unsigned-to-signed widening; UInt64 is not
// accepted.
func ToInt64(in *array.Array) (*array.Array, error) {
	dt := datatype.NewInt64()
	switch in.DataType.ID {
	case datatype.Int8:
		return runUnary(in, dt, func(v int8) int64 { return int64(v) })
	case datatype.Int16:
		return runUnary(in, dt, func(v int16) int64 { return int64(v) })
	case datatype.Int32:
		return runUnary(in, dt, func(v int32) int64 { return int64(v) })
	case datatype.Int64:
		return runUnary(in, dt, func(v int64) int64 { return v })
	case datatype.UInt8:
		return runUnary(in, dt, func(v uint8) int64 { return int64(v) })
	case datatype.UInt16:
		return runUnary(in, dt, func(v uint16) int64 { return int64(v) })
	case datatype.UInt32:
		return runUnary(in, dt, func(v uint32) int64 { return int64(v) })
	default:
		return nil, errs.NoMatchingSignature("cast_int64", []string{in.DataType.String()})
	}
}

func runUnary[In, Out any](in *array.Array, dt datatype.DataType, f func(In) Out) (*array.Array, error) {
	out := array.NewPrimitiveBuilder[Out](dt, in.LogicalLen())
	if err := executor.ExecuteUnary(in, out, f); err != nil {
		return nil, err
	}
	return out.Finish(), nil
}
