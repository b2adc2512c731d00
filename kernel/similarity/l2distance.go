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

// Package similarity implements vector-distance kernels over List-typed
// columns, the shape used for embedding comparisons.
package similarity

import (
	"math"

	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/executor"
	"github.com/dolthub/bullet/storage"
)

// l2Reducer accumulates the running sum of squared differences between
// paired list elements; Finish takes the square root.
type l2Reducer struct {
	sumSquares float64
}

func (r *l2Reducer) Init(leftLen, rightLen int) error {
	if leftLen != rightLen {
		return errs.Newf(errs.InvalidInputTypes,
			"l2_distance: list lengths must match, got %d and %d", leftLen, rightLen)
	}
	return nil
}

func (r *l2Reducer) PutValues(a, b float64) {
	d := a - b
	r.sumSquares += d * d
}

func (r *l2Reducer) Finish() float64 {
	return math.Sqrt(r.sumSquares)
}

func newL2Reducer() executor.BinaryListReducer[float64, float64] {
	return &l2Reducer{}
}

// L2Distance computes the Euclidean distance between paired rows of two
// List columns sharing the same Float32/Float64/Float16 element type. Rows
// with mismatched list length abort the whole kernel; NULL list elements do
// likewise.
func L2Distance(left, right *array.Array) (*array.Array, error) {
	if left.DataType.ID != datatype.List || right.DataType.ID != datatype.List {
		return nil, errs.NoMatchingSignature("l2_distance", []string{left.DataType.String(), right.DataType.String()})
	}
	if left.DataType.Inner == nil || right.DataType.Inner == nil {
		return nil, errs.InternalInvariantf("similarity: List datatype missing Inner")
	}

	out := array.NewPrimitiveBuilder[float64](datatype.NewFloat64(), left.LogicalLen())

	elemID := left.DataType.Inner.ID
	switch elemID {
	case datatype.Float64:
		if err := executor.ExecuteBinaryList(left, right, out, newL2Reducer); err != nil {
			return nil, err
		}
	case datatype.Float32:
		if err := runFloat32(left, right, out); err != nil {
			return nil, err
		}
	case datatype.Float16:
		if err := runFloat16(left, right, out); err != nil {
			return nil, err
		}
	default:
		return nil, errs.NoMatchingSignature("l2_distance", []string{left.DataType.String(), right.DataType.String()})
	}
	return out.Finish(), nil
}

type float32Reducer struct {
	sumSquares float64
}

func (r *float32Reducer) Init(leftLen, rightLen int) error {
	if leftLen != rightLen {
		return errs.Newf(errs.InvalidInputTypes,
			"l2_distance: list lengths must match, got %d and %d", leftLen, rightLen)
	}
	return nil
}

func (r *float32Reducer) PutValues(a, b float32) {
	d := float64(a) - float64(b)
	r.sumSquares += d * d
}

func (r *float32Reducer) Finish() float64 {
	return math.Sqrt(r.sumSquares)
}

func runFloat32(left, right *array.Array, out *array.PrimitiveBuilder[float64]) error {
	return executor.ExecuteBinaryList(left, right, out, func() executor.BinaryListReducer[float32, float64] {
		return &float32Reducer{}
	})
}

// float16Reducer consumes raw uint16 bit patterns (the physical storage for
// Float16) and decodes each to float32 before accumulating.
type float16Reducer struct {
	sumSquares float64
}

func (r *float16Reducer) Init(leftLen, rightLen int) error {
	if leftLen != rightLen {
		return errs.Newf(errs.InvalidInputTypes,
			"l2_distance: list lengths must match, got %d and %d", leftLen, rightLen)
	}
	return nil
}

func (r *float16Reducer) PutValues(a, b uint16) {
	d := float64(storage.Float16ToFloat32(a)) - float64(storage.Float16ToFloat32(b))
	r.sumSquares += d * d
}

func (r *float16Reducer) Finish() float64 {
	return math.Sqrt(r.sumSquares)
}

func runFloat16(left, right *array.Array, out *array.PrimitiveBuilder[float64]) error {
	return executor.ExecuteBinaryList(left, right, out, func() executor.BinaryListReducer[uint16, float64] {
		return &float16Reducer{}
	})
}
