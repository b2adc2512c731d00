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

package executor

import (
	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/errs"
)

// BinaryListReducer accumulates the per-row comparison of two same-length
// child ranges into a single output value (e.g. L2 distance's running sum
// of squared differences). A fresh reducer is constructed for every row.
type BinaryListReducer[Elem, Out any] interface {
	// Init is told both child lengths before any PutValues call; kernels
	// that require equal-length lists (e.g. L2 distance) return an error
	// here to abort the whole kernel invocation.
	Init(leftLen, rightLen int) error
	PutValues(a, b Elem)
	Finish() Out
}

// ExecuteBinaryList walks two List-typed arrays of equal logical length.
// Per row, it locates each side's child sub-range, rejects NULL elements
// inside either list, and drives a freshly constructed BinaryListReducer
// over the paired element values.
func ExecuteBinaryList[Elem, Out any](left, right *array.Array, out *array.PrimitiveBuilder[Out], newReducer func() BinaryListReducer[Elem, Out]) error {
	if left.LogicalLen() != right.LogicalLen() {
		return errs.Newf(errs.InternalInvariantViolated,
			"executor: list kernel requires equal logical length, got %d and %d", left.LogicalLen(), right.LogicalLen())
	}
	n := left.LogicalLen()
	for i := 0; i < n; i++ {
		lChild, lOff, lLen, lValid, err := array.ListRangeAt(left, i)
		if err != nil {
			return err
		}
		rChild, rOff, rLen, rValid, err := array.ListRangeAt(right, i)
		if err != nil {
			return err
		}
		if !lValid || !rValid {
			out.AppendNull()
			continue
		}

		reducer := newReducer()
		if err := reducer.Init(lLen, rLen); err != nil {
			return err
		}

		for k := 0; k < lLen; k++ {
			a, aValid, err := array.ValueAt[Elem](lChild, lOff+k)
			if err != nil {
				return err
			}
			if !aValid {
				return errs.Newf(errs.InternalInvariantViolated, "executor: list kernel encountered a NULL element at row %d", i)
			}
			b, bValid, err := array.ValueAt[Elem](rChild, rOff+k)
			if err != nil {
				return err
			}
			if !bValid {
				return errs.Newf(errs.InternalInvariantViolated, "executor: list kernel encountered a NULL element at row %d", i)
			}
			reducer.PutValues(a, b)
		}

		out.Append(reducer.Finish())
	}
	return nil
}
