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

package arith

import (
	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/executor"
)

// runBinary drives a total (never-failing) binary kernel over left and
// right, producing a freshly built Out array of the given logical type.
func runBinary[A, B, Out any](left, right *array.Array, dt datatype.DataType, f func(A, B) Out) (*array.Array, error) {
	out := array.NewPrimitiveBuilder[Out](dt, left.LogicalLen())
	if err := executor.ExecuteBinary(left, right, out, f); err != nil {
		return nil, err
	}
	return out.Finish(), nil
}

// runBinaryDivLike drives the integer division/remainder kernels: a
// zero-valued divisor produces a NULL output for that row rather than
// panicking or aborting the whole kernel, the documented behavior chosen
// for testable property 8's "target language's defined wrap" clause.
func runBinaryDivLike[T integer](left, right *array.Array, dt datatype.DataType, isZero func(T) bool, f func(a, b T) T) (*array.Array, error) {
	if left.LogicalLen() != right.LogicalLen() {
		return nil, errs.Newf(errs.InternalInvariantViolated,
			"arith: division kernel requires equal logical length, got %d and %d", left.LogicalLen(), right.LogicalLen())
	}
	out := array.NewPrimitiveBuilder[T](dt, left.LogicalLen())
	n := left.LogicalLen()
	for i := 0; i < n; i++ {
		a, aValid, err := array.ValueAt[T](left, i)
		if err != nil {
			return nil, err
		}
		b, bValid, err := array.ValueAt[T](right, i)
		if err != nil {
			return nil, err
		}
		if !aValid || !bValid || isZero(b) {
			out.AppendNull()
			continue
		}
		out.Append(f(a, b))
	}
	return out.Finish(), nil
}
