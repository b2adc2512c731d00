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

// ExecuteBinary walks two arrays of equal logical length: out.is_null(i)
// iff either input is null at i; otherwise f combines both physical
// values. Dictionary-encoded operands are followed transparently by
// array.ValueAt on each side independently.
func ExecuteBinary[A, B, Out any](left *array.Array, right *array.Array, out *array.PrimitiveBuilder[Out], f func(A, B) Out) error {
	if left.LogicalLen() != right.LogicalLen() {
		return errs.Newf(errs.InternalInvariantViolated,
			"executor: binary kernel requires equal logical length, got %d and %d", left.LogicalLen(), right.LogicalLen())
	}
	n := left.LogicalLen()
	for i := 0; i < n; i++ {
		a, aValid, err := array.ValueAt[A](left, i)
		if err != nil {
			return err
		}
		b, bValid, err := array.ValueAt[B](right, i)
		if err != nil {
			return err
		}
		if !aValid || !bValid {
			out.AppendNull()
			continue
		}
		out.Append(f(a, b))
	}
	return nil
}

// ExecuteBinaryFallible is ExecuteBinary for kernels that may fail per-row
// (e.g. division by zero): f's error aborts the whole kernel, matching the
// "a kernel either produces a full output array or no array" contract.
func ExecuteBinaryFallible[A, B, Out any](left *array.Array, right *array.Array, out *array.PrimitiveBuilder[Out], f func(A, B) (Out, error)) error {
	if left.LogicalLen() != right.LogicalLen() {
		return errs.Newf(errs.InternalInvariantViolated,
			"executor: binary kernel requires equal logical length, got %d and %d", left.LogicalLen(), right.LogicalLen())
	}
	n := left.LogicalLen()
	for i := 0; i < n; i++ {
		a, aValid, err := array.ValueAt[A](left, i)
		if err != nil {
			return err
		}
		b, bValid, err := array.ValueAt[B](right, i)
		if err != nil {
			return err
		}
		if !aValid || !bValid {
			out.AppendNull()
			continue
		}
		result, err := f(a, b)
		if err != nil {
			return err
		}
		out.Append(result)
	}
	return nil
}
