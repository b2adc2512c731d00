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

// Package executor implements the row drivers every kernel in this module
// is built on: unary, binary, and list-reducing walks over Arrays that
// honor validity and dictionary indirection uniformly, so individual
// kernels never re-derive NULL propagation or selection resolution.
package executor

import (
	"github.com/dolthub/bullet/array"
)

// ExecuteUnary walks in's logical rows 0..in.LogicalLen(): where the row is
// valid, f is invoked with the physical value and its result appended to
// out; where the row is invalid (or its dictionary source is), out gets a
// NULL without f being called. Nothing here allocates per row; out must
// already be sized from in.LogicalLen() by the caller.
func ExecuteUnary[In, Out any](in *array.Array, out *array.PrimitiveBuilder[Out], f func(In) Out) error {
	n := in.LogicalLen()
	for i := 0; i < n; i++ {
		v, valid, err := array.ValueAt[In](in, i)
		if err != nil {
			return err
		}
		if !valid {
			out.AppendNull()
			continue
		}
		out.Append(f(v))
	}
	return nil
}

// ExecuteUnaryVarlen is ExecuteUnary specialized for Utf8/Binary input,
// whose physical value is read as raw bytes rather than through
// storage.Primitive.
func ExecuteUnaryVarlen[Out any](in *array.Array, out *array.PrimitiveBuilder[Out], f func([]byte) Out) error {
	n := in.LogicalLen()
	for i := 0; i < n; i++ {
		v, valid, err := array.BytesAt(in, i)
		if err != nil {
			return err
		}
		if !valid {
			out.AppendNull()
			continue
		}
		out.Append(f(v))
	}
	return nil
}
