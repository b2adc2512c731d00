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

package function

import (
	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/kernel/arith"
	"github.com/dolthub/bullet/kernel/similarity"
	"github.com/dolthub/bullet/kernel/strfn"
)

var arithIntegerIDs = []datatype.ID{
	datatype.Int8, datatype.Int16, datatype.Int32, datatype.Int64,
	datatype.UInt8, datatype.UInt16, datatype.UInt32, datatype.UInt64,
}

func arithFunction(name string, op func(left, right *array.Array) (*array.Array, error)) *ScalarFunction {
	fn := &ScalarFunction{Name: name}
	for _, id := range arithIntegerIDs {
		fn.Signatures = append(fn.Signatures, Signature{Positional: []datatype.ID{id, id}, Return: id})
		fn.Kernels = append(fn.Kernels, wrapArith(op))
	}
	fn.Signatures = append(fn.Signatures,
		Signature{Positional: []datatype.ID{datatype.Float32, datatype.Float32}, Return: datatype.Float32},
		Signature{Positional: []datatype.ID{datatype.Float64, datatype.Float64}, Return: datatype.Float64},
	)
	fn.Kernels = append(fn.Kernels, wrapArith(op), wrapArith(op))
	return fn
}

func wrapArith(op func(left, right *array.Array) (*array.Array, error)) Kernel {
	return func(inputs []*array.Array) (*array.Array, error) {
		return op(inputs[0], inputs[1])
	}
}

// RegisterBuiltins installs every kernel-backed function this runtime
// ships (arithmetic, string length, and L2 distance) into r.
func RegisterBuiltins(r *Registry) {
	r.Register(arithFunction("add", arith.Add))
	r.Register(arithFunction("sub", arith.Sub))
	r.Register(arithFunction("mul", arith.Mul))
	r.Register(arithFunction("div", arith.Div))
	r.Register(arithFunction("rem", arith.Rem))

	lengthLike := func(name string, aliases []string, k func(*array.Array) (*array.Array, error)) *ScalarFunction {
		return &ScalarFunction{
			Name:    name,
			Aliases: aliases,
			Signatures: []Signature{
				{Positional: []datatype.ID{datatype.Utf8}, Return: datatype.Int64},
				{Positional: []datatype.ID{datatype.Binary}, Return: datatype.Int64},
			},
			Kernels: []Kernel{
				func(inputs []*array.Array) (*array.Array, error) { return k(inputs[0]) },
				func(inputs []*array.Array) (*array.Array, error) { return k(inputs[0]) },
			},
		}
	}
	r.Register(lengthLike("length", []string{"char_length", "character_length"}, strfn.Length))
	r.Register(lengthLike("byte_length", []string{"octet_length"}, strfn.ByteLength))
	r.Register(lengthLike("bit_length", nil, strfn.BitLength))

	r.Register(&ScalarFunction{
		Name: "l2_distance",
		Signatures: []Signature{
			{Positional: []datatype.ID{datatype.List, datatype.List}, Return: datatype.Float64},
		},
		Kernels: []Kernel{
			func(inputs []*array.Array) (*array.Array, error) { return similarity.L2Distance(inputs[0], inputs[1]) },
		},
	})
}
