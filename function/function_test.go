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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/kernel/arith"
)

func addI32Function() *ScalarFunction {
	return &ScalarFunction{
		Name: "add",
		Signatures: []Signature{
			{Positional: []datatype.ID{datatype.Int32, datatype.Int32}, Return: datatype.Int32},
		},
		Kernels: []Kernel{
			func(inputs []*array.Array) (*array.Array, error) {
				return arith.Add(inputs[0], inputs[1])
			},
		},
	}
}

func TestPlanMatchesDeclaredSignature(t *testing.T) {
	fn := addI32Function()
	plan, err := fn.Plan([]datatype.ID{datatype.Int32, datatype.Int32})
	require.NoError(t, err)
	assert.Equal(t, datatype.Int32, plan.OutputType.ID)
}

func TestPlanRejectsUnmatchedTypes(t *testing.T) {
	fn := addI32Function()
	_, err := fn.Plan([]datatype.ID{datatype.Utf8, datatype.Utf8})
	assert.Error(t, err)
}

func TestPlanExecutesBoundKernel(t *testing.T) {
	fn := addI32Function()
	plan, err := fn.Plan([]datatype.ID{datatype.Int32, datatype.Int32})
	require.NoError(t, err)

	left := array.FromSlice(datatype.NewInt32(), []int32{1, 2, 3})
	right := array.FromSlice(datatype.NewInt32(), []int32{4, 5, 6})
	result, err := plan.Execute([]*array.Array{left, right})
	require.NoError(t, err)

	v0, _ := result.LogicalValue(0)
	assert.Equal(t, int32(5), v0.Int32())
}

func TestVariadicSignatureMatchesExtraArgs(t *testing.T) {
	variadicID := datatype.Utf8
	sig := Signature{Positional: []datatype.ID{datatype.Utf8}, Variadic: &variadicID, Return: datatype.Utf8}
	assert.True(t, sig.Matches([]datatype.ID{datatype.Utf8, datatype.Utf8, datatype.Utf8}))
	assert.False(t, sig.Matches([]datatype.ID{datatype.Utf8, datatype.Int32}))
	assert.False(t, sig.Matches(nil))
}
