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
)

func TestEncodeDecodeStateRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Register(addI32Function())

	plan, err := r.Plan("add", []datatype.DataType{datatype.NewInt32(), datatype.NewInt32()})
	require.NoError(t, err)

	wire := plan.EncodeState(0)
	decoded, err := DecodeState(wire, r)
	require.NoError(t, err)

	assert.Equal(t, plan.FunctionName, decoded.FunctionName)
	assert.Equal(t, plan.OutputType, decoded.OutputType)
}

func TestEncodeDecodePreservesDecimalScale(t *testing.T) {
	scaleFn := &ScalarFunction{
		Name: "scaled_add",
		Signatures: []Signature{
			{Positional: []datatype.ID{datatype.Decimal64, datatype.Decimal64}, Return: datatype.Decimal64},
		},
		Kernels: []Kernel{func(inputs []*array.Array) (*array.Array, error) { return inputs[0], nil }},
	}
	r := NewRegistry()
	r.Register(scaleFn)

	plan, err := scaleFn.PlanTyped(
		[]datatype.DataType{datatype.NewDecimal64(10, 4), datatype.NewDecimal64(10, 4)},
		func(sig Signature, inputs []datatype.DataType) datatype.DataType { return inputs[0] },
	)
	require.NoError(t, err)

	wire := plan.EncodeState(0)
	decoded, err := DecodeState(wire, r)
	require.NoError(t, err)
	assert.Equal(t, int8(4), decoded.OutputType.Scale)
	assert.Equal(t, uint8(10), decoded.OutputType.Precision)
}

func TestDecodeStateRejectsUnknownFunction(t *testing.T) {
	r := NewRegistry()
	r.Register(addI32Function())
	plan, err := r.Plan("add", []datatype.DataType{datatype.NewInt32(), datatype.NewInt32()})
	require.NoError(t, err)
	wire := plan.EncodeState(0)

	emptyRegistry := NewRegistry()
	_, err = DecodeState(wire, emptyRegistry)
	assert.Error(t, err)
}
