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

func TestRegisterBuiltinsPlansAddI32(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)

	plan, err := r.Plan("add", []datatype.DataType{datatype.NewInt32(), datatype.NewInt32()})
	require.NoError(t, err)

	left := array.FromSlice(datatype.NewInt32(), []int32{1, 2, 3})
	right := array.FromSlice(datatype.NewInt32(), []int32{4, 5, 6})
	result, err := plan.Execute([]*array.Array{left, right})
	require.NoError(t, err)
	v0, _ := result.LogicalValue(0)
	assert.Equal(t, int32(5), v0.Int32())
}

func TestRegisterBuiltinsPlansLengthByAlias(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)

	plan, err := r.Plan("char_length", []datatype.DataType{datatype.NewUtf8()})
	require.NoError(t, err)

	result, err := plan.Execute([]*array.Array{array.FromStrings([]string{"abc"})})
	require.NoError(t, err)
	v0, _ := result.LogicalValue(0)
	assert.Equal(t, int64(3), v0.Int64())
}

func TestRegisterBuiltinsRegistersL2Distance(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)

	_, ok := r.Lookup("l2_distance")
	assert.True(t, ok)
}
