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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/selection"
)

func TestExecuteUnaryDoubles(t *testing.T) {
	in := array.FromSlice(datatype.NewInt32(), []int32{1, 2, 3})
	out := array.NewPrimitiveBuilder[int32](datatype.NewInt32(), in.LogicalLen())

	err := ExecuteUnary(in, out, func(v int32) int32 { return v * 2 })
	require.NoError(t, err)

	result := out.Finish()
	v0, _ := result.LogicalValue(0)
	assert.Equal(t, int32(2), v0.Int32())
	v2, _ := result.LogicalValue(2)
	assert.Equal(t, int32(6), v2.Int32())
}

func TestExecuteUnarySkipsNullWithoutCallingF(t *testing.T) {
	one, three := int32(1), int32(3)
	in := array.FromOptionSlice(datatype.NewInt32(), []*int32{&one, nil, &three})
	out := array.NewPrimitiveBuilder[int32](datatype.NewInt32(), in.LogicalLen())

	called := 0
	err := ExecuteUnary(in, out, func(v int32) int32 {
		called++
		return v
	})
	require.NoError(t, err)
	assert.Equal(t, 2, called)

	result := out.Finish()
	v1, _ := result.LogicalValue(1)
	assert.True(t, v1.IsNull())
}

func TestExecuteUnaryVarlenByteLength(t *testing.T) {
	in := array.FromStrings([]string{"ab", "hello"})
	out := array.NewPrimitiveBuilder[int64](datatype.NewInt64(), in.LogicalLen())

	err := ExecuteUnaryVarlen(in, out, func(b []byte) int64 { return int64(len(b)) })
	require.NoError(t, err)

	result := out.Finish()
	v0, _ := result.LogicalValue(0)
	assert.Equal(t, int64(2), v0.Int64())
	v1, _ := result.LogicalValue(1)
	assert.Equal(t, int64(5), v1.Int64())
}

func TestExecuteUnaryFollowsDictionary(t *testing.T) {
	base := array.FromSlice(datatype.NewInt32(), []int32{10, 20, 30})
	sel, err := base.Select(selection.FromIndices([]int{2, 0}))
	require.NoError(t, err)

	out := array.NewPrimitiveBuilder[int32](datatype.NewInt32(), sel.LogicalLen())
	err = ExecuteUnary(sel, out, func(v int32) int32 { return v + 1 })
	require.NoError(t, err)

	result := out.Finish()
	v0, _ := result.LogicalValue(0)
	assert.Equal(t, int32(31), v0.Int32())
	v1, _ := result.LogicalValue(1)
	assert.Equal(t, int32(11), v1.Int32())
}
