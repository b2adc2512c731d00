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

package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/scalar"
)

func TestToFloat64FromInt32(t *testing.T) {
	in := array.FromSlice(datatype.NewInt32(), []int32{1, -2, 3})
	result, err := ToFloat64(in)
	require.NoError(t, err)
	assert.Equal(t, datatype.Float64, result.DataType.ID)
	v1, _ := result.LogicalValue(1)
	assert.Equal(t, float64(-2), v1.Float64())
}

func TestToFloat64FromDecimal64Rescales(t *testing.T) {
	in := array.FromDecimal64Slice(10, 2, []scalar.Decimal64{{Unscaled: 12345}}) // 123.45
	result, err := ToFloat64(in)
	require.NoError(t, err)
	v0, _ := result.LogicalValue(0)
	assert.InDelta(t, 123.45, v0.Float64(), 1e-9)
}

func TestToFloat64FromDecimal128Rescales(t *testing.T) {
	in := array.FromDecimal128Slice(30, 2, []scalar.Decimal128{{Hi: 0, Lo: 12345}}) // 123.45
	result, err := ToFloat64(in)
	require.NoError(t, err)
	v0, _ := result.LogicalValue(0)
	assert.InDelta(t, 123.45, v0.Float64(), 1e-9)
}

func TestToFloat64PropagatesNull(t *testing.T) {
	one := int32(1)
	in := array.FromOptionSlice(datatype.NewInt32(), []*int32{&one, nil})
	result, err := ToFloat64(in)
	require.NoError(t, err)
	v1, _ := result.LogicalValue(1)
	assert.True(t, v1.IsNull())
}

func TestToInt64FromInt8Widens(t *testing.T) {
	in := array.FromSlice(datatype.NewInt8(), []int8{-5, 127})
	result, err := ToInt64(in)
	require.NoError(t, err)
	assert.Equal(t, datatype.Int64, result.DataType.ID)
	v0, _ := result.LogicalValue(0)
	assert.Equal(t, int64(-5), v0.Int64())
}

func TestToFloat64RejectsUnsupportedType(t *testing.T) {
	in := array.FromStrings([]string{"x"})
	_, err := ToFloat64(in)
	assert.Error(t, err)
}
