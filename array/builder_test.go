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

package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/bullet/datatype"
)

func TestPrimitiveBuilderAllValidSentinel(t *testing.T) {
	b := NewPrimitiveBuilder[int32](datatype.NewInt32(), 3)
	b.Append(1)
	b.Append(2)
	b.Append(3)
	a := b.Finish()
	assert.True(t, a.Validity.AllValid())
}

func TestPrimitiveBuilderMixedValidity(t *testing.T) {
	b := NewPrimitiveBuilder[int32](datatype.NewInt32(), 3)
	b.Append(1)
	b.AppendNull()
	b.Append(3)
	a := b.Finish()

	assert.False(t, a.Validity.AllValid())
	v1, err := a.LogicalValue(1)
	require.NoError(t, err)
	assert.True(t, v1.IsNull())
}

func TestVarlenBuilderRoundTrip(t *testing.T) {
	b := NewVarlenBuilder(datatype.NewUtf8(), 2)
	b.Append([]byte("hi"))
	b.AppendNull()
	a := b.Finish()

	v0, _ := a.LogicalValue(0)
	assert.Equal(t, "hi", v0.Utf8())
	v1, _ := a.LogicalValue(1)
	assert.True(t, v1.IsNull())
}
