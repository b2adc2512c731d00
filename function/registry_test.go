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

	"github.com/dolthub/bullet/datatype"
)

func TestRegistryLookupByNameAndAlias(t *testing.T) {
	r := NewRegistry()
	fn := addI32Function()
	fn.Aliases = []string{"plus"}
	r.Register(fn)

	_, ok := r.Lookup("add")
	assert.True(t, ok)
	_, ok = r.Lookup("plus")
	assert.True(t, ok)
	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryPlanCachesResult(t *testing.T) {
	r := NewRegistry()
	r.Register(addI32Function())

	inputs := []datatype.DataType{datatype.NewInt32(), datatype.NewInt32()}
	first, err := r.Plan("add", inputs)
	require.NoError(t, err)
	second, err := r.Plan("add", inputs)
	require.NoError(t, err)

	assert.Same(t, first, second, "identical (name, input types) plans must be served from cache")
}

func TestRegistryPlanUnknownFunction(t *testing.T) {
	r := NewRegistry()
	_, err := r.Plan("nonexistent", []datatype.DataType{datatype.NewInt32()})
	assert.Error(t, err)
}
