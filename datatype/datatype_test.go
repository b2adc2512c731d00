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

package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolthub/bullet/physicaltype"
)

func TestSimpleTypesMapToPhysical(t *testing.T) {
	assert.Equal(t, physicaltype.Int32, NewInt32().Physical())
	assert.Equal(t, physicaltype.Float64, NewFloat64().Physical())
	assert.Equal(t, physicaltype.Utf8, NewUtf8().Physical())
	assert.Equal(t, physicaltype.Binary, NewBinary().Physical())
	assert.Equal(t, physicaltype.Interval, NewInterval().Physical())
}

func TestDecimalMapsToIntegerPhysical(t *testing.T) {
	assert.Equal(t, physicaltype.Int64, NewDecimal64(10, 2).Physical())
	assert.Equal(t, physicaltype.Int128, NewDecimal128(38, 4).Physical())
}

func TestDateAndTimestampMapToIntegerPhysical(t *testing.T) {
	assert.Equal(t, physicaltype.Int32, NewDate32().Physical())
	assert.Equal(t, physicaltype.Int64, NewDate64().Physical())
	assert.Equal(t, physicaltype.Int64, NewTimestamp(Microsecond).Physical())
}

func TestListMapsToListPhysical(t *testing.T) {
	lt := NewList(NewInt64())
	assert.Equal(t, physicaltype.List, lt.Physical())
}

func TestDecimalEqualityComparesScale(t *testing.T) {
	a := NewDecimal64(10, 2)
	b := NewDecimal64(10, 2)
	c := NewDecimal64(10, 3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestTimestampEqualityComparesUnit(t *testing.T) {
	a := NewTimestamp(Second)
	b := NewTimestamp(Second)
	c := NewTimestamp(Nanosecond)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestListEqualityRecurses(t *testing.T) {
	a := NewList(NewInt32())
	b := NewList(NewInt32())
	c := NewList(NewInt64())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestStructEquality(t *testing.T) {
	a := NewStruct([]StructField{{Name: "x", Type: NewInt32()}})
	b := NewStruct([]StructField{{Name: "x", Type: NewInt32()}})
	c := NewStruct([]StructField{{Name: "y", Type: NewInt32()}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "Decimal64(10,2)", NewDecimal64(10, 2).String())
	assert.Equal(t, "Timestamp(Microsecond)", NewTimestamp(Microsecond).String())
	assert.Equal(t, "List(Int64)", NewList(NewInt64()).String())
	assert.Equal(t, "Int32", NewInt32().String())
}
