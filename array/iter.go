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
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/physicaltype"
	"github.com/dolthub/bullet/scalar"
)

// FromSlice builds an all-valid fixed-width array from an exact-size slice
// of T. T must match the Go representation type dt.Physical() expects.
func FromSlice[T any](dt datatype.DataType, values []T) *Array {
	b := NewPrimitiveBuilder[T](dt, len(values))
	for _, v := range values {
		b.Append(v)
	}
	return b.Finish()
}

// FromOptionSlice builds a fixed-width array from a slice of *T, where a nil
// entry marks that row invalid (NULL) and fills the slot with T's zero
// value, mirroring an iterator of Option<T>.
func FromOptionSlice[T any](dt datatype.DataType, values []*T) *Array {
	b := NewPrimitiveBuilder[T](dt, len(values))
	for _, v := range values {
		if v == nil {
			b.AppendNull()
		} else {
			b.Append(*v)
		}
	}
	return b.Finish()
}

// FromDecimal64Slice builds a Decimal64 array from already-scaled Decimal64
// values. Each row's raw unscaled coefficient becomes the physical Int64
// payload, matching how every Decimal64 column is stored and how
// physicalInt64Scalar reads it back.
func FromDecimal64Slice(precision uint8, scale int8, values []scalar.Decimal64) *Array {
	dt := datatype.NewDecimal64(precision, scale)
	b := NewPrimitiveBuilder[int64](dt, len(values))
	for _, v := range values {
		b.Append(v.Unscaled)
	}
	return b.Finish()
}

// FromDecimal128Slice is FromDecimal64Slice for Decimal128: each row's raw
// high/low word pair becomes the physical Int128 payload.
func FromDecimal128Slice(precision uint8, scale int8, values []scalar.Decimal128) *Array {
	dt := datatype.NewDecimal128(precision, scale)
	b := NewPrimitiveBuilder[[2]uint64](dt, len(values))
	for _, v := range values {
		b.Append(v.Raw())
	}
	return b.Finish()
}

// FromStrings builds an all-valid Utf8 array.
func FromStrings(values []string) *Array {
	b := NewVarlenBuilder(datatype.NewUtf8(), len(values))
	for _, v := range values {
		b.Append([]byte(v))
	}
	return b.Finish()
}

// FromOptionStrings builds a Utf8 array where a nil entry is NULL.
func FromOptionStrings(values []*string) *Array {
	b := NewVarlenBuilder(datatype.NewUtf8(), len(values))
	for _, v := range values {
		if v == nil {
			b.AppendNull()
		} else {
			b.Append([]byte(*v))
		}
	}
	return b.Finish()
}

// FromBinaries builds an all-valid Binary array.
func FromBinaries(values [][]byte) *Array {
	b := NewVarlenBuilder(datatype.NewBinary(), len(values))
	for _, v := range values {
		b.Append(v)
	}
	return b.Finish()
}

// FromValues is the universal constructor driving ListBuilder's child
// flattening: it builds an array of datatype dt from already-typed scalar
// values, dispatching to the matching typed builder by physical type.
func FromValues(dt datatype.DataType, values []scalar.Value) (*Array, error) {
	switch dt.Physical() {
	case physicaltype.Boolean:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) bool { return v.Bool() }), nil
	case physicaltype.Int8:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) int8 { return v.Int8() }), nil
	case physicaltype.Int16:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) int16 { return v.Int16() }), nil
	case physicaltype.Int32:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) int32 { return v.Int32() }), nil
	case physicaltype.Int64:
		return fromValuesPrimitive(dt, values, int64FromScalar), nil
	case physicaltype.Int128:
		return fromValuesPrimitive(dt, values, int128FromScalar), nil
	case physicaltype.UInt128:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) [2]uint64 { return v.UInt128Val() }), nil
	case physicaltype.UInt8:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) uint8 { return v.UInt8() }), nil
	case physicaltype.UInt16:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) uint16 { return v.UInt16() }), nil
	case physicaltype.UInt32:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) uint32 { return v.UInt32() }), nil
	case physicaltype.UInt64:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) uint64 { return v.UInt64() }), nil
	case physicaltype.Float16:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) uint16 { return v.Float16Bits() }), nil
	case physicaltype.Float32:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) float32 { return v.Float32() }), nil
	case physicaltype.Float64:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) float64 { return v.Float64() }), nil
	case physicaltype.Interval:
		return fromValuesPrimitive(dt, values, func(v scalar.Value) scalar.Interval { return v.IntervalVal() }), nil
	case physicaltype.Utf8:
		b := NewVarlenBuilder(dt, len(values))
		for _, v := range values {
			if v.IsNull() {
				b.AppendNull()
			} else {
				b.Append([]byte(v.Utf8()))
			}
		}
		return b.Finish(), nil
	case physicaltype.Binary:
		b := NewVarlenBuilder(dt, len(values))
		for _, v := range values {
			if v.IsNull() {
				b.AppendNull()
			} else {
				b.Append(v.Binary())
			}
		}
		return b.Finish(), nil
	case physicaltype.List:
		b := NewListBuilder(dt, len(values))
		for _, v := range values {
			if v.IsNull() {
				b.AppendNull()
			} else {
				b.Append(v.ListElems())
			}
		}
		return b.Finish()
	default:
		return nil, errs.InternalInvariantf("array: FromValues unsupported physical type %s", dt.Physical())
	}
}

func fromValuesPrimitive[T any](dt datatype.DataType, values []scalar.Value, unwrap func(scalar.Value) T) *Array {
	b := NewPrimitiveBuilder[T](dt, len(values))
	for _, v := range values {
		if v.IsNull() {
			b.AppendNull()
		} else {
			b.Append(unwrap(v))
		}
	}
	return b.Finish()
}
