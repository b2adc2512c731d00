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

// Package scalar implements ScalarValue, the owned single-row value used
// wherever non-vectorized access to a column's data is required: literal
// expressions, logical_value(i) reads off an Array, and the planner's
// constant-folding.
package scalar

import (
	"fmt"

	"github.com/dolthub/bullet/datatype"
)

// Value is a tagged, owned value mirroring exactly one datatype.DataType
// variant. A Null Value still carries its Type so that NULL literals remain
// type-aware (DataType::Null maps to an untyped NULL).
type Value struct {
	Type datatype.DataType
	Null bool

	payload any
}

func typed(dt datatype.DataType, payload any) Value {
	return Value{Type: dt, payload: payload}
}

// NewNull returns a typed NULL of the given datatype. DataType.ID == Null
// represents the untyped NULL literal.
func NewNull(dt datatype.DataType) Value {
	return Value{Type: dt, Null: true}
}

func NewBool(v bool) Value              { return typed(datatype.NewBoolean(), v) }
func NewInt8(v int8) Value              { return typed(datatype.NewInt8(), v) }
func NewInt16(v int16) Value            { return typed(datatype.NewInt16(), v) }
func NewInt32(v int32) Value            { return typed(datatype.NewInt32(), v) }
func NewInt64(v int64) Value            { return typed(datatype.NewInt64(), v) }
func NewUInt8(v uint8) Value            { return typed(datatype.NewUInt8(), v) }
func NewUInt16(v uint16) Value          { return typed(datatype.NewUInt16(), v) }
func NewUInt32(v uint32) Value          { return typed(datatype.NewUInt32(), v) }
func NewUInt64(v uint64) Value          { return typed(datatype.NewUInt64(), v) }
func NewFloat16(bitsRaw uint16) Value   { return typed(datatype.DataType{ID: datatype.Float16}, bitsRaw) }
func NewFloat32(v float32) Value        { return typed(datatype.NewFloat32(), v) }
func NewFloat64(v float64) Value        { return typed(datatype.NewFloat64(), v) }
func NewDate32(v int32) Value           { return typed(datatype.NewDate32(), v) }
func NewDate64(v int64) Value           { return typed(datatype.NewDate64(), v) }
func NewIntervalValue(v Interval) Value { return typed(datatype.NewInterval(), v) }
func NewUtf8(v string) Value            { return typed(datatype.NewUtf8(), v) }
func NewBinary(v []byte) Value          { return typed(datatype.NewBinary(), v) }

func NewTimestamp(unit datatype.TimeUnit, v int64) Value {
	return typed(datatype.NewTimestamp(unit), v)
}

// NewInt128 and NewUInt128 hold the 128-bit payload as the raw two's-
// complement high/low word pair, the same representation the array
// runtime's Int128 physical storage and Decimal128's coefficient share.
func NewInt128(v [2]uint64) Value  { return typed(datatype.NewInt128(), v) }
func NewUInt128(v [2]uint64) Value { return typed(datatype.NewUInt128(), v) }

func NewDecimal64Value(precision uint8, scale int8, v Decimal64) Value {
	return typed(datatype.NewDecimal64(precision, scale), v)
}

func NewDecimal128Value(precision uint8, scale int8, v Decimal128) Value {
	return typed(datatype.NewDecimal128(precision, scale), v)
}

// NewList builds a List-typed scalar from already-typed element values. All
// elements must share the same logical type as inner.
func NewList(inner datatype.DataType, elems []Value) Value {
	return typed(datatype.NewList(inner), elems)
}

// Bool, Int32, etc. unwrap the payload, panicking if the Value is NULL or
// its payload has a different Go type (logical types sharing a payload
// type, such as Int32 and Date32, unwrap through the same accessor). Callers that must handle NULL should check IsNull
// first; this mirrors the array runtime's convention that physical slot
// readers never silently coerce.
func (v Value) Bool() bool {
	return v.must("Boolean").(bool)
}

func (v Value) Int8() int8   { return v.must("Int8").(int8) }
func (v Value) Int16() int16 { return v.must("Int16").(int16) }
func (v Value) Int32() int32 { return v.must("Int32").(int32) }
func (v Value) Int64() int64 { return v.must("Int64").(int64) }

func (v Value) UInt8() uint8    { return v.must("UInt8").(uint8) }
func (v Value) UInt16() uint16  { return v.must("UInt16").(uint16) }
func (v Value) UInt32() uint32  { return v.must("UInt32").(uint32) }
func (v Value) UInt64() uint64  { return v.must("UInt64").(uint64) }
func (v Value) Float32() float32 { return v.must("Float32").(float32) }
func (v Value) Float64() float64 { return v.must("Float64").(float64) }

func (v Value) Float16Bits() uint16 { return v.must("Float16").(uint16) }

func (v Value) Utf8() string   { return v.must("Utf8").(string) }
func (v Value) Binary() []byte { return v.must("Binary").([]byte) }

func (v Value) IntervalVal() Interval { return v.must("Interval").(Interval) }

func (v Value) Decimal64Val() Decimal64   { return v.must("Decimal64").(Decimal64) }
func (v Value) Decimal128Val() Decimal128 { return v.must("Decimal128").(Decimal128) }

func (v Value) Int128Val() [2]uint64  { return v.must("Int128").([2]uint64) }
func (v Value) UInt128Val() [2]uint64 { return v.must("UInt128").([2]uint64) }

func (v Value) ListElems() []Value { return v.must("List").([]Value) }

func (v Value) IsNull() bool { return v.Null }

func (v Value) must(what string) any {
	if v.Null {
		panic(fmt.Sprintf("scalar: cannot unwrap %s from a NULL value", what))
	}
	return v.payload
}

// Equal implements type-sensitive scalar equality: NULL equals only NULL
// logically; otherwise types and payloads must match. Three-valued SQL NULL
// semantics are layered on by callers, not encoded here.
func (v Value) Equal(other Value) bool {
	if !v.Type.Equal(other.Type) {
		return false
	}
	if v.Null || other.Null {
		return v.Null == other.Null
	}
	switch v.Type.ID {
	case datatype.Interval:
		return v.IntervalVal().Equal(other.IntervalVal())
	case datatype.Decimal64:
		return v.Decimal64Val().Equal(other.Decimal64Val())
	case datatype.Decimal128:
		return v.Decimal128Val().Equal(other.Decimal128Val())
	case datatype.List:
		a, b := v.ListElems(), other.ListElems()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case datatype.Binary:
		ab, bb := v.Binary(), other.Binary()
		if len(ab) != len(bb) {
			return false
		}
		for i := range ab {
			if ab[i] != bb[i] {
				return false
			}
		}
		return true
	default:
		return v.payload == other.payload
	}
}

func (v Value) String() string {
	if v.Null {
		return fmt.Sprintf("%s(NULL)", v.Type)
	}
	return fmt.Sprintf("%s(%v)", v.Type, v.payload)
}
