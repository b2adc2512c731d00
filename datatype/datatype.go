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

// Package datatype implements the logical, SQL-visible type system and its
// fixed mapping onto physical storage shapes.
package datatype

import (
	"fmt"

	"github.com/dolthub/bullet/physicaltype"
)

// ID identifies a logical type's tag, independent of any parameters
// (precision/scale, time unit, inner type) it may carry.
type ID uint8

const (
	Null ID = iota
	Boolean
	Int8
	Int16
	Int32
	Int64
	Int128
	UInt8
	UInt16
	UInt32
	UInt64
	UInt128
	Float16
	Float32
	Float64
	Decimal64
	Decimal128
	Date32
	Date64
	Timestamp
	Interval
	Utf8
	Binary
	List
	Struct
)

var idNames = [...]string{
	Null: "Null", Boolean: "Boolean",
	Int8: "Int8", Int16: "Int16", Int32: "Int32", Int64: "Int64", Int128: "Int128",
	UInt8: "UInt8", UInt16: "UInt16", UInt32: "UInt32", UInt64: "UInt64", UInt128: "UInt128",
	Float16: "Float16", Float32: "Float32", Float64: "Float64",
	Decimal64: "Decimal64", Decimal128: "Decimal128",
	Date32: "Date32", Date64: "Date64", Timestamp: "Timestamp", Interval: "Interval",
	Utf8: "Utf8", Binary: "Binary", List: "List", Struct: "Struct",
}

func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return fmt.Sprintf("ID(%d)", uint8(id))
}

// TimeUnit is the resolution carried by a Timestamp type.
type TimeUnit uint8

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "Second"
	case Millisecond:
		return "Millisecond"
	case Microsecond:
		return "Microsecond"
	case Nanosecond:
		return "Nanosecond"
	default:
		return fmt.Sprintf("TimeUnit(%d)", uint8(u))
	}
}

// StructField names and types one member of a Struct type.
type StructField struct {
	Name string
	Type DataType
}

// DataType is the tagged description of a SQL-visible column type. Only the
// fields relevant to ID are meaningful; e.g. Precision/Scale are only
// interpreted when ID is Decimal64 or Decimal128.
type DataType struct {
	ID ID

	// Decimal64 / Decimal128
	Precision uint8
	Scale     int8

	// Timestamp
	Unit TimeUnit

	// List
	Inner *DataType

	// Struct
	Fields []StructField
}

func simple(id ID) DataType { return DataType{ID: id} }

func NewNull() DataType    { return simple(Null) }
func NewBoolean() DataType { return simple(Boolean) }
func NewInt8() DataType    { return simple(Int8) }
func NewInt16() DataType   { return simple(Int16) }
func NewInt32() DataType   { return simple(Int32) }
func NewInt64() DataType   { return simple(Int64) }
func NewInt128() DataType  { return simple(Int128) }
func NewUInt8() DataType   { return simple(UInt8) }
func NewUInt16() DataType  { return simple(UInt16) }
func NewUInt32() DataType  { return simple(UInt32) }
func NewUInt64() DataType  { return simple(UInt64) }
func NewUInt128() DataType { return simple(UInt128) }
func NewFloat16() DataType { return simple(Float16) }
func NewFloat32() DataType { return simple(Float32) }
func NewFloat64() DataType { return simple(Float64) }
func NewDate32() DataType  { return simple(Date32) }
func NewDate64() DataType  { return simple(Date64) }
func NewInterval() DataType { return simple(Interval) }
func NewUtf8() DataType    { return simple(Utf8) }
func NewBinary() DataType  { return simple(Binary) }

func NewDecimal64(precision uint8, scale int8) DataType {
	return DataType{ID: Decimal64, Precision: precision, Scale: scale}
}

func NewDecimal128(precision uint8, scale int8) DataType {
	return DataType{ID: Decimal128, Precision: precision, Scale: scale}
}

func NewTimestamp(unit TimeUnit) DataType {
	return DataType{ID: Timestamp, Unit: unit}
}

func NewList(inner DataType) DataType {
	return DataType{ID: List, Inner: &inner}
}

func NewStruct(fields []StructField) DataType {
	return DataType{ID: Struct, Fields: fields}
}

// Equal reports structural equality, including decimal precision/scale,
// timestamp unit, and recursively for List/Struct.
func (d DataType) Equal(other DataType) bool {
	if d.ID != other.ID {
		return false
	}
	switch d.ID {
	case Decimal64, Decimal128:
		return d.Precision == other.Precision && d.Scale == other.Scale
	case Timestamp:
		return d.Unit == other.Unit
	case List:
		if d.Inner == nil || other.Inner == nil {
			return d.Inner == other.Inner
		}
		return d.Inner.Equal(*other.Inner)
	case Struct:
		if len(d.Fields) != len(other.Fields) {
			return false
		}
		for i := range d.Fields {
			if d.Fields[i].Name != other.Fields[i].Name || !d.Fields[i].Type.Equal(other.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (d DataType) String() string {
	switch d.ID {
	case Decimal64, Decimal128:
		return fmt.Sprintf("%s(%d,%d)", d.ID, d.Precision, d.Scale)
	case Timestamp:
		return fmt.Sprintf("Timestamp(%s)", d.Unit)
	case List:
		if d.Inner == nil {
			return "List(?)"
		}
		return fmt.Sprintf("List(%s)", d.Inner)
	case Struct:
		return fmt.Sprintf("Struct(%d fields)", len(d.Fields))
	default:
		return d.ID.String()
	}
}

// Physical returns the fixed physical storage shape for this logical type.
// Every logical type maps to exactly one physical type; the mapping never
// depends on precision, scale, or time unit.
func (d DataType) Physical() physicaltype.PhysicalType {
	switch d.ID {
	case Null:
		return physicaltype.UntypedNull
	case Boolean:
		return physicaltype.Boolean
	case Int8:
		return physicaltype.Int8
	case Int16:
		return physicaltype.Int16
	case Int32:
		return physicaltype.Int32
	case Int64:
		return physicaltype.Int64
	case Int128:
		return physicaltype.Int128
	case UInt8:
		return physicaltype.UInt8
	case UInt16:
		return physicaltype.UInt16
	case UInt32:
		return physicaltype.UInt32
	case UInt64:
		return physicaltype.UInt64
	case UInt128:
		return physicaltype.UInt128
	case Float16:
		return physicaltype.Float16
	case Float32:
		return physicaltype.Float32
	case Float64:
		return physicaltype.Float64
	case Decimal64:
		return physicaltype.Int64
	case Decimal128:
		return physicaltype.Int128
	case Date32:
		return physicaltype.Int32
	case Date64:
		return physicaltype.Int64
	case Timestamp:
		return physicaltype.Int64
	case Interval:
		return physicaltype.Interval
	case Utf8:
		return physicaltype.Utf8
	case Binary:
		return physicaltype.Binary
	case List:
		return physicaltype.List
	case Struct:
		// Structs are represented as a tuple of child arrays; no single
		// primitive physical type applies. Operators at this layer never
		// address a Struct array's primary buffer directly.
		return physicaltype.UntypedNull
	default:
		return physicaltype.UntypedNull
	}
}
