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

// Package physicaltype defines the closed set of machine layouts the array
// runtime stores values as, independent of the SQL-visible logical type. A
// Decimal64 and an Int64 column, for instance, share the Int64 physical
// type; the logical type only changes how scalars are interpreted.
package physicaltype

import "fmt"

// PhysicalType tags the storage shape backing an Array's primary buffer.
type PhysicalType uint8

const (
	UntypedNull PhysicalType = iota
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
	Interval
	Binary
	Utf8
	List
	Dictionary
)

var names = [...]string{
	UntypedNull: "UntypedNull",
	Boolean:     "Boolean",
	Int8:        "Int8",
	Int16:       "Int16",
	Int32:       "Int32",
	Int64:       "Int64",
	Int128:      "Int128",
	UInt8:       "UInt8",
	UInt16:      "UInt16",
	UInt32:      "UInt32",
	UInt64:      "UInt64",
	UInt128:     "UInt128",
	Float16:     "Float16",
	Float32:     "Float32",
	Float64:     "Float64",
	Interval:    "Interval",
	Binary:      "Binary",
	Utf8:        "Utf8",
	List:        "List",
	Dictionary:  "Dictionary",
}

func (p PhysicalType) String() string {
	if int(p) < len(names) {
		return names[p]
	}
	return fmt.Sprintf("PhysicalType(%d)", uint8(p))
}

// IsVarlen reports whether this physical type stores its primary buffer as
// one of the variable-length view layouts (storage.Varlen) rather than a
// fixed-width storage.Primitive.
func (p PhysicalType) IsVarlen() bool {
	return p == Utf8 || p == Binary
}

// IsNumeric reports whether this physical type is a fixed-width numeric
// primitive eligible for arithmetic kernels.
func (p PhysicalType) IsNumeric() bool {
	switch p {
	case Int8, Int16, Int32, Int64, Int128,
		UInt8, UInt16, UInt32, UInt64, UInt128,
		Float16, Float32, Float64:
		return true
	default:
		return false
	}
}

// MismatchError is returned by the array package's typed readers (ValueAt,
// BytesAt and ListRangeAt) when the requested element type does not match
// the array's actual physical type.
type MismatchError struct {
	Requested string
	Actual    PhysicalType
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("physicaltype: cannot view %s buffer as %s", e.Actual, e.Requested)
}

// NewMismatchError builds a MismatchError naming the requested Go element
// type and the actual physical type of the buffer being addressed.
func NewMismatchError(requested string, actual PhysicalType) error {
	return &MismatchError{Requested: requested, Actual: actual}
}
