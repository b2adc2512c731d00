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

// Package array implements Array, the central columnar value: a logical
// data type paired with a physical buffer, a validity mask, and an optional
// dictionary indirection. Every scalar/aggregate kernel in this module
// reads and writes Arrays exclusively through this package's typed
// accessors.
package array

import (
	"github.com/dolthub/bullet/bitmap"
	"github.com/dolthub/bullet/buffer"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/physicaltype"
	"github.com/dolthub/bullet/scalar"
	"github.com/dolthub/bullet/selection"
	"github.com/dolthub/bullet/storage"
)

// ListEntry is the primary-buffer element for List-physical arrays: an
// (offset, length) pair into the flattened child array held as Secondary.
type ListEntry struct {
	Offset int32
	Len    int32
}

// DictionarySource is the secondary buffer installed when Select converts
// an array to dictionary encoding: the original array, kept alive and
// immutable through ordinary access so multiple dictionary views can share
// it.
type DictionarySource struct {
	Source *Array
}

// Array is a typed, columnar sequence of values. DataType is the SQL-level
// type; Phys is the physical storage shape currently backing Primary
// (Dictionary when the array represents a selection). Validity always
// indexes the physical rows of Primary, never logical rows.
type Array struct {
	DataType datatype.DataType
	Phys     physicaltype.PhysicalType
	Validity bitmap.Bitmap

	// Primary holds:
	//   - *storage.Primitive[T] for fixed-width physical types,
	//   - storage.Varlen for Utf8/Binary,
	//   - *storage.Primitive[ListEntry] for List,
	//   - *storage.Primitive[uint32] for Dictionary (index buffer).
	Primary any

	// Secondary holds:
	//   - nil for fixed-width and varlen types,
	//   - *Array (the flattened child) for List,
	//   - *DictionarySource for Dictionary.
	Secondary any
}

// primaryLen returns the physical capacity of Primary, i.e. the number of
// rows addressable at the physical layer before any dictionary indirection.
func primaryLen(phys physicaltype.PhysicalType, primary any) int {
	switch phys {
	case physicaltype.Utf8, physicaltype.Binary:
		return primary.(storage.Varlen).Len()
	case physicaltype.List:
		return primary.(*storage.Primitive[ListEntry]).Len()
	case physicaltype.Dictionary:
		return primary.(*storage.Primitive[uint32]).Len()
	case physicaltype.UntypedNull:
		return primary.(*storage.Primitive[struct{}]).Len()
	default:
		return primitiveLenAny(primary)
	}
}

// primitiveLenAny handles the fixed-width numeric physical types, whose Go
// element type varies by PhysicalType but all share storage.Primitive[T].
func primitiveLenAny(primary any) int {
	type lenner interface{ Len() int }
	l, ok := primary.(lenner)
	if !ok {
		panic("array: primary buffer does not expose Len()")
	}
	return l.Len()
}

// TryNew allocates a fresh array of the given logical type and physical
// capacity: an all-valid validity mask and a zeroed primary buffer (plus a
// secondary buffer when the physical type requires one).
func TryNew(dt datatype.DataType, capacity int) (*Array, error) {
	return TryNewWithManager(dt, capacity, buffer.Default)
}

// TryNewWithManager is TryNew with an explicit buffer.Manager argument. The
// manager is not used: buffers are allocated on the Go heap exactly as in
// TryNew, and m sees none of the allocations.
func TryNewWithManager(dt datatype.DataType, capacity int, m buffer.Manager) (*Array, error) {
	if capacity < 0 {
		return nil, errs.OutOfBoundsf("array: negative capacity %d", capacity)
	}
	phys := dt.Physical()
	primary, secondary, err := allocatePrimary(dt, phys, capacity)
	if err != nil {
		return nil, err
	}
	// Varlen buffers (Utf8/Binary) grow only by appending rows, so their
	// actual length after allocation may be 0 regardless of the requested
	// capacity; validity must always match the buffer's real length.
	return &Array{
		DataType:  dt,
		Phys:      phys,
		Validity:  bitmap.NewAllValid(primaryLen(phys, primary)),
		Primary:   primary,
		Secondary: secondary,
	}, nil
}

func allocatePrimary(dt datatype.DataType, phys physicaltype.PhysicalType, capacity int) (primary any, secondary any, err error) {
	switch phys {
	case physicaltype.UntypedNull:
		return storage.NewPrimitive[struct{}](capacity), nil, nil
	case physicaltype.Boolean:
		return storage.NewPrimitive[bool](capacity), nil, nil
	case physicaltype.Int8:
		return storage.NewPrimitive[int8](capacity), nil, nil
	case physicaltype.Int16:
		return storage.NewPrimitive[int16](capacity), nil, nil
	case physicaltype.Int32:
		return storage.NewPrimitive[int32](capacity), nil, nil
	case physicaltype.Int64:
		return storage.NewPrimitive[int64](capacity), nil, nil
	case physicaltype.Int128:
		return storage.NewPrimitive[[2]uint64](capacity), nil, nil
	case physicaltype.UInt8:
		return storage.NewPrimitive[uint8](capacity), nil, nil
	case physicaltype.UInt16:
		return storage.NewPrimitive[uint16](capacity), nil, nil
	case physicaltype.UInt32:
		return storage.NewPrimitive[uint32](capacity), nil, nil
	case physicaltype.UInt64:
		return storage.NewPrimitive[uint64](capacity), nil, nil
	case physicaltype.UInt128:
		return storage.NewPrimitive[[2]uint64](capacity), nil, nil
	case physicaltype.Float16:
		return storage.NewPrimitive[uint16](capacity), nil, nil // Float16 stored as raw bits
	case physicaltype.Float32:
		return storage.NewPrimitive[float32](capacity), nil, nil
	case physicaltype.Float64:
		return storage.NewPrimitive[float64](capacity), nil, nil
	case physicaltype.Interval:
		return storage.NewPrimitive[scalar.Interval](capacity), nil, nil
	case physicaltype.Utf8:
		return storage.NewGermanView(), nil, nil
	case physicaltype.Binary:
		return storage.NewGermanView(), nil, nil
	case physicaltype.List:
		if dt.Inner == nil {
			return nil, nil, errs.InternalInvariantf("array: List datatype missing Inner")
		}
		child, err := TryNew(*dt.Inner, 0)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPrimitive[ListEntry](capacity), child, nil
	default:
		return nil, nil, errs.InternalInvariantf("array: unsupported physical type %s", phys)
	}
}

// LogicalLen returns the number of logical rows: the dictionary index count
// when the array is dictionary-encoded, otherwise the primary buffer's
// physical capacity.
func (a *Array) LogicalLen() int {
	return primaryLen(a.Phys, a.Primary)
}

// PrimaryCapacity is the physical row count of Primary, matching the length
// Validity must have.
func (a *Array) PrimaryCapacity() int {
	return primaryLen(a.Phys, a.Primary)
}

// NewTypedNull produces an array of logical length n whose physical storage
// has a single row: a dictionary of n repeated indices into a one-row,
// all-invalid source, giving constant-NULL broadcast without an O(n)
// allocation.
func NewTypedNull(dt datatype.DataType, n int) (*Array, error) {
	source, err := TryNew(dt, 1)
	if err != nil {
		return nil, err
	}
	source.Validity = bitmap.NewAllInvalid(1)

	idx := storage.NewPrimitiveFrom(selection.Repeated(n, 0).Indices())
	return &Array{
		DataType:  dt,
		Phys:      physicaltype.Dictionary,
		Validity:  bitmap.NewAllInvalid(n),
		Primary:   idx,
		Secondary: &DictionarySource{Source: source},
	}, nil
}

// NewUntypedNull is NewTypedNull specialized to DataType::Null.
func NewUntypedNull(n int) (*Array, error) {
	return NewTypedNull(datatype.NewNull(), n)
}

// PutValidity installs v as the array's validity mask. Its length must equal
// PrimaryCapacity.
func (a *Array) PutValidity(v bitmap.Bitmap) error {
	if v.Len() != a.PrimaryCapacity() {
		return errs.Newf(errs.InvalidValidityLength,
			"validity length %d does not match primary capacity %d", v.Len(), a.PrimaryCapacity())
	}
	a.Validity = v
	return nil
}

// SetPhysicalValidity marks physical row i valid or invalid, lazily
// allocating a backing bitmap the first time any cell is invalidated.
func (a *Array) SetPhysicalValidity(i int, valid bool) {
	a.Validity.Set(i, valid)
}

// IsValid reports whether physical row i is valid.
func (a *Array) IsValid(i int) bool {
	return a.Validity.Get(i)
}

// Select converts the array to (or composes further into) a dictionary
// view over the requested selection. If the array is already
// dictionary-encoded, the new selection is composed through the existing
// index buffer rather than nesting a second dictionary layer.
func (a *Array) Select(sel selection.Vector) (*Array, error) {
	for _, idx := range sel.Indices() {
		if int(idx) >= a.LogicalLen() {
			return nil, errs.OutOfBoundsf("array: select index %d out of bounds for logical length %d", idx, a.LogicalLen())
		}
	}

	if a.Phys == physicaltype.Dictionary {
		existing := a.Primary.(*storage.Primitive[uint32])
		existingVec := selection.FromIndicesU32(existing.AsSlice())
		composed := existingVec.Compose(sel)
		return &Array{
			DataType:  a.DataType,
			Phys:      physicaltype.Dictionary,
			Validity:  bitmap.NewAllValid(sel.Len()),
			Primary:   storage.NewPrimitiveFrom(composed.Indices()),
			Secondary: a.Secondary,
		}, nil
	}

	return &Array{
		DataType:  a.DataType,
		Phys:      physicaltype.Dictionary,
		Validity:  bitmap.NewAllValid(sel.Len()),
		Primary:   storage.NewPrimitiveFrom(append([]uint32(nil), sel.Indices()...)),
		Secondary: &DictionarySource{Source: a},
	}, nil
}

// Slice returns a view over logical rows [offset, offset+count), expressed
// as a dictionary selection per this runtime's single-representation
// design (selection is never a separate field).
func (a *Array) Slice(offset, count int) (*Array, error) {
	if offset < 0 || count < 0 || offset+count > a.LogicalLen() {
		return nil, errs.OutOfBoundsf("array: slice [%d:%d) out of bounds for logical length %d", offset, offset+count, a.LogicalLen())
	}
	return a.Select(selection.WithRange(offset, offset+count))
}

// LogicalValue returns the value observed at logical row i, honoring
// dictionary indirection and validity. Invalid cells return a typed NULL.
func (a *Array) LogicalValue(i int) (scalar.Value, error) {
	if i < 0 || i >= a.LogicalLen() {
		return scalar.Value{}, errs.OutOfBoundsf("array: logical index %d out of bounds for length %d", i, a.LogicalLen())
	}

	if a.Phys == physicaltype.Dictionary {
		if !a.Validity.Get(i) {
			return scalar.NewNull(a.DataType), nil
		}
		idx := a.Primary.(*storage.Primitive[uint32]).AsSlice()[i]
		src := a.Secondary.(*DictionarySource).Source
		return src.LogicalValue(int(idx))
	}

	if !a.Validity.Get(i) {
		return scalar.NewNull(a.DataType), nil
	}
	return a.PhysicalScalar(i)
}

// PhysicalScalar reads raw physical row i, ignoring validity. For
// dictionary-encoded arrays this follows the index to the source's
// physical row, still ignoring both layers' validity.
func (a *Array) PhysicalScalar(i int) (scalar.Value, error) {
	if a.Phys == physicaltype.Dictionary {
		idx := a.Primary.(*storage.Primitive[uint32]).AsSlice()[i]
		src := a.Secondary.(*DictionarySource).Source
		return src.PhysicalScalar(int(idx))
	}
	return physicalScalarFromBuffer(a.DataType, a.Phys, a.Primary, a.Secondary, i)
}

// ScalarValueLogicallyEq reports whether logical row i equals sv: NULL
// matches NULL; otherwise the cell must be valid and the payload equal.
// Decimal/timestamp comparisons assume matching precision/scale/unit, a
// documented limitation (no implicit rescaling is performed).
func (a *Array) ScalarValueLogicallyEq(sv scalar.Value, i int) (bool, error) {
	v, err := a.LogicalValue(i)
	if err != nil {
		return false, err
	}
	return v.Equal(sv), nil
}

func physicalScalarFromBuffer(dt datatype.DataType, phys physicaltype.PhysicalType, primary, secondary any, i int) (scalar.Value, error) {
	switch phys {
	case physicaltype.UntypedNull:
		return scalar.NewNull(dt), nil
	case physicaltype.Boolean:
		return scalar.NewBool(primary.(*storage.Primitive[bool]).AsSlice()[i]), nil
	case physicaltype.Int8:
		return scalar.NewInt8(primary.(*storage.Primitive[int8]).AsSlice()[i]), nil
	case physicaltype.Int16:
		return scalar.NewInt16(primary.(*storage.Primitive[int16]).AsSlice()[i]), nil
	case physicaltype.Int32:
		return physicalInt32Scalar(dt, primary.(*storage.Primitive[int32]).AsSlice()[i]), nil
	case physicaltype.Int64:
		return physicalInt64Scalar(dt, primary.(*storage.Primitive[int64]).AsSlice()[i]), nil
	case physicaltype.Int128:
		return physicalInt128Scalar(dt, primary.(*storage.Primitive[[2]uint64]).AsSlice()[i]), nil
	case physicaltype.UInt128:
		return scalar.NewUInt128(primary.(*storage.Primitive[[2]uint64]).AsSlice()[i]), nil
	case physicaltype.UInt8:
		return scalar.NewUInt8(primary.(*storage.Primitive[uint8]).AsSlice()[i]), nil
	case physicaltype.UInt16:
		return scalar.NewUInt16(primary.(*storage.Primitive[uint16]).AsSlice()[i]), nil
	case physicaltype.UInt32:
		return scalar.NewUInt32(primary.(*storage.Primitive[uint32]).AsSlice()[i]), nil
	case physicaltype.UInt64:
		return scalar.NewUInt64(primary.(*storage.Primitive[uint64]).AsSlice()[i]), nil
	case physicaltype.Float16:
		return scalar.NewFloat16(primary.(*storage.Primitive[uint16]).AsSlice()[i]), nil
	case physicaltype.Float32:
		return scalar.NewFloat32(primary.(*storage.Primitive[float32]).AsSlice()[i]), nil
	case physicaltype.Float64:
		return scalar.NewFloat64(primary.(*storage.Primitive[float64]).AsSlice()[i]), nil
	case physicaltype.Interval:
		return scalar.NewIntervalValue(primary.(*storage.Primitive[scalar.Interval]).AsSlice()[i]), nil
	case physicaltype.Utf8:
		return scalar.NewUtf8(string(primary.(storage.Varlen).Get(i))), nil
	case physicaltype.Binary:
		return scalar.NewBinary(primary.(storage.Varlen).Get(i)), nil
	case physicaltype.List:
		entry := primary.(*storage.Primitive[ListEntry]).AsSlice()[i]
		child := secondary.(*Array)
		if dt.Inner == nil {
			return scalar.Value{}, errs.InternalInvariantf("array: List datatype missing Inner")
		}
		elems := make([]scalar.Value, entry.Len)
		for k := int32(0); k < entry.Len; k++ {
			v, err := child.LogicalValue(int(entry.Offset + k))
			if err != nil {
				return scalar.Value{}, err
			}
			elems[k] = v
		}
		return scalar.NewList(*dt.Inner, elems), nil
	default:
		return scalar.Value{}, errs.Newf(errs.PhysicalTypeMismatch, "no (DataType, PhysicalType) mapping for %s/%s", dt, phys)
	}
}

// physicalInt32Scalar resolves the ScalarValue variant for an Int32-physical
// slot based on the logical DataType: Int32 itself or Date32.
func physicalInt32Scalar(dt datatype.DataType, v int32) scalar.Value {
	if dt.ID == datatype.Date32 {
		return scalar.NewDate32(v)
	}
	return scalar.NewInt32(v)
}

// physicalInt64Scalar resolves the ScalarValue variant for an Int64-physical
// slot: Int64, Date64, Timestamp, or Decimal64.
func physicalInt64Scalar(dt datatype.DataType, v int64) scalar.Value {
	switch dt.ID {
	case datatype.Date64:
		return scalar.NewDate64(v)
	case datatype.Timestamp:
		return scalar.NewTimestamp(dt.Unit, v)
	case datatype.Decimal64:
		return scalar.NewDecimal64Value(dt.Precision, dt.Scale, scalar.Decimal64{Unscaled: v})
	default:
		return scalar.NewInt64(v)
	}
}

// physicalInt128Scalar resolves the ScalarValue variant for an
// Int128-physical slot: bare Int128 or Decimal128, both stored as the same
// raw high/low word pair.
func physicalInt128Scalar(dt datatype.DataType, raw [2]uint64) scalar.Value {
	if dt.ID == datatype.Decimal128 {
		return scalar.NewDecimal128Value(dt.Precision, dt.Scale, scalar.Decimal128FromRaw(raw))
	}
	return scalar.NewInt128(raw)
}
