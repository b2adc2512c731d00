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
	"github.com/dolthub/bullet/bitmap"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/physicaltype"
	"github.com/dolthub/bullet/scalar"
	"github.com/dolthub/bullet/storage"
)

// validityFromFlags builds a Bitmap from append-order valid flags, using
// the all-valid sentinel when every row was valid so constant-true columns
// never allocate.
func validityFromFlags(valid []bool) bitmap.Bitmap {
	allValid := true
	for _, v := range valid {
		if !v {
			allValid = false
			break
		}
	}
	if allValid {
		return bitmap.NewAllValid(len(valid))
	}
	b := bitmap.NewAllValid(len(valid))
	for i, v := range valid {
		if !v {
			b.Set(i, false)
		}
	}
	return b
}

// PrimitiveBuilder assembles a fixed-width Array one row at a time, the
// shape every arithmetic and numeric kernel's output builder uses. T is
// bound by the caller to the Go element type matching the target
// PhysicalType (e.g. int32 for Int32, scalar.Interval for Interval).
type PrimitiveBuilder[T any] struct {
	dt    datatype.DataType
	phys  physicaltype.PhysicalType
	data  []T
	valid []bool
}

// NewPrimitiveBuilder preallocates a builder for capacity rows of the given
// logical type; phys is derived from dt.Physical() and dt is kept on the
// builder so kernels can build output arrays for types distinguishing
// DataType semantics atop the same Go representation (e.g. Int32 vs Date32).
func NewPrimitiveBuilder[T any](dt datatype.DataType, capacity int) *PrimitiveBuilder[T] {
	return &PrimitiveBuilder[T]{
		dt:    dt,
		phys:  dt.Physical(),
		data:  make([]T, 0, capacity),
		valid: make([]bool, 0, capacity),
	}
}

func (b *PrimitiveBuilder[T]) Append(v T) {
	b.data = append(b.data, v)
	b.valid = append(b.valid, true)
}

func (b *PrimitiveBuilder[T]) AppendNull() {
	var zero T
	b.data = append(b.data, zero)
	b.valid = append(b.valid, false)
}

func (b *PrimitiveBuilder[T]) Len() int { return len(b.data) }

func (b *PrimitiveBuilder[T]) Finish() *Array {
	return &Array{
		DataType: b.dt,
		Phys:     b.phys,
		Validity: validityFromFlags(b.valid),
		Primary:  storage.NewPrimitiveFrom(b.data),
	}
}

// VarlenBuilder assembles a Utf8 or Binary Array one row at a time, backed
// by the German-style view layout (the default choice on construction per
// this runtime's variable-length storage contract).
type VarlenBuilder struct {
	dt    datatype.DataType
	phys  physicaltype.PhysicalType
	views *storage.GermanView
	valid []bool
}

func NewVarlenBuilder(dt datatype.DataType, capacity int) *VarlenBuilder {
	return &VarlenBuilder{
		dt:    dt,
		phys:  dt.Physical(),
		views: storage.NewGermanView(),
		valid: make([]bool, 0, capacity),
	}
}

func (b *VarlenBuilder) Append(v []byte) {
	b.views.Push(v)
	b.valid = append(b.valid, true)
}

func (b *VarlenBuilder) AppendNull() {
	b.views.Push(nil)
	b.valid = append(b.valid, false)
}

func (b *VarlenBuilder) Len() int { return b.views.Len() }

func (b *VarlenBuilder) Finish() *Array {
	return &Array{
		DataType: b.dt,
		Phys:     b.phys,
		Validity: validityFromFlags(b.valid),
		Primary:  b.views,
	}
}

// ListBuilder assembles a List Array one row at a time, where each row is
// a slice of already-typed element values sharing the list's Inner type.
type ListBuilder struct {
	dt      datatype.DataType
	inner   datatype.DataType
	entries []ListEntry
	valid   []bool
	flat    []scalar.Value
}

func NewListBuilder(dt datatype.DataType, capacity int) *ListBuilder {
	var inner datatype.DataType
	if dt.Inner != nil {
		inner = *dt.Inner
	}
	return &ListBuilder{
		dt:      dt,
		inner:   inner,
		entries: make([]ListEntry, 0, capacity),
		valid:   make([]bool, 0, capacity),
	}
}

func (b *ListBuilder) Append(elems []scalar.Value) {
	b.entries = append(b.entries, ListEntry{Offset: int32(len(b.flat)), Len: int32(len(elems))})
	b.flat = append(b.flat, elems...)
	b.valid = append(b.valid, true)
}

func (b *ListBuilder) AppendNull() {
	b.entries = append(b.entries, ListEntry{Offset: int32(len(b.flat)), Len: 0})
	b.valid = append(b.valid, false)
}

func (b *ListBuilder) Len() int { return len(b.entries) }

func (b *ListBuilder) Finish() (*Array, error) {
	child, err := FromValues(b.inner, b.flat)
	if err != nil {
		return nil, err
	}
	return &Array{
		DataType:  b.dt,
		Phys:      physicaltype.List,
		Validity:  validityFromFlags(b.valid),
		Primary:   storage.NewPrimitiveFrom(b.entries),
		Secondary: child,
	}, nil
}

// int64FromScalar unwraps the int64 payload shared by Int64, Date64, and
// Timestamp scalars, with Decimal64 unwrapped through its unscaled
// coefficient instead.
func int64FromScalar(sv scalar.Value) int64 {
	if sv.Type.ID == datatype.Decimal64 {
		return sv.Decimal64Val().Unscaled
	}
	return sv.Int64()
}

// int128FromScalar unwraps the raw Int128 payload shared by Int128 and
// Decimal128 scalars, with Decimal128 unwrapped through its unscaled
// coefficient instead.
func int128FromScalar(sv scalar.Value) [2]uint64 {
	if sv.Type.ID == datatype.Decimal128 {
		return sv.Decimal128Val().Raw()
	}
	return sv.Int128Val()
}
