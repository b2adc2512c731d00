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
	"fmt"

	"github.com/dolthub/bullet/errs"
	"github.com/dolthub/bullet/physicaltype"
	"github.com/dolthub/bullet/storage"
)

// ValueAt reads logical row i as a T, transparently following dictionary
// indirection, without allocating a scalar.Value. This is the fast path
// executors drive instead of LogicalValue.
func ValueAt[T any](a *Array, i int) (T, bool, error) {
	var zero T
	if i < 0 || i >= a.LogicalLen() {
		return zero, false, errs.OutOfBoundsf("array: logical index %d out of bounds for length %d", i, a.LogicalLen())
	}
	if a.Phys == physicaltype.Dictionary {
		if !a.Validity.Get(i) {
			return zero, false, nil
		}
		idx := a.Primary.(*storage.Primitive[uint32]).AsSlice()[i]
		src := a.Secondary.(*DictionarySource).Source
		return ValueAt[T](src, int(idx))
	}
	if !a.Validity.Get(i) {
		return zero, false, nil
	}
	buf, ok := a.Primary.(*storage.Primitive[T])
	if !ok {
		return zero, false, physicaltype.NewMismatchError(fmt.Sprintf("%T", zero), a.Phys)
	}
	return buf.AsSlice()[i], true, nil
}

// BytesAt reads logical row i of a Utf8/Binary array as raw bytes,
// following dictionary indirection.
func BytesAt(a *Array, i int) ([]byte, bool, error) {
	if i < 0 || i >= a.LogicalLen() {
		return nil, false, errs.OutOfBoundsf("array: logical index %d out of bounds for length %d", i, a.LogicalLen())
	}
	if a.Phys == physicaltype.Dictionary {
		if !a.Validity.Get(i) {
			return nil, false, nil
		}
		idx := a.Primary.(*storage.Primitive[uint32]).AsSlice()[i]
		src := a.Secondary.(*DictionarySource).Source
		return BytesAt(src, int(idx))
	}
	if !a.Validity.Get(i) {
		return nil, false, nil
	}
	v, ok := a.Primary.(storage.Varlen)
	if !ok {
		return nil, false, physicaltype.NewMismatchError("Varlen", a.Phys)
	}
	return v.Get(i), true, nil
}

// ListRangeAt resolves logical row i of a List array to (child, offset,
// length, valid), following dictionary indirection. The returned child is
// the flattened array the (offset, length) range indexes into.
func ListRangeAt(a *Array, i int) (child *Array, offset, length int, valid bool, err error) {
	if i < 0 || i >= a.LogicalLen() {
		return nil, 0, 0, false, errs.OutOfBoundsf("array: logical index %d out of bounds for length %d", i, a.LogicalLen())
	}
	if a.Phys == physicaltype.Dictionary {
		if !a.Validity.Get(i) {
			return nil, 0, 0, false, nil
		}
		idx := a.Primary.(*storage.Primitive[uint32]).AsSlice()[i]
		src := a.Secondary.(*DictionarySource).Source
		return ListRangeAt(src, int(idx))
	}
	if !a.Validity.Get(i) {
		return nil, 0, 0, false, nil
	}
	entries, ok := a.Primary.(*storage.Primitive[ListEntry])
	if !ok {
		return nil, 0, 0, false, physicaltype.NewMismatchError("List", a.Phys)
	}
	entry := entries.AsSlice()[i]
	return a.Secondary.(*Array), int(entry.Offset), int(entry.Len), true, nil
}
