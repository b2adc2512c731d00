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

// Package strfn implements the scalar string-length family: length (Unicode
// scalar count), byte_length, and bit_length, all Utf8/Binary -> Int64.
package strfn

import (
	"unicode/utf8"

	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/executor"
)

// Length counts Unicode scalar values (runes), the same metric SQL's
// char_length/character_length report. Invalid UTF-8 bytes are each counted
// as one replacement-character rune, matching utf8.RuneCountInString.
func Length(in *array.Array) (*array.Array, error) {
	out := array.NewPrimitiveBuilder[int64](datatype.NewInt64(), in.LogicalLen())
	err := executor.ExecuteUnaryVarlen(in, out, func(b []byte) int64 {
		return int64(utf8.RuneCount(b))
	})
	if err != nil {
		return nil, err
	}
	return out.Finish(), nil
}

// CharLength and CharacterLength are Length's SQL aliases.
func CharLength(in *array.Array) (*array.Array, error)      { return Length(in) }
func CharacterLength(in *array.Array) (*array.Array, error) { return Length(in) }

// ByteLength counts raw storage bytes, independent of encoding validity.
func ByteLength(in *array.Array) (*array.Array, error) {
	out := array.NewPrimitiveBuilder[int64](datatype.NewInt64(), in.LogicalLen())
	err := executor.ExecuteUnaryVarlen(in, out, func(b []byte) int64 {
		return int64(len(b))
	})
	if err != nil {
		return nil, err
	}
	return out.Finish(), nil
}

// OctetLength is ByteLength's SQL alias.
func OctetLength(in *array.Array) (*array.Array, error) { return ByteLength(in) }

// BitLength reports ByteLength*8.
func BitLength(in *array.Array) (*array.Array, error) {
	out := array.NewPrimitiveBuilder[int64](datatype.NewInt64(), in.LogicalLen())
	err := executor.ExecuteUnaryVarlen(in, out, func(b []byte) int64 {
		return int64(len(b)) * 8
	})
	if err != nil {
		return nil, err
	}
	return out.Finish(), nil
}
