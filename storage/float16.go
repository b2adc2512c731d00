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

package storage

import "math"

// Float16 is stored physically as its raw IEEE 754 half-precision bit
// pattern (uint16); these helpers convert to/from float32 for kernels that
// need to compute in wider precision (e.g. L2 distance).

// Float16ToFloat32 decodes a half-precision bit pattern to float32.
func Float16ToFloat32(bits uint16) float32 {
	sign := uint32(bits>>15) & 0x1
	exp := uint32(bits>>10) & 0x1f
	frac := uint32(bits) & 0x3ff

	var out uint32
	switch {
	case exp == 0 && frac == 0:
		out = sign << 31
	case exp == 0x1f:
		out = sign<<31 | 0xff<<23 | frac<<13
	case exp == 0:
		// subnormal half -> normalize into float32
		e := -1
		for frac&0x400 == 0 {
			frac <<= 1
			e++
		}
		frac &= 0x3ff
		out = sign<<31 | uint32(127-15-e)<<23 | frac<<13
	default:
		out = sign<<31 | (exp-15+127)<<23 | frac<<13
	}
	return math.Float32frombits(out)
}

// Float32ToFloat16 encodes a float32 to its nearest half-precision bit
// pattern, truncating toward zero on precision loss (no rounding-mode
// negotiation is performed).
func Float32ToFloat16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	frac := bits & 0x7fffff

	switch {
	case exp <= 0:
		return sign
	case exp >= 0x1f:
		return sign | 0x7c00
	default:
		return sign | uint16(exp)<<10 | uint16(frac>>13)
	}
}
