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

package scalar

import (
	"github.com/shopspring/decimal"
)

// Decimal64 and Decimal128 carry an unscaled integer coefficient alongside
// the precision/scale pair from their DataType; the coefficient is stored
// widened to int64/[2]uint64 physical width to mirror how the array runtime
// stores decimals as plain integer buffers and only attaches meaning to
// them at the scalar/cast layer.

// Decimal64 is the scalar payload for the Decimal64 logical type: a 64-bit
// unscaled coefficient interpreted against DataType.Scale.
type Decimal64 struct {
	Unscaled int64
}

// Decimal128 is the scalar payload for the Decimal128 logical type: a
// 128-bit unscaled coefficient, stored as high/low 64-bit words.
type Decimal128 struct {
	Hi int64
	Lo uint64
}

// AsDecimal renders a Decimal64 coefficient against the given scale as a
// shopspring/decimal.Decimal, used by display and by the decimal/decimal
// division kernel's cast to Float64.
func (d Decimal64) AsDecimal(scale int8) decimal.Decimal {
	return decimal.New(d.Unscaled, int32(-scale))
}

// AsFloat64 materializes the decimal value as a float64, the target type of
// the documented decimal/decimal division simplification.
func (d Decimal64) AsFloat64(scale int8) float64 {
	f, _ := d.AsDecimal(scale).Float64()
	return f
}

// Decimal128FromDecimal builds a Decimal128 from a shopspring/decimal value
// truncated to fit the 128-bit unscaled-coefficient representation used by
// this runtime; values exceeding that range are not supported and the
// overflow is the caller's responsibility to detect beforehand.
func Decimal128FromDecimal(d decimal.Decimal) Decimal128 {
	coeff := d.Coefficient()
	bits := coeff.Bits()
	var lo uint64
	var hi int64
	if len(bits) > 0 {
		lo = uint64(bits[0])
	}
	if len(bits) > 1 {
		hi = int64(bits[1])
	}
	if coeff.Sign() < 0 {
		hi = -hi
		if lo != 0 {
			hi--
		}
		lo = -lo
	}
	return Decimal128{Hi: hi, Lo: lo}
}

func (d Decimal128) AsFloat64(scale int8) float64 {
	// Approximate: combine hi/lo words back into a big-endian magnitude and
	// scale it down; sufficient for the division-to-float64 simplification,
	// not intended as a precise wide-integer reconstruction.
	magnitude := float64(d.Hi)*18446744073709551616.0 + float64(d.Lo)
	scaleFactor := 1.0
	for i := int8(0); i < scale; i++ {
		scaleFactor *= 10
	}
	for i := scale; i < 0; i++ {
		scaleFactor /= 10
	}
	return magnitude / scaleFactor
}

func (d Decimal64) Equal(other Decimal64) bool {
	return d.Unscaled == other.Unscaled
}

func (d Decimal128) Equal(other Decimal128) bool {
	return d.Hi == other.Hi && d.Lo == other.Lo
}

// Raw returns the two's-complement high/low word pair the array runtime's
// Int128 physical storage uses, the same representation backing a bare
// Int128 column.
func (d Decimal128) Raw() [2]uint64 {
	return [2]uint64{uint64(d.Hi), d.Lo}
}

// Decimal128FromRaw rebuilds a Decimal128 from the word pair stored in an
// Int128 physical buffer, the inverse of Decimal128.Raw.
func Decimal128FromRaw(raw [2]uint64) Decimal128 {
	return Decimal128{Hi: int64(raw[0]), Lo: raw[1]}
}
