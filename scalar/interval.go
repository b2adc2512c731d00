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

// Interval is the physical representation of the Interval logical type: a
// calendar-aware month count plus a day count plus a sub-day nanosecond
// remainder, matching the three-component layout used by every SQL engine
// that separates month/day arithmetic from absolute duration.
type Interval struct {
	Months int32
	Days   int32
	Nanos  int64
}

// MulInt64 scales every component of iv by n, used by the interval*int64
// arithmetic kernel (component-wise, per the documented simplification).
func (iv Interval) MulInt64(n int64) Interval {
	return Interval{
		Months: int32(int64(iv.Months) * n),
		Days:   int32(int64(iv.Days) * n),
		Nanos:  iv.Nanos * n,
	}
}

func (iv Interval) Equal(other Interval) bool {
	return iv.Months == other.Months && iv.Days == other.Days && iv.Nanos == other.Nanos
}
