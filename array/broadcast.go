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
	"github.com/dolthub/bullet/physicaltype"
	"github.com/dolthub/bullet/scalar"
	"github.com/dolthub/bullet/selection"
	"github.com/dolthub/bullet/storage"
)

// Broadcast materializes sv as an Array of logical length n: physical
// storage of length 1 plus a repeated selection, so literal expressions can
// be evaluated against a row count without copying the value n times. This
// is ScalarValue::as_array from the upstream design.
func Broadcast(sv scalar.Value, n int) (*Array, error) {
	source, err := FromValues(sv.Type, []scalar.Value{sv})
	if err != nil {
		return nil, err
	}

	idx := storage.NewPrimitiveFrom(selection.Repeated(n, 0).Indices())
	return &Array{
		DataType:  sv.Type,
		Phys:      physicaltype.Dictionary,
		Validity:  bitmap.NewAllValid(n),
		Primary:   idx,
		Secondary: &DictionarySource{Source: source},
	}, nil
}
