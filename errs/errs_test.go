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

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "OutOfBounds", OutOfBounds.String())
	assert.Equal(t, "Unknown", Kind(255).String())
}

func TestArityMismatchCarriesFields(t *testing.T) {
	err := ArityMismatch(2, 3)
	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, Arity, e.Kind)
	assert.Equal(t, 2, e.WantArity)
	assert.Equal(t, 3, e.GotArity)
}

func TestIsMatchesByKind(t *testing.T) {
	err := OutOfBoundsf("index %d out of range", 5)
	assert.True(t, errors.Is(err, &Error{Kind: OutOfBounds}))
	assert.False(t, errors.Is(err, &Error{Kind: Arity}))
}

func TestWrapPreservesKindForAs(t *testing.T) {
	base := NotImplementedf("decimal overflow saturation")
	wrapped := Wrap(base, "while planning multiply")
	var e *Error
	assert.True(t, errors.As(wrapped, &e))
	assert.Equal(t, NotImplemented, e.Kind)
	assert.ErrorContains(t, wrapped, "while planning multiply")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "no-op"))
}

func TestNoMatchingSignatureMessage(t *testing.T) {
	err := NoMatchingSignature("add", []string{"Int32", "Utf8"})
	assert.ErrorContains(t, err, "add")
	assert.ErrorContains(t, err, "Int32")
}
