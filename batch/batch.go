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

// Package batch implements Batch, the row-group unit operators exchange: an
// ordered collection of Arrays of equal logical length plus the schema
// describing them.
package batch

import (
	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
)

// Schema names and types each column of a Batch.
type Schema struct {
	Names []string
	Types []datatype.DataType
}

func (s Schema) NumColumns() int { return len(s.Names) }

// Batch is an ordered set of Arrays of equal logical length making up a
// row-group to process.
type Batch struct {
	Schema  Schema
	Columns []*array.Array
}

// New validates that every column's logical length matches and that the
// column count agrees with the schema before returning a Batch.
func New(schema Schema, columns []*array.Array) (*Batch, error) {
	if len(columns) != schema.NumColumns() {
		return nil, errs.Newf(errs.InternalInvariantViolated,
			"batch: %d columns does not match schema with %d names", len(columns), schema.NumColumns())
	}
	if len(columns) > 0 {
		want := columns[0].LogicalLen()
		for i, c := range columns[1:] {
			if c.LogicalLen() != want {
				return nil, errs.Newf(errs.InternalInvariantViolated,
					"batch: column %d has logical length %d, expected %d", i+1, c.LogicalLen(), want)
			}
		}
	}
	return &Batch{Schema: schema, Columns: columns}, nil
}

// NumRows returns the batch's shared logical length, or 0 for a
// zero-column batch.
func (b *Batch) NumRows() int {
	if len(b.Columns) == 0 {
		return 0
	}
	return b.Columns[0].LogicalLen()
}

// Column looks up a column by name, returning an error if absent.
func (b *Batch) Column(name string) (*array.Array, error) {
	for i, n := range b.Schema.Names {
		if n == name {
			return b.Columns[i], nil
		}
	}
	return nil, errs.Newf(errs.InternalInvariantViolated, "batch: no column named %q", name)
}

// Slice returns a view of the batch over logical rows [offset, offset+count)
// by slicing every column.
func (b *Batch) Slice(offset, count int) (*Batch, error) {
	sliced := make([]*array.Array, len(b.Columns))
	for i, c := range b.Columns {
		s, err := c.Slice(offset, count)
		if err != nil {
			return nil, err
		}
		sliced[i] = s
	}
	return &Batch{Schema: b.Schema, Columns: sliced}, nil
}
