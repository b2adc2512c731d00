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

package function

import (
	"github.com/dolthub/bullet/array"
	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
)

// Kernel is the monomorphized per-cell implementation a planned function
// dispatches to: it consumes the positional input Arrays (already resolved
// to this signature's types) and produces one output Array.
type Kernel func(inputs []*array.Array) (*array.Array, error)

// ScalarFunction describes a named function's full set of accepted
// signatures and binds a Kernel to each. Planning never inspects row data;
// it only matches declared input DataTypes against Signatures.
type ScalarFunction struct {
	Name       string
	Aliases    []string
	Signatures []Signature
	Kernels    []Kernel // Kernels[i] implements Signatures[i]
}

// PlannedScalarFunction is the result of successfully matching a call's
// input types against one of a ScalarFunction's signatures: a concrete
// output DataType and the kernel to execute.
type PlannedScalarFunction struct {
	FunctionName string
	Signature    Signature
	OutputType   datatype.DataType
	kernel       Kernel
}

// Execute runs the planned kernel over inputs. The caller is responsible
// for having resolved inputs to the arrays matching this plan's Signature;
// Execute does not re-verify input types.
func (p *PlannedScalarFunction) Execute(inputs []*array.Array) (*array.Array, error) {
	return p.kernel(inputs)
}

// Plan verifies arity, matches inputIDs against each declared Signature in
// order, and returns the first match bound to its Kernel. Multiple
// signatures matching the same arity are resolved by declaration order.
// An input count no signature accepts yields an Arity error; a matching
// count with no matching types yields InvalidInputTypes.
func (f *ScalarFunction) Plan(inputIDs []datatype.ID) (*PlannedScalarFunction, error) {
	if len(f.Signatures) == 0 {
		return nil, errs.InternalInvariantf("function: %q declares no signatures", f.Name)
	}
	arityOK := false
	for _, sig := range f.Signatures {
		if len(inputIDs) == len(sig.Positional) || (sig.Variadic != nil && len(inputIDs) > len(sig.Positional)) {
			arityOK = true
			break
		}
	}
	if !arityOK {
		return nil, errs.ArityMismatch(len(f.Signatures[0].Positional), len(inputIDs))
	}
	for i, sig := range f.Signatures {
		if sig.Matches(inputIDs) {
			outDT := datatype.DataType{ID: sig.Return}
			return &PlannedScalarFunction{
				FunctionName: f.Name,
				Signature:    sig,
				OutputType:   outDT,
				kernel:       f.Kernels[i],
			}, nil
		}
	}
	types := make([]string, len(inputIDs))
	for i, id := range inputIDs {
		types[i] = id.String()
	}
	return nil, errs.NoMatchingSignature(f.Name, types)
}

// PlanTyped is Plan for callers already holding full DataTypes (rather than
// bare IDs), used when the output DataType must carry precision/scale
// inherited from an input (e.g. decimal arithmetic preserving the left
// operand's scale). resolveReturn receives the matched signature and the
// original input types and decides the concrete output DataType; passing
// nil falls back to the signature's bare Return ID.
func (f *ScalarFunction) PlanTyped(inputs []datatype.DataType, resolveReturn func(Signature, []datatype.DataType) datatype.DataType) (*PlannedScalarFunction, error) {
	ids := make([]datatype.ID, len(inputs))
	for i, dt := range inputs {
		ids[i] = dt.ID
	}
	plan, err := f.Plan(ids)
	if err != nil {
		return nil, err
	}
	if resolveReturn != nil {
		plan.OutputType = resolveReturn(plan.Signature, inputs)
	}
	return plan, nil
}
