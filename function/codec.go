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
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dolthub/bullet/datatype"
	"github.com/dolthub/bullet/errs"
)

// codecVersion guards the wire format so a future layout change can be
// detected rather than misparsed.
const codecVersion = 1

// EncodeState serializes a planned function's identity (not its row data)
// to a versioned byte-packed wire format: the function name, the index of
// the matched Signature, and the concrete output DataType. This is what
// ships a plan across nodes; re-planning on the receiving side still goes
// through Registry.Lookup to recover the Kernel.
func (p *PlannedScalarFunction) EncodeState(sigIndex int) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, codecVersion)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, p.FunctionName)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(sigIndex))
	b = appendDataType(b, 4, p.OutputType)
	return b
}

// DecodeState parses wire produced by EncodeState and re-plans it against
// registry: the function name and signature index select the ScalarFunction
// and Signature, and the decoded output DataType is installed verbatim
// (restoring e.g. a decimal's precision/scale, which the bare signature
// does not carry).
func DecodeState(data []byte, registry *Registry) (*PlannedScalarFunction, error) {
	var name string
	var sigIndex int = -1
	var outDT datatype.DataType
	var sawOutDT bool

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, errs.Newf(errs.InternalInvariantViolated, "function: malformed codec tag")
		}
		data = data[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, errs.Newf(errs.InternalInvariantViolated, "function: malformed version field")
			}
			data = data[n:]
			if v != codecVersion {
				return nil, errs.Newf(errs.InternalInvariantViolated, "function: unsupported codec version %d", v)
			}
		case 2:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, errs.Newf(errs.InternalInvariantViolated, "function: malformed name field")
			}
			data = data[n:]
			name = s
		case 3:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, errs.Newf(errs.InternalInvariantViolated, "function: malformed signature index field")
			}
			data = data[n:]
			sigIndex = int(v)
		case 4:
			dt, n, err := consumeDataType(data)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			outDT = dt
			sawOutDT = true
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, errs.Newf(errs.InternalInvariantViolated, "function: malformed codec field %d", num)
			}
			data = data[n:]
		}
	}

	fn, ok := registry.Lookup(name)
	if !ok {
		return nil, errs.Newf(errs.InvalidInputTypes, "function: no function registered under name %q", name)
	}
	if sigIndex < 0 || sigIndex >= len(fn.Signatures) {
		return nil, errs.Newf(errs.InternalInvariantViolated, "function: signature index %d out of range for %q", sigIndex, name)
	}
	plan := &PlannedScalarFunction{
		FunctionName: fn.Name,
		Signature:    fn.Signatures[sigIndex],
		OutputType:   datatype.DataType{ID: fn.Signatures[sigIndex].Return},
		kernel:       fn.Kernels[sigIndex],
	}
	if sawOutDT {
		plan.OutputType = outDT
	}
	return plan, nil
}

// appendDataType writes a DataType as a length-delimited nested message
// under fieldNum: ID, Precision, Scale (zigzag), Unit, and — for List —
// a recursively nested Inner. Struct fields are not carried: a planned
// function's output is never Struct-typed in this runtime.
func appendDataType(b []byte, fieldNum protowire.Number, dt datatype.DataType) []byte {
	var inner []byte
	inner = protowire.AppendTag(inner, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, uint64(dt.ID))
	inner = protowire.AppendTag(inner, 2, protowire.VarintType)
	inner = protowire.AppendVarint(inner, uint64(dt.Precision))
	inner = protowire.AppendTag(inner, 3, protowire.VarintType)
	inner = protowire.AppendVarint(inner, protowire.EncodeZigZag(int64(dt.Scale)))
	inner = protowire.AppendTag(inner, 4, protowire.VarintType)
	inner = protowire.AppendVarint(inner, uint64(dt.Unit))
	if dt.ID == datatype.List && dt.Inner != nil {
		inner = appendDataType(inner, 5, *dt.Inner)
	}
	b = protowire.AppendTag(b, fieldNum, protowire.BytesType)
	b = protowire.AppendBytes(b, inner)
	return b
}

func consumeDataType(data []byte) (datatype.DataType, int, error) {
	msg, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return datatype.DataType{}, 0, errs.Newf(errs.InternalInvariantViolated, "function: malformed datatype field")
	}
	dt, err := parseDataType(msg)
	return dt, n, err
}

func parseDataType(data []byte) (datatype.DataType, error) {
	var dt datatype.DataType
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return dt, errs.Newf(errs.InternalInvariantViolated, "function: malformed nested datatype tag")
		}
		data = data[tn:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return dt, errs.Newf(errs.InternalInvariantViolated, "function: malformed datatype id")
			}
			data = data[n:]
			dt.ID = datatype.ID(v)
		case 2:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return dt, errs.Newf(errs.InternalInvariantViolated, "function: malformed datatype precision")
			}
			data = data[n:]
			dt.Precision = uint8(v)
		case 3:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return dt, errs.Newf(errs.InternalInvariantViolated, "function: malformed datatype scale")
			}
			data = data[n:]
			dt.Scale = int8(protowire.DecodeZigZag(v))
		case 4:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return dt, errs.Newf(errs.InternalInvariantViolated, "function: malformed datatype unit")
			}
			data = data[n:]
			dt.Unit = datatype.TimeUnit(v)
		case 5:
			inner, n, err := consumeDataType(data)
			if err != nil {
				return dt, err
			}
			data = data[n:]
			dt.Inner = &inner
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return dt, errs.Newf(errs.InternalInvariantViolated, "function: malformed nested datatype field %d", num)
			}
			data = data[n:]
		}
	}
	return dt, nil
}
